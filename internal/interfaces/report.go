package interfaces

import "esg-stock-screener/internal/types"

type ReportWriter interface {
	Write(path string, rows []types.Row) error
}
