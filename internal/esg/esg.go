// Package esg loads the manually curated ESG annotation table that analysts
// maintain alongside the screener output.
package esg

import (
	"context"
	"encoding/csv"
	"os"
	"strings"

	"esg-stock-screener/internal/interfaces"
	"esg-stock-screener/internal/logger"
	"esg-stock-screener/internal/types"
)

// Columns is the annotation table schema, in file order.
var Columns = []string{
	"Ticker",
	"ESG Theme",
	"Manual ESG Score",
	"Confidence Level",
	"Assessment Criteria",
	"Review Date",
	"Analyst Notes",
}

// CSVSource reads the manual ESG table from a CSV file.
type CSVSource struct {
	path string
}

// Compile-time interface check
var _ interfaces.ESGSource = (*CSVSource)(nil)

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

// Load reads the annotation rows. A missing or unreadable file yields an
// empty table; the screener then emits empty manual ESG columns for every
// ticker rather than failing the run.
func (s *CSVSource) Load() []types.ManualESG {
	ctx := context.Background()

	f, err := os.Open(s.path)
	if err != nil {
		logger.Warn(ctx, "Manual ESG file unavailable, continuing with empty table",
			"path", s.path, "error", err)
		return nil
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		logger.Warn(ctx, "Manual ESG file unreadable, continuing with empty table",
			"path", s.path, "error", err)
		return nil
	}
	if len(records) == 0 {
		return nil
	}

	// Column positions come from the header when one is present, otherwise
	// the schema order applies.
	idx := schemaIndex()
	rows := records
	if isHeader(records[0]) {
		idx = headerIndex(records[0])
		rows = records[1:]
	}

	out := make([]types.ManualESG, 0, len(rows))
	for _, rec := range rows {
		ticker := strings.ToUpper(strings.TrimSpace(field(rec, col(idx, "ticker"))))
		if ticker == "" {
			continue
		}
		out = append(out, types.ManualESG{
			Ticker:     ticker,
			Theme:      field(rec, col(idx, "esg theme")),
			Score:      field(rec, col(idx, "manual esg score")),
			Confidence: field(rec, col(idx, "confidence level")),
			Criteria:   field(rec, col(idx, "assessment criteria")),
			ReviewDate: field(rec, col(idx, "review date")),
			Notes:      field(rec, col(idx, "analyst notes")),
		})
	}

	logger.Info(ctx, "Loaded manual ESG table", "path", s.path, "rows", len(out))
	return out
}

func isHeader(rec []string) bool {
	return len(rec) > 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "ticker")
}

func schemaIndex() map[string]int {
	idx := make(map[string]int, len(Columns))
	for i, c := range Columns {
		idx[strings.ToLower(c)] = i
	}
	return idx
}

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

func col(idx map[string]int, name string) int {
	if i, ok := idx[name]; ok {
		return i
	}
	return -1
}

func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}
