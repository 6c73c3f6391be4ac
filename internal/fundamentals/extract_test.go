package fundamentals

import (
	"testing"

	"esg-stock-screener/internal/types"
)

func f(v float64) *float64 { return &v }

func TestFirstPresentPriorityOrder(t *testing.T) {
	table := types.StatementTable{
		"Revenue":       {90, 80},
		"Total Revenue": {100, 80},
	}
	vals, ok := FirstPresent(table, "Total Revenue", "Revenue")
	if !ok {
		t.Fatal("expected a match")
	}
	if vals[0] != 100 {
		t.Errorf("expected 'Total Revenue' to win, got %v", vals)
	}

	vals, ok = FirstPresent(table, "Operating Revenue", "Revenue")
	if !ok || vals[0] != 90 {
		t.Errorf("expected fallback to 'Revenue', got %v ok=%v", vals, ok)
	}

	if _, ok := FirstPresent(table, "Sales Revenue"); ok {
		t.Error("expected no match for absent label")
	}
	if _, ok := FirstPresent(nil, "Total Revenue"); ok {
		t.Error("expected no match on nil table")
	}
}

func TestGrowth(t *testing.T) {
	if g, ok := Growth([]float64{100, 80}); !ok || g != 0.25 {
		t.Errorf("expected growth 0.25, got %f ok=%v", g, ok)
	}
	if _, ok := Growth([]float64{100, 0}); ok {
		t.Error("expected undefined growth for zero previous period")
	}
	if _, ok := Growth([]float64{100}); ok {
		t.Error("expected undefined growth with a single period")
	}
	if g, ok := Growth([]float64{80, 100}); !ok || g != -0.2 {
		t.Errorf("expected negative growth -0.2, got %f ok=%v", g, ok)
	}
}

func TestDebtToEquity(t *testing.T) {
	if v, ok := DebtToEquity(50, 25, true, true); !ok || v != 2 {
		t.Errorf("expected 2, got %f ok=%v", v, ok)
	}
	if _, ok := DebtToEquity(50, 0, true, true); ok {
		t.Error("expected undefined for zero equity")
	}
	if _, ok := DebtToEquity(0, 25, false, true); ok {
		t.Error("expected undefined for missing debt")
	}
}

func TestUpsideAndLabel(t *testing.T) {
	up, ok := Upside(f(100), f(120))
	if !ok || up != 20 {
		t.Fatalf("expected upside 20, got %f ok=%v", up, ok)
	}
	if got := UpsideLabel(up, ok); got != "High Upside" {
		t.Errorf("expected High Upside, got %q", got)
	}

	up, ok = Upside(f(100), f(103))
	if !ok || up != 3 {
		t.Fatalf("expected upside 3, got %f ok=%v", up, ok)
	}
	if got := UpsideLabel(up, ok); got != "Limited / Downside" {
		t.Errorf("expected Limited / Downside, got %q", got)
	}

	if got := UpsideLabel(0, false); got != NA {
		t.Errorf("expected N/A for undefined upside, got %q", got)
	}
	if _, ok := Upside(f(0), f(120)); ok {
		t.Error("expected undefined upside for zero price")
	}
	if _, ok := Upside(nil, f(120)); ok {
		t.Error("expected undefined upside for missing price")
	}

	if got := UpsideLabel(7, true); got != "Moderate Upside" {
		t.Errorf("expected Moderate Upside, got %q", got)
	}
}

func TestLatestVotesPeriodColumn(t *testing.T) {
	rows := []types.RecommendationRow{
		{Period: "0m", StrongBuy: 5, Buy: 10, Hold: 3, Sell: 1, StrongSell: 1},
		{Period: "-1m", StrongBuy: 4, Buy: 9, Hold: 4, Sell: 2, StrongSell: 0},
	}
	v, ok := LatestVotes(rows)
	if !ok {
		t.Fatal("expected votes")
	}
	if v.Total() != 20 {
		t.Errorf("expected 20 analysts, got %d", v.Total())
	}
	if v.StrongBuy != 5 {
		t.Errorf("expected the 0m row, got %+v", v)
	}
}

func TestLatestVotesNoPeriodColumn(t *testing.T) {
	rows := []types.RecommendationRow{
		{Buy: 3},
		{Buy: 7, Hold: 2},
	}
	v, ok := LatestVotes(rows)
	if !ok {
		t.Fatal("expected votes")
	}
	// without period labels the last row wins; missing categories count 0
	if v.Buy != 7 || v.Total() != 9 {
		t.Errorf("expected last row with total 9, got %+v", v)
	}
}

func TestLatestVotesEmpty(t *testing.T) {
	if _, ok := LatestVotes(nil); ok {
		t.Error("expected no votes from an empty trend table")
	}
	// period labels present but no 0m row: undefined, not a guess
	rows := []types.RecommendationRow{{Period: "-1m", Buy: 4}}
	if _, ok := LatestVotes(rows); ok {
		t.Error("expected no votes when 0m period is absent")
	}
}
