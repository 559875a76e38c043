package summary

import (
	"testing"

	"github.com/leoavce/hrd-dashboard/internal/model"
)

func yearWithBudget(total float64) model.YearRecord {
	return model.YearRecord{Budget: model.Budget{Items: []model.BudgetItem{
		{Name: "합계", UnitCost: total, Qty: 1},
	}}}
}

func TestBudgetAverage_SkipsEmptyYears(t *testing.T) {
	t.Parallel()

	years := map[string]model.YearRecord{
		"2021": yearWithBudget(1000000),
		"2022": {}, // 미입력 연도는 분모에서 제외
		"2023": yearWithBudget(2000000),
	}
	avg, totals := BudgetAverage(years, []string{"2021", "2022", "2023", "2024"})
	if avg != 1500000 {
		t.Fatalf("unexpected avg: %v", avg)
	}
	if len(totals) != 2 {
		t.Fatalf("unexpected totals: %+v", totals)
	}
	if totals[0].Year != "2021" || totals[1].Year != "2023" {
		t.Fatalf("totals out of order: %+v", totals)
	}
}

func TestBudgetAverage_AllEmpty(t *testing.T) {
	t.Parallel()

	avg, totals := BudgetAverage(map[string]model.YearRecord{}, []string{"2021"})
	if avg != 0 || totals != nil {
		t.Fatalf("expected zero avg and nil totals, got %v %+v", avg, totals)
	}
}

func TestAverageOutcome_IncludesPartialYears(t *testing.T) {
	t.Parallel()

	years := map[string]model.YearRecord{
		"2021": {Outcome: model.Outcome{SurveySummary: model.SurveySummary{N: 100, CSAT: 4.5, NPS: 40}}},
		"2022": {Outcome: model.Outcome{SurveySummary: model.SurveySummary{NPS: 20}}},
		"2023": {}, // 전부 0 이면 제외
	}
	out := AverageOutcome(years, []string{"2021", "2022", "2023"})
	if out.Years != 2 {
		t.Fatalf("unexpected year count: %d", out.Years)
	}
	if out.N != 50 {
		t.Fatalf("unexpected n: %v", out.N)
	}
	if out.CSAT != 2.3 {
		t.Fatalf("unexpected csat: %v", out.CSAT)
	}
	if out.NPS != 30 {
		t.Fatalf("unexpected nps: %v", out.NPS)
	}
}

func TestPickRandom_Bounds(t *testing.T) {
	t.Parallel()

	list := []int{1, 2, 3}

	if got := PickRandom(list, 0); got != nil {
		t.Fatalf("expected nil for n=0, got %v", got)
	}
	if got := PickRandom([]int{}, 3); got != nil {
		t.Fatalf("expected nil for empty list, got %v", got)
	}
	if got := PickRandom(list, 10); len(got) != 3 {
		t.Fatalf("expected whole list, got %v", got)
	}

	got := PickRandom(list, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 picks, got %v", got)
	}
	seen := map[int]bool{}
	for _, v := range got {
		if seen[v] {
			t.Fatalf("duplicate pick: %v", got)
		}
		seen[v] = true
		if v < 1 || v > 3 {
			t.Fatalf("pick outside source list: %v", got)
		}
	}
}

func TestFormatWon(t *testing.T) {
	t.Parallel()

	if got := FormatWon(1234567); got != "1,234,567 원" {
		t.Fatalf("unexpected format: %q", got)
	}
	if got := FormatWon(0); got != "0 원" {
		t.Fatalf("unexpected format: %q", got)
	}
}
