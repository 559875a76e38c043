// Package summary 위젯 타일이 쓰는 파생 수치 계산.
// 예산 평균은 데이터가 있는(총액 0 초과) 연도만 분모에 넣는다 —
// 미입력 연도를 0 으로 치면 평균이 깎이기 때문이다.
package summary

import (
	"math"
	"math/rand"

	"github.com/dustin/go-humanize"
	"github.com/leoavce/hrd-dashboard/internal/model"
)

// YearTotal 연도별 예산 총액
type YearTotal struct {
	Year  string  `json:"year"`
	Total float64 `json:"total"`
}

// BudgetAverage 연도별 총액과 평균 계산
// order 순서대로 훑고, 총액이 0 인(또는 문서가 없는) 연도는 평균에서 제외한다.
func BudgetAverage(years map[string]model.YearRecord, order []string) (avg float64, totals []YearTotal) {
	var sum float64
	for _, y := range order {
		rec, ok := years[y]
		if !ok {
			continue
		}
		t := rec.BudgetTotal()
		if t <= 0 {
			continue
		}
		totals = append(totals, YearTotal{Year: y, Total: t})
		sum += t
	}
	if len(totals) > 0 {
		avg = math.Round(sum / float64(len(totals)))
	}
	return avg, totals
}

// OutcomeAverage 설문 요약 평균
// 설문 수치가 하나라도 기록된 연도만 평균에 들어간다.
type OutcomeAverage struct {
	N     float64 `json:"n"`
	CSAT  float64 `json:"csat"`
	NPS   float64 `json:"nps"`
	Years int     `json:"years"` // 평균에 포함된 연도 수
}

// AverageOutcome 연도별 설문 요약의 평균
func AverageOutcome(years map[string]model.YearRecord, order []string) OutcomeAverage {
	var out OutcomeAverage
	for _, y := range order {
		rec, ok := years[y]
		if !ok {
			continue
		}
		s := rec.Outcome.SurveySummary
		if s.N == 0 && s.CSAT == 0 && s.NPS == 0 {
			continue
		}
		out.N += s.N
		out.CSAT += s.CSAT
		out.NPS += s.NPS
		out.Years++
	}
	if out.Years > 0 {
		n := float64(out.Years)
		out.N = math.Round(out.N / n)
		out.CSAT = round1(out.CSAT / n)
		out.NPS = round1(out.NPS / n)
	}
	return out
}

// PickRandom 비복원 균등 샘플링
// min(n, len(list)) 개를 반환하며 순서는 보장하지 않는다.
func PickRandom[T any](list []T, n int) []T {
	if n <= 0 || len(list) == 0 {
		return nil
	}
	if n > len(list) {
		n = len(list)
	}
	idx := rand.Perm(len(list))[:n]
	out := make([]T, 0, n)
	for _, i := range idx {
		out = append(out, list[i])
	}
	return out
}

// SampleDesignAssets 전체 연도의 이미지 자산에서 무작위 n 개
func SampleDesignAssets(years map[string]model.YearRecord, order []string, n int) []model.DesignAsset {
	var pool []model.DesignAsset
	for _, y := range order {
		rec, ok := years[y]
		if !ok {
			continue
		}
		pool = append(pool, rec.ImageAssets()...)
	}
	return PickRandom(pool, n)
}

// FormatWon 천 단위 구분 금액 표기 (표시용)
func FormatWon(v float64) string {
	return humanize.Comma(int64(math.Round(v))) + " 원"
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
