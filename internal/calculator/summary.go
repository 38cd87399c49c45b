package calculator

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"SkinScout/internal/model"
)

// PriceRange scans the opportunities and returns the highest and lowest current price.
// An empty input yields zeros.
func PriceRange(opps []model.Opportunity) (high, low float64) {
	if len(opps) == 0 {
		return 0, 0
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for _, o := range opps {
		if o.CurrentPrice > high {
			high = o.CurrentPrice
		}
		if o.CurrentPrice < low {
			low = o.CurrentPrice
		}
	}
	return high, low
}

// Summarize computes aggregate statistics over a result set.
func Summarize(opps []model.Opportunity) model.Summary {
	sum := model.Summary{Count: len(opps)}
	if len(opps) == 0 {
		return sum
	}
	scores := make([]float64, len(opps))
	sum.RealData = true
	for i, o := range opps {
		scores[i] = float64(o.Score)
		sum.RealData = sum.RealData && o.RealData
	}
	sum.MeanScore, sum.ScoreStdDev = stat.MeanStdDev(scores, nil)
	if len(opps) == 1 {
		sum.ScoreStdDev = 0
	}
	sum.MaxPrice, sum.MinPrice = PriceRange(opps)
	return sum
}
