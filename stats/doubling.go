package stats

import (
	"math"

	"github.com/fabianhinz/rkicasesdashboard-sub000/schema"
)

// doublingWindow is the number of observations needed before a doubling rate
// can be estimated: the two latest days are averaged and compared against the
// day before them.
const doublingWindow = 3

// DoublingRate estimates the number of days for the case count to double when
// growing from prev to now. ok is false when growth is zero or negative, or
// the result is not a finite positive number.
func DoublingRate(now, prev float64) (rate float64, ok bool) {
	growth := 1 + ChangeRate(now, prev)/100
	if growth <= 0 {
		return 0, false
	}

	rate = math.Ln2 / math.Log(growth)
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
		return 0, false
	}
	return rate, true
}

// WithDoublingRates annotates a chronologically ordered series of one region
// with doubling rates. The result has the same length and order as the input;
// entries without enough history or without positive growth carry no rate.
func WithDoublingRates(series []schema.Observation) []schema.DerivedObservation {
	result := make([]schema.DerivedObservation, len(series))
	for i, o := range series {
		result[i] = schema.Derive(o)
		if i < doublingWindow-1 {
			continue
		}

		now := Mean(series[i].Cases, series[i-1].Cases)
		prev := series[i-2].Cases
		if rate, ok := DoublingRate(now, prev); ok {
			result[i].DoublingRate = schema.Float64(rate)
		}
	}
	return result
}
