package schema

import (
	"math"
	"time"
)

// Observation - one region's reported figures for one day
type Observation struct {
	Region             string    `json:"region" firestore:"region"`
	Timestamp          time.Time `json:"timestamp" firestore:"timestamp"`
	Cases              float64   `json:"cases" firestore:"cases"`
	Delta              float64   `json:"delta" firestore:"delta"`
	Rate               float64   `json:"rate" firestore:"rate"`
	Deaths             float64   `json:"deaths" firestore:"deaths"`
	Recovered          *float64  `json:"recovered,omitempty" firestore:"recovered,omitempty"`
	ActiveCases        *float64  `json:"activeCases,omitempty" firestore:"activeCases,omitempty"`
	MostAffectedCounty string    `json:"mostAffectedCounty,omitempty" firestore:"mostAffectedCounty,omitempty"`
}

// DerivedObservation - an observation annotated with locally derived metrics.
// A nil DoublingRate means the rate is not applicable, which is not the same
// as a computed zero.
type DerivedObservation struct {
	Observation
	DoublingRate *float64 `json:"doublingRate,omitempty"`
}

// Derive wraps an observation without any derived metric.
func Derive(o Observation) DerivedObservation {
	return DerivedObservation{Observation: o}
}

// RegionSeries - observations of one region ascending by timestamp
type RegionSeries []DerivedObservation

// Field is the closed set of numeric fields that can be summed or averaged.
type Field string

const (
	FieldCases        Field = "cases"
	FieldDeaths       Field = "deaths"
	FieldDelta        Field = "delta"
	FieldRate         Field = "rate"
	FieldRecovered    Field = "recovered"
	FieldActiveCases  Field = "activeCases"
	FieldDoublingRate Field = "doublingRate"
)

// Value returns the numeric value of the field. The second return value is
// false when the record is nil, the field is absent or the value is not a
// finite number.
func (f Field) Value(o *DerivedObservation) (float64, bool) {
	if o == nil {
		return 0, false
	}

	var v float64
	switch f {
	case FieldCases:
		v = o.Cases
	case FieldDeaths:
		v = o.Deaths
	case FieldDelta:
		v = o.Delta
	case FieldRate:
		v = o.Rate
	case FieldRecovered:
		if o.Recovered == nil {
			return 0, false
		}
		v = *o.Recovered
	case FieldActiveCases:
		if o.ActiveCases == nil {
			return 0, false
		}
		v = *o.ActiveCases
	case FieldDoublingRate:
		if o.DoublingRate == nil {
			return 0, false
		}
		v = *o.DoublingRate
	default:
		return 0, false
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Float64 returns a pointer to v, for optional fields.
func Float64(v float64) *float64 {
	return &v
}
