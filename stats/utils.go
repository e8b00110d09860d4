package stats

import (
	"fmt"
	"math"

	"github.com/fabianhinz/rkicasesdashboard-sub000/schema"
)

// ChangeRate - relative change of new against old in percent
func ChangeRate(new, old float64) float64 {
	if old == 0 {
		if new == 0 {
			return float64(0)
		} else {
			return float64(100)
		}
	}

	return (new - old) / old * 100
}

// SumField sums the value of a field over records. Nil records and values
// reported as absent contribute zero, as do NaN and infinite values.
func SumField[T any](records []*T, value func(*T) (float64, bool)) float64 {
	var sum float64
	for _, r := range records {
		if r == nil {
			continue
		}
		v, ok := value(r)
		if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		sum += v
	}
	return sum
}

// SumObservations sums a schema field over derived observations.
func SumObservations(records []schema.DerivedObservation, field schema.Field) float64 {
	ptrs := make([]*schema.DerivedObservation, len(records))
	for i := range records {
		ptrs[i] = &records[i]
	}
	return SumField(ptrs, field.Value)
}

// PercentageOf compares current against previous as (1 - previous/current) * 100.
// A negative infinite result is clamped to -100, a positive infinite one to
// 100 and an undefined one (0/0) becomes 0.
func PercentageOf(current, previous float64) schema.Percentage {
	value := (1 - previous/current) * 100

	switch {
	case math.IsInf(value, -1):
		value = -100
	case math.IsInf(value, 1):
		value = 100
	case math.IsNaN(value):
		value = 0
	}

	return schema.Percentage{
		Value:     value,
		Formatted: FormatPercentage(value),
	}
}

// FormatPercentage renders two decimals with an explicit plus sign for
// positive values, e.g. "+12.34 %" or "-5.00 %".
func FormatPercentage(value float64) string {
	// no sign for values rounding to zero
	if math.Abs(value) < 0.005 {
		return "0.00 %"
	}
	if value > 0 {
		return fmt.Sprintf("+%.2f %%", value)
	}
	return fmt.Sprintf("%.2f %%", value)
}

// Mean returns the arithmetic mean of values, 0 for none.
func Mean(values ...float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
