package aggregate

import (
	"time"

	"github.com/fabianhinz/rkicasesdashboard-sub000/schema"
)

type dayBucket struct {
	aggregate       schema.DayAggregate
	rateSum         float64
	doublingRateSum float64
}

// BuildDaySeries reduces all region series into one nationwide aggregate per
// display date. Cases, deaths and delta are summed; rate and doubling rate are
// averaged over the contributing observations, where a missing doubling rate
// contributes zero but still counts. Timestamps mapping to the same key are
// merged into a single entry carrying the earliest timestamp.
func BuildDaySeries(series map[string]schema.RegionSeries, key func(time.Time) string) schema.DaySeries {
	buckets := make(map[string]*dayBucket)

	// fixed region order keeps float sums reproducible
	for _, region := range Regions(series) {
		for _, o := range series[region] {
			k := key(o.Timestamp)
			b, ok := buckets[k]
			if !ok {
				b = &dayBucket{
					aggregate: schema.DayAggregate{
						Key:       k,
						Timestamp: o.Timestamp,
					},
				}
				buckets[k] = b
			}

			if o.Timestamp.Before(b.aggregate.Timestamp) {
				b.aggregate.Timestamp = o.Timestamp
			}

			r := o
			if v, ok := schema.FieldCases.Value(&r); ok {
				b.aggregate.Cases += v
			}
			if v, ok := schema.FieldDeaths.Value(&r); ok {
				b.aggregate.Deaths += v
			}
			if v, ok := schema.FieldDelta.Value(&r); ok {
				b.aggregate.Delta += v
			}
			if v, ok := schema.FieldRate.Value(&r); ok {
				b.rateSum += v
			}
			if v, ok := schema.FieldDoublingRate.Value(&r); ok {
				b.doublingRateSum += v
			}
			b.aggregate.Regions++
		}
	}

	result := make(schema.DaySeries, len(buckets))
	for k, b := range buckets {
		a := b.aggregate
		a.Rate = b.rateSum / float64(a.Regions)
		a.DoublingRate = b.doublingRateSum / float64(a.Regions)
		result[k] = a
	}
	return result
}
