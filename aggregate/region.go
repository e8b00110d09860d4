// Package aggregate turns raw region-day observations into the series and
// summaries shown by the dashboard. Every function is pure: the same input
// always yields the same output, and nothing is kept between calls.
package aggregate

import (
	"sort"

	"github.com/fabianhinz/rkicasesdashboard-sub000/schema"
	"github.com/fabianhinz/rkicasesdashboard-sub000/stats"
)

// BuildRegionSeries groups raw observations by region, orders each group by
// timestamp and annotates it with doubling rates.
//
// The feed delivers records sorted by (region, timestamp). The sort here is
// stable, so out-of-order input is tolerated, but observations sharing a
// timestamp within a region keep only the first one received.
func BuildRegionSeries(raw []schema.Observation) map[string]schema.RegionSeries {
	groups := make(map[string][]schema.Observation)
	for _, o := range raw {
		groups[o.Region] = append(groups[o.Region], o)
	}

	result := make(map[string]schema.RegionSeries, len(groups))
	for region, observations := range groups {
		sort.SliceStable(observations, func(i, j int) bool {
			return observations[i].Timestamp.Before(observations[j].Timestamp)
		})
		result[region] = stats.WithDoublingRates(uniqueTimestamps(observations))
	}
	return result
}

func uniqueTimestamps(sorted []schema.Observation) []schema.Observation {
	result := make([]schema.Observation, 0, len(sorted))
	for i, o := range sorted {
		if i > 0 && o.Timestamp.Equal(sorted[i-1].Timestamp) {
			continue
		}
		result = append(result, o)
	}
	return result
}

// Regions returns the region names of a series map in ascending order.
func Regions(series map[string]schema.RegionSeries) []string {
	regions := make([]string, 0, len(series))
	for r := range series {
		regions = append(regions, r)
	}
	sort.Strings(regions)
	return regions
}
