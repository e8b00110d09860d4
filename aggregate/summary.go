package aggregate

import (
	"sort"
	"time"

	"github.com/fabianhinz/rkicasesdashboard-sub000/consts"
	"github.com/fabianhinz/rkicasesdashboard-sub000/schema"
	"github.com/fabianhinz/rkicasesdashboard-sub000/stats"
)

// BuildSummary computes the headline figures of today and their change
// against yesterday, restricted to the filtered regions. Rate and doubling
// rate are averaged over the number of selected regions, or over all known
// regions when the filter is empty.
func BuildSummary(today, yesterday []schema.DerivedObservation, filter schema.RegionFilter) (schema.Summary, schema.SummaryPercent) {
	filter = filter.Normalize()

	divisor := float64(consts.KnownRegionCount)
	if len(filter) > 0 {
		divisor = float64(len(filter))
	}

	current := summarize(filterRecords(today, filter), divisor)
	previous := summarize(filterRecords(yesterday, filter), divisor)
	current.LastUpdate = lastUpdate(today)

	percent := schema.SummaryPercent{
		Cases:        stats.PercentageOf(current.Cases, previous.Cases),
		Deaths:       stats.PercentageOf(current.Deaths, previous.Deaths),
		Delta:        stats.PercentageOf(current.Delta, previous.Delta),
		Rate:         stats.PercentageOf(current.Rate, previous.Rate),
		DoublingRate: stats.PercentageOf(current.DoublingRate, previous.DoublingRate),
		Recovered:    stats.PercentageOf(current.Recovered, previous.Recovered),
	}

	return current, percent
}

func summarize(records []schema.DerivedObservation, divisor float64) schema.Summary {
	return schema.Summary{
		Cases:        stats.SumObservations(records, schema.FieldCases),
		Deaths:       stats.SumObservations(records, schema.FieldDeaths),
		Delta:        stats.SumObservations(records, schema.FieldDelta),
		Rate:         stats.SumObservations(records, schema.FieldRate) / divisor,
		DoublingRate: stats.SumObservations(records, schema.FieldDoublingRate) / divisor,
		Recovered:    stats.SumObservations(records, schema.FieldRecovered),
	}
}

func filterRecords(records []schema.DerivedObservation, filter schema.RegionFilter) []schema.DerivedObservation {
	if len(filter) == 0 {
		return records
	}

	result := make([]schema.DerivedObservation, 0, len(records))
	for _, r := range records {
		if filter.Contains(r.Region) {
			result = append(result, r)
		}
	}
	return result
}

// lastUpdate is the timestamp shared by today's records; the latest one wins
// should they differ.
func lastUpdate(today []schema.DerivedObservation) time.Time {
	var latest time.Time
	for _, r := range today {
		if r.Timestamp.After(latest) {
			latest = r.Timestamp
		}
	}
	return latest
}

// SplitRecent divides a most-recent batch into the records of the latest day
// and of the day before. Days are compared by their key, so batches with an
// odd size or uneven region coverage are attributed correctly. Records of
// older days are dropped.
func SplitRecent(records []schema.Observation, day func(time.Time) string) (today, yesterday []schema.Observation) {
	latest := make(map[string]time.Time)
	for _, r := range records {
		k := day(r.Timestamp)
		if t, ok := latest[k]; !ok || r.Timestamp.After(t) {
			latest[k] = r.Timestamp
		}
	}

	days := make([]string, 0, len(latest))
	for k := range latest {
		days = append(days, k)
	}
	sort.Slice(days, func(i, j int) bool {
		return latest[days[i]].After(latest[days[j]])
	})

	var todayKey, yesterdayKey string
	if len(days) > 0 {
		todayKey = days[0]
	}
	if len(days) > 1 {
		yesterdayKey = days[1]
	}

	today = make([]schema.Observation, 0)
	yesterday = make([]schema.Observation, 0)
	for _, r := range records {
		switch day(r.Timestamp) {
		case todayKey:
			today = append(today, r)
		case yesterdayKey:
			if len(days) > 1 {
				yesterday = append(yesterday, r)
			}
		}
	}
	return today, yesterday
}

// AnnotateDoublingRates attaches the doubling rate computed for the same
// region and timestamp in series. Records without a match carry none.
func AnnotateDoublingRates(records []schema.Observation, series map[string]schema.RegionSeries) []schema.DerivedObservation {
	result := make([]schema.DerivedObservation, len(records))
	for i, r := range records {
		result[i] = schema.Derive(r)
		for _, o := range series[r.Region] {
			if o.Timestamp.Equal(r.Timestamp) {
				result[i].DoublingRate = o.DoublingRate
				break
			}
		}
	}
	return result
}
