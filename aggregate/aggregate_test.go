package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fabianhinz/rkicasesdashboard-sub000/schema"
)

var day0 = time.Date(2020, 4, 1, 0, 0, 0, 0, time.UTC)

func dayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

func obs(region string, day int, cases, deaths, delta, rate float64) schema.Observation {
	return schema.Observation{
		Region:    region,
		Timestamp: day0.AddDate(0, 0, day),
		Cases:     cases,
		Deaths:    deaths,
		Delta:     delta,
		Rate:      rate,
	}
}

func fixture() []schema.Observation {
	return []schema.Observation{
		obs("Bayern", 0, 10, 1, 2, 1.0),
		obs("Bayern", 1, 10, 1, 0, 1.0),
		obs("Bayern", 2, 10, 1, 0, 1.0),
		obs("Bayern", 3, 20, 2, 10, 2.0),
		obs("Bayern", 4, 40, 3, 20, 4.0),
		obs("Berlin", 0, 5, 0, 1, 0.5),
		obs("Berlin", 1, 6, 0, 1, 0.6),
		obs("Berlin", 2, 7, 0, 1, 0.7),
	}
}

func TestBuildRegionSeries(t *testing.T) {
	series := BuildRegionSeries(fixture())

	assert.Len(t, series, 2)
	assert.Len(t, series["Bayern"], 5)
	assert.Len(t, series["Berlin"], 3)

	bayern := series["Bayern"]
	assert.Nil(t, bayern[2].DoublingRate)
	assert.NotNil(t, bayern[3].DoublingRate)
	assert.NotNil(t, bayern[4].DoublingRate)

	// mean(7, 6) against 5
	assert.NotNil(t, series["Berlin"][2].DoublingRate)
}

func TestBuildRegionSeriesSortsAndDeduplicates(t *testing.T) {
	raw := []schema.Observation{
		obs("Hessen", 2, 30, 0, 0, 0),
		obs("Hessen", 0, 10, 0, 0, 0),
		obs("Hessen", 1, 20, 0, 0, 0),
		obs("Hessen", 1, 99, 0, 0, 0),
	}

	series := BuildRegionSeries(raw)["Hessen"]
	assert.Len(t, series, 3)
	assert.Equal(t, float64(10), series[0].Cases)
	assert.Equal(t, float64(20), series[1].Cases, "first observation of a timestamp wins")
	assert.Equal(t, float64(30), series[2].Cases)
	for i := 1; i < len(series); i++ {
		assert.True(t, series[i-1].Timestamp.Before(series[i].Timestamp))
	}
}

func TestBuildDaySeries(t *testing.T) {
	days := BuildDaySeries(BuildRegionSeries(fixture()), dayKey)

	assert.Len(t, days, 5, "one entry per distinct timestamp")

	first := days[dayKey(day0)]
	assert.Equal(t, 2, first.Regions)
	assert.Equal(t, float64(15), first.Cases)
	assert.Equal(t, float64(1), first.Deaths)
	assert.Equal(t, float64(3), first.Delta)
	assert.InDelta(t, 0.75, first.Rate, 1e-9)
	assert.Equal(t, float64(0), first.DoublingRate)

	last := days[dayKey(day0.AddDate(0, 0, 4))]
	assert.Equal(t, 1, last.Regions)
	assert.Equal(t, float64(40), last.Cases)

	ordered := days.Ordered()
	assert.Len(t, ordered, 5)
	for i := 1; i < len(ordered); i++ {
		assert.True(t, ordered[i-1].Timestamp.Before(ordered[i].Timestamp))
	}
}

func TestBuildDaySeriesAveragesMissingDoublingRateAsZero(t *testing.T) {
	series := map[string]schema.RegionSeries{
		"Bayern": {{Observation: obs("Bayern", 0, 1, 0, 0, 2), DoublingRate: schema.Float64(4)}},
		"Berlin": {{Observation: obs("Berlin", 0, 1, 0, 0, 4)}},
	}

	day := BuildDaySeries(series, dayKey)[dayKey(day0)]
	assert.Equal(t, float64(2), day.DoublingRate)
	assert.Equal(t, float64(3), day.Rate)
}

func TestBuildDaySeriesMergesSameKey(t *testing.T) {
	morning := obs("Bayern", 0, 10, 0, 0, 0)
	evening := obs("Bayern", 0, 12, 0, 0, 0)
	evening.Timestamp = evening.Timestamp.Add(18 * time.Hour)

	days := BuildDaySeries(BuildRegionSeries([]schema.Observation{evening, morning}), dayKey)
	assert.Len(t, days, 1)
	merged := days[dayKey(day0)]
	assert.Equal(t, float64(22), merged.Cases)
	assert.Equal(t, 2, merged.Regions)
	assert.True(t, merged.Timestamp.Equal(morning.Timestamp))
}

func TestBuildSummary(t *testing.T) {
	today := []schema.DerivedObservation{
		{Observation: obs("Bayern", 1, 100, 10, 20, 8), DoublingRate: schema.Float64(4)},
		{Observation: obs("Berlin", 1, 50, 5, 10, 8)},
	}
	yesterday := []schema.DerivedObservation{
		{Observation: obs("Bayern", 0, 80, 10, 10, 4), DoublingRate: schema.Float64(2)},
		{Observation: obs("Berlin", 0, 50, 4, 10, 4)},
	}
	today[0].Recovered = schema.Float64(30)

	summary, percent := BuildSummary(today, yesterday, nil)
	assert.Equal(t, float64(150), summary.Cases)
	assert.Equal(t, float64(15), summary.Deaths)
	assert.Equal(t, float64(30), summary.Delta)
	assert.Equal(t, float64(30), summary.Recovered)
	assert.Equal(t, float64(1), summary.Rate, "rate is averaged over all known regions")
	assert.Equal(t, 0.25, summary.DoublingRate)
	assert.True(t, summary.LastUpdate.Equal(day0.AddDate(0, 0, 1)))

	assert.InDelta(t, (1-130.0/150.0)*100, percent.Cases.Value, 1e-9)
	assert.Equal(t, "+50.00 %", percent.Rate.Formatted)
	assert.Equal(t, "+33.33 %", percent.Delta.Formatted)
	assert.Equal(t, "+100.00 %", percent.Recovered.Formatted)
}

func TestBuildSummaryFiltered(t *testing.T) {
	today := []schema.DerivedObservation{
		{Observation: obs("Bayern", 1, 100, 10, 20, 8), DoublingRate: schema.Float64(4)},
		{Observation: obs("Berlin", 1, 50, 5, 10, 6)},
	}
	yesterday := []schema.DerivedObservation{
		{Observation: obs("Bayern", 0, 50, 10, 10, 4)},
		{Observation: obs("Berlin", 0, 50, 4, 10, 4)},
	}

	summary, percent := BuildSummary(today, yesterday, schema.RegionFilter{"Bayern"})
	assert.Equal(t, float64(100), summary.Cases)
	assert.Equal(t, float64(8), summary.Rate)
	assert.Equal(t, float64(4), summary.DoublingRate)
	assert.Equal(t, "+50.00 %", percent.Cases.Formatted)

	summary, _ = BuildSummary(today, yesterday, schema.RegionFilter{"Bayern", "Berlin"})
	assert.Equal(t, float64(7), summary.Rate)
}

func TestSplitRecent(t *testing.T) {
	records := []schema.Observation{
		obs("Bayern", 2, 3, 0, 0, 0),
		obs("Berlin", 2, 3, 0, 0, 0),
		obs("Hessen", 2, 3, 0, 0, 0),
		obs("Bayern", 1, 2, 0, 0, 0),
		obs("Berlin", 1, 2, 0, 0, 0),
		obs("Bayern", 0, 1, 0, 0, 0),
	}

	today, yesterday := SplitRecent(records, dayKey)
	assert.Len(t, today, 3)
	assert.Len(t, yesterday, 2)
	for _, r := range today {
		assert.Equal(t, float64(3), r.Cases)
	}
	for _, r := range yesterday {
		assert.Equal(t, float64(2), r.Cases)
	}
}

func TestSplitRecentSingleDay(t *testing.T) {
	today, yesterday := SplitRecent([]schema.Observation{obs("Bayern", 0, 1, 0, 0, 0)}, dayKey)
	assert.Len(t, today, 1)
	assert.Empty(t, yesterday)

	today, yesterday = SplitRecent(nil, dayKey)
	assert.Empty(t, today)
	assert.Empty(t, yesterday)
}

func TestAnnotateDoublingRates(t *testing.T) {
	series := BuildRegionSeries(fixture())
	records := []schema.Observation{
		obs("Bayern", 4, 40, 3, 20, 4.0),
		obs("Saarland", 4, 1, 0, 0, 0),
	}

	annotated := AnnotateDoublingRates(records, series)
	assert.Equal(t, series["Bayern"][4].DoublingRate, annotated[0].DoublingRate)
	assert.Nil(t, annotated[1].DoublingRate)
}

func TestPipelineIdempotent(t *testing.T) {
	raw := fixture()

	s1 := BuildRegionSeries(raw)
	s2 := BuildRegionSeries(raw)
	assert.Equal(t, s1, s2)

	assert.Equal(t, BuildDaySeries(s1, dayKey), BuildDaySeries(s2, dayKey))

	today, yesterday := SplitRecent(raw, dayKey)
	a := AnnotateDoublingRates(today, s1)
	b := AnnotateDoublingRates(yesterday, s1)
	sum1, pct1 := BuildSummary(a, b, schema.RegionFilter{"Bayern"})
	sum2, pct2 := BuildSummary(a, b, schema.RegionFilter{"Bayern"})
	assert.Equal(t, sum1, sum2)
	assert.Equal(t, pct1, pct2)
}
