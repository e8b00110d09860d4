package schema

import "fmt"

// Metric - a chartable figure of the dashboard
type Metric string

const (
	MetricCases        Metric = "cases"
	MetricDeaths       Metric = "deaths"
	MetricDelta        Metric = "delta"
	MetricRate         Metric = "rate"
	MetricDoublingRate Metric = "doublingRate"
	MetricRecovered    Metric = "recovered"
)

var ErrUnknownMetric = fmt.Errorf("unknown metric")

// AllMetrics lists every chartable metric in display order.
var AllMetrics = []Metric{
	MetricCases,
	MetricDeaths,
	MetricDelta,
	MetricRate,
	MetricDoublingRate,
	MetricRecovered,
}

// DefaultVisibleMetrics is used until the user changes the selection.
var DefaultVisibleMetrics = VisibleMetrics{
	MetricCases,
	MetricDeaths,
	MetricDelta,
	MetricRate,
	MetricDoublingRate,
}

// ParseMetric validates a metric name.
func ParseMetric(s string) (Metric, error) {
	for _, m := range AllMetrics {
		if string(m) == s {
			return m, nil
		}
	}
	return "", ErrUnknownMetric
}

// Field returns the observation field backing the metric.
func (m Metric) Field() Field {
	return Field(m)
}

// VisibleMetrics - ordered set of metrics whose charts are shown
type VisibleMetrics []Metric

// Contains reports whether m is selected.
func (v VisibleMetrics) Contains(m Metric) bool {
	for _, s := range v {
		if s == m {
			return true
		}
	}
	return false
}

// Toggle flips m and returns the new selection. Switching off the only
// selected metric is rejected: the selection is returned unchanged and
// changed is false.
func (v VisibleMetrics) Toggle(m Metric) (result VisibleMetrics, changed bool) {
	if !v.Contains(m) {
		result = make(VisibleMetrics, 0, len(v)+1)
		// keep display order stable
		for _, candidate := range AllMetrics {
			if candidate == m || v.Contains(candidate) {
				result = append(result, candidate)
			}
		}
		return result, true
	}

	if len(v) <= 1 {
		return v.clone(), false
	}

	result = make(VisibleMetrics, 0, len(v)-1)
	for _, s := range v {
		if s != m {
			result = append(result, s)
		}
	}
	return result, true
}

// Valid reports whether the selection only holds known metrics and at least
// one of them.
func (v VisibleMetrics) Valid() bool {
	if len(v) == 0 {
		return false
	}
	for _, m := range v {
		if _, err := ParseMetric(string(m)); err != nil {
			return false
		}
	}
	return true
}

func (v VisibleMetrics) clone() VisibleMetrics {
	c := make(VisibleMetrics, len(v))
	copy(c, v)
	return c
}
