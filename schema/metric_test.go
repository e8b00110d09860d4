package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleLastVisibleMetric(t *testing.T) {
	before := VisibleMetrics{MetricRate}

	after, changed := before.Toggle(MetricRate)
	assert.False(t, changed)
	assert.Equal(t, before, after, "last metric should stay enabled")
}

func TestToggleMetric(t *testing.T) {
	v := VisibleMetrics{MetricCases, MetricRate}

	v, changed := v.Toggle(MetricDeaths)
	assert.True(t, changed)
	assert.Equal(t, VisibleMetrics{MetricCases, MetricDeaths, MetricRate}, v)

	v, changed = v.Toggle(MetricCases)
	assert.True(t, changed)
	assert.Equal(t, VisibleMetrics{MetricDeaths, MetricRate}, v)
}

func TestParseMetric(t *testing.T) {
	m, err := ParseMetric("doublingRate")
	assert.Nil(t, err)
	assert.Equal(t, MetricDoublingRate, m)

	_, err = ParseMetric("population")
	assert.Equal(t, ErrUnknownMetric, err)
}

func TestVisibleMetricsValid(t *testing.T) {
	assert.True(t, DefaultVisibleMetrics.Valid())
	assert.False(t, VisibleMetrics{}.Valid())
	assert.False(t, VisibleMetrics{"population"}.Valid())
}
