package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fabianhinz/rkicasesdashboard-sub000/schema"
)

type changeRateTestCase struct {
	new                float64
	old                float64
	expectedChangeRate float64
}

func TestChangeRate(t *testing.T) {
	cases := []changeRateTestCase{
		{0, 0, 0},
		{10, 10, 0},
		{0, 10, -100},
		{10, 0, 100},
		{3, 5, -40},
		{3, 2, 50},
	}
	for _, c := range cases {
		assert.Equal(t, c.expectedChangeRate, ChangeRate(c.new, c.old), "wrong change rate of %v/%v", c.new, c.old)
	}
}

type sample struct {
	x interface{}
}

func sampleX(s *sample) (float64, bool) {
	v, ok := s.x.(float64)
	return v, ok
}

func TestSumFieldSkipsNonNumeric(t *testing.T) {
	records := []*sample{{x: float64(5)}, {x: "a"}, nil, {x: float64(3)}}
	assert.Equal(t, float64(8), SumField(records, sampleX))
}

func TestSumFieldSkipsNaN(t *testing.T) {
	records := []*sample{{x: math.NaN()}, {x: math.Inf(1)}, {x: float64(2)}}
	assert.Equal(t, float64(2), SumField(records, sampleX))
	assert.Equal(t, float64(0), SumField([]*sample{}, sampleX))
}

func TestSumObservations(t *testing.T) {
	records := []schema.DerivedObservation{
		{Observation: schema.Observation{Cases: 10, Recovered: schema.Float64(4)}},
		{Observation: schema.Observation{Cases: 5}},
	}
	assert.Equal(t, float64(15), SumObservations(records, schema.FieldCases))
	assert.Equal(t, float64(4), SumObservations(records, schema.FieldRecovered))
	assert.Equal(t, float64(0), SumObservations(records, schema.FieldDoublingRate))
}

func TestPercentageOf(t *testing.T) {
	p := PercentageOf(100, 50)
	assert.Equal(t, float64(50), p.Value)
	assert.Equal(t, "+50.00 %", p.Formatted)

	p = PercentageOf(50, 100)
	assert.Equal(t, float64(-100), p.Value)
	assert.Equal(t, "-100.00 %", p.Formatted)

	p = PercentageOf(200, 210)
	assert.Equal(t, "-5.00 %", p.Formatted)

	p = PercentageOf(10, 10)
	assert.Equal(t, float64(0), p.Value)
	assert.Equal(t, "0.00 %", p.Formatted)
}

func TestPercentageOfClampsNegativeInfinity(t *testing.T) {
	p := PercentageOf(0, 10)
	assert.Equal(t, float64(-100), p.Value)
	assert.Equal(t, "-100.00 %", p.Formatted)
}

func TestPercentageOfUndefined(t *testing.T) {
	p := PercentageOf(0, 0)
	assert.Equal(t, float64(0), p.Value)
	assert.Equal(t, "0.00 %", p.Formatted)

	p = PercentageOf(0, -5)
	assert.Equal(t, float64(100), p.Value)
	assert.Equal(t, "+100.00 %", p.Formatted)
}

func TestMean(t *testing.T) {
	assert.Equal(t, float64(15), Mean(10, 20))
	assert.Equal(t, float64(0), Mean())
}
