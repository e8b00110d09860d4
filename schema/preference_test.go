package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegionFilter(t *testing.T) {
	var empty RegionFilter
	assert.True(t, empty.Contains("Bayern"), "empty filter should include all regions")

	f := RegionFilter{"Bayern", "Berlin"}
	assert.True(t, f.Contains("Berlin"))
	assert.False(t, f.Contains("Hessen"))
}

func TestRegionFilterNormalize(t *testing.T) {
	f := RegionFilter{"Bayern", "", "Berlin", "Bayern"}
	assert.Equal(t, RegionFilter{"Bayern", "Berlin"}, f.Normalize())
}

func TestCountyRankingsFilter(t *testing.T) {
	r := CountyRankings{
		"Bayern": {{County: "SK München", Region: "Bayern", Rate: 50}},
		"Berlin": {{County: "Berlin Mitte", Region: "Berlin", Rate: 70}},
	}

	assert.Len(t, r.Filter(nil), 2)

	filtered := r.Filter(RegionFilter{"Berlin"})
	assert.Len(t, filtered, 1)
	assert.Equal(t, "Berlin Mitte", filtered["Berlin"][0].County)
}
