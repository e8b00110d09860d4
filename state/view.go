package state

import (
	"sort"
	"time"

	"github.com/fabianhinz/rkicasesdashboard-sub000/schema"
)

// View - everything the dashboard renders. A View is never modified after it
// has been installed; every change produces a new one.
type View struct {
	Regions   map[string]schema.RegionSeries `json:"regions"`
	Days      []schema.DayAggregate          `json:"days"`
	Today     []schema.DerivedObservation    `json:"today"`
	Yesterday []schema.DerivedObservation    `json:"yesterday"`

	Summary schema.Summary        `json:"summary"`
	Percent schema.SummaryPercent `json:"percent"`

	Filter  schema.RegionFilter    `json:"regionFilter"`
	Metrics schema.VisibleMetrics  `json:"visibleMetrics"`
	Display schema.DisplaySettings `json:"displaySettings"`

	Rankings     schema.CountyRankings `json:"rankings"`
	RankingError string                `json:"rankingError,omitempty"`

	UpdatedAt time.Time `json:"updatedAt"`
}

func emptyView() *View {
	return &View{
		Regions:   map[string]schema.RegionSeries{},
		Days:      []schema.DayAggregate{},
		Today:     []schema.DerivedObservation{},
		Yesterday: []schema.DerivedObservation{},
		Filter:    schema.RegionFilter{},
		Metrics:   schema.DefaultVisibleMetrics,
		Display:   schema.DefaultDisplaySettings,
		Rankings:  schema.CountyRankings{},
	}
}

// RegionNames lists the regions with data, sorted.
func (v *View) RegionNames() []string {
	names := make([]string, 0, len(v.Regions))
	for name := range v.Regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
