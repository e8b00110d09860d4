package schema

import (
	"sort"
	"time"
)

// Percentage - a day-over-day change with its display form, e.g. "+12.34 %"
type Percentage struct {
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
}

// Summary - headline totals of the most recent day
type Summary struct {
	Cases        float64   `json:"cases"`
	Deaths       float64   `json:"deaths"`
	Delta        float64   `json:"delta"`
	Rate         float64   `json:"rate"`
	DoublingRate float64   `json:"doublingRate"`
	Recovered    float64   `json:"recovered"`
	LastUpdate   time.Time `json:"lastUpdate"`
}

// SummaryPercent - change of each summary figure compared to the day before
type SummaryPercent struct {
	Cases        Percentage `json:"cases"`
	Deaths       Percentage `json:"deaths"`
	Delta        Percentage `json:"delta"`
	Rate         Percentage `json:"rate"`
	DoublingRate Percentage `json:"doublingRate"`
	Recovered    Percentage `json:"recovered"`
}

// DayAggregate - nationwide figures of one day
type DayAggregate struct {
	Key          string    `json:"key"`
	Timestamp    time.Time `json:"timestamp"`
	Cases        float64   `json:"cases"`
	Deaths       float64   `json:"deaths"`
	Delta        float64   `json:"delta"`
	Rate         float64   `json:"rate"`
	DoublingRate float64   `json:"doublingRate"`
	Regions      int       `json:"regions"`
}

// DaySeries - day aggregates keyed by their display date
type DaySeries map[string]DayAggregate

// Ordered returns the aggregates ascending by timestamp.
func (d DaySeries) Ordered() []DayAggregate {
	result := make([]DayAggregate, 0, len(d))
	for _, a := range d {
		result = append(result, a)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Timestamp.Equal(result[j].Timestamp) {
			return result[i].Key < result[j].Key
		}
		return result[i].Timestamp.Before(result[j].Timestamp)
	})
	return result
}
