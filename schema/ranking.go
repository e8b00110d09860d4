package schema

// CountyRanking - seven day incidence of one county
type CountyRanking struct {
	County string  `json:"county"`
	Region string  `json:"region"`
	Rate   float64 `json:"rate"`
}

// CountyRankings - counties per region, most affected first
type CountyRankings map[string][]CountyRanking

// Filter keeps only the regions selected by the filter.
func (r CountyRankings) Filter(filter RegionFilter) CountyRankings {
	result := make(CountyRankings, len(r))
	for region, counties := range r {
		if filter.Contains(region) {
			result[region] = counties
		}
	}
	return result
}
