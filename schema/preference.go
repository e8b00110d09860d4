package schema

const (
	PreferenceCollection = "preference"

	PreferenceRegionFilter    = "regionFilter"
	PreferenceVisibleMetrics  = "visibleMetrics"
	PreferenceDisplaySettings = "displaySettings"
)

// RegionFilter - selected regions, empty means every region
type RegionFilter []string

// Contains reports whether a record of the region passes the filter.
func (f RegionFilter) Contains(region string) bool {
	if len(f) == 0 {
		return true
	}
	for _, r := range f {
		if r == region {
			return true
		}
	}
	return false
}

// Normalize removes duplicates and empty entries, keeping the first
// occurrence order.
func (f RegionFilter) Normalize() RegionFilter {
	seen := make(map[string]struct{}, len(f))
	result := make(RegionFilter, 0, len(f))
	for _, r := range f {
		if r == "" {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		result = append(result, r)
	}
	return result
}

// DisplaySettings - chart presentation switches
type DisplaySettings struct {
	LogScale  bool `json:"logScale" bson:"log_scale"`
	Normalize bool `json:"normalize" bson:"normalize"`
	ShowAxis  bool `json:"showAxis" bson:"show_axis"`
}

// DefaultDisplaySettings is used until the user changes them.
var DefaultDisplaySettings = DisplaySettings{
	ShowAxis: true,
}
