package consts

import (
	"fmt"
	"strings"
)

// KnownRegionCount is the number of federal states reported by the upstream
// feed. It normalises region averages when no region filter is set.
const KnownRegionCount = 16

// Regions lists the federal states in the order the feed reports them.
var Regions = []string{
	"Baden-Württemberg",
	"Bayern",
	"Berlin",
	"Brandenburg",
	"Bremen",
	"Hamburg",
	"Hessen",
	"Mecklenburg-Vorpommern",
	"Niedersachsen",
	"Nordrhein-Westfalen",
	"Rheinland-Pfalz",
	"Saarland",
	"Sachsen",
	"Sachsen-Anhalt",
	"Schleswig-Holstein",
	"Thüringen",
}

var regionKeys map[string]string

func init() {
	regionKeys = make(map[string]string, len(Regions))
	for _, r := range Regions {
		regionKeys[RegionKey(r)] = r
	}
}

// RegionKey - normalize a region name into all small case with underscore
func RegionKey(region string) string {
	return strings.Replace(strings.ToLower(strings.TrimSpace(region)), " ", "_", -1)
}

// RegionName - resolve a region name or key into the canonical region name
func RegionName(region string) (string, error) {
	if name, ok := regionKeys[RegionKey(region)]; ok {
		return name, nil
	}
	return region, fmt.Errorf("%s not exist", region)
}

// IsKnownRegion reports whether the region resolves to one of the federal states.
func IsKnownRegion(region string) bool {
	_, err := RegionName(region)
	return err == nil
}
