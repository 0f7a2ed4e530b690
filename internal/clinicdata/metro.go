package clinicdata

import "strings"

// metroClusters groups nearby cities into named metropolitan areas. A search
// for a hub city must also surface the cluster members, and vice versa.
var metroClusters = map[string][]string{
	"Dallas-Fort Worth": {"Dallas", "Plano", "Arlington", "Frisco", "Irving", "Fort Worth"},
	"Greater Austin":    {"Austin", "Round Rock", "Cedar Park"},
	"Central Texas":     {"Temple", "Waco", "Killeen"},
	"Greater Houston":   {"Houston", "Sugar Land", "The Woodlands"},
	"San Antonio Area":  {"San Antonio", "New Braunfels"},
}

// MetroArea returns the metropolitan area name containing the city, or ""
// when the city is not part of any configured cluster.
func MetroArea(city string) string {
	for name, cities := range metroClusters {
		for _, c := range cities {
			if strings.EqualFold(c, city) {
				return name
			}
		}
	}
	return ""
}

// MetroCities returns every city in the given city's cluster, including the
// city itself. Cities outside any cluster map to themselves.
func MetroCities(city string) []string {
	for _, cities := range metroClusters {
		for _, c := range cities {
			if strings.EqualFold(c, city) {
				out := make([]string, len(cities))
				copy(out, cities)
				return out
			}
		}
	}
	return []string{city}
}

// SameMetro reports whether two cities share a cluster (or are the same
// city).
func SameMetro(a, b string) bool {
	if strings.EqualFold(a, b) {
		return true
	}
	for _, c := range MetroCities(a) {
		if strings.EqualFold(c, b) {
			return true
		}
	}
	return false
}
