package directory

import "github.com/fwojciec/reservo"

// DefaultRules returns the built-in directory site rules in match order.
func DefaultRules() []reservo.SiteRule {
	return []reservo.SiteRule{
		ZomatoRule{},
		YelpRule{},
		GoogleMapsRule{},
		TripAdvisorRule{},
		OpenTableRule{},
		UberEatsRule{},
		DoorDashRule{},
	}
}

// segmentAfter returns the segment following the first segment equal to
// marker, or "" if there is none.
func segmentAfter(segments []string, marker string) string {
	for i, s := range segments {
		if s == marker && i+1 < len(segments) {
			return segments[i+1]
		}
	}
	return ""
}
