package ttc

// Route is a single transit line and its stops.
//
// The directional slices are nil when the feed defines no grouping for
// that heading and non-nil (possibly empty) when it does, so callers can
// tell "direction exists but has no stops" apart from "direction missing".
// Directional slices reference the same Stop values held in Stops.
type Route struct {
	Number int    `json:"number" groups:"basic"`
	Name   string `json:"name" groups:"basic"`

	Stops []*Stop `json:"stops" groups:"basic"`

	NorthStops []*Stop `json:"north_stops,omitempty" groups:"detailed"`
	SouthStops []*Stop `json:"south_stops,omitempty" groups:"detailed"`
	EastStops  []*Stop `json:"east_stops,omitempty" groups:"detailed"`
	WestStops  []*Stop `json:"west_stops,omitempty" groups:"detailed"`
}

// StopsByTag returns every stop on the route whose correlation tag equals
// tag, in feed order.
func (route *Route) StopsByTag(tag string) []*Stop {
	var matches []*Stop

	for _, stop := range route.Stops {
		if stop.Tag == tag {
			matches = append(matches, stop)
		}
	}

	return matches
}

// DirectionStops returns the stops grouped under the given heading, or
// nil if the feed defined no such direction.
func (route *Route) DirectionStops(heading Heading) []*Stop {
	switch heading {
	case HeadingNorth:
		return route.NorthStops
	case HeadingSouth:
		return route.SouthStops
	case HeadingEast:
		return route.EastStops
	default:
		return route.WestStops
	}
}

// Intersections returns the human readable title of every stop on the
// route, in feed order.
func (route *Route) Intersections() []string {
	intersections := make([]string, 0, len(route.Stops))

	for _, stop := range route.Stops {
		intersections = append(intersections, stop.Intersection)
	}

	return intersections
}

// StopLocations returns the coordinates of every stop on the route, in
// feed order.
func (route *Route) StopLocations() []Location {
	locations := make([]Location, 0, len(route.Stops))

	for _, stop := range route.Stops {
		locations = append(locations, stop.Location)
	}

	return locations
}
