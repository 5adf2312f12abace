package nextbus

import (
	"github.com/viktree/ttc-tracker/pkg/ttc"
)

// RouteConfigDocument is a parsed NextBus routeConfig response.
//
// Title is taken from the first top-level element under the body. A
// response carrying an Error element instead of a route has no title,
// which is how a bad route number shows up in the feed.
type RouteConfigDocument struct {
	Copyright string
	Title     string

	Routes []RouteConfig
}

type RouteConfig struct {
	Tag           string  `xml:"tag,attr"`
	Title         string  `xml:"title,attr"`
	Color         string  `xml:"color,attr"`
	OppositeColor string  `xml:"oppositeColor,attr"`
	LatMin        float64 `xml:"latMin,attr"`
	LatMax        float64 `xml:"latMax,attr"`
	LonMin        float64 `xml:"lonMin,attr"`
	LonMax        float64 `xml:"lonMax,attr"`

	Stops      []StopConfig      `xml:"stop"`
	Directions []DirectionConfig `xml:"direction"`
}

type StopConfig struct {
	Tag    string  `xml:"tag,attr"`
	Title  string  `xml:"title,attr"`
	StopID string  `xml:"stopId,attr"`
	Lat    float64 `xml:"lat,attr"`
	Lon    float64 `xml:"lon,attr"`
}

type DirectionConfig struct {
	Tag   string `xml:"tag,attr"`
	Title string `xml:"title,attr"`
	Name  string `xml:"name,attr"`

	Stops []DirectionStopConfig `xml:"stop"`
}

type DirectionStopConfig struct {
	Tag string `xml:"tag,attr"`
}

// Route builds the domain route for the given route number out of the
// parsed document.
//
// All stop elements are collected first, in feed order, then each
// direction element groups the stops whose correlation tag matches one of
// its stop references under the direction's heading.
func (document *RouteConfigDocument) Route(number int) (*ttc.Route, error) {
	if document.Title == "" {
		return nil, RouteNotFoundError{Number: number}
	}

	route := &ttc.Route{
		Number: number,
		Name:   document.Title,
		Stops:  []*ttc.Stop{},
	}

	for _, config := range document.Routes {
		for _, stop := range config.Stops {
			route.Stops = append(route.Stops, &ttc.Stop{
				Route:        route.Name,
				ID:           stop.StopID,
				Intersection: stop.Title,
				Location:     ttc.Location{Latitude: stop.Lat, Longitude: stop.Lon},
				Tag:          stop.Tag,
			})
		}
	}

	for _, config := range document.Routes {
		for _, direction := range config.Directions {
			grouped := []*ttc.Stop{}

			for _, reference := range direction.Stops {
				grouped = append(grouped, route.StopsByTag(reference.Tag)...)
			}

			setDirectionStops(route, ttc.ParseHeading(direction.Title), grouped)
		}
	}

	return route, nil
}

func setDirectionStops(route *ttc.Route, heading ttc.Heading, stops []*ttc.Stop) {
	switch heading {
	case ttc.HeadingNorth:
		route.NorthStops = stops
	case ttc.HeadingSouth:
		route.SouthStops = stops
	case ttc.HeadingEast:
		route.EastStops = stops
	default:
		route.WestStops = stops
	}
}
