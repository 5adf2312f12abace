package ttc

import (
	"fmt"
	"strconv"
	"strings"
)

// Location is a geographic coordinate pair.
type Location struct {
	Latitude  float64 `json:"latitude" groups:"basic"`
	Longitude float64 `json:"longitude" groups:"basic"`
}

// String formats the location as "lat,lon", the form both the NextBus and
// Distance Matrix request URLs expect.
func (l Location) String() string {
	return strconv.FormatFloat(l.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(l.Longitude, 'f', -1, 64)
}

// ParseLocation parses a "lat,lon" pair.
func ParseLocation(value string) (Location, error) {
	latitudeText, longitudeText, found := strings.Cut(value, ",")
	if !found {
		return Location{}, fmt.Errorf("location %q must contain 2 co-ordinates", value)
	}

	latitude, err := strconv.ParseFloat(strings.TrimSpace(latitudeText), 64)
	if err != nil {
		return Location{}, fmt.Errorf("location %q has an invalid latitude", value)
	}

	longitude, err := strconv.ParseFloat(strings.TrimSpace(longitudeText), 64)
	if err != nil {
		return Location{}, fmt.Errorf("location %q has an invalid longitude", value)
	}

	return Location{Latitude: latitude, Longitude: longitude}, nil
}
