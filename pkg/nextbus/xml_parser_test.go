package nextbus

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dawesFeed = `<?xml version="1.0" encoding="utf-8" ?>
<body copyright="All data copyright Toronto Transit Commission 2016.">
<route tag="23" title="23-Dawes" color="ff0000" oppositeColor="ffffff" latMin="43.68" latMax="43.70" lonMin="-79.31" lonMax="-79.28">
<stop tag="1001" title="Dawes Rd At Victoria Park Ave" lat="43.699" lon="-79.289" stopId="10723"/>
<stop tag="1002" title="Main Street Station" lat="43.689" lon="-79.301" stopId="14199"/>
<direction tag="23_1_23" title="North - 23 Dawes towards Victoria Park Station" name="North">
<stop tag="1001"/>
</direction>
</route>
</body>`

const errorFeed = `<?xml version="1.0" encoding="utf-8" ?>
<body copyright="All data copyright Toronto Transit Commission 2016.">
<Error shouldRetry="false">
Could not get route "7668" for agency tag "ttc".
</Error>
</body>`

func TestParseXML(t *testing.T) {
	document, err := ParseXML(strings.NewReader(dawesFeed))
	require.NoError(t, err)

	assert.Equal(t, "All data copyright Toronto Transit Commission 2016.", document.Copyright)
	assert.Equal(t, "23-Dawes", document.Title)

	require.Len(t, document.Routes, 1)
	route := document.Routes[0]
	assert.Equal(t, "23", route.Tag)

	require.Len(t, route.Stops, 2)
	assert.Equal(t, "1001", route.Stops[0].Tag)
	assert.Equal(t, "Dawes Rd At Victoria Park Ave", route.Stops[0].Title)
	assert.Equal(t, "10723", route.Stops[0].StopID)
	assert.Equal(t, 43.699, route.Stops[0].Lat)
	assert.Equal(t, -79.289, route.Stops[0].Lon)

	require.Len(t, route.Directions, 1)
	assert.Equal(t, "North - 23 Dawes towards Victoria Park Station", route.Directions[0].Title)
	require.Len(t, route.Directions[0].Stops, 1)
	assert.Equal(t, "1001", route.Directions[0].Stops[0].Tag)
}

func TestParseXMLMalformed(t *testing.T) {
	_, err := ParseXML(strings.NewReader("<body><route"))
	assert.Error(t, err)
}

func TestRouteRoundTrip(t *testing.T) {
	document, err := ParseXML(strings.NewReader(dawesFeed))
	require.NoError(t, err)

	route, err := document.Route(23)
	require.NoError(t, err)

	assert.Equal(t, 23, route.Number)
	assert.Equal(t, "23-Dawes", route.Name)

	require.Len(t, route.Stops, 2)
	assert.Equal(t, "Dawes Rd At Victoria Park Ave", route.Stops[0].Intersection)
	assert.Equal(t, "Main Street Station", route.Stops[1].Intersection)
	assert.Equal(t, "23-Dawes", route.Stops[0].Route)

	require.Len(t, route.NorthStops, 1)
	assert.Same(t, route.Stops[0], route.NorthStops[0], "direction groupings must reference the stops held in Stops")

	assert.Nil(t, route.SouthStops)
	assert.Nil(t, route.EastStops)
	assert.Nil(t, route.WestStops)
}

func TestRouteStopOrder(t *testing.T) {
	feed := `<body>
<route tag="501" title="501-Queen">
<stop tag="3001" title="A" lat="43.1" lon="-79.1" stopId="11111"/>
<stop tag="3002" title="B" lat="43.2" lon="-79.2" stopId="11112"/>
<stop tag="3003" title="C" lat="43.3" lon="-79.3" stopId="11113"/>
<stop tag="3004" title="D" lat="43.4" lon="-79.4"/>
</route>
</body>`

	document, err := ParseXML(strings.NewReader(feed))
	require.NoError(t, err)

	route, err := document.Route(501)
	require.NoError(t, err)

	require.Len(t, route.Stops, 4)
	for i, intersection := range []string{"A", "B", "C", "D"} {
		assert.Equal(t, intersection, route.Stops[i].Intersection)
	}

	// The last stop carries no public identifier, only a tag.
	assert.Empty(t, route.Stops[3].ID)
	assert.Equal(t, "3004", route.Stops[3].Tag)
}

func TestRouteUnknownDirectionGroupsWest(t *testing.T) {
	feed := `<body>
<route tag="95" title="95-York Mills">
<stop tag="2001" title="A" lat="43.1" lon="-79.1"/>
<direction tag="95_1" title="Unknown" name="">
<stop tag="2001"/>
</direction>
</route>
</body>`

	document, err := ParseXML(strings.NewReader(feed))
	require.NoError(t, err)

	route, err := document.Route(95)
	require.NoError(t, err)

	require.Len(t, route.WestStops, 1)
	assert.Same(t, route.Stops[0], route.WestStops[0])
	assert.Nil(t, route.NorthStops)
	assert.Nil(t, route.SouthStops)
	assert.Nil(t, route.EastStops)
}

func TestRouteDirectionWithoutStopsIsPresentButEmpty(t *testing.T) {
	feed := `<body>
<route tag="23" title="23-Dawes">
<stop tag="1001" title="A" lat="43.1" lon="-79.1"/>
<direction tag="23_1" title="East - 23 Dawes" name="East"></direction>
</route>
</body>`

	document, err := ParseXML(strings.NewReader(feed))
	require.NoError(t, err)

	route, err := document.Route(23)
	require.NoError(t, err)

	assert.NotNil(t, route.EastStops)
	assert.Empty(t, route.EastStops)
}

func TestRouteDuplicateTagsAllGrouped(t *testing.T) {
	feed := `<body>
<route tag="23" title="23-Dawes">
<stop tag="1001" title="A" lat="43.1" lon="-79.1"/>
<stop tag="1002" title="B" lat="43.2" lon="-79.2"/>
<stop tag="1001" title="C" lat="43.3" lon="-79.3"/>
<direction tag="23_1" title="South - 23 Dawes" name="South">
<stop tag="1001"/>
</direction>
</route>
</body>`

	document, err := ParseXML(strings.NewReader(feed))
	require.NoError(t, err)

	route, err := document.Route(23)
	require.NoError(t, err)

	require.Len(t, route.SouthStops, 2)
	assert.Same(t, route.Stops[0], route.SouthStops[0])
	assert.Same(t, route.Stops[2], route.SouthStops[1])
}

func TestRouteNotFound(t *testing.T) {
	document, err := ParseXML(strings.NewReader(errorFeed))
	require.NoError(t, err)

	_, err = document.Route(7668)
	require.Error(t, err)

	var notFound RouteNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, 7668, notFound.Number)
	assert.Contains(t, err.Error(), "7668")
}

func TestRouteNotFoundIsNotTimeout(t *testing.T) {
	document, err := ParseXML(strings.NewReader(errorFeed))
	require.NoError(t, err)

	_, err = document.Route(7668)
	assert.False(t, errors.Is(err, ErrRequestTimeout))
}
