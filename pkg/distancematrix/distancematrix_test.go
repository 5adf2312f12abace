package distancematrix

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viktree/ttc-tracker/pkg/ttc"
)

const cannedResponse = `<?xml version="1.0" encoding="UTF-8"?>
<DistanceMatrixResponse>
 <status>OK</status>
 <origin_address>Toronto, ON, Canada</origin_address>
 <destination_address>North York, ON, Canada</destination_address>
 <row>
  <element>
   <status>OK</status>
   <duration>
    <value>720</value>
    <text>12 mins</text>
   </duration>
   <distance>
    <value>3400</value>
    <text>3.4 km</text>
   </distance>
  </element>
 </row>
</DistanceMatrixResponse>`

const deniedResponse = `<?xml version="1.0" encoding="UTF-8"?>
<DistanceMatrixResponse>
 <status>REQUEST_DENIED</status>
 <error_message>The provided API key is invalid.</error_message>
</DistanceMatrixResponse>`

func TestParseResponse(t *testing.T) {
	result, err := parseResponse(strings.NewReader(cannedResponse))
	require.NoError(t, err)

	assert.Equal(t, "3.4 km", result.Distance)
	assert.Equal(t, "12 mins", result.Duration)
}

func TestParseResponseMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no rows", deniedResponse},
		{"empty row", `<DistanceMatrixResponse><status>OK</status><row></row></DistanceMatrixResponse>`},
		{"element without texts", `<DistanceMatrixResponse><row><element><status>ZERO_RESULTS</status></element></row></DistanceMatrixResponse>`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseResponse(strings.NewReader(tc.body))
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestLookup(t *testing.T) {
	var requestedQuery string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedQuery = r.URL.RawQuery
		w.Write([]byte(cannedResponse))
	}))
	defer server.Close()

	client := NewClient("testing")
	client.Endpoint = server.URL

	origin := ttc.Location{Latitude: 43.6532, Longitude: -79.3832}
	destination := ttc.Location{Latitude: 43.7615, Longitude: -79.4111}

	result, err := client.Lookup(context.Background(), origin, destination)
	require.NoError(t, err)

	assert.Equal(t, "origins=43.6532,-79.3832&destinations=43.7615,-79.4111&mode=transit&key=testing", requestedQuery)

	assert.Equal(t, "3.4 km", result.Distance)
	assert.Equal(t, "12 mins", result.Duration)
}

func TestLookupRequestDenied(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(deniedResponse))
	}))
	defer server.Close()

	client := NewClient("testing")
	client.Endpoint = server.URL

	_, err := client.Lookup(context.Background(), ttc.Location{}, ttc.Location{})
	require.ErrorIs(t, err, ErrMalformedResponse)
}
