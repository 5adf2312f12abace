package distancematrix

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/viktree/ttc-tracker/pkg/ttc"
)

const (
	DefaultEndpoint = "https://maps.googleapis.com/maps/api/distancematrix/xml"

	DefaultTimeout = 15 * time.Second
)

// ErrMalformedResponse reports a Distance Matrix response without the
// expected row/element structure.
var ErrMalformedResponse = errors.New("distance matrix response is missing the expected row structure")

// ErrRequestTimeout reports that the Distance Matrix API did not answer
// within the client timeout.
var ErrRequestTimeout = errors.New("distance matrix request timed out")

// Result is the travel distance and duration between two locations, as
// reported by the Distance Matrix API. Both values are the API's display
// text and are passed through unparsed.
type Result struct {
	Distance string `json:"distance"`
	Duration string `json:"duration"`
}

// Client queries the Google Maps Distance Matrix API for transit travel
// times between two points.
type Client struct {
	Endpoint string
	Key      string

	HTTPClient *http.Client
}

func NewClient(key string) *Client {
	return &Client{
		Endpoint: DefaultEndpoint,
		Key:      key,
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// Lookup returns the transit distance and duration between origin and
// destination. Results vary with live traffic so there is nothing stable
// to assert about them beyond the extraction itself.
func (c *Client) Lookup(ctx context.Context, origin ttc.Location, destination ttc.Location) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(origin, destination), nil)
	if err != nil {
		return nil, fmt.Errorf("build distance matrix request: %w", err)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("fetch distance matrix: %w", ErrRequestTimeout)
		}

		return nil, fmt.Errorf("fetch distance matrix: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch distance matrix: unexpected status %d", resp.StatusCode)
	}

	return parseResponse(resp.Body)
}

func (c *Client) requestURL(origin ttc.Location, destination ttc.Location) string {
	return fmt.Sprintf(
		"%s?origins=%s&destinations=%s&mode=transit&key=%s",
		c.Endpoint,
		origin,
		destination,
		c.Key,
	)
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient == nil {
		return &http.Client{Timeout: DefaultTimeout}
	}

	return c.HTTPClient
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
