package nextbus

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
	DefaultEndpoint = "https://webservices.nextbus.com/service/publicXMLFeed"
	DefaultAgency   = "ttc"

	DefaultTimeout = 15 * time.Second
)

// Client fetches route metadata from the NextBus public XML feed.
type Client struct {
	Endpoint string
	Agency   string

	HTTPClient *http.Client
}

func NewClient() *Client {
	return &Client{
		Endpoint: DefaultEndpoint,
		Agency:   DefaultAgency,
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// Route fetches the routeConfig document for the given route number and
// builds the domain route from it. The response is parsed in memory, no
// staging files are written.
func (c *Client) Route(ctx context.Context, number int) (*ttc.Route, error) {
	requestURL := fmt.Sprintf("%s?command=routeConfig&a=%s&r=%d", c.Endpoint, c.Agency, number)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build route config request for %d: %w", number, err)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("fetch route config for %d: %w", number, ErrRequestTimeout)
		}

		return nil, fmt.Errorf("fetch route config for %d: %w", number, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch route config for %d: unexpected status %d", number, resp.StatusCode)
	}

	document, err := ParseXML(resp.Body)
	if err != nil {
		return nil, err
	}

	return document.Route(number)
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
