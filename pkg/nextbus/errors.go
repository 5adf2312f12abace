package nextbus

import (
	"errors"
	"fmt"
)

// ErrRequestTimeout reports that the feed did not answer within the
// client timeout.
var ErrRequestTimeout = errors.New("route config request timed out")

// RouteNotFoundError is returned when a route number does not resolve to
// any route in the feed.
type RouteNotFoundError struct {
	Number int
}

func (e RouteNotFoundError) Error() string {
	return fmt.Sprintf("there is no TTC bus route corresponding to the number %d", e.Number)
}
