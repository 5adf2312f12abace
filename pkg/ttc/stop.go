package ttc

// Stop is a location where a vehicle on a route will stop.
//
// ID is the public identifier assigned by the TTC and Tag is the NextBus
// key that correlates the stop with its direction groupings. Both are 4-5
// digit numeric strings when present; some stops carry no ID at all.
type Stop struct {
	Route        string `json:"route" groups:"basic"`
	ID           string `json:"id,omitempty" groups:"basic"`
	Intersection string `json:"intersection" groups:"basic"`

	Location Location `json:"location" groups:"basic"`

	Tag string `json:"tag,omitempty" groups:"detailed"`
}
