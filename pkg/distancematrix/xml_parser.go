package distancematrix

import (
	"encoding/xml"
	"fmt"
	"io"
)

// The fragile part of the Distance Matrix response is the positional
// row/element nesting, so the extraction is kept in one place against
// named paths and everything unexpected collapses to ErrMalformedResponse.

type distanceMatrixResponse struct {
	XMLName xml.Name `xml:"DistanceMatrixResponse"`
	Status  string   `xml:"status"`

	Rows []responseRow `xml:"row"`
}

type responseRow struct {
	Elements []responseElement `xml:"element"`
}

type responseElement struct {
	Status   string        `xml:"status"`
	Duration valueWithText `xml:"duration"`
	Distance valueWithText `xml:"distance"`
}

type valueWithText struct {
	Value string `xml:"value"`
	Text  string `xml:"text"`
}

func parseResponse(reader io.Reader) (*Result, error) {
	byteValue, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read distance matrix response: %w", err)
	}

	var document distanceMatrixResponse
	if err := xml.Unmarshal(byteValue, &document); err != nil {
		return nil, fmt.Errorf("decode distance matrix response: %w", err)
	}

	if len(document.Rows) == 0 || len(document.Rows[0].Elements) == 0 {
		return nil, ErrMalformedResponse
	}

	first := document.Rows[0].Elements[0]
	if first.Distance.Text == "" || first.Duration.Text == "" {
		return nil, ErrMalformedResponse
	}

	return &Result{
		Distance: first.Distance.Text,
		Duration: first.Duration.Text,
	}, nil
}
