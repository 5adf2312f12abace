package nextbus

import (
	"encoding/xml"
	"fmt"
	"io"
)

// ParseXML decodes a routeConfig response straight from the reader.
func ParseXML(reader io.Reader) (*RouteConfigDocument, error) {
	document := RouteConfigDocument{}
	seenFirstChild := false

	d := xml.NewDecoder(reader)
	for {
		tok, err := d.Token()
		if tok == nil || err == io.EOF {
			// EOF means we're done.
			break
		} else if err != nil {
			return nil, fmt.Errorf("decode route config: %w", err)
		}

		switch ty := tok.(type) {
		case xml.StartElement:
			if ty.Name.Local == "body" {
				for i := 0; i < len(ty.Attr); i++ {
					attr := ty.Attr[i]

					if attr.Name.Local == "copyright" {
						document.Copyright = attr.Value
					}
				}

				continue
			}

			// The route's display name lives on the first top-level
			// element. An Error element carries no title, so a missing
			// title is what an unknown route number looks like.
			if !seenFirstChild {
				seenFirstChild = true

				for i := 0; i < len(ty.Attr); i++ {
					attr := ty.Attr[i]

					if attr.Name.Local == "title" {
						document.Title = attr.Value
					}
				}
			}

			if ty.Name.Local == "route" {
				var route RouteConfig

				if err = d.DecodeElement(&route, &ty); err != nil {
					return nil, fmt.Errorf("decode route element: %w", err)
				}

				document.Routes = append(document.Routes, route)
			} else if err = d.Skip(); err != nil {
				return nil, fmt.Errorf("decode route config: %w", err)
			}
		default:
		}
	}

	return &document, nil
}
