package ttc

type Heading string

const (
	HeadingNorth Heading = "north"
	HeadingSouth Heading = "south"
	HeadingEast  Heading = "east"
	HeadingWest  Heading = "west"
)

// ParseHeading classifies a direction title by its first character.
// Titles that do not start with N, S or E are treated as westbound,
// matching how the feed has always been interpreted. Flagged for review
// as it silently absorbs unrecognised headings into west.
func ParseHeading(title string) Heading {
	if title == "" {
		return HeadingWest
	}

	switch title[0] {
	case 'N':
		return HeadingNorth
	case 'S':
		return HeadingSouth
	case 'E':
		return HeadingEast
	default:
		return HeadingWest
	}
}
