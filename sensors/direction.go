package sensors

import (
	"fmt"
	"strings"
)

// Direction is one of the 16 compass points the wind vane can resolve, or
// Unknown when the signal matched none of them.
type Direction uint8

const (
	N Direction = iota
	NNE
	NE
	ENE
	E
	ESE
	SE
	SSE
	S
	SSW
	SW
	WSW
	W
	WNW
	NW
	NNW
	// Unknown doubles as the number of real directions.
	Unknown

	DirectionCount = int(Unknown)
)

const errLabel = "ERR"

var directionLabels = [DirectionCount]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// Label returns the compass abbreviation, or "ERR" for Unknown.
func (d Direction) Label() string {
	if int(d) < DirectionCount {
		return directionLabels[d]
	}
	return errLabel
}

func (d Direction) String() string {
	return d.Label()
}

// Degrees returns the heading in degrees clockwise from north.
func (d Direction) Degrees() (float64, bool) {
	if int(d) >= DirectionCount {
		return 0, false
	}
	return float64(d) * 22.5, true
}

// ParseDirection is the inverse of Label for the 16 compass points.
func ParseDirection(s string) (Direction, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, l := range directionLabels {
		if l == s {
			return Direction(i), nil
		}
	}
	return Unknown, fmt.Errorf("unknown compass direction [%v]", s)
}
