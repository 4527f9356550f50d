package sevenseg

import (
	"strconv"
	"strings"
)

// Segment names one of the seven segments.
type Segment uint8

const (
	SegA Segment = iota
	SegB
	SegC
	SegD
	SegE
	SegF
	SegG

	// NumSegments is the number of segments of a digit.
	NumSegments = 7
)

// Segments lists every segment in write order.
var Segments = [NumSegments]Segment{SegA, SegB, SegC, SegD, SegE, SegF, SegG}

func (s Segment) String() string {
	if s >= NumSegments {
		return "Segment(" + strconv.Itoa(int(s)) + ")"
	}
	return string(rune('a' + s))
}

// ParseSegment returns the segment named by a single letter a-g, case
// insensitive.
func ParseSegment(name string) (Segment, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) != 1 || name[0] < 'a' || name[0] > 'g' {
		return 0, ErrUnknownSegment
	}
	return Segment(name[0] - 'a'), nil
}
