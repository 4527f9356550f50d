package sevenseg

import "errors"

var (
	// ErrWrite is returned when an output line fails to change state. The
	// line's own error is not kept.
	ErrWrite = errors.New("sevenseg: segment write failed")
	// ErrUnknownSegment is returned for a segment other than a through g.
	ErrUnknownSegment = errors.New("sevenseg: unknown segment")
	// ErrReleased is returned by a Dev after Release.
	ErrReleased = errors.New("sevenseg: display released")
	// ErrDigit is returned by ParseDigit for anything but one hex digit.
	ErrDigit = errors.New("sevenseg: not a hexadecimal digit")
)
