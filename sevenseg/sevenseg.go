package sevenseg

import "strings"

// Dev is a seven-segment digit driven by one output line per segment.
//
// Dev does not remember what it shows: the last write decides what is lit.
// The seven lines must be distinct and non-nil; Dev cannot check the first.
// A nil line fails every write to it with ErrWrite. The zero Dev has no lines
// and is not usable; build one with New.
type Dev struct {
	pins     [NumSegments]OutputPin
	released bool
}

// New takes ownership of the lines for segments a through g. The lines are
// not validated.
func New(a, b, c, d, e, f, g OutputPin) *Dev {
	return &Dev{pins: [NumSegments]OutputPin{a, b, c, d, e, f, g}}
}

// Release hands the seven lines back in construction order without touching
// them. The Dev is unusable afterwards.
func (d *Dev) Release() (a, b, c, dd, e, f, g OutputPin) {
	p := d.pins
	d.pins = [NumSegments]OutputPin{}
	d.released = true
	return p[SegA], p[SegB], p[SegC], p[SegD], p[SegE], p[SegF], p[SegG]
}

func (d *Dev) String() string {
	if d.released {
		return "sevenseg{released}"
	}
	names := make([]string, 0, NumSegments)
	for i, p := range d.pins {
		if s, ok := p.(interface{ String() string }); ok {
			names = append(names, s.String())
		} else {
			names = append(names, Segment(i).String())
		}
	}
	return "sevenseg{" + strings.Join(names, ",") + "}"
}

// SetSegment drives segment s high when on is true, low otherwise. Only the
// line for s is written.
func (d *Dev) SetSegment(s Segment, on bool) error {
	if d.released {
		return ErrReleased
	}
	if s >= NumSegments {
		return ErrUnknownSegment
	}
	p := d.pins[s]
	if p == nil {
		return ErrWrite
	}
	var err error
	if on {
		err = p.SetHigh()
	} else {
		err = p.SetLow()
	}
	if err != nil {
		return ErrWrite
	}
	return nil
}

// SetA lights or darkens segment a (top).
func (d *Dev) SetA(on bool) error { return d.SetSegment(SegA, on) }

// SetB lights or darkens segment b (top right).
func (d *Dev) SetB(on bool) error { return d.SetSegment(SegB, on) }

// SetC lights or darkens segment c (bottom right).
func (d *Dev) SetC(on bool) error { return d.SetSegment(SegC, on) }

// SetD lights or darkens segment d (bottom).
func (d *Dev) SetD(on bool) error { return d.SetSegment(SegD, on) }

// SetE lights or darkens segment e (bottom left).
func (d *Dev) SetE(on bool) error { return d.SetSegment(SegE, on) }

// SetF lights or darkens segment f (top left).
func (d *Dev) SetF(on bool) error { return d.SetSegment(SegF, on) }

// SetG lights or darkens segment g (middle).
func (d *Dev) SetG(on bool) error { return d.SetSegment(SegG, on) }

// Write drives all seven segments to match p, a first.
func (d *Dev) Write(p Pattern) error {
	for _, s := range Segments {
		if err := d.SetSegment(s, p.On(s)); err != nil {
			return err
		}
	}
	return nil
}

// Clear turns every segment off.
func (d *Dev) Clear() error {
	return d.Write(Blank)
}

// Display shows digit as a hexadecimal glyph. Values above 0xF clear the
// display.
func (d *Dev) Display(digit uint8) error {
	p, _ := PatternFor(digit)
	return d.Write(p)
}

// Halt turns the display off.
func (d *Dev) Halt() error {
	return d.Clear()
}
