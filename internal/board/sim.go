package board

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-sevenseg/sevenseg"
)

// SimPin is an in-memory output line. Writes are logged at debug level.
type SimPin struct {
	name   string
	seg    sevenseg.Segment
	high   bool
	Writes int
}

func (p *SimPin) SetHigh() error { p.set(true); return nil }
func (p *SimPin) SetLow() error  { p.set(false); return nil }

func (p *SimPin) set(high bool) {
	p.high = high
	p.Writes++
	log.Debug().Str("pin", p.name).Str("segment", p.seg.String()).Bool("high", high).Msg("sim write")
}

func (p *SimPin) String() string { return p.name }

// High reports the last level written.
func (p *SimPin) High() bool { return p.high }

// Sim is a set of seven simulated lines, one per segment.
type Sim struct {
	pins [sevenseg.NumSegments]*SimPin
}

// NewSim creates one low line per segment, named in segment order.
func NewSim(names [sevenseg.NumSegments]string) *Sim {
	s := &Sim{}
	for i, n := range names {
		s.pins[i] = &SimPin{name: n, seg: sevenseg.Segment(i)}
	}
	return s
}

// Pins returns the lines in segment order a..g.
func (s *Sim) Pins() [sevenseg.NumSegments]sevenseg.OutputPin {
	var out [sevenseg.NumSegments]sevenseg.OutputPin
	for i, p := range s.pins {
		out[i] = p
	}
	return out
}

// Pin returns the line for seg.
func (s *Sim) Pin(seg sevenseg.Segment) *SimPin { return s.pins[seg] }

// Pattern reads back the lines as a pattern. Lines driven high count as lit,
// so with active-low wiring the result is inverted.
func (s *Sim) Pattern() sevenseg.Pattern {
	var p sevenseg.Pattern
	for i, pin := range s.pins {
		if pin.high {
			p |= 1 << i
		}
	}
	return p
}

// Art draws p as three rows of text.
func Art(p sevenseg.Pattern) string {
	c := func(s sevenseg.Segment, r byte) byte {
		if p.On(s) {
			return r
		}
		return ' '
	}
	var b strings.Builder
	b.Write([]byte{' ', c(sevenseg.SegA, '_'), ' ', '\n'})
	b.Write([]byte{c(sevenseg.SegF, '|'), c(sevenseg.SegG, '_'), c(sevenseg.SegB, '|'), '\n'})
	b.Write([]byte{c(sevenseg.SegE, '|'), c(sevenseg.SegD, '_'), c(sevenseg.SegC, '|'), '\n'})
	return b.String()
}
