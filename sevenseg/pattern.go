package sevenseg

import "strings"

// Pattern is the on/off state of the seven segments. Bit n is segment n, so
// bit 0 is a and bit 6 is g.
type Pattern uint8

// Blank is the pattern with every segment off.
const Blank Pattern = 0

// hexPatterns holds the glyphs for 0x0 through 0xF.
var hexPatterns = [16]Pattern{
	0x0: pat("abcdef"),
	0x1: pat("ef"),
	0x2: pat("abdeg"),
	0x3: pat("adefg"),
	0x4: pat("cefg"),
	0x5: pat("acdfg"),
	0x6: pat("abcdfg"),
	0x7: pat("def"),
	0x8: pat("abcdefg"),
	0x9: pat("acdefg"),
	0xA: pat("bcdefg"),
	0xB: pat("abcfg"),
	0xC: pat("abcd"),
	0xD: pat("abefg"),
	0xE: pat("abcdg"),
	0xF: pat("bcdg"),
}

func pat(on string) Pattern {
	var p Pattern
	for i := 0; i < len(on); i++ {
		p |= 1 << (on[i] - 'a')
	}
	return p
}

// PatternFor returns the glyph for digit. ok is false, and the pattern Blank,
// when digit is above 0xF.
func PatternFor(digit uint8) (p Pattern, ok bool) {
	if int(digit) >= len(hexPatterns) {
		return Blank, false
	}
	return hexPatterns[digit], true
}

// On reports whether segment s is lit in p.
func (p Pattern) On(s Segment) bool {
	return s < NumSegments && p&(1<<s) != 0
}

// String lists segments a-g in order, using '-' for an unlit segment.
// The digit 0 prints as "abcdef-".
func (p Pattern) String() string {
	var b strings.Builder
	for _, s := range Segments {
		if p.On(s) {
			b.WriteString(s.String())
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}
