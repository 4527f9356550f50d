package sevenseg

import (
	"strconv"
	"strings"
)

// ParseDigit parses a single hexadecimal digit, with or without a 0x prefix.
func ParseDigit(s string) (uint8, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s) != 1 {
		return 0, ErrDigit
	}
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, ErrDigit
	}
	return uint8(v), nil
}
