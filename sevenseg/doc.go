// Package sevenseg drives a single seven-segment LED digit wired to seven
// independent digital output lines, one per segment a through g.
//
// The segments are labelled in the usual way:
//
//	 aaa
//	f   b
//	f   b
//	 ggg
//	e   c
//	e   c
//	 ddd
//
// Dev renders the hexadecimal digits 0 through F. Any value above 0xF turns
// every segment off.
//
// Every operation touching more than one segment writes them in the fixed
// order a, b, c, d, e, f, g and stops at the first line that fails. Lines that
// were not reached are left as they were. A failure is always reported as
// ErrWrite, whatever the line returned.
//
// Dev does no locking. Share it across goroutines only with external
// serialization.
package sevenseg
