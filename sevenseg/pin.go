package sevenseg

// OutputPin is a digital output line that can be driven high or low. Either
// operation may fail.
//
// Each of the seven segments of a Dev may use a different concrete type.
type OutputPin interface {
	SetHigh() error
	SetLow() error
}

// activeLow inverts the logic of a line.
type activeLow struct {
	p OutputPin
}

// ActiveLow wraps p so that SetHigh drives it low and SetLow drives it high.
// Use it for common-anode displays where a segment lights when its line is
// pulled low.
func ActiveLow(p OutputPin) OutputPin {
	return &activeLow{p: p}
}

func (a *activeLow) SetHigh() error { return a.p.SetLow() }
func (a *activeLow) SetLow() error  { return a.p.SetHigh() }

// Unwrap returns the wrapped line.
func (a *activeLow) Unwrap() OutputPin { return a.p }
