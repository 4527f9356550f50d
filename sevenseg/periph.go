package sevenseg

import (
	"periph.io/x/conn/v3/gpio"
)

// GPIO adapts a periph.io output pin to OutputPin.
type GPIO struct {
	gpio.PinOut
}

// FromGPIO wraps p for use as a segment line.
func FromGPIO(p gpio.PinOut) *GPIO {
	return &GPIO{PinOut: p}
}

// SetHigh drives the pin to gpio.High.
func (g *GPIO) SetHigh() error { return g.Out(gpio.High) }

// SetLow drives the pin to gpio.Low.
func (g *GPIO) SetLow() error { return g.Out(gpio.Low) }
