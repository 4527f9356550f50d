package board_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/gpio/gpiotest"

	"github.com/coreman2200/funtimes-sevenseg/internal/board"
	"github.com/coreman2200/funtimes-sevenseg/internal/config"
	"github.com/coreman2200/funtimes-sevenseg/sevenseg"
)

func registerPins(t *testing.T, prefix string) (*config.Config, []*gpiotest.Pin) {
	t.Helper()
	t.Cleanup(board.SetHostInit(func() error { return nil }))

	c := config.Default()
	c.Driver = config.DriverGPIO
	pins := make([]*gpiotest.Pin, sevenseg.NumSegments)
	names := make([]string, sevenseg.NumSegments)
	for i := range pins {
		names[i] = fmt.Sprintf("%s_%s", prefix, sevenseg.Segment(i))
		pins[i] = &gpiotest.Pin{N: names[i], Num: -1}
		require.NoError(t, gpioreg.Register(pins[i]))
		name := names[i]
		t.Cleanup(func() { _ = gpioreg.Unregister(name) })
	}
	c.Segments = config.Segments{A: names[0], B: names[1], C: names[2], D: names[3], E: names[4], F: names[5], G: names[6]}
	return c, pins
}

func levels(pins []*gpiotest.Pin) string {
	b := make([]byte, len(pins))
	for i, p := range pins {
		if p.Read() == gpio.High {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b)
}

func TestOpenGPIO(t *testing.T) {
	c, pins := registerPins(t, "SSGPIO")
	d, sim, err := board.Open(c)
	require.NoError(t, err)
	assert.Nil(t, sim)

	require.NoError(t, d.Display(0xE))
	assert.Equal(t, "1111001", levels(pins))
}

func TestOpenGPIOActiveLow(t *testing.T) {
	c, pins := registerPins(t, "SSLOW")
	c.ActiveLow = true
	d, _, err := board.Open(c)
	require.NoError(t, err)

	require.NoError(t, d.Display(0xE))
	assert.Equal(t, "0000110", levels(pins))
}

func TestOpenGPIOMissingPin(t *testing.T) {
	c, _ := registerPins(t, "SSMISS")
	c.Segments.D = "SSMISS_nowhere"
	_, _, err := board.Open(c)
	assert.ErrorContains(t, err, `no pin "SSMISS_nowhere" for segment d`)
}

func TestOpenHostInitFails(t *testing.T) {
	c, _ := registerPins(t, "SSHOST")
	t.Cleanup(board.SetHostInit(func() error { return errors.New("no /dev/gpiomem") }))
	_, _, err := board.Open(c)
	assert.ErrorContains(t, err, "host init")
}

func TestOpenInvalidConfig(t *testing.T) {
	c := config.Default()
	c.Segments.B = c.Segments.A
	_, _, err := board.Open(c)
	assert.Error(t, err)
}

func TestOpenSim(t *testing.T) {
	d, sim, err := board.Open(config.Default())
	require.NoError(t, err)
	require.NotNil(t, sim)

	require.NoError(t, d.Display(3))
	want, _ := sevenseg.PatternFor(3)
	assert.Equal(t, want, sim.Pattern())
	assert.Equal(t, 1, sim.Pin(sevenseg.SegG).Writes)
	assert.Equal(t, "GPIO5", sim.Pin(sevenseg.SegA).String())

	require.NoError(t, d.Clear())
	assert.Equal(t, sevenseg.Blank, sim.Pattern())
}

func TestArt(t *testing.T) {
	p, _ := sevenseg.PatternFor(8)
	assert.Equal(t, " _ \n|_|\n|_|\n", board.Art(p))

	p, _ = sevenseg.PatternFor(1)
	assert.Equal(t, "   \n|  \n|  \n", board.Art(p))
}
