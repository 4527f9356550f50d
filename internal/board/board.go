// Package board binds a seven-segment digit to the lines named in a config.
package board

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/coreman2200/funtimes-sevenseg/internal/config"
	"github.com/coreman2200/funtimes-sevenseg/sevenseg"
)

// hostInit loads the periph host drivers. Replaced in tests.
var hostInit = func() error {
	_, err := host.Init()
	return err
}

// Open builds a display on the lines named in cfg. With the sim driver the
// returned *Sim holds the simulated lines; it is nil otherwise.
func Open(cfg *config.Config) (*sevenseg.Dev, *Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	switch cfg.Driver {
	case config.DriverSim:
		s := NewSim(cfg.Segments.Names())
		return bind(cfg, s.Pins()), s, nil
	default:
		pins, err := openGPIO(cfg.Segments.Names())
		if err != nil {
			return nil, nil, err
		}
		return bind(cfg, pins), nil, nil
	}
}

func openGPIO(names [sevenseg.NumSegments]string) ([sevenseg.NumSegments]sevenseg.OutputPin, error) {
	var pins [sevenseg.NumSegments]sevenseg.OutputPin
	if err := hostInit(); err != nil {
		return pins, fmt.Errorf("board: host init: %w", err)
	}
	for i, n := range names {
		p := gpioreg.ByName(n)
		if p == nil {
			return pins, fmt.Errorf("board: no pin %q for segment %s", n, sevenseg.Segment(i))
		}
		log.Debug().Str("segment", sevenseg.Segment(i).String()).Str("pin", p.Name()).Msg("segment bound")
		pins[i] = sevenseg.FromGPIO(p)
	}
	return pins, nil
}

func bind(cfg *config.Config, pins [sevenseg.NumSegments]sevenseg.OutputPin) *sevenseg.Dev {
	if cfg.ActiveLow {
		for i := range pins {
			pins[i] = sevenseg.ActiveLow(pins[i])
		}
	}
	return sevenseg.New(pins[0], pins[1], pins[2], pins[3], pins[4], pins[5], pins[6])
}
