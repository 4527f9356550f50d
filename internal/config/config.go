package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/coreman2200/funtimes-sevenseg/sevenseg"
)

const (
	DriverGPIO = "gpio"
	DriverSim  = "sim"
)

// Segments names the output line bound to each segment.
type Segments struct {
	A string `yaml:"a"`
	B string `yaml:"b"`
	C string `yaml:"c"`
	D string `yaml:"d"`
	E string `yaml:"e"`
	F string `yaml:"f"`
	G string `yaml:"g"`
}

// Names returns the line names in segment order a..g.
func (s Segments) Names() [sevenseg.NumSegments]string {
	return [sevenseg.NumSegments]string{s.A, s.B, s.C, s.D, s.E, s.F, s.G}
}

type Config struct {
	Driver     string   `yaml:"driver"`      // "gpio" | "sim"
	ActiveLow  bool     `yaml:"active_low"`  // common anode wiring
	IntervalMs int      `yaml:"interval_ms"` // count step
	Segments   Segments `yaml:"segments"`
}

// Default is a Raspberry Pi wiring on BCM GPIO5..GPIO11 with the simulated
// driver selected.
func Default() *Config {
	return &Config{
		Driver:     DriverSim,
		IntervalMs: 500,
		Segments: Segments{
			A: "GPIO5",
			B: "GPIO6",
			C: "GPIO7",
			D: "GPIO8",
			E: "GPIO9",
			F: "GPIO10",
			G: "GPIO11",
		},
	}
}

// Validate checks that every segment has its own line.
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverGPIO, DriverSim:
	default:
		return fmt.Errorf("config: unknown driver %q", c.Driver)
	}
	seen := map[string]sevenseg.Segment{}
	for i, n := range c.Segments.Names() {
		seg := sevenseg.Segment(i)
		if n == "" {
			return fmt.Errorf("config: segment %s has no pin", seg)
		}
		if prev, ok := seen[n]; ok {
			return fmt.Errorf("config: segments %s and %s share pin %s", prev, seg, n)
		}
		seen[n] = seg
	}
	if c.IntervalMs < 0 {
		return errors.New("config: interval_ms must not be negative")
	}
	return nil
}

// Load reads path over Default.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	return c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
