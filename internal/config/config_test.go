package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/funtimes-sevenseg/sevenseg"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	c := Default()
	c.Driver = DriverGPIO
	c.ActiveLow = true
	c.Segments.G = "GPIO25"
	require.NoError(t, Save(path, c))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte("driver: gpio\nsegments:\n  a: GPIO17\n"), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DriverGPIO, c.Driver)
	assert.Equal(t, "GPIO17", c.Segments.A)
	assert.Equal(t, "GPIO6", c.Segments.B)
	assert.Equal(t, 500, c.IntervalMs)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	for name, mut := range map[string]func(*Config){
		"unknown driver": func(c *Config) { c.Driver = "spi" },
		"missing pin":    func(c *Config) { c.Segments.E = "" },
		"shared pin":     func(c *Config) { c.Segments.F = c.Segments.A },
		"negative tick":  func(c *Config) { c.IntervalMs = -1 },
	} {
		t.Run(name, func(t *testing.T) {
			c := Default()
			mut(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestNamesInSegmentOrder(t *testing.T) {
	names := Default().Segments.Names()
	assert.Len(t, names, sevenseg.NumSegments)
	assert.Equal(t, "GPIO5", names[sevenseg.SegA])
	assert.Equal(t, "GPIO11", names[sevenseg.SegG])
}

func TestValidateNamesSharedSegments(t *testing.T) {
	c := Default()
	c.Segments.F = c.Segments.B
	assert.EqualError(t, c.Validate(), "config: segments b and f share pin GPIO6")
}
