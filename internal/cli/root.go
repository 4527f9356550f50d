// Package cli is the sevenseg command tree.
package cli

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/coreman2200/funtimes-sevenseg/internal/board"
	"github.com/coreman2200/funtimes-sevenseg/internal/config"
	"github.com/coreman2200/funtimes-sevenseg/sevenseg"
)

var (
	configPath string
	driverFlag string
	activeLow  bool
	verbose    bool

	// logOut receives console log output.
	logOut io.Writer = os.Stderr
)

var rootCmd = &cobra.Command{
	Use:   "sevenseg",
	Short: "Drive a seven-segment digit over GPIO",
	Long: `sevenseg drives a single seven-segment LED digit wired to seven GPIO lines.

Pins are read from a YAML config (see --config). Without hardware, or with
--driver sim, writes go to simulated lines and the digit is drawn on stdout.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger(logOut, verbose)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// SetVersion sets the string printed by --version.
func SetVersion(v string) {
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "sevenseg.yaml", "path to board config")
	rootCmd.PersistentFlags().StringVar(&driverFlag, "driver", "", "driver override: gpio | sim")
	rootCmd.PersistentFlags().BoolVar(&activeLow, "active-low", false, "segments light when driven low (common anode)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every line write")
}

func initLogger(w io.Writer, debug bool) {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen})
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// loadConfig reads the config file, falling back to defaults, and applies
// flag overrides.
func loadConfig() *config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Warn().Err(err).Str("path", configPath).Msg("config load failed; using defaults")
		cfg = config.Default()
	}
	if driverFlag != "" {
		cfg.Driver = driverFlag
	}
	if activeLow {
		cfg.ActiveLow = true
	}
	return cfg
}

// openDisplay opens the board described by cfg. A gpio board that cannot be
// opened falls back to simulated lines.
func openDisplay(cfg *config.Config) (*sevenseg.Dev, *board.Sim, error) {
	d, sim, err := board.Open(cfg)
	if err != nil && cfg.Driver == config.DriverGPIO && driverFlag == "" {
		log.Warn().Err(err).Msg("GPIO init failed; falling back to SIM")
		cfg.Driver = config.DriverSim
		d, sim, err = board.Open(cfg)
	}
	if err != nil {
		return nil, nil, err
	}
	log.Debug().Str("driver", cfg.Driver).Stringer("display", d).Msg("display ready")
	return d, sim, nil
}

// draw prints the simulated digit, if any.
func draw(w io.Writer, sim *board.Sim) {
	if sim == nil {
		return
	}
	_, _ = io.WriteString(w, board.Art(sim.Pattern()))
}
