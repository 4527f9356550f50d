package cli

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/coreman2200/funtimes-sevenseg/sevenseg"
)

var showCmd = &cobra.Command{
	Use:   "show <digit>",
	Short: "Show a hexadecimal digit (0-9, a-f)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		digit, err := sevenseg.ParseDigit(args[0])
		if err != nil {
			return err
		}
		d, sim, err := openDisplay(loadConfig())
		if err != nil {
			return err
		}
		if err := d.Display(digit); err != nil {
			return err
		}
		draw(cmd.OutOrStdout(), sim)
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Turn every segment off",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, sim, err := openDisplay(loadConfig())
		if err != nil {
			return err
		}
		if err := d.Clear(); err != nil {
			return err
		}
		draw(cmd.OutOrStdout(), sim)
		return nil
	},
}

var segmentCmd = &cobra.Command{
	Use:   "segment <a-g> <on|off>",
	Short: "Drive a single segment",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		seg, err := sevenseg.ParseSegment(args[0])
		if err != nil {
			return err
		}
		var on bool
		switch args[1] {
		case "on", "1", "high":
			on = true
		case "off", "0", "low":
		default:
			return fmt.Errorf("state must be on or off, got %q", args[1])
		}
		d, sim, err := openDisplay(loadConfig())
		if err != nil {
			return err
		}
		if err := d.SetSegment(seg, on); err != nil {
			return err
		}
		draw(cmd.OutOrStdout(), sim)
		return nil
	},
}

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the digit encoding table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "digit abcdefg")
		for digit := uint8(0); digit <= 0xF; digit++ {
			p, _ := sevenseg.PatternFor(digit)
			fmt.Fprintf(out, "%5X %s\n", digit, p)
		}
		return nil
	},
}

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Cycle through 0-F until interrupted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		interval, _ := cmd.Flags().GetDuration("interval")
		if interval <= 0 {
			interval = time.Duration(cfg.IntervalMs) * time.Millisecond
		}
		if interval <= 0 {
			interval = 500 * time.Millisecond
		}
		d, sim, err := openDisplay(cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := d.Clear(); err != nil {
				log.Error().Err(err).Msg("clear on exit")
				return
			}
			draw(cmd.OutOrStdout(), sim)
		}()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		var digit uint8
		for {
			if err := d.Display(digit); err != nil {
				return err
			}
			log.Info().Str("digit", fmt.Sprintf("%X", digit)).Msg("showing")
			draw(cmd.OutOrStdout(), sim)
			digit = (digit + 1) % 0x10

			select {
			case <-ticker.C:
			case <-ctx.Done():
				log.Info().Msg("stopping")
				return nil
			}
		}
	},
}

func init() {
	countCmd.Flags().Duration("interval", 0, "time per digit (default from config)")
	rootCmd.AddCommand(showCmd, clearCmd, segmentCmd, tableCmd, countCmd)
}
