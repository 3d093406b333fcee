package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/progress"
	"github.com/lixenwraith/progress/terminal"
)

var (
	count    int64
	interval time.Duration
	colors   string
	unknown  bool
	transfer bool
	logs     bool
)

var rootCmd = &cobra.Command{
	Use:   "progress-demo",
	Short: "Showcase the progress bar widgets and color modes",
	RunE:  run,
}

func init() {
	rootCmd.Flags().Int64VarP(&count, "count", "n", 200, "number of steps to simulate")
	rootCmd.Flags().DurationVarP(&interval, "interval", "i", 20*time.Millisecond, "delay between steps")
	rootCmd.Flags().StringVarP(&colors, "colors", "c", "auto", "color mode: auto, on or off")
	rootCmd.Flags().BoolVarP(&unknown, "unknown", "u", false, "simulate work with an unknown total")
	rootCmd.Flags().BoolVarP(&transfer, "transfer", "t", false, "use the data transfer widget line")
	rootCmd.Flags().BoolVarP(&logs, "logs", "l", false, "interleave log lines through the bypass writer")
}

func colorMode() (terminal.EnableColors, error) {
	switch colors {
	case "auto":
		return terminal.ColorsAuto, nil
	case "on":
		return terminal.ColorsOn, nil
	case "off":
		return terminal.ColorsOff, nil
	}
	return terminal.EnableColors{}, fmt.Errorf("unknown color mode %q", colors)
}

func run(cmd *cobra.Command, args []string) error {
	mode, err := colorMode()
	if err != nil {
		return err
	}

	cfg := progress.Config{
		Output: progress.OutputConfig{
			Writer:       os.Stderr,
			EnableColors: mode,
		},
	}

	switch {
	case unknown:
		cfg.MaxValue = progress.UnknownLength
	case transfer:
		cfg.MaxValue = count * 1 << 20
		cfg.Widgets = progress.DataTransferWidgets()
	default:
		cfg.MaxValue = count
		cfg.Widgets = []progress.Widget{
			progress.Percentage{}, progress.Label(" "),
			&progress.Bar{Colors: progress.WidgetColors{FG: progress.DefaultBarGradient}}, progress.Label(" "),
			progress.Timer{}, progress.Label(" "),
			progress.ETA{},
		}
	}

	bar, err := progress.New(cfg)
	if err != nil {
		return err
	}
	defer bar.Close()

	if err := bar.Start(); err != nil {
		return err
	}

	step := int64(1)
	if transfer {
		step = 1 << 20
	}
	steps := count
	if unknown {
		steps = count * 2
	}

	out := bar.Bypass()
	for i := int64(1); i <= steps; i++ {
		time.Sleep(interval)
		if err := bar.Increment(step); err != nil {
			return err
		}
		if logs && i%50 == 0 {
			fmt.Fprintf(out, "processed %d steps\n", i)
		}
	}

	if unknown {
		return bar.FinishDirty()
	}
	return bar.Finish()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
