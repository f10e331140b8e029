package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pablasso/pomo/internal/sound"
)

func newBeepCmd() *cobra.Command {
	var (
		out      string
		duration float64
		freq     float64
		volume   float64
	)

	cmd := &cobra.Command{
		Use:   "beep",
		Short: "Export the completion tone as a WAV file",
		Long:  `Generate the interval-completion beep and write it to disk, for use as a notification sound elsewhere.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := sound.WAV(duration, freq, volume)
			if err != nil {
				return err
			}

			if out == "" {
				out = "alarm.wav"
			}
			if dir := filepath.Dir(out); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create output directory: %w", err)
				}
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write beep file: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", out, len(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "write the tone to this path (default: alarm.wav in the current directory)")
	cmd.Flags().Float64Var(&duration, "duration", sound.DefaultDuration, "tone length in seconds")
	cmd.Flags().Float64Var(&freq, "freq", sound.DefaultFreq, "tone pitch in Hz")
	cmd.Flags().Float64Var(&volume, "volume", sound.DefaultVolume, "tone amplitude between 0 and 1")
	return cmd
}
