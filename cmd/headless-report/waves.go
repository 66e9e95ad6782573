package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Garsondee/Horde-Sense/internal/config"
	"github.com/Garsondee/Horde-Sense/internal/wave"
)

func newWavesCmd(loadConfig func() (*config.Config, error)) *cobra.Command {
	var from, to int
	cmd := &cobra.Command{
		Use:   "waves",
		Short: "Print wave sizes and archetype composition",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return writeWaveTable(cmd.OutOrStdout(), cfg.WaveSettings(), from, to)
		},
	}
	cmd.Flags().IntVar(&from, "from", 1, "first wave")
	cmd.Flags().IntVar(&to, "to", 20, "last wave")
	return cmd
}

func writeWaveTable(w io.Writer, s wave.Settings, from, to int) error {
	if from < 1 || to < from {
		return errors.New("need 1 <= --from <= --to")
	}
	fmt.Fprintf(w, "%5s %5s %7s %5s %7s  %s\n", "wave", "size", "normal", "fast", "strong", "shares")
	for i := from; i <= to; i++ {
		c := wave.CompositionFor(s, i)
		n, f, st := wave.Shares(s, i)
		fmt.Fprintf(w, "%5d %5d %7d %5d %7d  %d/%d/%d\n", i, c.Total(), c.Normal, c.Fast, c.Strong, n, f, st)
	}
	return nil
}
