package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/Garsondee/Horde-Sense/internal/config"
	"github.com/Garsondee/Horde-Sense/internal/game"
	"github.com/Garsondee/Horde-Sense/internal/records"
)

const appName = "horde_sense"

func main() {
	var configPath string
	var seed int64
	cmd := &cobra.Command{
		Use:           "horde-sense",
		Short:         "Top-down zombie survival",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			w, h := cfg.MapBounds()
			ebiten.SetWindowTitle("Horde Sense")
			ebiten.SetWindowSize(int(w), int(h))
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
			return ebiten.RunGame(game.New(cfg, records.Open(appName), seed))
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "YAML tuning file")
	cmd.Flags().Int64Var(&seed, "seed", 0, "map and spawn seed (random when unset)")

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
