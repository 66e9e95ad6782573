package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Garsondee/Horde-Sense/internal/arena"
	"github.com/Garsondee/Horde-Sense/internal/config"
	"github.com/Garsondee/Horde-Sense/internal/wave"
)

type runOptions struct {
	runs       int
	ticks      int
	seedBase   int64
	seedStep   int64
	cacheTicks int
	verbose    bool
}

type runStats struct {
	runIndex int
	report   arena.Report

	firstKillTick  int
	firstBreakTick int
	deathTick      int
}

func newRunCmd(loadConfig func() (*config.Config, error)) *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run headless sessions and print reports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("cache-ticks") {
				opts.cacheTicks = cfg.Nav.RecalcTicks
			}
			return runReports(cmd.OutOrStdout(), cfg, opts)
		},
	}
	f := cmd.Flags()
	f.IntVar(&opts.runs, "runs", 5, "number of headless runs")
	f.IntVar(&opts.ticks, "ticks", 3600, "ticks per run (60 per second)")
	f.Int64Var(&opts.seedBase, "seed-base", 42, "RNG seed for run 1")
	f.Int64Var(&opts.seedStep, "seed-step", 1, "seed increment between runs")
	f.IntVar(&opts.cacheTicks, "cache-ticks", 1, "route recompute interval; 1 recomputes every tick")
	f.BoolVar(&opts.verbose, "verbose", false, "print the event log of each run")
	return cmd
}

func runReports(w io.Writer, cfg *config.Config, opts runOptions) error {
	if opts.runs <= 0 {
		return errors.New("--runs must be > 0")
	}
	if opts.ticks <= 0 {
		return errors.New("--ticks must be > 0")
	}

	fmt.Fprintf(w, "=== Headless Survival Report ===\n")
	fmt.Fprintf(w, "runs=%d ticks=%d seed_base=%d seed_step=%d cache_ticks=%d\n\n",
		opts.runs, opts.ticks, opts.seedBase, opts.seedStep, opts.cacheTicks)

	all := make([]runStats, 0, opts.runs)
	for i := 0; i < opts.runs; i++ {
		seed := opts.seedBase + int64(i)*opts.seedStep
		s := arena.NewSession(
			arena.WithConfig(cfg),
			arena.WithSeed(seed),
			arena.WithAutoFire(true),
			arena.WithRouteCache(opts.cacheTicks),
		)
		s.RunTicks(opts.ticks)
		rs := collectRun(i+1, s)
		all = append(all, rs)
		printRun(w, rs)
		if opts.verbose {
			fmt.Fprint(w, s.Log.Format())
		}
	}
	printAggregate(w, all)
	return nil
}

func collectRun(index int, s *arena.Session) runStats {
	return runStats{
		runIndex:       index,
		report:         s.Report(),
		firstKillTick:  s.Log.FirstTick(arena.CatEnemy, "killed", ""),
		firstBreakTick: s.Log.FirstTick(arena.CatWall, "destroyed", ""),
		deathTick:      s.Log.FirstTick(arena.CatPlayer, "died", ""),
	}
}

func printRun(w io.Writer, rs runStats) {
	fmt.Fprintf(w, "--- Run %d ---\n", rs.runIndex)
	fmt.Fprint(w, rs.report.Format())
	fmt.Fprintf(w, "markers: first_kill=%d first_wall_break=%d death=%d\n\n",
		rs.firstKillTick, rs.firstBreakTick, rs.deathTick)
}

func printAggregate(w io.Writer, all []runStats) {
	n := len(all)
	var waves, kills, walls, shots, powerups, survivors int
	var killTicks, breakTicks, deathTicks []int
	expanded := 0.0
	byArchetype := make(map[string]int, len(wave.Archetypes))
	for _, rs := range all {
		r := rs.report
		waves += r.Wave
		kills += r.TotalKills()
		walls += r.WallsDestroyed
		shots += r.Shots
		powerups += r.PowerupsCollected
		expanded += r.AvgExpanded
		if r.Survived {
			survivors++
		}
		for k, v := range r.Kills {
			byArchetype[k] += v
		}
		killTicks = appendMarker(killTicks, rs.firstKillTick)
		breakTicks = appendMarker(breakTicks, rs.firstBreakTick)
		deathTicks = appendMarker(deathTicks, rs.deathTick)
	}

	fmt.Fprintf(w, "=== Aggregate (%d runs) ===\n", n)
	fmt.Fprintf(w, "survival: %d/%d (%.0f%%)\n", survivors, n, 100*avg(survivors, n))
	fmt.Fprintf(w, "avg_per_run: wave=%.1f kills=%.1f walls_destroyed=%.1f shots=%.1f powerups=%.1f\n",
		avg(waves, n), avg(kills, n), avg(walls, n), avg(shots, n), avg(powerups, n))
	fmt.Fprintf(w, "avg_kills_by_archetype:")
	for _, a := range wave.Archetypes {
		fmt.Fprintf(w, " %s=%.1f", a, avg(byArchetype[a.String()], n))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "marker_avg_ticks: first_kill=%s first_wall_break=%s death=%s\n",
		avgTickString(killTicks), avgTickString(breakTicks), avgTickString(deathTicks))
	if n > 0 {
		fmt.Fprintf(w, "nav: avg_expanded=%.1f\n", expanded/float64(n))
	}
}

// appendMarker skips -1, the "never happened" tick.
func appendMarker(vals []int, tick int) []int {
	if tick < 0 {
		return vals
	}
	return append(vals, tick)
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}
