// cmd/reactorctl/run.go
package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"go-reactor-sim/internal/app"
	"go-reactor-sim/internal/persist"
	"go-reactor-sim/pkg/hexmap"
)

type runFlags struct {
	ticks     int
	reactors  int
	fuel      int
	noCoolant bool
	script    string
	load      string
	save      string
	timeScale float64
}

func newRunCmd(opts *options) *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Step the simulation headless and print the result",
		Long: `Places reactors on a fresh map (or loads a save), steps the world
--ticks times and prints the reactor and power grid state.

Example:
  reactorctl run --ticks 3600 --reactors 2 --no-coolant --save "meltdown"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(cmd, opts, f)
		},
	}
	cmd.Flags().IntVarP(&f.ticks, "ticks", "n", 600, "ticks to simulate")
	cmd.Flags().IntVar(&f.reactors, "reactors", 1, "reactors to place on a fresh map")
	cmd.Flags().IntVar(&f.fuel, "fuel", 0, "fuel fed by hand into every reactor before the run")
	cmd.Flags().BoolVar(&f.noCoolant, "no-coolant", false, "start with coolant pumps off")
	cmd.Flags().StringVar(&f.script, "script", "", "Lua controller (overrides scripting.controller)")
	cmd.Flags().StringVar(&f.load, "load", "", "continue from a save ID")
	cmd.Flags().StringVar(&f.save, "save", "", "store the final world under this name")
	cmd.Flags().Float64Var(&f.timeScale, "time-scale", 0, "time scale, 0 keeps the configured one")
	return cmd
}

func runSimulation(cmd *cobra.Command, opts *options, f *runFlags) error {
	if f.ticks < 0 {
		return fmt.Errorf("--ticks must not be negative")
	}
	cfg := *opts.cfg
	if f.script != "" {
		cfg.Scripting.Controller = f.script
	}
	if f.timeScale > 0 {
		cfg.Simulation.TimeScale = f.timeScale
	}

	lib, err := app.LoadLibrary(&cfg)
	if err != nil {
		return err
	}
	engine, err := app.OpenController(&cfg, opts.log)
	if err != nil {
		return err
	}
	if engine != nil {
		defer engine.Close()
	}

	var store *persist.Store
	if f.load != "" || f.save != "" {
		store, err = persist.OpenStore(cmd.Context(), cfg.Storage.Path, opts.log)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	g := app.NewGame(&cfg, lib, engine, opts.log)
	if f.load != "" {
		if err := g.LoadFrom(cmd.Context(), store, f.load); err != nil {
			return err
		}
	} else if err := placeReactors(g, f.reactors); err != nil {
		return err
	}
	for _, id := range g.ReactorIDs() {
		if f.fuel > 0 {
			g.FeedFuel(id, f.fuel)
		}
		if f.noCoolant {
			if s, ok := g.ECS.Supplies[id]; ok && s.Liquid != "" {
				g.ToggleCoolant(id)
			}
		}
	}

	g.RunTicks(f.ticks)
	opts.log.Debug("run finished", zap.Int64("tick", g.Ticks()))

	printWorld(cmd.OutOrStdout(), g)

	if f.save != "" {
		id, err := g.SaveTo(cmd.Context(), store, f.save)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "saved %s as %s\n", f.save, id)
	}
	return nil
}

// placeReactors ставит n реакторов по кольцам вокруг центра.
func placeReactors(g *app.Game, n int) error {
	placed := 0
	for radius := 0; placed < n && radius <= g.HexMap.Radius; radius += 2 {
		for _, hex := range ringHexes(radius) {
			if placed == n {
				break
			}
			if !g.HexMap.CanPlace(hex) {
				continue
			}
			if _, err := g.PlaceReactor(hex); err != nil {
				return err
			}
			placed++
		}
	}
	if placed < n {
		return fmt.Errorf("map fits only %d of %d reactors", placed, n)
	}
	return nil
}

func ringHexes(radius int) []hexmap.Hex {
	center := hexmap.Hex{}
	var out []hexmap.Hex
	for _, hex := range center.Range(radius) {
		if center.Distance(hex) == radius {
			out = append(out, hex)
		}
	}
	return out
}

func printWorld(w io.Writer, g *app.Game) {
	stats := g.Stats.Stats()
	grid := g.Power()
	fmt.Fprintf(w, "tick %d  time scale x%g\n", g.Ticks(), g.TimeScale)
	fmt.Fprintf(w, "overheats %d  explosions %d\n", stats.Overheats, stats.Explosions)
	fmt.Fprintf(w, "power produced %.2f needed %.2f satisfaction %.0f%% battery %.1f/%.0f\n",
		grid.LastProduced, grid.LastNeeded, grid.Satisfaction*100, grid.Stored, grid.BatteryCapacity)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tHEX\tSTATE\tHEAT\tFUEL\tCOOLANT\tEFFICIENCY")
	for _, id := range g.ReactorIDs() {
		r := g.ECS.Reactors[id]
		state := "enabled"
		switch {
		case r.Dead():
			state = "destroyed"
		case !r.Building.Enabled:
			state = "disabled"
		}
		fmt.Fprintf(tw, "%d\t%d,%d\t%s\t%.3f\t%d/%d\t%.1f %s\t%.2f\n",
			id, r.Building.Hex.Q, r.Building.Hex.R, state, r.Heat,
			r.Fuel(), r.Items.Capacity, r.Liquids.CurrentAmount(), r.Liquids.Current(),
			r.ProductionEfficiency)
	}
	tw.Flush()
}
