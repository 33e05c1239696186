// cmd/reactorctl/layout.go
package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"go-reactor-sim/internal/reactor"
	"go-reactor-sim/pkg/hexmap"
)

func newLayoutCmd() *cobra.Command {
	var (
		capacity int
		gap      float64
		offset   int
	)
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print spiral positions used for fuel rods",
		Long: `Prints the hexagonal spiral coordinates of a layout.

By default the layout of a 30-item reactor is shown starting at index 6,
the first fuel rod position.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if capacity < 0 {
				return fmt.Errorf("--capacity must not be negative")
			}
			layout := hexmap.NewSpiralLayout(capacity)
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, "INDEX\tRING\tX\tY\t")
			for i := offset; i < layout.Len(); i++ {
				p := layout.Position(i, gap)
				fmt.Fprintf(tw, "%d\t%d\t%.3f\t%.3f\t\n", i, hexmap.SpiralRing(i), p.X, p.Y)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&capacity, "capacity", 30, "item capacity of the layout")
	cmd.Flags().Float64Var(&gap, "gap", reactor.FuelRodGap, "distance between neighbours")
	cmd.Flags().IntVar(&offset, "from", 6, "first index to print")
	return cmd
}
