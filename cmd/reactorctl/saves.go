// cmd/reactorctl/saves.go
package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"go-reactor-sim/internal/app"
	"go-reactor-sim/internal/persist"
)

func newSavesCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saves",
		Short: "Manage stored saves",
		Long: `Inspect and remove save slots.

Available subcommands:
  list   - List saves, newest first
  show   - Print the world stored in a save
  delete - Remove a save and its stats`,
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List saves, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, opts, func(store *persist.Store) error {
				saves, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				if len(saves) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "no saves")
					return nil
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tNAME\tTICK\tREV\tSIZE\tOVERHEATS\tEXPLOSIONS\tCREATED")
				for _, s := range saves {
					fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%d\t%d\t%s\n",
						s.ID, s.Name, s.Tick, s.Revision, humanize.Bytes(uint64(s.Size)),
						s.Stats.Overheats, s.Stats.Explosions, humanize.Time(s.CreatedAt))
				}
				return tw.Flush()
			})
		},
	}

	show := &cobra.Command{
		Use:   "show [id]",
		Short: "Print the world stored in a save",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, opts, func(store *persist.Store) error {
				save, info, err := store.Load(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				lib, err := app.LoadLibrary(opts.cfg)
				if err != nil {
					return err
				}
				g := app.NewGame(opts.cfg, lib, nil, opts.log)
				if err := g.Restore(save); err != nil {
					return err
				}
				g.Stats.Restore(info.Stats)

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "save %s %q revision %d, %d records, seed %d\n",
					info.ID, info.Name, info.Revision, len(save.Records), save.Seed)
				printWorld(out, g)
				return nil
			})
		},
	}

	del := &cobra.Command{
		Use:   "delete [id]",
		Short: "Remove a save and its stats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, opts, func(store *persist.Store) error {
				if err := store.Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
				return nil
			})
		},
	}

	cmd.AddCommand(list, show, del)
	return cmd
}

func withStore(cmd *cobra.Command, opts *options, fn func(*persist.Store) error) error {
	store, err := persist.OpenStore(cmd.Context(), opts.cfg.Storage.Path, opts.log)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}
