package main

import (
	"slices"

	"github.com/NVIDIA/sortedset"
	"github.com/spf13/cobra"
)

func dumpCommand(ctx *driverContext) *cobra.Command {
	var values []string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "print the LLRB tree built from --values",
		RunE: func(cmd *cobra.Command, args []string) error {
			set := sortedset.NewOrderedSortedSet[string]()
			if err := set.AddRange(slices.Values(values)); err != nil {
				return err
			}
			if err := set.Validate(); err != nil {
				return err
			}

			ctx.Log.Debug().Int("count", set.Count()).Msg("dumping")

			return set.Dump(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringSliceVar(&values, "values", []string{"d", "b", "f", "a", "c", "e", "g"}, "comma separated values to insert")

	return cmd
}
