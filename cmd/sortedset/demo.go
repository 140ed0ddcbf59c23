package main

import (
	"fmt"
	"io"

	"github.com/NVIDIA/sortedset"
	"github.com/spf13/cobra"
)

var demoHosts = []string{
	"www.cs.princeton.edu",
	"www.cs.princeton.edu", // duplicate, silently ignored
	"www.princeton.edu",
	"www.math.princeton.edu",
	"www.yale.edu",
	"www.amazon.com",
	"www.simpsons.com",
	"www.stanford.edu",
	"www.google.com",
	"www.ibm.com",
	"www.apple.com",
	"www.slashdot.com",
	"www.whitehouse.gov",
	"www.espn.com",
	"www.snopes.com",
	"www.movies.com",
	"www.cnn.com",
	"www.iitb.ac.in",
}

func demoCommand(ctx *driverContext) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "walk through membership, floor/ceiling and iteration on a set of host names",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(ctx, cmd.OutOrStdout())
		},
	}
}

func runDemo(ctx *driverContext, out io.Writer) error {
	set := sortedset.NewOrderedSortedSet[string]()
	fmt.Fprintf(out, "set = %v\n", set)

	for _, host := range demoHosts {
		added, err := set.Add(host)
		if err != nil {
			return err
		}
		if !added {
			ctx.Log.Info().Str("host", host).Msg("already present")
		}
	}

	for _, probe := range []struct {
		host     string
		expected bool
	}{
		{"www.cs.princeton.edu", true},
		{"www.harvardsucks.com", false},
		{"www.simpsons.com", true},
	} {
		found, err := set.Contains(probe.host)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, found == probe.expected)
	}
	fmt.Fprintln(out)

	for _, host := range []string{"www.simpsonr.com", "www.simpsons.com", "www.simpsont.com"} {
		ceiling, err := set.Ceiling(host)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Ceiling(%s) = %s\n", host, ceiling)
	}
	for _, host := range []string{"www.simpsonr.com", "www.simpsons.com", "www.simpsont.com"} {
		floor, err := set.Floor(host)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Floor(%s)   = %s\n", host, floor)
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "set = %v\n", set)
	fmt.Fprintln(out)

	for host := range set.All() {
		fmt.Fprintln(out, host)
	}
	fmt.Fprintln(out)

	copied := sortedset.NewOrderedSortedSet[string]()
	if err := copied.AddRange(set.All()); err != nil {
		return err
	}
	fmt.Fprintln(out, set.Equals(copied))

	ctx.Log.Debug().Int("count", set.Count()).Uint64("hash", set.Hash()).Msg("demo done")

	return nil
}
