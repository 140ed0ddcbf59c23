// Command sortedset exercises the sortedset package from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/NVIDIA/sortedset"
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type driverContext struct {
	Log zerolog.Logger
}

func main() {
	root := rootCommand()

	if err := root.Execute(); err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var logLevel string

	ctx := &driverContext{Log: zerolog.Nop()}

	root := &cobra.Command{
		Use:          "sortedset",
		Short:        "exercise an LLRB-backed sorted set",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				return errors.Wrapf(err, "invalid --log-level %q", logLevel)
			}

			ctx.Log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
				Level(level).
				With().Timestamp().Str("command", cmd.Name()).
				Logger()
			sortedset.SetLogger(ctx.Log)

			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")

	root.AddCommand(demoCommand(ctx))
	root.AddCommand(benchCommand(ctx))
	root.AddCommand(dumpCommand(ctx))

	return root
}
