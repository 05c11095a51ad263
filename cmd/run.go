package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/zxfonline/structperf/bench"
	"github.com/zxfonline/structperf/config"
)

func (a *app) newRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run [variant...]",
		Short: "Time the generator variants",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args)
		},
	}
	flags := runCmd.Flags()
	flags.Int("rounds", 0, "timed rounds per variant")
	flags.String("output", "", "report format (text, yaml)")
	a.bind(flags)
	return runCmd
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	cfg := a.cfg
	names := cfg.Variants
	if len(args) > 0 {
		names = args
	}
	seed, err := a.seed()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	results, err := bench.RunAll(ctx, names, seed, bench.Options{
		Iterations: cfg.Iterations,
		Rounds:     cfg.Rounds,
	})
	if len(results) > 0 {
		var werr error
		switch cfg.Output {
		case config.OutputYAML:
			werr = bench.WriteYAML(cmd.OutOrStdout(), results)
		default:
			werr = bench.WriteText(cmd.OutOrStdout(), results)
		}
		if err == nil {
			err = werr
		}
	}
	return err
}
