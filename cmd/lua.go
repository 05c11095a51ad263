package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zxfonline/structperf/luabind"
)

func (a *app) newLuaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lua <script.lua>",
		Short: "Run a Lua script with the struct_perf module loaded",
		Long: `Run a Lua script with the struct_perf module loaded.
The script sees the globals iterations, clock() and Logf(format, ...),
and can require "struct_perf" and "json". --seed and --entropy seed the
struct_perf init functions and constructors the same way they seed run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := a.seed()
			if err != nil {
				return err
			}
			return luabind.RunFile(args[0], seed, map[string]interface{}{
				"iterations": a.cfg.Iterations,
			})
		},
	}
}
