package cmd

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/zxfonline/structperf/config"
	"github.com/zxfonline/structperf/log"
	"github.com/zxfonline/structperf/random"
	"github.com/zxfonline/structperf/trace"
)

const (
	envPrefix      = "structperf"
	defaultCfgName = ".structperf.yaml"
)

type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	// first BindPFlags failure, reported by setup
	bindErr error
}

// NewRootCmd builds the structperf command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	rootCmd := &cobra.Command{
		Use:   "structperf",
		Short: "PRNG call overhead benchmarks.",
		Long: `PRNG call overhead benchmarks.
Compares a static eagerly seeded generator, a static lazily seeded generator
and a caller-owned generator, for a 64-bit LCG and xoshiro256+. For example:
  structperf run --iterations=100000000
  structperf run lcg_struct xoshiro_struct --rounds=10 --output=yaml
  structperf lua luabind/example/timeit.lua`,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return a.setup() },
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/"+defaultCfgName+")")
	flags.Int("iterations", 0, "calls per round")
	flags.Uint64("seed", 0, "generator seed (0 keeps the default seeds)")
	flags.Bool("entropy", false, "seed from the OS random source")
	flags.String("log-level", "", "log level (trace, debug, info, warn, error)")
	flags.Bool("log-json", false, "log as JSON")
	flags.Bool("trace", false, "record runs in /debug/requests")
	flags.String("debug-addr", "", "serve pprof and trace pages on this address")
	a.bind(flags)

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	rootCmd.AddCommand(a.newRunCmd(), a.newListCmd(), a.newLuaCmd())
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// bind routes flags through viper so they share precedence with the
// environment and the config file.
func (a *app) bind(flags *pflag.FlagSet) {
	if err := a.v.BindPFlags(flags); err != nil && a.bindErr == nil {
		a.bindErr = fmt.Errorf("bind flags: %w", err)
	}
}

// setup reads the config file, then applies flags and environment on top.
func (a *app) setup() error {
	if a.bindErr != nil {
		return a.bindErr
	}
	cfg := config.Default()
	if a.cfgFile == "" {
		if home, err := homedir.Dir(); err == nil {
			fname := filepath.Join(home, defaultCfgName)
			if _, err := os.Stat(fname); err == nil {
				a.cfgFile = fname
			}
		}
	}
	if a.cfgFile != "" {
		c, err := config.InitConfig(a.cfgFile)
		if err != nil {
			return err
		}
		cfg = c
	}
	applyOverrides(cfg, a.v)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := log.Configure(cfg.LogLevel, cfg.LogJSON); err != nil {
		return err
	}
	if a.cfgFile != "" {
		log.Infof("Using config file: %s", a.cfgFile)
	}
	config.Set(cfg)
	trace.Init(cfg.Trace, true)
	if cfg.DebugAddr != "" {
		go func() {
			if err := http.ListenAndServe(cfg.DebugAddr, nil); err != nil {
				log.Warnf("debug server %s: %v", cfg.DebugAddr, err)
			}
		}()
	}
	a.cfg = cfg
	return nil
}

// seed is the generator seed for this run: cfg.Seed, or a fresh one from
// the OS when entropy is set. 0 keeps the default seeds.
func (a *app) seed() (uint64, error) {
	if !a.cfg.Entropy {
		return a.cfg.Seed, nil
	}
	s, err := random.SeedFromEntropy()
	if err != nil {
		return 0, fmt.Errorf("entropy seed: %w", err)
	}
	log.Infof("seed from entropy: %#x", s)
	return s, nil
}

func applyOverrides(cfg *config.Config, v *viper.Viper) {
	if v.IsSet("iterations") {
		cfg.Iterations = v.GetInt("iterations")
	}
	if v.IsSet("rounds") {
		cfg.Rounds = v.GetInt("rounds")
	}
	if v.IsSet("seed") {
		cfg.Seed = v.GetUint64("seed")
	}
	if v.IsSet("entropy") {
		cfg.Entropy = v.GetBool("entropy")
	}
	if v.IsSet("output") {
		cfg.Output = v.GetString("output")
	}
	if v.IsSet("log-level") {
		cfg.LogLevel = v.GetString("log-level")
	}
	if v.IsSet("log-json") {
		cfg.LogJSON = v.GetBool("log-json")
	}
	if v.IsSet("trace") {
		cfg.Trace = v.GetBool("trace")
	}
	if v.IsSet("debug-addr") {
		cfg.DebugAddr = v.GetString("debug-addr")
	}
}
