package run

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cnosdb/sensorgen/cmd/sensorgen/options"
	"github.com/cnosdb/sensorgen/generator"
	"github.com/cnosdb/sensorgen/pkg/logger"
	itoml "github.com/cnosdb/sensorgen/pkg/toml"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var run_examples = `  sensorgen run
  sensorgen run --count 500 --interval 1s
  sensorgen run --config ./sensorgen.conf --path /var/lib/grafana/metrics.db`

// overrides holds the generator settings that may be given on the command
// line; they win over the config file and the environment.
var overrides struct {
	path     string
	count    int
	interval time.Duration
	seed     int64
}

func GetCommand() *cobra.Command {
	c := &cobra.Command{
		Use:     "run",
		Short:   "generate demo sensor readings",
		Long:    "Generates synthetic temperature, pressure, humidity and flow rate readings into an SQLite file.",
		Example: run_examples,
		Args:    cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd:   true,
			DisableDescriptions: true,
			DisableNoDescFlag:   true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          RunE,
	}
	SetFlags(c)
	return c
}

// SetFlags registers the flags shared by the root and run commands.
func SetFlags(c *cobra.Command) {
	flags := c.Flags()
	flags.StringVarP(&options.Env.ConfigFile, "config", "c", "", `Set the path to the configuration file.
This defaults to the environment variable SENSORGEN_CONFIG_PATH,
~/.sensorgen/sensorgen.conf, or /etc/sensorgen/sensorgen.conf if a file
is present at any of these locations.
Disable the automatic loading of a configuration file using
the null device (such as /dev/null)`)
	flags.StringVar(&options.Env.EnvFile, "env-file", "", "Load environment overrides from this dotenv file (default .env).")
	flags.StringVar(&overrides.path, "path", generator.DefaultPath, "Path of the SQLite file to write readings to.")
	flags.IntVar(&overrides.count, "count", generator.DefaultCount, "Number of readings to generate.")
	flags.DurationVar(&overrides.interval, "interval", generator.DefaultInterval, "Logical time between two readings.")
	flags.Int64Var(&overrides.seed, "seed", 0, "Random seed; 0 picks one from the clock.")
}

func applyFlags(c *cobra.Command, gc *generator.Config) {
	flags := c.Flags()
	if flags.Changed("path") {
		gc.Path = overrides.path
	}
	if flags.Changed("count") {
		gc.Count = overrides.count
	}
	if flags.Changed("interval") {
		gc.Interval = itoml.Duration(overrides.interval)
	}
	if flags.Changed("seed") {
		gc.Seed = overrides.seed
	}
}

// RunE loads the configuration and performs one generation run.
func RunE(cmd *cobra.Command, args []string) error {
	if err := LoadEnvFile(options.Env.GetEnvFile()); err != nil {
		return err
	}
	config, err := ParseConfig(options.Env.GetConfigPath(), os.Getenv)
	if err != nil {
		return err
	}
	applyFlags(cmd, config.Generator)
	if err := config.Validate(); err != nil {
		return fmt.Errorf("%s. To generate a valid configuration file run `sensorgen config > sensorgen.conf`", err)
	}

	if err := logger.InitZapLogger(config.Log); err != nil {
		return err
	}
	defer logger.Sync()

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithKeyValue(ctx, "run-id", uuid.NewString())

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "sensorgen: generating demo sensor data")
	fmt.Fprintln(out, strings.Repeat("=", 50))

	g := generator.New(*config.Generator)
	g.Stdout = out
	if err := g.Run(ctx); err != nil {
		logger.Logger(ctx).Error("generation failed", zap.String("error", err.Error()))
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "done. point an SQLite datasource at %s to start building dashboards\n", config.Generator.Path)
	return nil
}
