package run

import (
	"fmt"
	"os"

	"github.com/cnosdb/sensorgen/cmd/sensorgen/options"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

var config_examples = `  sensorgen config
  sensorgen config --config ./sensorgen.conf > sensorgen.generated.conf`

func GetConfigCommand() *cobra.Command {
	c := &cobra.Command{
		Use:     "config",
		Short:   "display the effective configuration",
		Long:    "Displays the configuration a run would use: defaults merged with the configuration file, the dotenv file and SENSORGEN_* environment variables.",
		Example: config_examples,
		Args:    cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd:   true,
			DisableDescriptions: true,
			DisableNoDescFlag:   true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := LoadEnvFile(options.Env.GetEnvFile()); err != nil {
				return err
			}
			path := options.Env.GetConfigPath()
			if path != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Merging with configuration at: %s\n", path)
			}

			c, err := ParseConfig(path, os.Getenv)
			if err != nil {
				return err
			}
			if err := c.Validate(); err != nil {
				return fmt.Errorf("%s. To generate a valid configuration file run `sensorgen config > sensorgen.conf`", err)
			}

			return toml.NewEncoder(cmd.OutOrStdout()).Encode(c)
		},
	}

	flags := c.Flags()
	flags.StringVarP(&options.Env.ConfigFile, "config", "c", "", `Set the path to the configuration file to merge
with the defaults. Searched for like 'sensorgen run' does when omitted.`)
	flags.StringVar(&options.Env.EnvFile, "env-file", "", "Load environment overrides from this dotenv file (default .env).")

	return c
}
