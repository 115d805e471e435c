package run

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/cnosdb/sensorgen/generator"
	"github.com/cnosdb/sensorgen/pkg/logger"
	itoml "github.com/cnosdb/sensorgen/pkg/toml"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// EnvPrefix prefixes every environment override, e.g. SENSORGEN_GENERATOR_COUNT.
const EnvPrefix = "SENSORGEN"

// Config is the complete sensorgen configuration file.
type Config struct {
	Generator *generator.Config `toml:"generator"`
	Log       *logger.Config    `toml:"log"`
}

// NewConfig returns an instance of Config with reasonable defaults.
func NewConfig() *Config {
	return &Config{
		Generator: generator.NewConfig(),
		Log:       logger.NewDefaultLogConfig(),
	}
}

// FromTomlFile loads the config from a TOML file.
func (c *Config) FromTomlFile(fpath string) error {
	bs, err := ioutil.ReadFile(fpath)
	if err != nil {
		return err
	}

	// Handle any potential Byte-Order-Marks that may be in the config file.
	// This is for Windows compatibility only.
	bom := unicode.BOMOverride(transform.Nop)
	bs, _, err = transform.Bytes(bom, bs)
	if err != nil {
		return err
	}
	return c.FromToml(string(bs))
}

// FromToml loads the config from TOML.
func (c *Config) FromToml(input string) error {
	md, err := toml.Decode(input, c)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		logger.BgLogger().Warn("unknown configuration keys ignored", zap.Any("keys", undecoded))
	}
	return nil
}

// Validate returns an error if the config is invalid.
func (c *Config) Validate() error {
	if err := c.Generator.Validate(); err != nil {
		return errors.Wrap(err, "generator")
	}
	if err := c.Log.Validate(); err != nil {
		return errors.Wrap(err, "log")
	}
	return nil
}

// ApplyEnvOverrides apply the environment configuration on top of the config.
func (c *Config) ApplyEnvOverrides(getenv func(string) string) error {
	return itoml.ApplyEnvOverrides(getenv, EnvPrefix, c)
}

// LoadEnvFile exports the variables of a dotenv file that are not already
// set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "load env file %s", path)
	}
	return nil
}

// ParseConfig parses the config at path, then applies env overrides.
// It returns the default configuration if path is blank.
func ParseConfig(path string, getenv func(string) string) (*Config, error) {
	config := NewConfig()
	if path == "" {
		logger.BgLogger().Debug("No configuration provided, using default settings")
	} else {
		logger.BgLogger().Info("Loading configuration file", zap.String("path", path))
		if err := config.FromTomlFile(path); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	}

	if err := config.ApplyEnvOverrides(getenv); err != nil {
		return nil, fmt.Errorf("apply env config: %v", err)
	}
	return config, nil
}
