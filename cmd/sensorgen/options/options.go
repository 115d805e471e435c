package options

import "os"

type options struct {
	ConfigFile string
	EnvFile    string
}

var Env = options{}

// GetConfigPath returns the config path from the options.
// It will return a path by searching in this order:
//  1. The CLI option in ConfigFile
//  2. The environment variable SENSORGEN_CONFIG_PATH
//  3. The first sensorgen.conf file on the path:
//     - ~/.sensorgen
//     - /etc/sensorgen
func (opt options) GetConfigPath() string {
	if opt.ConfigFile != "" {
		if opt.ConfigFile == os.DevNull {
			return ""
		}
		return opt.ConfigFile
	} else if envVar := os.Getenv("SENSORGEN_CONFIG_PATH"); envVar != "" {
		return envVar
	}

	for _, path := range []string{
		os.ExpandEnv("${HOME}/.sensorgen/sensorgen.conf"),
		"/etc/sensorgen/sensorgen.conf",
	} {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// GetEnvFile returns the dotenv file to load before env overrides apply,
// defaulting to .env in the working directory.
func (opt options) GetEnvFile() string {
	if opt.EnvFile != "" {
		return opt.EnvFile
	}
	return ".env"
}
