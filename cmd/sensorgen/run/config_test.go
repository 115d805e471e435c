package run_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cnosdb/sensorgen/cmd/sensorgen/run"
	itoml "github.com/cnosdb/sensorgen/pkg/toml"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Parse(t *testing.T) {
	c := run.NewConfig()
	require.NoError(t, c.FromToml(`
[generator]
path = "/tmp/demo.db"
count = 5
interval = "1m"

[generator.flow-rate]
base = 12.5

[log]
level = "debug"
format = "json"

[log.file]
filename = "/tmp/sensorgen.log"
max-backups = 3
`))

	assert.Equal(t, "/tmp/demo.db", c.Generator.Path)
	assert.Equal(t, 5, c.Generator.Count)
	assert.Equal(t, itoml.Duration(time.Minute), c.Generator.Interval)
	assert.Equal(t, 12.5, c.Generator.FlowRate.Base)
	// Unset keys keep their defaults.
	assert.Equal(t, 1.0, c.Generator.FlowRate.Jitter)
	assert.Equal(t, 25.0, c.Generator.Temperature.Base)

	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "json", c.Log.Format)
	assert.Equal(t, "/tmp/sensorgen.log", c.Log.File.Filename)
	assert.Equal(t, 3, c.Log.File.MaxBackups)

	require.NoError(t, c.Validate())
}

func TestConfig_FromTomlFile_BOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sensorgen.conf")
	require.NoError(t, os.WriteFile(path, []byte("\xef\xbb\xbf[generator]\ncount = 42\n"), 0644))

	c := run.NewConfig()
	require.NoError(t, c.FromTomlFile(path))
	assert.Equal(t, 42, c.Generator.Count)
}

func TestConfig_ApplyEnvOverrides(t *testing.T) {
	env := map[string]string{
		"SENSORGEN_GENERATOR_PATH":               "/srv/metrics.db",
		"SENSORGEN_GENERATOR_COUNT":              "250",
		"SENSORGEN_GENERATOR_INTERVAL":           "500ms",
		"SENSORGEN_GENERATOR_SEED":               "11",
		"SENSORGEN_GENERATOR_FLOW_RATE_JITTER":   "0.5",
		"SENSORGEN_GENERATOR_HUMIDITY_PRECISION": "2",
		"SENSORGEN_LOG_LEVEL":                    "warn",
		"SENSORGEN_LOG_FILE_MAX_SIZE":            "10",
	}

	c := run.NewConfig()
	require.NoError(t, c.ApplyEnvOverrides(func(k string) string { return env[k] }))

	assert.Equal(t, "/srv/metrics.db", c.Generator.Path)
	assert.Equal(t, 250, c.Generator.Count)
	assert.Equal(t, itoml.Duration(500*time.Millisecond), c.Generator.Interval)
	assert.Equal(t, int64(11), c.Generator.Seed)
	assert.Equal(t, 0.5, c.Generator.FlowRate.Jitter)
	assert.Equal(t, 2, c.Generator.Humidity.Precision)
	assert.Equal(t, "warn", c.Log.Level)
	assert.Equal(t, 10, c.Log.File.MaxSize)
}

func TestConfig_ApplyEnvOverrides_Invalid(t *testing.T) {
	c := run.NewConfig()
	err := c.ApplyEnvOverrides(func(k string) string {
		if k == "SENSORGEN_GENERATOR_COUNT" {
			return "lots"
		}
		return ""
	})
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	c := run.NewConfig()
	c.Log.Format = "xml"
	assert.Error(t, c.Validate())

	c = run.NewConfig()
	c.Generator.Count = -3
	assert.Error(t, c.Validate())
}

func TestParseConfig(t *testing.T) {
	noenv := func(string) string { return "" }

	c, err := run.ParseConfig("", noenv)
	require.NoError(t, err)
	assert.Equal(t, run.NewConfig(), c)

	_, err = run.ParseConfig(filepath.Join(t.TempDir(), "missing.conf"), noenv)
	assert.Error(t, err)
}

func TestLoadEnvFile(t *testing.T) {
	const key = "SENSORGEN_TEST_ENV_FILE_VALUE"
	t.Cleanup(func() { os.Unsetenv(key) })

	dir := t.TempDir()
	require.NoError(t, run.LoadEnvFile(filepath.Join(dir, "missing.env")))

	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=from-file\n"), 0644))
	require.NoError(t, run.LoadEnvFile(path))
	assert.Equal(t, "from-file", os.Getenv(key))
}
