package toml_test

import (
	"testing"
	"time"

	itoml "github.com/cnosdb/sensorgen/pkg/toml"

	"github.com/BurntSushi/toml"
)

func TestDuration(t *testing.T) {
	var c struct {
		Interval itoml.Duration `toml:"interval"`
		Empty    itoml.Duration `toml:"empty"`
	}
	c.Empty = itoml.Duration(time.Second)
	if _, err := toml.Decode(`
interval = "1m30s"
empty = ""
`, &c); err != nil {
		t.Fatal(err)
	}

	if exp := itoml.Duration(90 * time.Second); c.Interval != exp {
		t.Fatalf("unexpected interval: got=%s exp=%s", c.Interval, exp)
	}
	if exp := itoml.Duration(time.Second); c.Empty != exp {
		t.Fatalf("empty value changed duration: got=%s", c.Empty)
	}

	text, err := c.Interval.MarshalText()
	if err != nil {
		t.Fatal(err)
	} else if string(text) != "1m30s" {
		t.Fatalf("unexpected text: %s", text)
	}

	var d itoml.Duration
	if err := d.UnmarshalText([]byte("soon")); err == nil {
		t.Fatal("expected error for an invalid duration")
	}
}

type nested struct {
	Jitter float64 `toml:"jitter"`
}

type Embedded struct {
	Level string `toml:"level"`
}

type testConfig struct {
	Embedded
	Name     string         `toml:"name"`
	Count    int            `toml:"count"`
	Size     uint16         `toml:"size"`
	Enabled  bool           `toml:"enabled"`
	Interval itoml.Duration `toml:"interval"`
	FlowRate nested         `toml:"flow-rate"`
	Ptr      *nested        `toml:"ptr"`
	Nil      *nested        `toml:"nil"`
	Skipped  string         `toml:"-"`
	Untagged string
}

func TestApplyEnvOverrides(t *testing.T) {
	env := map[string]string{
		"APP_LEVEL":            "debug",
		"APP_NAME":             "demo",
		"APP_COUNT":            "-7",
		"APP_SIZE":             "512",
		"APP_ENABLED":          "true",
		"APP_INTERVAL":         "250ms",
		"APP_FLOW_RATE_JITTER": "0.25",
		"APP_PTR_JITTER":       "3",
		"APP_NIL_JITTER":       "4",
		"APP_SKIPPED":          "nope",
		"APP_UNTAGGED":         "yes",
	}
	c := testConfig{Ptr: &nested{}, Skipped: "kept"}
	if err := itoml.ApplyEnvOverrides(func(k string) string { return env[k] }, "APP", &c); err != nil {
		t.Fatal(err)
	}

	switch {
	case c.Level != "debug":
		t.Fatalf("unexpected level: %q", c.Level)
	case c.Name != "demo":
		t.Fatalf("unexpected name: %q", c.Name)
	case c.Count != -7:
		t.Fatalf("unexpected count: %d", c.Count)
	case c.Size != 512:
		t.Fatalf("unexpected size: %d", c.Size)
	case !c.Enabled:
		t.Fatal("expected enabled")
	case c.Interval != itoml.Duration(250*time.Millisecond):
		t.Fatalf("unexpected interval: %s", c.Interval)
	case c.FlowRate.Jitter != 0.25:
		t.Fatalf("unexpected flow rate jitter: %v", c.FlowRate.Jitter)
	case c.Ptr.Jitter != 3:
		t.Fatalf("unexpected ptr jitter: %v", c.Ptr.Jitter)
	case c.Nil != nil:
		t.Fatal("nil pointer was allocated")
	case c.Skipped != "kept":
		t.Fatalf("skipped field overridden: %q", c.Skipped)
	case c.Untagged != "yes":
		t.Fatalf("unexpected untagged: %q", c.Untagged)
	}
}

func TestApplyEnvOverrides_Invalid(t *testing.T) {
	for _, key := range []string{"APP_COUNT", "APP_SIZE", "APP_ENABLED", "APP_FLOW_RATE_JITTER", "APP_INTERVAL"} {
		var c testConfig
		err := itoml.ApplyEnvOverrides(func(k string) string {
			if k == key {
				return "not-a-value"
			}
			return ""
		}, "APP", &c)
		if err == nil {
			t.Fatalf("expected error for %s", key)
		}
	}
}

func TestApplyEnvOverrides_NilGetenv(t *testing.T) {
	c := testConfig{Name: "kept"}
	if err := itoml.ApplyEnvOverrides(nil, "APP", &c); err != nil {
		t.Fatal(err)
	} else if c.Name != "kept" {
		t.Fatalf("unexpected name: %q", c.Name)
	}
}
