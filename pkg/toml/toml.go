// Package toml adds configuration helpers on top of BurntSushi/toml.
package toml

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Duration is a TOML wrapper type for time.Duration.
type Duration time.Duration

// String returns the string representation of the duration.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// UnmarshalText parses a TOML value into a duration value.
func (d *Duration) UnmarshalText(text []byte) error {
	// Ignore if there is no value set.
	if len(text) == 0 {
		return nil
	}

	// Otherwise parse as a duration formatted string.
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}

	// Set duration and return.
	*d = Duration(duration)
	return nil
}

// MarshalText converts a duration to a string for encoding toml.
func (d Duration) MarshalText() (text []byte, err error) {
	return []byte(d.String()), nil
}

// ApplyEnvOverrides walks the toml-tagged fields of val and replaces each one
// for which getenv returns a value. The variable name is prefix, then the
// upper-cased tag path joined with underscores, dashes becoming underscores:
// the field `count` of the `[generator]` table with prefix SENSORGEN is read
// from SENSORGEN_GENERATOR_COUNT.
func ApplyEnvOverrides(getenv func(string) string, prefix string, val interface{}) error {
	if getenv == nil {
		return nil
	}
	return applyEnvOverrides(getenv, prefix, reflect.ValueOf(val), "")
}

func applyEnvOverrides(getenv func(string) string, prefix string, spec reflect.Value, structKey string) error {
	element := spec
	// If spec is a named type and is addressable,
	// check the address to see if it implements encoding.TextUnmarshaler.
	if spec.Kind() != reflect.Ptr && spec.Type().Name() != "" && spec.CanAddr() {
		v := spec.Addr()
		if u, ok := v.Interface().(encoding.TextUnmarshaler); ok {
			value := getenv(prefix)
			if value == "" {
				return nil
			}
			return u.UnmarshalText([]byte(value))
		}
	}
	// If we have a pointer, dereference it
	if spec.Kind() == reflect.Ptr {
		if spec.IsNil() {
			return nil
		}
		element = spec.Elem()
	}

	value := getenv(prefix)

	switch element.Kind() {
	case reflect.String:
		if value != "" {
			element.SetString(value)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if value == "" {
			return nil
		}
		intValue, err := cast.ToInt64E(value)
		if err != nil {
			return fmt.Errorf("failed to apply %v to %v using type %v and value '%v': %s", prefix, structKey, element.Type().String(), value, err)
		}
		element.SetInt(intValue)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if value == "" {
			return nil
		}
		uintValue, err := cast.ToUint64E(value)
		if err != nil {
			return fmt.Errorf("failed to apply %v to %v using type %v and value '%v': %s", prefix, structKey, element.Type().String(), value, err)
		}
		element.SetUint(uintValue)
	case reflect.Bool:
		if value == "" {
			return nil
		}
		boolValue, err := cast.ToBoolE(value)
		if err != nil {
			return fmt.Errorf("failed to apply %v to %v using type %v and value '%v': %s", prefix, structKey, element.Type().String(), value, err)
		}
		element.SetBool(boolValue)
	case reflect.Float32, reflect.Float64:
		if value == "" {
			return nil
		}
		floatValue, err := cast.ToFloat64E(value)
		if err != nil {
			return fmt.Errorf("failed to apply %v to %v using type %v and value '%v': %s", prefix, structKey, element.Type().String(), value, err)
		}
		element.SetFloat(floatValue)
	case reflect.Struct:
		typeOfSpec := element.Type()
		for i := 0; i < element.NumField(); i++ {
			field := element.Field(i)
			if !field.CanSet() && !typeOfSpec.Field(i).Anonymous {
				continue
			}

			fieldName := typeOfSpec.Field(i).Name
			configName := typeOfSpec.Field(i).Tag.Get("toml")
			if configName == "-" {
				continue
			}

			// Embedded structs share the parent's prefix.
			if typeOfSpec.Field(i).Anonymous {
				if err := applyEnvOverrides(getenv, prefix, field, fieldName); err != nil {
					return err
				}
				continue
			}

			// If it's a sub-config, recursively apply
			if configName == "" {
				configName = fieldName
			}
			key := strings.ToUpper(strings.Replace(configName, "-", "_", -1))
			if err := applyEnvOverrides(getenv, fmt.Sprintf("%s_%s", prefix, key), field, fieldName); err != nil {
				return err
			}
		}
	}
	return nil
}
