// Package config holds the global switches of the collection diagnostics.
package config

import (
	"bufio"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"unboxed/logger"
)

// EnvPrefix prefixes every environment variable read by LoadEnv.
const EnvPrefix = "UNBOXED_"

// ListProperties defines the global collection properties.
type ListProperties struct {
	// RangeChecks asserts 0 <= from <= to <= backing size after every sublist mutation.
	RangeChecks bool `cfg:"range-checks"`
	// ComodChecks makes sublists fail fast when their backing list was
	// structurally modified through another handle.
	ComodChecks bool   `cfg:"comod-checks"`
	LogLevel    string `cfg:"log-level"`
}

// Properties holds the active configuration.
var Properties *ListProperties

func init() {
	Properties = defaults()
}

func defaults() *ListProperties {
	return &ListProperties{
		RangeChecks: false,
		ComodChecks: true,
	}
}

// parse reads "key value" lines, skipping blanks and '#' comments. Keys not
// present keep their default.
func parse(src io.Reader) (*ListProperties, error) {
	rawMap := make(map[string]string)
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		pivot := strings.IndexAny(line, " \t")
		if pivot > 0 && pivot < len(line)-1 {
			key := line[:pivot]
			value := strings.TrimSpace(line[pivot+1:])
			rawMap[strings.ToLower(key)] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading config")
	}
	props := defaults()
	if err := fill(props, func(key string) (string, bool) {
		v, ok := rawMap[key]
		return v, ok
	}); err != nil {
		return nil, err
	}
	return props, nil
}

// fill sets every tagged field for which lookup yields a value.
func fill(props *ListProperties, lookup func(key string) (string, bool)) error {
	t := reflect.TypeOf(props).Elem()
	v := reflect.ValueOf(props).Elem()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		key, ok := field.Tag.Lookup("cfg")
		if !ok {
			key = field.Name
		}
		value, ok := lookup(strings.ToLower(key))
		if !ok {
			continue
		}
		fieldVal := v.Field(i)
		switch field.Type.Kind() {
		case reflect.String:
			fieldVal.SetString(value)
		case reflect.Bool:
			b, err := parseBool(value)
			if err != nil {
				return errors.Wrapf(err, "config key %q", key)
			}
			fieldVal.SetBool(b)
		case reflect.Int:
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return errors.Wrapf(err, "config key %q", key)
			}
			fieldVal.SetInt(n)
		}
	}
	return nil
}

// Setup reads the config file at path into Properties and configures the logger.
func Setup(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening config %s", path)
	}
	defer file.Close()
	props, err := parse(file)
	if err != nil {
		return err
	}
	return apply(props)
}

// LoadEnv overrides Properties from UNBOXED_* environment variables, e.g.
// UNBOXED_RANGE_CHECKS=true.
func LoadEnv() error {
	props := *Properties
	err := fill(&props, func(key string) (string, bool) {
		return os.LookupEnv(envName(key))
	})
	if err != nil {
		return err
	}
	return apply(&props)
}

func envName(key string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

func apply(props *ListProperties) error {
	if err := logger.Setup(props.LogLevel); err != nil {
		return err
	}
	Properties = props
	logger.L().Info("collection properties loaded",
		zap.Bool("range-checks", props.RangeChecks),
		zap.Bool("comod-checks", props.ComodChecks))
	return nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "yes", "t", "y", "1", "on":
		return true, nil
	case "false", "no", "f", "n", "0", "off":
		return false, nil
	}
	return false, errors.Newf("invalid boolean %q", s)
}
