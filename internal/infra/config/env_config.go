package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidConfig is returned when the provided config is not a pointer to a struct
	// that embeds EnvConfig.
	ErrInvalidConfig = errors.New("config must be a pointer to a struct embedding EnvConfig")

	// ErrVarNotSet is returned when a required environment variable is not set and has no default.
	ErrVarNotSet = errors.New("env var not set")

	// ErrUnsupportedVarType is returned when trying to parse an environment variable
	// into an unsupported Go type.
	ErrUnsupportedVarType = errors.New("unsupported env var type")
)

//nolint:gochecknoglobals
var (
	envConfigType = reflect.TypeOf(EnvConfig{})
	durationType  = reflect.TypeOf(time.Duration(0))
)

// EnvConfig is a base type that must be embedded in configuration structs
// to enable environment variable parsing.
type EnvConfig struct {
	namespace string
}

// Namespace returns the namespace the config was parsed with.
func (c EnvConfig) Namespace() string {
	return c.namespace
}

// Parse loads configuration values from environment variables into the provided struct.
//
// The struct must embed EnvConfig. Fields are bound with `env:"NAME"`, optionally
// with `default:"value"`; nested structs add `envPrefix:"PREFIX_"` to their
// children's names. For a namespace "A_B" the variable A_B_NAME is tried first,
// then A_NAME. Supported field types are string, bool, signed integers,
// floats and time.Duration.
func Parse(_ context.Context, cfg any, namespace string) error {
	envConfig, err := findEnvConfig(cfg)
	if err != nil {
		return fmt.Errorf("find env config: %w", err)
	}

	envConfig.namespace = namespace

	return parseStruct(namespace, "", reflect.ValueOf(cfg).Elem())
}

//nolint:varnamelen
func findEnvConfig(cfg any) (*EnvConfig, error) {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return nil, ErrInvalidConfig
	}

	v = v.Elem()

	for i := range v.NumField() {
		field := v.Type().Field(i)
		if !field.Anonymous || field.Type != envConfigType {
			continue
		}

		//nolint:forcetypeassert
		return v.Field(i).Addr().Interface().(*EnvConfig), nil
	}

	return nil, ErrInvalidConfig
}

func parseStruct(namespace, prefix string, v reflect.Value) error {
	t := v.Type()

	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() || field.Type == envConfigType {
			continue
		}

		if field.Type.Kind() == reflect.Struct {
			if err := parseStruct(namespace, prefix+field.Tag.Get("envPrefix"), v.Field(i)); err != nil {
				return err
			}

			continue
		}

		envTag := field.Tag.Get("env")
		if envTag == "" {
			continue
		}

		raw, err := lookup(namespace, prefix+envTag, field)
		if err != nil {
			return fmt.Errorf("parse field: %w", err)
		}

		if err := setValue(v.Field(i), raw); err != nil {
			return fmt.Errorf("parse field: %s: %w", prefix+envTag, err)
		}
	}

	return nil
}

// lookup walks the namespace from the most to the least specific prefix and
// falls back to the field default.
func lookup(namespace, name string, field reflect.StructField) (string, error) {
	parts := strings.Split(namespace, "_")

	for i := len(parts); i > 0; i-- {
		ns := strings.Join(parts[:i], "_")
		if ns != "" {
			ns += "_"
		}

		if value, ok := os.LookupEnv(ns + name); ok {
			return value, nil
		}
	}

	if value, ok := field.Tag.Lookup("default"); ok {
		return value, nil
	}

	return "", fmt.Errorf("%w: %s", ErrVarNotSet, name)
}

//nolint:exhaustive
func setValue(v reflect.Value, raw string) error {
	if v.Type() == durationType {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}

		v.SetInt(int64(d))

		return nil
	}

	switch v.Kind() {
	case reflect.String:
		v.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid bool: %w", err)
		}

		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, v.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid int: %w", err)
		}

		v.SetInt(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, v.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid float: %w", err)
		}

		v.SetFloat(f)
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedVarType, v.Kind())
	}

	return nil
}
