// Package config loads planner settings from defaults, an optional YAML
// file and PLANNER_* environment variables, in that order of precedence.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	// DefaultFile is looked up in the working directory when no path is given.
	DefaultFile = "planner.yaml"
	// EnvPrefix marks environment overrides, e.g. PLANNER_EXPORT_CURRENCY.
	EnvPrefix = "PLANNER_"
)

type Config struct {
	Store struct {
		// Key is the kv_store key the whole state is saved under.
		Key string `koanf:"key" yaml:"key"`
	} `koanf:"store" yaml:"store"`

	Export struct {
		Currency    string `koanf:"currency" yaml:"currency"`
		CompanyName string `koanf:"companyName" yaml:"companyName"`
		// DateFormat is a Go time layout.
		DateFormat string `koanf:"dateFormat" yaml:"dateFormat"`
	} `koanf:"export" yaml:"export"`

	Seed struct {
		Enabled bool `koanf:"enabled" yaml:"enabled"`
	} `koanf:"seed" yaml:"seed"`

	Log Log `koanf:"log" yaml:"log"`
}

type Log struct {
	Level string `koanf:"level" yaml:"level"`
}

// Default returns the settings used when nothing overrides them.
func Default() *Config {
	cfg := new(Config)
	cfg.Store.Key = "inventoryDB"
	cfg.Export.Currency = "$"
	cfg.Export.DateFormat = "2006-01-02 15:04"
	cfg.Log.Level = "info"
	return cfg
}

// Load reads path (or DefaultFile when path is empty) over the defaults and
// then applies environment overrides. A missing default file is not an
// error; a missing explicit path is.
func Load(path string) (*Config, error) {
	cfg := Default()
	k := koanf.New(".")

	configFile := path
	if configFile == "" {
		configFile = filepath.Join(".", DefaultFile)
	}
	if _, err := os.Stat(configFile); err == nil {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read config %s failed", configFile)
		}
	} else if path != "" {
		return nil, errors.Wrapf(err, "config file %s", path)
	}

	// Env keys are upper case; reuse the file's spelling when it has the key
	// so the override replaces it instead of sitting next to it.
	fileKeys := make(map[string]string)
	for _, key := range k.Keys() {
		fileKeys[strings.ToLower(key)] = key
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			// PLANNER_EXPORT_COMPANYNAME -> export.companyname
			key = strings.TrimPrefix(key, EnvPrefix)
			key = strings.ReplaceAll(strings.ToLower(key), "_", ".")
			if known, ok := fileKeys[key]; ok {
				key = known
			}
			return key, value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrap(err, "unmarshal config failed")
	}

	if strings.TrimSpace(cfg.Store.Key) == "" {
		cfg.Store.Key = Default().Store.Key
	}

	return cfg, nil
}

// SlogLevel parses Level, falling back to info for unknown names.
func (l Log) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(l.Level))); err != nil {
		return slog.LevelInfo
	}
	return level
}
