package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spacemeshos/smutil"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/bitswap/bitbuf"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultHomeDirName    = ".bitswap"

	DefaultLogLevel  = "info"
	DefaultShowRuler = true
	DefaultShowPlan  = false
)

var (
	DefaultHomeDir    = filepath.Join(smutil.GetUserHomeDirectory(), DefaultHomeDirName)
	DefaultConfigFile = filepath.Join(DefaultHomeDir, DefaultConfigFileName)
)

type Config struct {
	LogLevel  string `mapstructure:"log-level"`
	ShowRuler bool   `mapstructure:"show-ruler"`
	ShowPlan  bool   `mapstructure:"show-plan"`

	// Type preselects the number type ("i" or "r"); empty asks for it.
	Type string `mapstructure:"type"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel:  DefaultLogLevel,
		ShowRuler: DefaultShowRuler,
		ShowPlan:  DefaultShowPlan,
	}
}

func (cfg *Config) Validate() error {
	if _, err := cfg.Level(); err != nil {
		return fmt.Errorf("invalid `LogLevel`; expected: one of debug, info, warn, error, given: %q", cfg.LogLevel)
	}

	if cfg.Type != "" {
		if _, ok := bitbuf.KindFromString(cfg.Type); !ok {
			return fmt.Errorf("invalid `Type`; expected: i or r, given: %q", cfg.Type)
		}
	}

	return nil
}

// Level returns the zap level named by LogLevel.
func (cfg *Config) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(cfg.LogLevel)
}

// Kind returns the preselected number kind, or 0 if none is set.
func (cfg *Config) Kind() bitbuf.Kind {
	kind, _ := bitbuf.KindFromString(cfg.Type)
	return kind
}

// ReadFile reads the config file into vip. An empty location means the
// default file, which is allowed to be missing.
func ReadFile(vip *viper.Viper, fileLocation string) error {
	optional := fileLocation == ""
	if optional {
		fileLocation = DefaultConfigFile
	}

	vip.SetConfigFile(filepath.Clean(fileLocation))
	if err := vip.ReadInConfig(); err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	return nil
}

// Load unmarshals the settings of vip over the defaults and validates them.
func Load(vip *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()
	if err := vip.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
