package config

import (
	"path/filepath"
	"strings"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigtoml"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// FileName is the optional config file looked up in the project root.
const FileName = "tools.toml"

// Config describes all configuration options
type Config struct {
	Log struct {
		Level   string `default:"info" usage:"Log level (debug, info, warn, error or fatal)" toml:"level" yaml:"level"`
		NoColor bool   `default:"false" usage:"Print plain console messages without colors" toml:"no_color" yaml:"no_color"`
	} `toml:"log" yaml:"log"`
	Bootstrap struct {
		Script string `default:"run.bat" usage:"Setup script run by the bootstrap command, relative to the project root" toml:"script" yaml:"script"`
	} `toml:"bootstrap" yaml:"bootstrap"`
	Tests struct {
		Binary      string `default:"ctest" usage:"Test runner executable" toml:"binary" yaml:"binary"`
		BuildDir    string `default:"build" usage:"Build output directory, relative to the project root" toml:"build_dir" yaml:"build_dir"`
		BuildConfig string `default:"RelWithDebInfo" usage:"Build configuration passed to the test runner" toml:"build_config" yaml:"build_config"`
	} `toml:"tests" yaml:"tests"`
}

var logLevels = map[string]zerolog.Level{
	"debug":   zerolog.DebugLevel,
	"info":    zerolog.InfoLevel,
	"warn":    zerolog.WarnLevel,
	"warning": zerolog.WarnLevel,
	"error":   zerolog.ErrorLevel,
	"fatal":   zerolog.FatalLevel,
}

// Loader initializes an empty config object and returns a new Loader for this object.
// Flags are left to cobra; only defaults, root/tools.toml and VIBBLE_* variables are read.
func Loader(root string) (*Config, *aconfig.Loader) {
	cfg := Config{}
	return &cfg, aconfig.LoaderFor(&cfg, aconfig.Config{
		SkipFlags: true,
		EnvPrefix: "VIBBLE",
		Files:     []string{filepath.Join(root, FileName)},
		FileDecoders: map[string]aconfig.FileDecoder{
			".toml": aconfigtoml.New(),
		},
	})
}

// Load reads the configuration for the project in root and validates it.
func Load(root string) (*Config, error) {
	cfg, loader := Loader(root)
	if err := loader.Load(); err != nil {
		return nil, eris.Wrap(err, "Failed to load configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate verifies that all config fields have valid values
func (cfg *Config) Validate() error {
	_, ok := logLevels[strings.ToLower(cfg.Log.Level)]
	if !ok {
		return eris.Errorf(`Invalid value for log.level: %s`, cfg.Log.Level)
	}

	if strings.TrimSpace(cfg.Bootstrap.Script) == "" {
		return eris.New(`bootstrap.script must not be empty`)
	}

	if strings.TrimSpace(cfg.Tests.Binary) == "" {
		return eris.New(`tests.binary must not be empty`)
	}

	if strings.TrimSpace(cfg.Tests.BuildDir) == "" {
		return eris.New(`tests.build_dir must not be empty`)
	}

	if strings.TrimSpace(cfg.Tests.BuildConfig) == "" {
		return eris.New(`tests.build_config must not be empty`)
	}

	return nil
}

// LogLevel converts the .Log.Level field to a zerolog.Level
func (cfg *Config) LogLevel() zerolog.Level {
	return logLevels[strings.ToLower(cfg.Log.Level)]
}
