package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const envPrefix = "GEO_REGISTRY"

// ConfigFileEnv names the environment variable pointing at an optional config file
const ConfigFileEnv = envPrefix + "_CONFIG"

type Config struct {
	Log    LogConfig
	Window WindowConfig
	Plot   PlotConfig
	// SeedExamples loads the two demo records at startup
	SeedExamples bool
}

type LogConfig struct {
	Level  string `validate:"omitempty,oneof=debug info warn warning error"`
	Format string `validate:"oneof=console json"`
}

type WindowConfig struct {
	Width  float32 `validate:"min=400"`
	Height float32 `validate:"min=300"`
}

type PlotConfig struct {
	Width  int `validate:"min=100,max=4000"`
	Height int `validate:"min=100,max=4000"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("window.width", 1200)
	v.SetDefault("window.height", 600)
	v.SetDefault("plot.width", 720)
	v.SetDefault("plot.height", 600)
	v.SetDefault("seed_examples", true)
}

// Load reads defaults, the optional config file and GEO_REGISTRY_* environment overrides
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString("log.level")),
			Format: strings.ToLower(v.GetString("log.format")),
		},
		Window: WindowConfig{
			Width:  float32(v.GetFloat64("window.width")),
			Height: float32(v.GetFloat64("window.height")),
		},
		Plot: PlotConfig{
			Width:  v.GetInt("plot.width"),
			Height: v.GetInt("plot.height"),
		},
		SeedExamples: v.GetBool("seed_examples"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
