// Package config resolves the settings shared by every command.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

const (
	DefaultDataPath    = "data/bollywood_combined_music_data.csv"
	DefaultBlendsPath  = "blends.json"
	DefaultLogLevel    = "info"
	DefaultThemeOffset = 20

	EnvPrefix = "BOLLYWOOD"
)

type Config struct {
	DataPath    string `mapstructure:"data"`
	BlendsPath  string `mapstructure:"blends"`
	LogLevel    string `mapstructure:"log_level"`
	ThemeOffset int    `mapstructure:"theme_offset"`
}

// SetDefaults registers defaults and environment lookup on v. Keys read from
// the environment use the BOLLYWOOD_ prefix, e.g. BOLLYWOOD_BLENDS.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("data", DefaultDataPath)
	v.SetDefault("blends", DefaultBlendsPath)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("theme_offset", DefaultThemeOffset)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

func FromViper(v *viper.Viper) Config {
	return Config{
		DataPath:    v.GetString("data"),
		BlendsPath:  v.GetString("blends"),
		LogLevel:    v.GetString("log_level"),
		ThemeOffset: v.GetInt("theme_offset"),
	}
}

func (c Config) Validate() error {
	if c.DataPath == "" {
		return fmt.Errorf("data path must be set")
	}
	if c.BlendsPath == "" {
		return fmt.Errorf("blends path must be set")
	}
	if c.ThemeOffset < 0 {
		return fmt.Errorf("theme_offset out of range: %d", c.ThemeOffset)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}
