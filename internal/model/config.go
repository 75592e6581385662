package model

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DisplayConfig holds UI/rendering preferences.
type DisplayConfig struct {
	// Title is shown in the header bar.
	Title string `mapstructure:"title" yaml:"title"`

	// Placeholder is shown in the empty entry field.
	Placeholder string `mapstructure:"placeholder" yaml:"placeholder"`

	// CharLimit caps the entry field length. Zero means unlimited; a nonzero
	// limit drops typed or pasted characters past it before they reach the draft.
	CharLimit int `mapstructure:"char_limit" yaml:"char_limit"`

	// ConfirmRemove asks before a binned task is removed forever.
	ConfirmRemove bool `mapstructure:"confirm_remove" yaml:"confirm_remove"`

	// ShowHelp renders key hints in the status bar.
	ShowHelp bool `mapstructure:"show_help" yaml:"show_help"`
}

// LogConfig controls the debug log file.
type LogConfig struct {
	// File is the path logs are appended to. Empty disables logging.
	File string `mapstructure:"file" yaml:"file"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/todobin/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "todobin", "config.yaml")
}

// DefaultAppConfig returns the configuration used when no file exists.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Display: DisplayConfig{
			Title:         "To-Do List",
			Placeholder:   "Enter a new task",
			CharLimit:     0,
			ConfirmRemove: true,
			ShowHelp:      true,
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set defaults so missing keys resolve to sensible values.
	def := DefaultAppConfig()
	v.SetDefault("display.title", def.Display.Title)
	v.SetDefault("display.placeholder", def.Display.Placeholder)
	v.SetDefault("display.char_limit", def.Display.CharLimit)
	v.SetDefault("display.confirm_remove", def.Display.ConfirmRemove)
	v.SetDefault("display.show_help", def.Display.ShowHelp)
	v.SetDefault("log.file", def.Log.File)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			return def, nil
		}
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return def, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := DefaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Display.CharLimit < 0 {
		cfg.Display.CharLimit = 0
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("display.title", cfg.Display.Title)
	v.Set("display.placeholder", cfg.Display.Placeholder)
	v.Set("display.char_limit", cfg.Display.CharLimit)
	v.Set("display.confirm_remove", cfg.Display.ConfirmRemove)
	v.Set("display.show_help", cfg.Display.ShowHelp)
	v.Set("log.file", cfg.Log.File)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
