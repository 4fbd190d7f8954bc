// Package config loads showroom settings through viper.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/Iron-Ham/showroom/internal/catalog"
)

// AppName names the config directory and the environment variable prefix.
const AppName = "showroom"

// Config represents the complete showroom configuration
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog" yaml:"catalog"`
	TUI     TUIConfig     `mapstructure:"tui" yaml:"tui"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// CatalogConfig defines what the showroom displays
type CatalogConfig struct {
	// Items is the catalogue in display order (default: Golf/red, Polo/blue)
	Items []ItemConfig `mapstructure:"items" yaml:"items"`
	// Selection is the category selected at startup; empty means no filter
	Selection string `mapstructure:"selection" yaml:"selection"`
}

// ItemConfig is one catalogue entry as written in the config file
type ItemConfig struct {
	Name     string `mapstructure:"name" yaml:"name"`
	Category string `mapstructure:"category" yaml:"category"`
}

// Collection converts the configured items to catalogue items, keeping order.
func (c *CatalogConfig) Collection() []catalog.Item {
	items := make([]catalog.Item, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, catalog.Item{Name: item.Name, Category: item.Category})
	}
	return items
}

// TUIConfig controls the browse view
type TUIConfig struct {
	// Theme is the color theme: "default" or "mono" (default: "default")
	Theme string `mapstructure:"theme" yaml:"theme"`
	// MaxNameWidth truncates item names wider than this many columns (0 = no limit)
	MaxNameWidth int `mapstructure:"max_name_width" yaml:"max_name_width"`
}

// OutputConfig controls non-interactive output
type OutputConfig struct {
	// Format is the default list format: "text", "json" or "yaml" (default: "text")
	Format string `mapstructure:"format" yaml:"format"`
}

// LoggingConfig controls debug logging
type LoggingConfig struct {
	// Enabled controls whether debug logging is written at all (default: false)
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level" yaml:"level"`
	// Dir is where debug.log is written; empty means stderr.
	// Supports ~ for home directory expansion.
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// ResolveDir returns Dir with a leading ~ expanded.
func (l *LoggingConfig) ResolveDir() string {
	path := l.Dir
	if path == "~" || len(path) > 1 && path[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return path
}

// Default returns a Config with sensible default values
func Default() *Config {
	items := make([]ItemConfig, 0, 2)
	for _, item := range catalog.Default() {
		items = append(items, ItemConfig{Name: item.Name, Category: item.Category})
	}

	return &Config{
		Catalog: CatalogConfig{
			Items:     items,
			Selection: "", // No filter
		},
		TUI: TUIConfig{
			Theme:        "default",
			MaxNameWidth: 0,
		},
		Output: OutputConfig{
			Format: "text",
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
			Dir:     "",
		},
	}
}

// SetDefaults registers default values with the global viper instance
func SetDefaults() {
	ApplyDefaults(viper.GetViper())
}

// ApplyDefaults registers default values with v
func ApplyDefaults(v *viper.Viper) {
	defaults := Default()

	// Catalog defaults. Items are registered as plain maps so that a config
	// file's list replaces them the same way the defaults decode.
	items := make([]map[string]any, 0, len(defaults.Catalog.Items))
	for _, item := range defaults.Catalog.Items {
		items = append(items, map[string]any{"name": item.Name, "category": item.Category})
	}
	v.SetDefault("catalog.items", items)
	v.SetDefault("catalog.selection", defaults.Catalog.Selection)

	// TUI defaults
	v.SetDefault("tui.theme", defaults.TUI.Theme)
	v.SetDefault("tui.max_name_width", defaults.TUI.MaxNameWidth)

	// Output defaults
	v.SetDefault("output.format", defaults.Output.Format)

	// Logging defaults
	v.SetDefault("logging.enabled", defaults.Logging.Enabled)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads the configuration from v and validates it.
func LoadFrom(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration, falling back to defaults if it
// cannot be loaded.
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
