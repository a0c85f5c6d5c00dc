package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig `toml:"database"`
	UI       UIConfig       `toml:"ui"`
	Log      LogConfig      `toml:"log"`
}

// DatabaseConfig holds sqlite settings for the bookmark store.
type DatabaseConfig struct {
	Path string `toml:"path" validate:"required"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Timezone       string `mapstructure:"timezone" toml:"timezone" validate:"required"`
	WeekStart      string `mapstructure:"week_start" toml:"week_start" validate:"oneof=sunday monday"`
	ADDateFormat   string `mapstructure:"ad_date_format" toml:"ad_date_format" validate:"required"`
	ShowHelpOnOpen bool   `mapstructure:"show_help_on_start" toml:"show_help_on_start"`
}

// LogConfig controls the zap logger. The TUI owns stdout, so logs go to File.
type LogConfig struct {
	Level  string `toml:"level" validate:"oneof=debug info warn error"`
	Format string `toml:"format" validate:"oneof=console json"`
	File   string `toml:"file"`
}

// Load reads configuration from file and env. Env var overrides use prefix MITI_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("MITI_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "miti"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("MITI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := Validate(c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Default returns the built-in configuration, ignoring files and env.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

func setDefaults(v *viper.Viper) {
	home := os.Getenv("HOME")
	v.SetDefault("database.path", filepath.Join(home, ".local", "share", "miti", "miti.db"))
	v.SetDefault("ui.timezone", "Asia/Kathmandu")
	v.SetDefault("ui.week_start", "sunday")
	v.SetDefault("ui.ad_date_format", time.DateOnly)
	v.SetDefault("ui.show_help_on_start", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", defaultLogFile())
}

func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "miti", "miti.log")
}

var validate = validator.New()

// Validate checks field constraints and that the timezone can be loaded.
func Validate(c Config) error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := time.LoadLocation(c.UI.Timezone); err != nil {
		return fmt.Errorf("invalid config: ui.timezone: %w", err)
	}
	return nil
}

// Location returns the configured timezone, falling back to local time.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.UI.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// WeekStart returns the first column of the calendar grids.
func (c Config) WeekStart() time.Weekday {
	if strings.EqualFold(c.UI.WeekStart, "monday") {
		return time.Monday
	}
	return time.Sunday
}

// Path returns where Save writes the config file.
func Path() string {
	if p := os.Getenv("MITI_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "miti", "config.toml")
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.timezone", cfg.UI.Timezone)
	v.Set("ui.week_start", cfg.UI.WeekStart)
	v.Set("ui.ad_date_format", cfg.UI.ADDateFormat)
	v.Set("ui.show_help_on_start", cfg.UI.ShowHelpOnOpen)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.format", cfg.Log.Format)
	v.Set("log.file", cfg.Log.File)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
