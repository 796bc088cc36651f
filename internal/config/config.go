// Package config loads the bot configuration.
//
// Precedence order (highest wins):
//  1. CLI flags bound to viper by the cobra commands
//  2. Environment variables with the BOT_ prefix
//  3. A local .env file (never overrides variables already set)
//  4. The YAML config file
//  5. Defaults
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the bot reads.
const EnvPrefix = "BOT"

// Config is the resolved configuration of one bot run.
type Config struct {
	Prompt          string `mapstructure:"prompt"`
	Welcome         string `mapstructure:"welcome"`
	Greeting        string `mapstructure:"greeting"`
	Farewell        string `mapstructure:"farewell"`
	JSONIndent      int    `mapstructure:"json_indent"`
	SuggestDistance int    `mapstructure:"suggest_distance"`
	HelpStyle       string `mapstructure:"help_style"`
	HistoryFile     string `mapstructure:"history_file"`
	LogLevel        string `mapstructure:"log-level"`
	LogFile         string `mapstructure:"log-file"`
	TestMode        bool   `mapstructure:"test-mode"`
}

// ── Defaults ─────────────────────────────────────────────────────────

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("prompt", "Enter a command: ")
	v.SetDefault("welcome", "Welcome to the assistant bot!")
	v.SetDefault("greeting", "How can I help you?")
	v.SetDefault("farewell", "Good bye!")
	v.SetDefault("json_indent", 4)
	v.SetDefault("suggest_distance", 2)
	v.SetDefault("help_style", "notty")
	v.SetDefault("history_file", "")
	v.SetDefault("log-level", "")
	v.SetDefault("log-file", "")
	v.SetDefault("test-mode", false)
}

// ── Loading ──────────────────────────────────────────────────────────

// Load resolves the configuration into v and returns it.
// configFile names an explicit YAML file; when empty, assistantbot.yaml is
// looked up in the working directory and then in $HOME, and a missing file is
// not an error. dotEnvFile is loaded when it exists.
func Load(v *viper.Viper, configFile string, dotEnvFile string) (Config, error) {
	SetDefaults(v)

	if err := loadDotEnv(dotEnvFile); err != nil {
		return Config{}, err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v, configFile); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load .env file %s: %w", path, err)
	}
	return nil
}

func readConfigFile(v *viper.Viper, configFile string) error {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
		return nil
	}

	v.SetConfigName("assistantbot")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// ── Validation ───────────────────────────────────────────────────────

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.JSONIndent < 0 || c.JSONIndent > 8 {
		return &Error{Field: "json_indent", Value: c.JSONIndent, Message: "must be between 0 and 8"}
	}
	if c.SuggestDistance < 0 {
		return &Error{Field: "suggest_distance", Value: c.SuggestDistance, Message: "must not be negative", Hint: "use 0 to disable suggestions"}
	}
	if strings.TrimSpace(c.Farewell) == "" {
		return &Error{Field: "farewell", Message: "must not be empty"}
	}
	return nil
}

// Error represents an invalid configuration value.
type Error struct {
	Field   string      // config key
	Value   interface{} // the invalid value (nil if missing)
	Message string      // human-readable explanation
	Hint    string      // suggestion for the user (optional)
}

func (e *Error) Error() string {
	msg := "config: " + e.Field
	if e.Value != nil {
		msg += fmt.Sprintf("=%v", e.Value)
	}
	msg += ": " + e.Message
	if e.Hint != "" {
		msg += "\n  hint: " + e.Hint
	}
	return msg
}
