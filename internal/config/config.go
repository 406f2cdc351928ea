package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Mode names the study presentation mode.
const (
	ModeFlip   = "flip"
	ModeChoice = "choice"
	ModeTyping = "typing"
)

// Config holds application configuration loaded from the config file and
// environment variables.
type Config struct {
	APIURL           string `mapstructure:"api_url"`            // base URL of the study service
	APIToken         string `mapstructure:"-"`                  // bearer token loaded from environment
	DBPath           string `mapstructure:"db_path"`            // local SQLite path (empty = XDG default)
	NewCardsLimit    int    `mapstructure:"new_cards_limit"`    // new cards requested per session
	ReviewCardsLimit int    `mapstructure:"review_cards_limit"` // due cards requested per session
	Mode             string `mapstructure:"mode"`               // flip, choice or typing
	QuizType         string `mapstructure:"quiz_type"`          // preferred quiz type, empty = server choice
	Debug            bool   `mapstructure:"debug"`              // write a debug log file
}

// Load reads configuration from the config file and environment
// variables. Missing files are fine; defaults cover everything except
// the API token, which callers check when they actually need the remote.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir())

	v.SetDefault("api_url", "https://api.daneo.app")
	v.SetDefault("new_cards_limit", 10)
	v.SetDefault("review_cards_limit", 20)
	v.SetDefault("mode", ModeTyping)

	v.SetEnvPrefix("DANEO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("api_url", "DANEO_API_URL")
	_ = v.BindEnv("api_token", "DANEO_API_TOKEN")
	_ = v.BindEnv("db_path", "DANEO_DB")
	_ = v.BindEnv("mode", "DANEO_MODE")
	_ = v.BindEnv("debug", "DANEO_DEBUG")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	cfg.APIToken = v.GetString("api_token")

	if err := validateMode(cfg.Mode); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validateMode(mode string) error {
	switch mode {
	case ModeFlip, ModeChoice, ModeTyping:
		return nil
	}
	return fmt.Errorf("unknown mode %q (want flip, choice or typing)", mode)
}

// configDir resolves where the config file lives:
// $XDG_CONFIG_HOME/daneo, falling back to ~/.config/daneo.
func configDir() string {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, "daneo")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "daneo")
}
