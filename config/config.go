// Package config loads persistent defaults from an optional config file in
// the user's config directory and from HTTPIE_* environment variables.
// Command-line flags take precedence over everything loaded here.
package config

import (
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	envPrefix      = "HTTPIE"
	configName     = "config"
	defaultTimeout = "30s"
)

var reNumber = regexp.MustCompile(`^[0-9.]+$`)

type Config struct {
	Timeout time.Duration
	Follow  bool
	Verify  bool
	Pretty  string // all, colors, format, none; empty means decide by terminal
	Debug   bool
}

// DefaultDir returns $XDG_CONFIG_HOME/httpie-lite (or the platform equivalent),
// or "" when the user config directory is unknown.
func DefaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "httpie-lite")
}

// Load reads config.{json,yaml,toml,...} from dir when present. A missing
// file is not an error; an unreadable or malformed one is.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetDefault("timeout", defaultTimeout)
	v.SetDefault("follow", false)
	v.SetDefault("verify", true)
	v.SetDefault("pretty", "")
	v.SetDefault("debug", false)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if dir != "" {
		v.SetConfigName(configName)
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.Wrap(err, "reading config file")
			}
		}
	}

	timeout, err := ParseDurationOrSeconds(v.GetString("timeout"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid timeout in config")
	}

	return &Config{
		Timeout: timeout,
		Follow:  v.GetBool("follow"),
		Verify:  v.GetBool("verify"),
		Pretty:  v.GetString("pretty"),
		Debug:   v.GetBool("debug"),
	}, nil
}

// ParseDurationOrSeconds accepts either a Go duration ("1m30s") or a plain
// number of seconds ("90", "2.5").
func ParseDurationOrSeconds(timeout string) (time.Duration, error) {
	if reNumber.MatchString(timeout) {
		timeout += "s"
	}
	d, err := time.ParseDuration(timeout)
	if err != nil {
		return time.Duration(0), errors.Errorf("timeout must be a number or duration string: %v", timeout)
	}
	return d, nil
}
