/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/nscaledev/petfriends/pkg/petfriends"
)

var (
	// ErrInvalidBaseURL is raised when the service URL cannot be parsed.
	ErrInvalidBaseURL = errors.New("invalid base url")
)

// Config holds the connection and logging settings shared by the CLI and the
// functional suites. Values come from flags, then the environment, then
// .env files, then defaults.
type Config struct {
	BaseURL           string        `mapstructure:"petfriends_base_url"`
	Email             string        `mapstructure:"petfriends_email"`
	Password          string        `mapstructure:"petfriends_password"`
	RequestTimeout    time.Duration `mapstructure:"request_timeout"`
	LogLevel          string        `mapstructure:"log_level"`
	LogRequests       bool          `mapstructure:"log_requests"`
	LogResponses      bool          `mapstructure:"log_responses"`
	ValidateResponses bool          `mapstructure:"validate_responses"`
}

// flagKeys maps command line flags to configuration keys.
//
//nolint:gochecknoglobals
var flagKeys = map[string]string{
	"base-url":           "petfriends_base_url",
	"email":              "petfriends_email",
	"password":           "petfriends_password",
	"request-timeout":    "request_timeout",
	"log-level":          "log_level",
	"log-requests":       "log_requests",
	"log-responses":      "log_responses",
	"validate-responses": "validate_responses",
}

// AddFlags registers the configuration flags.
func AddFlags(f *pflag.FlagSet) {
	f.String("base-url", petfriends.DefaultBaseURL, "PetFriends service URL")
	f.String("email", "", "Account email")
	f.String("password", "", "Account password")
	f.Duration("request-timeout", 0, "Per request timeout, 0 uses the transport default")
	f.String("log-level", "info", "Log level (debug, info, warn, error)")
	f.Bool("log-requests", false, "Log every request")
	f.Bool("log-responses", false, "Log response bodies")
	f.Bool("validate-responses", false, "Check responses against the API description")
}

// New returns a viper instance with defaults, environment binding and any
// flags from f bound. f may be nil.
func New(f *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault("petfriends_base_url", petfriends.DefaultBaseURL)
	v.SetDefault("petfriends_email", "")
	v.SetDefault("petfriends_password", "")
	v.SetDefault("request_timeout", "0s")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_requests", false)
	v.SetDefault("log_responses", false)
	v.SetDefault("validate_responses", false)

	v.AutomaticEnv()

	if f != nil {
		for name, key := range flagKeys {
			flag := f.Lookup(name)
			if flag == nil {
				continue
			}

			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("binding flag %s: %w", name, err)
			}
		}
	}

	return v, nil
}

// LoadEnvFiles loads the first of the given .env files that exists. Missing
// files are not an error as CI sets the environment directly.
func LoadEnvFiles(paths ...string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}

		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}

		return nil
	}

	return nil
}

// Load reads configuration from f, the environment and the given .env files.
func Load(f *pflag.FlagSet, envFiles ...string) (*Config, error) {
	if err := LoadEnvFiles(envFiles...); err != nil {
		return nil, err
	}

	v, err := New(f)
	if err != nil {
		return nil, err
	}

	return Unmarshal(v)
}

// Unmarshal decodes and validates configuration from v.
func Unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the values that cannot be defaulted.
func (c *Config) Validate() error {
	if c.BaseURL != "" {
		if _, err := url.ParseRequestURI(c.BaseURL); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
		}
	}

	if c.RequestTimeout < 0 {
		return fmt.Errorf("invalid request_timeout %s (must not be negative)", c.RequestTimeout)
	}

	return nil
}

// Credentials returns the configured account.
func (c *Config) Credentials() petfriends.Credentials {
	return petfriends.Credentials{
		Email:    c.Email,
		Password: c.Password,
	}
}

// ClientOptions returns the client options implied by the configuration,
// not including a logger or validator.
func (c *Config) ClientOptions() []petfriends.Option {
	return []petfriends.Option{
		petfriends.WithTimeout(c.RequestTimeout),
		petfriends.WithRequestLogging(c.LogRequests, c.LogResponses),
	}
}
