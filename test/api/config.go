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

package api

import (
	"fmt"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/nscaledev/petfriends/pkg/config"
	"github.com/nscaledev/petfriends/pkg/petfriends"
)

const (
	fakePrimaryEmail      = "fake-owner@example.com"
	fakePrimaryPassword   = "fake-owner-password"
	fakeSecondaryEmail    = "fake-stranger@example.com"
	fakeSecondaryPassword = "fake-stranger-password"
)

type TestConfig struct {
	config.Config

	SecondaryEmail    string
	SecondaryPassword string
	PhotoPath         string
	AltPhotoPath      string
	TestTimeout       time.Duration
	UseFakeServer     bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if required configuration values are missing.
func LoadTestConfig() (*TestConfig, error) {
	if err := config.LoadEnvFiles(
		"../../../test/.env", // From test/api/suites directory
		"../../.env",
	); err != nil {
		return nil, err
	}

	v, err := config.New(nil)
	if err != nil {
		return nil, err
	}

	v.SetDefault("test_secondary_email", "")
	v.SetDefault("test_secondary_password", "")
	v.SetDefault("test_photo_path", testdataPath("cat.png"))
	v.SetDefault("test_alt_photo_path", testdataPath("dog.png"))
	v.SetDefault("test_timeout", "5m")
	v.SetDefault("use_fake_server", false)
	v.SetDefault("validate_responses", true)

	base, err := config.Unmarshal(v)
	if err != nil {
		return nil, err
	}

	cfg := &TestConfig{
		Config:            *base,
		SecondaryEmail:    v.GetString("test_secondary_email"),
		SecondaryPassword: v.GetString("test_secondary_password"),
		PhotoPath:         v.GetString("test_photo_path"),
		AltPhotoPath:      v.GetString("test_alt_photo_path"),
		TestTimeout:       v.GetDuration("test_timeout"),
		UseFakeServer:     v.GetBool("use_fake_server") || (base.Email == "" && base.Password == ""),
	}

	if cfg.UseFakeServer {
		cfg.Email = fakePrimaryEmail
		cfg.Password = fakePrimaryPassword
		cfg.SecondaryEmail = fakeSecondaryEmail
		cfg.SecondaryPassword = fakeSecondaryPassword
	}

	// Validate required fields
	if err := validateRequiredFields(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// testdataPath resolves a file in the testdata directory next to this source
// file, so suites work regardless of the working directory.
func testdataPath(name string) string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return filepath.Join("testdata", name)
	}

	return filepath.Join(filepath.Dir(file), "testdata", name)
}

// Primary returns the credentials of the account that owns test fixtures.
func (c *TestConfig) Primary() petfriends.Credentials {
	return c.Credentials()
}

// Secondary returns the credentials of a second account, if configured.
func (c *TestConfig) Secondary() (petfriends.Credentials, bool) {
	if c.SecondaryEmail == "" || c.SecondaryPassword == "" {
		return petfriends.Credentials{}, false
	}

	return petfriends.Credentials{
		Email:    c.SecondaryEmail,
		Password: c.SecondaryPassword,
	}, true
}

// validateRequiredFields checks that all required configuration values are set.
func validateRequiredFields(config *TestConfig) error {
	var missing []string

	required := map[string]string{
		"PETFRIENDS_BASE_URL": config.BaseURL,
		"PETFRIENDS_EMAIL":    config.Email,
		"PETFRIENDS_PASSWORD": config.Password,
		"TEST_PHOTO_PATH":     config.PhotoPath,
		"TEST_ALT_PHOTO_PATH": config.AltPhotoPath,
	}

	for envVar, value := range required {
		if value == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		slices.Sort(missing)

		return fmt.Errorf("missing required configuration: %s. Please set these environment variables or add them to a .env file", strings.Join(missing, ", "))
	}

	return nil
}
