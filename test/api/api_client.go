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
	"net/http/httptest"

	"github.com/onsi/ginkgo/v2"
	"go.uber.org/zap"

	"github.com/nscaledev/petfriends/pkg/logging"
	"github.com/nscaledev/petfriends/pkg/openapi"
	"github.com/nscaledev/petfriends/pkg/petfriends"
	"github.com/nscaledev/petfriends/pkg/petfriends/fake"
)

// NewLogger returns a logger that writes to GinkgoWriter, so output is only
// shown for failing specs unless running verbosely.
func NewLogger(config *TestConfig) *zap.Logger {
	logger, err := logging.New(ginkgo.GinkgoWriter, config.LogLevel, logging.FormatConsole)
	if err != nil {
		panic(err)
	}

	return logger
}

// NewAPIClientWithConfig returns a new client for the configured service.
func NewAPIClientWithConfig(config *TestConfig) *petfriends.Client {
	options := append(config.ClientOptions(), petfriends.WithLogger(NewLogger(config)))

	if config.ValidateResponses {
		validator, err := openapi.NewValidator()
		if err != nil {
			panic(err)
		}

		options = append(options, petfriends.WithResponseValidator(validator))
	}

	return petfriends.New(config.BaseURL, options...)
}

// StartFakeServer starts an in-memory service that accepts the configured
// accounts and points the configuration at it.
func StartFakeServer(config *TestConfig) *httptest.Server {
	service := fake.New(config.Primary())

	if secondary, ok := config.Secondary(); ok {
		service.AddAccount(secondary)
	}

	server := httptest.NewServer(service.Handler())

	config.BaseURL = server.URL

	ginkgo.GinkgoWriter.Printf("Started fake PetFriends service at %s\n", server.URL)

	return server
}
