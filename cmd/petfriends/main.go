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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/nscaledev/petfriends/pkg/config"
	"github.com/nscaledev/petfriends/pkg/logging"
	"github.com/nscaledev/petfriends/pkg/openapi"
	"github.com/nscaledev/petfriends/pkg/petfriends"
)

func main() {
	flags := pflag.CommandLine

	config.AddFlags(flags)

	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] %s\n\n", os.Args[0], usage)
		flags.PrintDefaults()
	}

	pflag.Parse()

	cfg, err := config.Load(flags, ".env")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel, logging.FormatJSON)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	defer func() {
		_ = logger.Sync()
	}()

	options := append(cfg.ClientOptions(), petfriends.WithLogger(logger))

	if cfg.ValidateResponses {
		validator, err := openapi.NewValidator()
		if err != nil {
			logger.Error("loading api description", zap.Error(err))
			os.Exit(1)
		}

		options = append(options, petfriends.WithResponseValidator(validator))
	}

	client := petfriends.New(cfg.BaseURL, options...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, client, cfg.Credentials(), pflag.Args(), os.Stdout); err != nil {
		logger.Error("command failed", zap.Error(err))
		stop()
		os.Exit(1) //nolint:gocritic
	}
}
