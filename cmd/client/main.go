// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-fund-client/internal/adapter"
	"github.com/MKhiriev/go-fund-client/internal/client"
	"github.com/MKhiriev/go-fund-client/internal/config"
	"github.com/MKhiriev/go-fund-client/internal/logger"
	"github.com/MKhiriev/go-fund-client/internal/tui"
	"github.com/MKhiriev/go-fund-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	fmt.Println(tui.BuildInfoView(models.NewBuildInfo(buildVersion, buildDate, buildCommit)))

	cfg, err := config.GetClientConfig()
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		return 2
	}

	log := logger.NewClientLogger("fund-client", cfg.Log.File, cfg.Log.Level)
	defer log.Close()

	helper, err := adapter.NewHTTPRequestHelper(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("create request helper")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	app, err := client.NewApp(adapter.NewFundAPI(helper, log), tui.NewConsole(os.Stdin, os.Stdout), log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("api", cfg.Adapter.HTTPAddress).Msg("client started")
	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "\nerror: %s\n", tui.HumanizeError(err))
		return 1
	}
	log.Info().Msg("client stopped")

	return 0
}
