// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command keytool is the operator's companion to the server: it generates
// and checks master secrets and runs single encrypt, decrypt and digest
// operations against the configured secret.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-cred-keeper/internal/adapter"
	"github.com/MKhiriev/go-cred-keeper/internal/config"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/atotto/clipboard"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewConsoleLogger("keytool", os.Stderr)

	cfg, err := config.GetToolConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	t := &tool{
		cfg:    cfg,
		source: cfg.Secret.Source(),
		in:     os.Stdin,
		out:    os.Stdout,
		copy:   clipboard.WriteAll,
		dial: func(address string, timeout time.Duration) (adapter.ServerAdapter, error) {
			return adapter.NewHTTPServerAdapter(address, timeout, log)
		},
		logger: log,
	}

	err = t.run(context.Background(), os.Args[1:])
	switch {
	case err == nil:
	case errors.Is(err, errUsage):
		fmt.Fprintf(os.Stderr, "%v\n\n%s\n", err, usage)
		os.Exit(2)
	default:
		log.Error().Err(err).Msg("keytool failed")
		os.Exit(1)
	}
}
