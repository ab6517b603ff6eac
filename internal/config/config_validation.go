// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the merged [StructuredConfig] can run the ops server.
// It does not look at the master secret; that is the health check's job,
// since the secret may legitimately appear after startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: empty token sign key", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token issuer and positive duration are required", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: address and positive request timeout are required", ErrInvalidServerConfigs)
	}

	if cfg.Workers.HealthCheckInterval <= 0 {
		return fmt.Errorf("%w: health check interval must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}
