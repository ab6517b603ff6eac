// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-cred-keeper/internal/config"
	"github.com/MKhiriev/go-cred-keeper/internal/crypto"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/secret"
)

type Services struct {
	CredentialService CredentialService
	AuthService       AuthService
	AppInfoService    AppInfoService
}

// NewServices wires the services around one master secret source. The same
// source backs the protector and the health checks, so both always agree on
// what the current secret is.
func NewServices(source secret.Source, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	protector := crypto.NewCredentialProtector(source, logger)

	appInfoService, err := NewAppInfoService(cfg.App, source, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		CredentialService: NewCredentialValidationService().Wrap(NewCredentialService(protector, logger)),
		AuthService:       NewAuthService(cfg.App, logger),
		AppInfoService:    appInfoService,
	}, nil
}
