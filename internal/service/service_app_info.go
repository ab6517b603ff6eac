// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-cred-keeper/internal/config"
	"github.com/MKhiriev/go-cred-keeper/internal/crypto"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/secret"
)

type appInfoService struct {
	appVersion string
	source     secret.Source

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, source secret.Source, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		source:     source,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// MasterSecretHealthy re-reads the secret source on every call.
func (s *appInfoService) MasterSecretHealthy(ctx context.Context) bool {
	return crypto.ValidateMasterSecret(s.source)
}
