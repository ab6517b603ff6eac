// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-cred-keeper/models"
)

// CredentialService protects user-owned credentials on behalf of the ops
// server and the key tool.
type CredentialService interface {
	// Encrypt seals plaintext for userID under a freshly generated nonce.
	Encrypt(ctx context.Context, userID, plaintext string) (string, error)
	// Decrypt opens an envelope produced by Encrypt for the same userID.
	Decrypt(ctx context.Context, userID, envelope string) (string, error)
	// Digest returns the SHA-256 integrity digest of content.
	Digest(ctx context.Context, content string) string
	// VerifyDigest checks content against a previously computed digest.
	VerifyDigest(ctx context.Context, content, digest string) (bool, error)
}

type AuthService interface {
	CreateToken(ctx context.Context, userID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	// MasterSecretHealthy reports whether the configured master secret is
	// present and long enough.
	MasterSecretHealthy(ctx context.Context) bool
}

// CredentialServiceWrapper decorates a CredentialService with extra
// behavior such as validation.
type CredentialServiceWrapper interface {
	Wrap(CredentialService) CredentialService
}
