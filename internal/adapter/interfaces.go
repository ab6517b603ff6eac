// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the ops HTTP server. The key tool
// uses it to probe a running server.
//
// Non-2xx answers are mapped by mapHTTPError onto the sentinel errors of
// errors.go, so callers match them with [errors.Is] (e.g. [ErrUnprocessable]
// for a failed encryption or decryption).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-cred-keeper/models"
)

// ServerAdapter talks to a running ops server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Health returns the health report. A degraded server (503) is not an
	// error; the report says why.
	Health(ctx context.Context) (models.HealthResponse, error)

	// Version returns the version string the server reports.
	Version(ctx context.Context) (string, error)

	// Encrypt asks the server to encrypt plaintext for the token's user.
	Encrypt(ctx context.Context, plaintext string) (string, error)

	// Decrypt asks the server to decrypt an envelope of the token's user.
	Decrypt(ctx context.Context, envelope string) (string, error)

	// Digest returns the server-computed digest of content.
	Digest(ctx context.Context, content string) (string, error)

	// VerifyDigest asks the server to compare content against digest.
	VerifyDigest(ctx context.Context, content, digest string) (bool, error)
}
