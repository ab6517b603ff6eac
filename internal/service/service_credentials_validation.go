// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cred-keeper/internal/utils"
)

// MaxCredentialLength bounds plaintexts and envelopes accepted over the ops
// surface. Session cookies and API secrets are far below it.
const MaxCredentialLength = 64 << 10

// CredentialValidationService checks requests before they reach the wrapped
// CredentialService: the caller may only touch its own credentials, and
// inputs stay under MaxCredentialLength.
//
// A context without an authenticated user (the key tool, tests) skips the
// ownership check; the engine itself accepts any user identifier.
type CredentialValidationService struct {
	inner CredentialService
}

func NewCredentialValidationService() CredentialServiceWrapper {
	return &CredentialValidationService{}
}

func (v *CredentialValidationService) Wrap(inner CredentialService) CredentialService {
	v.inner = inner
	return v
}

func (v *CredentialValidationService) Encrypt(ctx context.Context, userID, plaintext string) (string, error) {
	if err := v.validate(ctx, userID, plaintext); err != nil {
		return "", fmt.Errorf("error during validation before encryption: %w", err)
	}

	return v.inner.Encrypt(ctx, userID, plaintext)
}

func (v *CredentialValidationService) Decrypt(ctx context.Context, userID, envelope string) (string, error) {
	if err := v.validate(ctx, userID, envelope); err != nil {
		return "", fmt.Errorf("error during validation before decryption: %w", err)
	}

	return v.inner.Decrypt(ctx, userID, envelope)
}

func (v *CredentialValidationService) Digest(ctx context.Context, content string) string {
	return v.inner.Digest(ctx, content)
}

func (v *CredentialValidationService) VerifyDigest(ctx context.Context, content, digest string) (bool, error) {
	return v.inner.VerifyDigest(ctx, content, digest)
}

func (v *CredentialValidationService) validate(ctx context.Context, userID, payload string) error {
	if len(payload) > MaxCredentialLength {
		return ErrValidationCredentialTooLarge
	}

	authenticated, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil
	}
	if userID == "" {
		return ErrValidationNoUserID
	}
	if authenticated != userID {
		return ErrUnauthorizedAccessToDifferentUserData
	}

	return nil
}
