// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-cred-keeper/internal/crypto"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
)

// credentialService drives a [crypto.CredentialProtector]. Failures coming
// out of the protector are already generic and already logged; they are
// passed through unwrapped so callers can match them with errors.Is.
type credentialService struct {
	protector crypto.CredentialProtector

	logger *logger.Logger
}

func NewCredentialService(protector crypto.CredentialProtector, logger *logger.Logger) CredentialService {
	return &credentialService{
		protector: protector,
		logger:    logger,
	}
}

func (s *credentialService) Encrypt(ctx context.Context, userID, plaintext string) (string, error) {
	log := logger.FromContext(ctx)

	nonce, err := s.protector.GenerateNonce()
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("nonce generation failed")
		return "", crypto.ErrEncryptionFailed
	}

	envelope, err := s.protector.EncryptForUser(plaintext, userID, nonce)
	if err != nil {
		return "", err
	}

	log.Debug().Str("user_id", userID).Int("envelope_len", len(envelope)).Msg("credential encrypted")
	return envelope, nil
}

func (s *credentialService) Decrypt(ctx context.Context, userID, envelope string) (string, error) {
	plaintext, err := s.protector.DecryptForUser(envelope, userID)
	if err != nil {
		return "", err
	}

	logger.FromContext(ctx).Debug().Str("user_id", userID).Msg("credential decrypted")
	return plaintext, nil
}

func (s *credentialService) Digest(_ context.Context, content string) string {
	return crypto.Digest(content)
}

func (s *credentialService) VerifyDigest(ctx context.Context, content, digest string) (bool, error) {
	ok, err := crypto.VerifyDigest(content, digest)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("malformed digest supplied")
		return false, err
	}

	return ok, nil
}
