// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/secret"
)

const (
	opEncrypt = "encrypt"
	opDecrypt = "decrypt"
)

// credentialProtector is the private implementation of [CredentialProtector].
// It holds no key material; the master secret is fetched from source and a
// key is derived on every call.
type credentialProtector struct {
	source secret.Source
	logger *logger.Logger
}

// NewCredentialProtector constructs a [CredentialProtector] reading the master
// secret from source and sending failure diagnostics to log. A nil log
// discards diagnostics.
//
// The returned protector is safe for concurrent use.
func NewCredentialProtector(source secret.Source, log *logger.Logger) CredentialProtector {
	if log == nil {
		log = logger.Nop()
	}
	return &credentialProtector{
		source: source,
		logger: log,
	}
}

// GenerateNonce implements [CredentialProtector].
func (p *credentialProtector) GenerateNonce() (string, error) {
	return GenerateNonce()
}

// EncryptForUser implements [CredentialProtector].
func (p *credentialProtector) EncryptForUser(plaintext, userID, nonce string) (string, error) {
	envelope, err := p.encrypt(plaintext, userID, nonce)
	if err != nil {
		return "", p.conceal(opEncrypt, userID, err)
	}
	return envelope, nil
}

// DecryptForUser implements [CredentialProtector].
func (p *credentialProtector) DecryptForUser(envelope, userID string) (string, error) {
	plaintext, err := p.decrypt(envelope, userID)
	if err != nil {
		return "", p.conceal(opDecrypt, userID, err)
	}
	return plaintext, nil
}

func (p *credentialProtector) encrypt(plaintext, userID, nonce string) (string, error) {
	iv, err := decodeNonce(nonce)
	if err != nil {
		return "", err
	}

	key, err := p.deriveKey(userID)
	if err != nil {
		return "", err
	}
	defer wipe(key)

	ciphertext, tag, err := seal(key, iv, []byte(plaintext))
	if err != nil {
		return "", fmt.Errorf("seal: %w", err)
	}

	return PackEnvelope(iv, tag, ciphertext), nil
}

func (p *credentialProtector) decrypt(envelope, userID string) (string, error) {
	unpacked, err := UnpackEnvelope(envelope)
	if err != nil {
		return "", err
	}

	key, err := p.deriveKey(userID)
	if err != nil {
		return "", err
	}
	defer wipe(key)

	plaintext, err := open(key, unpacked.Nonce, unpacked.Ciphertext, unpacked.Tag)
	if err != nil {
		return "", err
	}

	return string(plaintext), nil
}

// deriveKey reads the master secret fresh and derives the user's key.
func (p *credentialProtector) deriveKey(userID string) ([]byte, error) {
	if p.source == nil {
		return nil, ErrMissingMasterSecret
	}

	masterSecret, ok := p.source.MasterSecret()
	if !ok {
		return nil, ErrMissingMasterSecret
	}

	return DeriveKey(masterSecret, userID)
}

// conceal logs the internal cause and returns the generic error for op.
// The cause only ever describes lengths and stages, never data.
func (p *credentialProtector) conceal(op, userID string, cause error) error {
	p.logger.Err(cause).
		Str("operation", op).
		Str("algorithm", Algorithm).
		Str("user_id", userID).
		Msg("credential operation failed")

	return concealError(op)
}

// concealError maps every internal failure of op to its public error.
func concealError(op string) error {
	if op == opEncrypt {
		return ErrEncryptionFailed
	}
	return ErrDecryptionFailed
}
