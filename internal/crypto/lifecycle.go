// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/MKhiriev/go-cred-keeper/internal/secret"
)

// ValidateMasterSecret reports whether source currently supplies a secret of
// at least [MinMasterSecretLength] characters. It is a health check only; the
// encryption path itself requires just a non-empty secret.
func ValidateMasterSecret(source secret.Source) bool {
	if source == nil {
		return false
	}

	value, ok := source.MasterSecret()
	if !ok || value == "" {
		return false
	}

	return utf8.RuneCountInString(value) >= MinMasterSecretLength
}

// GenerateMasterSecret returns [MasterSecretBytes] random bytes as a 64
// character hex string, for manual rotation. Installing the new secret makes
// every existing envelope undecryptable; nothing is re-encrypted here.
func GenerateMasterSecret() (string, error) {
	return randomHex(MasterSecretBytes)
}

// GenerateNonce returns [NonceSize] random bytes as a 32 character hex string.
func GenerateNonce() (string, error) {
	return randomHex(NonceSize)
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// decodeNonce parses a hex nonce and checks its length.
func decodeNonce(nonce string) ([]byte, error) {
	raw, err := hex.DecodeString(nonce)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidNonce, err)
	}
	if len(raw) != NonceSize {
		return nil, fmt.Errorf("%w: %d bytes, want %d", ErrInvalidNonce, len(raw), NonceSize)
	}
	return raw, nil
}
