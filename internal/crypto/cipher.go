// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// newGCM builds AES-256-GCM with a 16-byte nonce. The standard 12-byte
// nonce is not used because the envelope format carries 16.
func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("invalid key length: %d", len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCMWithNonceSize(block, NonceSize)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}

// seal encrypts plaintext with key and nonce (no additional data) and returns
// the ciphertext and the tag separately. len(ciphertext) == len(plaintext).
func seal(key, nonce, plaintext []byte) (ciphertext, tag []byte, err error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	if len(nonce) != NonceSize {
		return nil, nil, fmt.Errorf("%w: got %d bytes", ErrInvalidNonce, len(nonce))
	}

	// Seal appends the tag to the ciphertext.
	sealed := gcm.Seal(nil, nonce, plaintext, nil)
	split := len(sealed) - TagSize

	return sealed[:split], sealed[split:], nil
}

// open verifies tag and decrypts ciphertext. Nothing is returned unless the
// tag verifies. Every verification failure is reported as [ErrAuthFailure].
func open(key, nonce, ciphertext, tag []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	if len(nonce) != NonceSize || len(tag) != TagSize {
		return nil, ErrAuthFailure
	}

	sealed := make([]byte, 0, len(ciphertext)+TagSize)
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, ErrAuthFailure
	}

	return plaintext, nil
}
