// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// DeriveKey derives the 256-bit per-user key from masterSecret and userID
// with PBKDF2-HMAC-SHA256. userID is the salt and may be empty.
//
// The same (masterSecret, userID) pair always yields the same key, so no
// per-user key is ever stored. Returns [ErrMissingMasterSecret] if
// masterSecret is empty.
func DeriveKey(masterSecret, userID string) ([]byte, error) {
	if masterSecret == "" {
		return nil, ErrMissingMasterSecret
	}

	return pbkdf2.Key([]byte(masterSecret), []byte(userID), PBKDF2Iterations, KeySize, sha256.New), nil
}

// wipe zeroes b in place.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
