// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// Digest returns the hex-encoded SHA-256 of content's UTF-8 bytes. It is an
// integrity check, not a way to hide content.
func Digest(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// VerifyDigest recomputes the digest of content and compares it with expected
// in constant time.
//
// expected must be 64 hex characters in either case. Anything else returns
// [ErrInvalidDigestFormat] instead of false.
func VerifyDigest(content, expected string) (bool, error) {
	want, err := hex.DecodeString(expected)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidDigestFormat, err)
	}
	if len(want) != sha256.Size {
		return false, fmt.Errorf("%w: %d bytes, want %d", ErrInvalidDigestFormat, len(want), sha256.Size)
	}

	got := sha256.Sum256([]byte(content))

	return subtle.ConstantTimeCompare(got[:], want) == 1, nil
}
