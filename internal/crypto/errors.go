// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Internal error taxonomy. These errors are logged with full detail but never
// leave [CredentialProtector]; callers of EncryptForUser / DecryptForUser only
// ever see [ErrEncryptionFailed] or [ErrDecryptionFailed].
var (
	// ErrMissingMasterSecret is returned when the secret source supplies
	// nothing (or an empty string).
	ErrMissingMasterSecret = errors.New("master secret is not configured")

	// ErrMalformedEnvelope is returned when an envelope is not valid base64 or
	// is shorter than nonce ‖ tag.
	ErrMalformedEnvelope = errors.New("malformed envelope")

	// ErrAuthFailure is returned when GCM tag verification fails: wrong key,
	// wrong nonce or tampered bytes.
	ErrAuthFailure = errors.New("message authentication failed")

	// ErrInvalidNonce is returned when a nonce is not 32 hex characters.
	ErrInvalidNonce = errors.New("invalid nonce")
)

// Errors surfaced to callers.
var (
	// ErrEncryptionFailed is the only error EncryptForUser returns.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrDecryptionFailed is the only error DecryptForUser returns.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidDigestFormat is returned by VerifyDigest when the expected
	// digest is not a 64-character hex string.
	ErrInvalidDigestFormat = errors.New("invalid digest format")
)
