// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_protector_mock.go -package=mock

// CredentialProtector encrypts and decrypts user-owned secrets (session
// cookies, API keys) under a key derived per user from the master secret.
//
// Flow:
//
//	key      = PBKDF2-SHA256(masterSecret, salt=userID, 100000, 32)
//	ct, tag  = AES-256-GCM(key, nonce, plaintext)
//	envelope = base64(nonce ‖ tag ‖ ct)
//
// Failures are logged for operators and collapsed into one generic error per
// operation, so callers cannot tell a wrong key from a tampered envelope.
type CredentialProtector interface {
	// GenerateNonce returns 16 fresh random bytes as 32 hex characters.
	GenerateNonce() (string, error)

	// EncryptForUser encrypts plaintext for userID with the given hex nonce
	// and returns the base64 envelope. The nonce must never be reused for the
	// same user and master secret. Any failure returns [ErrEncryptionFailed].
	EncryptForUser(plaintext, userID, nonce string) (string, error)

	// DecryptForUser opens an envelope produced by EncryptForUser for the
	// same userID under the current master secret. Any failure returns
	// [ErrDecryptionFailed].
	DecryptForUser(envelope, userID string) (string, error)
}
