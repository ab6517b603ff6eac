// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

// Envelope wire format and key-derivation parameters.
//
// These values are part of the persisted format: every envelope ever produced
// depends on them. Changing any of them requires a version field in the
// envelope so that old envelopes keep decrypting with the old parameters.
const (
	// NonceSize is the GCM nonce length in bytes.
	NonceSize = 16
	// TagSize is the GCM authentication tag length in bytes.
	TagSize = 16
	// KeySize is the derived AES-256 key length in bytes.
	KeySize = 32
	// EnvelopeHeaderSize is the fixed prefix of every envelope: nonce ‖ tag.
	EnvelopeHeaderSize = NonceSize + TagSize

	// PBKDF2Iterations is the fixed PBKDF2-HMAC-SHA256 iteration count.
	PBKDF2Iterations = 100_000

	// MinMasterSecretLength is the minimum length (in characters) a master
	// secret must have to pass the configuration health check.
	MinMasterSecretLength = 32
	// MasterSecretBytes is the amount of randomness in a generated master secret.
	MasterSecretBytes = 32

	// Algorithm is reported in operator diagnostics.
	Algorithm = "aes-256-gcm"
)
