// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EncryptRequest is the body of POST /api/credentials/encrypt.
type EncryptRequest struct {
	// Plaintext is the credential to protect, e.g. a session cookie.
	// An empty string is a valid credential.
	Plaintext string `json:"plaintext"`
}

// EncryptResponse carries the sealed credential.
type EncryptResponse struct {
	Envelope string `json:"envelope"`
}

// DecryptRequest is the body of POST /api/credentials/decrypt.
type DecryptRequest struct {
	Envelope string `json:"envelope"`
}

// DecryptResponse carries the recovered credential.
type DecryptResponse struct {
	Plaintext string `json:"plaintext"`
}

// DigestRequest is the body of POST /api/digest.
type DigestRequest struct {
	Content string `json:"content"`
}

// DigestResponse holds a lowercase hex SHA-256 digest.
type DigestResponse struct {
	Digest string `json:"digest"`
}

// VerifyDigestRequest is the body of POST /api/digest/verify.
type VerifyDigestRequest struct {
	Content string `json:"content"`
	Digest  string `json:"digest"`
}

// VerifyDigestResponse reports whether content matched the digest.
type VerifyDigestResponse struct {
	Valid bool `json:"valid"`
}

// Master secret health states reported by GET /api/health.
const (
	MasterSecretValid   = "valid"
	MasterSecretInvalid = "invalid"
)

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status       string `json:"status"`
	MasterSecret string `json:"master_secret"`
}
