// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"fmt"
)

// Envelope is the decoded form of a protected value:
//
//	nonce (16) ‖ tag (16) ‖ ciphertext (N)
//
// Only its base64 encoding is persisted or transmitted.
type Envelope struct {
	Nonce      []byte
	Tag        []byte
	Ciphertext []byte
}

// PackEnvelope concatenates nonce, tag and ciphertext in wire order and
// returns the standard base64 encoding.
func PackEnvelope(nonce, tag, ciphertext []byte) string {
	blob := make([]byte, 0, len(nonce)+len(tag)+len(ciphertext))
	blob = append(blob, nonce...)
	blob = append(blob, tag...)
	blob = append(blob, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob)
}

// UnpackEnvelope decodes an envelope produced by [PackEnvelope]. It rejects
// invalid base64 and anything shorter than nonce ‖ tag with
// [ErrMalformedEnvelope]; no cryptographic work is done here. The ciphertext
// is empty for an empty plaintext.
func UnpackEnvelope(encoded string) (Envelope, error) {
	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return Envelope{}, fmt.Errorf("%w: decode base64: %w", ErrMalformedEnvelope, err)
	}

	if len(blob) < EnvelopeHeaderSize {
		return Envelope{}, fmt.Errorf("%w: %d bytes, need at least %d", ErrMalformedEnvelope, len(blob), EnvelopeHeaderSize)
	}

	return Envelope{
		Nonce:      blob[:NonceSize],
		Tag:        blob[NonceSize:EnvelopeHeaderSize],
		Ciphertext: blob[EnvelopeHeaderSize:],
	}, nil
}

// String returns the base64 wire form of e.
func (e Envelope) String() string {
	return PackEnvelope(e.Nonce, e.Tag, e.Ciphertext)
}
