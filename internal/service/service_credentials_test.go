// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-cred-keeper/internal/crypto"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/mock"
	"github.com/MKhiriev/go-cred-keeper/internal/secret"
	"github.com/MKhiriev/go-cred-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testMasterSecret = "0123456789abcdef0123456789abcdef0123456789abcdef"

// ── Encrypt ──────────────────────────────────────────────────────────────────

func TestCredentialService_Encrypt_UsesGeneratedNonce(t *testing.T) {
	ctrl := gomock.NewController(t)
	protector := mock.NewMockCredentialProtector(ctrl)
	svc := service.NewCredentialService(protector, logger.Nop())

	gomock.InOrder(
		protector.EXPECT().GenerateNonce().Return("000102030405060708090a0b0c0d0e0f", nil),
		protector.EXPECT().
			EncryptForUser("cookie=abc", "u1", "000102030405060708090a0b0c0d0e0f").
			Return("ENVELOPE", nil),
	)

	envelope, err := svc.Encrypt(context.Background(), "u1", "cookie=abc")

	require.NoError(t, err)
	assert.Equal(t, "ENVELOPE", envelope)
}

func TestCredentialService_Encrypt_NonceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	protector := mock.NewMockCredentialProtector(ctrl)
	svc := service.NewCredentialService(protector, logger.Nop())

	protector.EXPECT().GenerateNonce().Return("", errors.New("entropy exhausted"))

	envelope, err := svc.Encrypt(context.Background(), "u1", "x")

	assert.Empty(t, envelope)
	assert.ErrorIs(t, err, crypto.ErrEncryptionFailed)
	assert.NotContains(t, err.Error(), "entropy")
}

func TestCredentialService_Encrypt_PassesProtectorErrorThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	protector := mock.NewMockCredentialProtector(ctrl)
	svc := service.NewCredentialService(protector, logger.Nop())

	protector.EXPECT().GenerateNonce().Return("00000000000000000000000000000000", nil)
	protector.EXPECT().EncryptForUser(gomock.Any(), gomock.Any(), gomock.Any()).Return("", crypto.ErrEncryptionFailed)

	_, err := svc.Encrypt(context.Background(), "u1", "x")

	assert.Same(t, crypto.ErrEncryptionFailed, err)
}

// ── Decrypt ──────────────────────────────────────────────────────────────────

func TestCredentialService_Decrypt(t *testing.T) {
	tests := []struct {
		name      string
		plaintext string
		err       error
	}{
		{name: "success", plaintext: "hello"},
		{name: "empty plaintext", plaintext: ""},
		{name: "failure", err: crypto.ErrDecryptionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			protector := mock.NewMockCredentialProtector(ctrl)
			svc := service.NewCredentialService(protector, logger.Nop())

			protector.EXPECT().DecryptForUser("ENV", "u1").Return(tt.plaintext, tt.err)

			got, err := svc.Decrypt(context.Background(), "u1", "ENV")

			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, got)
		})
	}
}

// ── Digest / VerifyDigest ────────────────────────────────────────────────────

func TestCredentialService_Digest(t *testing.T) {
	svc := service.NewCredentialService(nil, logger.Nop())

	assert.Equal(t,
		"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		svc.Digest(context.Background(), "hello"))
}

func TestCredentialService_VerifyDigest(t *testing.T) {
	svc := service.NewCredentialService(nil, logger.Nop())
	ctx := context.Background()
	d := crypto.Digest("payload")

	ok, err := svc.VerifyDigest(ctx, "payload", d)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.VerifyDigest(ctx, "payload", strings.ToUpper(d))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.VerifyDigest(ctx, "payload!", d)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.VerifyDigest(ctx, "payload", "abc")
	assert.ErrorIs(t, err, crypto.ErrInvalidDigestFormat)
	assert.False(t, ok)
}

// ── End to end with a real protector ─────────────────────────────────────────

func TestCredentialService_RealProtector_RoundTrip(t *testing.T) {
	protector := crypto.NewCredentialProtector(secret.NewStaticSource(testMasterSecret), logger.Nop())
	svc := service.NewCredentialService(protector, logger.Nop())
	ctx := context.Background()

	first, err := svc.Encrypt(ctx, "u1", "session=42")
	require.NoError(t, err)
	second, err := svc.Encrypt(ctx, "u1", "session=42")
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "every encryption draws a new nonce")

	for _, envelope := range []string{first, second} {
		got, err := svc.Decrypt(ctx, "u1", envelope)
		require.NoError(t, err)
		assert.Equal(t, "session=42", got)
	}

	_, err = svc.Decrypt(ctx, "u2", first)
	assert.ErrorIs(t, err, crypto.ErrDecryptionFailed)
}
