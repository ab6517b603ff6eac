// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-cred-keeper/internal/mock"
	"github.com/MKhiriev/go-cred-keeper/internal/service"
	"github.com/MKhiriev/go-cred-keeper/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func authenticated(userID string) context.Context {
	return context.WithValue(context.Background(), utils.UserIDCtxKey, userID)
}

func TestCredentialValidationService_Encrypt(t *testing.T) {
	tests := []struct {
		name      string
		ctx       context.Context
		userID    string
		plaintext string
		wantErr   error
		callInner bool
	}{
		{name: "own credentials", ctx: authenticated("u1"), userID: "u1", plaintext: "x", callInner: true},
		{name: "no authenticated user", ctx: context.Background(), userID: "", plaintext: "x", callInner: true},
		{name: "another user", ctx: authenticated("u1"), userID: "u2", plaintext: "x", wantErr: service.ErrUnauthorizedAccessToDifferentUserData},
		{name: "empty user id", ctx: authenticated("u1"), userID: "", plaintext: "x", wantErr: service.ErrValidationNoUserID},
		{name: "too large", ctx: authenticated("u1"), userID: "u1", plaintext: strings.Repeat("a", service.MaxCredentialLength+1), wantErr: service.ErrValidationCredentialTooLarge},
		{name: "exactly the limit", ctx: authenticated("u1"), userID: "u1", plaintext: strings.Repeat("a", service.MaxCredentialLength), callInner: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			inner := mock.NewMockCredentialService(ctrl)
			svc := service.NewCredentialValidationService().Wrap(inner)

			if tt.callInner {
				inner.EXPECT().Encrypt(tt.ctx, tt.userID, tt.plaintext).Return("ENV", nil)
			}

			got, err := svc.Encrypt(tt.ctx, tt.userID, tt.plaintext)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ENV", got)
		})
	}
}

func TestCredentialValidationService_Decrypt_RejectsForeignUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockCredentialService(ctrl)
	svc := service.NewCredentialValidationService().Wrap(inner)

	_, err := svc.Decrypt(authenticated("alice"), "bob", "ENV")

	assert.ErrorIs(t, err, service.ErrUnauthorizedAccessToDifferentUserData)
}

func TestCredentialValidationService_Decrypt_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockCredentialService(ctrl)
	svc := service.NewCredentialValidationService().Wrap(inner)
	ctx := authenticated("alice")

	inner.EXPECT().Decrypt(ctx, "alice", "ENV").Return("secret", nil)

	got, err := svc.Decrypt(ctx, "alice", "ENV")

	require.NoError(t, err)
	assert.Equal(t, "secret", got)
}

func TestCredentialValidationService_DigestsPassThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockCredentialService(ctrl)
	svc := service.NewCredentialValidationService().Wrap(inner)
	ctx := authenticated("alice")

	inner.EXPECT().Digest(ctx, "c").Return("d")
	inner.EXPECT().VerifyDigest(ctx, "c", "d").Return(true, nil)

	assert.Equal(t, "d", svc.Digest(ctx, "c"))
	ok, err := svc.VerifyDigest(ctx, "c", "d")
	require.NoError(t, err)
	assert.True(t, ok)
}
