// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-cred-keeper/internal/config"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/utils"
	"github.com/MKhiriev/go-cred-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService issues and checks the bearer tokens of the ops server. The
// subject of a token is the user identifier whose credentials the bearer may
// encrypt and decrypt.
type authService struct {
	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	// It is unrelated to the master secret.
	tokenSignKey string

	// tokenIssuer is the "iss" claim; tokens of other issuers are rejected.
	tokenIssuer string

	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService builds an AuthService from the token settings of cfg. The
// service holds only read-only state and is safe for concurrent use.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// CreateToken issues a signed token for userID.
func (a *authService) CreateToken(ctx context.Context, userID string) (models.Token, error) {
	if userID == "" {
		return models.Token{}, ErrInvalidDataProvided
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, userID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	logger.FromContext(ctx).Info().
		Str("user_id", userID).
		Time("expires_at", token.ExpiresAt.Time).
		Msg("token issued")

	return token, nil
}

// ParseToken validates tokenString. Expired tokens yield ErrTokenIsExpired,
// every other failure ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
