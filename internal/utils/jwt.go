// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-cred-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySubject is returned for tokens that name no user.
var ErrEmptySubject = errors.New("empty subject error")

// GenerateJWTToken creates an HS256 token for userID.
//
// Claims: iss = issuer, sub = userID, iat = now, exp = now + tokenDuration.
// issuer, userID, signKey must be non-empty and tokenDuration positive.
//
//	token, err := utils.GenerateJWTToken("go-cred-keeper", "u1", time.Hour, "secret")
func GenerateJWTToken(issuer, userID string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || userID == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: *claims,
		SignedString:     tokenString,
		UserID:           userID,
	}, nil
}

// ValidateAndParseJWTToken checks the signature (HS256 only), the issuer and
// the expiry of tokenString and returns the token with UserID set from the
// subject claim. Expired tokens wrap [jwt.ErrTokenExpired].
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if userID == "" {
		return models.Token{}, ErrEmptySubject
	}

	parsed := models.Token{Token: token, UserID: userID, SignedString: tokenString}
	if claims, ok := token.Claims.(*models.Token); ok {
		parsed.RegisteredClaims = claims.RegisteredClaims
	}

	return parsed, nil
}
