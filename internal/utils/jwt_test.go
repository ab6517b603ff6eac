// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// signClaims builds a token by hand for cases GenerateJWTToken refuses to
// produce (expired, empty subject, foreign algorithm).
func signClaims(t *testing.T, method jwt.SigningMethod, claims jwt.RegisteredClaims, key any) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	return s
}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", "user-123", time.Hour, "secret-key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.UserID != "user-123" {
		t.Errorf("expected UserID user-123, got %q", token.UserID)
	}

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("expected issuer test-issuer, got %s", claims.Issuer)
	}
	if claims.Subject != "user-123" {
		t.Errorf("expected subject user-123, got %s", claims.Subject)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != time.Hour {
		t.Errorf("expected lifetime 1h, got %s", got)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		userID   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "u", time.Hour, "key"},
		{"empty user", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "u", 0, "key"},
		{"negative duration", "iss", "u", -time.Minute, "key"},
		{"empty key", "iss", "u", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateJWTToken(tt.issuer, tt.userID, tt.duration, tt.key); err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	for _, userID := range []string{"u1", "42", "alice@example.com", "пользователь"} {
		genToken, err := GenerateJWTToken("iss", userID, 5*time.Minute, "key")
		if err != nil {
			t.Fatalf("generate: %v", err)
		}

		parsed, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "iss")
		if err != nil {
			t.Fatalf("expected token to be valid, got error: %v", err)
		}
		if parsed.UserID != userID {
			t.Errorf("expected userID %q, got %q", userID, parsed.UserID)
		}
		if parsed.Subject != userID || parsed.Issuer != "iss" {
			t.Errorf("claims not carried over: sub=%q iss=%q", parsed.Subject, parsed.Issuer)
		}
		if parsed.String() != genToken.SignedString {
			t.Error("parsed token must keep its compact form")
		}
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateJWTToken("iss", "u1", time.Hour, "correct-key")

	if _, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "iss"); err == nil {
		t.Error("expected error due to signature mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	raw := signClaims(t, jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "u1",
		IssuedAt:  jwt.NewNumericDate(past),
		ExpiresAt: jwt.NewNumericDate(past.Add(time.Minute)),
	}, []byte("key"))

	_, err := ValidateAndParseJWTToken(raw, "key", "iss")
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected jwt.ErrTokenExpired, got %v", err)
	}
}

func TestValidateAndParseJWTToken_NoExpiry(t *testing.T) {
	raw := signClaims(t, jwt.SigningMethodHS256, jwt.RegisteredClaims{Issuer: "iss", Subject: "u1"}, []byte("key"))

	if _, err := ValidateAndParseJWTToken(raw, "key", "iss"); err == nil {
		t.Error("tokens without exp must be rejected")
	}
}

func TestValidateAndParseJWTToken_EmptySubject(t *testing.T) {
	raw := signClaims(t, jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "iss",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}, []byte("key"))

	_, err := ValidateAndParseJWTToken(raw, "key", "iss")
	if !errors.Is(err, ErrEmptySubject) {
		t.Errorf("expected ErrEmptySubject, got %v", err)
	}
}

func TestValidateAndParseJWTToken_OtherAlgorithm(t *testing.T) {
	raw := signClaims(t, jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}, []byte("key"))

	if _, err := ValidateAndParseJWTToken(raw, "key", "iss"); err == nil {
		t.Error("expected HS512 token to be rejected")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	genToken, _ := GenerateJWTToken("real-issuer", "u1", time.Hour, "key")

	if _, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "fake-issuer"); err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	if _, err := ValidateAndParseJWTToken("not.a.token", "key", "iss"); err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}
