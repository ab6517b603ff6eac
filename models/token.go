// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/golang-jwt/jwt/v5"

// Token wraps a bearer token of the ops server.
//
// It embeds [jwt.Token] for signing and parsing and [jwt.RegisteredClaims]
// for the standard claim set. The subject claim carries the user identifier
// whose credentials the caller operates on.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact header.payload.signature form.
	SignedString string `json:"-"`

	// UserID is the parsed "sub" claim. It may legitimately be any string,
	// but the ops server refuses tokens with an empty subject.
	UserID string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
