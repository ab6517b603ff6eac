// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the auth middleware when parsing the "Authorization"
// header.
var (
	// ErrEmptyAuthorizationHeader is returned when the header is absent.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of the
	// form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the scheme is present but the token is
	// empty.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

var (
	// ErrInvalidJSON is reported for request bodies that do not decode.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrIntegrityCheckFailed is returned when a request body does not match
	// its X-Content-Digest header.
	ErrIntegrityCheckFailed = errors.New("integrity check failed")

	// ErrRequestTooLarge is returned when a body exceeds the router's size
	// limit.
	ErrRequestTooLarge = errors.New("request body too large")

	// ErrNoUserInContext means a protected handler ran without the auth
	// middleware in front of it.
	ErrNoUserInContext = errors.New("no authenticated user in request context")
)
