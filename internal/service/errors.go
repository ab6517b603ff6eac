// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrValidationNoUserID                    = errors.New("no user ID was given")
	ErrValidationCredentialTooLarge          = errors.New("credential exceeds the size limit")
	ErrUnauthorizedAccessToDifferentUserData = errors.New("access to another user's credentials")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
