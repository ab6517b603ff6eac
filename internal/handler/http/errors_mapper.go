// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-cred-keeper/internal/crypto"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/service"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                http.StatusBadRequest,
	ErrIntegrityCheckFailed:       http.StatusBadRequest,
	ErrRequestTooLarge:            http.StatusRequestEntityTooLarge,
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,
	ErrNoUserInContext:            http.StatusUnauthorized,

	service.ErrInvalidDataProvided:                   http.StatusBadRequest,
	service.ErrValidationNoUserID:                    http.StatusBadRequest,
	service.ErrValidationCredentialTooLarge:          http.StatusRequestEntityTooLarge,
	service.ErrUnauthorizedAccessToDifferentUserData: http.StatusForbidden,
	service.ErrTokenIsExpired:                        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:               http.StatusUnauthorized,

	crypto.ErrEncryptionFailed:    http.StatusUnprocessableEntity,
	crypto.ErrDecryptionFailed:    http.StatusUnprocessableEntity,
	crypto.ErrInvalidDigestFormat: http.StatusBadRequest,
}

// bodyError classifies a failure to read or decode a request body. Hitting
// the size limit is reported as [ErrRequestTooLarge], anything else as
// [ErrInvalidJSON].
func bodyError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return fmt.Errorf("%w: limit %d bytes", ErrRequestTooLarge, maxBytesErr.Limit)
	}
	return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// publicMessage is the body sent for err. Known errors expose their own
// sentinel text only, so wrapped causes never reach the client.
func publicMessage(err error) string {
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return http.StatusText(http.StatusInternalServerError)
}

// writeError logs err with the request logger and answers with its mapped
// status and public message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	logger.FromRequest(r).Err(err).Int("status", status).Msg("request failed")
	http.Error(w, publicMessage(err), status)
}
