// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"io"
	"net/http"
)

const contentDigestHeader = "X-Content-Digest"

// withContentDigest verifies the request body against an optional
// X-Content-Digest header holding its hex SHA-256. Requests without the
// header pass untouched.
func (h *Handler) withContentDigest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expected := r.Header.Get(contentDigestHeader)
		if expected == "" {
			next.ServeHTTP(w, r)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, r, bodyError(err))
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		ok, err := h.services.CredentialService.VerifyDigest(r.Context(), string(body), expected)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if !ok {
			writeError(w, r, ErrIntegrityCheckFailed)
			return
		}

		next.ServeHTTP(w, r)
	})
}
