// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-cred-keeper/internal/utils"
	"github.com/MKhiriev/go-cred-keeper/models"
)

func (h *Handler) digest(w http.ResponseWriter, r *http.Request) {
	var req models.DigestRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	digest := h.services.CredentialService.Digest(r.Context(), req.Content)

	utils.WriteJSON(w, models.DigestResponse{Digest: digest}, http.StatusOK)
}

// verifyDigest answers {"valid": false} for a mismatch and 400 for a digest
// that is not 64 hex characters.
func (h *Handler) verifyDigest(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyDigestRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	valid, err := h.services.CredentialService.VerifyDigest(r.Context(), req.Content, req.Digest)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.VerifyDigestResponse{Valid: valid}, http.StatusOK)
}
