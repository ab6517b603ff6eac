// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-cred-keeper/internal/utils"
	"github.com/MKhiriev/go-cred-keeper/models"
)

// encrypt seals a credential for the authenticated user under a fresh nonce.
func (h *Handler) encrypt(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	var req models.EncryptRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	envelope, err := h.services.CredentialService.Encrypt(r.Context(), userID, req.Plaintext)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.EncryptResponse{Envelope: envelope}, http.StatusOK)
}

// decrypt opens an envelope of the authenticated user. Every failure is the
// same 422, whatever went wrong inside.
func (h *Handler) decrypt(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	var req models.DecryptRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	plaintext, err := h.services.CredentialService.Decrypt(r.Context(), userID, req.Envelope)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	utils.WriteJSON(w, models.DecryptResponse{Plaintext: plaintext}, http.StatusOK)
}

// decodeJSON decodes the body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return bodyError(err)
	}
	return nil
}
