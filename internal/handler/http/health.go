// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-cred-keeper/internal/utils"
	"github.com/MKhiriev/go-cred-keeper/models"
)

// health reports 200 while the master secret is usable and 503 otherwise.
// The secret itself is never part of the answer.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if h.services.AppInfoService.MasterSecretHealthy(r.Context()) {
		utils.WriteJSON(w, models.HealthResponse{
			Status:       "ok",
			MasterSecret: models.MasterSecretValid,
		}, http.StatusOK)
		return
	}

	utils.WriteJSON(w, models.HealthResponse{
		Status:       "degraded",
		MasterSecret: models.MasterSecretInvalid,
	}, http.StatusServiceUnavailable)
}
