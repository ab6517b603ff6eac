// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-cred-keeper/internal/crypto"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/secret"
)

type secretState int

const (
	stateUnknown secretState = iota
	stateValid
	stateInvalid
)

// MasterSecretHealthWorker periodically validates the master secret and logs
// when it becomes unusable and when it recovers. It never logs the secret.
type MasterSecretHealthWorker struct {
	source   secret.Source
	interval time.Duration
	state    secretState

	logger *logger.Logger
}

func NewMasterSecretHealthWorker(source secret.Source, interval time.Duration, logger *logger.Logger) *MasterSecretHealthWorker {
	return &MasterSecretHealthWorker{
		source:   source,
		interval: interval,
		logger:   logger,
	}
}

// Run checks once right away and then every interval until ctx is done.
func (w *MasterSecretHealthWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("master secret health worker started")
	w.check()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("master secret health worker stopped")
			return
		case <-ticker.C:
			w.check()
		}
	}
}

func (w *MasterSecretHealthWorker) check() {
	next := stateInvalid
	if crypto.ValidateMasterSecret(w.source) {
		next = stateValid
	}

	prev := w.state
	w.state = next
	if prev == next {
		return
	}

	switch {
	case next == stateInvalid:
		w.logger.Warn().
			Int("min_length", crypto.MinMasterSecretLength).
			Msg("master secret is missing or too short, credential operations will fail")
	case prev == stateInvalid:
		w.logger.Info().Msg("master secret recovered")
	default:
		w.logger.Info().Msg("master secret is valid")
	}
}
