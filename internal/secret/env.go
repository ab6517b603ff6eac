// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package secret

import (
	"github.com/caarlos0/env/v11"
)

// DefaultEnvPrefix is the prefix of the master secret environment variable:
// CRED_KEEPER_MASTER_SECRET.
const DefaultEnvPrefix = "CRED_KEEPER_"

// masterSecretEnv is parsed from the environment on every lookup.
type masterSecretEnv struct {
	MasterSecret string `env:"MASTER_SECRET"`
}

type envSource struct {
	opts env.Options
}

// NewEnvSource returns a [Source] backed by the <prefix>MASTER_SECRET
// environment variable. An empty prefix selects [DefaultEnvPrefix].
func NewEnvSource(prefix string) Source {
	if prefix == "" {
		prefix = DefaultEnvPrefix
	}
	return &envSource{opts: env.Options{Prefix: prefix}}
}

// MasterSecret re-reads the environment each time.
func (s *envSource) MasterSecret() (string, bool) {
	var cfg masterSecretEnv
	if err := env.ParseWithOptions(&cfg, s.opts); err != nil {
		return "", false
	}
	return cfg.MasterSecret, cfg.MasterSecret != ""
}
