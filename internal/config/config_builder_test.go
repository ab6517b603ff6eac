// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func writeJSONConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_DefaultsNeedSignKey(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_DefaultsWithSignKey(t *testing.T) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withFlags([]string{"-token-sign-key", "k"}).
		build()

	require.NoError(t, err)
	assert.Equal(t, "k", cfg.App.TokenSignKey)
	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, "CRED_KEEPER_", cfg.Secret.EnvPrefix)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultHealthCheckInterval, cfg.Workers.HealthCheckInterval)
}

func TestBuild_EnvOverridesDefaults(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY":            "env-key",
		"SERVER_ADDRESS":                "127.0.0.1:9999",
		"WORKERS_HEALTH_CHECK_INTERVAL": "5s",
	})

	cfg, err := newConfigBuilder().withDefaults().withEnv().build()

	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.App.TokenSignKey)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Workers.HealthCheckInterval)
	// untouched defaults survive
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
}

func TestBuild_FlagsOverrideEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY": "env-key",
		"APP_TOKEN_ISSUER":   "env-issuer",
	})

	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags([]string{"-token-issuer", "flag-issuer"}).
		build()

	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.App.TokenSignKey)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
}

func TestBuild_JSONSitsBetweenDefaultsAndEnv(t *testing.T) {
	path := writeJSONConfig(t, `{
		"app": {"token_sign_key": "json-key", "token_issuer": "json-issuer", "version": "2.0.0"},
		"server": {"http_address": "127.0.0.1:7000", "request_timeout": "3s"}
	}`)
	setEnvVars(t, map[string]string{
		"CONFIG":           path,
		"APP_TOKEN_ISSUER": "env-issuer",
	})

	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags([]string{"-request-timeout", "9s"}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "json-key", cfg.App.TokenSignKey)
	assert.Equal(t, "env-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "127.0.0.1:7000", cfg.Server.HTTPAddress)
	assert.Equal(t, 9*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, path, cfg.JSONFilePath)
}

func TestBuild_JSONPathFromFlag(t *testing.T) {
	path := writeJSONConfig(t, `{"app": {"token_sign_key": "json-key"}}`)

	cfg, err := newConfigBuilder().
		withDefaults().
		withFlags([]string{"-c", path}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "json-key", cfg.App.TokenSignKey)
}

func TestBuild_JSONOnlyBuilder(t *testing.T) {
	path := writeJSONConfig(t, `{"app": {"token_sign_key": "json-key"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-key", b.configs[1].App.TokenSignKey)
}

func TestBuild_MissingJSONFile(t *testing.T) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withFlags([]string{"-config", filepath.Join(t.TempDir(), "missing.json")}).
		withJSON().
		build()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestBuild_ErrorsAreCollected(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_TOKEN_DURATION": "never"})

	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags([]string{"-bogus"}).
		build()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error getting env configs")
	assert.Contains(t, err.Error(), "error parsing flags")
}

func TestGetToolConfig_SkipsValidation(t *testing.T) {
	setEnvVars(t, map[string]string{"SECRET_FILE": "/run/secrets/master", "APP_TOKEN_SIGN_KEY": ""})

	cfg, err := GetToolConfig()

	require.NoError(t, err)
	assert.Empty(t, cfg.App.TokenSignKey)
	assert.Equal(t, "/run/secrets/master", cfg.Secret.FilePath)
	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
}

func TestValidate(t *testing.T) {
	valid := func() *StructuredConfig {
		cfg := defaultConfig()
		cfg.App.TokenSignKey = "k"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "no issuer", mutate: func(c *StructuredConfig) { c.App.TokenIssuer = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "negative duration", mutate: func(c *StructuredConfig) { c.App.TokenDuration = -time.Second }, wantErr: ErrInvalidAppConfigs},
		{name: "no address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "no timeout", mutate: func(c *StructuredConfig) { c.Server.RequestTimeout = 0 }, wantErr: ErrInvalidServerConfigs},
		{name: "no interval", mutate: func(c *StructuredConfig) { c.Workers.HealthCheckInterval = 0 }, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSecret_Source(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "master")
	require.NoError(t, os.WriteFile(file, []byte("file-secret-0123456789abcdef0123456789\n"), 0o600))

	s := Secret{EnvPrefix: "CFG_TEST_", FilePath: file}

	got, ok := s.Source().MasterSecret()
	require.True(t, ok)
	assert.Equal(t, "file-secret-0123456789abcdef0123456789", got)

	t.Setenv("CFG_TEST_MASTER_SECRET", "env-secret")
	got, ok = s.Source().MasterSecret()
	require.True(t, ok)
	assert.Equal(t, "env-secret", got)
}
