// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-cred-keeper/internal/crypto"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	contentDigestHeader = "X-Content-Digest"
	traceIDHeader       = "X-Trace-ID"
)

type httpServerAdapter struct {
	client *resty.Client
	token  string

	logger *logger.Logger
}

// NewHTTPServerAdapter builds a REST [ServerAdapter] for the server at
// address ("host:port" or a full URL). Every POST carries an X-Content-Digest
// header so the server can check the body it received.
func NewHTTPServerAdapter(address string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if resp.StatusCode() != http.StatusServiceUnavailable {
		if err = mapHTTPError(resp); err != nil {
			return models.HealthResponse{}, err
		}
	}

	var health models.HealthResponse
	if err = json.Unmarshal(resp.Body(), &health); err != nil {
		return models.HealthResponse{}, fmt.Errorf("decode health response: %w", err)
	}

	h.logger.Debug().
		Str("trace_id", resp.Header().Get(traceIDHeader)).
		Str("status", health.Status).
		Msg("health probed")

	return health, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) Encrypt(ctx context.Context, plaintext string) (string, error) {
	var out models.EncryptResponse
	if err := h.post(ctx, "/api/credentials/encrypt", models.EncryptRequest{Plaintext: plaintext}, &out); err != nil {
		return "", fmt.Errorf("encrypt request: %w", err)
	}
	return out.Envelope, nil
}

func (h *httpServerAdapter) Decrypt(ctx context.Context, envelope string) (string, error) {
	var out models.DecryptResponse
	if err := h.post(ctx, "/api/credentials/decrypt", models.DecryptRequest{Envelope: envelope}, &out); err != nil {
		return "", fmt.Errorf("decrypt request: %w", err)
	}
	return out.Plaintext, nil
}

func (h *httpServerAdapter) Digest(ctx context.Context, content string) (string, error) {
	var out models.DigestResponse
	if err := h.post(ctx, "/api/digest", models.DigestRequest{Content: content}, &out); err != nil {
		return "", fmt.Errorf("digest request: %w", err)
	}
	return out.Digest, nil
}

func (h *httpServerAdapter) VerifyDigest(ctx context.Context, content, digest string) (bool, error) {
	var out models.VerifyDigestResponse
	req := models.VerifyDigestRequest{Content: content, Digest: digest}
	if err := h.post(ctx, "/api/digest/verify", req, &out); err != nil {
		return false, fmt.Errorf("verify digest request: %w", err)
	}
	return out.Valid, nil
}

// post sends body as JSON to an authenticated route and decodes the answer
// into out.
func (h *httpServerAdapter) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode body: %w", err)
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(contentDigestHeader, crypto.Digest(string(payload))).
		SetBody(payload).
		Post(path)
	if err != nil {
		return err
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetHeader("Authorization", "Bearer "+h.token)
	}
	return req
}
