// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-cred-keeper/internal/config"
	"github.com/MKhiriev/go-cred-keeper/internal/handler"
	handlerhttp "github.com/MKhiriev/go-cred-keeper/internal/handler/http"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/service"
	"github.com/MKhiriev/go-cred-keeper/internal/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func testHandlers() *handler.Handlers {
	return &handler.Handlers{HTTP: handlerhttp.NewHandler(&service.Services{}, logger.Nop())}
}

func TestNewServer_Errors(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:8080", RequestTimeout: time.Second}

	_, err := NewServer(nil, nil, cfg, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(&handler.Handlers{}, nil, cfg, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(testHandlers(), nil, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewHTTPServer_AppliesTimeouts(t *testing.T) {
	h := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:1", RequestTimeout: 7 * time.Second}, logger.Nop())

	assert.Equal(t, "127.0.0.1:1", h.server.Addr)
	assert.Equal(t, 7*time.Second, h.server.ReadTimeout)
	assert.Equal(t, 7*time.Second, h.server.WriteTimeout)
	assert.Equal(t, 7*time.Second, h.server.ReadHeaderTimeout)
}

// blockingWorker records that it ran and returns when ctx is done.
type blockingWorker struct {
	started, stopped atomic.Bool
}

func (b *blockingWorker) Run(ctx context.Context) {
	b.started.Store(true)
	<-ctx.Done()
	b.stopped.Store(true)
}

func TestRun_ShutsDownOnContextCancel(t *testing.T) {
	addr := freeAddress(t)
	s, err := NewServer(testHandlers(), nil, config.Server{HTTPAddress: addr, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() { result <- s.(*server).run(ctx) }()

	require.Eventually(t, func() bool {
		conn, err := net.Dial("tcp", addr)
		if err != nil {
			return false
		}
		conn.Close()
		return true
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-result:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return")
	}
}

func TestRun_StopsWorkersWhenListenerFails(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	worker := &blockingWorker{}
	s := &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: l.Addr().String(), RequestTimeout: time.Second}, logger.Nop()),
		workers:    workers.New(worker),
		logger:     logger.Nop(),
	}

	err = s.run(context.Background())

	assert.ErrorIs(t, err, errServerStopped)
	assert.True(t, worker.started.Load())
	assert.True(t, worker.stopped.Load())
}

func TestRun_NoServer(t *testing.T) {
	s := &server{logger: logger.Nop()}
	assert.ErrorIs(t, s.run(context.Background()), errNoServersToRun)
}
