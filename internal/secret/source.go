// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package secret supplies the master secret to the credential-protection
// engine. A [Source] is consulted on every operation, never cached, so that a
// reconfigured secret takes effect on the next call without a restart.
package secret

//go:generate mockgen -source=source.go -destination=../mock/secret_source_mock.go -package=mock

// Source supplies the current master secret.
//
// MasterSecret returns the secret and true, or "" and false when nothing is
// configured. Implementations must be safe for concurrent use; any
// synchronization needed around rotation is the implementation's concern.
type Source interface {
	MasterSecret() (string, bool)
}

// SourceFunc adapts an ordinary function to [Source].
type SourceFunc func() (string, bool)

// MasterSecret implements [Source].
func (f SourceFunc) MasterSecret() (string, bool) {
	return f()
}

type staticSource struct {
	value string
}

// NewStaticSource returns a [Source] that always supplies value. An empty
// value is reported as absent.
func NewStaticSource(value string) Source {
	return &staticSource{value: value}
}

func (s *staticSource) MasterSecret() (string, bool) {
	return s.value, s.value != ""
}

type chainSource struct {
	sources []Source
}

// NewChainSource returns a [Source] that asks each of sources in order and
// supplies the first non-empty secret. Nil sources are skipped.
func NewChainSource(sources ...Source) Source {
	return &chainSource{sources: sources}
}

func (c *chainSource) MasterSecret() (string, bool) {
	for _, s := range c.sources {
		if s == nil {
			continue
		}
		if value, ok := s.MasterSecret(); ok && value != "" {
			return value, true
		}
	}
	return "", false
}
