// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package secret

import (
	"os"
	"strings"
)

type fileSource struct {
	path string
}

// NewFileSource returns a [Source] that reads the secret from the file at
// path on every call, e.g. a mounted orchestrator secret. Surrounding
// whitespace is trimmed. A missing or unreadable file is reported as absent.
func NewFileSource(path string) Source {
	return &fileSource{path: path}
}

func (s *fileSource) MasterSecret() (string, bool) {
	if s.path == "" {
		return "", false
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}

	value := strings.TrimSpace(string(raw))
	return value, value != ""
}
