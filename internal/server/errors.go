// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")
	errNoServersToRun      = errors.New("no servers to run")
	errServerStopped       = errors.New("HTTP server stopped unexpectedly")
)
