// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is the lifecycle of the process: RunServer blocks until a stop
// signal arrives and everything is shut down; Shutdown stops serving early.
type Server interface {
	RunServer()
	Shutdown()
}
