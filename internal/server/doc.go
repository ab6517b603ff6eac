// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the ops HTTP server and the background workers next
// to it, and shuts both down on SIGTERM, SIGINT or SIGQUIT.
package server
