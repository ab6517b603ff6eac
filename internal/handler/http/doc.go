// Package http is the ops surface of go-cred-keeper.
//
// It exposes the credential protection engine over a small REST API: health
// and version probes without authentication, and bearer-authenticated
// endpoints to encrypt, decrypt and digest credentials. Tracing, access
// logging, authentication and request integrity checks run as middleware
// before requests reach the service layer.
package http
