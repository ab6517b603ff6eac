// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the ops server and the key
// tool: context keys, JSON responses, token issuing and id generation.
package utils

import (
	"context"
)

// contextKey keeps our context keys apart from other packages' string keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey stores the authenticated user identifier (a string) in a
// request context.
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, "u1")
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext returns the user identifier put into ctx by the auth
// middleware. ok is false when it is missing, empty or of another type.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}
