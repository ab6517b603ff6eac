// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBuildInfo(t *testing.T) {
	info := NewBuildInfo("1.4.0", "", "9f2c1e7")

	assert.Equal(t, "1.4.0", info.Version)
	assert.Equal(t, "N/A", info.Date)
	assert.Equal(t, "9f2c1e7", info.Commit)
	assert.Equal(t, "Build version: 1.4.0\nBuild date: N/A\nBuild commit: 9f2c1e7", info.String())
}

func TestNewBuildInfo_Empty(t *testing.T) {
	assert.Equal(t, BuildInfo{Version: "N/A", Date: "N/A", Commit: "N/A"}, NewBuildInfo("", "", ""))
}
