// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// notAvailable stands in for build metadata the linker did not set.
const notAvailable = "N/A"

// AppBuildInfo is the metadata stamped into a binary with -ldflags -X.
// The version is served by GET /api/version when present.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewAppBuildInfo replaces unset values with "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	orNA := func(s string) string {
		if s == "" {
			return notAvailable
		}
		return s
	}
	return AppBuildInfo{Version: orNA(version), Date: orNA(date), Commit: orNA(commit)}
}

// HasVersion reports whether a real version was stamped at build time.
func (b AppBuildInfo) HasVersion() bool {
	return b.Version != "" && b.Version != notAvailable
}

func (b AppBuildInfo) String() string {
	return fmt.Sprintf("version %s, built %s, commit %s", b.Version, b.Date, b.Commit)
}
