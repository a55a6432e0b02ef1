// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

const notAvailable = "N/A"

// AppBuildInfo carries build-time metadata injected by linker flags.
// It is printed on startup and served by GET /version.
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewAppBuildInfo constructs [AppBuildInfo], replacing missing values with "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orNotAvailable(buildVersion),
		Date:    orNotAvailable(buildDate),
		Commit:  orNotAvailable(buildCommit),
	}
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
