// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

const notAvailable = "N/A"

// AppBuildInfo carries immutable build-time metadata embedded into the
// gateway binary.
//
// Values are injected by linker flags during CI/CD, printed on startup and
// served from the root endpoint of the gateway.
type AppBuildInfo struct {
	serviceName  string
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
// Empty values are replaced with "N/A".
func NewAppBuildInfo(serviceName, buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		serviceName:  orNotAvailable(serviceName),
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

// ServiceName returns the name the gateway reports about itself.
func (a AppBuildInfo) ServiceName() string {
	return a.serviceName
}

// BuildVersion returns the semantic version string of the build.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the build timestamp string.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the source-control commit hash used for the build.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// BuildInfoResponse is the JSON view of [AppBuildInfo].
type BuildInfoResponse struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// Response returns the JSON view of the build info.
func (a AppBuildInfo) Response() BuildInfoResponse {
	return BuildInfoResponse{
		Service: a.serviceName,
		Version: a.buildVersion,
		Date:    a.buildDate,
		Commit:  a.buildCommit,
	}
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
