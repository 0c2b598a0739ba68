// Package version holds the build version, overridable at link time:
//
//	go build -ldflags "-X distmat/internal/version.Version=v1.2.3" ./cmd/distmat
package version

var Version = "0.3.0-dev"
