package models

import "strings"

// BuildInfo carries build-time metadata injected with -ldflags.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewBuildInfo constructs [BuildInfo], replacing blank values with "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		Version: valueOrNA(version),
		Date:    valueOrNA(date),
		Commit:  valueOrNA(commit),
	}
}

// Lines returns the banner printed when the client starts.
func (b BuildInfo) Lines() []string {
	return []string{
		"Build version: " + b.Version,
		"Build date: " + b.Date,
		"Build commit: " + b.Commit,
	}
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
