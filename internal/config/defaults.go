package config

import (
	"os"
	"path/filepath"
)

const (
	// DefaultHTTPAddress is the API base URL used when none is configured.
	DefaultHTTPAddress = "http://localhost:3000/api/"

	// DefaultLogLevel is the zerolog level used when none is configured.
	DefaultLogLevel = "info"

	defaultLogFileName = "fund-client.log"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress: DefaultHTTPAddress,
		},
		Log: Log{
			File:  defaultLogFile(),
			Level: DefaultLogLevel,
		},
	}
}

// defaultLogFile places the log next to the executable.
func defaultLogFile() string {
	execPath, err := os.Executable()
	if err != nil {
		return defaultLogFileName
	}
	return filepath.Join(filepath.Dir(execPath), defaultLogFileName)
}
