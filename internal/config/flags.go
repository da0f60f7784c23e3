package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses command line arguments.
//
// Flags:
//
//	-a API base URL (e.g. http://localhost:3000/api/)
//	-request-timeout request timeout (e.g. "30s"); 0 disables it
//	-log-file client log file path
//	-log-level zerolog level name
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		apiAddress     string
		requestTimeout time.Duration
		logFile        string
		logLevel       string
		jsonConfigPath string
	)

	fs := flag.NewFlagSet("fund-client", flag.ContinueOnError)
	fs.StringVar(&apiAddress, "a", "", "API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    apiAddress,
			RequestTimeout: requestTimeout,
		},
		Log: Log{
			File:  logFile,
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
