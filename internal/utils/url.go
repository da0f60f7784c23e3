package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// NormalizeBaseURL turns an API address into a base URL for the HTTP
// client. A missing scheme defaults to http; any scheme other than http
// or https is rejected, as is an address without a host. Trailing
// slashes are trimmed.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("address must include host")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
