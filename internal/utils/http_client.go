// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client rooted at baseURL that speaks JSON.
//
// GET requests are allowed to carry a body because the API reads
// credentials from the body on every verb. A zero timeout means requests
// wait until the server answers or the context is cancelled.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:3000/api/", 0)
//	resp, err := client.R().SetBody(body).Get("funds")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetAllowGetMethodPayload(true).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}
