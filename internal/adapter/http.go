// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-fund-client/internal/config"
	"github.com/MKhiriev/go-fund-client/internal/logger"
	"github.com/MKhiriev/go-fund-client/internal/utils"
	"github.com/MKhiriev/go-fund-client/models"
	"github.com/go-resty/resty/v2"
)

// requestIDHeader carries a per-request identifier so server logs can be
// matched with client logs.
const requestIDHeader = "X-Request-ID"

type httpRequestHelper struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPRequestHelper constructs the HTTP implementation of [RequestHelper].
// It normalises the base URL from adapterCfg.HTTPAddress and applies the
// configured request timeout (zero means none).
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPRequestHelper(adapterCfg config.ClientAdapter, logger *logger.Logger) (RequestHelper, error) {
	baseURL, err := utils.NormalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	h := &httpRequestHelper{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
	h.client.
		SetLogger(restyLogger{logger: logger}).
		OnAfterResponse(h.logResponse).
		OnError(h.logError)

	return h, nil
}

// Get implements [RequestHelper].
func (h *httpRequestHelper) Get(ctx context.Context, path string, body models.Payload) (models.Envelope, error) {
	return h.do(ctx, http.MethodGet, path, body)
}

// Post implements [RequestHelper].
func (h *httpRequestHelper) Post(ctx context.Context, path string, body models.Payload) (models.Envelope, error) {
	return h.do(ctx, http.MethodPost, path, body)
}

// Put implements [RequestHelper].
func (h *httpRequestHelper) Put(ctx context.Context, path string, body models.Payload) (models.Envelope, error) {
	return h.do(ctx, http.MethodPut, path, body)
}

// Delete implements [RequestHelper].
func (h *httpRequestHelper) Delete(ctx context.Context, path string, body models.Payload) (models.Envelope, error) {
	return h.do(ctx, http.MethodDelete, path, body)
}

func (h *httpRequestHelper) do(ctx context.Context, method, path string, body models.Payload) (models.Envelope, error) {
	if body == nil {
		body = models.NewPayload()
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, h.ids.Generate()).
		SetBody(body).
		Execute(method, path)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("%s %s request: %w", method, path, err)
	}

	env, err := decodeEnvelope(resp)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("%s %s: %w", method, path, err)
	}

	return env, nil
}

// logResponse records request metadata only. Bodies carry credentials.
func (h *httpRequestHelper) logResponse(_ *resty.Client, resp *resty.Response) error {
	event := h.logger.Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Str("request_id", resp.Request.Header.Get(requestIDHeader)).
		Int("http_status", resp.StatusCode()).
		Dur("duration", resp.Time())
	if id, ok := utils.GetSessionIDFromContext(resp.Request.Context()); ok {
		event = event.Str("session", id)
	}
	event.Msg("api response")

	return nil
}

func (h *httpRequestHelper) logError(req *resty.Request, err error) {
	h.logger.Error().
		Err(err).
		Str("method", req.Method).
		Str("url", req.URL).
		Str("request_id", req.Header.Get(requestIDHeader)).
		Msg("api request failed")
}

// restyLogger sends resty's own diagnostics to the client log instead of
// stderr, which shares the terminal with the prompts.
type restyLogger struct {
	logger *logger.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.logger.Error().Msgf(format, v...)
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.logger.Warn().Msgf(format, v...)
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.logger.Debug().Msgf(format, v...)
}
