package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-fund-client/internal/config"
	"github.com/MKhiriev/go-fund-client/internal/logger"
	"github.com/MKhiriev/go-fund-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestHelper creates an httpRequestHelper pointed at the test server.
func newTestHelper(t *testing.T, baseURL string) *httpRequestHelper {
	t.Helper()
	h, err := NewHTTPRequestHelper(config.ClientAdapter{HTTPAddress: baseURL}, logger.Nop())
	require.NoError(t, err)
	return h.(*httpRequestHelper)
}

type capturedRequest struct {
	method    string
	path      string
	requestID string
	body      map[string]any
}

// captureServer answers every request with respond and records what it got.
func captureServer(t *testing.T, respond func(w http.ResponseWriter)) (*httptest.Server, func() []capturedRequest) {
	t.Helper()
	var (
		mu  sync.Mutex
		got []capturedRequest
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		body := map[string]any{}
		if len(raw) > 0 {
			assert.NoError(t, json.Unmarshal(raw, &body))
		}
		mu.Lock()
		got = append(got, capturedRequest{
			method:    r.Method,
			path:      r.URL.Path,
			requestID: r.Header.Get(requestIDHeader),
			body:      body,
		})
		mu.Unlock()
		respond(w)
	}))
	t.Cleanup(srv.Close)

	return srv, func() []capturedRequest {
		mu.Lock()
		defer mu.Unlock()
		return append([]capturedRequest(nil), got...)
	}
}

func respondJSON(body string) func(w http.ResponseWriter) {
	return func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}
}

// ── construction ─────────────────────────────────────────────────────────────

func TestNewHTTPRequestHelper_InvalidAddress(t *testing.T) {
	_, err := NewHTTPRequestHelper(config.ClientAdapter{}, logger.Nop())
	require.Error(t, err)
}

func TestNewHTTPRequestHelper_UnsupportedScheme(t *testing.T) {
	_, err := NewHTTPRequestHelper(config.ClientAdapter{HTTPAddress: "ftp://localhost:3000/api/"}, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported scheme")
}

func TestNewHTTPRequestHelper_TrimsBaseURL(t *testing.T) {
	h := newTestHelper(t, " http://localhost:3000/api/ ")
	assert.Equal(t, "http://localhost:3000/api", h.client.BaseURL)
}

// ── verbs ────────────────────────────────────────────────────────────────────

func TestRequestHelper_VerbsSendBodyAndHeaders(t *testing.T) {
	srv, got := captureServer(t, respondJSON(`{"status":200,"error":null,"response":"ok"}`))
	h := newTestHelper(t, srv.URL+"/api/")
	ctx := context.Background()

	body := models.NewPayload().
		WithCredentials(models.Credentials{Username: "alice", Password: "secret"}).
		Set(models.FieldFundID, "")

	calls := []struct {
		method string
		call   func() (models.Envelope, error)
	}{
		{http.MethodGet, func() (models.Envelope, error) { return h.Get(ctx, "funds", body) }},
		{http.MethodPost, func() (models.Envelope, error) { return h.Post(ctx, "pledges", body) }},
		{http.MethodPut, func() (models.Envelope, error) { return h.Put(ctx, "funds/3", body) }},
	}

	for _, c := range calls {
		env, err := c.call()
		require.NoError(t, err, c.method)
		assert.True(t, env.OK(), c.method)
	}

	reqs := got()
	require.Len(t, reqs, len(calls))
	for i, c := range calls {
		req := reqs[i]
		assert.Equal(t, c.method, req.method)
		assert.Equal(t, map[string]any{"AuthUsername": "alice", "AuthPassword": "secret"}, req.body,
			"blank fields must be omitted and credentials sent on %s", c.method)
		assert.NotEmpty(t, req.requestID)
	}
	assert.Equal(t, "/api/funds", reqs[0].path)
	assert.Equal(t, "/api/pledges", reqs[1].path)
	assert.Equal(t, "/api/funds/3", reqs[2].path)
	assert.NotEqual(t, reqs[0].requestID, reqs[1].requestID)
}

func TestRequestHelper_Delete(t *testing.T) {
	srv, got := captureServer(t, respondJSON(`{"status":200,"response":null}`))
	h := newTestHelper(t, srv.URL+"/api/")

	body := models.NewPayload().WithCredentials(models.Credentials{Username: "admin", Password: "pw"})
	env, err := h.Delete(context.Background(), "pledges/4", body)
	require.NoError(t, err)
	assert.True(t, env.OK())

	reqs := got()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodDelete, reqs[0].method)
	assert.Equal(t, "/api/pledges/4", reqs[0].path)
	assert.Equal(t, "admin", reqs[0].body[models.FieldAuthUsername])
	assert.Equal(t, "pw", reqs[0].body[models.FieldAuthPassword])
}

func TestRequestHelper_ErrorEnvelope(t *testing.T) {
	srv, _ := captureServer(t, respondJSON(`{"status":400,"error":"Incorrect password","response":null}`))
	h := newTestHelper(t, srv.URL+"/api/")

	env, err := h.Get(context.Background(), "role/", nil)
	require.NoError(t, err, "a refused envelope is not a transport error")
	assert.False(t, env.OK())
	assert.Equal(t, 400, env.Status)
	assert.Equal(t, "Incorrect password", env.Error.String())
}

func TestRequestHelper_StatusFallsBackToHTTPCode(t *testing.T) {
	srv, _ := captureServer(t, func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"error":"forbidden"}`)
	})
	h := newTestHelper(t, srv.URL+"/api/")

	env, err := h.Get(context.Background(), "funds", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, env.Status)
	assert.Equal(t, "forbidden", env.Error.String())
}

func TestRequestHelper_MalformedJSON(t *testing.T) {
	srv, _ := captureServer(t, respondJSON(`<html>oops</html>`))
	h := newTestHelper(t, srv.URL+"/api/")

	_, err := h.Get(context.Background(), "funds", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestRequestHelper_NonEnvelopeHTTPError(t *testing.T) {
	srv, _ := captureServer(t, func(w http.ResponseWriter) {
		w.WriteHeader(http.StatusBadGateway)
	})
	h := newTestHelper(t, srv.URL+"/api/")

	_, err := h.Get(context.Background(), "funds", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedResponse)
	assert.Contains(t, err.Error(), "502")
}

func TestRequestHelper_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL + "/api/"
	srv.Close()

	h := newTestHelper(t, baseURL)
	_, err := h.Get(context.Background(), "funds", nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRejected)
}

func TestRequestHelper_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	h, err := NewHTTPRequestHelper(config.ClientAdapter{
		HTTPAddress:    srv.URL + "/api/",
		RequestTimeout: 50 * time.Millisecond,
	}, logger.Nop())
	require.NoError(t, err)

	_, err = h.Get(context.Background(), "funds", nil)
	require.Error(t, err)
}

func TestStatusError(t *testing.T) {
	err := error(&StatusError{Status: 400, Message: "Incorrect password"})

	assert.ErrorIs(t, err, ErrRejected)
	assert.Equal(t, "api status 400: Incorrect password", err.Error())
	assert.Equal(t, "api status 500", (&StatusError{Status: 500}).Error())
}
