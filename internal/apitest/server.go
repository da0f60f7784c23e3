// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apitest runs an in-memory imitation of the fund REST API for
// tests. It speaks the same envelope protocol as the real server, checks
// credentials on every call, enforces per-role access and keeps fund balances
// consistent across pledges and withdrawals.
package apitest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"sync"
	"testing"

	"github.com/MKhiriev/go-fund-client/internal/logger"
	"github.com/MKhiriev/go-fund-client/internal/utils"
	"github.com/MKhiriev/go-fund-client/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// User is an account known to the fake server.
type User struct {
	Username string
	Password string
	Role     models.Role
	ID       int64
}

// Credentials returns the login pair of u.
func (u User) Credentials() models.Credentials {
	return models.Credentials{Username: u.Username, Password: u.Password}
}

// Seeded accounts.
var (
	AdminUser     = User{Username: "admin", Password: "admin-pass", Role: models.RoleAdmin, ID: 1}
	PledgerUser   = User{Username: "pledger", Password: "pledger-pass", Role: models.RolePledger, ID: 10}
	NonProfitUser = User{Username: "charity", Password: "charity-pass", Role: models.RoleNonProfit, ID: 20}
)

// Request is a call received by the server.
type Request struct {
	Method    string
	Path      string
	RequestID string
	Body      map[string]any
}

type failure struct {
	status  int
	message string
}

// Server is the fake API. Its zero value is not usable; call [NewServer].
type Server struct {
	*httptest.Server

	mu          sync.Mutex
	users       map[string]User
	funds       []models.Fund
	owners      map[int64]int64
	nonProfits  []models.NonProfit
	pledgers    []models.Pledger
	admins      []models.Admin
	pledges     []models.Pledge
	withdrawals []models.Withdrawal
	failures    map[string]failure
	requests    []Request

	logger *logger.Logger
}

// NewServer starts a seeded server that is closed when the test ends.
//
// Seed funds: 1 "Food Bank" (accessible, 500.00), 2 "Shelter" (hidden,
// 100.00), both owned by [NonProfitUser]; 3 "Schools" (hidden, 0.00) owned by
// another nonprofit.
func NewServer(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		users: map[string]User{
			AdminUser.Username:     AdminUser,
			PledgerUser.Username:   PledgerUser,
			NonProfitUser.Username: NonProfitUser,
		},
		funds: []models.Fund{
			{ID: 1, Name: "Food Bank", Description: "Meals for families", Accessible: true, Balance: 500},
			{ID: 2, Name: "Shelter", Description: "Winter beds", Accessible: false, Balance: 100},
			{ID: 3, Name: "Schools", Description: "Books and supplies", Accessible: false, Balance: 0},
		},
		owners: map[int64]int64{1: NonProfitUser.ID, 2: NonProfitUser.ID, 3: 21},
		nonProfits: []models.NonProfit{
			{ID: NonProfitUser.ID, Name: "Upper Valley Aid", Description: "Local relief", Email: "aid@example.org"},
			{ID: 21, Name: "Read Together", Description: "Literacy", Email: "read@example.org"},
		},
		pledgers: []models.Pledger{
			{ID: PledgerUser.ID, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.org",
				PhoneNumber: "603-555-1234", CreditCardNumber: "4111111111111111"},
		},
		admins: []models.Admin{
			{ID: AdminUser.ID, Name: "Grace Hopper", Email: "grace@example.org"},
		},
		failures: make(map[string]failure),
		logger:   &logger.Logger{Logger: zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)},
	}

	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)

	return s
}

// BaseURL returns the API root in the form the client is configured with.
func (s *Server) BaseURL() string {
	return s.URL + "/api/"
}

// FailOn makes every later request matching method and path (as sent, e.g.
// "/api/pledges") answer with the given envelope status and error.
func (s *Server) FailOn(method, path string, status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method+" "+path] = failure{status: status, message: message}
}

// Requests returns the calls received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.requests)
}

// Fund returns the current state of fund id.
func (s *Server) Fund(id int64) (models.Fund, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.fundIndex(id)
	if i < 0 {
		return models.Fund{}, false
	}
	return s.funds[i], true
}

// Pledges returns the pledges recorded so far.
func (s *Server) Pledges() []models.Pledge {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.pledges)
}

// Withdrawals returns the withdrawals recorded so far.
func (s *Server) Withdrawals() []models.Withdrawal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.withdrawals)
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.StripSlashes)
	r.Use(s.withRequestID)
	r.Use(withLogging)
	r.Use(s.record)

	r.Route("/api", func(r chi.Router) {
		r.Get("/role", s.handleRole)
		r.Get("/funds", s.authorized(s.handleListFunds))
		r.Put("/funds/{id}", s.authorized(s.handleSetAccessibility, models.RoleAdmin))
		r.Get("/nonprofits", s.authorized(s.handleListNonProfits, models.RoleAdmin))
		r.Get("/pledgers", s.authorized(s.handleListPledgers, models.RoleAdmin))
		r.Get("/admins", s.authorized(s.handleListAdmins, models.RoleAdmin))
		r.Get("/pledges", s.authorized(s.handleListPledges, models.RoleAdmin))
		r.Post("/pledges", s.authorized(s.handleCreatePledge, models.RolePledger))
		r.Get("/withdrawals", s.authorized(s.handleListWithdrawals, models.RoleAdmin))
		r.Post("/withdrawals", s.authorized(s.handleCreateWithdrawal, models.RoleNonProfit))
		r.Get("/nonprofitfunds", s.authorized(s.handleListNonProfitFunds, models.RoleNonProfit))
	})

	return r
}

type bodyCtxKey struct{}

// record stores every request and makes its decoded body available to
// handlers. Configured failures short-circuit here.
func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(raw))

		body := map[string]any{}
		if len(bytes.TrimSpace(raw)) > 0 {
			if err := json.Unmarshal(raw, &body); err != nil {
				writeEnvelope(w, http.StatusBadRequest, MsgInvalidJSON, nil)
				return
			}
		}

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:    r.Method,
			Path:      r.URL.Path,
			RequestID: r.Header.Get(requestIDHeader),
			Body:      body,
		})
		fail, failing := s.failures[r.Method+" "+r.URL.Path]
		s.mu.Unlock()

		if failing {
			writeEnvelope(w, fail.status, fail.message, nil)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), bodyCtxKey{}, body)))
	})
}

func requestBody(r *http.Request) map[string]any {
	body, _ := r.Context().Value(bodyCtxKey{}).(map[string]any)
	return body
}

type envelope struct {
	Status   int `json:"status"`
	Error    any `json:"error"`
	Response any `json:"response"`
}

func writeEnvelope(w http.ResponseWriter, status int, errMsg string, response any) {
	var e any
	if errMsg != "" {
		e = errMsg
	}
	_, _ = utils.WriteJSON(w, envelope{Status: status, Error: e, Response: response}, http.StatusOK)
}
