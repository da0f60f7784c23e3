// Package adapter provides the transport layer between the client and the
// fund REST API.
//
// [RequestHelper] is the low-level HTTP helper: one call per verb, a JSON
// payload in, a decoded [models.Envelope] out. [FundAPI] builds on it with one
// typed method per endpoint, decoding each response payload into its schema
// before anyone touches a field.
//
// Errors fall in two groups. A request the server answered with a non-200
// envelope status is a [*StatusError] (matching [ErrRejected]); callers may
// recover from it. Everything else (transport failures, undecodable bodies,
// [ErrMalformedResponse]) means the conversation with the server broke.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-fund-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/fund_api_mock.go -package=mock

// RequestHelper issues a single synchronous request per call. The payload is
// always sent as the JSON body, GET and DELETE included. No retries are made.
type RequestHelper interface {
	// Get sends a GET request to path, relative to the configured base URL.
	Get(ctx context.Context, path string, body models.Payload) (models.Envelope, error)

	// Post sends a POST request to path.
	Post(ctx context.Context, path string, body models.Payload) (models.Envelope, error)

	// Put sends a PUT request to path.
	Put(ctx context.Context, path string, body models.Payload) (models.Envelope, error)

	// Delete sends a DELETE request to path.
	Delete(ctx context.Context, path string, body models.Payload) (models.Envelope, error)
}

// FundAPI is the typed view of the endpoints the client uses. Every method
// authenticates with creds.
type FundAPI interface {
	// ResolveRole looks up the role and account ID behind creds.
	// Rejected credentials yield a [*StatusError].
	ResolveRole(ctx context.Context, creds models.Credentials) (models.RoleInfo, error)

	// ListFunds returns every fund visible to the caller.
	ListFunds(ctx context.Context, creds models.Credentials) ([]models.Fund, error)

	// SetFundAccessibility switches the accessible flag of fundID.
	SetFundAccessibility(ctx context.Context, creds models.Credentials, fundID string, accessible bool) error

	// ListNonProfits returns every nonprofit.
	ListNonProfits(ctx context.Context, creds models.Credentials) ([]models.NonProfit, error)

	// ListPledgers returns every pledger, with unmasked contact fields.
	ListPledgers(ctx context.Context, creds models.Credentials) ([]models.Pledger, error)

	// ListAdmins returns every administrator.
	ListAdmins(ctx context.Context, creds models.Credentials) ([]models.Admin, error)

	// ListPledges returns every pledge.
	ListPledges(ctx context.Context, creds models.Credentials) ([]models.Pledge, error)

	// CreatePledge records a donation by the authenticated pledger.
	CreatePledge(ctx context.Context, creds models.Credentials, req models.PledgeRequest) error

	// ListWithdrawals returns every withdrawal.
	ListWithdrawals(ctx context.Context, creds models.Credentials) ([]models.Withdrawal, error)

	// CreateWithdrawal records a withdrawal by the authenticated nonprofit.
	CreateWithdrawal(ctx context.Context, creds models.Credentials, req models.WithdrawalRequest) error

	// ListNonProfitFunds returns the funds owned by the authenticated
	// nonprofit, with balances.
	ListNonProfitFunds(ctx context.Context, creds models.Credentials) ([]models.Fund, error)
}
