// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials holds the login pair entered at the start of a session.
// They are kept in memory only and re-sent with every request, since the
// API authenticates each call individually.
type Credentials struct {
	// Username is sent as AuthUsername.
	Username string `json:"AuthUsername"`

	// Password is sent as AuthPassword. It must never be logged.
	Password string `json:"AuthPassword"`
}

// Role is the account kind resolved by the role lookup endpoint.
type Role string

const (
	RoleAdmin     Role = "Admin"
	RolePledger   Role = "Pledger"
	RoleNonProfit Role = "NonProfit"
)

// Valid reports whether r is one of the roles the client knows how to serve.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RolePledger, RoleNonProfit:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// Session describes an authenticated user for the duration of a login.
// It is discarded on logout.
type Session struct {
	// ID is a client-generated identifier used only to correlate log entries.
	ID string

	Credentials Credentials
	Role        Role

	// UserID is the account identifier returned by the role lookup.
	UserID int64
}
