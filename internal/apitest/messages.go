package apitest

// Error messages written into the envelope "error" field. They mirror the
// wording of the real API so client output can be asserted verbatim.
const (
	// MsgUsernameNotFound is returned when AuthUsername matches no account.
	MsgUsernameNotFound = "Username not found"

	// MsgIncorrectPassword is returned when AuthPassword does not match.
	MsgIncorrectPassword = "Incorrect password"

	// MsgAccessDenied is returned when the caller's role may not use the
	// endpoint.
	MsgAccessDenied = "You do not have access"

	MsgInvalidJSON       = "invalid JSON body"
	MsgInvalidFundID     = "Invalid fund ID"
	MsgInvalidAccessible = "FundAccessible must be 0 or 1"
	MsgInvalidAmount     = "Amount must be positive"

	// MsgFundNotFound is returned by the accessibility toggle for an unknown
	// fund.
	MsgFundNotFound = "Fund not found"

	// MsgFundClosed is returned when a pledge targets a fund that is hidden
	// or missing.
	MsgFundClosed = "Fund is not accepting pledges"

	// MsgFundNotOwned is returned when a nonprofit withdraws from a fund it
	// does not own.
	MsgFundNotOwned = "Fund does not belong to you"

	// MsgInsufficientBalance is returned when a withdrawal exceeds the
	// fund's balance.
	MsgInsufficientBalance = "Insufficient balance"
)
