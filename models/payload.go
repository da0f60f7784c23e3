package models

// Payload is a JSON request body built field by field. Set skips empty
// strings and nil values, so optional fields never reach the server blank.
//
//	body := models.NewPayload().
//	    WithCredentials(creds).
//	    Set("FundID", fundID)
type Payload map[string]any

// Payload field names understood by the API.
const (
	FieldAuthUsername   = "AuthUsername"
	FieldAuthPassword   = "AuthPassword"
	FieldFundID         = "FundID"
	FieldFundAccessible = "FundAccessible"
	FieldAmount         = "Amount"
)

// NewPayload returns an empty payload.
func NewPayload() Payload {
	return make(Payload)
}

// Set stores value under key unless value is nil or an empty string.
func (p Payload) Set(key string, value any) Payload {
	switch v := value.(type) {
	case nil:
		return p
	case string:
		if v == "" {
			return p
		}
	}

	p[key] = value
	return p
}

// WithCredentials adds the auth fields every endpoint expects.
func (p Payload) WithCredentials(c Credentials) Payload {
	return p.
		Set(FieldAuthUsername, c.Username).
		Set(FieldAuthPassword, c.Password)
}
