package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Pledger is a donor account. PhoneNumber and CreditCardNumber are
// sensitive and are masked whenever they are displayed.
type Pledger struct {
	ID               int64  `json:"PledgerID"`
	FirstName        string `json:"FirstName"`
	LastName         string `json:"LastName"`
	Email            string `json:"Email"`
	PhoneNumber      Text   `json:"PhoneNumber"`
	CreditCardNumber Text   `json:"CreditCardNumber"`
}

// Admin is an administrator account.
type Admin struct {
	ID    int64  `json:"AdminID"`
	Name  string `json:"AdminName"`
	Email string `json:"Email"`
}

// Text is a string field that the server may also send as a bare number.
// Numbers keep their literal digits; null decodes to "".
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("invalid text value %s", string(b))
	}
	*t = Text(n.String())
	return nil
}

func (t Text) String() string {
	return string(t)
}
