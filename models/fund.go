// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Fund is a donation fund as returned by the funds and nonprofitfunds
// endpoints. The only field the client ever changes is Accessible, and only
// through the admin toggle.
type Fund struct {
	ID          int64  `json:"FundID"`
	Name        string `json:"FundName"`
	Description string `json:"FundDescription"`

	// Accessible reports whether pledgers may donate to the fund.
	Accessible Flag `json:"FundAccessible"`

	// Balance is the amount currently held by the fund.
	Balance Amount `json:"FundBalance"`
}

// Key returns the fund ID in the form users type it at the prompt.
func (f Fund) Key() string {
	return strconv.FormatInt(f.ID, 10)
}

// Flag is a boolean that tolerates the encodings a SQL-backed API produces:
// JSON booleans, 0/1 numbers, and their string forms.
type Flag bool

// UnmarshalJSON implements [json.Unmarshaler].
func (f *Flag) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = false
		return nil
	}

	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case bool:
		*f = Flag(value)
	case float64:
		*f = value != 0
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("invalid flag value %q", value)
		}
		*f = Flag(parsed)
	default:
		return fmt.Errorf("invalid flag value %s", string(b))
	}

	return nil
}

// Amount is a money value. DECIMAL columns often arrive as strings, so
// both numbers and numeric strings are accepted when decoding.
type Amount float64

// UnmarshalJSON implements [json.Unmarshaler].
func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*a = 0
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q", s)
		}
		*a = Amount(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("invalid amount %s", string(b))
	}
	*a = Amount(v)
	return nil
}

// String formats the amount with two decimal places.
func (a Amount) String() string {
	return strconv.FormatFloat(float64(a), 'f', 2, 64)
}

// RoundAmount rounds v to cents.
func RoundAmount(v float64) float64 {
	return math.Round(v*100) / 100
}
