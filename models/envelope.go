// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// StatusOK is the envelope status the API uses for success.
const StatusOK = 200

// Envelope is the body shape shared by every API response:
//
//	{"status": 200, "error": null, "response": ...}
//
// The shape of Response depends on the endpoint and is decoded by the caller
// once Status has been checked.
type Envelope struct {
	Status   int             `json:"status"`
	Error    APIMessage      `json:"error"`
	Response json.RawMessage `json:"response"`
}

// OK reports whether the server accepted the request.
func (e Envelope) OK() bool {
	return e.Status == StatusOK
}

// Decode unmarshals Response into v. A missing or null response leaves v
// untouched.
func (e Envelope) Decode(v any) error {
	raw := bytes.TrimSpace(e.Response)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	return json.Unmarshal(raw, v)
}

// APIMessage is the error text of an envelope. Servers send either a plain
// string or a driver error object; objects are reduced to their most useful
// message field.
type APIMessage string

// UnmarshalJSON implements [json.Unmarshaler].
func (m *APIMessage) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*m = ""
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*m = APIMessage(s)
	case '{':
		var obj map[string]any
		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}
		for _, key := range []string{"message", "sqlMessage", "code"} {
			if s, ok := obj[key].(string); ok && s != "" {
				*m = APIMessage(s)
				return nil
			}
		}
		*m = APIMessage(b)
	default:
		*m = APIMessage(b)
	}

	return nil
}

func (m APIMessage) String() string {
	return strings.TrimSpace(string(m))
}

// RoleInfo is the payload of the role lookup endpoint.
type RoleInfo struct {
	Role Role  `json:"role"`
	ID   int64 `json:"ID"`
}

// UnmarshalJSON accepts both {"role": "...", "ID": n} and a bare role string.
func (r *RoleInfo) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var role string
		if err := json.Unmarshal(b, &role); err != nil {
			return err
		}
		*r = RoleInfo{Role: Role(role)}
		return nil
	}

	type plain RoleInfo
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return fmt.Errorf("decode role info: %w", err)
	}
	*r = RoleInfo(p)
	return nil
}
