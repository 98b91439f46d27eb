package session

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// User is the admin account cached next to the token for display. It is a
// routing hint only; the API remains the authority on permissions.
type User struct {
	ID          string `json:"id"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Role        string `json:"role,omitempty"`
	IsApproved  bool   `json:"is_approved"`
}

// DisplayName returns the best available name for the user.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Email
}

// UnmarshalJSON accepts the shapes the backend has been seen to send: numeric
// or string ids, "name" in place of "full_name", and is_approved as a bool,
// 0/1 or a quoted boolean.
func (u *User) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID          json.RawMessage `json:"id"`
		FullName    string          `json:"full_name"`
		Name        string          `json:"name"`
		Email       string          `json:"email"`
		PhoneNumber string          `json:"phone_number"`
		Role        string          `json:"role"`
		IsApproved  json.RawMessage `json:"is_approved"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	id, err := decodeID(raw.ID)
	if err != nil {
		return fmt.Errorf("user id: %w", err)
	}
	approved, err := decodeFlag(raw.IsApproved)
	if err != nil {
		return fmt.Errorf("user is_approved: %w", err)
	}

	*u = User{
		ID:          id,
		FullName:    raw.FullName,
		Email:       raw.Email,
		PhoneNumber: raw.PhoneNumber,
		Role:        raw.Role,
		IsApproved:  approved,
	}
	if u.FullName == "" {
		u.FullName = raw.Name
	}
	return nil
}

func decodeID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		err := json.Unmarshal(raw, &s)
		return s, err
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}

func decodeFlag(raw json.RawMessage) (bool, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return false, nil
	}
	switch raw[0] {
	case 't', 'f':
		var b bool
		err := json.Unmarshal(raw, &b)
		return b, err
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return false, err
		}
		return strconv.ParseBool(strings.TrimSpace(s))
	default:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return false, err
		}
		f, err := n.Float64()
		return f != 0, err
	}
}
