// Package normalize decodes list responses whose envelope varies between
// endpoints: a bare array, an object wrapping the array in "data", or a
// single object.
package normalize

import (
	"bytes"
	"encoding/json"

	"github.com/rs/zerolog"
)

// Page is a decoded list response. Total, Page and Limit come from the
// envelope when present; Total falls back to len(Items).
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page,omitempty"`
	Limit int `json:"limit,omitempty"`
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Total *int            `json:"total"`
	Page  *int            `json:"page"`
	Limit *int            `json:"limit"`
}

// List extracts the entity list from raw. It never fails: shapes it cannot
// read are logged and yield an empty list.
func List[T any](log zerolog.Logger, raw json.RawMessage) []T {
	return DecodePage[T](log, raw).Items
}

// DecodePage extracts the entity list and pagination fields from raw.
func DecodePage[T any](log zerolog.Logger, raw json.RawMessage) Page[T] {
	items, env := decode[T](log, raw)
	page := Page[T]{Items: items, Total: len(items)}
	if env == nil {
		return page
	}
	if env.Total != nil {
		page.Total = *env.Total
	}
	if env.Page != nil {
		page.Page = *env.Page
	}
	if env.Limit != nil {
		page.Limit = *env.Limit
	}
	return page
}

func decode[T any](log zerolog.Logger, raw json.RawMessage) ([]T, *envelope) {
	trimmed := bytes.TrimSpace(raw)

	switch kind(trimmed) {
	case '[':
		return decodeArray[T](log, trimmed), nil
	case '{':
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err == nil && kind(bytes.TrimSpace(env.Data)) == '[' {
			return decodeArray[T](log, env.Data), &env
		}

		var single T
		if err := json.Unmarshal(trimmed, &single); err != nil {
			log.Warn().Err(err).Str("payload", preview(trimmed)).Msg("Unexpected list response shape")
			return []T{}, nil
		}
		return []T{single}, nil
	default:
		log.Warn().Str("payload", preview(trimmed)).Msg("Unexpected list response shape")
		return []T{}, nil
	}
}

func decodeArray[T any](log zerolog.Logger, raw json.RawMessage) []T {
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Warn().Err(err).Str("payload", preview(raw)).Msg("Failed to decode list response")
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// kind returns the first byte of a JSON value, or 0 for empty input.
func kind(raw []byte) byte {
	if len(raw) == 0 {
		return 0
	}
	return raw[0]
}

func preview(raw []byte) string {
	const max = 200
	if len(raw) > max {
		return string(raw[:max]) + "..."
	}
	return string(raw)
}
