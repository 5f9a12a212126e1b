package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// APIError is a non-2xx backend response, carried unchanged (status + raw
// body) so callers and the interceptor can interpret it.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d", e.StatusCode)
}

// errorBody mirrors the backend's error envelope. The Django REST details
// map holds per-field message lists plus an optional non_field_errors list.
type errorBody struct {
	Details map[string]json.RawMessage `json:"details"`
	Err     string                     `json:"error"`
}

// ExtractMessage derives a plain-text, user-facing message from any error
// produced by the client. Lookup order: details.non_field_errors, then the
// first field error ("field: message"), then the body's error string, then a
// generic message keyed by status class, then a catch-all.
func ExtractMessage(err error) string {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		// Transport-level failure, no HTTP status at all.
		return "Cannot connect to server. Please check your internet connection."
	}

	var body errorBody
	if len(apiErr.Body) > 0 && json.Unmarshal(apiErr.Body, &body) == nil {
		if msg := firstDetail(body.Details); msg != "" {
			return msg
		}
		if body.Err != "" {
			return body.Err
		}
	}

	switch {
	case apiErr.StatusCode == 401:
		return "Invalid credentials. Please try again."
	case apiErr.StatusCode == 400:
		return "Invalid request. Please check your input."
	case apiErr.StatusCode >= 500:
		return "Server error. Please try again later."
	}

	return "An unexpected error occurred. Please try again."
}

func firstDetail(details map[string]json.RawMessage) string {
	if len(details) == 0 {
		return ""
	}

	if msgs := messageList(details["non_field_errors"]); len(msgs) > 0 {
		return msgs[0]
	}

	// Field iteration order is made deterministic so the surfaced message
	// is stable across calls.
	fields := make([]string, 0, len(details))
	for f := range details {
		if f != "non_field_errors" {
			fields = append(fields, f)
		}
	}
	sort.Strings(fields)

	for _, f := range fields {
		if msgs := messageList(details[f]); len(msgs) > 0 {
			return fmt.Sprintf("%s: %s", f, msgs[0])
		}
	}
	return ""
}

func messageList(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil && single != "" {
		return []string{single}
	}
	return nil
}
