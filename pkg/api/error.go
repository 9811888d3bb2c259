package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Error is a failed API call. It keeps the HTTP status and whatever the
// server put into the body: a "detail" message, field-level validation
// messages, or nothing parseable at all.
type Error struct {
	StatusCode int
	Detail     string
	Fields     map[string][]string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("API responded with %d: %s", e.StatusCode, e.Detail)
	}

	return fmt.Sprintf("API responded with %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// FieldMessage returns the first validation message the server reported for
// the named field, or "" when there is none.
func (e *Error) FieldMessage(field string) string {
	if messages, ok := e.Fields[field]; ok && len(messages) > 0 {
		return messages[0]
	}

	return ""
}

// IsNotFound reports whether the error is an HTTP 404 from the API.
func (e *Error) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// newError builds an *Error from a non-2xx response. The body is parsed
// defensively since error payloads are not uniform: record endpoints answer
// with per-field message lists, detail endpoints with a "detail" string.
func newError(res *http.Response) *Error {
	apiError := &Error{StatusCode: res.StatusCode}

	body, err := io.ReadAll(io.LimitReader(res.Body, 1<<16))
	if err != nil || len(body) == 0 {
		return apiError
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return apiError
	}

	for field, value := range raw {
		if field == "detail" || field == "error" {
			_ = json.Unmarshal(value, &apiError.Detail)
			continue
		}

		var messages []string
		if err := json.Unmarshal(value, &messages); err != nil {
			continue
		}

		if apiError.Fields == nil {
			apiError.Fields = make(map[string][]string)
		}
		apiError.Fields[field] = messages
	}

	return apiError
}
