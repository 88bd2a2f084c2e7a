package fetch

import (
	"encoding/json"
	"net/http"
)

// Response is the successful result of a Do call.
//
// Body holds the decoded JSON value: a map, slice, string, float64,
// bool, or nil when the response body was empty. Raw keeps the
// underlying response for status and header access; its body has
// already been consumed. Both fields are nil when the caller aborted
// the request before it completed.
type Response struct {
	Body any
	Raw  *http.Response

	rawBody []byte
}

// Bytes returns the raw response body text.
func (r *Response) Bytes() []byte {
	return r.rawBody
}

// JSON unmarshals the response body into v for callers that want a
// typed result instead of the generic Body value.
func (r *Response) JSON(v any) error {
	return json.Unmarshal(r.rawBody, v)
}

// StatusCode returns the response status, or 0 if no response was
// received (caller abort).
func (r *Response) StatusCode() int {
	if r.Raw == nil {
		return 0
	}
	return r.Raw.StatusCode
}

// Header returns a response header value, or "" if no response was
// received.
func (r *Response) Header(key string) string {
	if r.Raw == nil {
		return ""
	}
	return r.Raw.Header.Get(key)
}
