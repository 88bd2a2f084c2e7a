// Package fetch is a thin JSON-aware layer over an HTTP client: build
// the request, issue it once, and either decode the body or classify
// the failure. It performs no retries, no caching, and no logging.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync/atomic"
	"time"

	"github.com/wesleyorama2/jfetch/pkg/querystring"
)

// jsonMediaType accepts application/json and vendor types such as
// application/vnd.api+json, with or without parameters.
var jsonMediaType = regexp.MustCompile(`(?i)^application/(?:[a-z0-9!#$&^_.-]+\+)?json\s*(?:;|$)`)

// Do issues a single HTTP request and interprets the response as JSON.
//
// On a response with status below 500 and a JSON Content-Type it
// returns a Response whose Body is the decoded value (nil for an empty
// body). Every other outcome is a classified *Error, with one
// exception: when the caller cancels ctx before the request settles,
// Do returns an empty Response and a nil error. Deliberate
// cancellation is not a failure here; it is "no error, no data".
//
// The timeout (DefaultTimeout unless WithTimeout says otherwise) races
// the transport call; when it fires first the result is a KindTimeout
// error. Caller cancellation and timer fire in the same instant is a
// race, and whichever lands first decides the outcome.
func Do(ctx context.Context, rawURL string, opts ...Option) (*Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	o := newOptions(opts)

	target := rawURL
	if len(o.searchParams) > 0 {
		sep := "?"
		if strings.Contains(rawURL, "?") {
			sep = "&"
		}
		target = rawURL + sep + querystring.Encode(o.searchParams)
	}

	// The child context is the single cancellation signal bound into
	// the transport request; a signal the caller smuggled in via the
	// request is never used.
	callCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	req, err := buildRequest(callCtx, target, o)
	if err != nil {
		return nil, err
	}

	// The timer callback runs on its own goroutine, so the timed-out
	// flag is atomic. It is the only thing distinguishing a timeout
	// from a caller-initiated abort.
	var timedOut atomic.Bool
	if d := o.effectiveTimeout(); d > 0 {
		timer := time.AfterFunc(d, func() {
			timedOut.Store(true)
			cancel()
		})
		defer timer.Stop()
	}

	resp, err := o.client.Do(req)
	if err != nil {
		if callCtx.Err() != nil {
			if timedOut.Load() {
				return nil, timeoutError(target, o.effectiveTimeout())
			}
			return &Response{}, nil
		}
		return nil, &Error{
			Kind:    KindTransport,
			URL:     target,
			Message: err.Error(),
			Err:     err,
		}
	}

	if resp.StatusCode >= 500 {
		resp.Body.Close()
		return nil, &Error{
			Kind:    KindNetwork,
			URL:     target,
			Message: fmt.Sprintf("%s responded with %d.", target, resp.StatusCode),
		}
	}

	contentType := resp.Header.Get("Content-Type")
	if !jsonMediaType.MatchString(contentType) {
		resp.Body.Close()
		return nil, &Error{
			Kind:    KindContentType,
			URL:     target,
			Message: fmt.Sprintf("%s responded with Content-Type %s.", target, contentType),
		}
	}

	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		if callCtx.Err() != nil {
			if timedOut.Load() {
				return nil, timeoutError(target, o.effectiveTimeout())
			}
			return &Response{}, nil
		}
		return nil, &Error{
			Kind:    KindTransport,
			URL:     target,
			Message: err.Error(),
			Err:     err,
		}
	}

	result := &Response{Raw: resp, rawBody: raw}
	if len(raw) == 0 {
		return result, nil
	}
	if err := json.Unmarshal(raw, &result.Body); err != nil {
		return nil, &Error{
			Kind:    KindTransport,
			URL:     target,
			Message: err.Error(),
			Err:     err,
		}
	}
	return result, nil
}

func timeoutError(target string, d time.Duration) *Error {
	return &Error{
		Kind:    KindTimeout,
		URL:     target,
		Message: fmt.Sprintf("%s timed out after %dms.", target, d.Milliseconds()),
	}
}

// buildRequest derives the effective transport request from the
// caller's options without mutating any of them.
func buildRequest(ctx context.Context, target string, o *options) (*http.Request, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, &Error{
			Kind:    KindTransport,
			URL:     target,
			Message: err.Error(),
			Err:     err,
		}
	}
	if u.User != nil {
		return nil, &Error{
			Kind:    KindTransport,
			URL:     target,
			Message: fmt.Sprintf("%s must not include embedded credentials.", target),
		}
	}

	var body io.Reader
	switch {
	case o.hasJSONBody:
		encoded, err := json.Marshal(o.jsonBody)
		if err != nil {
			return nil, &Error{
				Kind:    KindTransport,
				URL:     target,
				Message: err.Error(),
				Err:     err,
			}
		}
		body = bytes.NewReader(encoded)
	case o.body != nil:
		body = bytes.NewReader(o.body)
	}

	req, err := http.NewRequestWithContext(ctx, o.method, target, body)
	if err != nil {
		return nil, &Error{
			Kind:    KindTransport,
			URL:     target,
			Message: err.Error(),
			Err:     err,
		}
	}

	for key, values := range o.headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	if o.hasJSONBody && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}
