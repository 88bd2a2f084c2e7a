package fetch

import (
	"net/http"
	"time"
)

// DefaultTimeout is applied when no WithTimeout option is given.
const DefaultTimeout = 30 * time.Second

// HTTPClient is the transport the orchestrator delegates to. The
// standard *http.Client satisfies it; tests substitute fakes.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// The default client carries no timeout of its own; Do owns the
// deadline via its internal timer.
var defaultClient HTTPClient = &http.Client{}

// Option configures a single Do call.
type Option func(*options)

type options struct {
	method       string
	headers      http.Header
	body         []byte
	jsonBody     any
	hasJSONBody  bool
	searchParams map[string]string
	timeout      time.Duration
	timeoutSet   bool
	client       HTTPClient
}

func newOptions(opts []Option) *options {
	o := &options{
		method:  http.MethodGet,
		headers: make(http.Header),
		client:  defaultClient,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// effectiveTimeout resolves the timer duration: the default when the
// caller set nothing, zero (disabled) when the caller asked for no
// timeout.
func (o *options) effectiveTimeout() time.Duration {
	if !o.timeoutSet {
		return DefaultTimeout
	}
	if o.timeout <= 0 {
		return 0
	}
	return o.timeout
}

// WithMethod sets the HTTP method. GET is the default.
func WithMethod(method string) Option {
	return func(o *options) {
		o.method = method
	}
}

// WithHeader adds a request header. The caller's values are copied
// into the call's own header collection and never mutated.
func WithHeader(key, value string) Option {
	return func(o *options) {
		o.headers.Set(key, value)
	}
}

// WithHeaders adds every header in the map.
func WithHeaders(headers map[string]string) Option {
	return func(o *options) {
		for k, v := range headers {
			o.headers.Set(k, v)
		}
	}
}

// WithBody sets a raw request body. A JSON body set with WithJSONBody
// takes precedence over it.
func WithBody(body []byte) Option {
	return func(o *options) {
		o.body = body
	}
}

// WithJSONBody serializes v as the request body and, unless the
// caller set one, adds a Content-Type: application/json header.
func WithJSONBody(v any) Option {
	return func(o *options) {
		o.jsonBody = v
		o.hasJSONBody = true
	}
}

// WithSearchParam adds one query parameter, appended to the URL at
// request time.
func WithSearchParam(key, value string) Option {
	return func(o *options) {
		if o.searchParams == nil {
			o.searchParams = make(map[string]string)
		}
		o.searchParams[key] = value
	}
}

// WithSearchParams adds every parameter in the map. The map is copied,
// not aliased.
func WithSearchParams(params map[string]string) Option {
	return func(o *options) {
		if o.searchParams == nil {
			o.searchParams = make(map[string]string, len(params))
		}
		for k, v := range params {
			o.searchParams[k] = v
		}
	}
}

// WithTimeout sets the request timeout. Zero or negative disables the
// timeout entirely; omitting the option applies DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
		o.timeoutSet = true
	}
}

// WithHTTPClient substitutes the transport used for this call.
func WithHTTPClient(client HTTPClient) Option {
	return func(o *options) {
		if client != nil {
			o.client = client
		}
	}
}
