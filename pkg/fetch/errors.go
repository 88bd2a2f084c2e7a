package fetch

import "errors"

// ErrorKind identifies the failure class of a request.
type ErrorKind int

const (
	// KindTransport covers connection-level failures, malformed URLs,
	// and anything else the underlying client reports before a
	// response is available.
	KindTransport ErrorKind = iota
	// KindNetwork is a response with status 500 or above.
	KindNetwork
	// KindTimeout means the request timeout elapsed before the
	// response settled.
	KindTimeout
	// KindContentType is a sub-500 response whose Content-Type is not
	// a JSON media type.
	KindContentType
)

// String returns a short name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindTimeout:
		return "timeout"
	case KindContentType:
		return "content-type"
	default:
		return "transport"
	}
}

// Error is the classified failure returned by Do. Callers should
// match on Kind (via errors.As or the Is* helpers) rather than on the
// message text.
type Error struct {
	Kind    ErrorKind
	URL     string
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the underlying transport error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

func isKind(err error, kind ErrorKind) bool {
	var fe *Error
	return errors.As(err, &fe) && fe.Kind == kind
}

// IsNetwork reports whether err is a status >= 500 failure.
func IsNetwork(err error) bool { return isKind(err, KindNetwork) }

// IsTimeout reports whether err is a request timeout.
func IsTimeout(err error) bool { return isKind(err, KindTimeout) }

// IsContentType reports whether err is a non-JSON Content-Type failure.
func IsContentType(err error) bool { return isKind(err, KindContentType) }

// IsTransport reports whether err is a transport-level failure.
func IsTransport(err error) bool { return isKind(err, KindTransport) }
