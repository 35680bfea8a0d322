package alks

import "errors"

// ErrorKind classifies a failed operation.
type ErrorKind int

const (
	// ErrTransport means the HTTP request never completed (connection
	// failure, timeout, cancellation). Nothing is retried internally.
	ErrTransport ErrorKind = iota

	// ErrBadResponse means the server answered with a non-200 status.
	ErrBadResponse

	// ErrOperationFailed means the server answered 200 but reported a
	// logical failure via its status field or error list.
	ErrOperationFailed

	// ErrUpstreamProtocol means a well-formed 200 response was missing an
	// expected field.
	ErrUpstreamProtocol
)

func (k ErrorKind) String() string {
	switch k {
	case ErrTransport:
		return "transport"
	case ErrBadResponse:
		return "bad response"
	case ErrOperationFailed:
		return "operation failed"
	case ErrUpstreamProtocol:
		return "upstream protocol"
	default:
		return "unknown"
	}
}

// Error is the single normalized failure value every operation returns.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the ErrorKind from err, if err came from this package.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.Kind, true
	}
	return 0, false
}

func transportError(err error) *Error {
	return &Error{Kind: ErrTransport, Message: err.Error(), Err: err}
}
