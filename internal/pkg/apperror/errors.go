package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies an error for callers and transports
type Kind int

const (
	Internal Kind = iota
	InvalidArgument
	InsufficientFunds
	NotFound
	Forbidden
	Conflict
	ServiceUnavailable
)

var kindNames = map[Kind]string{
	Internal:           "internal",
	InvalidArgument:    "invalid_argument",
	InsufficientFunds:  "insufficient_funds",
	NotFound:           "not_found",
	Forbidden:          "forbidden",
	Conflict:           "conflict",
	ServiceUnavailable: "service_unavailable",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "internal"
}

// Error is a typed application error
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// New creates an error of the given kind
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a kind to an underlying error
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error of the same kind and message, so sentinels
// keep working after being wrapped with fmt.Errorf.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

// Code is the machine readable error code returned to clients
func (e *Error) Code() string {
	return e.Kind.String()
}

var (
	ErrInvalidAmount      = New(InvalidArgument, "amount must be a positive integer")
	ErrInsufficientFunds  = New(InsufficientFunds, "insufficient funds")
	ErrAccountNotFound    = New(NotFound, "account not found")
	ErrTripNotFound       = New(NotFound, "trip not found")
	ErrRequestNotFound    = New(NotFound, "ride request not found")
	ErrUnknownActor       = New(Forbidden, "unknown actor")
	ErrTxConflict         = New(Conflict, "transaction conflict, retry later")
	ErrStoreUnavailable   = New(ServiceUnavailable, "store unavailable")
	ErrTripNotCompleted   = New(Conflict, "trip is not completed")
	ErrTripAlreadyRated   = New(Conflict, "trip already rated")
	ErrTripAlreadyCharged = New(Conflict, "trip already charged")
	ErrInvalidTrackingKey = New(Forbidden, "invalid tracking token")
)

// Invalid is shorthand for a validation failure
func Invalid(message string) *Error {
	return New(InvalidArgument, message)
}

// KindOf returns the kind of the first *Error in err's chain
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return Internal
}

// HTTPStatus maps an error kind to its HTTP status code
func HTTPStatus(kind Kind) int {
	switch kind {
	case InvalidArgument:
		return http.StatusBadRequest
	case InsufficientFunds, Conflict:
		return http.StatusConflict
	case NotFound:
		return http.StatusNotFound
	case Forbidden:
		return http.StatusForbidden
	case ServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
