package gateway

import (
	"errors"

	"github.com/mlorentedev/writeai/internal/adapter"
	"github.com/mlorentedev/writeai/internal/task"
)

// Kind classifies a completion failure.
type Kind int

const (
	KindNone Kind = iota
	KindInvalidInput
	KindUnsupportedTask
	KindGatewayUnavailable
	KindEmptyCompletion
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindUnsupportedTask:
		return "unsupported_task"
	case KindGatewayUnavailable:
		return "gateway_unavailable"
	case KindEmptyCompletion:
		return "empty_completion"
	default:
		return "none"
	}
}

// TryLater reports whether the failure is on the upstream side, as opposed
// to something the caller must fix in the request.
func (k Kind) TryLater() bool {
	return k == KindGatewayUnavailable || k == KindEmptyCompletion
}

// Hint is the short user-facing advice for a failure kind.
func (k Kind) Hint() string {
	switch k {
	case KindInvalidInput:
		return "Please enter some text to process."
	case KindUnsupportedTask:
		return "Pick one of the available tools."
	case KindGatewayUnavailable:
		return "The AI service is unavailable. Try again later."
	case KindEmptyCompletion:
		return "The AI service returned no text. Try again later."
	default:
		return ""
	}
}

// ErrInvalidInput is returned for empty or whitespace-only text.
var ErrInvalidInput = errors.New("input text is empty")

// Error is the classified failure returned by Complete.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode returns the upstream HTTP status for unavailable errors, or 0.
func (e *Error) StatusCode() int {
	var u *adapter.UnavailableError
	if errors.As(e.Err, &u) {
		return u.StatusCode
	}
	return 0
}

// Classify maps any error onto a Kind. Errors that match no known class are
// treated as the upstream being unavailable.
func Classify(err error) Kind {
	if err == nil {
		return KindNone
	}

	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}

	switch {
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, task.ErrUnsupportedTask):
		return KindUnsupportedTask
	case errors.Is(err, adapter.ErrEmptyCompletion):
		return KindEmptyCompletion
	default:
		return KindGatewayUnavailable
	}
}

func classified(err error) *Error {
	return &Error{Kind: Classify(err), Err: err}
}
