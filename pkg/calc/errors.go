package calc

import "fmt"

// Kind classifies calculator failures
type Kind int

const (
	// KindDivisionByZero is a division or modulo by zero
	KindDivisionByZero Kind = iota
	// KindDomain is a mathematically undefined input
	KindDomain
	// KindNothingToUndo is an undo with no prior step
	KindNothingToUndo
	// KindInvalidExpression is an expression that fails to parse or uses a disallowed construct
	KindInvalidExpression
)

// String returns the Kind's string representation
func (k Kind) String() string {
	switch k {
	case KindDivisionByZero:
		return "division_by_zero"
	case KindDomain:
		return "domain_error"
	case KindNothingToUndo:
		return "nothing_to_undo"
	case KindInvalidExpression:
		return "invalid_expression"
	default:
		return "unknown"
	}
}

// CalcError is the single error domain of the calculator. Every failed
// operation returns one, carrying a human-readable message and the kind
// the caller can match on with errors.Is against the Err* sentinels.
type CalcError struct {
	Kind    Kind
	Message string
	Cause   error
}

// Sentinel values for errors.Is matching, one per Kind.
var (
	ErrDivisionByZero    = &CalcError{Kind: KindDivisionByZero, Message: "division by zero is undefined"}
	ErrDomain            = &CalcError{Kind: KindDomain, Message: "math domain error"}
	ErrNothingToUndo     = &CalcError{Kind: KindNothingToUndo, Message: "nothing to undo"}
	ErrInvalidExpression = &CalcError{Kind: KindInvalidExpression, Message: "invalid expression"}
)

// Error implements the error interface
func (e *CalcError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any
func (e *CalcError) Unwrap() error {
	return e.Cause
}

// Is matches any CalcError of the same Kind
func (e *CalcError) Is(target error) bool {
	t, ok := target.(*CalcError)
	return ok && t.Kind == e.Kind
}

// newError creates a CalcError with a formatted message
func newError(kind Kind, format string, args ...interface{}) *CalcError {
	return &CalcError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// wrapError creates a CalcError that preserves the original error
func wrapError(cause error, kind Kind, format string, args ...interface{}) *CalcError {
	return &CalcError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}
