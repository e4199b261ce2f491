package corner

import "fmt"

// cornerError is the concrete implementation of CornerError.
// It is private to enforce construction through package functions.
type cornerError struct {
	kind       Kind
	message    string
	decoration Decoration
	stack      Stack
	cause      error
}

// Error returns the string representation of the error.
// Format: "[Kind] message" or "[Kind] message: cause" if cause is present.
func (e *cornerError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.kind, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.kind, e.message)
}

// Kind returns the variant tag.
func (e *cornerError) Kind() Kind {
	return e.kind
}

// Message returns the error message.
func (e *cornerError) Message() string {
	return e.message
}

// HelpfulMessage returns the fixed debugging hint for the variant.
func (e *cornerError) HelpfulMessage() string {
	return e.decoration.HelpfulMessage
}

// SupportLink returns the fixed support URL for the variant.
func (e *cornerError) SupportLink() string {
	return e.decoration.SupportLink
}

// Stack returns a defensive copy of the captured stack.
// Returns nil if no stack was captured (maintains immutability).
func (e *cornerError) Stack() Stack {
	if e.stack == nil {
		return nil
	}
	stk := make(Stack, len(e.stack))
	copy(stk, e.stack)
	return stk
}

// Unwrap returns the wrapped error for standard library compatibility.
func (e *cornerError) Unwrap() error {
	return e.cause
}
