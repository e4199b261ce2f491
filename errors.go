package corner

// CornerError extends the standard error interface with debugging decoration:
// a fixed helpful message, a support link, and on-demand source snippets taken
// from the call stack captured when the error was constructed.
//
// CornerError is a single capability attached to any error value through the
// package constructors, so every variant shares one implementation regardless
// of what it wraps. It remains compatible with standard library error
// handling (errors.Is, errors.As, errors.Unwrap).
type CornerError interface {
	error

	// Kind returns the variant tag identifying the type of error.
	Kind() Kind

	// Message returns the underlying human-readable error message, unchanged.
	Message() string

	// HelpfulMessage returns the fixed debugging hint for this variant.
	// It is never empty.
	HelpfulMessage() string

	// SupportLink returns the fixed support URL for this variant.
	SupportLink() string

	// Snippet returns a block of source text surrounding the line recorded
	// in the captured stack frame selected by frameOffset. Offset 0 is the
	// frame at which the error was raised; larger offsets walk toward outer
	// callers and clip to the outermost frame once past the end.
	//
	// The window spans linesBefore lines above and linesAfter lines below
	// the frame's own line, clipped to the file. A missing stack, a virtual
	// frame, or an unreadable file yields ("", nil) rather than a failure.
	// Negative arguments return ErrNegativeArgument.
	Snippet(linesBefore, linesAfter, frameOffset int) (string, error)

	// Stack returns the call stack captured at construction time,
	// innermost frame first. Returns nil if capture was unavailable.
	Stack() Stack

	// Unwrap returns the wrapped error for errors.Is and errors.As
	// compatibility. Returns nil if this error does not wrap another error.
	Unwrap() error
}
