package corner

import "fmt"

// newError builds the concrete error, looking the decoration up in the kind
// table and capturing the stack at the caller's call site. skip is the number
// of package frames between newError and the user; every exported
// constructor sits exactly one frame above, so they all pass 1.
func newError(kind Kind, message string, cause error, skip int) *cornerError {
	return &cornerError{
		kind:       kind,
		message:    message,
		decoration: decorationFor(kind),
		stack:      captureStack(skip+1, defaultMaxDepth),
		cause:      cause,
	}
}

// New creates a new CornerError with the given kind and message.
// The helpful message and support link are looked up from the kind's
// registered decoration, and the call stack is captured at the call site.
//
// Example:
//
//	err := corner.New(corner.KindNotFound, "project not found")
func New(kind Kind, message string) CornerError {
	return newError(kind, message, nil, 1)
}

// Newf creates a new CornerError with a formatted message.
//
// Example:
//
//	err := corner.Newf(corner.KindInvalidArgument, "name too long: %d characters (max %d)", len(name), maxLen)
func Newf(kind Kind, format string, args ...interface{}) CornerError {
	return newError(kind, fmt.Sprintf(format, args...), nil, 1)
}

// Wrap wraps an error with a kind and message while preserving the original
// error. The wrapped error is accessible via Unwrap() and compatible with
// errors.Is and errors.As. The stack is captured here, at the wrap site,
// since that is where the failure surfaced to the caller.
//
// Returns nil if err is nil.
//
// Example:
//
//	data, err := os.ReadFile(path)
//	if err != nil {
//	    return corner.Wrap(err, corner.KindConfiguration, "failed to read config")
//	}
func Wrap(err error, kind Kind, message string) CornerError {
	if err == nil {
		return nil
	}
	return newError(kind, message, err, 1)
}

// Wrapf wraps an error with a formatted message while preserving the
// original error.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := validate(input); err != nil {
//	    return corner.Wrapf(err, corner.KindInvalidArgument, "validation failed for field %s", fieldName)
//	}
func Wrapf(err error, kind Kind, format string, args ...interface{}) CornerError {
	if err == nil {
		return nil
	}
	return newError(kind, fmt.Sprintf(format, args...), err, 1)
}

// Decorate attaches the decoration capability to an existing error without
// changing its message. If err is already a CornerError its captured stack
// and message are kept and only the kind and decoration are replaced;
// otherwise a fresh stack is captured at the decorate site.
//
// Returns nil if err is nil.
//
// Example:
//
//	err := corner.Decorate(sql.ErrNoRows, corner.KindNotFound)
func Decorate(err error, kind Kind) CornerError {
	if err == nil {
		return nil
	}
	if ce, ok := err.(*cornerError); ok {
		return &cornerError{
			kind:       kind,
			message:    ce.message,
			decoration: decorationFor(kind),
			stack:      ce.stack,
			cause:      ce.cause,
		}
	}
	return newError(kind, err.Error(), err, 1)
}

// NewFromStack creates a CornerError over a caller-supplied stack instead of
// capturing one from the runtime. Hosts bridging foreign runtimes, and tests
// exercising frame resolution with synthetic stacks, inject frames here;
// frames without source use an empty File and a zero Line.
func NewFromStack(kind Kind, message string, stack Stack) CornerError {
	return &cornerError{
		kind:       kind,
		message:    message,
		decoration: decorationFor(kind),
		stack:      stack,
	}
}

// WrapFromStack wraps an error over a caller-supplied stack.
//
// Returns nil if err is nil.
func WrapFromStack(err error, kind Kind, message string, stack Stack) CornerError {
	if err == nil {
		return nil
	}
	return &cornerError{
		kind:       kind,
		message:    message,
		decoration: decorationFor(kind),
		stack:      stack,
		cause:      err,
	}
}
