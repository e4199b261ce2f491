package corner

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var cornerErr corner.CornerError
//	if corner.As(err, &cornerErr) {
//	    fmt.Println(cornerErr.HelpfulMessage())
//	}
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetKind extracts the Kind from an error.
// Returns KindUnknown if the error is nil or no CornerError is in its chain.
//
// Example:
//
//	if corner.GetKind(err) == corner.KindNotFound {
//	    // Handle not found
//	}
func GetKind(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	var cornerErr CornerError
	if stderrors.As(err, &cornerErr) {
		return cornerErr.Kind()
	}

	return KindUnknown
}

// GetHelpfulMessage extracts the helpful message from an error.
// For errors without the decoration capability it falls back to the generic
// KindUnknown decoration, so the result is never empty for a non-nil error.
// Returns "" only for a nil error.
func GetHelpfulMessage(err error) string {
	if err == nil {
		return ""
	}

	var cornerErr CornerError
	if stderrors.As(err, &cornerErr) {
		return cornerErr.HelpfulMessage()
	}

	return decorationFor(KindUnknown).HelpfulMessage
}

// GetSupportLink extracts the support link from an error.
// Falls back to the KindUnknown decoration for undecorated errors.
// Returns "" only for a nil error.
func GetSupportLink(err error) string {
	if err == nil {
		return ""
	}

	var cornerErr CornerError
	if stderrors.As(err, &cornerErr) {
		return cornerErr.SupportLink()
	}

	return decorationFor(KindUnknown).SupportLink
}

// SnippetOf produces a source snippet from any error carrying the decoration
// capability anywhere in its chain. Errors without the capability yield
// ("", nil): there is no captured stack to resolve, which is the same
// degraded outcome as a stack with no readable source.
//
// Negative arguments return ErrNegativeArgument, matching Snippet.
func SnippetOf(err error, linesBefore, linesAfter, frameOffset int) (string, error) {
	if linesBefore < 0 || linesAfter < 0 || frameOffset < 0 {
		return "", ErrNegativeArgument
	}
	if err == nil {
		return "", nil
	}

	var cornerErr CornerError
	if stderrors.As(err, &cornerErr) {
		return cornerErr.Snippet(linesBefore, linesAfter, frameOffset)
	}

	return "", nil
}
