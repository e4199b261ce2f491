// Package corner decorates errors with debugging context for developers.
//
// Every decorated error carries a fixed helpful message and support link for
// its variant, plus the call stack captured when it was raised. From that
// stack the error can produce source snippets on demand: a bounded window of
// the lines surrounding any captured frame. The package maintains full
// compatibility with the standard library errors package (errors.Is,
// errors.As, errors.Unwrap).
//
// # Features
//
//   - One decoration capability (CornerError) shared by every variant
//   - Declarative variant table mapping Kind to helpful message and link
//   - Stack capture at construction, snippet extraction on demand
//   - Graceful degradation: missing source yields "", never a failure
//   - Error wrapping that preserves the error chain
//   - JSON serialization for API responses
//
// # Quick Start
//
// Creating errors:
//
//	// Simple error
//	err := corner.New(corner.KindNotFound, "user not found")
//
//	// Formatted error
//	err := corner.Newf(corner.KindInvalidArgument, "invalid age: %d", age)
//
// Wrapping errors:
//
//	data, err := os.ReadFile(path)
//	if err != nil {
//	    return corner.Wrap(err, corner.KindConfiguration, "failed to read config")
//	}
//
// Debugging a failure:
//
//	var cornerErr corner.CornerError
//	if corner.As(err, &cornerErr) {
//	    fmt.Println(cornerErr.HelpfulMessage())
//	    fmt.Println(cornerErr.SupportLink())
//
//	    // Two lines of context around the failure site
//	    snippet, _ := cornerErr.Snippet(2, 2, 0)
//	    fmt.Println(snippet)
//
//	    // Walk one frame out to the caller
//	    snippet, _ = cornerErr.Snippet(2, 2, 1)
//	    fmt.Println(snippet)
//	}
//
// Registering a variant:
//
//	const KindLedger corner.Kind = "Ledger"
//
//	func init() {
//	    corner.Register(KindLedger, corner.Decoration{
//	        HelpfulMessage: "The ledger rejected this entry.",
//	        SupportLink:    "https://example.com/runbooks/ledger",
//	    })
//	}
//
// # Degradation
//
// Snippet requests never fail for environmental reasons. An empty stack, a
// virtual or native frame, an unreadable or deleted source file, and a frame
// offset past the end of the stack all degrade to a defined result (the
// empty string, or the outermost frame's window). The single surfaced
// failure is ErrNegativeArgument for negative snippet arguments. The package
// is purely diagnostic and must never itself take down the process it is
// reporting on.
package corner
