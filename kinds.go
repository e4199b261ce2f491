// Package corner decorates errors with human-oriented debugging context.
// It attaches a fixed helpful message and support link per error variant and
// can produce source-code snippets from the call stack captured at the point
// the error was raised.
package corner

// Kind identifies a specific error variant.
// Kinds are string-based for debuggability and natural JSON serialization.
type Kind string

const (
	// KindExample is the reference variant used in documentation and demos.
	KindExample Kind = "Example"

	// KindNotFound indicates a requested resource does not exist.
	KindNotFound Kind = "NotFound"

	// KindInvalidArgument indicates a caller supplied malformed input.
	KindInvalidArgument Kind = "InvalidArgument"

	// KindTimeout indicates an operation exceeded its time limit.
	KindTimeout Kind = "Timeout"

	// KindConfiguration indicates a configuration problem prevents the
	// operation.
	KindConfiguration Kind = "Configuration"

	// KindInternal indicates an internal failure with no more specific
	// variant.
	KindInternal Kind = "Internal"

	// KindUnknown indicates an unclassified error, typically a plain error
	// decorated after the fact.
	KindUnknown Kind = "Unknown"
)

const supportBase = "https://github.com/Sura-laboratory/corner"

// Decoration is the fixed debugging metadata attached to an error variant.
// It is configuration, not behavior: set once per kind, immutable, and
// identical across every instance of the same kind.
type Decoration struct {
	// HelpfulMessage is a debugging hint shown alongside the error message.
	// Never empty.
	HelpfulMessage string

	// SupportLink points at documentation or a support channel for the
	// variant.
	SupportLink string
}

// decorations maps each kind to its fixed decoration. Construction looks the
// decoration up here instead of hardcoding the strings per variant.
var decorations = map[Kind]Decoration{
	KindExample: {
		HelpfulMessage: "This is an example of a corner error. Use the snippet to see the code that raised it.",
		SupportLink:    supportBase + "/blob/main/README.md",
	},
	KindNotFound: {
		HelpfulMessage: "The thing you asked for is not there. Check the identifier at the failure site.",
		SupportLink:    supportBase + "/wiki/NotFound",
	},
	KindInvalidArgument: {
		HelpfulMessage: "A caller passed an argument outside the accepted range. Inspect the call site in the snippet.",
		SupportLink:    supportBase + "/wiki/InvalidArgument",
	},
	KindTimeout: {
		HelpfulMessage: "The operation ran out of time. The snippet shows where the deadline was exceeded.",
		SupportLink:    supportBase + "/wiki/Timeout",
	},
	KindConfiguration: {
		HelpfulMessage: "Configuration loaded by this code path is invalid or missing. Verify it before retrying.",
		SupportLink:    supportBase + "/wiki/Configuration",
	},
	KindInternal: {
		HelpfulMessage: "Something failed inside the library or application. The captured stack points at the cause.",
		SupportLink:    supportBase + "/issues",
	},
	KindUnknown: {
		HelpfulMessage: "An undecorated error was raised here. Wrap it with a specific kind for a better hint.",
		SupportLink:    supportBase + "/issues",
	},
}

// fallbackDecoration is used for kinds missing from the table so that
// HelpfulMessage and SupportLink are never empty.
var fallbackDecoration = Decoration{
	HelpfulMessage: "No decoration is registered for this error kind.",
	SupportLink:    supportBase + "/issues",
}

// decorationFor returns the decoration registered for a kind, falling back
// to a generic non-empty decoration for unregistered kinds.
func decorationFor(kind Kind) Decoration {
	if d, ok := decorations[kind]; ok {
		return d
	}
	return fallbackDecoration
}

// Register adds or replaces the decoration for a kind, letting host
// applications define their own variants declaratively instead of
// subclassing anything.
//
// Registration is expected at package init time, before errors of the kind
// are constructed. A decoration with an empty HelpfulMessage is ignored so
// HelpfulMessage stays non-empty for every constructed error.
//
// Example:
//
//	const KindLedger corner.Kind = "Ledger"
//
//	func init() {
//	    corner.Register(KindLedger, corner.Decoration{
//	        HelpfulMessage: "The ledger rejected this entry. Check the balance invariants.",
//	        SupportLink:    "https://example.com/runbooks/ledger",
//	    })
//	}
func Register(kind Kind, decoration Decoration) {
	if decoration.HelpfulMessage == "" {
		return
	}
	decorations[kind] = decoration
}
