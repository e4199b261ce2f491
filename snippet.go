package corner

import "strings"

// ErrNegativeArgument is returned by Snippet and SnippetOf when linesBefore,
// linesAfter, or frameOffset is negative. It is the only failure the snippet
// path surfaces; every degraded condition yields ("", nil) instead.
var ErrNegativeArgument = New(KindInvalidArgument, "snippet arguments must not be negative")

// Snippet implements CornerError. It resolves frameOffset against the
// captured stack, loads the frame's source file through the shared cache,
// and renders the clipped line window around the frame's line.
func (e *cornerError) Snippet(linesBefore, linesAfter, frameOffset int) (string, error) {
	if linesBefore < 0 || linesAfter < 0 || frameOffset < 0 {
		return "", ErrNegativeArgument
	}

	fr, ok := e.stack.frame(frameOffset)
	if !ok {
		return "", nil
	}

	lines := sourceCache.linesOf(fr.File)
	return extractWindow(lines, fr.Line, linesBefore, linesAfter), nil
}

// extractWindow renders the inclusive 1-based line range
// [max(1, target-before), min(len(lines), target+after)] as one text block.
// Lines are joined verbatim with single newlines; nothing is trimmed,
// renumbered, or prefixed. A window of (0, 0) is exactly the target line.
// Nil lines, an unknown target, or an inverted range yield the empty string.
func extractWindow(lines []string, target, before, after int) string {
	if len(lines) == 0 || target < 1 {
		return ""
	}

	start := target - before
	if start < 1 {
		start = 1
	}
	end := target + after
	if total := len(lines); end > total {
		end = total
	}
	if start > end {
		return ""
	}

	return strings.Join(lines[start-1:end], "\n")
}
