package corner

import "runtime"

// Frame records a single call site from a captured stack.
type Frame struct {
	// PC is the program counter of the call return.
	PC uintptr

	// File is the absolute path of the source file, as reported by the
	// runtime. Empty for virtual or native frames with no source.
	File string

	// Line is the 1-based line number within File, or zero if unknown.
	Line int

	// Function is the package-qualified function or method name.
	Function string
}

// Stack is an immutable sequence of frames captured at error construction,
// ordered from the failure site outward. Index 0 is the innermost frame.
type Stack []Frame

// defaultMaxDepth bounds capture work on exceptional paths while keeping
// enough context to walk well outside any library.
const defaultMaxDepth = 64

// captureStack records the current call chain, skipping 'skip' frames above
// captureStack itself, resolved through runtime.CallersFrames so inlined
// calls appear as their own frames.
//
// Skip accounting: runtime.Callers counts itself as frame 0 and captureStack
// as frame 1, so skip+2 places the first recorded frame at captureStack's
// caller when skip is zero. Constructors pass the number of package frames
// between themselves and the user call site.
//
// Returns nil when the runtime yields no program counters; snippet requests
// against a nil stack degrade to empty results.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pc[:n])
	stk := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		stk = append(stk, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return stk
}

// frame resolves a frame offset against the stack. Offset 0 is the innermost
// frame; offsets past the end clip to the outermost frame so callers probing
// outward with large offsets get a defined, stable answer instead of a
// failure. The second return is false only when no frame can be produced:
// an empty stack, or a negative offset that slipped past the public boundary.
func (s Stack) frame(offset int) (Frame, bool) {
	if offset < 0 || len(s) == 0 {
		return Frame{}, false
	}
	if offset >= len(s) {
		offset = len(s) - 1
	}
	return s[offset], true
}
