package corner

import (
	"os"
	"strings"
	"sync"
)

// fileCache memoizes the line-split contents of source files named in
// captured frames. It is shared process-wide: source files do not change
// underneath the binary compiled from them, so one disk read per path serves
// every error instance. Unreadable paths are memoized as nil so a path is
// touched at most once even under contention.
type fileCache struct {
	mu    sync.Mutex
	lines map[string][]string
}

var sourceCache = &fileCache{lines: make(map[string][]string)}

// linesOf returns the cached line split of the file at path, reading from
// disk on first use. Returns nil for an empty path (virtual or native frame)
// and for files that are missing or unreadable; absent source is a normal
// outcome for snippet requests, never an error.
func (c *fileCache) linesOf(path string) []string {
	if path == "" {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if lines, ok := c.lines[path]; ok {
		return lines
	}

	data, err := os.ReadFile(path)
	if err != nil {
		c.lines[path] = nil
		return nil
	}

	lines := splitLines(string(data))
	c.lines[path] = lines
	return lines
}

// splitLines splits file contents on newline boundaries. A terminating final
// newline does not produce a synthetic empty last line; every other line is
// kept verbatim.
func splitLines(contents string) []string {
	if contents == "" {
		return nil
	}
	lines := strings.Split(contents, "\n")
	if n := len(lines); lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
