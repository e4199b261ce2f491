package corner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrNegativeArgument_IsDecorated(t *testing.T) {
	// The sentinel carries the package's own decoration capability.
	require.Equal(t, KindInvalidArgument, GetKind(ErrNegativeArgument))
	require.NotEmpty(t, GetHelpfulMessage(ErrNegativeArgument))
	require.NotEmpty(t, GetSupportLink(ErrNegativeArgument))
}

func TestSnippet_DirectoryAsSourcePath(t *testing.T) {
	err := NewFromStack(KindExample, "bogus frame", Stack{
		{File: "testdata", Line: 1, Function: "fixtures.dir"},
	})

	snippet, serr := err.Snippet(2, 2, 0)
	require.NoError(t, serr)
	require.Empty(t, snippet)
}

func TestSnippet_EmptySourceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.go")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	err := NewFromStack(KindExample, "empty file", Stack{
		{File: path, Line: 1, Function: "fixtures.empty"},
	})

	snippet, serr := err.Snippet(2, 2, 0)
	require.NoError(t, serr)
	require.Empty(t, snippet)
}

func TestSnippet_FileDeletedAfterFirstRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone.go")
	require.NoError(t, os.WriteFile(path, []byte("alpha\nbeta\ngamma\n"), 0o644))

	err := NewFromStack(KindExample, "deleted", Stack{
		{File: path, Line: 2, Function: "fixtures.gone"},
	})

	snippet, serr := err.Snippet(0, 0, 0)
	require.NoError(t, serr)
	require.Equal(t, "beta", snippet)

	// Deleting the file does not disturb snippets served from the cache.
	require.NoError(t, os.Remove(path))

	snippet, serr = err.Snippet(0, 0, 0)
	require.NoError(t, serr)
	require.Equal(t, "beta", snippet)
}

func TestSnippet_FrameWithLineButNoFile(t *testing.T) {
	err := NewFromStack(KindExample, "half virtual", Stack{
		{Line: 10, Function: "native.call"},
	})

	snippet, serr := err.Snippet(1, 1, 0)
	require.NoError(t, serr)
	require.Empty(t, snippet)
}

func TestSnippet_FrameWithFileButNoLine(t *testing.T) {
	err := NewFromStack(KindExample, "half virtual", Stack{
		{File: markerFile, Function: "native.call"},
	})

	snippet, serr := err.Snippet(1, 1, 0)
	require.NoError(t, serr)
	require.Empty(t, snippet)
}

func TestSnippet_MixedVirtualAndRealFrames(t *testing.T) {
	err := NewFromStack(KindExample, "mixed", Stack{
		{Function: "runtime.cgocall"},
		{File: markerFile, Line: raiseLine, Function: "fixtures.helper"},
	})

	// Frame 0 has no source.
	snippet, serr := err.Snippet(1, 1, 0)
	require.NoError(t, serr)
	require.Empty(t, snippet)

	// Frame 1 does.
	snippet, serr = err.Snippet(0, 0, 1)
	require.NoError(t, serr)
	require.Equal(t, "\treturn raise(value)", snippet)
}

func TestExtractWindow_InvertedRange(t *testing.T) {
	// Target beyond the file makes start exceed the clipped end.
	require.Empty(t, extractWindow([]string{"one", "two"}, 7, 1, 1))
}
