package app

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrompterRetriesBadInput(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("abc\n-3\n 7 \n"), &out)

	v, aborted, err := p.Uint("Rows:", false)
	require.NoError(t, err)
	require.False(t, aborted)
	require.Equal(t, 7, v)
	require.Equal(t, 2, strings.Count(out.String(), badInput))
	require.Equal(t, 3, strings.Count(out.String(), "Rows:"))
	require.NotContains(t, out.String(), "Use `q` to quit.")
}

func TestPrompterAbort(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("q\nq\n4\n"), &out)

	_, aborted, err := p.Uint("Row", true)
	require.NoError(t, err)
	require.True(t, aborted)
	require.Contains(t, out.String(), "Use `q` to quit.")

	// Without the abort feature "q" is just bad input.
	v, aborted, err := p.Uint("Option: ", false)
	require.NoError(t, err)
	require.False(t, aborted)
	require.Equal(t, 4, v)
}

func TestPrompterEndOfInput(t *testing.T) {
	p := NewPrompter(strings.NewReader("12"), io.Discard)
	v, _, err := p.Uint("Cols:", false)
	require.NoError(t, err)
	require.Equal(t, 12, v)

	_, _, err = p.Uint("Cols:", false)
	require.ErrorIs(t, err, io.EOF)

	p = NewPrompter(strings.NewReader("nope"), io.Discard)
	_, _, err = p.Uint("Cols:", false)
	require.ErrorIs(t, err, io.EOF)
}
