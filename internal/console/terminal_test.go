package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalPromptReadsLines(t *testing.T) {
	out := &bytes.Buffer{}
	term := NewTerminal(strings.NewReader("first\r\nsecond\nlast"), out)

	for _, want := range []string{"first", "second", "last"} {
		got, err := term.Prompt("> ")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := term.Prompt("> ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "> > > > ", out.String())
}

func TestTerminalPrint(t *testing.T) {
	out := &bytes.Buffer{}
	term := NewTerminal(strings.NewReader(""), out)

	term.Print("hello")
	term.Print("")

	assert.Equal(t, "hello\n\n", out.String())
}
