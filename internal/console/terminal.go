package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter reads player input and shows game output.
// Prompt returns io.EOF once input is exhausted.
type Prompter interface {
	Prompt(label string) (string, error)
	Print(msg string)
}

// Terminal is a line based Prompter over a reader and writer
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

var _ Prompter = (*Terminal)(nil)

// NewTerminal creates a Terminal reading lines from in and writing to out
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Prompt writes label and reads one line with the line ending removed.
// A final line without a newline is returned before io.EOF.
func (t *Terminal) Prompt(label string) (string, error) {
	if label != "" {
		fmt.Fprint(t.out, label)
	}
	line, err := t.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Print writes msg followed by a newline
func (t *Terminal) Print(msg string) {
	fmt.Fprintln(t.out, msg)
}
