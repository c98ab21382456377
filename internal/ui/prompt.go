package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm asks a yes/no question with a [y/N] suffix defaulting to no.
// assumeYes short-circuits to true without touching the input or output
// streams. Only a trimmed, case-insensitive "y" or "yes" counts as yes;
// end of input counts as no.
func Confirm(in *bufio.Reader, out io.Writer, prompt string, assumeYes bool) bool {
	if assumeYes {
		return true
	}
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	ans := strings.ToLower(strings.TrimSpace(line))
	return ans == "y" || ans == "yes"
}

// ReadLine reads one line from in, trimmed of surrounding whitespace.
// A final unterminated line is still returned before the error surfaces.
func ReadLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Pause prints msg and blocks until the user presses Enter (or the input
// stream ends). Used to keep double-click-launched windows visible.
func Pause(in *bufio.Reader, out io.Writer, msg string) {
	fmt.Fprint(out, msg)
	_, _ = in.ReadString('\n')
}
