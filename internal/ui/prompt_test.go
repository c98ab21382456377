package ui

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func confirmWith(t *testing.T, input string, assumeYes bool) (bool, string) {
	t.Helper()
	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader(input))
	ok := Confirm(in, &out, "Proceed?", assumeYes)
	return ok, out.String()
}

func TestConfirmAssumeYesNeverPrompts(t *testing.T) {
	ok, out := confirmWith(t, "n\n", true)
	require.True(t, ok)
	require.Empty(t, out, "assume-yes must not write a prompt")
}

func TestConfirmAcceptsYesVariants(t *testing.T) {
	for _, input := range []string{"y\n", "Y\n", "yes\n", "  YES  \n"} {
		ok, out := confirmWith(t, input, false)
		require.True(t, ok, "input %q", input)
		require.Contains(t, out, "Proceed? [y/N]: ")
	}
}

func TestConfirmDefaultsToNo(t *testing.T) {
	for _, input := range []string{"\n", "n\n", "no\n", "yep\n", "q\n"} {
		ok, _ := confirmWith(t, input, false)
		require.False(t, ok, "input %q", input)
	}
}

func TestConfirmEndOfInputIsNo(t *testing.T) {
	ok, _ := confirmWith(t, "", false)
	require.False(t, ok)
}

func TestConfirmUnterminatedLineStillCounts(t *testing.T) {
	ok, _ := confirmWith(t, "yes", false)
	require.True(t, ok)
}

func TestReadLineTrims(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("  hello world \n"))
	line, err := ReadLine(in)
	require.NoError(t, err)
	require.Equal(t, "hello world", line)
}

func TestReadLineEOF(t *testing.T) {
	in := bufio.NewReader(strings.NewReader(""))
	_, err := ReadLine(in)
	require.Error(t, err)
}
