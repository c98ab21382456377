package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSpinReturnsWorkerResult(t *testing.T) {
	r := &Runner{Out: &bytes.Buffer{}, Interval: time.Millisecond, Animate: true}
	got := Spin(r, "Working...", func() int { return 42 })
	require.Equal(t, 42, got)
}

func TestSpinRepaintsAndClears(t *testing.T) {
	var out bytes.Buffer
	r := &Runner{Out: &out, Interval: 5 * time.Millisecond, Animate: true}

	Spin(r, "Working...", func() string {
		time.Sleep(80 * time.Millisecond)
		return "done"
	})

	s := out.String()
	// At least a handful of repaints for an 80ms task at 5ms cadence.
	require.GreaterOrEqual(t, strings.Count(s, "Elapsed:"), 5)
	require.Contains(t, s, "Working...")
	// The final write wipes the line: blank run followed by carriage return.
	require.True(t, strings.HasSuffix(s, strings.Repeat(" ", clearWidth)+"\r"),
		"status line must be fully cleared")
}

func TestSpinWithoutAnimationPrintsLabelOnce(t *testing.T) {
	var out bytes.Buffer
	r := &Runner{Out: &out, Interval: time.Millisecond, Animate: false}
	Spin(r, "Working...", func() struct{} { return struct{}{} })
	require.Equal(t, "Working...\n", out.String())
}

func TestSpinPropagatesPanicAfterClearing(t *testing.T) {
	var out bytes.Buffer
	r := &Runner{Out: &out, Interval: time.Millisecond, Animate: true}

	require.PanicsWithValue(t, "boom", func() {
		Spin(r, "Working...", func() int { panic("boom") })
	})
	require.True(t, strings.HasSuffix(out.String(), "\r"),
		"display must stop before the fault is re-raised")
}
