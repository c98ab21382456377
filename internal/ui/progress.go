package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// repaintInterval is the status-line cadence. Roughly eight repaints per
// second keeps the elapsed counter lively without flooding slow consoles.
const repaintInterval = 120 * time.Millisecond

// clearWidth must cover the longest status line ever painted.
const clearWidth = 80

var glyphStyle = lipgloss.NewStyle().Foreground(ColorSecondary)

// Runner overlaps a blocking call with a single-line status display.
// When Animate is false (output is not a terminal) the label is printed
// once and no repainting happens.
type Runner struct {
	Out      io.Writer
	Interval time.Duration
	Animate  bool
}

// NewRunner builds a Runner that animates only when out is a terminal.
func NewRunner(out io.Writer) *Runner {
	animate := false
	if f, ok := out.(*os.File); ok {
		animate = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Runner{Out: out, Interval: repaintInterval, Animate: animate}
}

// Spin executes fn on a worker goroutine while the calling goroutine
// repaints label, a rotating glyph, and elapsed seconds until the worker
// flips the one-shot completion flag. The status line is fully cleared and
// the worker joined before the result is returned. A panic raised by fn is
// re-raised to the caller once the display has stopped.
func Spin[T any](r *Runner, label string, fn func() T) T {
	var (
		done     atomic.Bool
		result   T
		panicked any
	)
	finished := make(chan struct{})

	go func() {
		defer close(finished)
		defer func() {
			if rec := recover(); rec != nil {
				panicked = rec
			}
			done.Store(true)
		}()
		result = fn()
	}()

	interval := r.Interval
	if interval <= 0 {
		interval = repaintInterval
	}

	if r.Animate {
		frames := spinner.Line.Frames
		start := time.Now()
		for i := 0; !done.Load(); i++ {
			glyph := glyphStyle.Render(frames[i%len(frames)])
			elapsed := int(time.Since(start).Seconds())
			fmt.Fprintf(r.Out, "\r%s %s Elapsed: %ds", label, glyph, elapsed)
			time.Sleep(interval)
		}
		fmt.Fprintf(r.Out, "\r%s\r", strings.Repeat(" ", clearWidth))
	} else {
		fmt.Fprintln(r.Out, label)
	}

	<-finished
	if panicked != nil {
		panic(panicked)
	}
	return result
}
