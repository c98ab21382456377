package netopt

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/lakshaymaurya-felt/wintune/internal/logging"
)

// commandTimeout bounds every netsh invocation. Adapter toggles can stall
// when a driver is resetting; nothing here legitimately takes longer.
const commandTimeout = 60 * time.Second

// runNetsh executes a netsh command and returns its trimmed combined
// output. Exit errors carry the exit code and a truncated output snippet.
func runNetsh(args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "netsh", args...)
	raw, err := cmd.CombinedOutput()
	out := strings.TrimSpace(string(raw))

	logger := logging.GetLogger("netopt")
	logger.Debug().
		Strs("args", args).Err(err).Msg("netsh")

	if err == nil {
		return out, nil
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return out, fmt.Errorf("netsh timed out after %s", commandTimeout)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if snippet := truncate(out, 200); snippet != "" {
			return out, fmt.Errorf("netsh exited with code %d: %s", exitErr.ExitCode(), snippet)
		}
		return out, fmt.Errorf("netsh exited with code %d", exitErr.ExitCode())
	}
	return out, fmt.Errorf("netsh: %w", err)
}

// truncate shortens s to at most n bytes, backing up to a valid UTF-8
// boundary so the result is never a broken string.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	s = s[:n]
	for len(s) > 0 && !utf8.ValidString(s) {
		s = s[:len(s)-1]
	}
	return s + "..."
}
