package clean

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lakshaymaurya-felt/wintune/internal/envutil"
	"github.com/lakshaymaurya-felt/wintune/internal/logging"
)

// TempDir resolves the user temp directory the same way the shell does:
// %TEMP%, then %TMP%, then the OS default.
func TempDir() string {
	for _, ref := range []string{"%TEMP%", "%TMP%"} {
		p := envutil.ExpandWindowsEnv(ref)
		if p != "" && !strings.Contains(p, "%") {
			return filepath.Clean(p)
		}
	}
	return os.TempDir()
}

// Temp removes files and empty directories under the temp directory,
// walking bottom-up. Removal is deliberately conservative: individual
// Remove calls only, never RemoveAll, so unexpected non-empty or in-use
// directories are left behind instead of being destroyed. In dry-run mode
// nothing is removed and the planned count is reported.
func Temp(dryRun bool) (bool, string) {
	dir := TempDir()
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return false, fmt.Sprintf("Temp directory %q does not exist.", dir)
	}

	deleted, failed := sweep(dir, dryRun)
	logger := logging.GetLogger("clean")
	logger.Debug().
		Str("dir", dir).Int("deleted", deleted).Int("failed", failed).Bool("dryRun", dryRun).
		Msg("temp sweep finished")

	if dryRun {
		return true, fmt.Sprintf("Dry-run: would delete %d entries under %s.", deleted, dir)
	}
	return true, fmt.Sprintf("Planned deletions: %d. Failed deletions: %d.", deleted, failed)
}

// sweep walks dir depth-first, removing files first and then directories
// that have become empty. Directories that cannot be removed are not
// counted as failures; files that cannot be removed are.
func sweep(dir string, dryRun bool) (deleted, failed int) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, 0
	}

	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		if e.IsDir() {
			d, f := sweep(path, dryRun)
			deleted += d
			failed += f
			if dryRun {
				deleted++
				continue
			}
			if err := os.Remove(path); err == nil {
				deleted++
			}
			continue
		}
		if dryRun {
			deleted++
			continue
		}
		if err := os.Remove(path); err == nil {
			deleted++
		} else {
			failed++
		}
	}
	return deleted, failed
}
