package godmode

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/windows/registry"

	"github.com/lakshaymaurya-felt/wintune/internal/envutil"
)

// The CLSID suffix makes Explorer render the folder as the all-settings
// control panel. The prefix before the dot is the display name.
const folderName = "GodMode.{ED7BA470-8E54-465E-825C-99712043E01C}"

const shellFoldersPath = `SOFTWARE\Microsoft\Windows\CurrentVersion\Explorer\User Shell Folders`

// desktopDir resolves the user's Desktop directory. The registry shell
// folder is authoritative — OneDrive redirects Desktop out of %USERPROFILE%
// — with the conventional path as fallback.
func desktopDir() string {
	key, err := registry.OpenKey(registry.CURRENT_USER, shellFoldersPath, registry.QUERY_VALUE)
	if err == nil {
		defer key.Close()
		if val, _, err := key.GetStringValue("Desktop"); err == nil && val != "" {
			return filepath.Clean(envutil.ExpandWindowsEnv(val))
		}
	}
	return filepath.Join(os.Getenv("USERPROFILE"), "Desktop")
}

// Create places the God Mode folder on the user's Desktop. An existing
// folder counts as success.
func Create(dryRun bool) (bool, string) {
	desktop := desktopDir()
	path := filepath.Join(desktop, folderName)

	if dryRun {
		return true, fmt.Sprintf("Dry-run: would create %q", path)
	}
	if _, err := os.Stat(desktop); err != nil {
		return false, fmt.Sprintf("Desktop path not found: %s", desktop)
	}
	if _, err := os.Stat(path); err == nil {
		return true, fmt.Sprintf("God Mode folder already exists: %s", path)
	}
	if err := os.Mkdir(path, 0o755); err != nil {
		return false, fmt.Sprintf("Failed to create God Mode folder: %v", err)
	}
	return true, fmt.Sprintf("Created God Mode folder: %s", path)
}
