package netopt

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	profilePattern    = regexp.MustCompile(`All User Profile\s*:\s*(.+)`)
	keyContentPattern = regexp.MustCompile(`Key Content\s*:\s*(.+)`)
)

// ListWifiProfiles returns the names of saved Wi-Fi profiles in the order
// netsh reports them.
func ListWifiProfiles() []string {
	out, err := runNetsh("wlan", "show", "profiles")
	if err != nil {
		return nil
	}
	return parseWifiProfiles(out)
}

func parseWifiProfiles(out string) []string {
	var profiles []string
	for _, m := range profilePattern.FindAllStringSubmatch(out, -1) {
		if name := strings.TrimSpace(m[1]); name != "" {
			profiles = append(profiles, name)
		}
	}
	return profiles
}

// WifiPassword queries a profile with key=clear and extracts the stored
// key. found is false for open networks and for query failures; the message
// then explains which.
func WifiPassword(profile string) (found bool, message string) {
	out, err := runNetsh("wlan", "show", "profile", profile, "key=clear")
	if err != nil {
		return false, fmt.Sprintf("Failed to query profile: %v", err)
	}
	if m := keyContentPattern.FindStringSubmatch(out); m != nil {
		return true, strings.TrimSpace(m[1])
	}
	return false, "No password stored (open network or not available)."
}

// ShowWifiPasswords lists every saved profile with its password, one
// "profile: password" line each.
func ShowWifiPasswords(dryRun bool) (bool, string) {
	if dryRun {
		return true, "Dry-run: would list saved Wi-Fi profiles and their passwords."
	}
	profiles := ListWifiProfiles()
	if len(profiles) == 0 {
		return false, "No Wi-Fi profiles found or failed to query profiles."
	}
	lines := make([]string, 0, len(profiles))
	for _, p := range profiles {
		_, pw := WifiPassword(p)
		lines = append(lines, p+": "+pw)
	}
	return true, strings.Join(lines, "\n")
}
