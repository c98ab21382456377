package netopt

import (
	"fmt"
	"strings"
)

// tcpCommands are conservative, reversible TCP tweaks. They may require
// elevated privileges; each one fails independently.
var tcpCommands = [][]string{
	{"int", "tcp", "set", "global", "autotuninglevel=normal"},
	{"int", "tcp", "set", "global", "rss=enabled"},
	{"int", "tcp", "set", "global", "chimney=disabled"},
	{"int", "tcp", "set", "global", "ecncapability=disabled"},
	{"int", "tcp", "set", "heuristics", "disabled"},
}

// OptimizeTCP applies the tweak set, reporting one OK/FAILED line per
// command. A failing command does not stop the remaining ones, and partial
// failure still counts as an overall completed run.
func OptimizeTCP(dryRun bool) (bool, string) {
	if dryRun {
		lines := make([]string, 0, len(tcpCommands))
		for _, c := range tcpCommands {
			lines = append(lines, "netsh "+strings.Join(c, " "))
		}
		return true, "Dry-run: would run netsh commands:\n" + strings.Join(lines, "\n")
	}

	var lines []string
	for _, c := range tcpCommands {
		if _, err := runNetsh(c...); err != nil {
			lines = append(lines, fmt.Sprintf("FAILED: netsh %s -> %v", strings.Join(c, " "), err))
			continue
		}
		lines = append(lines, "OK: netsh "+strings.Join(c, " "))
	}
	return true, strings.Join(lines, "\n")
}
