package netopt

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/yusufpapurcu/wmi"

	"github.com/lakshaymaurya-felt/wintune/internal/logging"
)

// win32NetworkAdapter mirrors the subset of Win32_NetworkAdapter selected
// below. NetConnectionID is NULL for adapters without a connection entry,
// hence the pointer.
type win32NetworkAdapter struct {
	NetConnectionID *string
}

// ListAdapters returns connectable network adapter names in system order.
// WMI is the primary source; the netsh interface table is the fallback when
// the WMI service is unavailable.
func ListAdapters() []string {
	const query = "SELECT NetConnectionID FROM Win32_NetworkAdapter WHERE NetConnectionID IS NOT NULL"

	var rows []win32NetworkAdapter
	if err := wmi.Query(query, &rows); err == nil {
		var names []string
		for _, r := range rows {
			if r.NetConnectionID != nil && *r.NetConnectionID != "" {
				names = append(names, *r.NetConnectionID)
			}
		}
		if len(names) > 0 {
			return names
		}
	} else {
		logger := logging.GetLogger("netopt")
		logger.Debug().Err(err).Msg("WMI adapter query failed, falling back to netsh")
	}

	out, err := runNetsh("interface", "show", "interface")
	if err != nil {
		return nil
	}
	return parseInterfaceTable(out)
}

// parseInterfaceTable extracts interface names from the fixed-column output
// of `netsh interface show interface`:
//
//	Admin State    State          Type             Interface Name
//	-------------------------------------------------------------
//	Enabled        Connected      Dedicated        Ethernet
//
// The name is the fourth column and may itself contain spaces.
func parseInterfaceTable(out string) []string {
	var names []string
	started := false
	for _, ln := range strings.Split(out, "\n") {
		ln = strings.TrimRight(ln, "\r")
		if !started {
			if strings.Contains(ln, "Admin State") && strings.Contains(ln, "Interface Name") {
				started = true
			}
			continue
		}
		if strings.TrimSpace(ln) == "" {
			continue
		}
		cols := splitColumns(ln, 4)
		if len(cols) == 4 {
			names = append(names, strings.TrimSpace(cols[3]))
		}
	}
	return names
}

// splitColumns splits a line into at most n whitespace-separated fields,
// keeping the remainder of the line intact in the final field.
func splitColumns(ln string, n int) []string {
	var fields []string
	rest := strings.TrimSpace(ln)
	for len(fields) < n-1 {
		idx := strings.IndexFunc(rest, unicode.IsSpace)
		if idx < 0 {
			break
		}
		fields = append(fields, rest[:idx])
		rest = strings.TrimLeftFunc(rest[idx:], unicode.IsSpace)
	}
	if rest != "" {
		fields = append(fields, rest)
	}
	return fields
}

// RestartAdapter disables and re-enables a network adapter by name.
func RestartAdapter(name string, dryRun bool) (bool, string) {
	if dryRun {
		return true, fmt.Sprintf("Dry-run: would restart adapter %q.", name)
	}
	if _, err := runNetsh("interface", "set", "interface", name, "admin=DISABLED"); err != nil {
		return false, fmt.Sprintf("Command failed for %q: %v", name, err)
	}
	if _, err := runNetsh("interface", "set", "interface", name, "admin=ENABLED"); err != nil {
		return false, fmt.Sprintf("Command failed for %q: %v", name, err)
	}
	return true, fmt.Sprintf("Adapter %q restarted.", name)
}
