package optimize

import (
	"slices"
	"strconv"
	"strings"
)

// menuMapping translates interactive menu digits to actions. Digit 6 is
// "run all" and is handled separately in ParseMenuSelection.
var menuMapping = map[string]ID{
	"1": CleanTemp,
	"2": EmptyRecycle,
	"3": OptimizeTCP,
	"4": RestartAdapters,
	"5": ShowWifi,
	"7": CreateGodMode,
}

// ParseMenuSelection translates a comma-separated line of menu digits into
// an action set. Unrecognized tokens are ignored; "6" short-circuits to the
// full canonical set including create-godmode.
func ParseMenuSelection(raw string) []ID {
	var ids []ID
	tokens := strings.Split(raw, ",")

	for _, tok := range tokens {
		if strings.TrimSpace(tok) == "6" {
			return slices.Clone(CanonicalOrder)
		}
	}
	for _, tok := range tokens {
		if id, ok := menuMapping[strings.TrimSpace(tok)]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// ResolveAdapterSelection resolves a selection expression against the
// listed adapters. The expression is "all", or a comma-separated mix of
// 1-based indices and raw adapter names. Out-of-range indices and unknown
// names resolve to nothing; "all" preserves the listed order.
func ResolveAdapterSelection(expr string, adapters []string) []string {
	expr = strings.TrimSpace(expr)
	if strings.EqualFold(expr, "all") {
		return slices.Clone(adapters)
	}

	var targets []string
	for _, tok := range strings.Split(expr, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if idx, err := strconv.Atoi(tok); err == nil {
			if idx >= 1 && idx <= len(adapters) {
				targets = append(targets, adapters[idx-1])
			}
			continue
		}
		if slices.Contains(adapters, tok) {
			targets = append(targets, tok)
		}
	}
	return targets
}
