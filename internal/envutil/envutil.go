package envutil

import (
	"os"
	"regexp"
)

var percentPattern = regexp.MustCompile(`%([^%]+)%`)

// ExpandWindowsEnv expands environment references in a path, supporting both
// Windows %VAR% and Unix $VAR / ${VAR} syntax. Unknown %VAR% references are
// left intact, matching cmd.exe behavior; unknown $VAR references expand to
// the empty string, matching os.ExpandEnv.
func ExpandWindowsEnv(path string) string {
	expanded := percentPattern.ReplaceAllStringFunc(path, func(m string) string {
		name := m[1 : len(m)-1]
		if val, ok := os.LookupEnv(name); ok {
			return val
		}
		return m
	})
	return os.ExpandEnv(expanded)
}
