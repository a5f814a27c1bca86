// Package fspath holds the one shared answer to "which of these deployment
// layouts are we running under". Components take their candidate lists from
// configuration and probe them in order here instead of re-implementing the
// walk locally.
package fspath

import "os"

// FirstExisting returns the first candidate that exists as a regular file.
func FirstExisting(candidates []string) (string, bool) {
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		info, err := os.Stat(candidate)
		if err == nil && info.Mode().IsRegular() {
			return candidate, true
		}
	}
	return "", false
}

// FirstExistingIn probes name against an ordered list of directories.
func FirstExistingIn(dirs []string, name string) (string, bool) {
	candidates := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		candidates = append(candidates, dir+string(os.PathSeparator)+name)
	}
	return FirstExisting(candidates)
}
