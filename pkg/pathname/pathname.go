// Package pathname splits download paths into directory and file name.
//
// The path flavour is read from the path itself rather than from the host OS:
// a drive letter followed by a colon and a separator, or a leading UNC "\\",
// marks a Windows path; anything else is treated as POSIX. Inputs that cannot
// be split (empty, no separator, trailing separator) are returned unchanged.
package pathname

import (
	"regexp"
	"strings"
)

var windowsPath = regexp.MustCompile(`^(?:[A-Za-z]:[\\/]|\\\\)`)

// IsWindows reports whether path looks like a Windows path
func IsWindows(path string) bool {
	return windowsPath.MatchString(path)
}

func separators(path string) string {
	if IsWindows(path) {
		return `\/`
	}
	return "/"
}

// split returns the index of the last separator, or -1 when path cannot be split
func split(path string) int {
	if path == "" {
		return -1
	}
	seps := separators(path)
	if strings.ContainsRune(seps, rune(path[len(path)-1])) {
		return -1
	}
	return strings.LastIndexAny(path, seps)
}

// Basename returns the last segment of path
func Basename(path string) string {
	i := split(path)
	if i < 0 {
		return path
	}
	return path[i+1:]
}

// Dirname returns everything before the last segment of path. The parent of
// a root-level entry is the root itself.
func Dirname(path string) string {
	i := split(path)
	if i < 0 {
		return path
	}
	dir := path[:i]
	if IsWindows(path) {
		if len(dir) == 2 && dir[1] == ':' {
			return path[:i+1]
		}
		if strings.Trim(dir, `\`) == "" {
			return path
		}
		return dir
	}
	if dir == "" {
		return "/"
	}
	return dir
}
