package common

import (
	"path"
	"strings"
	"unicode"
)

// UnknownStr is the fallback label used by enum String() methods.
const UnknownStr = "unknown"

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// HasQualifier reports whether s references alias as a package
// qualifier: alias followed by a dot, at an identifier boundary.
func HasQualifier(s, alias string) bool {
	if alias == "" {
		return false
	}

	needle := alias + "."

	idx := strings.Index(s, needle)
	for idx >= 0 {
		if idx == 0 || !isIdentChar(rune(s[idx-1])) {
			return true
		}

		next := strings.Index(s[idx+1:], needle)
		if next < 0 {
			break
		}

		idx += 1 + next
	}

	return false
}

func isIdentChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
