package archive

// MatchExtension reports whether name ends with any of exts, comparing ASCII
// letters case-insensitively. Each candidate is matched as a whole, so
// ".refmap.json" only matches names ending in that full suffix.
func MatchExtension(name string, exts ...string) bool {
	for _, ext := range exts {
		if hasSuffixFold(name, ext) {
			return true
		}
	}
	return false
}

func hasSuffixFold(name, suffix string) bool {
	if len(name) < len(suffix) {
		return false
	}
	for i, j := len(name)-1, len(suffix)-1; j >= 0; i, j = i-1, j-1 {
		if toLower(name[i]) != toLower(suffix[j]) {
			return false
		}
	}
	return true
}

func toLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
