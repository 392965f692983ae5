package multiqc

import "path"

// Ignored reports whether a sample name matches any of the exclusion
// patterns. Patterns are path.Match globs; a pattern containing no glob
// metacharacters matches as an exact name.
func Ignored(name string, patterns []string) bool {
	for _, p := range patterns {
		if p == "" {
			continue
		}
		if ok, err := path.Match(p, name); err == nil && ok {
			return true
		}
		if p == name {
			return true
		}
	}
	return false
}
