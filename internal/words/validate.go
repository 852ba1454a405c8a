package words

import (
	"fmt"
	"sort"
	"strings"
)

// Validate checks the integrity of a word list for size:
// non-empty, every entry exactly size letters long, A–Z only, no duplicates.
// All offending entries are reported, not just the first.
func Validate(size int, ws []string) error {
	if len(ws) == 0 {
		return fmt.Errorf("words: list for size %d is empty", size)
	}
	var badLen, badCase, dups []string
	seen := make(map[string]struct{}, len(ws))
	for _, w := range ws {
		if len(w) != size {
			badLen = append(badLen, w)
		}
		if !IsUpperAlpha(w) {
			badCase = append(badCase, w)
		}
		if _, ok := seen[w]; ok {
			dups = append(dups, w)
		}
		seen[w] = struct{}{}
	}

	var problems []string
	if len(badLen) > 0 {
		problems = append(problems, fmt.Sprintf("wrong length %v", badLen))
	}
	if len(badCase) > 0 {
		problems = append(problems, fmt.Sprintf("not A-Z %v", badCase))
	}
	if len(dups) > 0 {
		sort.Strings(dups)
		problems = append(problems, fmt.Sprintf("duplicates %v", dups))
	}
	if len(problems) > 0 {
		return fmt.Errorf("words: invalid list for size %d: %s", size, strings.Join(problems, "; "))
	}
	return nil
}

// IsUpperAlpha reports whether s is non-empty and all ASCII A–Z.
func IsUpperAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
