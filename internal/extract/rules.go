package extract

import (
	"regexp"
	"strings"
)

// rule is one step of a first-match-wins pattern cascade. group selects the
// capture to return (0 = whole match). Keeping cascades as ordered slices
// keeps the fallback order auditable and each rule testable on its own.
type rule struct {
	re    *regexp.Regexp
	group int
}

// firstMatch evaluates the cascade against text and returns the selected
// capture from the first rule that matches.
func firstMatch(rules []rule, text string) (string, bool) {
	for _, r := range rules {
		if m := r.re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[r.group]), true
		}
	}
	return "", false
}
