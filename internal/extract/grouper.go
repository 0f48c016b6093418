package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/invoicescan/invoicescan/internal/entity"
)

// reEntryStart marks a line that opens a new numbered entry, e.g. "3. ...".
var reEntryStart = regexp.MustCompile(`^\s*\d+\.\s+`)

// GroupEntries reassembles positioned tokens into logical entries: one string
// per numbered row, with wrapped continuation lines folded into the entry they
// belong to. Lines before the first numbered row are noise and dropped. When
// stopAtSummary is set, grouping halts at the first line mentioning SUMMARY.
//
// A band with no numbered rows yields an empty slice; that is not an error.
func GroupEntries(tokens []entity.PositionedToken, stopAtSummary bool) []string {
	kept := make([]entity.PositionedToken, 0, len(tokens))
	for _, t := range tokens {
		if strings.TrimSpace(t.Text) != "" {
			kept = append(kept, t)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		a, b := kept[i], kept[j]
		if a.BlockNum != b.BlockNum {
			return a.BlockNum < b.BlockNum
		}
		if a.ParNum != b.ParNum {
			return a.ParNum < b.ParNum
		}
		if a.LineNum != b.LineNum {
			return a.LineNum < b.LineNum
		}
		return a.WordNum < b.WordNum
	})

	entries := []string{}
	for _, line := range logicalLines(kept) {
		if stopAtSummary && strings.Contains(strings.ToUpper(line), "SUMMARY") {
			break
		}
		switch {
		case reEntryStart.MatchString(line):
			entries = append(entries, strings.TrimSpace(line))
		case len(entries) > 0:
			entries[len(entries)-1] += " " + strings.TrimSpace(line)
		}
	}
	return entries
}

// logicalLines joins sorted tokens sharing a (block, par, line) key into one
// space-separated line each.
func logicalLines(tokens []entity.PositionedToken) []string {
	var lines []string
	var words []string
	var curBlock, curPar, curLine int
	for i, t := range tokens {
		if i > 0 && (t.BlockNum != curBlock || t.ParNum != curPar || t.LineNum != curLine) {
			lines = append(lines, strings.Join(words, " "))
			words = words[:0]
		}
		curBlock, curPar, curLine = t.BlockNum, t.ParNum, t.LineNum
		words = append(words, t.Text)
	}
	if len(words) > 0 {
		lines = append(lines, strings.Join(words, " "))
	}
	return lines
}
