package domain

import "strings"

// Match is the outcome of keyword matching.
type Match struct {
	Slot           Slot
	MatchedKeyword string
	Confidence     Confidence
}

// FindSlotByKeywords returns the slot whose keyword occurs in text.
//
// Keywords are matched as plain substrings of the lowercased text, so "gym"
// matches "gymlingoo". When several keywords match, the longest keyword wins,
// then the slot with the higher priority, then the first one encountered.
func FindSlotByKeywords(text string, slots []Slot) (Match, bool) {
	if len(slots) == 0 {
		return Match{}, false
	}
	normalized := strings.ToLower(text)

	var (
		best    Match
		found   bool
		longest int
	)
	for _, slot := range slots {
		for _, kw := range slot.keywords {
			if !strings.Contains(normalized, kw) {
				continue
			}
			if !found || len(kw) > longest ||
				(len(kw) == longest && slot.priority > best.Slot.priority) {
				best = Match{Slot: slot, MatchedKeyword: kw}
				longest = len(kw)
				found = true
			}
		}
	}
	if !found {
		return Match{}, false
	}
	best.Confidence = keywordConfidence(best.MatchedKeyword)
	return best, true
}

// keywordConfidence grades a keyword match. Long and short keywords are
// both graded medium; the matcher never reports high confidence.
func keywordConfidence(keyword string) Confidence {
	if len(keyword) >= 5 {
		return ConfidenceMedium
	}
	return ConfidenceMedium
}
