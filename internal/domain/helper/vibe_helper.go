package helper

import (
	"strings"

	"roam-backend/internal/domain/model"
)

// tagSynonyms folds common descriptor variants into canonical tags so that
// "speakeasy" and "cocktail" venues score as alike.
var tagSynonyms = map[string]string{
	"speakeasy":  "cocktail",
	"mixology":   "cocktail",
	"dive":       "casual",
	"pub":        "casual",
	"rooftop":    "view",
	"romantic":   "date night",
	"intimate":   "date night",
	"museum":     "art",
	"gallery":    "art",
	"streetwear": "fashion",
	"karaoke":    "music",
	"live":       "music",
}

// NormalizeTag lowercases a tag and folds known synonyms into their
// canonical form. Unmapped tags pass through lowercased.
func NormalizeTag(tag string) string {
	t := strings.ToLower(tag)
	if canonical, ok := tagSynonyms[t]; ok {
		return canonical
	}
	return t
}

// VibesArray splits a comma-separated descriptor string into normalized
// tags, dropping empties.
func VibesArray(input string) []string {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	var tags []string
	for _, part := range strings.Split(input, ",") {
		t := NormalizeTag(strings.TrimSpace(part))
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func vibeSet(v *model.Venue) map[string]struct{} {
	set := make(map[string]struct{})
	for _, t := range VibesArray(v.Vibe) {
		set[t] = struct{}{}
	}
	for _, t := range VibesArray(v.Tags) {
		set[t] = struct{}{}
	}
	return set
}

// VibeSimilarity scores two venues' stylistic overlap in [0,1]. Each venue's
// tag set is the union of its vibe and tags fields after normalization.
// Overlap is divided by the larger set, favoring the more specific venue;
// an empty set on either side scores 0.
func VibeSimilarity(a, b *model.Venue) float64 {
	aSet := vibeSet(a)
	bSet := vibeSet(b)
	if len(aSet) == 0 || len(bSet) == 0 {
		return 0
	}
	overlap := 0
	for t := range aSet {
		if _, ok := bSet[t]; ok {
			overlap++
		}
	}
	maxLen := len(aSet)
	if len(bSet) > maxLen {
		maxLen = len(bSet)
	}
	return float64(overlap) / float64(maxLen)
}

// HasVibeOrTagMatch reports whether any keyword appears as a substring of
// the venue's raw vibe or tags text. Used for scoring bonuses, never as a
// hard filter.
func HasVibeOrTagMatch(v *model.Venue, keywords []string) bool {
	vibe := strings.ToLower(v.Vibe)
	tags := strings.ToLower(v.Tags)
	for _, kw := range keywords {
		k := strings.ToLower(kw)
		if k == "" {
			continue
		}
		if strings.Contains(vibe, k) || strings.Contains(tags, k) {
			return true
		}
	}
	return false
}
