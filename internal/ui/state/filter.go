package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Matches returns the set of label indices matching the query, using fuzzy
// ranking with a case-insensitive substring fallback. An empty query
// matches everything.
func Matches(labels []string, query string) map[int]struct{} {
	trimmed := strings.TrimSpace(query)
	matched := make(map[int]struct{}, len(labels))
	if trimmed == "" {
		for i := range labels {
			matched[i] = struct{}{}
		}
		return matched
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	for _, rank := range ranks {
		matched[rank.OriginalIndex] = struct{}{}
	}
	if len(matched) > 0 {
		return matched
	}
	lower := strings.ToLower(trimmed)
	for i, label := range labels {
		if strings.Contains(strings.ToLower(label), lower) {
			matched[i] = struct{}{}
		}
	}
	return matched
}

// BestMatchIndex returns the label index the preselection should land on
// for the query: exact match first, then prefix, then substring, then the
// closest fuzzy rank. Returns -1 only when labels is empty.
func BestMatchIndex(labels []string, query string) int {
	if len(labels) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	for i, label := range labels {
		if strings.EqualFold(label, trimmed) {
			return i
		}
	}
	lower := strings.ToLower(trimmed)
	for i, label := range labels {
		if strings.HasPrefix(strings.ToLower(label), lower) {
			return i
		}
	}
	for i, label := range labels {
		if strings.Contains(strings.ToLower(label), lower) {
			return i
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(labels) {
		return 0
	}
	return best.OriginalIndex
}
