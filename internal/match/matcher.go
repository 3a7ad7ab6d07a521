// Package match selects the best knowledge-base candidate for a query by
// blending character-sequence similarity with term-set overlap.
package match

import (
	"strings"

	"github.com/fundwise/faqd/internal/domain/faq"
)

// DefaultThreshold is the minimum combined score accepted for live queries.
const DefaultThreshold = 0.5

const (
	sequenceWeight = 0.6
	overlapWeight  = 0.4
	substringFloor = 0.7
)

// Match is a scored knowledge-base candidate.
type Match struct {
	Key   string
	Entry faq.Entry
	Score float64
}

// Best scans every entry and question variant in knowledge-base order and
// returns the highest-scoring candidate, provided its score reaches the
// threshold. The running maximum advances on strict `>`, so among equal
// scores the first variant encountered wins.
func Best(query string, kb *faq.KnowledgeBase, threshold float64) (Match, bool) {
	normalized := strings.TrimSpace(strings.ToLower(query))
	queryTerms := termSet(normalized)

	var best Match
	bestScore := 0.0
	found := false

	for _, entry := range kb.Entries() {
		for _, variant := range entry.Variants() {
			score := combinedScore(normalized, queryTerms, strings.ToLower(variant))
			if score > bestScore {
				bestScore = score
				best = Match{Key: entry.Key(), Entry: entry, Score: score}
				found = true
			}
		}
	}

	if !found || bestScore < threshold {
		return Match{}, false
	}
	return best, true
}

// combinedScore blends sequence similarity (0.6) with Jaccard term overlap
// (0.4). Substring containment in either direction lifts the blend to at
// least 0.7; an empty query never earns the lift.
func combinedScore(query string, queryTerms map[string]struct{}, variant string) float64 {
	seq := sequenceRatio(query, variant)
	overlap := jaccard(queryTerms, termSet(variant))

	combined := sequenceWeight*seq + overlapWeight*overlap

	if query != "" && variant != "" &&
		(strings.Contains(variant, query) || strings.Contains(query, variant)) {
		if combined < substringFloor {
			combined = substringFloor
		}
	}

	return combined
}

// termSet splits s on whitespace into a set; duplicates collapse.
func termSet(s string) map[string]struct{} {
	fields := strings.Fields(s)
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

// jaccard returns |a∩b| / |a∪b|, or 0.0 if either set is empty.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	intersection := 0
	for t := range a {
		if _, ok := b[t]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection

	return float64(intersection) / float64(union)
}
