package fuzzymatch

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Candidate is one searchable record label.
type Candidate struct {
	ID    string
	Label string
}

// Best resolves a free-text search term against candidate labels.
// Candidates are expected most-recent-first; the first case-insensitive
// substring match wins, so ties break toward the most recent record.
// When nothing contains the term, close misspellings are accepted via
// edit-distance scoring. Returns ok=false when no candidate is acceptable.
func Best(term string, candidates []Candidate) (Candidate, bool) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return Candidate{}, false
	}

	// Pass 1: substring containment, first (most recent) wins.
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c.Label), term) {
			return c, true
		}
	}

	// Pass 2: edit distance, best score wins.
	best := Candidate{}
	bestScore := 0.0
	for _, c := range candidates {
		s := score(term, strings.ToLower(c.Label))
		if s > bestScore {
			best = c
			bestScore = s
		}
	}
	if bestScore == 0 {
		return Candidate{}, false
	}
	return best, true
}

// score rates a single candidate label against the term.
func score(term, label string) float64 {
	switch {
	case term == label:
		return 1.0
	case strings.HasPrefix(label, term) && len(term) >= 2:
		return 0.9
	default:
		dist := levenshtein.ComputeDistance(term, label)
		if dist > distanceLimit(len(label)) {
			return 0
		}
		return 0.72 - 0.08*float64(dist)
	}
}

// distanceLimit scales the tolerated edit distance with the label length.
func distanceLimit(n int) int {
	switch {
	case n <= 4:
		return 1
	case n <= 8:
		return 2
	default:
		return 3
	}
}
