package fuzzymatch_test

import (
	"testing"

	"legal-practice-assistant/pkg/fuzzymatch"
)

func TestBest(t *testing.T) {
	candidates := []fuzzymatch.Candidate{
		{ID: "c3", Label: "Smith v. Jones"},
		{ID: "c2", Label: "Smith Estate"},
		{ID: "c1", Label: "Acme Corp contract review"},
	}

	tests := []struct {
		name   string
		term   string
		wantID string
		wantOK bool
	}{
		{
			name:   "Substring match case insensitive",
			term:   "acme",
			wantID: "c1",
			wantOK: true,
		},
		{
			name:   "Ambiguous substring prefers most recent",
			term:   "smith",
			wantID: "c3",
			wantOK: true,
		},
		{
			name:   "Close misspelling accepted",
			term:   "smith estote",
			wantID: "c2",
			wantOK: true,
		},
		{
			name:   "No match",
			term:   "zzzzzz",
			wantOK: false,
		},
		{
			name:   "Empty term",
			term:   "  ",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := fuzzymatch.Best(tt.term, candidates)
			if ok != tt.wantOK {
				t.Fatalf("Best(%q) ok = %v, want %v", tt.term, ok, tt.wantOK)
			}
			if ok && got.ID != tt.wantID {
				t.Errorf("Best(%q) = %s, want %s", tt.term, got.ID, tt.wantID)
			}
		})
	}
}
