package parser

import (
	"regexp"
	"strings"
	"time"

	"legal-practice-assistant/internal/assistant"
	"legal-practice-assistant/internal/model"
	"legal-practice-assistant/pkg/fuzzydate"
)

// Parser converts free-text commands into proposed actions. It is pure and
// stateless: the result is a function of (utterance, scope, now) only.
type Parser struct {
	dates *fuzzydate.Resolver
	rules []rule
}

// message is the pre-processed utterance handed to each rule.
type message struct {
	lower string // matching copy
	orig  string // original casing, same offsets as lower
	sc    model.Scope
	now   time.Time
}

// rule recognizes one command family. Returns ok=false when the utterance
// does not belong to it, leaving the next rule to try.
type rule func(m message) ([]assistant.ProposedAction, bool)

// New creates a parser bound to a fuzzy date resolver.
func New(dates *fuzzydate.Resolver) *Parser {
	p := &Parser{dates: dates}

	// Priority order is load-bearing: the first matching rule wins and no
	// later rule is consulted.
	p.rules = []rule{
		p.parseTimeEntry,
		p.parseCaseCreate,
		p.parseCaseStatus,
		p.parseCaseFieldUpdate,
		p.parseContactCreate,
		p.parseContactUpdate,
		p.parseTaskWithSubtasks,
		p.parseTaskCreate,
		p.parseTaskComplete,
		p.parseEvent,
		p.parseInvoice,
		p.parseNote,
		p.parseQuickBill,
		p.parseReminder,
	}
	return p
}

var (
	helpContainsRe = regexp.MustCompile(`what can you do|\bcommands\b`)
	statusStartRe  = regexp.MustCompile(`^(?:show|what|give|get|my)\b`)
	statusNounRe   = regexp.MustCompile(`\b(?:summary|status|overview|stats|dashboard)\b`)
)

// Parse classifies one utterance. It never returns an error: anything the
// rule table does not recognize degrades to the empty fallback result.
func (p *Parser) Parse(utterance string, sc model.Scope, now time.Time) assistant.ParseResult {
	m := newMessage(utterance, sc, now)

	// Meta-queries are checked before any command rule.
	if m.lower == "help" || m.lower == "?" || helpContainsRe.MatchString(m.lower) {
		return assistant.ParseResult{IsHelpQuery: true}
	}
	if statusStartRe.MatchString(m.lower) && statusNounRe.MatchString(m.lower) {
		return assistant.ParseResult{IsStatusQuery: true}
	}

	for _, r := range p.rules {
		if actions, ok := r(m); ok {
			return assistant.ParseResult{Actions: actions}
		}
	}
	return assistant.ParseResult{}
}

func newMessage(utterance string, sc model.Scope, now time.Time) message {
	orig := strings.Join(strings.Fields(utterance), " ")
	lower := strings.ToLower(orig)
	if len(lower) != len(orig) {
		// Lowercasing changed byte offsets (rare non-ASCII case folding);
		// give up original-case recovery rather than misalign slices.
		orig = lower
	}
	return message{lower: lower, orig: orig, sc: sc, now: now}
}

// span slices the pre-processed utterance into an aligned working text.
func (m message) span(start, end int) text {
	return text{lower: m.lower[start:end], orig: m.orig[start:end]}
}

// matterID returns the linked case ID or nil, ready for a fields map.
func (m message) matterID() any {
	if m.sc.HasCase() {
		return m.sc.CaseID
	}
	return nil
}
