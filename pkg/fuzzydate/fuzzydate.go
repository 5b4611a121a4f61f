package fuzzydate

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Resolver converts informal, relative, or partially specified date phrases
// ("tomorrow", "next friday", "in 3 weeks", "March 15") into absolute times
// anchored to a caller-supplied reference instant.
//
// Month arithmetic uses time.Time.AddDate semantics: overflow days roll into
// the following month (Jan 31 + 1 month lands on Mar 2 or Mar 3 depending on
// February's length). Pinned by tests.
type Resolver struct {
	location *time.Location
}

// NewResolver creates a resolver for the given IANA timezone string,
// e.g. "America/New_York".
func NewResolver(timezone string) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc}, nil
}

var (
	inDurationRe  = regexp.MustCompile(`^in\s+(\d+)\s+(day|week|month)s?$`)
	nextWeekdayRe = regexp.MustCompile(`^next\s+(sunday|monday|tuesday|wednesday|thursday|friday|saturday)$`)
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Resolve converts a fuzzy date phrase into an absolute time anchored to now.
// The second return value is false when the phrase is empty or matches no
// rule, including the generic date fallback. Callers must treat that as
// "date unknown", never as an error.
//
// Relative results keep now's clock time; absolute dates resolve to midnight
// in the resolver's timezone, with a year-less phrase taking now's year.
func (r *Resolver) Resolve(phrase string, now time.Time) (time.Time, bool) {
	phrase = strings.ToLower(strings.TrimSpace(phrase))
	if phrase == "" {
		return time.Time{}, false
	}

	n := now.In(r.location)

	switch phrase {
	case "today":
		return n, true
	case "tomorrow":
		return n.AddDate(0, 0, 1), true
	case "yesterday":
		return n.AddDate(0, 0, -1), true
	case "next week":
		return n.AddDate(0, 0, 7), true
	case "next month":
		return n.AddDate(0, 1, 0), true
	case "end of week":
		// Friday of the current Sunday-started week. May already be in the
		// past when now is a Saturday; no forward roll.
		return n.AddDate(0, 0, int(time.Friday)-int(n.Weekday())), true
	case "end of month":
		return time.Date(n.Year(), n.Month()+1, 0, n.Hour(), n.Minute(), n.Second(), n.Nanosecond(), r.location), true
	}

	if m := inDurationRe.FindStringSubmatch(phrase); m != nil {
		amount := 0
		fmt.Sscanf(m[1], "%d", &amount)
		switch m[2] {
		case "day":
			return n.AddDate(0, 0, amount), true
		case "week":
			return n.AddDate(0, 0, amount*7), true
		case "month":
			return n.AddDate(0, amount, 0), true
		}
	}

	if m := nextWeekdayRe.FindStringSubmatch(phrase); m != nil {
		target := weekdays[m[1]]
		// Strictly future: if today already is the target weekday, jump a
		// full week ahead.
		days := (int(target) + 7 - int(n.Weekday())) % 7
		if days == 0 {
			days = 7
		}
		return n.AddDate(0, 0, days), true
	}

	return r.parseAbsolute(phrase, n)
}

// Layouts with a year component, tried against the raw phrase.
var datedLayouts = []string{
	"2006-01-02",
	"1/2/2006",
	"2006/01/02",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
}

// Layouts without a year; the reference year is substituted in.
var yearlessLayouts = []string{
	"January 2",
	"Jan 2",
	"1/2",
}

// parseAbsolute is the generic fallback for concrete dates such as
// "March 15", "2024-03-15", or "3/15/2024".
func (r *Resolver) parseAbsolute(phrase string, n time.Time) (time.Time, bool) {
	// Go's month-name parsing is case sensitive; the phrase arrives lowercased.
	titled := titleWords(phrase)

	for _, layout := range datedLayouts {
		if t, err := time.ParseInLocation(layout, titled, r.location); err == nil {
			return t, true
		}
	}
	for _, layout := range yearlessLayouts {
		if t, err := time.ParseInLocation(layout, titled, r.location); err == nil {
			return time.Date(n.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.location), true
		}
	}
	return time.Time{}, false
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
