package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"legal-practice-assistant/internal/assistant"
)

var (
	invoiceRe       = regexp.MustCompile(`^(?:create|generate|new|draft)\s+(?:an\s+)?invoice(?:\s+draft)?\b(?:\s+for\b)?\s*(.*)$`)
	invoiceAmountRe = regexp.MustCompile(`\$?\d+(?:,\d{3})*(?:\.\d{1,2})?`)
	invoiceDueKeyRe = regexp.MustCompile(`\b(?:due|by)\b\s*`)
	invoiceAmtWord  = regexp.MustCompile(`\bamount\b\s*`)
)

// parseInvoice handles "generate invoice for $1,500 due next friday".
func (p *Parser) parseInvoice(m message) ([]assistant.ProposedAction, bool) {
	loc := invoiceRe.FindStringSubmatchIndex(m.lower)
	if loc == nil {
		return nil, false
	}
	working := m.span(loc[2], loc[3])

	var amount float64
	hasAmount := false
	if raw, rest, ok := peelMatch(working, invoiceAmountRe); ok {
		cleaned := strings.NewReplacer("$", "", ",", "").Replace(raw)
		if v, err := strconv.ParseFloat(cleaned, 64); err == nil {
			amount = v
			hasAmount = true
			working = rest
		}
	}

	var dueDate time.Time
	hasDue := false
	if duePhrase, rest, ok := peelClause(working, invoiceDueKeyRe, nil); ok {
		if due, resolved := p.dates.Resolve(duePhrase, m.now); resolved {
			dueDate = due
			hasDue = true
			working = rest
		}
	}

	if idx := invoiceAmtWord.FindStringIndex(working.lower); idx != nil {
		_, working = working.cut(idx[0], idx[1])
	}

	desc := working.orig
	if desc == "" {
		desc = "Invoice draft"
	}

	fields := map[string]any{
		"description": desc,
		"status":      "draft",
		"matterId":    m.matterID(),
	}
	if hasAmount {
		fields["amount"] = amount
	}
	if hasDue {
		fields["dueDate"] = dueDate.Format(time.RFC3339)
	}

	summary := fmt.Sprintf("Create invoice draft: %q", desc)
	if hasAmount {
		summary += fmt.Sprintf(" for $%.2f", amount)
	}
	if hasDue {
		summary += fmt.Sprintf(" due %s", dueDate.Format("2006-01-02"))
	}

	return []assistant.ProposedAction{{
		Type:    assistant.ActionCreate,
		Entity:  assistant.EntityInvoice,
		Fields:  fields,
		Summary: summary,
	}}, true
}
