// Package command implements the natural-language time-entry grammar that
// lets a chat turn like "bill 2.5 hours to meridian for diligence memo" be
// intercepted and written straight to the ledger instead of reaching the
// upstream generator.
package command

import (
	"regexp"
	"strconv"
	"strings"
)

// Command is a fully resolved billing instruction.
type Command struct {
	ClientID    string
	ClientName  string
	Hours       float64
	Description string // "" when no descriptor was given
}

// commandPattern is the full grammar:
//
//	verb amount [unit] preposition client-phrase [descriptor]
//
// The client phrase is matched lazily so that a descriptor introduced by
// "for", "on", "re:"/"re ", or "-" is captured rather than swallowed into
// the client phrase. The expression is applied to lowercased input and is
// not anchored at the start, so a command may be embedded in a longer
// sentence ("please log 3h to cascade").
var commandPattern = regexp.MustCompile(
	`(?:bill|log|record|add|track|enter|charge)\s+(\d+(?:\.\d+)?)\s*(?:hours?|hrs?|h)?\s+(?:to|for|on)\s+([a-z][a-z\s]*?)(?:\s+(?:for|on|re[:\s]|[-])\s*(.+))?$`,
)

const (
	minHours = 0.0
	maxHours = 24.0
)

// Parser maps free text to billing commands. It is pure and deterministic:
// the alias table and display names are injected at construction, so the
// grammar can be exercised against literal strings with no other state.
type Parser struct {
	aliases map[string]string
	names   map[string]string
}

// NewParser builds a Parser over the given alias table (spoken form →
// canonical client id) and display-name table (canonical id → full name).
func NewParser(aliases, names map[string]string) *Parser {
	return &Parser{aliases: aliases, names: names}
}

// Parse attempts to interpret text as a billing command. It returns
// (nil, false) when the text does not match the grammar, the amount is
// outside (0, 24], or the client phrase cannot be resolved — the parser
// never partially succeeds.
func (p *Parser) Parse(text string) (*Command, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))
	m := commandPattern.FindStringSubmatch(lower)
	if m == nil {
		return nil, false
	}

	hours, err := strconv.ParseFloat(m[1], 64)
	if err != nil || hours <= minHours || hours > maxHours {
		return nil, false
	}

	phrase := strings.Join(strings.Fields(m[2]), " ")
	desc := strings.TrimSpace(m[3])

	clientID, ok := p.resolve(phrase)
	if !ok {
		return nil, false
	}

	return &Command{
		ClientID:    clientID,
		ClientName:  p.names[clientID],
		Hours:       hours,
		Description: desc,
	}, true
}

// resolve maps a client phrase to a canonical id: exact alias match first,
// then a prefix relationship in either direction against every alias. When
// several aliases are in a prefix relation with the phrase, the longest
// alias wins (ties broken lexically), so "meridian capital" never resolves
// through a shorter overlapping alias by table order.
func (p *Parser) resolve(phrase string) (string, bool) {
	if id, ok := p.aliases[phrase]; ok {
		return id, true
	}

	bestAlias := ""
	bestID := ""
	for alias, id := range p.aliases {
		if !strings.HasPrefix(phrase, alias) && !strings.HasPrefix(alias, phrase) {
			continue
		}
		if len(alias) > len(bestAlias) || (len(alias) == len(bestAlias) && alias < bestAlias) {
			bestAlias = alias
			bestID = id
		}
	}
	if bestID == "" {
		return "", false
	}
	return bestID, true
}
