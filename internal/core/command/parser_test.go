package command

import (
	"testing"
)

func testParser() *Parser {
	aliases := map[string]string{
		"meridian":            "meridian",
		"meridian capital":    "meridian",
		"cascade":             "cascade",
		"cascade medical":     "cascade",
		"northbrook":          "northbrook",
		"northbrook partners": "northbrook",
		"harborview":          "harborview",
	}
	names := map[string]string{
		"meridian":   "Meridian Capital Partners",
		"cascade":    "Cascade Medical Group",
		"northbrook": "Northbrook Partners LLC",
		"harborview": "Harborview Estate",
	}
	return NewParser(aliases, names)
}

func TestParseBasicCommand(t *testing.T) {
	p := testParser()

	cmd, ok := p.Parse("bill 2.5 hours to meridian")
	if !ok {
		t.Fatal("expected command to parse")
	}
	if cmd.ClientID != "meridian" {
		t.Errorf("client id = %q, want %q", cmd.ClientID, "meridian")
	}
	if cmd.ClientName != "Meridian Capital Partners" {
		t.Errorf("client name = %q, want full display name", cmd.ClientName)
	}
	if cmd.Hours != 2.5 {
		t.Errorf("hours = %v, want 2.5", cmd.Hours)
	}
	if cmd.Description != "" {
		t.Errorf("description = %q, want empty", cmd.Description)
	}
}

func TestParseVerbsAndUnits(t *testing.T) {
	p := testParser()

	inputs := []string{
		"bill 2 hours to meridian",
		"log 2 hrs to meridian",
		"record 2h to meridian",
		"add 2 hr to meridian",
		"track 2 to meridian",
		"enter 2 hours for meridian",
		"charge 2 hours on meridian",
		"Bill 2 HOURS to Meridian", // case-insensitive
		"please log 2 hours to meridian", // embedded in a sentence
	}
	for _, in := range inputs {
		cmd, ok := p.Parse(in)
		if !ok {
			t.Errorf("%q: expected parse", in)
			continue
		}
		if cmd.ClientID != "meridian" || cmd.Hours != 2 {
			t.Errorf("%q: got (%s, %v)", in, cmd.ClientID, cmd.Hours)
		}
	}
}

func TestParseDescriptor(t *testing.T) {
	p := testParser()

	cases := []struct {
		in   string
		desc string
	}{
		{"bill 2 hours to meridian for diligence memo", "diligence memo"},
		{"log 1.5 hours to cascade on provider agreements", "provider agreements"},
		{"add 3h to northbrook re: partnership allocations", "partnership allocations"},
		{"track 2 hours to harborview - estate planning", "estate planning"},
	}
	for _, tc := range cases {
		cmd, ok := p.Parse(tc.in)
		if !ok {
			t.Errorf("%q: expected parse", tc.in)
			continue
		}
		if cmd.Description != tc.desc {
			t.Errorf("%q: description = %q, want %q", tc.in, cmd.Description, tc.desc)
		}
	}
}

func TestParseMultiWordClientPhrase(t *testing.T) {
	p := testParser()

	cmd, ok := p.Parse("bill 4 hours to northbrook partners for allocation review")
	if !ok {
		t.Fatal("expected parse")
	}
	if cmd.ClientID != "northbrook" {
		t.Errorf("client id = %q, want northbrook", cmd.ClientID)
	}
	if cmd.Description != "allocation review" {
		t.Errorf("description = %q, want %q", cmd.Description, "allocation review")
	}
}

func TestResolvePrefixAndLongestAlias(t *testing.T) {
	p := testParser()

	// Phrase is a prefix of an alias.
	cmd, ok := p.Parse("bill 1 hour to casc")
	if !ok || cmd.ClientID != "cascade" {
		t.Fatalf("prefix resolution failed: %v, %v", cmd, ok)
	}

	// Alias is a prefix of the phrase; longest matching alias wins.
	cmd, ok = p.Parse("bill 1 hour to meridian capital partners fund")
	if !ok || cmd.ClientID != "meridian" {
		t.Fatalf("longest-alias resolution failed: %v, %v", cmd, ok)
	}
}

func TestParseRejections(t *testing.T) {
	p := testParser()

	inputs := []string{
		"",
		"what is the deadline for the meridian filing?",
		"bill hours to meridian",          // no amount
		"bill 0 hours to meridian",        // zero amount
		"bill 25 hours to meridian",       // above the daily cap
		"bill 3 hours to zenith corp",     // unknown client
		"2 hours to meridian",             // missing verb
	}
	for _, in := range inputs {
		if cmd, ok := p.Parse(in); ok {
			t.Errorf("%q: unexpectedly parsed as %+v", in, cmd)
		}
	}
}

func TestParseBoundaryHours(t *testing.T) {
	p := testParser()

	cmd, ok := p.Parse("bill 24 hours to meridian")
	if !ok || cmd.Hours != 24 {
		t.Fatalf("24 hours should be accepted, got %v, %v", cmd, ok)
	}
	if _, ok := p.Parse("bill 24.5 hours to meridian"); ok {
		t.Fatal("24.5 hours should be rejected")
	}
}
