package reference

import (
	"regexp"
	"strconv"
	"strings"
)

// Ordinal sentinel meaning "the last candidate", distinct from positive
// positions.
const OrdinalLast = -1

// ReferenceHints is the structured bag of signals extracted from a single
// user turn. All fields default to their neutral value: extraction is total
// and never fails, garbage input simply yields an empty hints value.
type ReferenceHints struct {
	IsFollowupLike bool
	Ordinal        int // 0 = unset, OrdinalLast = "last/final"
	Year           int // 0 = unset, otherwise 1900-2099
	DocketID       string
	PartyTokens    map[string]struct{}
}

// followupMarkers is a small fixed set of literal phrases. Extend it by
// adding phrases, not patterns.
var followupMarkers = []string{
	"that one",
	"this one",
	"the one",
	"newer",
	"older",
	"latest",
	"earlier",
	"google one",
	"apple one",
}

// ordinalWords is an ordered rule table: the FIRST entry whose word appears
// anywhere in the message wins, regardless of where the word sits in the
// text. Priority is by declaration order.
var ordinalWords = []struct {
	word  string
	value int
	re    *regexp.Regexp
}{
	{word: "first", value: 1},
	{word: "second", value: 2},
	{word: "third", value: 3},
	{word: "fourth", value: 4},
	{word: "fifth", value: 5},
	{word: "last", value: OrdinalLast},
	{word: "final", value: OrdinalLast},
}

func init() {
	for i := range ordinalWords {
		ordinalWords[i].re = regexp.MustCompile(`\b` + ordinalWords[i].word + `\b`)
	}
}

var (
	yearPattern   = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	docketPattern = regexp.MustCompile(`\b\d{2}-\d{3,6}\b`)
	tokenPattern  = regexp.MustCompile(`[a-z0-9.\-]+`)
	digitsOnly    = regexp.MustCompile(`^\d+$`)
)

// stopWords are articles, interrogatives, and generic legal-discourse words
// that carry no party identity.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "from": {}, "about": {},
	"what": {}, "which": {}, "when": {}, "where": {}, "why": {}, "how": {},
	"who": {}, "whose": {}, "did": {}, "does": {}, "was": {}, "were": {},
	"case": {}, "cases": {}, "opinion": {}, "opinions": {}, "holding": {},
	"ruling": {}, "decision": {}, "court": {}, "docket": {}, "compare": {},
	"explain": {}, "analyze": {}, "summarize": {}, "tell": {}, "show": {},
	"give": {}, "one": {}, "ones": {}, "this": {}, "that": {}, "these": {},
	"those": {}, "please": {}, "versus": {},
}

// ExtractHints parses a raw message into reference hints. Pure and total:
// empty or malformed input yields a hints value with every field at its
// neutral default.
func ExtractHints(message string) ReferenceHints {
	hints := ReferenceHints{PartyTokens: map[string]struct{}{}}

	lowered := strings.ToLower(strings.TrimSpace(message))
	if lowered == "" {
		return hints
	}

	for _, marker := range followupMarkers {
		if strings.Contains(lowered, marker) {
			hints.IsFollowupLike = true
			break
		}
	}

	for _, entry := range ordinalWords {
		if entry.re.MatchString(lowered) {
			hints.Ordinal = entry.value
			break
		}
	}

	if m := yearPattern.FindString(lowered); m != "" {
		if y, err := strconv.Atoi(m); err == nil {
			hints.Year = y
		}
	}

	hints.DocketID = docketPattern.FindString(lowered)

	for _, tok := range tokenPattern.FindAllString(lowered, -1) {
		if len(tok) <= 2 {
			continue
		}
		if digitsOnly.MatchString(tok) {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		hints.PartyTokens[tok] = struct{}{}
	}

	return hints
}

// TokenizeLabel splits a candidate label with the same rules used for party
// tokens, so token-overlap scoring compares like with like.
func TokenizeLabel(label string) map[string]struct{} {
	tokens := map[string]struct{}{}
	for _, tok := range tokenPattern.FindAllString(strings.ToLower(label), -1) {
		if len(tok) <= 2 {
			continue
		}
		if digitsOnly.MatchString(tok) {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		tokens[tok] = struct{}{}
	}
	return tokens
}
