package reference

import (
	"strconv"
	"strings"

	"legal-research-be/pkg/store"
)

// Outcome tags a resolution attempt.
type Outcome string

const (
	OutcomeResolved  Outcome = "RESOLVED"
	OutcomeAmbiguous Outcome = "AMBIGUOUS"
	OutcomeNoMatch   Outcome = "NO_MATCH"
)

// Resolution is the result of matching a message against a candidate list.
// Index is 1-based. On the explicit-reference path it is NOT guaranteed to be
// within the candidate list's bounds; bounds validation belongs to the
// pipeline boundary, keeping this resolver single-responsibility.
type Resolution struct {
	Outcome Outcome `json:"outcome"`
	Index   int     `json:"index"`
}

// Resolved reports whether a usable index was produced.
func (r Resolution) Resolved() bool {
	return r.Outcome == OutcomeResolved
}

// minScoreMargin is the lead the top-scoring candidate must hold over the
// runner-up before a fuzzy match is accepted. Genuine ties stay ambiguous.
const minScoreMargin = 1.0

// ResolveCandidateReference maps a user message onto one candidate from an
// ordered, externally supplied list. Checks run in strict order: explicit
// numeric/ordinal/labeled references, then ordinal hints, then docket
// substring match, then token-overlap scoring with a tie-break margin.
func ResolveCandidateReference(message string, candidates []store.Candidate) Resolution {
	// Explicit references win outright and skip bounds checking on purpose.
	if n, ok := DetectExplicitReference(message); ok {
		return Resolution{Outcome: OutcomeResolved, Index: n}
	}

	if len(candidates) == 0 {
		return Resolution{Outcome: OutcomeNoMatch}
	}

	hints := ExtractHints(message)

	if hints.Ordinal == OrdinalLast {
		return Resolution{Outcome: OutcomeResolved, Index: len(candidates)}
	}
	if hints.Ordinal > 0 {
		return Resolution{Outcome: OutcomeResolved, Index: hints.Ordinal}
	}

	if hints.DocketID != "" {
		for i, c := range candidates {
			if c.DocketID != "" && strings.Contains(strings.ToLower(c.DocketID), hints.DocketID) {
				return Resolution{Outcome: OutcomeResolved, Index: i + 1}
			}
		}
	}

	return scoreCandidates(hints, candidates)
}

// scoreCandidates runs fuzzy token-overlap scoring. A candidate is accepted
// only when its score reaches 1.0 and, for lists of two or more, leads the
// runner-up by at least minScoreMargin.
func scoreCandidates(hints ReferenceHints, candidates []store.Candidate) Resolution {
	bestIdx := -1
	bestScore := 0.0
	runnerUp := 0.0

	for i, c := range candidates {
		labelTokens := TokenizeLabel(c.Label)

		score := 0.0
		for tok := range hints.PartyTokens {
			if _, ok := labelTokens[tok]; ok {
				score += 1.0
			}
		}
		if hints.Year != 0 && strings.Contains(c.Label, strconv.Itoa(hints.Year)) {
			score += 1.0
		}

		if score > bestScore {
			runnerUp = bestScore
			bestScore = score
			bestIdx = i
		} else if score > runnerUp {
			runnerUp = score
		}
	}

	if bestScore < 1.0 {
		return Resolution{Outcome: OutcomeNoMatch}
	}
	if len(candidates) > 1 && bestScore-runnerUp < minScoreMargin {
		return Resolution{Outcome: OutcomeAmbiguous}
	}
	return Resolution{Outcome: OutcomeResolved, Index: bestIdx + 1}
}
