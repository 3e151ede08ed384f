package reference

import "strings"

// interrogativeStarters open fresh substantive questions rather than
// candidate references.
var interrogativeStarters = []string{
	"what", "which", "when", "where", "why", "how",
	"explain", "compare", "analyze", "tell",
}

// maxFollowupWords bounds how long a message can be and still read as a
// terse candidate reference.
const maxFollowupWords = 8

// IsProbableFollowup decides, from the message alone, whether it plausibly
// targets a pending candidate set rather than posing a new question. It can
// run before any session lookup.
func IsProbableFollowup(message string) bool {
	hints := ExtractHints(message)

	// 1. Any concrete reference signal settles it.
	if hints.IsFollowupLike || hints.Ordinal != 0 || hints.DocketID != "" || hints.Year != 0 {
		return true
	}

	// 2. Questions are fresh queries.
	if strings.Contains(message, "?") {
		return false
	}
	lowered := strings.ToLower(strings.TrimSpace(message))
	for _, starter := range interrogativeStarters {
		if lowered == starter || strings.HasPrefix(lowered, starter+" ") {
			return false
		}
	}

	// 3. Short, content-bearing utterances look like terse references.
	if len(hints.PartyTokens) == 0 {
		return false
	}
	return len(strings.Fields(message)) <= maxFollowupWords
}
