package reference

import (
	"testing"
)

func TestIsProbableFollowup(t *testing.T) {
	tests := []struct {
		message string
		want    bool
	}{
		// Concrete reference signals.
		{"that one", true},
		{"the second one", true},
		{"the last one", true},
		{"the 2021 case", true},
		{"docket 21-1234", true},
		{"the newer opinion", true},

		// Fresh substantive questions.
		{"What is the holding in Markman?", false},
		{"which doctrine applies here", false},
		{"explain claim construction", false},
		{"compare these two holdings", false},
		{"tell me about patent exhaustion", false},
		{"is this still good law?", false},

		// Short content-bearing utterances read as terse references.
		{"the samsung one", true},
		{"apple motorola", true},
		{"markman", true},

		// Long messages without signals are fresh queries.
		{"I would like to know more about the general principles of equity", false},

		// No content at all.
		{"", false},
		{"ok", false},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			if got := IsProbableFollowup(tt.message); got != tt.want {
				t.Errorf("IsProbableFollowup(%q) = %v, want %v", tt.message, got, tt.want)
			}
		})
	}
}

func TestIsProbableFollowupNeedsNoCandidateList(t *testing.T) {
	// The classifier runs before any session lookup; it must be a pure
	// function of the message.
	first := IsProbableFollowup("the samsung one")
	second := IsProbableFollowup("the samsung one")
	if first != second {
		t.Error("classifier must be deterministic")
	}
}
