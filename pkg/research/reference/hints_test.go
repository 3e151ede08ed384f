package reference

import (
	"testing"
)

func TestExtractHintsNeutralDefaults(t *testing.T) {
	for _, input := range []string{"", "   ", "☃☃☃", "!!!"} {
		hints := ExtractHints(input)
		if hints.IsFollowupLike || hints.Ordinal != 0 || hints.Year != 0 || hints.DocketID != "" {
			t.Errorf("ExtractHints(%q) should be neutral, got %+v", input, hints)
		}
		if len(hints.PartyTokens) != 0 {
			t.Errorf("ExtractHints(%q) should have no party tokens, got %v", input, hints.PartyTokens)
		}
	}
}

func TestExtractHintsFollowupMarkers(t *testing.T) {
	tests := []struct {
		message string
		want    bool
	}{
		{"that one", true},
		{"I meant THIS ONE", true},
		{"show me the newer opinion", true},
		{"the apple one", true},
		{"what is patent law", false},
		{"samsung electronics", false},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			if got := ExtractHints(tt.message).IsFollowupLike; got != tt.want {
				t.Errorf("IsFollowupLike = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractHintsOrdinal(t *testing.T) {
	tests := []struct {
		message string
		want    int
	}{
		{"the second one please", 2},
		{"the last one", OrdinalLast},
		{"the final opinion", OrdinalLast},
		{"fourth", 4},
		// Declaration-order priority: "first" wins even though "second"
		// appears earlier in the text.
		{"not the second, the first", 1},
		{"not the first one, the second", 1},
		{"firstly", 0}, // whole-word match only
		{"nothing here", 0},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			if got := ExtractHints(tt.message).Ordinal; got != tt.want {
				t.Errorf("Ordinal = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExtractHintsYearAndDocket(t *testing.T) {
	tests := []struct {
		message    string
		wantYear   int
		wantDocket string
	}{
		{"the 2021 case", 2021, ""},
		{"decided back in 1987", 1987, ""},
		{"1899 is out of range", 0, ""},
		{"2150 is out of range too", 0, ""},
		{"docket 21-1234", 0, "21-1234"},
		{"see 99-123456 for details", 0, "99-123456"},
		{"21-12 is too short", 0, ""},
		{"the 2019 appeal, docket 19-7439", 2019, "19-7439"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			hints := ExtractHints(tt.message)
			if hints.Year != tt.wantYear {
				t.Errorf("Year = %d, want %d", hints.Year, tt.wantYear)
			}
			if hints.DocketID != tt.wantDocket {
				t.Errorf("DocketID = %q, want %q", hints.DocketID, tt.wantDocket)
			}
		})
	}
}

func TestExtractHintsPartyTokens(t *testing.T) {
	hints := ExtractHints("the Apple case about patents, compare the holding")

	wantPresent := []string{"apple", "patents"}
	wantAbsent := []string{"the", "case", "compare", "holding", "about"}

	for _, tok := range wantPresent {
		if _, ok := hints.PartyTokens[tok]; !ok {
			t.Errorf("expected party token %q, got %v", tok, hints.PartyTokens)
		}
	}
	for _, tok := range wantAbsent {
		if _, ok := hints.PartyTokens[tok]; ok {
			t.Errorf("token %q should have been filtered, got %v", tok, hints.PartyTokens)
		}
	}
}

func TestTokenizeLabelMatchesPartyTokenRules(t *testing.T) {
	tokens := TokenizeLabel("Apple Inc. v. Samsung Electronics (2012)")

	for _, tok := range []string{"apple", "inc.", "samsung", "electronics"} {
		if _, ok := tokens[tok]; !ok {
			t.Errorf("expected label token %q, got %v", tok, tokens)
		}
	}
	if _, ok := tokens["2012"]; ok {
		t.Error("purely numeric token should be dropped")
	}
	if _, ok := tokens["v."]; ok {
		t.Error("tokens of length <= 2 should be dropped")
	}
}
