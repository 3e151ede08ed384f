package reference

import (
	"testing"
)

func TestDetectExplicitReference(t *testing.T) {
	tests := []struct {
		message string
		want    int
		wantOk  bool
	}{
		// Bare digits in [1,10].
		{"3", 3, true},
		{"  7  ", 7, true},
		{"10", 10, true},
		{"0", 0, false},
		{"11", 0, false},
		{"-2", 0, false},

		// Ordinal words and abbreviations.
		{"the second one", 2, true},
		{"2nd", 2, true},
		{"THE THIRD CASE PLEASE", 3, true},
		{"4th option sounds right", 4, true},
		{"fifth", 5, true},
		{"the first", 1, true},
		{"1st", 1, true},
		// "first" is checked after "second" on purpose.
		{"not the first one, the second", 2, true},

		// Labeled references. Indexes are not bounds-checked here.
		{"option 3", 3, true},
		{"option 12", 12, true},
		{"number 2", 2, true},
		{"case 4", 4, true},
		{"# 5", 5, true},
		{"#5", 5, true},

		// No detection.
		{"", 0, false},
		{"the apple one", 0, false},
		{"what is the holding?", 0, false},
		{"tell me more", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			got, ok := DetectExplicitReference(tt.message)
			if ok != tt.wantOk || got != tt.want {
				t.Errorf("DetectExplicitReference(%q) = (%d, %v), want (%d, %v)",
					tt.message, got, ok, tt.want, tt.wantOk)
			}
		})
	}
}

func TestDetectExplicitReferenceIsStateless(t *testing.T) {
	// Same input, same answer, regardless of how often it runs.
	for i := 0; i < 3; i++ {
		got, ok := DetectExplicitReference("option 9")
		if !ok || got != 9 {
			t.Fatalf("run %d: got (%d, %v), want (9, true)", i, got, ok)
		}
	}
}
