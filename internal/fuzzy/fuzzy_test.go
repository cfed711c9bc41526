package fuzzy

import "testing"

func TestCorrect(t *testing.T) {
	genders := []string{"Male", "Female"}
	weather := []string{"Hot", "Rainy", "Cold", "Humid"}

	tests := []struct {
		name  string
		input string
		vocab []string
		want  string
	}{
		{"typo lands on entry", "mael", genders, "Male"},
		{"exact lowercase", "female", genders, "Female"},
		{"original casing returned", "FEMALE", genders, "Female"},
		{"whitespace trimmed", "  cold ", weather, "Cold"},
		{"no match clears threshold", "xyz123", genders, "xyz123"},
		{"rejection lowercases", "XYZ123", genders, "xyz123"},
		{"empty input", "", genders, ""},
		{"close weather typo", "rany", weather, "Rainy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Correct(tt.input, tt.vocab); got != tt.want {
				t.Errorf("Correct(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCorrectIsIdempotent(t *testing.T) {
	vocab := []string{"Street Food", "Home Cooked", "Restaurant", "Unknown"}
	inputs := []string{"street fod", "home cooked", "garbage input", "restarant"}

	for _, in := range inputs {
		once := Correct(in, vocab)
		twice := Correct(once, vocab)
		if once != twice {
			t.Errorf("Correct not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestCorrectTieBreakIsFirstInVocabulary(t *testing.T) {
	// Both entries are the same distance from the input; the earlier
	// one must win every time.
	vocab := []string{"aab", "aac"}
	for i := 0; i < 10; i++ {
		if got := Correct("aaa", vocab); got != "aab" {
			t.Fatalf("expected first vocabulary entry on tie, got %q", got)
		}
	}
}
