package regexengine

import "testing"

func TestMatchesStarAlt(t *testing.T) {
	n, err := Compile("(ab|c*d)*", 1)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	accept := []string{"", "ab", "abd", "abccccd", "abababcccdabd"}
	reject := []string{"a", "c", "abccccc", "12"}

	for _, s := range accept {
		if !n.Matches(s) {
			t.Errorf("Matches(%q) = false, want true", s)
		}
	}
	for _, s := range reject {
		if n.Matches(s) {
			t.Errorf("Matches(%q) = true, want false", s)
		}
	}
}
