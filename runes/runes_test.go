package runes_test

import (
	"testing"

	"github.com/brunokim/lam/runes"
)

func TestSpan(t *testing.T) {
	tests := []struct {
		text string
		pred func(rune) bool
		want int
	}{
		{"", runes.IsDigit, 0},
		{"123abc", runes.IsDigit, 3},
		{"abc_1(", runes.IsIdent, 5},
		{"  \t\r\nx", runes.IsSpace, 5},
		{"ção", runes.IsIdent, 0},
		{"x ", runes.IsIdent, 1},
	}
	for _, test := range tests {
		if got := runes.Span(test.text, test.pred); got != test.want {
			t.Errorf("Span(%q) = %d, want %d", test.text, got, test.want)
		}
	}
}

func TestIsIdents(t *testing.T) {
	for _, text := range []string{"X", "x", "_", "foo_1", "1abc"} {
		if !runes.IsIdents(text) {
			t.Errorf("IsIdents(%q) = false, want true", text)
		}
	}
	for _, text := range []string{"", "a b", "f(", "é"} {
		if runes.IsIdents(text) {
			t.Errorf("IsIdents(%q) = true, want false", text)
		}
	}
}
