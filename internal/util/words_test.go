package util

import (
	"reflect"
	"testing"
)

func TestWords(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"Pale Peppermint-N", []string{"pale", "peppermint", "n"}},
		{"Café Crème", []string{"cafe", "creme"}},
		{"  Lush   Tree Tops-N ", []string{"lush", "tree", "tops", "n"}},
		{"Naïve", []string{"naive"}},
		{"", nil},
		{"---", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Words(tt.input)
			if len(got) == 0 && len(tt.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Words(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMatchesWordPrefixes(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"Pale Peppermint-N", "pepper", true},
		{"Pale Peppermint-N", "PALE pep", true},
		{"Pale Peppermint-N", "mint", false}, // prefix only, not substring
		{"Café Crème", "creme", true},
		{"Cafe Creme", "crème", true},
		{"Sky Whisper-N", "sky blue", false},
		{"Sky Whisper-N", "", true},
	}

	for _, tt := range tests {
		if got := MatchesWordPrefixes(tt.name, tt.query); got != tt.want {
			t.Errorf("MatchesWordPrefixes(%q, %q) = %v, want %v", tt.name, tt.query, got, tt.want)
		}
	}
}

func TestNowMillis(t *testing.T) {
	if NowMillis() <= 0 {
		t.Error("NowMillis should be positive")
	}
}
