package internal

import "testing"

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Basics", "Basics"},
		{"Food & Drink", "Food___Drink"},
		{"  zwierzęta domowe ", "zwierzęta_domowe"},
		{"ябълка-1", "ябълка-1"},
		{"../etc", "___etc"},
		{"", "collection"},
	}

	for _, tt := range tests {
		if got := SanitizeFilename(tt.in); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
