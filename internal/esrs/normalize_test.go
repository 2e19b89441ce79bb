package esrs

import "testing"

func TestNormalizeStandardCode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"general disclosures with space", "ESRS 2", "ESRS 2"},
		{"general disclosures with hyphen", "ESRS-2", "ESRS 2"},
		{"general disclosures compact", "ESRS2", "ESRS 2"},
		{"general disclosures bare digit", "2", "ESRS 2"},
		{"general disclosures lowercase", "esrs 2", "ESRS 2"},
		{"general disclosures double space", "ESRS  2", "ESRS 2"},
		{"topical with prefix", "ESRS E1", "E1"},
		{"topical with hyphen prefix", "ESRS-E1", "E1"},
		{"topical lowercase prefix", "esrs s1", "s1"},
		{"already normalized", "E1", "E1"},
		{"governance", "ESRS G1", "G1"},
		{"surrounding whitespace", "  ESRS E4  ", "E4"},
		{"prefix only falls back to input", "ESRS ", "ESRS"},
		{"empty stays empty", "", ""},
		{"whitespace only", "   ", "   "},
		{"unrelated code untouched", "GRI 305", "GRI 305"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeStandardCode(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeStandardCode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeStandardCodeIdempotent(t *testing.T) {
	inputs := []string{"ESRS 2", "ESRS-2", "ESRS  2", "ESRS E1", "E1", "2", "S4", "GRI 305"}
	for _, in := range inputs {
		once := NormalizeStandardCode(in)
		twice := NormalizeStandardCode(once)
		if once != twice {
			t.Errorf("NormalizeStandardCode not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestStandardFromDatapointCode(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"E1-1", "E1"},
		{"e1-6", "E1"},
		{"S2-4", "S2"},
		{"G1-3", "G1"},
		{"ESRS 2.BP-1", "ESRS 2"},
		{"ESRS  2.IRO-1", "ESRS 2"},
		{"ESRS2 GOV-1", "ESRS 2"},
		{"ESRS-2 SBM-3", "ESRS 2"},
		{"BP-1", "Other"},
		{"", "Other"},
	}

	for _, tt := range tests {
		got := StandardFromDatapointCode(tt.input)
		if got != tt.want {
			t.Errorf("StandardFromDatapointCode(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
