package validator

import "testing"

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email   string
		wantErr bool
	}{
		{"user@example.com", false},
		{"first.last+tag@sub.example.co", false},
		{"", true},
		{"not-an-email", true},
		{"missing@tld", true},
		{"@example.com", true},
	}

	for _, tt := range tests {
		err := ValidateEmail(tt.email)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateEmail(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		wantErr  bool
	}{
		{"longenough", false},
		{"12345678", false},
		{"", true},
		{"short", true},
	}

	for _, tt := range tests {
		err := ValidatePassword(tt.password)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePassword(%q) error = %v, wantErr %v", tt.password, err, tt.wantErr)
		}
	}
}

func TestValidateReportingYear(t *testing.T) {
	tests := []struct {
		year    int
		wantErr bool
	}{
		{2020, false},
		{2025, false},
		{2099, false},
		{2019, true},
		{2100, true},
		{0, true},
	}

	for _, tt := range tests {
		err := ValidateReportingYear(tt.year)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateReportingYear(%d) error = %v, wantErr %v", tt.year, err, tt.wantErr)
		}
	}
}

func TestSanitizeEmail(t *testing.T) {
	if got := SanitizeEmail("  User@Example.COM \x00"); got != "user@example.com" {
		t.Errorf("SanitizeEmail() = %q", got)
	}
}

func TestValidateRequired(t *testing.T) {
	if err := ValidateRequired("name", "value"); err != nil {
		t.Errorf("ValidateRequired() unexpected error: %v", err)
	}
	if err := ValidateRequired("name", "   "); err == nil {
		t.Error("ValidateRequired() accepted whitespace-only value")
	}
}
