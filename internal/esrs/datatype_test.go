package esrs

import (
	"errors"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestClassifyDataType(t *testing.T) {
	tests := []struct {
		name     string
		dataType *string
		want     ValueKind
	}{
		{"nil type is text", nil, KindText},
		{"empty type is text", strPtr(""), KindText},
		{"unknown type is text", strPtr("Ratio spec"), KindText},
		{"narrative", strPtr("Narrative"), KindText},
		{"semi narrative", strPtr("Semi-narrative"), KindText},
		{"italian text", strPtr("Testo libero"), KindText},
		{"mdr", strPtr("MDR-P"), KindText},
		{"integer", strPtr("Integer"), KindInteger},
		{"italian integer", strPtr("Numero intero"), KindInteger},
		{"percent", strPtr("Percent"), KindPercent},
		{"percentage", strPtr("Percentage of revenue"), KindPercent},
		{"monetary", strPtr("Monetary"), KindNumeric},
		{"mass", strPtr("Mass (tonnes)"), KindNumeric},
		{"table", strPtr("Table"), KindNumeric},
		{"decimal", strPtr("Decimal"), KindNumeric},
		{"numeric keyword wins over text", strPtr("Narrative description of numeric targets"), KindNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyDataType(tt.dataType)
			if got != tt.want {
				t.Errorf("ClassifyDataType(%v) = %v, want %v", tt.dataType, got, tt.want)
			}
		})
	}
}

func TestValidateValue(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		dataType *string
		wantErr  error
	}{
		{"empty always fails", "", strPtr("Narrative"), ErrEmptyValue},
		{"whitespace only fails", "   ", nil, ErrEmptyValue},
		{"free text passes", "We reduced emissions by switching fleets.", strPtr("Narrative"), nil},
		{"nil type accepts anything", "whatever", nil, nil},
		{"integer valid", "42", strPtr("Integer"), nil},
		{"integer negative", "-7", strPtr("Integer"), nil},
		{"integer with spaces", " 1 200 ", strPtr("Integer"), nil},
		{"integer decimal rejected", "3.5", strPtr("Integer"), ErrNotAnInteger},
		{"integer comma decimal rejected", "3,5", strPtr("Integer"), ErrNotAnInteger},
		{"integer text rejected", "twelve", strPtr("Integer"), ErrNotAnInteger},
		{"percent valid", "85", strPtr("Percent"), nil},
		{"percent with sign", "85%", strPtr("Percent"), nil},
		{"percent comma decimal", "12,5", strPtr("Percent"), nil},
		{"percent zero", "0", strPtr("Percent"), nil},
		{"percent hundred", "100", strPtr("Percent"), nil},
		{"percent above range", "101", strPtr("Percent"), ErrOutOfRange},
		{"percent negative", "-1", strPtr("Percent"), ErrOutOfRange},
		{"percent not a number", "many", strPtr("Percent"), ErrNotANumber},
		{"monetary valid", "1250000.50", strPtr("Monetary"), nil},
		{"monetary comma decimal", "1250,50", strPtr("Monetary"), nil},
		{"monetary text rejected", "a lot", strPtr("Monetary"), ErrNotANumber},
		{"mass valid", "340.2", strPtr("Mass (tonnes)"), nil},
		{"mixed descriptor demands a number", "free prose, not a number", strPtr("Narrative description of numeric targets"), ErrNotANumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateValue(tt.raw, tt.dataType)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateValue(%q, %v) error = %v, want %v", tt.raw, tt.dataType, err, tt.wantErr)
			}
		})
	}
}
