package esrs

import (
	"errors"
	"testing"
)

func TestEvaluateMateriality(t *testing.T) {
	tests := []struct {
		name      string
		impact    float64
		financial float64
		want      bool
		wantErr   error
	}{
		{"both below threshold", 2.0, 2.9, false, nil},
		{"impact at threshold", 3.0, 0, true, nil},
		{"financial at threshold", 0, 3.0, true, nil},
		{"both above", 4.5, 5.0, true, nil},
		{"zero scores", 0, 0, false, nil},
		{"max scores", 5, 5, true, nil},
		{"impact negative", -0.1, 2, false, ErrScoreOutOfRange},
		{"financial above scale", 2, 5.1, false, ErrScoreOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EvaluateMateriality(tt.impact, tt.financial)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("EvaluateMateriality(%v, %v) error = %v, want %v", tt.impact, tt.financial, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("EvaluateMateriality(%v, %v) = %v, want %v", tt.impact, tt.financial, got, tt.want)
			}
		})
	}
}
