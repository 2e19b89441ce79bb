package esrs

import "errors"

// MaterialityThreshold is the score at or above which a standard is
// material on either dimension.
const MaterialityThreshold = 3.0

// ErrScoreOutOfRange is returned when a materiality score is outside
// the 0 to 5 scale.
var ErrScoreOutOfRange = errors.New("materiality score must be between 0 and 5")

// EvaluateMateriality applies the double-materiality rule: a standard
// is material when its impact score or its financial score reaches the
// threshold. Both scores must lie within [0, 5].
func EvaluateMateriality(impactScore, financialScore float64) (bool, error) {
	if impactScore < 0 || impactScore > 5 {
		return false, ErrScoreOutOfRange
	}
	if financialScore < 0 || financialScore > 5 {
		return false, ErrScoreOutOfRange
	}
	return impactScore >= MaterialityThreshold || financialScore >= MaterialityThreshold, nil
}
