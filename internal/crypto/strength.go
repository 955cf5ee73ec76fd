package crypto

import "unicode/utf8"

// strengthLabels maps a score to its display label.
var strengthLabels = [...]string{"TOO WEAK", "WEAK", "MEDIUM", "STRONG", "VERY STRONG"}

// StrengthResult grades a password configuration on a 0..4 scale with a
// matching label.
type StrengthResult struct {
	Score int
	Label string
}

// Score grades a password generated under opts. The grade depends only on
// the password's character count and on how many categories are enabled,
// never on the characters themselves, so equal-length passwords under the
// same options always grade the same.
func Score(password string, opts GeneratorOptions) StrengthResult {
	return ScoreLength(utf8.RuneCountInString(password), opts)
}

// ScoreLength grades a password of the given character count without
// needing the password itself. It never fails: any length and any
// combination of categories (including none) produces a result.
func ScoreLength(length int, opts GeneratorOptions) StrengthResult {
	variety := opts.categoryCount()

	var score int
	switch {
	case length < 6:
		score = 0
	case length < 8:
		if variety >= 2 {
			score = 1
		}
	case length < 12:
		switch {
		case variety >= 3:
			score = 2
		case variety >= 2:
			score = 1
		}
	case length < 16:
		score = 2
		if variety >= 3 {
			score = 3
		}
	default:
		switch {
		case variety == 4:
			score = 4
		case variety >= 3:
			score = 3
		default:
			score = 2
		}
	}

	return StrengthResult{Score: score, Label: strengthLabels[score]}
}
