package scoring

import (
	"github.com/KirkDiggler/wordlive/internal/models"
)

// ScoringError is a custom error type for scoring errors
type ScoringError string

// Error implements the error interface
func (e ScoringError) Error() string {
	return string(e)
}

const (
	ErrLengthMismatch ScoringError = "guess and target must have the same length"
)

const (
	correctPoints = 2
	presentPoints = 1
)

// Evaluate grades guess against target letter by letter.
//
// Exact matches are resolved first and consume their target letter, then each
// remaining guess letter consumes one unmatched occurrence in the target if any
// is left. A target letter is never credited twice, so repeated letters are
// graded the usual way.
func Evaluate(guess, target string) ([]models.LetterStatus, error) {
	g := []rune(guess)
	t := []rune(target)
	if len(g) != len(t) {
		return nil, ErrLengthMismatch
	}

	statuses := make([]models.LetterStatus, len(g))
	remaining := make(map[rune]int, len(t))

	for i := range g {
		if g[i] == t[i] {
			statuses[i] = models.LetterStatusCorrect
			continue
		}
		statuses[i] = models.LetterStatusAbsent
		remaining[t[i]]++
	}

	for i := range g {
		if statuses[i] == models.LetterStatusCorrect {
			continue
		}
		if remaining[g[i]] > 0 {
			statuses[i] = models.LetterStatusPresent
			remaining[g[i]]--
		}
	}

	return statuses, nil
}

// Score converts letter outcomes to a ranking score:
// 2 per correct letter, 1 per present letter.
func Score(statuses []models.LetterStatus) int {
	score := 0
	for _, s := range statuses {
		switch s {
		case models.LetterStatusCorrect:
			score += correctPoints
		case models.LetterStatusPresent:
			score += presentPoints
		}
	}
	return score
}

// MaxScore is the score of a fully correct guess of the given length
func MaxScore(length int) int {
	return correctPoints * length
}

// IsSolved reports whether every letter is correct
func IsSolved(statuses []models.LetterStatus) bool {
	if len(statuses) == 0 {
		return false
	}
	for _, s := range statuses {
		if s != models.LetterStatusCorrect {
			return false
		}
	}
	return true
}
