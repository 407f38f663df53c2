package verification

import (
	"math"
	"strings"

	"github.com/campusfind/api-go/matching"
	"github.com/campusfind/api-go/models"
)

// GradeResult is the outcome of grading one submission against a
// challenge's answer key.
type GradeResult struct {
	Correct  []bool
	Accuracy int
	Passed   bool
}

// Grade compares each submitted answer to the stored key, weights the
// correct ones and sums to an accuracy percentage. Missing answers
// count as wrong. Accuracy at or above passThreshold passes.
func Grade(questions []models.VerificationQuestion, answers []string, passThreshold int) GradeResult {
	result := GradeResult{Correct: make([]bool, len(questions))}

	totalWeight := 0
	earnedWeight := 0
	for i, q := range questions {
		totalWeight += q.Weight
		if i >= len(answers) {
			continue
		}
		if AnswerMatches(q, answers[i]) {
			result.Correct[i] = true
			earnedWeight += q.Weight
		}
	}

	if totalWeight > 0 {
		result.Accuracy = int(math.Round(float64(earnedWeight) * 100 / float64(totalWeight)))
	}
	result.Passed = result.Accuracy >= passThreshold
	return result
}

// AnswerMatches applies the per-question comparison rule: exact
// normalized equality for multiple choice, and for short answers a
// fuzzy rule that accepts equality, containment in either direction,
// or at least half of the key's tokens being mentioned.
func AnswerMatches(q models.VerificationQuestion, answer string) bool {
	expected := matching.NormalizeText(q.ExpectedAnswer)
	submitted := matching.NormalizeText(answer)
	if expected == "" || submitted == "" {
		return false
	}

	if q.Type == models.QuestionTypeMultipleChoice {
		return submitted == expected
	}

	if submitted == expected {
		return true
	}
	if containsWord(expected, submitted) || containsWord(submitted, expected) {
		return true
	}
	return tokenRecall(q.ExpectedAnswer, answer) >= 0.5
}

// containsWord reports whether needle appears in haystack as a
// contiguous word sequence.
func containsWord(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	return strings.Contains(" "+haystack+" ", " "+needle+" ")
}

// tokenRecall is the fraction of the answer key's tokens the
// submission mentions.
func tokenRecall(expected, submitted string) float64 {
	keyTokens := matching.Tokens(expected)
	if len(keyTokens) == 0 {
		return 0
	}
	given := matching.TokenSet(submitted)
	hits := 0
	for _, tok := range keyTokens {
		if given[tok] {
			hits++
		}
	}
	return float64(hits) / float64(len(keyTokens))
}
