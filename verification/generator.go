package verification

import (
	"fmt"
	"strings"

	"github.com/campusfind/api-go/config"
	"github.com/campusfind/api-go/matching"
	"github.com/campusfind/api-go/models"
)

const (
	minQuestions = 3
	maxQuestions = 5
)

// Question is one generated challenge question with its withheld
// answer key and relative weight.
type Question struct {
	Prompt   string
	Type     string
	Options  []string
	Expected string
	Weight   int
}

// BuildQuestions derives 3-5 ownership questions for a match from the
// found item's attributes that the lost report did not disclose:
// primarily distinguishing description details, plus brand, color and
// the recovery location. Attributes the owner already stated in their
// own report are used only as low-weight fallbacks to reach the
// minimum question count. Weights always sum to 100.
func BuildQuestions(lost, found models.Item) []Question {
	var primary, fallback []Question

	// Distinguishing details: tokens of the finder's description the
	// lost report never mentioned.
	if details := undisclosedDetails(lost, found); len(details) > 0 {
		primary = append(primary, Question{
			Prompt:   "Describe any distinguishing details of the item (markings, stickers, contents, signs of wear).",
			Type:     models.QuestionTypeShortAnswer,
			Expected: strings.Join(details, " "),
			Weight:   40,
		})
	}

	if found.Brand != "" && lost.Brand == "" {
		primary = append(primary, Question{
			Prompt:   "What brand is the item?",
			Type:     models.QuestionTypeShortAnswer,
			Expected: found.Brand,
			Weight:   30,
		})
	}

	if !config.IsColorSentinel(found.Color) && (config.IsColorSentinel(lost.Color) || lost.Color == "") {
		primary = append(primary, Question{
			Prompt:   "What is the item's primary color?",
			Type:     models.QuestionTypeMultipleChoice,
			Options:  colorOptions(found.Color),
			Expected: found.Color,
			Weight:   30,
		})
	}

	if lost.Location == config.LocationNotSure && config.LocationGroupOf(found.Location) != "" {
		primary = append(primary, Question{
			Prompt:   "Where on campus do you think you lost the item?",
			Type:     models.QuestionTypeMultipleChoice,
			Options:  locationOptions(found.Location),
			Expected: found.Location,
			Weight:   20,
		})
	}

	// Fallbacks cover reports so similar that little was left
	// undisclosed. They are weaker evidence of ownership, so they only
	// pad up to the minimum.
	fallback = append(fallback,
		Question{
			Prompt:   fmt.Sprintf("What type of item is this? (category: %s)", found.Category),
			Type:     models.QuestionTypeShortAnswer,
			Expected: found.Name,
			Weight:   20,
		},
		Question{
			Prompt:   "What is the item's primary color?",
			Type:     models.QuestionTypeMultipleChoice,
			Options:  colorOptions(found.Color),
			Expected: found.Color,
			Weight:   15,
		},
		Question{
			Prompt:   "Where on campus do you think you lost the item?",
			Type:     models.QuestionTypeMultipleChoice,
			Options:  locationOptions(found.Location),
			Expected: found.Location,
			Weight:   15,
		},
	)

	questions := primary
	for _, q := range fallback {
		if len(questions) >= minQuestions {
			break
		}
		if containsPrompt(questions, q.Prompt) {
			continue
		}
		questions = append(questions, q)
	}
	if len(questions) > maxQuestions {
		questions = questions[:maxQuestions]
	}

	rebalanceWeights(questions)
	return questions
}

// rebalanceWeights scales the relative weights to sum to exactly 100,
// assigning rounding drift to the first (heaviest) question.
func rebalanceWeights(questions []Question) {
	total := 0
	for _, q := range questions {
		total += q.Weight
	}
	if total == 0 {
		return
	}
	sum := 0
	for i := range questions {
		questions[i].Weight = questions[i].Weight * 100 / total
		sum += questions[i].Weight
	}
	questions[0].Weight += 100 - sum
}

// undisclosedDetails returns up to six salient tokens from the found
// item's description and brand that appear nowhere in the lost report.
func undisclosedDetails(lost, found models.Item) []string {
	known := matching.TokenSet(strings.Join([]string{
		lost.Name, lost.Brand, lost.Color, lost.Description, lost.AdditionalInfo,
	}, " "))

	var details []string
	for _, tok := range matching.Tokens(found.Description) {
		if known[tok] {
			continue
		}
		details = append(details, tok)
		if len(details) == 6 {
			break
		}
	}
	return details
}

// colorOptions builds a deterministic four-choice option list that
// contains the expected color.
func colorOptions(expected string) []string {
	options := []string{expected}
	for _, c := range config.Colors {
		if len(options) == 4 {
			break
		}
		if c == expected || config.IsColorSentinel(c) {
			continue
		}
		options = append(options, c)
	}
	return options
}

// locationOptions builds a deterministic four-choice option list that
// contains the expected location.
func locationOptions(expected string) []string {
	options := []string{expected}
	for _, loc := range config.KnownLocations() {
		if len(options) == 4 {
			break
		}
		if loc == expected {
			continue
		}
		options = append(options, loc)
	}
	return options
}

func containsPrompt(questions []Question, prompt string) bool {
	for _, q := range questions {
		if q.Prompt == prompt {
			return true
		}
	}
	return false
}
