package verification

import (
	"testing"

	"github.com/campusfind/api-go/models"
)

func shortAnswer(expected string, weight int) models.VerificationQuestion {
	return models.VerificationQuestion{
		Type:           models.QuestionTypeShortAnswer,
		ExpectedAnswer: expected,
		Weight:         weight,
	}
}

func multipleChoice(expected string, weight int) models.VerificationQuestion {
	return models.VerificationQuestion{
		Type:           models.QuestionTypeMultipleChoice,
		ExpectedAnswer: expected,
		Weight:         weight,
	}
}

func TestGradeWeightsAnswers(t *testing.T) {
	questions := []models.VerificationQuestion{
		shortAnswer("red stickers", 40),
		shortAnswer("dell", 30),
		multipleChoice("Black", 30),
	}

	// First two right, last wrong: 70 clears a threshold of 60.
	result := Grade(questions, []string{"red stickers", "Dell", "Blue"}, 60)
	if result.Accuracy != 70 {
		t.Errorf("expected accuracy 70, got %d", result.Accuracy)
	}
	if !result.Passed {
		t.Error("expected 70 to pass at threshold 60")
	}
	want := []bool{true, true, false}
	for i, ok := range result.Correct {
		if ok != want[i] {
			t.Errorf("question %d: correct=%v, want %v", i, ok, want[i])
		}
	}

	// Only the heaviest question right: 40 falls short.
	result = Grade(questions, []string{"red stickers", "hp", "Blue"}, 60)
	if result.Accuracy != 40 {
		t.Errorf("expected accuracy 40, got %d", result.Accuracy)
	}
	if result.Passed {
		t.Error("expected 40 to fail at threshold 60")
	}
}

func TestGradeMissingAnswersCountWrong(t *testing.T) {
	questions := []models.VerificationQuestion{
		shortAnswer("dell", 50),
		shortAnswer("black", 30),
		shortAnswer("stickers", 20),
	}

	result := Grade(questions, []string{"dell"}, 60)
	if len(result.Correct) != 3 {
		t.Fatalf("expected a verdict per question, got %d", len(result.Correct))
	}
	if result.Accuracy != 50 {
		t.Errorf("expected accuracy 50, got %d", result.Accuracy)
	}
	if result.Correct[1] || result.Correct[2] {
		t.Error("unanswered questions must grade as wrong")
	}
}

func TestAnswerMatchesNormalizes(t *testing.T) {
	q := multipleChoice("Blue", 100)
	if !AnswerMatches(q, "  BLUE! ") {
		t.Error("expected case and punctuation to be ignored")
	}
	if AnswerMatches(q, "Navy") {
		t.Error("multiple choice requires the exact option")
	}
	if AnswerMatches(q, "") {
		t.Error("empty answer must not match")
	}
}

func TestAnswerMatchesContainment(t *testing.T) {
	q := shortAnswer("red stripes", 100)
	if !AnswerMatches(q, "it has red stripes on the side") {
		t.Error("expected the key inside a longer answer to match")
	}
	if !AnswerMatches(q, "red stripes") {
		t.Error("expected exact answer to match")
	}
	if AnswerMatches(q, "blue dots") {
		t.Error("unrelated answer must not match")
	}
}

func TestAnswerMatchesTokenRecall(t *testing.T) {
	q := shortAnswer("black leather wallet zipper", 100)

	// Two of four key tokens mentioned: exactly at the recall floor.
	if !AnswerMatches(q, "wallet and zipper") {
		t.Error("expected half the key tokens to be enough")
	}
	if AnswerMatches(q, "just a wallet") {
		t.Error("one of four key tokens must not be enough")
	}
}
