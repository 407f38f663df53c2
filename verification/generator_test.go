package verification

import (
	"strings"
	"testing"

	"github.com/campusfind/api-go/models"
)

func weightSum(questions []Question) int {
	sum := 0
	for _, q := range questions {
		sum += q.Weight
	}
	return sum
}

func findPrompt(questions []Question, fragment string) *Question {
	for i, q := range questions {
		if strings.Contains(q.Prompt, fragment) {
			return &questions[i]
		}
	}
	return nil
}

func TestBuildQuestionsFromUndisclosedAttributes(t *testing.T) {
	lost := models.Item{
		Polarity:    models.PolarityLost,
		Category:    "Electronics",
		Name:        "Laptop",
		Color:       "Don't Remember",
		Location:    "Not Sure",
		Description: "laptop",
	}
	found := models.Item{
		Polarity:    models.PolarityFound,
		Category:    "Electronics",
		Name:        "Laptop",
		Brand:       "Dell",
		Color:       "Black",
		Location:    "Library",
		Description: "black dell laptop with red stickers and a cracked corner",
	}

	questions := BuildQuestions(lost, found)
	if len(questions) < 3 || len(questions) > 5 {
		t.Fatalf("expected 3 to 5 questions, got %d", len(questions))
	}
	if sum := weightSum(questions); sum != 100 {
		t.Errorf("expected weights to sum to 100, got %d", sum)
	}

	details := findPrompt(questions, "distinguishing details")
	if details == nil {
		t.Fatal("expected a distinguishing-details question")
	}
	if strings.Contains(details.Expected, "laptop") {
		t.Error("answer key must not include attributes the owner already stated")
	}

	brand := findPrompt(questions, "brand")
	if brand == nil {
		t.Fatal("expected a brand question when the lost report omitted it")
	}
	if brand.Expected != "Dell" {
		t.Errorf("expected brand key Dell, got %q", brand.Expected)
	}

	color := findPrompt(questions, "primary color")
	if color == nil {
		t.Fatal("expected a color question when the owner did not remember it")
	}
	if color.Type != models.QuestionTypeMultipleChoice {
		t.Errorf("expected multiple choice, got %s", color.Type)
	}
	if len(color.Options) != 4 {
		t.Errorf("expected 4 color options, got %d", len(color.Options))
	}
	if !containsString(color.Options, "Black") {
		t.Error("options must include the answer key")
	}

	location := findPrompt(questions, "Where on campus")
	if location == nil {
		t.Fatal("expected a location question for an uncertain lost report")
	}
	if !containsString(location.Options, "Library") {
		t.Error("options must include the recovery location")
	}
}

func TestBuildQuestionsFallsBackWhenEverythingDisclosed(t *testing.T) {
	description := "black dell laptop with red stickers and a cracked corner"
	lost := models.Item{
		Polarity:    models.PolarityLost,
		Category:    "Electronics",
		Name:        "Laptop",
		Brand:       "Dell",
		Color:       "Black",
		Location:    "Library",
		Description: description,
	}
	found := lost
	found.Polarity = models.PolarityFound

	questions := BuildQuestions(lost, found)
	if len(questions) != 3 {
		t.Fatalf("expected the 3-question minimum, got %d", len(questions))
	}
	if sum := weightSum(questions); sum != 100 {
		t.Errorf("expected weights to sum to 100, got %d", sum)
	}
	if findPrompt(questions, "distinguishing details") != nil {
		t.Error("no details question when the reports fully overlap")
	}
}

func TestBuildQuestionsNeverRepeatsPrompt(t *testing.T) {
	lost := models.Item{
		Category: "Personal Items",
		Name:     "Wallet",
		Color:    "Other",
		Location: "Not Sure",
	}
	found := models.Item{
		Category:    "Personal Items",
		Name:        "Wallet",
		Color:       "Brown",
		Location:    "Green Cafeteria",
		Description: "brown leather wallet",
	}

	questions := BuildQuestions(lost, found)
	seen := make(map[string]bool)
	for _, q := range questions {
		if seen[q.Prompt] {
			t.Errorf("duplicate prompt %q", q.Prompt)
		}
		seen[q.Prompt] = true
	}
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
