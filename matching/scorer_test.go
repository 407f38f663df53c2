package matching

import (
	"testing"
	"time"

	"github.com/campusfind/api-go/config"
	"github.com/campusfind/api-go/models"
)

func testConfig() *config.MatchingConfig {
	return &config.MatchingConfig{
		LocationWeight:    0.25,
		DateWeight:        0.15,
		ColorWeight:       0.20,
		DescriptionWeight: 0.40,
		MinScore:          40,
		ReportWindowDays:  30,
	}
}

func report(polarity, category, color, location, description string, eventDate time.Time) models.Item {
	return models.Item{
		Polarity:    polarity,
		Category:    category,
		Color:       color,
		Location:    location,
		Description: description,
		EventDate:   eventDate,
		Status:      models.ItemStatusActive,
	}
}

func TestCategoryMismatchIsHardGate(t *testing.T) {
	scorer := NewScorer(testConfig())
	day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	lost := report(models.PolarityLost, "Electronics", "Black", "Library", "black dell laptop stickers", day)
	found := report(models.PolarityFound, "Clothing", "Black", "Library", "black dell laptop stickers", day)

	if score := scorer.Score(lost, found); score != 0 {
		t.Errorf("expected 0 for category mismatch, got %d", score)
	}
}

func TestPerfectMatchScoresFull(t *testing.T) {
	scorer := NewScorer(testConfig())
	day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	lost := report(models.PolarityLost, "Electronics", "Black", "Library", "black dell laptop with stickers", day)
	found := report(models.PolarityFound, "Electronics", "Black", "Library", "black dell laptop with stickers", day)

	if score := scorer.Score(lost, found); score != 100 {
		t.Errorf("expected 100 for identical reports, got %d", score)
	}
}

func TestLocationGroupPartialCredit(t *testing.T) {
	scorer := NewScorer(testConfig())
	day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	// Same building cluster (Academic Buildings), same day, same color,
	// no descriptions: 0.5*0.25 + 1.0*0.15 + 1.0*0.20 = 0.475.
	lost := report(models.PolarityLost, "Electronics", "Black", "Library", "", day)
	found := report(models.PolarityFound, "Electronics", "Black", "IT Building", "", day)

	if score := scorer.Score(lost, found); score != 48 {
		t.Errorf("expected 48, got %d", score)
	}
}

func TestUncertainLocationCredit(t *testing.T) {
	if got := locationSignal(config.LocationNotSure, "Library"); got != 0.25 {
		t.Errorf("expected 0.25 for uncertain location, got %v", got)
	}
	if got := locationSignal("Boys Hostel", "Library"); got != 0 {
		t.Errorf("expected 0 for unrelated locations, got %v", got)
	}
}

func TestDateSignalDecaysLinearly(t *testing.T) {
	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	if got := dateSignal(day, day, 30); got != 1.0 {
		t.Errorf("expected 1.0 for same day, got %v", got)
	}
	if got := dateSignal(day, day.AddDate(0, 0, 15), 30); got != 0.5 {
		t.Errorf("expected 0.5 at half the window, got %v", got)
	}
	if got := dateSignal(day, day.AddDate(0, 0, 30), 30); got != 0 {
		t.Errorf("expected 0 at the window edge, got %v", got)
	}
}

func TestColorSentinelPartialCredit(t *testing.T) {
	if got := colorSignal("Don't Remember", "Blue"); got != 0.5 {
		t.Errorf("expected 0.5 for sentinel color, got %v", got)
	}
	if got := colorSignal("Red", "Blue"); got != 0 {
		t.Errorf("expected 0 for different colors, got %v", got)
	}
	if got := colorSignal("Blue", "Blue"); got != 1.0 {
		t.Errorf("expected 1.0 for exact color, got %v", got)
	}
}

func TestDescriptionSignalSymmetric(t *testing.T) {
	a := "black leather wallet with a broken zipper"
	b := "wallet, leather, zipper looks broken"

	if descriptionSignal(a, b) != descriptionSignal(b, a) {
		t.Error("description similarity must be symmetric")
	}
	if descriptionSignal(a, b) <= 0 {
		t.Error("expected overlap between similar descriptions")
	}
	if got := descriptionSignal(a, "unrelated green umbrella"); got != 0 {
		t.Errorf("expected 0 overlap, got %v", got)
	}
}

func TestRankCandidatesFiltersBelowThreshold(t *testing.T) {
	scorer := NewScorer(testConfig())
	day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	lost := report(models.PolarityLost, "Electronics", "Black", "Library", "black dell laptop", day)
	strong := report(models.PolarityFound, "Electronics", "Black", "Library", "black dell laptop", day)
	weak := report(models.PolarityFound, "Electronics", "Red", "Boys Hostel", "green umbrella", day.AddDate(0, 0, -25))
	wrongCategory := report(models.PolarityFound, "Clothing", "Black", "Library", "black dell laptop", day)

	candidates := scorer.RankCandidates(lost, []models.Item{weak, wrongCategory, strong})
	if len(candidates) != 1 {
		t.Fatalf("expected 1 surfaced candidate, got %d", len(candidates))
	}
	if candidates[0].Score != 100 {
		t.Errorf("expected surviving candidate to score 100, got %d", candidates[0].Score)
	}
}

func TestRankCandidatesBreaksTiesByRecency(t *testing.T) {
	scorer := NewScorer(testConfig())
	day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	older := report(models.PolarityFound, "Electronics", "Black", "Library", "black dell laptop", day)
	older.CreatedAt = day
	newer := older
	newer.CreatedAt = day.AddDate(0, 0, 2)

	lost := report(models.PolarityLost, "Electronics", "Black", "Library", "black dell laptop", day)

	candidates := scorer.RankCandidates(lost, []models.Item{older, newer})
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(candidates))
	}
	if !candidates[0].Item.CreatedAt.After(candidates[1].Item.CreatedAt) {
		t.Error("expected the most recent report first on a tie")
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	scorer := NewScorer(testConfig())
	day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	lost := report(models.PolarityLost, "Electronics", "Don't Remember", "Not Sure", "silver watch scratched band", day)
	found := report(models.PolarityFound, "Electronics", "Grey", "Play Ground", "scratched silver watch", day.AddDate(0, 0, -3))

	first := scorer.Score(lost, found)
	for i := 0; i < 5; i++ {
		if got := scorer.Score(lost, found); got != first {
			t.Fatalf("score changed between runs: %d then %d", first, got)
		}
	}
}
