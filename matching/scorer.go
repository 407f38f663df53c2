package matching

import (
	"math"
	"sort"
	"time"

	"github.com/campusfind/api-go/config"
	"github.com/campusfind/api-go/models"
)

// Candidate is one opposite-polarity item with its similarity score.
type Candidate struct {
	Item  models.Item
	Score int
}

// Scorer computes similarity between a lost and a found report as a
// weighted combination of independent signals, each normalized to
// [0,1]. Category is a hard gate, not a weight: a category mismatch
// yields 0 regardless of everything else. The scorer is pure and
// stateless; it performs no reads or writes.
type Scorer struct {
	cfg *config.MatchingConfig
}

func NewScorer(cfg *config.MatchingConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

// Score returns the similarity between a lost and a found item as an
// integer percentage in [0,100].
func (s *Scorer) Score(lost, found models.Item) int {
	if lost.Category != found.Category {
		return 0
	}

	sum := s.cfg.LocationWeight*locationSignal(lost.Location, found.Location) +
		s.cfg.DateWeight*dateSignal(lost.EventDate, found.EventDate, s.cfg.ReportWindowDays) +
		s.cfg.ColorWeight*colorSignal(lost.Color, found.Color) +
		s.cfg.DescriptionWeight*descriptionSignal(lost.Description, found.Description)

	score := int(math.Round(sum * 100))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// RankCandidates scores an item against a pool of opposite-polarity
// items, drops everything below the surfacing threshold and returns the
// rest ordered by score, ties broken by most recent report first.
func (s *Scorer) RankCandidates(item models.Item, pool []models.Item) []Candidate {
	var candidates []Candidate
	for _, other := range pool {
		var score int
		if item.Polarity == models.PolarityLost {
			score = s.Score(item, other)
		} else {
			score = s.Score(other, item)
		}
		if score < s.cfg.MinScore {
			continue
		}
		candidates = append(candidates, Candidate{Item: other, Score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Item.CreatedAt.After(candidates[j].Item.CreatedAt)
	})

	return candidates
}

// locationSignal: exact match 1.0, same building cluster 0.5, an
// uncertain report on either side 0.25, otherwise 0.
func locationSignal(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == config.LocationNotSure || b == config.LocationNotSure {
		return 0.25
	}
	ga, gb := config.LocationGroupOf(a), config.LocationGroupOf(b)
	if ga != "" && ga == gb {
		return 0.5
	}
	return 0
}

// dateSignal decays linearly from 1.0 at the same day to 0 at the edge
// of the recency window.
func dateSignal(a, b time.Time, windowDays int) float64 {
	if windowDays <= 0 {
		return 0
	}
	days := math.Abs(a.Sub(b).Hours()) / 24
	if days >= float64(windowDays) {
		return 0
	}
	return 1 - days/float64(windowDays)
}

// colorSignal: exact match 1.0, a sentinel value ("Multi-color",
// "Don't Remember", "Other") on the lost side 0.5, otherwise 0.
func colorSignal(lost, found string) float64 {
	if lost == found {
		return 1.0
	}
	if config.IsColorSentinel(lost) || config.IsColorSentinel(found) {
		return 0.5
	}
	return 0
}

// descriptionSignal is the Jaccard overlap of the two descriptions'
// normalized token sets. Symmetric and deterministic by construction.
func descriptionSignal(a, b string) float64 {
	ta, tb := TokenSet(a), TokenSet(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}
	intersection := 0
	for tok := range ta {
		if tb[tok] {
			intersection++
		}
	}
	union := len(ta) + len(tb) - intersection
	return float64(intersection) / float64(union)
}
