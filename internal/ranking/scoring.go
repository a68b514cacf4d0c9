// Package ranking scores internship listings against a candidate profile and
// merges scored pools into one ranked result set.
package ranking

import (
	"math"
	"strings"
	"sync"

	"github.com/spigell/internmatch/internal/catalog"
	"github.com/spigell/internmatch/internal/extractor"
)

// remoteLocation is the listing location that earns the fallback bonus.
const remoteLocation = "remote"

// maxScoreWorkers bounds the concurrency of the scoring map phase.
const maxScoreWorkers = 8

// Weights configures the scoring components. The default split is preserved
// from the observed product behavior; it carries no stated rationale, so it
// is kept configurable rather than baked in.
type Weights struct {
	SkillOverlap   float64 `mapstructure:"skill-overlap"`
	LocationExact  float64 `mapstructure:"location-exact"`
	LocationRemote float64 `mapstructure:"location-remote"`
	Experience     float64 `mapstructure:"experience"`
	Category       float64 `mapstructure:"category"`
}

// DefaultWeights returns the 50/20/15/15 split with a 15 point remote bonus.
func DefaultWeights() Weights {
	return Weights{
		SkillOverlap:   50,
		LocationExact:  20,
		LocationRemote: 15,
		Experience:     15,
		Category:       15,
	}
}

// ScoredListing is a listing plus its compatibility score in [0,100].
type ScoredListing struct {
	catalog.Listing
	MatchScore int `json:"match_score"`
}

// Scorer computes compatibility scores. It is immutable and safe for
// concurrent use.
type Scorer struct {
	weights Weights
}

func NewScorer(weights Weights) *Scorer {
	return &Scorer{weights: weights}
}

// Score computes the weighted compatibility between a profile and a listing.
// It never fails: missing sub-fields contribute their identity value. The
// result is rounded and clamped to [0,100]; the clamp is a contract, not an
// assumption about the configured weights.
func (s *Scorer) Score(profile extractor.Profile, listing catalog.Listing) int {
	score := s.skillOverlapScore(profile, listing)
	score += s.locationScore(profile, listing)
	score += s.experienceScore(profile, listing)
	score += s.categoryScore(profile, listing)

	rounded := int(math.Round(score))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}

// skillOverlapScore is the matched fraction of the listing's skills, weighted.
// The divisor is guarded so a listing without declared skills scores zero
// instead of dividing by zero.
func (s *Scorer) skillOverlapScore(profile extractor.Profile, listing catalog.Listing) float64 {
	if len(listing.Skills) == 0 {
		return 0
	}

	have := make(map[string]struct{}, len(profile.Skills))
	for _, skill := range profile.Skills {
		have[strings.ToLower(skill)] = struct{}{}
	}

	matches := 0
	for _, skill := range listing.Skills {
		if _, ok := have[strings.ToLower(skill)]; ok {
			matches++
		}
	}

	return float64(matches) / float64(len(listing.Skills)) * s.weights.SkillOverlap
}

// locationScore awards the exact-match bonus, else the remote bonus, else
// nothing. The two bonuses are mutually exclusive, in that priority order.
func (s *Scorer) locationScore(profile extractor.Profile, listing catalog.Listing) float64 {
	if listing.Location == "" {
		return 0
	}
	if strings.EqualFold(listing.Location, profile.Location) {
		return s.weights.LocationExact
	}
	if strings.EqualFold(listing.Location, remoteLocation) {
		return s.weights.LocationRemote
	}
	return 0
}

func (s *Scorer) experienceScore(profile extractor.Profile, listing catalog.Listing) float64 {
	if profile.ExperienceYears >= listing.MinExperience {
		return s.weights.Experience
	}
	return 0
}

func (s *Scorer) categoryScore(profile extractor.Profile, listing catalog.Listing) float64 {
	if profile.PreferredCategory == "" || listing.Category == "" {
		return 0
	}
	if strings.EqualFold(listing.Category, profile.PreferredCategory) {
		return s.weights.Category
	}
	return 0
}

// ScoreAll maps the scorer over a catalog. Listings are scored independently
// on a bounded worker pool; results land in fixed index slots, so the output
// order matches the input order regardless of scheduling.
func (s *Scorer) ScoreAll(profile extractor.Profile, listings *catalog.Listings) []ScoredListing {
	if listings == nil || len(listings.Items) == 0 {
		return []ScoredListing{}
	}

	scored := make([]ScoredListing, len(listings.Items))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, maxScoreWorkers)
	for i := range listings.Items {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(idx int) {
			defer wg.Done()
			defer func() { <-semaphore }()

			listing := listings.Items[idx]
			scored[idx] = ScoredListing{
				Listing:    listing,
				MatchScore: s.Score(profile, listing),
			}
		}(i)
	}
	wg.Wait()

	return scored
}
