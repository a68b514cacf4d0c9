package ranking

import (
	"sort"
	"strings"

	"github.com/spigell/internmatch/internal/catalog"
	"github.com/spigell/internmatch/internal/extractor"
)

// Default pool sizes for Recommend.
const (
	DefaultTopLocal   = 5
	DefaultTopOverall = 10
)

// Merge combines scored pools into one ranked sequence. Pool order encodes
// caller priority: on duplicate IDs the first occurrence wins, regardless of
// score. The combined set is then stable-sorted descending by score, so ties
// keep their post-dedup relative order and identical inputs always produce
// identical output. A positive limit truncates the sorted result.
func Merge(pools [][]ScoredListing, limit int) []ScoredListing {
	merged := make([]ScoredListing, 0)
	seen := make(map[string]struct{})

	for _, pool := range pools {
		for _, item := range pool {
			if _, ok := seen[item.ID]; ok {
				continue
			}
			seen[item.ID] = struct{}{}
			merged = append(merged, item)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].MatchScore > merged[j].MatchScore
	})

	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}

	return merged
}

// Recommend scores the whole catalog against the profile and merges two
// pools: listings in the candidate's own location first, then the overall
// top scorers. topLocal and topOverall bound the pool sizes before the merge;
// non-positive values fall back to the defaults.
func (s *Scorer) Recommend(profile extractor.Profile, listings *catalog.Listings, topLocal, topOverall int) []ScoredListing {
	if topLocal <= 0 {
		topLocal = DefaultTopLocal
	}
	if topOverall <= 0 {
		topOverall = DefaultTopOverall
	}

	scored := s.ScoreAll(profile, listings)

	local := make([]ScoredListing, 0)
	for _, item := range scored {
		if strings.EqualFold(item.Location, profile.Location) {
			local = append(local, item)
		}
	}

	pools := [][]ScoredListing{
		topN(local, topLocal),
		topN(scored, topOverall),
	}

	return Merge(pools, 0)
}

// topN stable-sorts a copy of the pool descending by score and keeps the
// first n entries. The input is never reordered.
func topN(pool []ScoredListing, n int) []ScoredListing {
	sorted := make([]ScoredListing, len(pool))
	copy(sorted, pool)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MatchScore > sorted[j].MatchScore
	})

	if n > 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
