package ranking

import (
	"reflect"
	"testing"

	"github.com/spigell/internmatch/internal/catalog"
	"github.com/spigell/internmatch/internal/extractor"
)

func scored(id string, score int) ScoredListing {
	return ScoredListing{Listing: catalog.Listing{ID: id}, MatchScore: score}
}

func ids(items []ScoredListing) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestMergeDeduplicatesFirstPoolWins(t *testing.T) {
	local := []ScoredListing{scored("1", 40), scored("2", 90)}
	overall := []ScoredListing{scored("1", 95), scored("3", 50)}

	merged := Merge([][]ScoredListing{local, overall}, 0)

	want := []string{"2", "3", "1"}
	if !reflect.DeepEqual(ids(merged), want) {
		t.Fatalf("expected order %v, got %v", want, ids(merged))
	}

	// The duplicate keeps the first pool's score even though the later one is higher.
	if merged[2].MatchScore != 40 {
		t.Fatalf("expected first occurrence to win, got score %d", merged[2].MatchScore)
	}
}

func TestMergeNeverReturnsDuplicateIDs(t *testing.T) {
	pools := [][]ScoredListing{
		{scored("a", 10), scored("b", 20), scored("a", 30)},
		{scored("b", 40), scored("c", 50)},
		{scored("c", 60), scored("a", 70)},
	}

	merged := Merge(pools, 0)

	seen := make(map[string]bool)
	for _, item := range merged {
		if seen[item.ID] {
			t.Fatalf("duplicate id %q in %v", item.ID, ids(merged))
		}
		seen[item.ID] = true
	}
	if len(merged) != 3 {
		t.Fatalf("expected 3 unique entries, got %d", len(merged))
	}
}

func TestMergeStableOnTies(t *testing.T) {
	pool := []ScoredListing{
		scored("first", 50),
		scored("second", 50),
		scored("third", 50),
		scored("winner", 80),
	}

	merged := Merge([][]ScoredListing{pool}, 0)

	want := []string{"winner", "first", "second", "third"}
	if !reflect.DeepEqual(ids(merged), want) {
		t.Fatalf("expected stable tie order %v, got %v", want, ids(merged))
	}
}

func TestMergeDeterministic(t *testing.T) {
	pools := [][]ScoredListing{
		{scored("a", 30), scored("b", 30), scored("c", 70)},
		{scored("d", 70), scored("a", 90)},
	}

	first := ids(Merge(pools, 0))
	for i := 0; i < 10; i++ {
		if got := ids(Merge(pools, 0)); !reflect.DeepEqual(got, first) {
			t.Fatalf("merge is not deterministic: %v vs %v", first, got)
		}
	}
}

func TestMergeLimit(t *testing.T) {
	pool := []ScoredListing{scored("a", 10), scored("b", 90), scored("c", 50)}

	merged := Merge([][]ScoredListing{pool}, 2)
	want := []string{"b", "c"}
	if !reflect.DeepEqual(ids(merged), want) {
		t.Fatalf("expected %v, got %v", want, ids(merged))
	}

	if got := Merge(nil, 5); len(got) != 0 {
		t.Fatalf("expected empty merge of no pools, got %v", got)
	}
}

func TestRecommendPrefersLocalPool(t *testing.T) {
	scorer := NewScorer(DefaultWeights())

	listings := &catalog.Listings{Items: []catalog.Listing{
		{ID: "local-weak", Location: "Pune", Skills: []string{"Go"}},
		{ID: "remote-strong", Location: "Remote", Skills: []string{"React"}},
		{ID: "elsewhere", Location: "Delhi", Skills: []string{"React"}},
	}}

	profile := extractor.Profile{Skills: []string{"react"}, Location: "pune"}

	recs := scorer.Recommend(profile, listings, 0, 0)

	if len(recs) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(recs))
	}

	seen := make(map[string]bool)
	for _, rec := range recs {
		if seen[rec.ID] {
			t.Fatalf("duplicate recommendation %q", rec.ID)
		}
		seen[rec.ID] = true
	}

	// remote-strong: 50 skill + 15 remote + 15 exp = 80; elsewhere: 50 + 15 = 65;
	// local-weak: 20 location + 15 exp = 35.
	want := []string{"remote-strong", "elsewhere", "local-weak"}
	if !reflect.DeepEqual(ids(recs), want) {
		t.Fatalf("expected %v, got %v", want, ids(recs))
	}
}

func TestRecommendEmptyCatalog(t *testing.T) {
	scorer := NewScorer(DefaultWeights())

	recs := scorer.Recommend(extractor.Profile{}, &catalog.Listings{}, 5, 10)
	if len(recs) != 0 {
		t.Fatalf("expected no recommendations, got %d", len(recs))
	}
}

func TestRecommendHonorsPoolLimits(t *testing.T) {
	scorer := NewScorer(DefaultWeights())

	listings := &catalog.Listings{}
	for i := 0; i < 30; i++ {
		listings.Items = append(listings.Items, catalog.Listing{
			ID:       string(rune('a'+i/26)) + string(rune('a'+i%26)),
			Location: "Remote",
		})
	}

	recs := scorer.Recommend(extractor.Profile{Location: "pune"}, listings, 5, 10)

	// No local matches, so only the overall pool contributes.
	if len(recs) != 10 {
		t.Fatalf("expected 10 recommendations, got %d", len(recs))
	}
}
