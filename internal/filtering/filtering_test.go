package filtering

import (
	"reflect"
	"testing"

	"github.com/spigell/internmatch/internal/catalog"
)

func listingIDs(items []catalog.Listing) []string {
	out := make([]string, 0, len(items))
	for _, l := range items {
		out = append(out, l.ID)
	}
	return out
}

func sampleListings() []catalog.Listing {
	return []catalog.Listing{
		{ID: "1", Location: "Remote", Category: "Technology", Duration: "3 months", Stipend: 2000, Skills: []string{"React", "CSS"}},
		{ID: "2", Location: "Remote", Category: "Research", Duration: "6 months", Stipend: 1000, Skills: []string{"Python"}},
		{ID: "3", Location: "Bangalore", Category: "Technology", Duration: "3 months", Stipend: 3000, Skills: []string{"Java"}},
	}
}

func TestApplyLocationExactMatch(t *testing.T) {
	filtered := Apply(Criteria{Location: "Remote"}, sampleListings())

	want := []string{"1", "2"}
	if !reflect.DeepEqual(listingIDs(filtered), want) {
		t.Fatalf("expected %v in original order, got %v", want, listingIDs(filtered))
	}
}

func TestApplyWildcardCriteria(t *testing.T) {
	listings := sampleListings()

	filtered := Apply(Criteria{}, listings)
	if len(filtered) != len(listings) {
		t.Fatalf("empty criteria must match all, got %d of %d", len(filtered), len(listings))
	}
}

func TestApplySkillsAnyMatch(t *testing.T) {
	filtered := Apply(Criteria{Skills: []string{"python", "java"}}, sampleListings())

	want := []string{"2", "3"}
	if !reflect.DeepEqual(listingIDs(filtered), want) {
		t.Fatalf("expected %v, got %v", want, listingIDs(filtered))
	}

	// Blank skill entries degrade the dimension to a wildcard.
	filtered = Apply(Criteria{Skills: []string{"  ", ""}}, sampleListings())
	if len(filtered) != 3 {
		t.Fatalf("blank skills should match all, got %d", len(filtered))
	}
}

func TestApplyStipendRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{
			name:     "inclusive on both ends",
			criteria: Criteria{StipendMin: 1000, StipendMax: 2000},
			want:     []string{"1", "2"},
		},
		{
			name:     "min only is unbounded above",
			criteria: Criteria{StipendMin: 2001},
			want:     []string{"3"},
		},
		{
			name:     "inverted bounds match all",
			criteria: Criteria{StipendMin: 3000, StipendMax: 100},
			want:     []string{"1", "2", "3"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			filtered := Apply(tt.criteria, sampleListings())
			if !reflect.DeepEqual(listingIDs(filtered), tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, listingIDs(filtered))
			}
		})
	}
}

func TestApplyDurationCaseSensitive(t *testing.T) {
	filtered := Apply(Criteria{Duration: "3 months"}, sampleListings())
	want := []string{"1", "3"}
	if !reflect.DeepEqual(listingIDs(filtered), want) {
		t.Fatalf("expected %v, got %v", want, listingIDs(filtered))
	}

	filtered = Apply(Criteria{Duration: "3 Months"}, sampleListings())
	if len(filtered) != 0 {
		t.Fatalf("duration must be case-sensitive, got %v", listingIDs(filtered))
	}
}

func TestApplyConjunction(t *testing.T) {
	criteria := Criteria{
		Location: "remote",
		Category: "technology",
		Skills:   []string{"react"},
	}

	filtered := Apply(criteria, sampleListings())
	want := []string{"1"}
	if !reflect.DeepEqual(listingIDs(filtered), want) {
		t.Fatalf("expected %v, got %v", want, listingIDs(filtered))
	}
}

func TestApplyIdempotent(t *testing.T) {
	criteria := Criteria{Location: "Remote", StipendMin: 500}

	once := Apply(criteria, sampleListings())
	twice := Apply(criteria, once)

	if !reflect.DeepEqual(listingIDs(once), listingIDs(twice)) {
		t.Fatalf("filtering is not idempotent: %v vs %v", listingIDs(once), listingIDs(twice))
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	listings := sampleListings()
	snapshot := make([]catalog.Listing, len(listings))
	copy(snapshot, listings)

	Apply(Criteria{Location: "Bangalore", Skills: []string{"java"}}, listings)

	if !reflect.DeepEqual(listings, snapshot) {
		t.Fatalf("input sequence was mutated")
	}
}

func TestDisableByName(t *testing.T) {
	steps := Steps(Criteria{Location: "Remote"})

	DisableByName(steps, "location", "testing")

	kept := Run[catalog.Listing](nil, steps, sampleListings())
	if len(kept) != 3 {
		t.Fatalf("disabled step must match all, got %d", len(kept))
	}
}

// wrapped mimics a scored result type embedding a Listing.
type wrapped struct {
	catalog.Listing
	Score int
}

func TestRunOverWrappedCandidates(t *testing.T) {
	items := []wrapped{
		{Listing: catalog.Listing{ID: "1", Location: "Remote"}, Score: 80},
		{Listing: catalog.Listing{ID: "2", Location: "Delhi"}, Score: 90},
	}

	kept := Run(nil, Steps(Criteria{Location: "remote"}), items)

	if len(kept) != 1 || kept[0].ID != "1" || kept[0].Score != 80 {
		t.Fatalf("unexpected result: %+v", kept)
	}
}

func TestMatchSingleListing(t *testing.T) {
	listing := catalog.Listing{ID: "1", Location: "Pune", Stipend: 500, Duration: "1 month"}

	if !Match(Criteria{Location: "pune", StipendMin: 100, StipendMax: 500}, listing) {
		t.Fatalf("expected listing to match")
	}
	if Match(Criteria{Duration: "2 months"}, listing) {
		t.Fatalf("expected duration mismatch")
	}
}
