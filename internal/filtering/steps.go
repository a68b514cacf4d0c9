package filtering

import (
	"strings"

	"github.com/spigell/internmatch/internal/catalog"
)

// base carries the enable/disable bookkeeping shared by all steps. A step
// constructed from an empty or uninterpretable criterion disables itself,
// which makes the dimension match all listings (fail open).
type base struct {
	disabled bool
	reason   string
}

func (b *base) Disable(reason string) {
	b.disabled = true
	b.reason = reason
}

func (b *base) IsEnabled() bool { return !b.disabled }

type skillsFilter struct {
	base
	skills []string
}

// NewSkills creates a filter keeping listings that declare at least one of
// the wanted skills. Blank entries are dropped; with nothing left the step
// is a wildcard.
func NewSkills(skills []string) Filter {
	wanted := make([]string, 0, len(skills))
	for _, skill := range skills {
		if s := strings.TrimSpace(skill); s != "" {
			wanted = append(wanted, s)
		}
	}

	f := &skillsFilter{skills: wanted}
	if len(wanted) == 0 {
		f.Disable("no skills requested")
	}
	return f
}

func (f *skillsFilter) Name() string { return "skills" }

func (f *skillsFilter) Keep(l catalog.Listing) bool {
	for _, wanted := range f.skills {
		if equalFoldAny(l.Skills, wanted) {
			return true
		}
	}
	return false
}

type locationFilter struct {
	base
	location string
}

// NewLocation creates a filter keeping listings in the given location.
// The comparison is an exact case-insensitive match, not a substring.
func NewLocation(location string) Filter {
	f := &locationFilter{location: strings.TrimSpace(location)}
	if f.location == "" {
		f.Disable("no location requested")
	}
	return f
}

func (f *locationFilter) Name() string { return "location" }

func (f *locationFilter) Keep(l catalog.Listing) bool {
	return strings.EqualFold(l.Location, f.location)
}

type categoryFilter struct {
	base
	category string
}

// NewCategory creates a filter keeping listings in the given category.
func NewCategory(category string) Filter {
	f := &categoryFilter{category: strings.TrimSpace(category)}
	if f.category == "" {
		f.Disable("no category requested")
	}
	return f
}

func (f *categoryFilter) Name() string { return "category" }

func (f *categoryFilter) Keep(l catalog.Listing) bool {
	return strings.EqualFold(l.Category, f.category)
}

type stipendFilter struct {
	base
	min int
	max int
}

// NewStipendRange creates a filter keeping listings whose stipend falls in
// [min, max], inclusive on both ends. A zero max means unbounded. Inverted
// bounds cannot be interpreted and disable the step instead of rejecting
// every listing.
func NewStipendRange(min, max int) Filter {
	if min < 0 {
		min = 0
	}

	f := &stipendFilter{min: min, max: max}
	switch {
	case min == 0 && max <= 0:
		f.Disable("no stipend range requested")
	case max > 0 && max < min:
		f.Disable("stipend bounds inverted")
	}
	return f
}

func (f *stipendFilter) Name() string { return "stipend" }

func (f *stipendFilter) Keep(l catalog.Listing) bool {
	if l.Stipend < f.min {
		return false
	}
	return f.max <= 0 || l.Stipend <= f.max
}

type durationFilter struct {
	base
	duration string
}

// NewDuration creates a filter keeping listings with the given duration.
// Duration is a small closed enumeration, so the match is case-sensitive.
func NewDuration(duration string) Filter {
	f := &durationFilter{duration: duration}
	if duration == "" {
		f.Disable("no duration requested")
	}
	return f
}

func (f *durationFilter) Name() string { return "duration" }

func (f *durationFilter) Keep(l catalog.Listing) bool {
	return l.Duration == f.duration
}
