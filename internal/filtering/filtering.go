// Package filtering narrows a listing sequence down with multi-criteria
// predicates. Every step is pure: it returns an order-preserving subsequence
// of its input and never mutates a listing, so the whole pipeline is
// idempotent and safe to run concurrently for independent requests.
package filtering

import (
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/internmatch/internal/catalog"
)

// Criteria describes which listings a user wants to see. An empty value for
// a dimension means "match all" for that dimension. The stipend range is
// inclusive on both ends; a zero StipendMax means unbounded.
type Criteria struct {
	Skills     []string `mapstructure:"skills"`
	Location   string   `mapstructure:"location"`
	Category   string   `mapstructure:"category"`
	Duration   string   `mapstructure:"duration"`
	StipendMin int      `mapstructure:"stipend-min"`
	StipendMax int      `mapstructure:"stipend-max"`
}

// Filter represents a single filtering step applied to listings.
type Filter interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	// Keep reports whether the listing passes this step. It must be pure.
	Keep(l catalog.Listing) bool
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Candidate is anything carrying a listing record. catalog.Listing satisfies
// it directly; wrapper types that embed a Listing inherit it.
type Candidate interface {
	Record() catalog.Listing
}

// Steps builds the canonical ordered step list for the criteria. The order
// (skills, location, category, stipend, duration) is a policy decision; the
// result of the conjunction does not depend on it.
func Steps(c Criteria) []Filter {
	return []Filter{
		NewSkills(c.Skills),
		NewLocation(c.Location),
		NewCategory(c.Category),
		NewStipendRange(c.StipendMin, c.StipendMax),
		NewDuration(c.Duration),
	}
}

// Run executes the supplied filters sequentially over the items, logging a
// per-step drop summary. The returned slice preserves the input order; the
// input slice and its listings are left untouched.
func Run[T Candidate](logger *zap.Logger, steps []Filter, items []T) []T {
	for _, step := range steps {
		if !step.IsEnabled() {
			if logger != nil {
				logger.Debug("filter disabled", zap.String("name", step.Name()))
			}
			continue
		}

		initial := len(items)
		kept := make([]T, 0, len(items))
		for _, item := range items {
			if step.Keep(item.Record()) {
				kept = append(kept, item)
			}
		}
		items = kept

		if logger != nil {
			logger.Info("filter step",
				zap.String("name", step.Name()),
				zap.Int("initial", initial),
				zap.Int("dropped", initial-len(items)),
				zap.Int("left", len(items)),
			)
		}
	}

	return items
}

// Apply runs the canonical steps for the criteria without logging.
func Apply[T Candidate](c Criteria, items []T) []T {
	return Run(nil, Steps(c), items)
}

// Match reports whether a single listing passes every enabled step of the
// criteria.
func Match(c Criteria, l catalog.Listing) bool {
	for _, step := range Steps(c) {
		if step.IsEnabled() && !step.Keep(l) {
			return false
		}
	}
	return true
}

// DisableByName marks a filter with the provided name as disabled while keeping it in the list.
func DisableByName(steps []Filter, name, reason string) {
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
		}
	}
}

func equalFoldAny(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}
