// Package extractor derives a structured candidate profile from free resume
// text. Extraction never fails: every field has a documented default.
package extractor

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

const (
	// DefaultLocation is used when no vocabulary location occurs in the text.
	DefaultLocation = "remote"
	// DefaultEducation is used when no vocabulary degree occurs in the text.
	DefaultEducation = "bachelor"
)

// Profile is the structured representation of a candidate. It is a plain
// value: edits copy the struct instead of mutating a shared instance, so a
// Profile handed to the scorer can never change under it.
type Profile struct {
	Skills          []string `json:"skills"`
	Location        string   `json:"location"`
	ExperienceYears int      `json:"experience_years"`
	EducationLevel  string   `json:"education_level"`
	// PreferredCategory is supplied by the caller, not extracted from text.
	PreferredCategory string `json:"preferred_category,omitempty"`
	RawText           string `json:"-"`
}

// experienceRules is the ordered cascade for extracting experience years.
// The order is a policy decision, not an implementation detail: the first
// rule that matches anywhere in the text wins and its capture is the result.
//  1. an explicit "<n> years" / "<n> yrs" statement
//  2. a number following the word "experience"
//  3. a "<n>+ years" style statement
var experienceRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\s*(years?|yrs?)`),
	regexp.MustCompile(`(?i)experience.*?(\d+)`),
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?`),
}

// Extractor scans text against a fixed vocabulary. It is immutable after New
// and safe for concurrent use.
type Extractor struct {
	vocab     Vocabulary
	skills    []*regexp.Regexp
	locations []*regexp.Regexp
	degrees   []*regexp.Regexp
}

// New compiles the whole-word patterns for the provided vocabulary.
func New(vocab Vocabulary) *Extractor {
	return &Extractor{
		vocab:     vocab,
		skills:    compileTerms(vocab.Skills),
		locations: compileTerms(vocab.Locations),
		degrees:   compileTerms(vocab.Degrees),
	}
}

// Default returns an extractor over DefaultVocabulary.
func Default() *Extractor {
	return New(DefaultVocabulary())
}

// Extract turns raw resume text into a Profile. Unmatched fields receive
// their defaults: empty skills, "remote", 0 years, "bachelor".
func (e *Extractor) Extract(text string) Profile {
	return Profile{
		Skills:          e.extractSkills(text),
		Location:        e.extractLocation(text),
		ExperienceYears: extractExperienceYears(text),
		EducationLevel:  e.extractEducation(text),
		RawText:         text,
	}
}

// extractSkills returns every vocabulary skill present in the text as a
// whole word or phrase. Vocabulary order is preserved among matches, which
// also makes the result free of duplicates.
func (e *Extractor) extractSkills(text string) []string {
	var skills []string
	for i, pattern := range e.skills {
		if pattern.MatchString(text) {
			skills = append(skills, e.vocab.Skills[i])
		}
	}
	return skills
}

func (e *Extractor) extractLocation(text string) string {
	for i, pattern := range e.locations {
		if pattern.MatchString(text) {
			return e.vocab.Locations[i]
		}
	}
	return DefaultLocation
}

func (e *Extractor) extractEducation(text string) string {
	for i, pattern := range e.degrees {
		if pattern.MatchString(text) {
			return e.vocab.Degrees[i]
		}
	}
	return DefaultEducation
}

func extractExperienceYears(text string) int {
	for _, rule := range experienceRules {
		match := rule.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		years, err := strconv.Atoi(match[1])
		if err != nil || years < 0 {
			continue
		}
		return years
	}
	return 0
}

func compileTerms(terms []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(terms))
	for _, term := range terms {
		patterns = append(patterns, wholeWordPattern(term))
	}
	return patterns
}

// wholeWordPattern matches term case-insensitively on word boundaries. A
// boundary assertion is only anchored next to word characters, so terms like
// "b.e." or "node.js" stay matchable.
func wholeWordPattern(term string) *regexp.Regexp {
	term = strings.ToLower(strings.TrimSpace(term))

	var b strings.Builder
	b.WriteString(`(?i)`)
	runes := []rune(term)
	if len(runes) > 0 && isWordRune(runes[0]) {
		b.WriteString(`\b`)
	}
	b.WriteString(regexp.QuoteMeta(term))
	if len(runes) > 0 && isWordRune(runes[len(runes)-1]) {
		b.WriteString(`\b`)
	}
	return regexp.MustCompile(b.String())
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
