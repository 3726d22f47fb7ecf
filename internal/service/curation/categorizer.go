package curation

import (
	"strings"
	"unicode"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/heartmarshall/scholarship-curator/internal/domain"
)

// categoryRules are checked in priority order: the first category with any
// keyword present wins.
var categoryRules = []struct {
	category domain.Category
	keywords []string
}{
	{domain.CategorySTEM, []string{
		"stem", "science", "sciences", "scientific", "engineering", "engineer", "technology",
		"computer", "computing", "software", "information technology", "mathematics",
		"math", "physics", "chemistry", "biology", "data science", "robotics", "statistics",
	}},
	{domain.CategoryHealthcare, []string{
		"medicine", "medical", "nursing", "nurse", "health", "healthcare", "pharmacy",
		"dentistry", "dental", "physician", "midwifery", "public health", "physical therapy",
	}},
	{domain.CategoryBusiness, []string{
		"business", "accounting", "accountancy", "finance", "economics", "management",
		"marketing", "entrepreneurship", "entrepreneur", "commerce", "mba",
	}},
	{domain.CategoryArts, []string{
		"arts", "art", "music", "literature", "humanities", "history", "philosophy",
		"design", "theater", "theatre", "film", "journalism", "languages", "creative writing",
	}},
	{domain.CategoryEducation, []string{
		"education", "teacher", "teachers", "teaching", "pedagogy", "educator",
	}},
}

// Categorizer assigns a subject category from keyword matches. Keywords match
// whole words only, so "art" does not fire on "department".
type Categorizer struct {
	matcher *ahocorasick.Matcher
	// rank[i] is the priority of the rule owning keyword i.
	rank []int
}

// NewCategorizer builds the keyword automaton.
func NewCategorizer() *Categorizer {
	var (
		patterns []string
		rank     []int
	)
	for priority, rule := range categoryRules {
		for _, kw := range rule.keywords {
			patterns = append(patterns, " "+kw+" ")
			rank = append(rank, priority)
		}
	}
	return &Categorizer{matcher: ahocorasick.NewStringMatcher(patterns), rank: rank}
}

// Categorize returns the highest-priority category whose keywords occur in
// text, or General when none do.
func (c *Categorizer) Categorize(text string) domain.Category {
	hits := c.matcher.Match([]byte(wordText(text)))
	if len(hits) == 0 {
		return domain.CategoryGeneral
	}

	best := len(categoryRules)
	for _, i := range hits {
		best = min(best, c.rank[i])
	}
	return categoryRules[best].category
}

// CategorizeRecord classifies a record by title, description and requirements.
func (c *Categorizer) CategorizeRecord(r *domain.ScrapedRecord) domain.Category {
	return c.Categorize(r.ClassificationText())
}

// wordText lower-cases text and rewrites it as space-separated words with a
// leading and trailing space, so " kw " patterns only match whole words.
func wordText(text string) string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return " " + strings.Join(words, " ") + " "
}
