package ingest

import (
	"time"

	"github.com/shopspring/decimal"
)

// Candidate is one line of scraper output. Parsed fields are optional;
// source_url, raw_text and confidence are always present.
type Candidate struct {
	SourceURL    string     `json:"source_url"`
	RawText      string     `json:"raw_text"`
	ScrapedAt    *time.Time `json:"scraped_at,omitempty"`
	Confidence   *float64   `json:"confidence"`
	ParsingNotes string     `json:"parsing_notes,omitempty"`

	Title                  string           `json:"title"`
	Description            string           `json:"description,omitempty"`
	Benefits               string           `json:"benefits,omitempty"`
	MonetaryValue          *decimal.Decimal `json:"monetary_value,omitempty"`
	ApplicationDeadline    *time.Time       `json:"application_deadline,omitempty"`
	Requirements           string           `json:"requirements,omitempty"`
	SlotsAvailable         *int             `json:"slots_available,omitempty"`
	MinimumGPA             *decimal.Decimal `json:"minimum_gpa,omitempty"`
	RequiredCourse         string           `json:"required_course,omitempty"`
	RequiredUniversity     string           `json:"required_university,omitempty"`
	RequiredYearLevel      string           `json:"required_year_level,omitempty"`
	ExternalApplicationURL string           `json:"external_application_url,omitempty"`
	MediaURLs              []string         `json:"media_urls,omitempty"`
}
