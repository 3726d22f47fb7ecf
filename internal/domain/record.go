package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScrapedRecord is a candidate scholarship harvested from an external source,
// waiting to be curated into the catalog.
type ScrapedRecord struct {
	ID string

	// Content
	Title                  string
	Description            string
	Benefits               string
	MonetaryValue          *decimal.Decimal
	ApplicationDeadline    *time.Time
	Requirements           string
	SlotsAvailable         *int
	MinimumGPA             *decimal.Decimal
	RequiredCourse         string
	RequiredUniversity     string
	RequiredYearLevel      string
	ExternalApplicationURL string

	// Provenance
	SourceURL string
	RawText   string
	ScrapedAt time.Time

	// Quality
	ParsingConfidence float64
	IsEnhanced        bool
	ParsingNotes      string
	Category          Category
	Media             []Media

	// Workflow
	Status             RecordStatus
	ReviewedBy         *string
	ReviewedAt         *time.Time
	ReviewNotes        *string
	ApprovedBy         *string
	ApprovedAt         *time.Time
	PublishedCatalogID *string

	// Audit
	CreatedAt time.Time
	UpdatedAt time.Time
	CreatedBy string
	UpdatedBy string
}

// IsPublished reports whether the record has been promoted to the catalog.
func (r *ScrapedRecord) IsPublished() bool {
	return r.Status == RecordStatusPublished
}

// ClassificationText is the lower-cased text the categorizer looks at.
func (r *ScrapedRecord) ClassificationText() string {
	return NormalizeText(r.Title + " " + r.Description + " " + r.Requirements)
}

// Media is an image or document attached to a record.
type Media struct {
	ID        string
	RecordID  string
	URL       string
	Caption   *string
	Position  int
	CreatedAt time.Time
}

// ProcessingLogEntry is one append-only audit row for a record.
type ProcessingLogEntry struct {
	ID              string
	RecordID        string
	ProcessedAt     time.Time
	ProcessType     ProcessType
	ProcessDetails  string
	ProcessedBy     string
	ConfidenceScore *float64
	Notes           *string
}

// CatalogEntry is the canonical scholarship handed to the catalog sink on publish.
type CatalogEntry struct {
	SourceRecordID         string
	Title                  string
	Description            string
	Benefits               string
	MonetaryValue          *decimal.Decimal
	ApplicationDeadline    time.Time
	Requirements           string
	SlotsAvailable         *int
	MinimumGPA             *decimal.Decimal
	RequiredCourse         string
	RequiredUniversity     string
	RequiredYearLevel      string
	ExternalApplicationURL string
	Category               Category
	PublishedBy            string
	PublishedAt            time.Time
}

// NewCatalogEntry builds a catalog entry from the record's content fields.
// A missing deadline defaults to now + defaultDeadline.
func NewCatalogEntry(r *ScrapedRecord, actor string, now time.Time, defaultDeadline time.Duration) CatalogEntry {
	deadline := now.Add(defaultDeadline)
	if r.ApplicationDeadline != nil {
		deadline = *r.ApplicationDeadline
	}

	return CatalogEntry{
		SourceRecordID:         r.ID,
		Title:                  r.Title,
		Description:            r.Description,
		Benefits:               r.Benefits,
		MonetaryValue:          r.MonetaryValue,
		ApplicationDeadline:    deadline,
		Requirements:           r.Requirements,
		SlotsAvailable:         r.SlotsAvailable,
		MinimumGPA:             r.MinimumGPA,
		RequiredCourse:         r.RequiredCourse,
		RequiredUniversity:     r.RequiredUniversity,
		RequiredYearLevel:      r.RequiredYearLevel,
		ExternalApplicationURL: r.ExternalApplicationURL,
		Category:               r.Category,
		PublishedBy:            actor,
		PublishedAt:            now,
	}
}

// TokenUsage is the LLM token accounting attached to an enhancement pass.
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	// MappingVersion names the response-shape mapping that produced the values.
	MappingVersion string
	// Estimated is set when the provider response carried no usage block.
	Estimated bool
}
