package curation

import (
	"math"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/scholarship-curator/internal/domain"
)

const (
	maxTitleLength = 500
	maxNotesLength = 4000
	maxGPA         = 5
)

// CreateRecordInput is an already-parsed candidate handed over by the text source.
type CreateRecordInput struct {
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

	SourceURL         string
	RawText           string
	ScrapedAt         time.Time // zero = now
	ParsingConfidence float64
	ParsingNotes      string
	MediaURLs         []string
}

// Validate checks all fields and collects all errors.
func (i CreateRecordInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 500 characters"})
	}

	if strings.TrimSpace(i.SourceURL) == "" {
		errs = append(errs, domain.FieldError{Field: "source_url", Message: "required"})
	} else if !isHTTPURL(i.SourceURL) {
		errs = append(errs, domain.FieldError{Field: "source_url", Message: "must be an absolute http(s) URL"})
	}

	if strings.TrimSpace(i.RawText) == "" {
		errs = append(errs, domain.FieldError{Field: "raw_text", Message: "required"})
	}

	errs = append(errs, validateConfidence("parsing_confidence", i.ParsingConfidence)...)
	errs = append(errs, validateContent(i.MonetaryValue, i.SlotsAvailable, i.MinimumGPA, i.ExternalApplicationURL)...)

	for _, u := range i.MediaURLs {
		if !isHTTPURL(u) {
			errs = append(errs, domain.FieldError{Field: "media_urls", Message: "must be absolute http(s) URLs"})
			break
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateRecordInput edits content fields of a record. nil = don't change.
type UpdateRecordInput struct {
	RecordID               string
	Title                  *string
	Description            *string
	Benefits               *string
	MonetaryValue          *decimal.Decimal
	ApplicationDeadline    *time.Time
	Requirements           *string
	SlotsAvailable         *int
	MinimumGPA             *decimal.Decimal
	RequiredCourse         *string
	RequiredUniversity     *string
	RequiredYearLevel      *string
	ExternalApplicationURL *string
	ParsingNotes           *string
}

func (i UpdateRecordInput) empty() bool {
	return i.Title == nil && i.Description == nil && i.Benefits == nil && i.MonetaryValue == nil &&
		i.ApplicationDeadline == nil && i.Requirements == nil && i.SlotsAvailable == nil &&
		i.MinimumGPA == nil && i.RequiredCourse == nil && i.RequiredUniversity == nil &&
		i.RequiredYearLevel == nil && i.ExternalApplicationURL == nil && i.ParsingNotes == nil
}

// Validate checks all fields and collects all errors.
func (i UpdateRecordInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.RecordID) == "" {
		errs = append(errs, domain.FieldError{Field: "record_id", Message: "required"})
	}
	if i.empty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		title := strings.TrimSpace(*i.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		}
		if len(title) > maxTitleLength {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 500 characters"})
		}
	}

	extURL := ""
	if i.ExternalApplicationURL != nil {
		extURL = *i.ExternalApplicationURL
	}
	errs = append(errs, validateContent(i.MonetaryValue, i.SlotsAvailable, i.MinimumGPA, extURL)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// EnhanceInput records an LLM second pass over a record.
type EnhanceInput struct {
	RecordID   string
	Usage      domain.TokenUsage
	Confidence *float64 // nil = keep the current confidence
	Notes      *string
}

// Validate checks all fields and collects all errors.
func (i EnhanceInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.RecordID) == "" {
		errs = append(errs, domain.FieldError{Field: "record_id", Message: "required"})
	}
	if i.Confidence != nil {
		errs = append(errs, validateConfidence("confidence", *i.Confidence)...)
	}
	if i.Usage.PromptTokens < 0 || i.Usage.CompletionTokens < 0 || i.Usage.TotalTokens < 0 {
		errs = append(errs, domain.FieldError{Field: "usage", Message: "token counts must not be negative"})
	}
	if i.Notes != nil && len(*i.Notes) > maxNotesLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 4000 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AddMediaInput attaches an image or document to a record.
type AddMediaInput struct {
	RecordID string
	URL      string
	Caption  *string
}

// Validate checks all fields and collects all errors.
func (i AddMediaInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.RecordID) == "" {
		errs = append(errs, domain.FieldError{Field: "record_id", Message: "required"})
	}
	if !isHTTPURL(i.URL) {
		errs = append(errs, domain.FieldError{Field: "url", Message: "must be an absolute http(s) URL"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateNotes(notes *string) error {
	if notes != nil && len(*notes) > maxNotesLength {
		return domain.NewValidationError("notes", "max 4000 characters")
	}
	return nil
}

func validateConfidence(field string, c float64) []domain.FieldError {
	if math.IsNaN(c) || c < 0 || c > 1 {
		return []domain.FieldError{{Field: field, Message: "must be between 0 and 1"}}
	}
	return nil
}

func validateContent(monetary *decimal.Decimal, slots *int, gpa *decimal.Decimal, externalURL string) []domain.FieldError {
	var errs []domain.FieldError
	if monetary != nil && monetary.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "monetary_value", Message: "must not be negative"})
	}
	if slots != nil && *slots < 0 {
		errs = append(errs, domain.FieldError{Field: "slots_available", Message: "must not be negative"})
	}
	if gpa != nil && (gpa.IsNegative() || gpa.GreaterThan(decimal.NewFromInt(maxGPA))) {
		errs = append(errs, domain.FieldError{Field: "minimum_gpa", Message: "must be between 0 and 5"})
	}
	if strings.TrimSpace(externalURL) != "" && !isHTTPURL(externalURL) {
		errs = append(errs, domain.FieldError{Field: "external_application_url", Message: "must be an absolute http(s) URL"})
	}
	return errs
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
