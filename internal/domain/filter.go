package domain

import "time"

// RecordFilter holds the optional criteria of a record search.
// Unset fields do not constrain the result; set fields combine with AND.
type RecordFilter struct {
	// Text is a case-insensitive substring over title, description and requirements.
	Text          *string
	Status        *RecordStatus
	MinConfidence *float64
	IsEnhanced    *bool
	Category      *Category
	ScrapedFrom   *time.Time
	ScrapedTo     *time.Time
	// SourceURL is a case-insensitive substring of the source URL.
	SourceURL *string
	Limit     int
	Offset    int
}
