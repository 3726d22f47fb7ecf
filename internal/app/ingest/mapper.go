package ingest

import (
	"errors"

	"github.com/heartmarshall/scholarship-curator/internal/service/curation"
)

var errMissingConfidence = errors.New("confidence is missing")

// Map converts a candidate into the input of CreateRecord. Field validation is
// left to the service; only the fields it cannot default are checked here.
func Map(c Candidate) (curation.CreateRecordInput, error) {
	if c.Confidence == nil {
		return curation.CreateRecordInput{}, errMissingConfidence
	}

	in := curation.CreateRecordInput{
		Title:                  c.Title,
		Description:            c.Description,
		Benefits:               c.Benefits,
		MonetaryValue:          c.MonetaryValue,
		ApplicationDeadline:    c.ApplicationDeadline,
		Requirements:           c.Requirements,
		SlotsAvailable:         c.SlotsAvailable,
		MinimumGPA:             c.MinimumGPA,
		RequiredCourse:         c.RequiredCourse,
		RequiredUniversity:     c.RequiredUniversity,
		RequiredYearLevel:      c.RequiredYearLevel,
		ExternalApplicationURL: c.ExternalApplicationURL,
		SourceURL:              c.SourceURL,
		RawText:                c.RawText,
		ParsingConfidence:      *c.Confidence,
		ParsingNotes:           c.ParsingNotes,
		MediaURLs:              c.MediaURLs,
	}
	if c.ScrapedAt != nil {
		in.ScrapedAt = c.ScrapedAt.UTC()
	}
	return in, nil
}
