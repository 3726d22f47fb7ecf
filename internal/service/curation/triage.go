package curation

import (
	"github.com/heartmarshall/scholarship-curator/internal/config"
	"github.com/heartmarshall/scholarship-curator/internal/domain"
)

// Triage maps a parsing confidence to the initial workflow status.
// Thresholds are inclusive lower bounds and must satisfy Approve > Review > Hold.
type Triage struct {
	Approve float64
	Review  float64
	Hold    float64
}

// DefaultTriage returns the stock thresholds.
func DefaultTriage() Triage {
	return Triage{Approve: 0.90, Review: 0.70, Hold: 0.50}
}

// TriageFromConfig reads the thresholds from the curation config.
func TriageFromConfig(cfg config.CurationConfig) Triage {
	return Triage{
		Approve: cfg.TriageApproveThreshold,
		Review:  cfg.TriageReviewThreshold,
		Hold:    cfg.TriageHoldThreshold,
	}
}

// Status returns the initial status for confidence.
func (t Triage) Status(confidence float64) domain.RecordStatus {
	switch {
	case confidence >= t.Approve:
		return domain.RecordStatusApproved
	case confidence >= t.Review:
		return domain.RecordStatusUnderReview
	case confidence >= t.Hold:
		return domain.RecordStatusScraped
	default:
		return domain.RecordStatusRejected
	}
}
