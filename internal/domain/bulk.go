package domain

import "time"

// BulkOperation is the immutable receipt of one batch invocation.
type BulkOperation struct {
	ID             string
	OperationType  BulkOperationType
	PerformedBy    string
	StartedAt      time.Time
	CompletedAt    time.Time
	// RequestedItems is the length of the id list as submitted; TotalItems
	// counts it after duplicates are collapsed.
	RequestedItems int
	TotalItems     int
	SucceededItems int
	FailedItems    int
	// FilterCriteria describes how the target ids were selected, if known.
	FilterCriteria string
	Notes          string
	ErrorLog       string
	ProcessedIDs   []string
	Failures       []BulkFailure
}

// BulkFailure is one item that could not be processed, with the reason.
type BulkFailure struct {
	RecordID string
	Reason   string
}

// FailedIDs returns the ids of the failed items in processing order.
func (b *BulkOperation) FailedIDs() []string {
	ids := make([]string, len(b.Failures))
	for i, f := range b.Failures {
		ids[i] = f.RecordID
	}
	return ids
}
