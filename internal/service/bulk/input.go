package bulk

import (
	"strings"

	"github.com/heartmarshall/scholarship-curator/internal/domain"
)

const (
	// MaxItems caps a single request; larger batches are split by the caller.
	MaxItems = 1000

	maxNotesLength = 4000

	defaultListLimit = 50
	maxListLimit     = 200
)

// Input is one bulk request.
type Input struct {
	Operation domain.BulkOperationType
	RecordIDs []string
	Notes     *string
	// FilterCriteria describes how the ids were selected. Stored verbatim.
	FilterCriteria string
}

// Validate checks all fields and collects all errors.
func (i Input) Validate() error {
	var errs []domain.FieldError

	if !i.Operation.IsValid() {
		errs = append(errs, domain.FieldError{Field: "operation", Message: "must be approve, reject or delete"})
	}
	if len(i.RecordIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "record_ids", Message: "at least one id is required"})
	}
	if len(i.RecordIDs) > MaxItems {
		errs = append(errs, domain.FieldError{Field: "record_ids", Message: "at most 1000 ids per request"})
	}
	for _, id := range i.RecordIDs {
		if strings.TrimSpace(id) == "" {
			errs = append(errs, domain.FieldError{Field: "record_ids", Message: "ids must not be empty"})
			break
		}
	}
	if i.Notes != nil && len(*i.Notes) > maxNotesLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 4000 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// dedupe drops repeated ids, keeping the first occurrence.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
