package domain

// RecordStatus is the workflow state of a scraped record.
type RecordStatus string

const (
	RecordStatusScraped     RecordStatus = "SCRAPED"
	RecordStatusUnderReview RecordStatus = "UNDER_REVIEW"
	RecordStatusApproved    RecordStatus = "APPROVED"
	RecordStatusPublished   RecordStatus = "PUBLISHED"
	RecordStatusRejected    RecordStatus = "REJECTED"
)

// AllRecordStatuses lists statuses in lifecycle order.
var AllRecordStatuses = []RecordStatus{
	RecordStatusScraped,
	RecordStatusUnderReview,
	RecordStatusApproved,
	RecordStatusPublished,
	RecordStatusRejected,
}

func (s RecordStatus) String() string { return string(s) }

func (s RecordStatus) IsValid() bool {
	switch s {
	case RecordStatusScraped, RecordStatusUnderReview, RecordStatusApproved,
		RecordStatusPublished, RecordStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no transition may leave the status.
func (s RecordStatus) IsTerminal() bool {
	return s == RecordStatusPublished || s == RecordStatusRejected
}

// CanApprove reports whether Approve is legal from s.
// Re-approving an Approved record is allowed so reviewers can correct notes.
func (s RecordStatus) CanApprove() bool {
	return s == RecordStatusScraped || s == RecordStatusUnderReview || s == RecordStatusApproved
}

// CanReject reports whether Reject is legal from s.
func (s RecordStatus) CanReject() bool {
	return s == RecordStatusScraped || s == RecordStatusUnderReview || s == RecordStatusRejected
}

// CanStartReview reports whether a reviewer may claim a record in status s.
func (s RecordStatus) CanStartReview() bool {
	return s == RecordStatusScraped || s == RecordStatusUnderReview
}

// CanPublish reports whether Publish is legal from s.
func (s RecordStatus) CanPublish() bool {
	return s == RecordStatusApproved
}

// IsEditable reports whether content fields may still change.
func (s RecordStatus) IsEditable() bool {
	return s != RecordStatusPublished
}

// ProcessType identifies the kind of event recorded in the processing log.
type ProcessType string

const (
	ProcessTypeCreated       ProcessType = "Created"
	ProcessTypeReviewStarted ProcessType = "ReviewStarted"
	ProcessTypeApproved      ProcessType = "Approved"
	ProcessTypeRejected      ProcessType = "Rejected"
	ProcessTypePublished     ProcessType = "Published"
	ProcessTypeUpdated       ProcessType = "Updated"
	ProcessTypeCategorized   ProcessType = "Categorized"
	ProcessTypeEnhanced      ProcessType = "Enhanced"
	ProcessTypeMediaAdded    ProcessType = "MediaAdded"
)

func (p ProcessType) String() string { return string(p) }

func (p ProcessType) IsValid() bool {
	switch p {
	case ProcessTypeCreated, ProcessTypeReviewStarted, ProcessTypeApproved,
		ProcessTypeRejected, ProcessTypePublished, ProcessTypeUpdated,
		ProcessTypeCategorized, ProcessTypeEnhanced, ProcessTypeMediaAdded:
		return true
	}
	return false
}

// BulkOperationType is the action applied by a bulk operation.
type BulkOperationType string

const (
	BulkOperationApprove BulkOperationType = "approve"
	BulkOperationReject  BulkOperationType = "reject"
	BulkOperationDelete  BulkOperationType = "delete"
)

func (t BulkOperationType) String() string { return string(t) }

func (t BulkOperationType) IsValid() bool {
	switch t {
	case BulkOperationApprove, BulkOperationReject, BulkOperationDelete:
		return true
	}
	return false
}

// Category is the subject classification of a record.
type Category string

const (
	CategorySTEM       Category = "STEM"
	CategoryHealthcare Category = "Healthcare"
	CategoryBusiness   Category = "Business"
	CategoryArts       Category = "Arts & Humanities"
	CategoryEducation  Category = "Education"
	CategoryGeneral    Category = "General"
)

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategorySTEM, CategoryHealthcare, CategoryBusiness, CategoryArts,
		CategoryEducation, CategoryGeneral:
		return true
	}
	return false
}

// ActorRole is the authorization level of a reviewer.
type ActorRole string

const (
	ActorRoleReviewer ActorRole = "reviewer"
	ActorRoleAdmin    ActorRole = "admin"
	ActorRoleSystem   ActorRole = "system"
)

func (r ActorRole) String() string { return string(r) }

func (r ActorRole) IsValid() bool {
	switch r {
	case ActorRoleReviewer, ActorRoleAdmin, ActorRoleSystem:
		return true
	}
	return false
}

func (r ActorRole) IsAdmin() bool {
	return r == ActorRoleAdmin || r == ActorRoleSystem
}
