package rest

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/scholarship-curator/internal/domain"
	"github.com/heartmarshall/scholarship-curator/internal/service/bulk"
	"github.com/heartmarshall/scholarship-curator/internal/service/duplicate"
	"github.com/heartmarshall/scholarship-curator/internal/service/search"
)

// ---------------------------------------------------------------------------
// Records
// ---------------------------------------------------------------------------

type recordResponse struct {
	ID                     string           `json:"id"`
	Title                  string           `json:"title"`
	Description            string           `json:"description"`
	Benefits               string           `json:"benefits"`
	MonetaryValue          *decimal.Decimal `json:"monetary_value"`
	ApplicationDeadline    *time.Time       `json:"application_deadline"`
	Requirements           string           `json:"requirements"`
	SlotsAvailable         *int             `json:"slots_available"`
	MinimumGPA             *decimal.Decimal `json:"minimum_gpa"`
	RequiredCourse         string           `json:"required_course"`
	RequiredUniversity     string           `json:"required_university"`
	RequiredYearLevel      string           `json:"required_year_level"`
	ExternalApplicationURL string           `json:"external_application_url"`

	SourceURL string    `json:"source_url"`
	RawText   string    `json:"raw_text,omitempty"`
	ScrapedAt time.Time `json:"scraped_at"`

	ParsingConfidence float64         `json:"parsing_confidence"`
	IsEnhanced        bool            `json:"is_enhanced"`
	ParsingNotes      string          `json:"parsing_notes"`
	Category          domain.Category `json:"category"`
	Media             []mediaResponse `json:"media"`

	Status             domain.RecordStatus `json:"status"`
	ReviewedBy         *string             `json:"reviewed_by"`
	ReviewedAt         *time.Time          `json:"reviewed_at"`
	ReviewNotes        *string             `json:"review_notes"`
	ApprovedBy         *string             `json:"approved_by"`
	ApprovedAt         *time.Time          `json:"approved_at"`
	PublishedCatalogID *string             `json:"published_catalog_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy string    `json:"created_by"`
	UpdatedBy string    `json:"updated_by"`
}

type mediaResponse struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Caption   *string   `json:"caption"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// toRecordResponse maps a record. Raw text is only included on single-record
// reads; search pages leave it out.
func toRecordResponse(r *domain.ScrapedRecord, withRaw bool) recordResponse {
	resp := recordResponse{
		ID:                     r.ID,
		Title:                  r.Title,
		Description:            r.Description,
		Benefits:               r.Benefits,
		MonetaryValue:          r.MonetaryValue,
		ApplicationDeadline:    r.ApplicationDeadline,
		Requirements:           r.Requirements,
		SlotsAvailable:         r.SlotsAvailable,
		MinimumGPA:             r.MinimumGPA,
		RequiredCourse:         r.RequiredCourse,
		RequiredUniversity:     r.RequiredUniversity,
		RequiredYearLevel:      r.RequiredYearLevel,
		ExternalApplicationURL: r.ExternalApplicationURL,
		SourceURL:              r.SourceURL,
		ScrapedAt:              r.ScrapedAt,
		ParsingConfidence:      r.ParsingConfidence,
		IsEnhanced:             r.IsEnhanced,
		ParsingNotes:           r.ParsingNotes,
		Category:               r.Category,
		Media:                  make([]mediaResponse, 0, len(r.Media)),
		Status:                 r.Status,
		ReviewedBy:             r.ReviewedBy,
		ReviewedAt:             r.ReviewedAt,
		ReviewNotes:            r.ReviewNotes,
		ApprovedBy:             r.ApprovedBy,
		ApprovedAt:             r.ApprovedAt,
		PublishedCatalogID:     r.PublishedCatalogID,
		CreatedAt:              r.CreatedAt,
		UpdatedAt:              r.UpdatedAt,
		CreatedBy:              r.CreatedBy,
		UpdatedBy:              r.UpdatedBy,
	}
	if withRaw {
		resp.RawText = r.RawText
	}
	for _, m := range r.Media {
		resp.Media = append(resp.Media, toMediaResponse(&m))
	}
	return resp
}

func toMediaResponse(m *domain.Media) mediaResponse {
	return mediaResponse{
		ID:        m.ID,
		URL:       m.URL,
		Caption:   m.Caption,
		Position:  m.Position,
		CreatedAt: m.CreatedAt,
	}
}

type createRecordRequest struct {
	Title                  string           `json:"title"`
	Description            string           `json:"description"`
	Benefits               string           `json:"benefits"`
	MonetaryValue          *decimal.Decimal `json:"monetary_value"`
	ApplicationDeadline    *time.Time       `json:"application_deadline"`
	Requirements           string           `json:"requirements"`
	SlotsAvailable         *int             `json:"slots_available"`
	MinimumGPA             *decimal.Decimal `json:"minimum_gpa"`
	RequiredCourse         string           `json:"required_course"`
	RequiredUniversity     string           `json:"required_university"`
	RequiredYearLevel      string           `json:"required_year_level"`
	ExternalApplicationURL string           `json:"external_application_url"`
	SourceURL              string           `json:"source_url"`
	RawText                string           `json:"raw_text"`
	ScrapedAt              *time.Time       `json:"scraped_at"`
	ParsingConfidence      float64          `json:"parsing_confidence"`
	ParsingNotes           string           `json:"parsing_notes"`
	MediaURLs              []string         `json:"media_urls"`
}

type updateRecordRequest struct {
	Title                  *string          `json:"title"`
	Description            *string          `json:"description"`
	Benefits               *string          `json:"benefits"`
	MonetaryValue          *decimal.Decimal `json:"monetary_value"`
	ApplicationDeadline    *time.Time       `json:"application_deadline"`
	Requirements           *string          `json:"requirements"`
	SlotsAvailable         *int             `json:"slots_available"`
	MinimumGPA             *decimal.Decimal `json:"minimum_gpa"`
	RequiredCourse         *string          `json:"required_course"`
	RequiredUniversity     *string          `json:"required_university"`
	RequiredYearLevel      *string          `json:"required_year_level"`
	ExternalApplicationURL *string          `json:"external_application_url"`
	ParsingNotes           *string          `json:"parsing_notes"`
}

type notesRequest struct {
	Notes *string `json:"notes"`
}

type addMediaRequest struct {
	URL     string  `json:"url"`
	Caption *string `json:"caption"`
}

type categoryResponse struct {
	ID       string          `json:"id"`
	Category domain.Category `json:"category"`
}

type logEntryResponse struct {
	ID              string             `json:"id"`
	ProcessedAt     time.Time          `json:"processed_at"`
	ProcessType     domain.ProcessType `json:"process_type"`
	ProcessDetails  string             `json:"process_details"`
	ProcessedBy     string             `json:"processed_by"`
	ConfidenceScore *float64           `json:"confidence_score"`
	Notes           *string            `json:"notes"`
}

func toLogEntryResponses(entries []domain.ProcessingLogEntry) []logEntryResponse {
	out := make([]logEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = logEntryResponse{
			ID:              e.ID,
			ProcessedAt:     e.ProcessedAt,
			ProcessType:     e.ProcessType,
			ProcessDetails:  e.ProcessDetails,
			ProcessedBy:     e.ProcessedBy,
			ConfidenceScore: e.ConfidenceScore,
			Notes:           e.Notes,
		}
	}
	return out
}

type searchResponse struct {
	Records []recordResponse `json:"records"`
	Total   int              `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

func toSearchResponse(res *search.Result) searchResponse {
	out := searchResponse{
		Records: make([]recordResponse, len(res.Records)),
		Total:   res.Total,
		Limit:   res.Limit,
		Offset:  res.Offset,
	}
	for i := range res.Records {
		out.Records[i] = toRecordResponse(&res.Records[i], false)
	}
	return out
}

// ---------------------------------------------------------------------------
// Bulk
// ---------------------------------------------------------------------------

type bulkRequest struct {
	Operation      domain.BulkOperationType `json:"operation"`
	RecordIDs      []string                 `json:"record_ids"`
	Notes          *string                  `json:"notes"`
	FilterCriteria string                   `json:"filter_criteria"`
}

func (r bulkRequest) toInput() bulk.Input {
	return bulk.Input{
		Operation:      r.Operation,
		RecordIDs:      r.RecordIDs,
		Notes:          r.Notes,
		FilterCriteria: r.FilterCriteria,
	}
}

type bulkFailureResponse struct {
	RecordID string `json:"record_id"`
	Reason   string `json:"reason"`
}

type bulkResponse struct {
	ID             string                   `json:"id"`
	OperationType  domain.BulkOperationType `json:"operation_type"`
	PerformedBy    string                   `json:"performed_by"`
	StartedAt      time.Time                `json:"started_at"`
	CompletedAt    time.Time                `json:"completed_at"`
	RequestedItems int                      `json:"requested_items"`
	TotalItems     int                      `json:"total_items"`
	SucceededItems int                      `json:"succeeded_items"`
	FailedItems    int                      `json:"failed_items"`
	FilterCriteria string                   `json:"filter_criteria"`
	Notes          string                   `json:"notes"`
	ErrorLog       string                   `json:"error_log"`
	ProcessedIDs   []string                 `json:"processed_ids"`
	Failures       []bulkFailureResponse    `json:"failures"`
}

func toBulkResponse(op *domain.BulkOperation) bulkResponse {
	resp := bulkResponse{
		ID:             op.ID,
		OperationType:  op.OperationType,
		PerformedBy:    op.PerformedBy,
		StartedAt:      op.StartedAt,
		CompletedAt:    op.CompletedAt,
		RequestedItems: op.RequestedItems,
		TotalItems:     op.TotalItems,
		SucceededItems: op.SucceededItems,
		FailedItems:    op.FailedItems,
		FilterCriteria: op.FilterCriteria,
		Notes:          op.Notes,
		ErrorLog:       op.ErrorLog,
		ProcessedIDs:   op.ProcessedIDs,
		Failures:       make([]bulkFailureResponse, len(op.Failures)),
	}
	if resp.ProcessedIDs == nil {
		resp.ProcessedIDs = []string{}
	}
	for i, f := range op.Failures {
		resp.Failures[i] = bulkFailureResponse{RecordID: f.RecordID, Reason: f.Reason}
	}
	return resp
}

// ---------------------------------------------------------------------------
// Duplicates
// ---------------------------------------------------------------------------

type duplicateMatchResponse struct {
	RecordIDA  string           `json:"record_id_a"`
	RecordIDB  string           `json:"record_id_b"`
	Similarity float64          `json:"similarity"`
	MatchType  domain.MatchType `json:"match_type"`
}

type duplicateReportResponse struct {
	Matches    []duplicateMatchResponse `json:"matches"`
	WorkingSet int                      `json:"working_set"`
	Scanned    int                      `json:"scanned"`
	Truncated  bool                     `json:"truncated"`
	Capped     bool                     `json:"capped"`
	Blocked    bool                     `json:"blocked"`
}

func toDuplicateReportResponse(r *duplicate.Report) duplicateReportResponse {
	resp := duplicateReportResponse{
		Matches:    make([]duplicateMatchResponse, len(r.Matches)),
		WorkingSet: r.WorkingSet,
		Scanned:    r.Scanned,
		Truncated:  r.Truncated,
		Capped:     r.Capped,
		Blocked:    r.Blocked,
	}
	for i, m := range r.Matches {
		resp.Matches[i] = duplicateMatchResponse{
			RecordIDA:  m.RecordIDA,
			RecordIDB:  m.RecordIDB,
			Similarity: m.Similarity,
			MatchType:  m.MatchType,
		}
	}
	return resp
}

// ---------------------------------------------------------------------------
// Analytics
// ---------------------------------------------------------------------------

type sourceCountResponse struct {
	SourceURL string `json:"source_url"`
	Count     int    `json:"count"`
}

type confidenceResponse struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
	Total  int `json:"total"`
}

func toConfidenceResponse(d domain.ConfidenceDistribution) confidenceResponse {
	return confidenceResponse{High: d.High, Medium: d.Medium, Low: d.Low, Total: d.Total()}
}

type dashboardResponse struct {
	TotalRecords      int                         `json:"total_records"`
	ScrapedToday      int                         `json:"scraped_today"`
	ScrapedThisWeek   int                         `json:"scraped_this_week"`
	ScrapedLastWeek   int                         `json:"scraped_last_week"`
	WeeklyGrowthRate  float64                     `json:"weekly_growth_rate"`
	StatusCounts      map[domain.RecordStatus]int `json:"status_counts"`
	AverageConfidence float64                     `json:"average_confidence"`
	TopSources        []sourceCountResponse       `json:"top_sources"`
	Confidence        confidenceResponse          `json:"confidence"`
	GeneratedAt       time.Time                   `json:"generated_at"`
}

func toDashboardResponse(m *domain.DashboardMetrics) dashboardResponse {
	resp := dashboardResponse{
		TotalRecords:      m.TotalRecords,
		ScrapedToday:      m.ScrapedToday,
		ScrapedThisWeek:   m.ScrapedThisWeek,
		ScrapedLastWeek:   m.ScrapedLastWeek,
		WeeklyGrowthRate:  m.WeeklyGrowthRate,
		StatusCounts:      m.StatusCounts,
		AverageConfidence: m.AverageConfidence,
		TopSources:        make([]sourceCountResponse, len(m.TopSources)),
		Confidence:        toConfidenceResponse(m.Confidence),
		GeneratedAt:       m.GeneratedAt,
	}
	for i, s := range m.TopSources {
		resp.TopSources[i] = sourceCountResponse{SourceURL: s.SourceURL, Count: s.Count}
	}
	return resp
}

type sourcePerformanceResponse struct {
	SourceURL         string    `json:"source_url"`
	RecordCount       int       `json:"record_count"`
	AverageConfidence float64   `json:"average_confidence"`
	ApprovedCount     int       `json:"approved_count"`
	LastScrapedAt     time.Time `json:"last_scraped_at"`
}

func toSourcePerformanceResponses(in []domain.SourcePerformance) []sourcePerformanceResponse {
	out := make([]sourcePerformanceResponse, len(in))
	for i, s := range in {
		out[i] = sourcePerformanceResponse{
			SourceURL:         s.SourceURL,
			RecordCount:       s.RecordCount,
			AverageConfidence: s.AverageConfidence,
			ApprovedCount:     s.ApprovedCount,
			LastScrapedAt:     s.LastScrapedAt,
		}
	}
	return out
}
