package rest

import (
	"context"
	"log/slog"
	"net/http"

	oai "github.com/sashabaranov/go-openai"

	"github.com/heartmarshall/scholarship-curator/internal/adapter/provider/openai"
	"github.com/heartmarshall/scholarship-curator/internal/domain"
	"github.com/heartmarshall/scholarship-curator/internal/service/curation"
	"github.com/heartmarshall/scholarship-curator/internal/service/search"
)

type curationService interface {
	CreateRecord(ctx context.Context, input curation.CreateRecordInput) (*domain.ScrapedRecord, error)
	GetRecord(ctx context.Context, recordID string) (*domain.ScrapedRecord, error)
	UpdateRecord(ctx context.Context, input curation.UpdateRecordInput) (*domain.ScrapedRecord, error)
	StartReview(ctx context.Context, recordID string) (*domain.ScrapedRecord, error)
	Approve(ctx context.Context, recordID string, notes *string) (*domain.ScrapedRecord, error)
	Reject(ctx context.Context, recordID string, notes *string) (*domain.ScrapedRecord, error)
	Publish(ctx context.Context, recordID string) (*domain.ScrapedRecord, error)
	Categorize(ctx context.Context, recordID string) (domain.Category, error)
	MarkEnhanced(ctx context.Context, input curation.EnhanceInput) (*domain.ScrapedRecord, error)
	AddMedia(ctx context.Context, input curation.AddMediaInput) (*domain.Media, error)
	History(ctx context.Context, recordID string, limit int) ([]domain.ProcessingLogEntry, error)
	Purge(ctx context.Context, recordID string) error
}

type recordSearcher interface {
	Search(ctx context.Context, f domain.RecordFilter) (*search.Result, error)
}

// RecordHandler serves the record endpoints under /api/records.
type RecordHandler struct {
	curation curationService
	search   recordSearcher
	log      *slog.Logger
}

// NewRecordHandler creates a RecordHandler.
func NewRecordHandler(curation curationService, search recordSearcher, logger *slog.Logger) *RecordHandler {
	return &RecordHandler{
		curation: curation,
		search:   search,
		log:      logger.With("handler", "records"),
	}
}

// Create ingests a single candidate record.
// POST /api/records
func (h *RecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRecordRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	input := curation.CreateRecordInput{
		Title:                  req.Title,
		Description:            req.Description,
		Benefits:               req.Benefits,
		MonetaryValue:          req.MonetaryValue,
		ApplicationDeadline:    req.ApplicationDeadline,
		Requirements:           req.Requirements,
		SlotsAvailable:         req.SlotsAvailable,
		MinimumGPA:             req.MinimumGPA,
		RequiredCourse:         req.RequiredCourse,
		RequiredUniversity:     req.RequiredUniversity,
		RequiredYearLevel:      req.RequiredYearLevel,
		ExternalApplicationURL: req.ExternalApplicationURL,
		SourceURL:              req.SourceURL,
		RawText:                req.RawText,
		ParsingConfidence:      req.ParsingConfidence,
		ParsingNotes:           req.ParsingNotes,
		MediaURLs:              req.MediaURLs,
	}
	if req.ScrapedAt != nil {
		input.ScrapedAt = req.ScrapedAt.UTC()
	}

	rec, err := h.curation.CreateRecord(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRecordResponse(rec, true))
}

// Search lists records matching the query-string filter, newest scrape first.
// GET /api/records?q=&status=&category=&min_confidence=&is_enhanced=&source=&scraped_from=&scraped_to=&limit=&offset=
func (h *RecordHandler) Search(w http.ResponseWriter, r *http.Request) {
	f, err := parseRecordFilter(r.URL.Query())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	res, err := h.search.Search(r.Context(), f)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSearchResponse(res))
}

// Get returns one record with its raw text and media.
// GET /api/records/{id}
func (h *RecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	rec, err := h.curation.GetRecord(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecordResponse(rec, true))
}

// Update edits content fields of a record that is not yet published.
// PATCH /api/records/{id}
func (h *RecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateRecordRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	rec, err := h.curation.UpdateRecord(r.Context(), curation.UpdateRecordInput{
		RecordID:               r.PathValue("id"),
		Title:                  req.Title,
		Description:            req.Description,
		Benefits:               req.Benefits,
		MonetaryValue:          req.MonetaryValue,
		ApplicationDeadline:    req.ApplicationDeadline,
		Requirements:           req.Requirements,
		SlotsAvailable:         req.SlotsAvailable,
		MinimumGPA:             req.MinimumGPA,
		RequiredCourse:         req.RequiredCourse,
		RequiredUniversity:     req.RequiredUniversity,
		RequiredYearLevel:      req.RequiredYearLevel,
		ExternalApplicationURL: req.ExternalApplicationURL,
		ParsingNotes:           req.ParsingNotes,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecordResponse(rec, true))
}

// Purge hard-deletes a record with its log and media. Admin only.
// DELETE /api/records/{id}
func (h *RecordHandler) Purge(w http.ResponseWriter, r *http.Request) {
	if err := h.curation.Purge(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// History returns the most recent processing log entries, newest first.
// GET /api/records/{id}/history?limit=20
func (h *RecordHandler) History(w http.ResponseWriter, r *http.Request) {
	p := newQueryParser(r.URL.Query())
	limit := p.int("limit", 0)
	if err := p.err(); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	entries, err := h.curation.History(r.Context(), r.PathValue("id"), limit)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toLogEntryResponses(entries))
}

// StartReview claims a record for review.
// POST /api/records/{id}/review
func (h *RecordHandler) StartReview(w http.ResponseWriter, r *http.Request) {
	h.respondRecord(w, r)(h.curation.StartReview(r.Context(), r.PathValue("id")))
}

// Approve marks a record ready for publishing. Body: {"notes": "..."} (optional).
// POST /api/records/{id}/approve
func (h *RecordHandler) Approve(w http.ResponseWriter, r *http.Request) {
	var req notesRequest
	if err := decodeJSON(w, r, &req, true); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	h.respondRecord(w, r)(h.curation.Approve(r.Context(), r.PathValue("id"), req.Notes))
}

// Reject closes a record without publishing. Body: {"notes": "..."} (optional).
// POST /api/records/{id}/reject
func (h *RecordHandler) Reject(w http.ResponseWriter, r *http.Request) {
	var req notesRequest
	if err := decodeJSON(w, r, &req, true); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	h.respondRecord(w, r)(h.curation.Reject(r.Context(), r.PathValue("id"), req.Notes))
}

// Publish promotes an approved record to the scholarship catalog.
// POST /api/records/{id}/publish
func (h *RecordHandler) Publish(w http.ResponseWriter, r *http.Request) {
	h.respondRecord(w, r)(h.curation.Publish(r.Context(), r.PathValue("id")))
}

// Categorize re-runs keyword classification.
// POST /api/records/{id}/categorize
func (h *RecordHandler) Categorize(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	cat, err := h.curation.Categorize(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, categoryResponse{ID: id, Category: cat})
}

type enhanceRequest struct {
	// Completion is the provider response of the enhancement pass; only its
	// usage block is read.
	Completion oai.ChatCompletionResponse `json:"completion"`
	Confidence *float64                   `json:"confidence"`
	Notes      *string                    `json:"notes"`
}

// Enhance records an LLM second pass over the record.
// POST /api/records/{id}/enhance
func (h *RecordHandler) Enhance(w http.ResponseWriter, r *http.Request) {
	var req enhanceRequest
	if err := decodeJSONLenient(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	h.respondRecord(w, r)(h.curation.MarkEnhanced(r.Context(), curation.EnhanceInput{
		RecordID:   r.PathValue("id"),
		Usage:      openai.UsageFromChatCompletion(req.Completion),
		Confidence: req.Confidence,
		Notes:      req.Notes,
	}))
}

// AddMedia attaches an image or document URL.
// POST /api/records/{id}/media
func (h *RecordHandler) AddMedia(w http.ResponseWriter, r *http.Request) {
	var req addMediaRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	m, err := h.curation.AddMedia(r.Context(), curation.AddMediaInput{
		RecordID: r.PathValue("id"),
		URL:      req.URL,
		Caption:  req.Caption,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMediaResponse(m))
}

// respondRecord adapts a (record, error) service result into a response.
func (h *RecordHandler) respondRecord(w http.ResponseWriter, r *http.Request) func(*domain.ScrapedRecord, error) {
	return func(rec *domain.ScrapedRecord, err error) {
		if err != nil {
			writeServiceError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, toRecordResponse(rec, false))
	}
}
