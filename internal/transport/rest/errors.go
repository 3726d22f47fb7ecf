package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/scholarship-curator/internal/domain"
	"github.com/heartmarshall/scholarship-curator/pkg/ctxutil"
)

// errorResponse is the JSON body of every non-2xx answer.
type errorResponse struct {
	Error  string               `json:"error"`
	Code   string               `json:"code,omitempty"`
	Fields []fieldErrorResponse `json:"fields,omitempty"`
}

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeServiceError maps a service error onto a status code. Unexpected
// errors are logged and answered with a generic message.
func writeServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	resp := errorResponse{Error: err.Error()}
	var status int

	switch {
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
		resp.Code = "VALIDATION"
		resp.Error = "validation failed"
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			for _, fe := range ve.Errors {
				resp.Fields = append(resp.Fields, fieldErrorResponse{Field: fe.Field, Message: fe.Message})
			}
		}

	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
		resp.Code = "NOT_FOUND"

	case errors.Is(err, domain.ErrInvalidState):
		status = http.StatusConflict
		resp.Code = "INVALID_STATE"

	case errors.Is(err, domain.ErrAlreadyExists):
		status = http.StatusConflict
		resp.Code = "ALREADY_EXISTS"

	case errors.Is(err, domain.ErrUnauthorized):
		status = http.StatusUnauthorized
		resp.Code = "UNAUTHENTICATED"

	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
		resp.Code = "FORBIDDEN"

	case errors.Is(err, domain.ErrExternalSink):
		status = http.StatusBadGateway
		resp.Code = "CATALOG_UNAVAILABLE"

	default:
		log.ErrorContext(r.Context(), "unexpected service error",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			slog.String("path", r.URL.Path),
		)
		status = http.StatusInternalServerError
		resp = errorResponse{Error: "internal error", Code: "INTERNAL"}
	}

	writeJSON(w, status, resp)
}
