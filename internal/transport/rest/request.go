package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/scholarship-curator/internal/domain"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads the request body into v, rejecting unknown fields. An
// empty body leaves v untouched when allowEmpty is set, so optional-body
// endpoints like approve accept a bare POST.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any, allowEmpty bool) error {
	return decodeBody(w, r, v, true, allowEmpty)
}

// decodeJSONLenient is decodeJSON for bodies embedding third-party payloads
// whose shape grows over time.
func decodeJSONLenient(w http.ResponseWriter, r *http.Request, v any) error {
	return decodeBody(w, r, v, false, false)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any, strict, allowEmpty bool) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if strict {
		dec.DisallowUnknownFields()
	}

	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) && allowEmpty {
			return nil
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return domain.NewValidationError("body", "request body too large")
		}
		return domain.NewValidationError("body", "invalid JSON: "+err.Error())
	}
	if dec.More() {
		return domain.NewValidationError("body", "unexpected data after JSON object")
	}
	return nil
}

// queryParser collects field errors while reading typed query parameters.
type queryParser struct {
	q    url.Values
	errs []domain.FieldError
}

func newQueryParser(q url.Values) *queryParser {
	return &queryParser{q: q}
}

func (p *queryParser) fail(field, msg string) {
	p.errs = append(p.errs, domain.FieldError{Field: field, Message: msg})
}

func (p *queryParser) str(name string) *string {
	v := strings.TrimSpace(p.q.Get(name))
	if v == "" {
		return nil
	}
	return &v
}

func (p *queryParser) int(name string, def int) int {
	v := p.q.Get(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(name, "must be an integer")
		return def
	}
	return n
}

func (p *queryParser) float(name string) *float64 {
	v := p.q.Get(name)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.fail(name, "must be a number")
		return nil
	}
	return &f
}

func (p *queryParser) bool(name string) *bool {
	v := p.q.Get(name)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.fail(name, "must be true or false")
		return nil
	}
	return &b
}

// time accepts RFC 3339 timestamps or plain dates (midnight UTC).
func (p *queryParser) time(name string) *time.Time {
	v := p.q.Get(name)
	if v == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return &t
	}
	if t, err := time.Parse(time.DateOnly, v); err == nil {
		return &t
	}
	p.fail(name, "must be an RFC 3339 timestamp or YYYY-MM-DD date")
	return nil
}

func (p *queryParser) err() error {
	if len(p.errs) == 0 {
		return nil
	}
	return domain.NewValidationErrors(p.errs)
}

// parseRecordFilter reads the search criteria from the query string.
// Status and category are passed through unchecked; the search service
// validates them.
func parseRecordFilter(q url.Values) (domain.RecordFilter, error) {
	p := newQueryParser(q)

	f := domain.RecordFilter{
		Text:          p.str("q"),
		MinConfidence: p.float("min_confidence"),
		IsEnhanced:    p.bool("is_enhanced"),
		ScrapedFrom:   p.time("scraped_from"),
		ScrapedTo:     p.time("scraped_to"),
		SourceURL:     p.str("source"),
		Limit:         p.int("limit", 0),
		Offset:        p.int("offset", 0),
	}
	if v := p.str("status"); v != nil {
		s := domain.RecordStatus(strings.ToUpper(*v))
		f.Status = &s
	}
	if v := p.str("category"); v != nil {
		c := domain.Category(*v)
		f.Category = &c
	}

	return f, p.err()
}
