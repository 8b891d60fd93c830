// Package chi implements the HTTP transport for the stringdex API.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/stringdex/internal/domain"
	"github.com/kailas-cloud/stringdex/internal/domain/analysis"
	"github.com/kailas-cloud/stringdex/internal/domain/query"
	domrec "github.com/kailas-cloud/stringdex/internal/domain/record"
	healthuc "github.com/kailas-cloud/stringdex/internal/usecase/health"
	stringsuc "github.com/kailas-cloud/stringdex/internal/usecase/strings"
)

// ErrorCode identifies an API error category.
type ErrorCode string

// API error codes.
const (
	CodeBadRequest          ErrorCode = "bad_request"
	CodeValidationFailed    ErrorCode = "validation_failed"
	CodeStringNotFound      ErrorCode = "string_not_found"
	CodeStringAlreadyExists ErrorCode = "string_already_exists"
	CodeInternalError       ErrorCode = "internal_error"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server holds the HTTP handlers for the strings API.
type Server struct {
	strings       *stringsuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(strings *stringsuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	s := &Server{
		strings: strings,
		health:  health,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrEmptyValue, http.StatusBadRequest, CodeValidationFailed),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, CodeStringNotFound),
		sentinelHandler(domain.ErrAlreadyExists, http.StatusConflict, CodeStringAlreadyExists),
	}
	return s
}

// Routes registers all API routes on the router. The static
// filter-by-natural-language segment is registered before the {value}
// wildcard; chi resolves static segments first either way.
func (s *Server) Routes(r chi.Router) {
	r.Post("/strings", s.CreateString)
	r.Get("/strings", s.ListStrings)
	r.Get("/strings/filter-by-natural-language", s.FilterByNaturalLanguage)
	r.Get("/strings/{value}", s.GetString)
	r.Delete("/strings/{value}", s.DeleteString)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// createStringRequest is the POST /strings body.
type createStringRequest struct {
	Value *string `json:"value"`
}

// CreateString handles POST /strings.
func (s *Server) CreateString(w http.ResponseWriter, r *http.Request) {
	var req createStringRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Value == nil {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, "Input must be a string.")
		return
	}

	rec, err := s.strings.Create(r.Context(), *req.Value)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, recordToResponse(&rec))
}

// GetString handles GET /strings/{value}. The path value is normalized and
// hashed to perform an identity lookup.
func (s *Server) GetString(w http.ResponseWriter, r *http.Request) {
	value := chi.URLParam(r, "value")

	rec, err := s.strings.GetByValue(r.Context(), value)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, recordToResponse(&rec))
}

// listStringsResponse is the GET /strings body.
type listStringsResponse struct {
	Data           []recordResponse `json:"data"`
	Count          int              `json:"count"`
	FiltersApplied appliedFilters   `json:"filters_applied"`
}

// appliedFilters echoes every filter slot, null when not supplied.
type appliedFilters struct {
	IsPalindrome      *bool   `json:"is_palindrome"`
	MinLength         *int    `json:"min_length"`
	MaxLength         *int    `json:"max_length"`
	WordCount         *int    `json:"word_count"`
	ContainsCharacter *string `json:"contains_character"`
}

// ListStrings handles GET /strings with optional structured filters.
func (s *Server) ListStrings(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, err.Error())
		return
	}

	records, err := s.strings.List(r.Context(), f)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listStringsResponse{
		Data:  recordsToResponse(records),
		Count: len(records),
		FiltersApplied: appliedFilters{
			IsPalindrome:      f.IsPalindrome,
			MinLength:         f.MinLength,
			MaxLength:         f.MaxLength,
			WordCount:         f.WordCount,
			ContainsCharacter: f.ContainsCharacter,
		},
	})
}

// naturalLanguageResponse is the GET /strings/filter-by-natural-language body.
type naturalLanguageResponse struct {
	Query              string           `json:"query"`
	Data               []recordResponse `json:"data"`
	Count              int              `json:"count"`
	InterpretedFilters query.Filter     `json:"interpreted_filters"`
}

// FilterByNaturalLanguage handles GET /strings/filter-by-natural-language.
// Queries matching no pattern yield an empty filter and return every
// record; that degradation is intentional, not an error.
func (s *Server) FilterByNaturalLanguage(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("query")
	if text == "" {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, "query parameter is required")
		return
	}

	f, records, err := s.strings.Query(r.Context(), text)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, naturalLanguageResponse{
		Query:              text,
		Data:               recordsToResponse(records),
		Count:              len(records),
		InterpretedFilters: f,
	})
}

// DeleteString handles DELETE /strings/{value}.
func (s *Server) DeleteString(w http.ResponseWriter, r *http.Request) {
	value := chi.URLParam(r, "value")

	if err := s.strings.DeleteByValue(r.Context(), value); err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// healthResponse is the GET /health body.
type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// filterFromParams builds a query.Filter from URL query parameters.
func filterFromParams(r *http.Request) (query.Filter, error) {
	var f query.Filter
	q := r.URL.Query()

	if v := q.Get("is_palindrome"); v != "" {
		b, err := strconv.ParseBool(strings.ToLower(v))
		if err != nil {
			return query.Filter{}, errors.New("is_palindrome must be a boolean")
		}
		f.IsPalindrome = &b
	}
	if v := q.Get("min_length"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return query.Filter{}, errors.New("min_length must be an integer")
		}
		f.MinLength = &n
	}
	if v := q.Get("max_length"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return query.Filter{}, errors.New("max_length must be an integer")
		}
		f.MaxLength = &n
	}
	if v := q.Get("word_count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return query.Filter{}, errors.New("word_count must be an integer")
		}
		f.WordCount = &n
	}
	if v := q.Get("contains_character"); v != "" {
		f.ContainsCharacter = &v
	}

	return f, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrEmptyValue,
		domain.ErrNotFound,
		domain.ErrAlreadyExists,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}

// recordResponse is the JSON shape of a stored record.
type recordResponse struct {
	ID         string             `json:"id"`
	Value      string             `json:"value"`
	Properties propertiesResponse `json:"properties"`
	CreatedAt  time.Time          `json:"created_at"`
}

type propertiesResponse struct {
	Length           int            `json:"length"`
	IsPalindrome     bool           `json:"is_palindrome"`
	UniqueCharacters int            `json:"unique_characters"`
	WordCount        int            `json:"word_count"`
	SHA256Hash       string         `json:"sha256_hash"`
	CharFrequencyMap map[string]int `json:"char_frequency_map"`
}

func recordToResponse(rec *domrec.Record) recordResponse {
	return recordResponse{
		ID:         rec.ID(),
		Value:      rec.Value(),
		Properties: propertiesToResponse(rec.Properties()),
		CreatedAt:  rec.CreatedAt().UTC(),
	}
}

func propertiesToResponse(p analysis.Properties) propertiesResponse {
	return propertiesResponse{
		Length:           p.Length,
		IsPalindrome:     p.IsPalindrome,
		UniqueCharacters: p.UniqueCharacters,
		WordCount:        p.WordCount,
		SHA256Hash:       p.SHA256,
		CharFrequencyMap: p.CharFrequency,
	}
}

func recordsToResponse(records []domrec.Record) []recordResponse {
	items := make([]recordResponse, len(records))
	for i := range records {
		items[i] = recordToResponse(&records[i])
	}
	return items
}
