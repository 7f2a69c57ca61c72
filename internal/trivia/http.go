package trivia

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/logging"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// HTTPHandlers provides REST endpoints for the trivia API.
type HTTPHandlers struct {
	service *Service
	logger  zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers for trivia endpoints.
func NewHTTPHandlers(service *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		service: service,
		logger:  logger.With().Str("component", "trivia_http").Logger(),
	}
}

// Routes mounts the trivia endpoints on r.
func (h *HTTPHandlers) Routes(r chi.Router) {
	r.Get("/categories", h.ListCategories)
	r.Get("/categories/{categoryID}/questions", h.ListQuestionsByCategory)

	r.Get("/questions", h.ListQuestions)
	r.Post("/questions", h.CreateQuestion)
	r.Post("/questions/search", h.SearchQuestions)
	r.Delete("/questions/{questionID}", h.DeleteQuestion)

	r.Post("/quizzes", h.NextQuizQuestion)
}

// ListCategories handles GET /categories
func (h *HTTPHandlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		h.fail(w, r, "list categories", err, http.StatusNotFound)
		return
	}

	h.respondJSON(w, r, http.StatusOK, map[string]interface{}{
		"success":    true,
		"categories": categories,
	})
}

// ListQuestions handles GET /questions?page=N
func (h *HTTPHandlers) ListQuestions(w http.ResponseWriter, r *http.Request) {
	page, err := ParsePage(r.URL.Query().Get("page"))
	if err != nil {
		h.fail(w, r, "list questions", err, http.StatusNotFound)
		return
	}

	result, err := h.service.ListQuestions(r.Context(), page)
	if err != nil {
		h.fail(w, r, "list questions", err, http.StatusNotFound)
		return
	}

	h.respondJSON(w, r, http.StatusOK, map[string]interface{}{
		"success":         true,
		"questions":       result.Questions,
		"total_questions": result.TotalQuestions,
		"categories":      result.Categories,
	})
}

// DeleteQuestion handles DELETE /questions/{questionID}
func (h *HTTPHandlers) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "questionID"))
	if err != nil {
		h.fail(w, r, "delete question", fmt.Errorf("question id: %w", ErrNotFound), http.StatusNotFound)
		return
	}

	if err := h.service.DeleteQuestion(r.Context(), id); err != nil {
		h.fail(w, r, "delete question", err, http.StatusNotFound)
		return
	}

	h.respondJSON(w, r, http.StatusOK, map[string]interface{}{
		"success": true,
		"deleted": id,
	})
}

// CreateQuestionRequest is the body of POST /questions. No field is required.
type CreateQuestionRequest struct {
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Difficulty FlexInt `json:"difficulty"`
	Category   FlexInt `json:"category"`
}

// CreateQuestion handles POST /questions
func (h *HTTPHandlers) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req *CreateQuestionRequest
	if err := decodeBody(r, &req); err != nil || req == nil {
		h.fail(w, r, "create question", unprocessable(err), http.StatusUnprocessableEntity)
		return
	}

	id, err := h.service.CreateQuestion(r.Context(), NewQuestion{
		Question:   req.Question,
		Answer:     req.Answer,
		Difficulty: req.Difficulty.Ptr(),
		Category:   req.Category.Ptr(),
	})
	if err != nil {
		h.fail(w, r, "create question", err, http.StatusUnprocessableEntity)
		return
	}

	h.respondJSON(w, r, http.StatusOK, map[string]interface{}{
		"success":     true,
		"question_id": id,
	})
}

// SearchRequest is the body of POST /questions/search.
type SearchRequest struct {
	SearchTerm *string `json:"searchTerm"`
}

// SearchQuestions handles POST /questions/search?page=N
func (h *HTTPHandlers) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	var req *SearchRequest
	if err := decodeBody(r, &req); err != nil || req == nil || req.SearchTerm == nil {
		h.fail(w, r, "search questions", unprocessable(err), http.StatusUnprocessableEntity)
		return
	}

	page, err := ParsePage(r.URL.Query().Get("page"))
	if err != nil {
		h.fail(w, r, "search questions", err, http.StatusUnprocessableEntity)
		return
	}

	result, err := h.service.SearchQuestions(r.Context(), *req.SearchTerm, page)
	if err != nil {
		h.fail(w, r, "search questions", err, http.StatusUnprocessableEntity)
		return
	}

	h.respondJSON(w, r, http.StatusOK, map[string]interface{}{
		"success":         true,
		"questions":       result.Questions,
		"total_questions": result.TotalQuestions,
	})
}

// ListQuestionsByCategory handles GET /categories/{categoryID}/questions?page=N
func (h *HTTPHandlers) ListQuestionsByCategory(w http.ResponseWriter, r *http.Request) {
	rawCategoryID := chi.URLParam(r, "categoryID")
	categoryID, err := strconv.Atoi(rawCategoryID)
	if err != nil {
		h.fail(w, r, "list category questions", fmt.Errorf("category id: %w", ErrNotFound), http.StatusNotFound)
		return
	}

	page, err := ParsePage(r.URL.Query().Get("page"))
	if err != nil {
		h.fail(w, r, "list category questions", err, http.StatusNotFound)
		return
	}

	result, err := h.service.QuestionsByCategory(r.Context(), categoryID, page)
	if err != nil {
		h.fail(w, r, "list category questions", err, http.StatusNotFound)
		return
	}

	h.respondJSON(w, r, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        result.Questions,
		"total_questions":  result.TotalQuestions,
		"categories":       result.Categories,
		"current_category": rawCategoryID,
	})
}

// QuizCategoryPayload selects the quiz pool. Type "click" means every category.
type QuizCategoryPayload struct {
	Type string  `json:"type"`
	ID   FlexInt `json:"id"`
}

// QuizRequestPayload is the body of POST /quizzes.
type QuizRequestPayload struct {
	PreviousQuestions []int                `json:"previous_questions"`
	QuizCategory      *QuizCategoryPayload `json:"quiz_category"`
}

// NextQuizQuestion handles POST /quizzes
func (h *HTTPHandlers) NextQuizQuestion(w http.ResponseWriter, r *http.Request) {
	var payload *QuizRequestPayload
	if err := decodeBody(r, &payload); err != nil || payload == nil {
		h.fail(w, r, "next quiz question", unprocessable(err), http.StatusUnprocessableEntity)
		return
	}

	req, err := payload.toQuizRequest()
	if err != nil {
		h.fail(w, r, "next quiz question", err, http.StatusUnprocessableEntity)
		return
	}

	next, ok, err := h.service.NextQuizQuestion(r.Context(), req)
	if err != nil {
		h.fail(w, r, "next quiz question", err, http.StatusUnprocessableEntity)
		return
	}

	var question interface{} = false
	if ok {
		question = next
	}
	h.respondJSON(w, r, http.StatusOK, map[string]interface{}{
		"success":  true,
		"question": question,
	})
}

func (p *QuizRequestPayload) toQuizRequest() (QuizRequest, error) {
	if p.PreviousQuestions == nil {
		return QuizRequest{}, fmt.Errorf("previous_questions missing: %w", ErrUnprocessable)
	}
	if p.QuizCategory == nil {
		return QuizRequest{}, fmt.Errorf("quiz_category missing: %w", ErrUnprocessable)
	}
	req := QuizRequest{
		PreviousQuestions: p.PreviousQuestions,
		CategoryType:      p.QuizCategory.Type,
	}
	if !req.AllCategories() {
		if !p.QuizCategory.ID.Valid {
			return QuizRequest{}, fmt.Errorf("quiz_category.id missing: %w", ErrUnprocessable)
		}
		req.CategoryID = p.QuizCategory.ID.Value
	}
	return req, nil
}

// fail classifies err into the response status. Anything the domain did not
// classify gets the endpoint's fallback status and is logged as a failure.
func (h *HTTPHandlers) fail(w http.ResponseWriter, r *http.Request, op string, err error, fallback int) {
	logger := logging.FromContextOr(r.Context(), h.logger)

	status := fallback
	switch {
	case errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrUnprocessable):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, ErrInvalidPage):
	default:
		logger.Error().Err(err).Str("op", op).Int("status", status).Msg("request failed")
		respondStatus(w, status)
		return
	}

	logger.Debug().Err(err).Str("op", op).Int("status", status).Msg("request rejected")
	respondStatus(w, status)
}

func respondStatus(w http.ResponseWriter, status int) {
	switch status {
	case http.StatusNotFound:
		httperrors.RespondNotFound(w)
	case http.StatusUnprocessableEntity:
		httperrors.RespondUnprocessable(w)
	default:
		httperrors.RespondStatus(w, status)
	}
}

func (h *HTTPHandlers) respondJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger := logging.FromContextOr(r.Context(), h.logger)
		logger.Error().Err(err).Msg("encode response failed")
	}
}

func decodeBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return errors.New("empty body")
	}
	return json.NewDecoder(r.Body).Decode(dst)
}

func unprocessable(err error) error {
	if err == nil {
		return fmt.Errorf("request body: %w", ErrUnprocessable)
	}
	return fmt.Errorf("request body: %w: %w", ErrUnprocessable, err)
}

// FlexInt decodes an optional integer sent either as a JSON number or as a
// numeric string. null and absent values leave Valid false.
type FlexInt struct {
	Value int
	Valid bool
}

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = FlexInt{}
		return nil
	}

	var raw json.Number
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = json.Number(strings.TrimSpace(s))
	} else if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	n, err := parseWholeNumber(raw)
	if err != nil {
		return fmt.Errorf("flexint %s: %w", data, err)
	}
	*f = FlexInt{Value: n, Valid: true}
	return nil
}

// Ptr returns nil when the value was absent.
func (f FlexInt) Ptr() *int {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}

func parseWholeNumber(raw json.Number) (int, error) {
	if n, err := strconv.Atoi(raw.String()); err == nil {
		return n, nil
	}
	fl, err := raw.Float64()
	if err != nil {
		return 0, err
	}
	if fl != math.Trunc(fl) || fl > math.MaxInt32 || fl < math.MinInt32 {
		return 0, fmt.Errorf("not an integer: %s", raw)
	}
	return int(fl), nil
}
