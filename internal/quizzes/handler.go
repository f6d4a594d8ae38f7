package quizzes

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/edututor/backend/internal/assessment"
	"github.com/edututor/backend/internal/models"
	"github.com/gorilla/mux"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ── Quiz Handlers ────────────────────────────────────────

func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.Count <= 0 {
		req.Count = 5
	}
	if req.DifficultyLevel == 0 {
		req.DifficultyLevel = 2
	}
	if req.Subject == "" {
		req.Subject = assessment.SubjectGeneral
	}

	resp := h.service.GenerateQuiz(req)
	if len(resp.Questions) == 0 {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "No questions available for the requested subject"})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) Diagnostic(w http.ResponseWriter, r *http.Request) {
	var req models.DiagnosticRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.Count <= 0 {
		req.Count = 10
	}

	writeJSON(w, http.StatusOK, h.service.Diagnostic(req))
}

func (h *Handler) AdaptiveQuiz(w http.ResponseWriter, r *http.Request) {
	var req models.AdaptiveQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.UserID <= 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "user_id is required"})
		return
	}
	if req.Subject == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "subject is required"})
		return
	}
	if req.Count <= 0 {
		req.Count = 8
	}

	resp, err := h.service.AdaptiveQuiz(req)
	if err != nil {
		log.Printf("[handler] AdaptiveQuiz error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to build adaptive quiz"})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req models.EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	writeJSON(w, http.StatusOK, h.service.Evaluate(req))
}

// ── User Handlers ────────────────────────────────────────

func (h *Handler) ListAttempts(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromPath(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	limit := intQueryParam(query, "limit", 20)
	offset := intQueryParam(query, "offset", 0)

	resp, err := h.service.Attempts(userID, limit, offset)
	if err != nil {
		log.Printf("[handler] ListAttempts error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list attempts"})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromPath(w, r)
	if !ok {
		return
	}

	profile, err := h.service.Profile(userID)
	if err != nil {
		log.Printf("[handler] GetProfile error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to get profile"})
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// ── Authoring Handlers ───────────────────────────────────

func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateQuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if !models.ValidDifficulties[req.Difficulty] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "difficulty must be 'easy', 'medium', or 'hard'"})
		return
	}
	if req.Subject == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "subject is required"})
		return
	}
	if req.Count <= 0 {
		req.Count = 5
	}

	resp, err := h.service.GenerateCandidates(r.Context(), req)
	if err != nil {
		log.Printf("[handler] GenerateQuestions error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Generation failed: " + err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// ── Helpers ──────────────────────────────────────────────

func userIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid user ID"})
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func intQueryParam(query url.Values, key string, defaultVal int) int {
	s := query.Get(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return defaultVal
	}
	return v
}
