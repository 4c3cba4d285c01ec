package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/abhisek/mathai/internal/question"
	"github.com/abhisek/mathai/internal/store"
	"github.com/abhisek/mathai/internal/tutor"
)

// questionView is the client-facing question shape. The answer and
// solution steps stay server-side; only grading reveals them.
type questionView struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Topic      string `json:"topic"`
	Grade      int    `json:"grade"`
	Difficulty string `json:"difficulty"`
	Source     string `json:"source"`
}

func viewOf(q *store.Question) questionView {
	return questionView{
		ID:         q.ID,
		Text:       q.Text,
		Topic:      q.Topic,
		Grade:      q.Grade,
		Difficulty: q.Difficulty,
		Source:     q.Source,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleCreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Grade      int    `json:"grade"`
		Difficulty string `json:"difficulty"`
		Topic      string `json:"topic"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p := question.Params{
		Grade:      req.Grade,
		Difficulty: question.Difficulty(req.Difficulty),
		Topic:      question.Topic(req.Topic),
	}
	if err := p.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	q, err := s.tutor.NewQuestion(r.Context(), p)
	if err != nil {
		s.serverError(w, r, "create question", err)
		return
	}

	writeJSON(w, http.StatusCreated, viewOf(q))
}

func (s *Server) handleGetQuestion(w http.ResponseWriter, r *http.Request) {
	q, err := s.tutor.Question(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, tutor.ErrQuestionNotFound) {
		writeError(w, http.StatusNotFound, "question not found")
		return
	}
	if err != nil {
		s.serverError(w, r, "get question", err)
		return
	}

	writeJSON(w, http.StatusOK, viewOf(q))
}

func (s *Server) handleSubmitAttempt(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Answer  string  `json:"answer"`
		Seconds float64 `json:"seconds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Answer == "" {
		writeError(w, http.StatusBadRequest, "answer is required")
		return
	}

	sub, err := s.tutor.Submit(r.Context(), chi.URLParam(r, "id"), req.Answer, req.Seconds)
	if errors.Is(err, tutor.ErrQuestionNotFound) {
		writeError(w, http.StatusNotFound, "question not found")
		return
	}
	if err != nil {
		s.serverError(w, r, "submit attempt", err)
		return
	}

	attemptsTotal.WithLabelValues(strconv.FormatBool(sub.Verdict.IsCorrect)).Inc()

	writeJSON(w, http.StatusOK, map[string]any{
		"correct":    sub.Verdict.IsCorrect,
		"confidence": sub.Verdict.Confidence,
		"feedback":   sub.Verdict.Feedback,
		"next_hint":  sub.Verdict.NextHint,
		"attempt":    sub.Attempt,
		"points":     sub.Points,
	})
}

func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	tier := 1
	if t := r.URL.Query().Get("tier"); t != "" {
		n, err := strconv.Atoi(t)
		if err != nil {
			writeError(w, http.StatusBadRequest, "tier must be an integer")
			return
		}
		tier = n
	}

	id := chi.URLParam(r, "id")
	hint, err := s.tutor.Hint(r.Context(), id, tier)
	if errors.Is(err, tutor.ErrQuestionNotFound) {
		writeError(w, http.StatusNotFound, "question not found")
		return
	}
	if err != nil {
		s.serverError(w, r, "get hint", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"question_id": id,
		"tier":        tier,
		"hint":        hint,
	})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question string `json:"question"`
		Topic    string `json:"topic"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Question == "" {
		writeError(w, http.StatusBadRequest, "question is required")
		return
	}

	sol, source, err := s.tutor.Solve(r.Context(), req.Question, req.Topic)
	if errors.Is(err, tutor.ErrUnsolvable) {
		writeError(w, http.StatusUnprocessableEntity, "question could not be solved")
		return
	}
	if err != nil {
		s.serverError(w, r, "solve", err)
		return
	}

	solveTotal.WithLabelValues(source).Inc()

	writeJSON(w, http.StatusOK, map[string]any{
		"answer": sol.Answer,
		"steps":  sol.Steps,
		"source": source,
	})
}

// serverError logs the failure with the request ID and answers 500
// without leaking internals.
func (s *Server) serverError(w http.ResponseWriter, r *http.Request, op string, err error) {
	s.logger.Error(op+" failed",
		zap.Error(err),
		zap.String("request_id", RequestIDFromContext(r.Context())),
	)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a standardised JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
