package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/capisco/capisco-backend/internal/domain"
	"github.com/capisco/capisco-backend/internal/service/lesson"
)

// maxLessonBodyBytes caps the request body; a lesson request is a URL
// plus two language codes.
const maxLessonBodyBytes = 4 << 10

// lessonService defines the minimal interface needed by LessonHandler.
type lessonService interface {
	GenerateLesson(ctx context.Context, req lesson.LessonRequest) (*domain.LessonDocument, error)
}

// LessonHandler serves the lesson generation endpoint.
type LessonHandler struct {
	svc lessonService
	log *slog.Logger
}

// NewLessonHandler creates a LessonHandler.
func NewLessonHandler(svc lessonService, logger *slog.Logger) *LessonHandler {
	return &LessonHandler{svc: svc, log: logger.With("handler", "lesson")}
}

// Generate handles POST /api/lesson.
func (h *LessonHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req lesson.LessonRequest
	body := http.MaxBytesReader(w, r.Body, maxLessonBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doc, err := h.svc.GenerateLesson(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

func (h *LessonHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidVideoURL):
		writeError(w, http.StatusUnprocessableEntity, "unrecognized video URL")
	case errors.Is(err, domain.ErrNoTranscript):
		writeError(w, http.StatusNotFound, "no usable transcript for this video")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
