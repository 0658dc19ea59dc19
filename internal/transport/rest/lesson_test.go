package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/capisco/capisco-backend/internal/domain"
	"github.com/capisco/capisco-backend/internal/service/lesson"
)

type lessonServiceMock struct {
	generateFn func(ctx context.Context, req lesson.LessonRequest) (*domain.LessonDocument, error)
}

func (m *lessonServiceMock) GenerateLesson(ctx context.Context, req lesson.LessonRequest) (*domain.LessonDocument, error) {
	return m.generateFn(ctx, req)
}

func testLessonHandler(fn func(ctx context.Context, req lesson.LessonRequest) (*domain.LessonDocument, error)) *LessonHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewLessonHandler(&lessonServiceMock{generateFn: fn}, logger)
}

func TestLessonGenerate_Success(t *testing.T) {
	t.Parallel()

	doc := &domain.LessonDocument{
		ID:      uuid.New(),
		Title:   "Il gelato italiano",
		VideoID: "dQw4w9WgXcQ",
	}
	h := testLessonHandler(func(_ context.Context, req lesson.LessonRequest) (*domain.LessonDocument, error) {
		if req.VideoURL != "https://youtu.be/dQw4w9WgXcQ" {
			t.Errorf("unexpected VideoURL %q", req.VideoURL)
		}
		return doc, nil
	})

	body := `{"videoUrl":"https://youtu.be/dQw4w9WgXcQ","sourceLang":"it","targetLang":"en"}`
	req := httptest.NewRequest(http.MethodPost, "/api/lesson", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Generate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var got domain.LessonDocument
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.ID != doc.ID || got.Title != doc.Title {
		t.Errorf("response = %q/%q, want %q/%q", got.ID, got.Title, doc.ID, doc.Title)
	}
}

func TestLessonGenerate_InvalidBody(t *testing.T) {
	t.Parallel()

	h := testLessonHandler(func(context.Context, lesson.LessonRequest) (*domain.LessonDocument, error) {
		t.Fatal("service must not be called")
		return nil, nil
	})

	req := httptest.NewRequest(http.MethodPost, "/api/lesson", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.Generate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestLessonGenerate_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", domain.NewValidationErrors([]domain.FieldError{{Field: "videoUrl", Message: "video URL is required"}}), http.StatusBadRequest},
		{"invalid video url", domain.ErrInvalidVideoURL, http.StatusUnprocessableEntity},
		{"no transcript", domain.ErrNoTranscript, http.StatusNotFound},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := testLessonHandler(func(context.Context, lesson.LessonRequest) (*domain.LessonDocument, error) {
				return nil, tt.err
			})

			req := httptest.NewRequest(http.MethodPost, "/api/lesson", strings.NewReader(`{"videoUrl":"x"}`))
			rec := httptest.NewRecorder()

			h.Generate(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}

			var resp map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp["error"] == "" {
				t.Error("expected non-empty error message")
			}
		})
	}
}
