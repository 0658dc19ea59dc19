package lesson

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/capisco/capisco-backend/internal/domain"
)

// LessonRequest holds the parameters for generating a lesson.
type LessonRequest struct {
	VideoURL   string `json:"videoUrl"`
	SourceLang string `json:"sourceLang"`
	TargetLang string `json:"targetLang"`
}

// Validate normalizes the request in place and collects all field errors.
// Empty language codes take the historical defaults (Italian to English).
func (r *LessonRequest) Validate() error {
	var errs []domain.FieldError

	r.VideoURL = strings.TrimSpace(r.VideoURL)
	if r.VideoURL == "" {
		errs = append(errs, domain.FieldError{Field: "videoUrl", Message: "required"})
	}

	r.SourceLang = normalizeLang(r.SourceLang, "it")
	r.TargetLang = normalizeLang(r.TargetLang, "en")

	if _, err := language.Parse(r.SourceLang); err != nil {
		errs = append(errs, domain.FieldError{Field: "sourceLang", Message: "not a valid language code"})
	}
	if _, err := language.Parse(r.TargetLang); err != nil {
		errs = append(errs, domain.FieldError{Field: "targetLang", Message: "not a valid language code"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func normalizeLang(code, fallback string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return fallback
	}
	return code
}
