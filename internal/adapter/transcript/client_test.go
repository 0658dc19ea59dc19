package transcript

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/capisco/capisco-backend/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const listBody = `<transcript_list>
	<track lang_code="en" kind="asr"/>
	<track lang_code="it" kind="asr"/>
	<track lang_code="it" name="manual"/>
</transcript_list>`

func captionsBody(lines ...string) string {
	body := "<transcript>"
	for _, l := range lines {
		body += `<text start="0" dur="1">` + l + `</text>`
	}
	return body + "</transcript>"
}

func TestExtractVideoID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ?t=10", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
	}
	for _, tt := range tests {
		got, err := ExtractVideoID(tt.url)
		if err != nil {
			t.Errorf("ExtractVideoID(%q) error: %v", tt.url, err)
		}
		if got != tt.want {
			t.Errorf("ExtractVideoID(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}

	_, err := ExtractVideoID("https://example.com/not-a-video")
	if !errors.Is(err, domain.ErrInvalidVideoURL) {
		t.Errorf("invalid URL error = %v, want ErrInvalidVideoURL", err)
	}
}

func TestClient_Fetch_PrefersManualSourceLanguage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("type") == "list" {
			w.Write([]byte(listBody))
			return
		}
		if q.Get("lang") == "it" && q.Get("kind") == "" {
			w.Write([]byte(captionsBody("Il gelato è buono", "Che bella giornata oggi")))
			return
		}
		t.Errorf("unexpected track request: %s", r.URL.RawQuery)
	}))
	defer srv.Close()

	c := NewClientWithURL(srv.URL, newTestLogger())
	text, lang, err := c.Fetch(context.Background(), "dQw4w9WgXcQ", "it")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lang != "it" {
		t.Errorf("lang = %q, want it", lang)
	}
	if text != "Il gelato è buono Che bella giornata oggi" {
		t.Errorf("text = %q", text)
	}
}

func TestClient_Fetch_FallsBackAcrossTracks(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch {
		case q.Get("type") == "list":
			w.Write([]byte(listBody))
		case q.Get("lang") == "it":
			// Both Italian tracks are caption stubs.
			w.Write([]byte(captionsBody("ciao")))
		case q.Get("lang") == "en":
			w.Write([]byte(captionsBody("Today we talk about Italian ice cream traditions")))
		}
	}))
	defer srv.Close()

	c := NewClientWithURL(srv.URL, newTestLogger())
	text, lang, err := c.Fetch(context.Background(), "dQw4w9WgXcQ", "it")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lang != "en" {
		t.Errorf("lang = %q, want en", lang)
	}
	if text == "" {
		t.Error("text is empty")
	}
}

func TestClient_Fetch_NoUsableTracks(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("type") == "list" {
			w.Write([]byte(`<transcript_list></transcript_list>`))
			return
		}
		t.Errorf("unexpected track request: %s", r.URL.RawQuery)
	}))
	defer srv.Close()

	c := NewClientWithURL(srv.URL, newTestLogger())
	_, _, err := c.Fetch(context.Background(), "dQw4w9WgXcQ", "it")
	if !errors.Is(err, domain.ErrNoTranscript) {
		t.Errorf("error = %v, want ErrNoTranscript", err)
	}
}

func TestClient_ListTracks_RetriesOn5xx(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(listBody))
	}))
	defer srv.Close()

	c := NewClientWithURL(srv.URL, newTestLogger())
	tracks, err := c.ListTracks(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tracks) != 3 {
		t.Errorf("len(tracks) = %d, want 3", len(tracks))
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want 2", calls.Load())
	}
}

func TestRankTracks(t *testing.T) {
	t.Parallel()

	tracks := []Track{
		{Language: "en", Generated: true},
		{Language: "it", Generated: true},
		{Language: "it"},
		{Language: "fr"},
	}
	rankTracks(tracks, "it")

	want := []Track{
		{Language: "it"},
		{Language: "fr"},
		{Language: "it", Generated: true},
		{Language: "en", Generated: true},
	}
	for i := range want {
		if tracks[i] != want[i] {
			t.Errorf("tracks[%d] = %+v, want %+v", i, tracks[i], want[i])
		}
	}
}
