// Package transcript fetches video caption tracks and flattens them into
// plain transcript text.
package transcript

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/capisco/capisco-backend/internal/domain"
)

const (
	defaultBaseURL = "https://video.google.com/timedtext"

	// Tracks shorter than this are caption stubs, not usable transcripts.
	minTranscriptRunes = 20
)

// languagePriority orders fallback languages when the requested source
// language has no track.
var languagePriority = []string{"it", "en", "es", "fr", "de"}

var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`embed/([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`youtu\.be/([0-9A-Za-z_-]{11})`),
}

// ExtractVideoID pulls the 11-character video ID out of watch, embed and
// short-link URL forms.
func ExtractVideoID(rawURL string) (string, error) {
	for _, re := range videoIDPatterns {
		if m := re.FindStringSubmatch(rawURL); m != nil {
			return m[1], nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrInvalidVideoURL, rawURL)
}

// Track describes one available caption track.
type Track struct {
	Language  string
	Name      string
	Generated bool
}

// Client fetches caption tracks from the timedtext API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client with the default timedtext URL.
func NewClient(logger *slog.Logger) *Client {
	return NewClientWithURL(defaultBaseURL, logger)
}

// NewClientWithURL creates a Client with a custom base URL (for testing).
func NewClientWithURL(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "transcript"),
	}
}

// ExtractVideoID exposes video ID extraction on the client so consumers
// can depend on a single transcript-source interface.
func (c *Client) ExtractVideoID(rawURL string) (string, error) {
	return ExtractVideoID(rawURL)
}

// Ping checks that the caption endpoint is reachable. Any HTTP response
// counts as healthy; only transport failures do not.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return fmt.Errorf("transcript: ping: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("transcript: ping: %w", err)
	}
	resp.Body.Close()
	return nil
}

// Fetch returns the best available transcript for a video together with
// the language of the chosen track. Manual tracks win over generated
// ones, and languages are tried in priority order starting with the
// requested source language. Returns ErrNoTranscript when no track
// yields usable text.
func (c *Client) Fetch(ctx context.Context, videoID, sourceLang string) (string, string, error) {
	tracks, err := c.ListTracks(ctx, videoID)
	if err != nil {
		return "", "", err
	}
	if len(tracks) == 0 {
		return "", "", fmt.Errorf("%w: video %s has no caption tracks", domain.ErrNoTranscript, videoID)
	}

	rankTracks(tracks, sourceLang)

	for _, t := range tracks {
		text, err := c.fetchTrack(ctx, videoID, t)
		if err != nil {
			c.log.WarnContext(ctx, "track fetch failed",
				slog.String("video_id", videoID),
				slog.String("lang", t.Language),
				slog.String("error", err.Error()))
			continue
		}
		if utf8.RuneCountInString(text) <= minTranscriptRunes {
			c.log.DebugContext(ctx, "track too short",
				slog.String("video_id", videoID), slog.String("lang", t.Language))
			continue
		}
		c.log.InfoContext(ctx, "transcript fetched",
			slog.String("video_id", videoID),
			slog.String("lang", t.Language),
			slog.Bool("generated", t.Generated),
			slog.Int("chars", utf8.RuneCountInString(text)))
		return text, t.Language, nil
	}

	return "", "", fmt.Errorf("%w: video %s has no usable track", domain.ErrNoTranscript, videoID)
}

// ListTracks returns the caption tracks advertised for a video.
func (c *Client) ListTracks(ctx context.Context, videoID string) ([]Track, error) {
	reqURL := c.baseURL + "?type=list&v=" + url.QueryEscape(videoID)

	body, err := c.get(ctx, reqURL, videoID)
	if err != nil {
		return nil, fmt.Errorf("transcript: list tracks: %w", err)
	}

	tracks, err := parseTrackList(body)
	if err != nil {
		return nil, fmt.Errorf("transcript: list tracks: %w", err)
	}
	c.log.DebugContext(ctx, "tracks listed",
		slog.String("video_id", videoID), slog.Int("count", len(tracks)))
	return tracks, nil
}

func (c *Client) fetchTrack(ctx context.Context, videoID string, t Track) (string, error) {
	q := url.Values{}
	q.Set("v", videoID)
	q.Set("lang", t.Language)
	if t.Name != "" {
		q.Set("name", t.Name)
	}
	if t.Generated {
		q.Set("kind", "asr")
	}
	reqURL := c.baseURL + "?" + q.Encode()

	body, err := c.get(ctx, reqURL, videoID)
	if err != nil {
		return "", fmt.Errorf("fetch track %s: %w", t.Language, err)
	}
	text, err := parseTrackText(body)
	if err != nil {
		return "", fmt.Errorf("fetch track %s: %w", t.Language, err)
	}
	return text, nil
}

func (c *Client) get(ctx context.Context, reqURL, videoID string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.doWithRetry(ctx, req, videoID)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, videoID string) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "transcript retry", slog.String("video_id", videoID), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	resp, err = c.httpClient.Do(req)
	return resp, err
}

// rankTracks sorts tracks in place: manual before generated, then by
// language priority with the requested source language first.
func rankTracks(tracks []Track, sourceLang string) {
	priority := make([]string, 0, len(languagePriority)+1)
	priority = append(priority, sourceLang)
	priority = append(priority, languagePriority...)

	score := func(t Track) int {
		s := 0
		if t.Generated {
			s += 1000
		}
		for i, l := range priority {
			if strings.EqualFold(t.Language, l) {
				return s + i
			}
		}
		return s + 999
	}
	sort.SliceStable(tracks, func(i, j int) bool { return score(tracks[i]) < score(tracks[j]) })
}
