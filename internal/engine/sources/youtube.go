package sources

// YouTube implementation is split across three files by responsibility:
//   youtube.go            — URL/video-ID handling and oEmbed video info
//   youtube_innertube.go  — Innertube API types, constants, and low-level HTTP primitives
//   youtube_transcript.go — transcript fetching (watch-page scrape + engagement panel
//                           + ANDROID player fallback)

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/anatolykoptev/go_study/internal/engine"
)

// TranscriptSegment is one timed snippet of spoken text from a video.
// Segments are ordered by OffsetMs ascending and immutable once fetched.
type TranscriptSegment struct {
	Text       string `json:"text"`
	OffsetMs   int64  `json:"offset_ms"`
	DurationMs int64  `json:"duration_ms"`
}

// VideoInfo is lightweight video metadata from the oEmbed endpoint.
type VideoInfo struct {
	Title  string `json:"title"`
	Author string `json:"author_name"`
}

// videoIDRe validates a YouTube video ID: exactly 11 chars of [A-Za-z0-9_-].
var videoIDRe = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// GetYouTubeVideoID extracts the video ID from any recognized YouTube URL form:
// youtube.com/watch?v=ID, youtu.be/ID, youtube.com/embed/ID, youtube.com/shorts/ID.
// Returns "" for malformed IDs or non-YouTube hosts.
func GetYouTubeVideoID(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	var id string
	u, err := url.Parse(rawURL)
	if err == nil && u.Host != "" {
		host := strings.TrimPrefix(u.Hostname(), "www.")
		switch {
		case host == "youtu.be":
			id = strings.SplitN(strings.TrimPrefix(u.Path, "/"), "/", 2)[0]
		case host == "youtube.com" || strings.HasSuffix(host, ".youtube.com"):
			id = u.Query().Get("v")
			if id == "" {
				for _, prefix := range []string{"/embed/", "/shorts/"} {
					if strings.HasPrefix(u.Path, prefix) {
						id = strings.SplitN(strings.TrimPrefix(u.Path, prefix), "/", 2)[0]
						break
					}
				}
			}
		}
	}
	if !videoIDRe.MatchString(id) {
		return ""
	}
	return id
}

// WatchURL returns the canonical watch URL for a video ID, optionally with a
// start timestamp in seconds.
func WatchURL(videoID string, startSeconds int) string {
	if startSeconds > 0 {
		return fmt.Sprintf("https://www.youtube.com/watch?v=%s&t=%ds", videoID, startSeconds)
	}
	return "https://www.youtube.com/watch?v=" + videoID
}

// FetchVideoInfo fetches title and channel name via the public oEmbed endpoint.
// Best-effort: callers treat failure as a missing nicety, not an error condition.
func FetchVideoInfo(ctx context.Context, videoID string) (*VideoInfo, error) {
	engine.IncrOEmbedRequests()

	oembedURL := "https://www.youtube.com/oembed?format=json&url=" + url.QueryEscape(WatchURL(videoID, 0))
	resp, err := engine.RetryHTTP(ctx, engine.DefaultRetryConfig, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, oembedURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", engine.UserAgentBot)
		return engine.Cfg.HTTPClient.Do(req)
	})
	if err != nil {
		return nil, fmt.Errorf("oembed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("oembed: HTTP %d", resp.StatusCode)
	}

	var info VideoInfo
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64*1024)).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode oembed: %w", err)
	}
	return &info, nil
}
