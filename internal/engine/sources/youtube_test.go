package sources

import (
	"testing"
)

func TestGetYouTubeVideoID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"watch", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch with extra params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s&list=PL123", "dQw4w9WgXcQ"},
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"short link with timestamp", "https://youtu.be/dQw4w9WgXcQ?t=10", "dQw4w9WgXcQ"},
		{"embed", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"shorts", "https://www.youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"no www", "https://youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"mobile subdomain", "https://m.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"id too short", "https://www.youtube.com/watch?v=dQw4w9WgXc", ""},
		{"id too long", "https://youtu.be/dQw4w9WgXcQQ", ""},
		{"id with bad chars", "https://www.youtube.com/watch?v=dQw4w9WgX!Q", ""},
		{"non-youtube host", "https://vimeo.com/watch?v=dQw4w9WgXcQ", ""},
		{"lookalike host", "https://notyoutube.com/watch?v=dQw4w9WgXcQ", ""},
		{"plain text", "not a url", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetYouTubeVideoID(tt.url); got != tt.want {
				t.Errorf("GetYouTubeVideoID(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestWatchURL(t *testing.T) {
	if got := WatchURL("dQw4w9WgXcQ", 0); got != "https://www.youtube.com/watch?v=dQw4w9WgXcQ" {
		t.Errorf("WatchURL without start = %q", got)
	}
	if got := WatchURL("dQw4w9WgXcQ", 95); got != "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=95s" {
		t.Errorf("WatchURL with start = %q", got)
	}
}

func TestPickBestTrack(t *testing.T) {
	manual := func(lang string) captionTrack {
		return captionTrack{BaseURL: "https://yt/" + lang, LanguageCode: lang}
	}
	asr := func(lang string) captionTrack {
		return captionTrack{BaseURL: "https://yt/" + lang + "-asr", LanguageCode: lang, Kind: "asr"}
	}

	tests := []struct {
		name    string
		tracks  []captionTrack
		langs   []string
		want    string
		wantOK  bool
	}{
		{
			name:   "manual preferred over asr",
			tracks: []captionTrack{asr("en"), manual("en")},
			langs:  []string{"en"},
			want:   "https://yt/en",
			wantOK: true,
		},
		{
			name:   "asr when no manual in language",
			tracks: []captionTrack{asr("en"), manual("fr")},
			langs:  []string{"en"},
			want:   "https://yt/en-asr",
			wantOK: true,
		},
		{
			name:   "english fallback",
			tracks: []captionTrack{manual("de"), manual("en-GB")},
			langs:  []string{"ja"},
			want:   "https://yt/en-GB",
			wantOK: true,
		},
		{
			name:   "first usable when nothing matches",
			tracks: []captionTrack{manual("de"), manual("fr")},
			langs:  []string{"ja"},
			want:   "https://yt/de",
			wantOK: true,
		},
		{
			name: "potoken tracks skipped",
			tracks: []captionTrack{
				{BaseURL: "https://yt/en?x=1&exp=xpe", LanguageCode: "en"},
				manual("fr"),
			},
			langs:  []string{"en"},
			want:   "https://yt/fr",
			wantOK: true,
		},
		{
			name: "all tracks need potoken",
			tracks: []captionTrack{
				{BaseURL: "https://yt/en?x=1&exp=xpe", LanguageCode: "en"},
			},
			langs:  []string{"en"},
			want:   "https://yt/en?x=1&exp=xpe",
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := pickBestTrack(tt.tracks, tt.langs)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got.BaseURL != tt.want {
				t.Errorf("track = %q, want %q", got.BaseURL, tt.want)
			}
		})
	}
}

func TestParseTimedText(t *testing.T) {
	body := []byte(`<?xml version="1.0" encoding="utf-8"?>
<transcript>
  <text start="0.12" dur="2.5">Hello &amp; welcome</text>
  <text start="2.62" dur="3.0"><font color="#AAAAAA">second line</font></text>
  <text start="5.62" dur="1.0"> </text>
</transcript>`)

	segs, err := parseTimedText(body)
	if err != nil {
		t.Fatalf("parseTimedText: %v", err)
	}
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2 (blank line dropped)", len(segs))
	}
	if segs[0].Text != "Hello & welcome" {
		t.Errorf("segment 0 text = %q", segs[0].Text)
	}
	if segs[0].OffsetMs != 120 || segs[0].DurationMs != 2500 {
		t.Errorf("segment 0 timing = %d/%d, want 120/2500", segs[0].OffsetMs, segs[0].DurationMs)
	}
	if segs[1].Text != "second line" {
		t.Errorf("segment 1 text = %q (tags should be stripped)", segs[1].Text)
	}
}

func TestParseTimedTextInvalid(t *testing.T) {
	if _, err := parseTimedText([]byte("not xml at all <")); err == nil {
		t.Error("expected error for malformed XML")
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", `{"a":1};var x`, `{"a":1}`},
		{"nested", `{"a":{"b":2}} trailing`, `{"a":{"b":2}}`},
		{"brace in string", `{"a":"}{"} rest`, `{"a":"}{"}`},
		{"escaped quote", `{"a":"say \"hi\""}`, `{"a":"say \"hi\""}`},
		{"string ending in escaped backslash", `{"a":"c:\\"} tail`, `{"a":"c:\\"}`},
		{"double escape before quote", `{"a":"\\\""} tail`, `{"a":"\\\""}`},
		{"unterminated", `{"a":1`, ""},
		{"not an object", `["a"]`, ""},
		{"empty", ``, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(extractJSON([]byte(tt.in)))
			if got != tt.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractTranscriptToken(t *testing.T) {
	data := []byte(`{"engagementPanels":[{"getTranscriptEndpoint":{"params":"CgtkUXc0dzlXZ1hjUQ%3D%3D"}}]}`)
	token, err := extractTranscriptToken(data)
	if err != nil {
		t.Fatalf("extractTranscriptToken: %v", err)
	}
	if token != "CgtkUXc0dzlXZ1hjUQ==" {
		t.Errorf("token = %q (should be URL-decoded)", token)
	}

	if _, err := extractTranscriptToken([]byte(`{"nothing":"here"}`)); err == nil {
		t.Error("expected error when endpoint absent")
	}
}
