package study

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/anatolykoptev/go_study/internal/engine"
	"github.com/anatolykoptev/go_study/internal/engine/sources"
)

// Chapter is a titled entry point into the video timeline.
type Chapter struct {
	Title            string `json:"title"`
	StartTimeSeconds int    `json:"start_time_seconds"`
}

// ChaptersRequest is the input for chapter generation.
type ChaptersRequest struct {
	Segments       []sources.TranscriptSegment
	TargetLanguage string
}

// maxChapterSegments bounds the request size sent to the model.
const maxChapterSegments = 700

const chaptersPrompt = `You are a study assistant. The timed transcript lines below are formatted as
"[seconds] text". Divide the video into 4-10 logical chapters. For each chapter
give a concise title and the start time in whole seconds, taken from the
timestamps of the lines where that topic begins.

Respond in %s.

Return ONLY a JSON object of the form {"chapters": [{"title": "...", "start_time_seconds": 0}]},
no markdown, no commentary.

Transcript:
%s`

// GenerateChapters derives titled chapters from timed transcript segments.
// An empty segment list short-circuits to an empty chapter list without a
// model call. Output is sorted by start time ascending; chapters with
// negative start times are dropped.
func GenerateChapters(ctx context.Context, req ChaptersRequest) ([]Chapter, error) {
	if len(req.Segments) == 0 {
		return []Chapter{}, nil
	}

	segments := capSegments(req.Segments)

	var sb strings.Builder
	for _, seg := range segments {
		fmt.Fprintf(&sb, "[%d] %s\n", seg.OffsetMs/1000, seg.Text)
	}
	prompt := fmt.Sprintf(chaptersPrompt, engine.NormTargetLanguage(req.TargetLanguage), sb.String())

	out, err := engine.CallLLMJSON[struct {
		Chapters []Chapter `json:"chapters"`
	}](ctx, prompt)
	if err != nil {
		return nil, err
	}

	chapters := make([]Chapter, 0, len(out.Chapters))
	for _, ch := range out.Chapters {
		if strings.TrimSpace(ch.Title) == "" || ch.StartTimeSeconds < 0 {
			continue
		}
		chapters = append(chapters, ch)
	}
	if len(chapters) == 0 {
		return nil, fmt.Errorf("no valid chapters in response")
	}
	sort.Slice(chapters, func(i, j int) bool {
		return chapters[i].StartTimeSeconds < chapters[j].StartTimeSeconds
	})
	return chapters, nil
}

func segmentCap() int {
	if n := engine.Cfg.MaxTranscriptSegments; n > 0 {
		return n
	}
	return maxChapterSegments
}

// capSegments keeps the first segmentCap() segments.
func capSegments(segments []sources.TranscriptSegment) []sources.TranscriptSegment {
	if limit := segmentCap(); len(segments) > limit {
		return segments[:limit]
	}
	return segments
}
