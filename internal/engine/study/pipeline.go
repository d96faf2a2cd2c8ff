package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/anatolykoptev/go_study/internal/engine"
	"github.com/anatolykoptev/go_study/internal/engine/sources"
)

// ProcessedVideoResult is the aggregate output of one pipeline run. Every
// feature field is independently nullable; Error space-joins the failure
// messages of whatever did not succeed, or is empty when everything did.
type ProcessedVideoResult struct {
	VideoURL            string                      `json:"video_url"`
	VideoTitle          string                      `json:"video_title,omitempty"`
	VideoAuthor         string                      `json:"video_author,omitempty"`
	Transcript          []sources.TranscriptSegment `json:"transcript,omitempty"`
	Summary             string                      `json:"summary,omitempty"`
	Flashcards          []Flashcard                 `json:"flashcards,omitempty"`
	Notes               string                      `json:"notes,omitempty"`
	Chapters            []Chapter                   `json:"chapters,omitempty"`
	KeyTakeaways        []string                    `json:"key_takeaways,omitempty"`
	FurtherStudyPrompts []string                    `json:"further_study_prompts,omitempty"`
	MindMap             *MindMapNode                `json:"mind_map,omitempty"`
	Error               string                      `json:"error,omitempty"`
}

// User-facing failure fragments. The transcript message is terminal; the rest
// accumulate into ProcessedVideoResult.Error.
const (
	msgTranscriptUnavailable = "Could not retrieve transcript for the video. It might be unavailable or have transcripts disabled."
	msgInvalidURL            = "Could not extract a video ID from the URL."
	msgSummarySkipNote       = "Summary generation failed, skipping dependent features."
)

// Generator bundles the pipeline's collaborators as injectable functions so
// tests can stub any of them. Use DefaultGenerator for the real wiring.
type Generator struct {
	FetchTranscript func(ctx context.Context, videoID string) ([]sources.TranscriptSegment, error)
	FetchVideoInfo  func(ctx context.Context, videoID string) (*sources.VideoInfo, error)

	Summary      func(ctx context.Context, req SummaryRequest) (string, error)
	Flashcards   func(ctx context.Context, req FlashcardsRequest) ([]Flashcard, error)
	Notes        func(ctx context.Context, req NotesRequest) (string, error)
	Chapters     func(ctx context.Context, req ChaptersRequest) ([]Chapter, error)
	KeyTakeaways func(ctx context.Context, req StudyPromptRequest) ([]string, error)
	FurtherStudy func(ctx context.Context, req StudyPromptRequest) ([]string, error)
	MindMap      func(ctx context.Context, req MindMapRequest) (*MindMapNode, error)
}

// DefaultGenerator wires the real transcript fetcher and feature generators.
func DefaultGenerator() *Generator {
	return &Generator{
		FetchTranscript: func(ctx context.Context, videoID string) ([]sources.TranscriptSegment, error) {
			return sources.FetchTranscript(ctx, videoID, []string{"en"})
		},
		FetchVideoInfo: sources.FetchVideoInfo,
		Summary:        GenerateSummary,
		Flashcards:     GenerateFlashcards,
		Notes:          GenerateNotes,
		Chapters:       GenerateChapters,
		KeyTakeaways:   GenerateKeyTakeaways,
		FurtherStudy:   GenerateFurtherStudy,
		MindMap:        GenerateMindMap,
	}
}

// featureFailMsg builds the user-facing fragment for one failed feature,
// distinguishing upstream timeouts from other failures.
func featureFailMsg(feature string, err error) string {
	if errors.Is(err, engine.ErrUpstreamTimeout) {
		return fmt.Sprintf("Failed to generate %s: upstream timed out.", feature)
	}
	return fmt.Sprintf("Failed to generate %s.", feature)
}

// FlattenTranscript joins segment texts with single spaces, in segment order,
// capped to the configured transcript character budget.
func FlattenTranscript(segments []sources.TranscriptSegment) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg.Text != "" {
			parts = append(parts, seg.Text)
		}
	}
	text := strings.Join(parts, " ")
	if limit := engine.Cfg.MaxTranscriptChars; limit > 0 {
		// Cut at a word boundary so the prompt never ends mid-word.
		text = engine.TruncateAtWord(text, limit)
	}
	return text
}

// ProcessVideo runs the full study-material pipeline for one video URL:
//
//  1. Extract the video ID and fetch the transcript. Empty transcript or
//     fetch error is terminal: all feature fields stay null.
//  2. Generate the summary from the flattened transcript text.
//  3. If the summary succeeded, fan out the summary-dependent features
//     (flashcards, notes, key takeaways, further study, mind map)
//     concurrently with settle-all semantics: every launched call runs to
//     completion, one failure never cancels its siblings.
//  4. Generate chapters from the raw timed segments regardless of summary
//     outcome, concurrently with the fan-out.
//  5. If both summary and chapters are available, attempt one chapter-aware
//     mind-map refinement; on success it replaces the summary-only outline,
//     on failure the earlier outline is silently kept.
//  6. Assemble the result with all collected fields and the aggregate error.
//
// No generation call is ever retried; each failure is reported once.
func (g *Generator) ProcessVideo(ctx context.Context, videoURL, summaryStyle, targetLanguage string) *ProcessedVideoResult {
	engine.IncrPipelineRuns()
	result := &ProcessedVideoResult{VideoURL: videoURL}

	videoID := sources.GetYouTubeVideoID(videoURL)
	if videoID == "" {
		result.Error = msgInvalidURL
		engine.IncrPipelineFailures()
		return result
	}

	var segments []sources.TranscriptSegment
	err := engine.TrackOperation(ctx, "fetch_transcript", func(ctx context.Context) error {
		var fetchErr error
		segments, fetchErr = g.FetchTranscript(ctx, videoID)
		return fetchErr
	})
	if err != nil || len(segments) == 0 {
		if err != nil {
			slog.Warn("pipeline: transcript fetch failed", slog.String("id", videoID), slog.Any("error", err))
		}
		result.Error = msgTranscriptUnavailable
		engine.IncrPipelineFailures()
		return result
	}
	result.Transcript = segments

	lang := engine.NormTargetLanguage(targetLanguage)
	style := NormSummaryStyle(summaryStyle)
	transcriptText := FlattenTranscript(segments)

	var summary string
	summaryErr := engine.TrackOperation(ctx, "generate_summary", func(ctx context.Context) error {
		var genErr error
		summary, genErr = g.Summary(ctx, SummaryRequest{
			Text:           transcriptText,
			Style:          style,
			TargetLanguage: lang,
		})
		return genErr
	})
	if summaryErr != nil {
		slog.Warn("pipeline: summary failed", slog.String("id", videoID), slog.Any("error", summaryErr))
	} else {
		result.Summary = summary
	}

	// Fan-out. Each goroutine owns its own result slot; the WaitGroup join is
	// the only synchronization. Chapters depend only on the transcript and
	// run even when the summary failed.
	var (
		wg sync.WaitGroup

		flashcards    []Flashcard
		flashcardsErr error
		notes         string
		notesErr      error
		takeaways     []string
		takeawaysErr  error
		prompts       []string
		promptsErr    error
		mindMap       *MindMapNode
		mindMapErr    error
		chapters      []Chapter
		chaptersErr   error
		videoInfo     *sources.VideoInfo
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		chapters, chaptersErr = g.Chapters(ctx, ChaptersRequest{Segments: segments, TargetLanguage: lang})
	}()

	if g.FetchVideoInfo != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Best-effort nicety: failure never reaches the aggregate error.
			info, err := g.FetchVideoInfo(ctx, videoID)
			if err != nil {
				slog.Debug("pipeline: video info unavailable", slog.String("id", videoID), slog.Any("error", err))
				return
			}
			videoInfo = info
		}()
	}

	if summaryErr == nil {
		wg.Add(5)
		go func() {
			defer wg.Done()
			flashcards, flashcardsErr = g.Flashcards(ctx, FlashcardsRequest{VideoSummary: summary, TargetLanguage: lang})
		}()
		go func() {
			defer wg.Done()
			notes, notesErr = g.Notes(ctx, NotesRequest{VideoSummary: summary, TargetLanguage: lang})
		}()
		go func() {
			defer wg.Done()
			takeaways, takeawaysErr = g.KeyTakeaways(ctx, StudyPromptRequest{VideoSummary: summary, TargetLanguage: lang})
		}()
		go func() {
			defer wg.Done()
			prompts, promptsErr = g.FurtherStudy(ctx, StudyPromptRequest{VideoSummary: summary, TargetLanguage: lang})
		}()
		go func() {
			defer wg.Done()
			mindMap, mindMapErr = g.MindMap(ctx, MindMapRequest{VideoSummary: summary, TargetLanguage: lang})
		}()
	}

	wg.Wait()

	if videoInfo != nil {
		result.VideoTitle = videoInfo.Title
		result.VideoAuthor = videoInfo.Author
	}
	if chaptersErr == nil {
		// Re-sort rather than trusting the generator's ordering contract.
		sort.Slice(chapters, func(i, j int) bool {
			return chapters[i].StartTimeSeconds < chapters[j].StartTimeSeconds
		})
		result.Chapters = chapters
	}
	if summaryErr == nil {
		if flashcardsErr == nil {
			result.Flashcards = flashcards
		}
		if notesErr == nil {
			result.Notes = notes
		}
		if takeawaysErr == nil {
			result.KeyTakeaways = takeaways
		}
		if promptsErr == nil {
			result.FurtherStudyPrompts = prompts
		}
		if mindMapErr == nil {
			result.MindMap = mindMap // may be nil: benign "no map possible"
		}

		// Chapter-aware refinement. Failure here is silent: a fallback
		// outline (or a deliberate absence) already exists.
		if result.Summary != "" && len(result.Chapters) > 0 {
			refined, err := g.MindMap(ctx, MindMapRequest{
				VideoSummary:   result.Summary,
				Chapters:       result.Chapters,
				TargetLanguage: lang,
			})
			if err == nil && refined != nil {
				result.MindMap = refined
			} else if err != nil {
				slog.Debug("pipeline: mind-map refinement failed", slog.String("id", videoID), slog.Any("error", err))
			}
		}
	}

	// Assemble the aggregate error in a fixed order so the output is
	// deterministic regardless of goroutine completion order.
	var errs []string
	if summaryErr != nil {
		errs = append(errs,
			fmt.Sprintf("Failed to generate summary (style: %s, language: %s).", style, lang),
			msgSummarySkipNote)
	} else {
		if flashcardsErr != nil {
			errs = append(errs, featureFailMsg("flashcards", flashcardsErr))
		}
		if notesErr != nil {
			errs = append(errs, featureFailMsg("notes", notesErr))
		}
		if takeawaysErr != nil {
			errs = append(errs, featureFailMsg("key takeaways", takeawaysErr))
		}
		if promptsErr != nil {
			errs = append(errs, featureFailMsg("further study prompts", promptsErr))
		}
		if mindMapErr != nil {
			errs = append(errs, featureFailMsg("mind map", mindMapErr))
		}
	}
	if chaptersErr != nil {
		errs = append(errs, featureFailMsg("chapters", chaptersErr))
	}
	if len(errs) > 0 {
		result.Error = strings.Join(errs, " ")
		engine.IncrPipelineFailures()
	}
	return result
}
