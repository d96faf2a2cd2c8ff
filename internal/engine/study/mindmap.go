package study

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_study/internal/engine"
)

// MindMapNode is one node of a hierarchical mind-map outline.
type MindMapNode struct {
	Name     string        `json:"name"`
	Children []MindMapNode `json:"children,omitempty"`
}

// MindMapRequest is the input for mind-map generation. Chapters are optional;
// when present, the model anchors top-level branches on them.
type MindMapRequest struct {
	VideoSummary   string
	Chapters       []Chapter
	TargetLanguage string
}

const mindMapPrompt = `You are a study assistant. Build a hierarchical mind-map outline of the video
content: one root node named after the central topic, with branches and
sub-branches for the main themes. Keep node names short (2-6 words).
%s
Respond in %s.

Return ONLY a JSON object of the form {"name": "...", "children": [...]} where
each child has the same recursive shape. If the content cannot support a
sensible mind map, return the literal JSON value null. No markdown, no commentary.

Video summary:
%s`

// GenerateMindMap builds a mind-map outline from a summary and optional
// chapter list. A deliberate "no map possible" from the model comes back as
// (nil, nil) — an absent feature, not a failure.
func GenerateMindMap(ctx context.Context, req MindMapRequest) (*MindMapNode, error) {
	var chapterHint string
	if len(req.Chapters) > 0 {
		var sb strings.Builder
		sb.WriteString("\nUse the video's chapters as the top-level branches:\n")
		for _, ch := range req.Chapters {
			fmt.Fprintf(&sb, "- %s\n", ch.Title)
		}
		chapterHint = sb.String()
	}
	prompt := fmt.Sprintf(mindMapPrompt, chapterHint, engine.NormTargetLanguage(req.TargetLanguage), req.VideoSummary)

	raw, err := engine.CallLLM(ctx, prompt)
	if err != nil {
		return nil, err
	}
	if raw == "null" {
		return nil, nil
	}

	var node MindMapNode
	if err := json.Unmarshal([]byte(raw), &node); err != nil {
		return nil, fmt.Errorf("decode mind map: %w (raw: %s)", err, engine.TruncateRunes(raw, 200, "..."))
	}
	if strings.TrimSpace(node.Name) == "" {
		return nil, fmt.Errorf("mind map root has no name")
	}
	return &node, nil
}
