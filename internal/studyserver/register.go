// Package studyserver registers the study-material MCP tools: process_video,
// generate_flashcards, generate_quiz, generate_exam, ask_question.
package studyserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_study/internal/engine/study"
)

// RegisterTools registers all study tools on the given MCP server.
func RegisterTools(server *mcp.Server, sessions *study.SessionStore) {
	gen := study.DefaultGenerator()
	registerProcessVideo(server, gen)
	registerGenerateFlashcards(server)
	registerGenerateQuiz(server)
	registerGenerateExam(server)
	registerAskQuestion(server, sessions)
}
