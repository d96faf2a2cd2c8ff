// go_study — YouTube Study-Material MCP server.
//
// Exposes five MCP tools: process_video, generate_flashcards, generate_quiz,
// generate_exam, ask_question. Fetches YouTube transcripts directly (no API
// key needed) and generates study materials through an OpenAI-compatible LLM.
package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-kit/llm"
	"github.com/anatolykoptev/go-mcpserver"
	stealth "github.com/anatolykoptev/go-stealth"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/redis/go-redis/v9"

	"github.com/anatolykoptev/go_study/internal/engine"
	"github.com/anatolykoptev/go_study/internal/engine/study"
	"github.com/anatolykoptev/go_study/internal/studyserver"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8893")
)

func main() {
	sessions := initEngine()

	slog.Info("starting go_study",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_study",
		Version: version,
	}, nil)

	studyserver.RegisterTools(server, sessions)
	slog.Info("tools registered", slog.Int("count", 5))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_study",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 600 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() *study.SessionStore {
	c := engine.Config{
		LLMAPIKey:             env.Str("LLM_API_KEY", ""),
		LLMAPIKeyFallbacks:    env.List("LLM_API_KEY_FALLBACKS", ""),
		LLMAPIBase:            env.Str("LLM_API_BASE", "https://generativelanguage.googleapis.com/v1beta/openai"),
		LLMModel:              env.Str("LLM_MODEL", "gemini-2.5-flash"),
		LLMTemperature:        env.Float("LLM_TEMPERATURE", 0.3),
		LLMMaxTokens:          env.Int("LLM_MAX_TOKENS", 16384),
		LLMRateLimit:          env.Float("LLM_RATE_LIMIT", 2),
		LLMRateBurst:          env.Int("LLM_RATE_BURST", 6),
		GenTimeout:            env.Duration("GEN_TIMEOUT", 90*time.Second),
		TranscriptTimeout:     env.Duration("TRANSCRIPT_TIMEOUT", 30*time.Second),
		MaxTranscriptChars:    env.Int("MAX_TRANSCRIPT_CHARS", 120000),
		MaxTranscriptSegments: env.Int("MAX_TRANSCRIPT_SEGMENTS", 700),
		TargetLanguage:        env.Str("TARGET_LANGUAGE", "English"),
		SessionTTL:            env.Duration("SESSION_TTL", time.Hour),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}

	bc, err := stealth.NewClient(stealth.WithTimeout(15))
	if err != nil {
		slog.Warn("stealth client init failed, using plain HTTP for watch pages", slog.Any("error", err))
	} else {
		c.BrowserClient = bc
		slog.Info("stealth browser client initialized")
	}

	c.LLMClient = llm.NewClient(c.LLMAPIBase, c.LLMAPIKey, c.LLMModel,
		llm.WithFallbackKeys(c.LLMAPIKeyFallbacks),
		llm.WithMaxTokens(c.LLMMaxTokens),
		llm.WithTemperature(c.LLMTemperature),
		llm.WithHTTPClient(&http.Client{Timeout: 120 * time.Second}),
	)

	engine.Init(c)

	// Session store: Redis when configured, in-memory otherwise.
	var rdb *redis.Client
	if redisURL := env.Str("REDIS_URL", ""); redisURL != "" {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			slog.Warn("invalid REDIS_URL, sessions are memory-only", slog.Any("error", err))
		} else {
			rdb = redis.NewClient(opt)
			slog.Info("redis session store initialized")
		}
	}
	return study.NewSessionStore(rdb, c.SessionTTL)
}
