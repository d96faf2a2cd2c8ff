package engine

import (
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/llm"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	LLMAPIKey          string
	LLMAPIKeyFallbacks []string
	LLMAPIBase         string
	LLMModel           string
	LLMTemperature     float64
	LLMMaxTokens       int
	LLMRateLimit       float64 // LLM calls per second (0 = unlimited)
	LLMRateBurst       int

	GenTimeout        time.Duration // budget for one generation call
	TranscriptTimeout time.Duration // budget for one transcript fetch

	MaxTranscriptChars    int // transcript text cap before summarization
	MaxTranscriptSegments int // segment cap for chapter generation

	TargetLanguage string // default output language

	SessionTTL time.Duration // Q&A conversation retention

	HTTPClient    *http.Client
	BrowserClient *BrowserClient // nil = watch-page scrape uses HTTPClient
	LLMClient     *llm.Client
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (study, sources).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
	initLimiter()
}
