package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/docker/go-units"
)

const defaultMaxUploadSize = 10 * 1000 * 1000 // 10MB

// Config holds application configuration.
type Config struct {
	Port               string
	Env                string
	DatabaseURL        string
	CORSAllowOrigin    []string
	MaxUploadSize      string
	LLMProvider        string
	AIModel            string
	VisionModel        string
	OpenAIAPIKey       string
	GeminiAPIKey       string
	PDFExtraction      string
	PDFRenderDPI       int
	AIRequestsPerMin   int
	maxUploadSizeBytes int64
}

// MaxUploadSizeBytes returns the parsed upload limit.
func (c Config) MaxUploadSizeBytes() int64 {
	if c.maxUploadSizeBytes > 0 {
		return c.maxUploadSizeBytes
	}
	if size, err := units.FromHumanSize(c.MaxUploadSize); err == nil && size > 0 {
		return size
	}
	return defaultMaxUploadSize
}

// VisionEnabled reports whether PDFs should be transcribed by the vision model.
func (c Config) VisionEnabled() bool {
	return c.PDFExtraction == "vision"
}

// Load reads configuration from .env files, an optional TOML file and
// environment variables, in increasing precedence.
func Load() Config {
	loadEnvFiles(".env", "cmd/.env")

	file, err := loadFile(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Printf("config file ignored: %v", err)
	}

	env := normalizeEnv(getEnv("ENV", file.Env, "dev"))
	dbURL := getEnv("DATABASE_URL", file.DatabaseURL, "")

	if env == "production" && dbURL == "" {
		log.Fatal("DATABASE_URL is required in production")
	}

	cfg := Config{
		Port:             getEnv("PORT", file.Port, "8080"),
		Env:              env,
		DatabaseURL:      dbURL,
		CORSAllowOrigin:  splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", strings.Join(file.CORSAllowOrigins, ","), "*")),
		MaxUploadSize:    getEnv("MAX_UPLOAD_SIZE", file.MaxUploadSize, "10MB"),
		LLMProvider:      normalizeProvider(getEnv("LLM_PROVIDER", file.LLM.Provider, "openai")),
		AIModel:          getEnv("AI_MODEL", file.LLM.Model, ""),
		VisionModel:      getEnv("VISION_MODEL", file.LLM.VisionModel, ""),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		PDFExtraction:    normalizeExtraction(getEnv("PDF_EXTRACTION", file.PDF.Extraction, "vision")),
		PDFRenderDPI:     getEnvInt("PDF_RENDER_DPI", file.PDF.RenderDPI, 144),
		AIRequestsPerMin: getEnvInt("RATE_LIMIT_AI_PER_MINUTE", file.RateLimit.AIPerMinute, 10),
	}

	size, err := units.FromHumanSize(cfg.MaxUploadSize)
	if err != nil || size <= 0 {
		log.Printf("invalid MAX_UPLOAD_SIZE %q, using 10MB", cfg.MaxUploadSize)
		size = defaultMaxUploadSize
	}
	cfg.maxUploadSizeBytes = size

	if cfg.AIModel == "" {
		cfg.AIModel = defaultModel(cfg.LLMProvider)
	}
	if cfg.VisionModel == "" {
		cfg.VisionModel = defaultModel(cfg.LLMProvider)
	}

	return cfg
}

func getEnv(key, fileVal, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if fileVal != "" {
		return fileVal
	}
	return def
}

func getEnvInt(key string, fileVal, def int) int {
	if raw := strings.TrimSpace(os.Getenv(key)); raw != "" {
		if val, err := strconv.Atoi(raw); err == nil {
			return val
		}
		log.Printf("config env %s invalid int: %q", key, raw)
	}
	if fileVal != 0 {
		return fileVal
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "gemini", "google":
		return "gemini"
	default:
		return "openai"
	}
}

func normalizeExtraction(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "text":
		return "text"
	default:
		return "vision"
	}
}

func defaultModel(provider string) string {
	if provider == "gemini" {
		return "gemini-2.5-flash"
	}
	return "gpt-4o-mini"
}
