package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-tailor/internal/extract"
	"resume-tailor/internal/llm"
	"resume-tailor/internal/llm/gemini"
	"resume-tailor/internal/llm/openai"
	"resume-tailor/internal/resumes"
	"resume-tailor/internal/services/health"
	"resume-tailor/internal/shared/config"
	"resume-tailor/internal/shared/server"
	"resume-tailor/internal/shared/storage/db"
	"resume-tailor/internal/tailor"
)

// App holds shared dependencies.
type App struct {
	Config  config.Config
	Router  *gin.Engine
	DB      *sql.DB
	Repo    resumes.Repo
	Service *resumes.Service
}

// Build prepares dependencies and the router.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var repo resumes.Repo
	if sqlDB != nil {
		repo = &resumes.PGRepo{DB: sqlDB}
	} else {
		repo = resumes.NewMemoryRepo()
	}

	text, vision, err := buildProviders(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var extractor *extract.Extractor
	if cfg.VisionEnabled() {
		extractor = extract.NewExtractor(vision, extract.PageRasterizer{DPI: cfg.PDFRenderDPI})
	} else {
		extractor = extract.NewExtractor(nil, nil)
	}

	svc := &resumes.Service{
		Repo:      repo,
		Extractor: extractor,
		Engine:    tailor.NewEngine(text),
	}

	app := &App{
		Config:  cfg,
		DB:      sqlDB,
		Repo:    repo,
		Service: svc,
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:        cfg,
		ResumeHandler: resumes.NewHandler(svc, cfg.MaxUploadSizeBytes()),
		Health:        health.NewService(sqlDB),
	})

	return app, nil
}

// Close releases the database pool, if any.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repository")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repository: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

// buildProviders returns the text provider and the vision provider. Without
// an API key both are Unconfigured so the service still starts.
func buildProviders(ctx context.Context, cfg config.Config) (llm.Provider, llm.Provider, error) {
	switch cfg.LLMProvider {
	case "gemini":
		if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
			u := llm.Unconfigured{Reason: "GEMINI_API_KEY is not set"}
			return u, u, nil
		}
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.AIModel)
		if err != nil {
			return nil, nil, err
		}
		return client, client.WithModel(cfg.VisionModel), nil
	default:
		if strings.TrimSpace(cfg.OpenAIAPIKey) == "" {
			u := llm.Unconfigured{Reason: "OPENAI_API_KEY is not set"}
			return u, u, nil
		}
		client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.AIModel)
		if err != nil {
			return nil, nil, err
		}
		return client, client.WithModel(cfg.VisionModel), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
