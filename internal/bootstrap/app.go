package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resume-vault/internal/applicants"
	"resume-vault/internal/auth"
	"resume-vault/internal/extract"
	"resume-vault/internal/llm"
	"resume-vault/internal/llm/gemini"
	sharedauth "resume-vault/internal/shared/auth"
	"resume-vault/internal/shared/config"
	"resume-vault/internal/shared/encryption"
	"resume-vault/internal/shared/server"
	"resume-vault/internal/shared/storage/db"
)

// App holds shared dependencies.
type App struct {
	Config        config.Config
	Router        *gin.Engine
	DB            *sql.DB
	Repo          applicants.Repo
	Codec         *encryption.Codec
	Tokens        *sharedauth.TokenService
	Fetcher       *extract.Fetcher
	LLM           llm.Client
	ResumeService *applicants.Service
	ResumeHandler *applicants.Handler
	AuthHandler   *auth.Handler
}

// Build wires the application from configuration.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	codec, err := encryption.NewCodec(cfg.JWTSecret)
	if err != nil {
		return nil, err
	}

	tokens, err := sharedauth.NewTokenService(cfg.JWTSecret, 24*time.Hour)
	if err != nil {
		return nil, err
	}

	llmClient, err := buildLLM(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var repo applicants.Repo
	if sqlDB != nil {
		repo = &applicants.PGRepo{DB: sqlDB}
	} else {
		repo = applicants.NewMemoryRepo()
	}

	fetcher := extract.NewFetcher(cfg.FetchTimeout)
	svc := &applicants.Service{
		Repo:    repo,
		Fetcher: fetcher,
		LLM:     llmClient,
		Codec:   codec,
	}

	app := &App{
		Config:        cfg,
		DB:            sqlDB,
		Repo:          repo,
		Codec:         codec,
		Tokens:        tokens,
		Fetcher:       fetcher,
		LLM:           llmClient,
		ResumeService: svc,
		ResumeHandler: applicants.NewHandler(svc),
		AuthHandler:   auth.NewHandler(tokens),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:        cfg,
		Tokens:        tokens,
		AuthHandler:   app.AuthHandler,
		ResumeHandler: app.ResumeHandler,
	})

	return app, nil
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
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repository: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildLLM(ctx context.Context, cfg config.Config) (llm.Client, error) {
	if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: GEMINI_API_KEY empty; resume extraction disabled")
			return llm.Placeholder{}, nil
		}
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	return gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTimeout)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
