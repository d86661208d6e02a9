package bootstrap

import (
	"github.com/gin-gonic/gin"

	"smartrecruit-backend/internal/analyze"
	"smartrecruit-backend/internal/config"
	"smartrecruit-backend/internal/llm/openai"
	"smartrecruit-backend/internal/recommend"
	"smartrecruit-backend/internal/services/health"
	"smartrecruit-backend/internal/shared/server"
	"smartrecruit-backend/internal/shared/telemetry"
)

// App holds the process dependencies.
type App struct {
	Config      config.Config
	Router      *gin.Engine
	Recommender *recommend.Recommender
}

// Build wires configuration into a ready-to-serve application. The presence
// of an API key in the config decides the recommendation mode; nothing below
// this point reads the environment.
func Build(cfg config.Config) (*App, error) {
	telemetry.Init(cfg.Env)

	opts := []recommend.Option{
		recommend.WithMaxPromptChars(cfg.MaxPromptChars),
	}
	if cfg.RemoteEnabled() {
		client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel, cfg.OpenAIAPIURL, cfg.LLMTimeout)
		if err != nil {
			return nil, err
		}
		opts = append(opts, recommend.WithClient(client))

		if cfg.EmbeddingModel != "" {
			embedder, err := openai.NewEmbeddingClient(cfg.OpenAIAPIKey, cfg.EmbeddingModel, cfg.OpenAIAPIURL, cfg.LLMTimeout)
			if err != nil {
				return nil, err
			}
			opts = append(opts, recommend.WithEmbedder(embedder))
		}
	}
	recommender := recommend.New(opts...)

	handler := analyze.NewHandler(recommender, cfg.MaxUploadBytes)
	router, err := server.NewRouter(cfg, server.RouterDeps{
		AnalyzeHandler: handler,
		HealthService:  health.NewService(cfg.RemoteEnabled()),
	})
	if err != nil {
		return nil, err
	}

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":            cfg.Env,
		"remote_enabled": cfg.RemoteEnabled(),
		"model":          cfg.LLMModel,
	})

	return &App{
		Config:      cfg,
		Router:      router,
		Recommender: recommender,
	}, nil
}
