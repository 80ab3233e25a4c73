package app

import (
	"context"
	"log"
	"time"

	"trackmycareer/internal/ai"
	"trackmycareer/internal/catalog"
	"trackmycareer/internal/config"
	"trackmycareer/internal/database"
	dbpostgres "trackmycareer/internal/database/postgres"
	"trackmycareer/internal/domain/matching"
	"trackmycareer/internal/infrastructure/cache"
	"trackmycareer/internal/repository"
	"trackmycareer/internal/usecase"
)

type Container struct {
	Config  config.Config
	Logger  *log.Logger
	DB      database.DB
	Cache   *cache.Redis
	Catalog *catalog.Catalog
	Usecase usecase.AnalysisUsecase

	gemini *ai.Gemini
}

// NewContainer assembles every dependency. Missing infrastructure never
// aborts startup: the role catalog falls back to the bundled JSON file or
// the built-in default, the AI provider to the disabled generator, the
// cache to a pass-through.
func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	c := &Container{Config: cfg, Logger: logger}

	c.Cache = cache.NewRedis(logger)

	if cfg.Database.Configured() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		db, err := dbpostgres.Connect(ctx, cfg.Database)
		cancel()
		if err != nil {
			logger.Printf("[App] database unavailable, using file catalog: %v", err)
		} else {
			c.DB = db
		}
	}

	c.Catalog = c.loadCatalog()

	vocab := catalog.NewVocabulary(c.Catalog)
	gen := c.buildGenerator()
	c.Usecase = usecase.NewAnalysisUsecase(c.Catalog, vocab, matching.DefaultScoring(), gen, logger)

	return c, nil
}

func (c *Container) loadCatalog() *catalog.Catalog {
	if c.DB != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		cat, err := repository.NewPostgresRoleRepository(c.DB).LoadCatalog(ctx)
		if err == nil && cat.Len() > 0 {
			c.Logger.Printf("[App] role catalog loaded from database: %d roles", cat.Len())
			return cat
		}
		c.Logger.Printf("[App] database catalog unusable, falling back: %v", err)
	}

	if path := c.Config.Catalog.RolesPath; path != "" {
		cat, err := catalog.LoadFile(path)
		if err == nil {
			c.Logger.Printf("[App] role catalog loaded from %s: %d roles", path, cat.Len())
			return cat
		}
		c.Logger.Printf("[App] role catalog file unusable, using built-in roles: %v", err)
	}

	return catalog.Fallback()
}

func (c *Container) buildGenerator() ai.Generator {
	aiCfg := c.Config.AI
	if !aiCfg.Enabled || aiCfg.APIKey == "" {
		return ai.Disabled{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	gem, err := ai.NewGemini(ctx, aiCfg.APIKey, aiCfg.Model, aiCfg.Timeout)
	if err != nil {
		c.Logger.Printf("[App] Gemini unavailable, analysis will be fully deterministic: %v", err)
		return ai.Disabled{}
	}

	c.gemini = gem
	return ai.NewCached(gem, c.Cache, aiCfg.CacheTTL)
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.gemini != nil {
		_ = c.gemini.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
