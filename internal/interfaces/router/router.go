package router

import (
	"fmt"
	"time"

	alertsvc "sitetrack-backend/internal/application/alerts"
	analyticsvc "sitetrack-backend/internal/application/analytics"
	clientsvc "sitetrack-backend/internal/application/clients"
	projsvc "sitetrack-backend/internal/application/projects"
	"sitetrack-backend/internal/application/records"
	"sitetrack-backend/internal/config"
	"sitetrack-backend/internal/domain"
	"sitetrack-backend/internal/infrastructure/database"
	"sitetrack-backend/internal/infrastructure/dataset"
	"sitetrack-backend/internal/infrastructure/kvstore"
	alerthandler "sitetrack-backend/internal/interfaces/handlers/alerts"
	analytichandler "sitetrack-backend/internal/interfaces/handlers/analytics"
	clienthandler "sitetrack-backend/internal/interfaces/handlers/clients"
	exporthandler "sitetrack-backend/internal/interfaces/handlers/exports"
	healthhandler "sitetrack-backend/internal/interfaces/handlers/health"
	projhandler "sitetrack-backend/internal/interfaces/handlers/projects"
	"sitetrack-backend/internal/middleware"
	"sitetrack-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Deps are the wired collaborators behind the HTTP surface. Rdb may be nil.
type Deps struct {
	Store    kvstore.Store
	Rdb      *redis.Client
	Projects []domain.Project
	Now      func() time.Time
}

// CreateApp opens the configured store, loads the project export and builds the app.
func CreateApp(cfg *config.Config) (*fiber.App, Deps, error) {
	var deps Deps
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, deps, fmt.Errorf("parse REDIS_URL: %w", err)
		}
		deps.Rdb = redis.NewClient(opt)
	}

	store, err := openStore(cfg, deps.Rdb)
	if err != nil {
		return nil, deps, err
	}
	deps.Store = store

	raw, err := dataset.LoadFile(cfg.ProjectsDataPath)
	if err != nil {
		return nil, deps, fmt.Errorf("load projects %s: %w", cfg.ProjectsDataPath, err)
	}
	deps.Projects = records.MapAll(raw)
	log.Info().Str("path", cfg.ProjectsDataPath).Int("records", len(raw)).Int("projects", len(deps.Projects)).Msg("projects loaded")

	return New(cfg, deps), deps, nil
}

func openStore(cfg *config.Config, rdb *redis.Client) (kvstore.Store, error) {
	switch cfg.StoreDriver {
	case config.StoreRedis:
		if rdb == nil {
			return nil, fmt.Errorf("STORE_DRIVER=redis requires REDIS_URL")
		}
		return &kvstore.RedisStore{Rdb: rdb}, nil
	case config.StoreSQLite, config.StorePostgres, "":
		db, err := database.Open(cfg.StoreDriver, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		return &kvstore.SQLStore{DB: db}, nil
	}
	return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
}

// New registers middleware and routes over already built dependencies.
func New(cfg *config.Config, deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler(deps.Rdb),
		EnableTrustedProxyCheck: true,
	})

	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
		DevPassword:   cfg.DevPassword,
	}))
	app.Use(middleware.HealthMarker(deps.Rdb))
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	ps := &projsvc.Service{Store: deps.Store, Source: deps.Projects}
	cs := &clientsvc.Service{Store: deps.Store, Now: deps.Now}
	as := &alertsvc.Service{Projects: ps, Now: deps.Now}
	ans := &analyticsvc.Service{Projects: ps, Now: deps.Now, MonthlyWindow: cfg.MonthlyWindow, TopN: cfg.TopN}

	hh := &healthhandler.Handlers{Rdb: deps.Rdb, Store: deps.Store, HealthAdminKey: cfg.HealthAdminKey}
	app.Get("/health/json", hh.JSON)
	app.Get("/health/reset", hh.Reset)
	app.Get("/health/errors", hh.Errors)

	api := app.Group("/api/v1")

	ph := &projhandler.Handlers{Service: ps, Alerts: as}
	pg := api.Group("/projects")
	pg.Get("/", ph.List)
	pg.Get("/summary", ph.Summary)
	pg.Get("/excluded", ph.Excluded)
	pg.Get("/:jan", ph.Get)
	pg.Get("/:jan/alerts", ph.ListAlerts)
	pg.Delete("/:jan", ph.Delete)
	pg.Post("/:jan/restore", ph.Restore)

	ch := &clienthandler.Handlers{Service: cs, Projects: ps}
	cg := api.Group("/clients")
	cg.Get("/", ch.List)
	cg.Get("/merged", ch.Merged)
	cg.Post("/", ch.Create)
	cg.Get("/:id", ch.Get)
	cg.Patch("/:id", ch.Update)
	cg.Delete("/:id", ch.Delete)

	anh := &analytichandler.Handlers{Service: ans}
	ag := api.Group("/analytics")
	ag.Get("/dashboard", anh.Dashboard)
	ag.Get("/status", anh.Status)
	ag.Get("/on-time", anh.OnTime)
	ag.Get("/monthly", anh.Monthly)
	ag.Get("/top", anh.Top)
	ag.Get("/value-increases", anh.ValueIncreases)

	alh := &alerthandler.Handlers{Service: as}
	api.Get("/alerts", alh.List)
	api.Get("/alerts/summary", alh.Summary)

	eh := &exporthandler.Handlers{Projects: ps, Alerts: as, Now: deps.Now}
	api.Get("/exports/projects.csv", eh.ProjectsCSV)
	api.Get("/exports/alerts.csv", eh.AlertsCSV)

	app.Use(func(c *fiber.Ctx) error {
		return response.NotFound(c, "Route not found: "+c.Method()+" "+c.Path())
	})
	return app
}
