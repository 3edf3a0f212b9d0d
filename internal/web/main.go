// Package web implements the beacon web service.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/beacon-foundation/beacon/internal/config"
	"github.com/beacon-foundation/beacon/internal/db/models"
	"github.com/beacon-foundation/beacon/internal/listview"
	loggerfiber "github.com/beacon-foundation/beacon/internal/logger/adapter/fiber"
	adminsettings "github.com/beacon-foundation/beacon/internal/web/handler/admin/settings"
	apievents "github.com/beacon-foundation/beacon/internal/web/handler/api/events"
	apinewsletter "github.com/beacon-foundation/beacon/internal/web/handler/api/newsletter"
	"github.com/beacon-foundation/beacon/internal/web/handler/api/resource"
	apisettings "github.com/beacon-foundation/beacon/internal/web/handler/api/settings"
	apivolunteers "github.com/beacon-foundation/beacon/internal/web/handler/api/volunteers"
	"github.com/beacon-foundation/beacon/internal/web/handler/dashboard"
	"github.com/beacon-foundation/beacon/internal/web/handler/login"
	"github.com/beacon-foundation/beacon/internal/web/handler/logout"
)

// checkAlivePath is the liveness endpoint polled by load balancers.
const checkAlivePath = "/checkalive"

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
}

// SetAlive toggles the liveness flag served by the checkalive endpoint.
func (s *Service) SetAlive(alive bool) {
	s.alive.Store(alive)
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	// Wait interrupt or shutdown request
	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.SetAlive(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	httpFS := http.FS(templateEmbedFS{embeddedTemplates})
	templateEngine := html.NewFileSystem(httpFS, ".gohtml")

	// in dev mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	}

	// Add template helper functions
	templateEngine.AddFunc("add", func(a, b int) int {
		return a + b
	})
	templateEngine.AddFunc("sub", func(a, b int) int {
		return a - b
	})
	templateEngine.AddFunc("isEllipsis", func(p int) bool {
		return p == listview.Ellipsis
	})

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          templateEngine,
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	// access logging
	app.Use(loggerfiber.New(loggerfiber.Config{
		Config:        cfg.Log,
		CheckAliveURI: checkAlivePath,
	}))

	// serve embedded static files
	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
			},
		),
	)

	// admin auth middleware
	app.Use(AuthMiddleware)

	// init web service
	service := &Service{
		cfg: cfg,
		App: app,
		db:  db,
	}
	service.alive.Store(true)

	// liveness and metrics
	app.Get(checkAlivePath, func(c *fiber.Ctx) error {
		if !service.alive.Load() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendString("ok")
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// init handlers (they register their own routes)
	initHandlers(app, cfg, db)

	// redirect root to dashboard
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard")
	})

	return service
}

// initHandlers registers every page and API handler. The plain content
// entities share one generic resource handler, entities with extra
// operations have their own packages.
func initHandlers(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	pageHandlers := []interface {
		Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error
	}{
		&login.Handler,
		&logout.Handler,
		&dashboard.Handler,
		&adminsettings.Handler,
		&apisettings.Handler,
		&apievents.Handler,
		&apinewsletter.Handler,
		&apivolunteers.Handler,
		resource.New[models.Program]("programs"),
		resource.New[models.NewsPost]("news"),
		resource.New[models.Video]("videos"),
		resource.New[models.TeamMember]("team"),
		resource.New[models.Course]("courses"),
		resource.New[models.HistoryItem]("history"),
	}

	for _, h := range pageHandlers {
		if err := h.Init(app, cfg, db); err != nil {
			log.Fatal().Err(err).Msg("failed to init handler")
		}
	}
}
