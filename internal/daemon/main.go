// Package daemon wires configuration, database, sessions and the web
// service together.
package daemon

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/storage"
	sessionmysql "github.com/gofiber/storage/mysql/v2"
	sessionpostgres "github.com/gofiber/storage/postgres/v3"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/beacon-foundation/beacon/internal/config"
	"github.com/beacon-foundation/beacon/internal/db/dsn"
	"github.com/beacon-foundation/beacon/internal/db/models"
	"github.com/beacon-foundation/beacon/internal/web"
	"github.com/beacon-foundation/beacon/internal/web/session"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg *config.Config

	// webService is held by pointer: the checkalive handler closes over the
	// instance web.New returns, and the drain flag must flip on that same
	// instance during shutdown.
	webService *web.Service
}

// Start starts the Daemon's web service on the configured port.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	db, err := gorm.Open(openDialector(cfg), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	if err = db.AutoMigrate(
		&models.User{},
		&models.Setting{},
		&models.Event{},
		&models.Program{},
		&models.NewsPost{},
		&models.Video{},
		&models.TeamMember{},
		&models.Course{},
		&models.HistoryItem{},
		&models.Subscriber{},
		&models.Volunteer{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	seed(cfg, db)

	session.Init(sessionStorage(cfg))

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg, db),
	}
}

// openDialector picks the gorm driver for the configured engine.
func openDialector(cfg *config.Config) gorm.Dialector {
	switch cfg.DB.Engine {
	case dsn.EnginePostgres:
		return gormpostgres.Open(dsn.Create(cfg))
	case dsn.EngineSQLite:
		return sqlite.Open(dsn.Create(cfg))
	default:
		return gormmysql.Open(dsn.Create(cfg))
	}
}

// sessionStorage builds the fiber session storage backend for the configured
// engine. The sqlite engine returns nil, session.Init then falls back to the
// in-memory store.
func sessionStorage(cfg *config.Config) storage.Storage {
	switch cfg.DB.Engine {
	case dsn.EnginePostgres:
		return sessionpostgres.New(sessionpostgres.Config{
			ConnectionURI: fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
				cfg.DB.User,
				cfg.DB.Password,
				cfg.DB.Host,
				cfg.DB.Port,
				cfg.DB.Name,
			),
			Table: "sessions",
		})
	case dsn.EngineSQLite:
		return nil
	default:
		return sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.Create(cfg),
			Table:         "sessions",
		})
	}
}
