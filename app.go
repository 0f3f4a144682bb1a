package main

import (
	"os"
	"sync"

	"HealthHubIPD/cache"
	"HealthHubIPD/config"
	"HealthHubIPD/controllers"
	"HealthHubIPD/services"
	"HealthHubIPD/store"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// application wires services on first use, after the Core server has opened
// the Mongo connection.
type application struct {
	cfg          *config.Config
	cacheEnabled bool

	once       sync.Once
	admissions *services.AdmissionService
	rosters    *services.RosterService
}

func newApplication(cfg *config.Config, cacheEnabled bool) *application {
	return &application{cfg: cfg, cacheEnabled: cacheEnabled}
}

func (a *application) init() {
	a.once.Do(func() {
		st := store.NewMongoStore(store.Collections{
			Patients:   db.OpenCollections(a.cfg.PatientCollection),
			Wards:      db.OpenCollections(a.cfg.WardCollection),
			Doctors:    db.OpenCollections(a.cfg.DoctorCollection),
			Admissions: db.OpenCollections(a.cfg.AdmissionCollection),
			Roster:     db.OpenCollections(a.cfg.RosterCollection),
		}, a.cfg.StoreTimeout)

		var c cache.Cache = cache.Noop{}
		if a.cacheEnabled {
			c = cache.NewRedis(a.cfg.AdmissionCachePrefix)
		}
		a.admissions = services.NewAdmissionService(st, c)
		a.rosters = services.NewRosterService(st, nil)
	})
}

func (a *application) Rosters() *services.RosterService {
	a.init()
	return a.rosters
}

func (a *application) Controller() *controllers.AdmissionController {
	a.init()
	return controllers.NewAdmissionController(a.admissions, a.rosters)
}

func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsDevelopment() {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
		return
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
