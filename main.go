package main

import (
	"context"
	"time"

	"HealthHubIPD/config"
	"HealthHubIPD/jobs"
	"HealthHubIPD/migrations"
	"HealthHubIPD/routes"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	server "github.com/KanapuramVaishnavi/Core/server"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const migrationTimeout = 30 * time.Second

var (
	startServer = server.Start
	loadConfig  = config.Load
	isTest      = false
)

func main() {
	run()
}

func run() {
	err := godotenv.Load()
	if err != nil {
		log.Warn().Msg("Error in loading the ENV")
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Error in loading the configuration")
	}
	setupLogger(cfg)

	defaultopts := server.GetDefaultOptions()
	app := newApplication(cfg, defaultopts.CacheEnabled)

	options := server.Options{
		CacheEnabled:     defaultopts.CacheEnabled,
		MongoEnabled:     defaultopts.MongoEnabled,
		WebServerEnabled: defaultopts.WebServerEnabled,
		WebServerPort:    defaultopts.WebServerPort,

		MigrationEnabled: !isTest,
		MigrationHandler: func() {
			if isTest {
				return
			}
			ctx, cancel := context.WithTimeout(context.Background(), migrationTimeout)
			defer cancel()
			if err := migrations.EnsureAdmissionIndexes(ctx, db.DB, cfg.AdmissionCollection); err != nil {
				log.Fatal().Err(err).Msg("Migration failed")
			}
			if err := migrations.EnsurePatientLookupIndex(ctx, db.DB, cfg.PatientCollection); err != nil {
				log.Fatal().Err(err).Msg("Migration failed")
			}
		},

		JobsEnabled: !isTest,
		JobsHandler: func() {
			if isTest {
				return
			}
			if _, err := jobs.StartDailyScheduler(app.Rosters(), cfg.RosterCron); err != nil {
				log.Error().Err(err).Msg("Error from startDailyScheduler")
			}
		},

		WebServerPreHandler: func(r *gin.Engine) {
			if isTest {
				return
			}
			r.Use(cors.New(cors.Config{
				AllowOrigins:     cfg.CORSOrigins,
				AllowMethods:     []string{"GET", "POST", "OPTIONS"},
				AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
				AllowCredentials: true,
			}))
			routes.Routes(r, app.Controller())
		},
	}
	startServer(options)
}
