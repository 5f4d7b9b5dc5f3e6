package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/yoockh/jardam/config"
	"github.com/yoockh/jardam/internal/api/handlers"
	"github.com/yoockh/jardam/internal/api/routes"
	"github.com/yoockh/jardam/internal/cache"
	"github.com/yoockh/jardam/internal/logger"
	"github.com/yoockh/jardam/internal/repositories/gormrepo"
	mongorepo "github.com/yoockh/jardam/internal/repositories/mongo"
	"github.com/yoockh/jardam/internal/services"
	"github.com/yoockh/jardam/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = config.DefaultFile
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}

	log := logger.New(cfg.Logger.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := config.OpenDatabase(cfg.DB)
	if err != nil {
		log.WithError(err).WithField(logger.ErrorTypeField, logger.ErrorTypeDB).Fatal("database init failed")
	}
	defer func() { _ = config.CloseDatabase(db) }()
	if err := gormrepo.Migrate(db); err != nil {
		log.WithError(err).WithField(logger.ErrorTypeField, logger.ErrorTypeDB).Fatal("migration failed")
	}
	log.WithField("driver", cfg.DB.Driver).Info("database ready")

	var sessionCache cache.Cache
	rdb, err := config.NewRedis(ctx, cfg.Redis)
	switch {
	case err != nil:
		log.WithError(err).Warn("redis unavailable, using in-memory session cache")
		sessionCache = cache.NewMemoryCache(cfg.Sessions.CacheTTL, 2*cfg.Sessions.CacheTTL)
	case rdb != nil:
		defer func() { _ = rdb.Close() }()
		sessionCache = cache.NewRedisCache(rdb, "jardam:")
		log.Info("redis connected")
	default:
		sessionCache = cache.NewMemoryCache(cfg.Sessions.CacheTTL, 2*cfg.Sessions.CacheTTL)
	}

	var sessionRepo gormrepo.SessionRepository = gormrepo.NewSessionRepo(db)
	if cfg.Sessions.Store == config.SessionStoreMongo {
		client, err := config.NewMongo(ctx, cfg.Mongo)
		if err != nil {
			log.WithError(err).WithField(logger.ErrorTypeField, logger.ErrorTypeDB).Fatal("mongo init failed")
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		mdb := client.Database(cfg.Mongo.DB)
		if err := config.EnsureMongoIndexes(ctx, mdb); err != nil {
			log.WithError(err).WithField(logger.ErrorTypeField, logger.ErrorTypeDB).Fatal("mongo indexes failed")
		}
		sessionRepo = mongorepo.NewSessionRepo(mdb)
		log.Info("mongo session store connected")
	}

	var uploader storage.Uploader
	if cfg.Export.Bucket != "" {
		gcs, err := storage.NewGCSUploader(ctx, cfg.Export.Bucket)
		if err != nil {
			log.WithError(err).WithField(logger.ErrorTypeField, logger.ErrorTypeStorage).Warn("export archiving disabled")
		} else {
			defer func() { _ = gcs.Close() }()
			uploader = gcs
		}
	}

	sessionSvc := services.NewSessionService(sessionRepo, sessionCache, cfg.Sessions.CacheTTL, log)
	authSvc := services.NewAuthService(gormrepo.NewUserRepo(db), sessionSvc, log)
	appRepo := gormrepo.NewApplicationRepo(db)
	appSvc := services.NewApplicationService(appRepo, log)
	vacancySvc := services.NewVacancyService(gormrepo.NewVacancyRepo(db))
	profileSvc := services.NewProfileService(gormrepo.NewProfileRepo(db))
	exportSvc := services.NewExportService(appRepo, uploader, log)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Auth:        handlers.NewAuthHandler(authSvc),
		Application: handlers.NewApplicationHandler(appSvc),
		Vacancy:     handlers.NewVacancyHandler(vacancySvc),
		Profile:     handlers.NewProfileHandler(profileSvc),
		Admin:       handlers.NewAdminHandler(appSvc, exportSvc),
		Sessions:    sessionSvc,
		AdminKey:    cfg.Auth.AdminKey,
		CORSOrigins: cfg.Server.CORSOrigins,
		StaticDir:   cfg.Server.StaticDir,
		Log:         log,
	})
	if cfg.Auth.AdminKey == "" {
		log.Warn("ADMIN_KEY is not set, admin endpoints are disabled")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Server.Port).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).WithField(logger.ErrorTypeField, logger.ErrorTypeHTTP).Error("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}
