package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/sahigaadi/internal/auth"
	"github.com/ukydev/sahigaadi/internal/catalog"
	"github.com/ukydev/sahigaadi/internal/config"
	"github.com/ukydev/sahigaadi/internal/db"
	"github.com/ukydev/sahigaadi/internal/handlers"
	"github.com/ukydev/sahigaadi/internal/notify"
	"github.com/ukydev/sahigaadi/internal/recommend"
	"github.com/ukydev/sahigaadi/internal/session"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}
	logger := log.StandardLogger()
	cfg.ConfigureLogger(logger, os.Stdout)

	deps, cleanup, err := buildDependencies(cfg, logger)
	if err != nil {
		log.WithError(err).Fatal("Failed to start")
	}
	defer cleanup()

	srv := newServer(cfg, handlers.NewRouter(deps))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.WithField("port", cfg.Port).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("HTTP server failed")
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
}

func newServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// buildDependencies picks MongoDB or in-memory storage and MQTT or no-op
// notifications depending on what is configured. The returned cleanup
// releases every connection that was opened.
func buildDependencies(cfg *config.Config, logger *log.Logger) (handlers.Dependencies, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	cat, err := loadCatalog(cfg.CatalogFile)
	if err != nil {
		return handlers.Dependencies{}, cleanup, err
	}
	log.WithField("vehicles", cat.Len()).Info("Catalog loaded")

	if cfg.SessionSecret == "" {
		log.Warn("SESSION_SECRET not set, using the development key")
	}
	authService, err := auth.NewService(cfg.SessionSecret, cfg.SessionTTL)
	if err != nil {
		return handlers.Dependencies{}, cleanup, err
	}

	deps := handlers.Dependencies{
		Engine:            recommend.NewEngine(cat, logger),
		AuthService:       authService,
		AdminUser:         cfg.AdminUser,
		AdminPasswordHash: cfg.AdminPasswordHash,
		RateLimitRPS:      cfg.RateLimitRPS,
		RateLimitBurst:    cfg.RateLimitBurst,
		SecureCookies:     cfg.SecureCookies,
		TrustedProxies:    cfg.TrustedProxies,
		Logger:            logger,
	}
	if cfg.AdminPasswordHash == "" {
		log.Warn("ADMIN_PASSWORD_HASH not set, consultation dashboard disabled")
	}

	if cfg.MongoURI != "" {
		client, err := db.ConnectMongo(cfg.MongoURI)
		if err != nil {
			return handlers.Dependencies{}, cleanup, err
		}
		closers = append(closers, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(ctx); err != nil {
				log.WithError(err).Warn("MongoDB disconnect failed")
			}
		})

		database := client.Database(cfg.MongoDatabase)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = db.EnsureIndexes(ctx, database, cfg.SessionTTL)
		cancel()
		if err != nil {
			return handlers.Dependencies{}, cleanup, err
		}

		deps.Profiles = &db.MongoProfileCollection{
			Collection: database.Collection(db.ProfilesCollection),
			TTL:        cfg.SessionTTL,
		}
		deps.Consultations = &db.MongoConsultationCollection{
			Collection: database.Collection(db.ConsultationsCollection),
		}
		log.WithField("database", cfg.MongoDatabase).Info("Connected to MongoDB")
	} else {
		deps.Profiles = session.NewMemoryStore(cfg.SessionTTL)
		deps.Consultations = db.NewMemoryConsultationCollection()
		log.Warn("MONGO_URI not set, profiles and bookings are kept in memory")
	}

	deps.Publisher = notify.NopPublisher{}
	if cfg.MQTTBroker != "" {
		publisher, err := notify.NewMQTTPublisher(cfg.MQTTBroker, cfg.MQTTClientID, cfg.MQTTTopicPrefix)
		if err != nil {
			log.WithError(err).Warn("MQTT broker unreachable, booking notifications disabled")
		} else {
			deps.Publisher = publisher
			closers = append(closers, publisher.Close)
			log.WithField("topic", publisher.Topic()).Info("Publishing bookings to MQTT")
		}
	}

	return deps, cleanup, nil
}

func loadCatalog(path string) (*catalog.Static, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}
