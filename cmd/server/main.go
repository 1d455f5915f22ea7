package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"gameshelf/internal/config"
	"gameshelf/internal/handlers"
	"gameshelf/internal/metrics"
	"gameshelf/internal/models"
	"gameshelf/internal/repositories"
	"gameshelf/internal/routers"
	"gameshelf/internal/sessions"
	"gameshelf/internal/uploads"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	connectAttempts = 5
	janitorInterval = time.Hour
)

// gormOpen is a seam so tests can swap the database driver.
var gormOpen = func(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DatabaseURL != "" {
		return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
}

func connectWithRetry(cfg *config.Config, wait time.Duration, logger *zap.Logger) (*gorm.DB, error) {
	var db *gorm.DB
	var err error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		db, err = gormOpen(cfg)
		if err == nil {
			return db, nil
		}
		logger.Warn("database connection failed",
			zap.Int("attempt", attempt), zap.Error(err))
		time.Sleep(wait)
	}
	return nil, err
}

func newSessionStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) sessions.Store {
	if cfg.RedisAddr == "" {
		logger.Info("using in-memory session store")
		store := sessions.NewMemoryStore()
		store.StartJanitor(ctx, janitorInterval)
		return store
	}
	logger.Info("using redis session store", zap.String("addr", cfg.RedisAddr))
	return sessions.NewRedisStore(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
}

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg := config.LoadConfig()

	db, err := connectWithRetry(cfg, 2*time.Second, logger)
	if err != nil {
		logger.Fatal("could not connect to database", zap.Error(err))
	}
	if err := db.AutoMigrate(&models.User{}, &models.Game{}, &models.WishlistEntry{}); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("failed to access sql db", zap.Error(err))
	}
	defer sqlDB.Close()

	photos, err := uploads.New(cfg.UploadDir)
	if err != nil {
		logger.Fatal("failed to prepare upload dir", zap.Error(err))
	}

	store := newSessionStore(context.Background(), cfg, logger)

	userRepo := &repositories.UserRepository{DB: db}
	gameRepo := &repositories.GameRepository{DB: db}
	wishRepo := &repositories.WishlistRepository{DB: db}

	authHandler := handlers.NewAuthHandler(userRepo, store, logger, cfg.CookieSecure)
	profileHandler := &handlers.ProfileHandler{Users: userRepo, Photos: photos, Logger: logger}
	collectionHandler := &handlers.CollectionHandler{Games: gameRepo, Logger: logger}
	wishlistHandler := &handlers.WishlistHandler{Wishlist: wishRepo, Logger: logger}
	statsHandler := &handlers.StatsHandler{Users: userRepo, Games: gameRepo, Logger: logger}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID, chimiddleware.RealIP, chimiddleware.Recoverer, chimiddleware.Timeout(60*time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(metrics.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))

	routers.AuthRoutes(r, authHandler)
	routers.ProfileRoutes(r, store, profileHandler)
	routers.CollectionRoutes(r, store, collectionHandler)
	routers.WishlistRoutes(r, store, wishlistHandler)
	routers.StatsRoutes(r, store, statsHandler)

	addr := ":" + cfg.Port
	log.Printf("gameshelf listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, r))
}
