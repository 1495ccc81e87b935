package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/thereayou/socialgraph/internal/cache"
	"github.com/thereayou/socialgraph/internal/config"
	"github.com/thereayou/socialgraph/internal/database"
	"github.com/thereayou/socialgraph/internal/logging"
	"github.com/thereayou/socialgraph/internal/services"
	"github.com/thereayou/socialgraph/pkg/auth"
)

type Server struct {
	Router     *gin.Engine
	DB         *database.Database
	Redis      *redis.Client
	JWTManager *auth.JWTManager
	Service    *services.IdentityService

	cfg *config.Config
	log logging.Logger
}

func NewServer(ctx context.Context, cfg *config.Config, log logging.Logger) (*Server, error) {
	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	db := &database.Database{}
	if err := db.Connect(cfg.DatabaseURL, cfg.IsProd()); err != nil {
		return nil, fmt.Errorf("database connect failed: %w", err)
	}

	var credCache cache.CredentialCache = cache.NopCredentialCache{}
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		rdb = redis.NewClient(redisOpts)
		if err := rdb.Ping(ctx).Err(); err != nil {
			// the cache is optional, the service works without it
			log.Warn(ctx, "redis unreachable, credential cache disabled", "error", err)
			_ = rdb.Close()
			rdb = nil
		} else {
			credCache = cache.NewRedisCredentialCache(rdb, cfg.CredentialCacheTTL)
		}
	}

	hasher, err := services.NewBcryptHasher(cfg.BcryptCost, cfg.PasswordPepper)
	if err != nil {
		return nil, fmt.Errorf("password hasher: %w", err)
	}

	jwtMgr := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	authz := services.NewAuthorizer(db, credCache, log)
	svc := services.NewIdentityService(db, hasher, jwtMgr, authz, log)

	return &Server{
		Router:     NewRouter(svc, db, log),
		DB:         db,
		Redis:      rdb,
		JWTManager: jwtMgr,
		Service:    svc,
		cfg:        cfg,
		log:        log,
	}, nil
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info(ctx, "server starting", "port", s.cfg.Port, "env", s.cfg.Env)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.log.Info(shutdownCtx, "server shutting down")
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) Close() {
	if s.Redis != nil {
		_ = s.Redis.Close()
	}
	if err := s.DB.Close(); err != nil {
		s.log.Error(context.Background(), "database close failed", "error", err)
	}
}
