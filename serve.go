package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"chefreel/autocom"
	"chefreel/booking"
	"chefreel/catalog"
	"chefreel/chefs"
	"chefreel/config"
	"chefreel/db"
	"chefreel/feed"
	"chefreel/middleware"
	"chefreel/profile"
	"chefreel/ratelim"
	"chefreel/rdx"
	"chefreel/reviews"
	"chefreel/routes"
	"chefreel/search"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP and websocket server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

// stores are the mutable per-user stores, in memory or in Redis.
type stores struct {
	sessions      booking.Store
	suggestions   autocom.Index
	follows       chefs.FollowStore
	notifications profile.NotificationStore
}

func openStores(ctx context.Context, c *config.Config) (stores, func(), error) {
	if c.Redis.Addr == "" {
		return stores{
			sessions:      booking.NewMemoryStore(c.Booking.SessionTTL),
			suggestions:   autocom.NewMemory(),
			follows:       chefs.NewMemoryFollows(),
			notifications: profile.NewMemoryNotifications(),
		}, func() {}, nil
	}
	conn, err := rdx.Connect(ctx, c.Redis.Addr, c.Redis.Password, c.Redis.DB)
	if err != nil {
		return stores{}, nil, err
	}
	return redisStores(conn, c), func() { _ = conn.Close() }, nil
}

func redisStores(conn *redis.Client, c *config.Config) stores {
	return stores{
		sessions:      booking.NewRedisStore(conn, c.Booking.SessionTTL),
		suggestions:   autocom.NewRedis(conn, ""),
		follows:       chefs.NewRedisFollows(conn),
		notifications: profile.NewRedisNotifications(conn),
	}
}

func openCatalog(ctx context.Context, c *config.Config) (catalog.Store, func(), error) {
	if c.Storage.Driver != config.DriverMongo {
		return catalog.NewMemory(catalog.Seed()).Store(), func() {}, nil
	}
	client, err := db.Connect(ctx, c.Storage.MongoURI)
	if err != nil {
		return catalog.Store{}, nil, err
	}
	return catalog.NewMongo(client.Database(c.Storage.MongoDB)).Store(), func() {
		_ = client.Disconnect(context.Background())
	}, nil
}

func runServe(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeCatalog, err := openCatalog(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeCatalog()

	st, closeStores, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStores()

	all, err := store.Chefs.List(ctx)
	if err != nil {
		return fmt.Errorf("list chefs: %w", err)
	}
	if err := search.Reindex(ctx, st.suggestions, all); err != nil {
		return err
	}

	policy := booking.PolicyLax
	if cfg.Booking.StrictValidation {
		policy = booking.PolicyStrict
	}

	hs := routes.Handlers{
		Feed:    feed.NewHandler(store.Videos, logger).WithTransitionLock(cfg.Feed.TransitionLock),
		Search:  search.NewHandler(store.Chefs, st.suggestions, logger),
		Booking: booking.NewHandler(store.Chefs, store.Bookings, st.sessions, policy, logger),
		Chefs:   chefs.NewHandler(store.Chefs, st.follows, logger),
		Reviews: reviews.NewHandler(store.Chefs, logger),
		Profile: profile.NewHandler(store.Users, st.notifications, logger),
	}
	router := routes.New(hs, routes.Guards{
		Auth:    middleware.NewAuth(cfg.Auth.JWTSecret, cfg.Auth.DemoUserID),
		Limiter: ratelim.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateBurst),
	})

	// CORS -> security headers -> logging -> router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)
	handler := middleware.Logging(logger)(middleware.SecurityHeaders(corsHandler))

	// No WriteTimeout: it would cut long-lived feed websockets.
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			zap.String("addr", server.Addr),
			zap.String("storage", cfg.Storage.Driver),
			zap.Bool("redis", cfg.Redis.Addr != ""),
			zap.Stringer("policy", policy))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received; shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("server stopped cleanly")
	return nil
}
