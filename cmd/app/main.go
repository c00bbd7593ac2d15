package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orderpanel/cmd"
	httpin "orderpanel/internal/adapters/in/http"
	"orderpanel/internal/adapters/out/redis/sessionstore"
	"orderpanel/internal/adapters/out/sqlstore"
	"orderpanel/internal/core/application/auth"
	"orderpanel/internal/core/domain/model/catalog"
	"orderpanel/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	if err = config.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := config.NewLogger(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := sqlstore.Open(ctx, config.Database())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = sqlstore.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating schema: %v", err)
	}
	if config.SeedCatalog {
		n, seedErr := sqlstore.SeedCatalog(ctx, gormDB, catalog.DefaultItems(), true)
		if seedErr != nil {
			log.Fatalf("Error seeding catalog: %v", seedErr)
		}
		logger.InfoContext(ctx, "catalog seeded", "items", n)
	}

	rdb, err := sessionstore.NewClient(ctx, config.RedisAddr)
	if err != nil {
		log.Fatalf("Error connecting to redis: %v", err)
	}
	defer rdb.Close()

	authenticator, err := auth.NewAuthenticator(
		config.AdminPasswordHash,
		sessionstore.NewRedisSessionStore(rdb),
		config.SessionTTL,
	)
	if err != nil {
		log.Fatalf("Error configuring operator login: %v", err)
	}

	app := cmd.NewCompositionRoot(config, gormDB, logger)

	publisher, err := app.CreateEventPublisher()
	if err != nil {
		log.Fatalf("Error connecting to event broker: %v", err)
	}
	defer publisher.Close()

	live := httpin.NewLiveFeed(logger)
	defer live.Close()

	jobManager := jobs.NewJobManager(
		app.CreateRelayOutboxCommandHandler(publisher, live),
		jobs.RelayConfig{Schedule: config.OutboxRelaySchedule},
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	server := httpin.NewServer(httpin.Deps{
		CreateOrder: app.CreateCreateOrderCommandHandler(),
		TrackOrders: app.CreateTrackOrdersQueryHandler(),
		ListCatalog: app.CreateListCatalogItemsQueryHandler(),
		Panel:       app.CreatePanel(),
		Auth:        authenticator,
		Live:        live,
		Logger:      logger,
	})

	if err = startWebServer(ctx, server, config.HTTPPort); err != nil {
		logger.Error("web server stopped", "error", err)
	}
}

// startWebServer serves until ctx is cancelled, then drains in-flight
// requests.
func startWebServer(ctx context.Context, server *httpin.Server, port string) error {
	e := echo.New()
	e.HideBanner = true
	if err := server.Register(e); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
