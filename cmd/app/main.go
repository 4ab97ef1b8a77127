package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skyway-app/skyway/api"
	"github.com/skyway-app/skyway/config"
	"github.com/skyway-app/skyway/internal/bootstrap"
	"github.com/skyway-app/skyway/internal/cache"
	"github.com/skyway-app/skyway/internal/kafka"
	"github.com/skyway-app/skyway/internal/logging"
	"github.com/skyway-app/skyway/internal/repository"
	"github.com/skyway-app/skyway/internal/service/auth"
	"github.com/skyway-app/skyway/internal/service/catalog"
	"github.com/skyway-app/skyway/internal/service/tickets"
)

func main() {
	logger, err := logging.New(os.Getenv("APP_ENV") == "production")
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatalw("load config", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logger.Fatalw("connect postgres", "err", err)
	}
	defer pool.Close()

	if err := repository.CreateSchema(ctx, pool); err != nil {
		logger.Fatalw("create schema", "err", err)
	}

	sessions := cache.NewRedisSessionStore(cfg.Redis, time.Duration(cfg.Auth.SessionTTLMinutes)*time.Minute)
	defer sessions.Close()

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	repos := api.Repositories{
		Countries:      repository.NewCountryRepository(pool),
		Roles:          repository.NewUserRoleRepository(pool),
		Users:          repository.NewUserRepository(pool),
		Administrators: repository.NewAdministratorRepository(pool),
		Airlines:       repository.NewAirlineCompanyRepository(pool),
		Customers:      repository.NewCustomerRepository(pool),
		Flights:        repository.NewFlightRepository(pool),
		Tickets:        repository.NewTicketRepository(pool),
	}

	catalogService := catalog.NewCatalogService(repos.Flights, repos.Airlines,
		time.Duration(cfg.Flights.NearNowWindowHours)*time.Hour)
	ticketService := tickets.NewTicketService(repos.Tickets, repos.Customers, repos.Users,
		producer, cfg.Kafka.TicketTopic, logger,
		tickets.WithNotificationsTopic(cfg.Kafka.NotificationsTopic))
	authService := auth.NewAuthService(repos.Users, sessions)

	router := bootstrap.NewRouter(bootstrap.Handlers{
		Tables:    api.NewTablesHandler(api.NewTableRegistry(repos)),
		Catalog:   api.NewCatalogHandler(catalogService),
		Auth:      api.NewAuthHandler(authService),
		Customers: api.NewCustomerHandler(authService, ticketService),
	})

	logger.Infow("starting http server", "address", cfg.HTTP.Address)
	if err := bootstrap.Run(ctx, cfg, router); err != nil {
		logger.Fatalw("server error", "err", err)
	}
}
