package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-user-directory/docs"
	"github.com/sbilibin2017/gw-user-directory/internal/client"
	"github.com/sbilibin2017/gw-user-directory/internal/handlers"
	"github.com/sbilibin2017/gw-user-directory/internal/logger"
	"github.com/sbilibin2017/gw-user-directory/internal/middlewares"
	"github.com/sbilibin2017/gw-user-directory/internal/repositories"
	"github.com/sbilibin2017/gw-user-directory/internal/screens"
	"github.com/sbilibin2017/gw-user-directory/internal/services"
	"github.com/sbilibin2017/gw-user-directory/internal/web"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-user-directory API
// @version 1.0.0
// @description User directory: list, create, update and delete users
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel, logFile, baseURL,
		storeURL, storeKey,
		storeMaxOpenConns, storeMaxIdleConns, storeMigrate,
		kafkaBrokers, kafkaTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel, logFile, baseURL,
		storeURL, storeKey,
		storeMaxOpenConns, storeMaxIdleConns, storeMigrate,
		kafkaBrokers, kafkaTopic,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", buildVersion, buildDate, buildCommit)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, logging, store and Kafka configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel, logFile, baseURL string,
	storeURL, storeKey string,
	storeMaxOpenConns, storeMaxIdleConns int,
	storeMigrate bool,
	kafkaBrokers []string, kafkaTopic string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")
	logFile = getEnv("APP_LOG_FILE", "")
	baseURL = getEnv("APP_BASE_URL", fmt.Sprintf("http://%s:%s", appHost, appPort))

	// Store config
	storeURL = getEnv("STORE_URL", "")
	storeKey = getEnv("STORE_KEY", "")
	if storeMaxOpenConns, err = strconv.Atoi(getEnv("STORE_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if storeMaxIdleConns, err = strconv.Atoi(getEnv("STORE_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}
	if storeMigrate, err = strconv.ParseBool(getEnv("STORE_MIGRATE", "false")); err != nil {
		return
	}

	// Kafka config
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			kafkaBrokers = append(kafkaBrokers, b)
		}
	}
	kafkaTopic = getEnv("KAFKA_TOPIC", "user-events")

	return
}

// newKafkaWriter returns a writer for the user events topic, or nil when no brokers are configured.
func newKafkaWriter(brokers []string, topic string) services.KafkaWriter {
	if len(brokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}

// buildDSN applies the store key as the password of the store URL.
func buildDSN(storeURL, storeKey string) (string, error) {
	if storeURL == "" {
		return "", nil
	}
	u, err := url.Parse(storeURL)
	if err != nil {
		return "", fmt.Errorf("invalid STORE_URL: %w", err)
	}
	if storeKey != "" {
		username := ""
		if u.User != nil {
			username = u.User.Username()
		}
		u.User = url.UserPassword(username, storeKey)
	}
	return u.String(), nil
}

func configured(v string) string {
	if v == "" {
		return "missing"
	}
	return "configured"
}

// run initializes the logger, the store pool and the HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel, logFile, baseURL string,
	storeURL, storeKey string,
	storeMaxOpenConns, storeMaxIdleConns int,
	storeMigrate bool,
	kafkaBrokers []string, kafkaTopic string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel, logFile); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	logger.Log.Infow("environment check",
		"store_url", configured(storeURL),
		"store_key", configured(storeKey),
	)
	if storeURL == "" || storeKey == "" {
		logger.Log.Warn("STORE_URL or STORE_KEY is not set, store requests will fail")
	}

	dsn, err := buildDSN(storeURL, storeKey)
	if err != nil {
		return err
	}

	// Open the pool lazily; connection errors surface per request.
	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(storeMaxOpenConns)
	db.SetMaxIdleConns(storeMaxIdleConns)

	if storeMigrate {
		if err := repositories.Migrate(dsn); err != nil {
			return err
		}
	}

	kafkaWriter := newKafkaWriter(kafkaBrokers, kafkaTopic)
	if kafkaWriter != nil {
		logger.Log.Infow("publishing user events", "brokers", kafkaBrokers, "topic", kafkaTopic)
		defer func() {
			if err := kafkaWriter.Close(); err != nil {
				logger.Log.Errorw("failed to close Kafka writer", "error", err)
			}
		}()
	}

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", appHost, appPort)

	api := client.NewUsersClient(baseURL, nil)
	r := newRouter(db, kafkaWriter, api, screens.NewClockScheduler(), baseURL+"/swagger/doc.json")

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", appHost, appPort),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires the users resource, the pages and the operational endpoints.
func newRouter(db *sqlx.DB, kafkaWriter services.KafkaWriter, api screens.UsersAPI, scheduler screens.Scheduler, swaggerURL string) http.Handler {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)

	// Initialize services
	userService := services.NewUserService(userRepo, userRepo, kafkaWriter)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.MetricsMiddleware)

	r.Get("/healthz", handlers.NewHealthHandler())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/users", func(r chi.Router) {
		r.Get("/", handlers.NewListUsersHandler(userService))
		r.Post("/", handlers.NewCreateUserHandler(userService))
		r.Put("/", handlers.NewUpdateUserHandler(userService))
		r.Delete("/", handlers.NewDeleteUserHandler(userService))
		r.MethodNotAllowed(handlers.NewMethodNotAllowedHandler(
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete,
		))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	web.NewServer(api, scheduler).Routes(r)

	return r
}
