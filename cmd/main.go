package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/ekuzmina/fridge-recipes/internal/facades"
	"github.com/ekuzmina/fridge-recipes/internal/handlers"
	"github.com/ekuzmina/fridge-recipes/internal/jwt"
	"github.com/ekuzmina/fridge-recipes/internal/logger"
	"github.com/ekuzmina/fridge-recipes/internal/middlewares"
	"github.com/ekuzmina/fridge-recipes/internal/migrate"
	"github.com/ekuzmina/fridge-recipes/internal/repositories"
	"github.com/ekuzmina/fridge-recipes/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title fridge-recipes API
// @version 1.0.0
// @description Backend for searching recipes by fridge ingredients and keeping per-user saved-recipe collections
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBroker, kafkaTopic,
		spoonacularBaseURL, spoonacularAPIKey, spoonacularTimeout,
		searchLimit, searchCacheExp,
		jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBroker, kafkaTopic,
		spoonacularBaseURL, spoonacularAPIKey, spoonacularTimeout,
		searchLimit, searchCacheExp,
		jwtSecret, jwtExp,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, upstream-API, logging, and JWT
// configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBroker, kafkaTopic string,
	spoonacularBaseURL, spoonacularAPIKey string, spoonacularTimeoutSecond int,
	searchResultLimit, searchCacheExpSecond int,
	jwtSecretKey string, jwtExpSecond int,
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

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "fridge_recipes")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	// Kafka config; an empty broker disables event publishing
	kafkaBroker = getEnv("KAFKA_BROKER", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "saved-recipe-events")

	// Upstream recipe API config
	spoonacularBaseURL = getEnv("SPOONACULAR_BASE_URL", "https://api.spoonacular.com")
	spoonacularAPIKey = getEnv("SPOONACULAR_API_KEY", "")
	if spoonacularTimeoutSecond, err = strconv.Atoi(getEnv("SPOONACULAR_TIMEOUT_SECOND", "10")); err != nil {
		return
	}
	if searchResultLimit, err = strconv.Atoi(getEnv("SEARCH_RESULT_LIMIT", "3")); err != nil {
		return
	}
	if searchCacheExpSecond, err = strconv.Atoi(getEnv("SEARCH_CACHE_EXP_SECOND", "300")); err != nil {
		return
	}

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It applies migrations, sets up routes and middleware, and handles
// graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBroker, kafkaTopic string,
	spoonacularBaseURL, spoonacularAPIKey string, spoonacularTimeoutSecond int,
	searchResultLimit, searchCacheExpSecond int,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL and apply migrations
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	if err := migrate.Up(ctx, dsn); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer is optional; without a broker events are skipped
	var kafkaWriter services.KafkaWriter
	if kafkaBroker != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBroker),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	} else {
		logger.Log.Warn("KAFKA_BROKER not set, event publishing disabled")
	}

	// Initialize JWT service
	tokener := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize facades and repositories
	spoonacular := facades.NewSpoonacularFacade(
		spoonacularBaseURL, spoonacularAPIKey,
		time.Duration(spoonacularTimeoutSecond)*time.Second,
	)

	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	recipeReadRepo := repositories.NewRecipeReadRepository(db)
	recipeWriteRepo := repositories.NewRecipeWriteRepository(db, middlewares.GetTxFromContext)
	savedReadRepo := repositories.NewSavedRecipeReadRepository(db)
	savedWriteRepo := repositories.NewSavedRecipeWriteRepository(db)
	searchCacheRepo := repositories.NewSearchCacheRepository(rdb, time.Duration(searchCacheExpSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokener)
	searchService := services.NewSearchService(spoonacular, searchCacheRepo, searchResultLimit)
	recipeService := services.NewRecipeService(recipeReadRepo, recipeWriteRepo, spoonacular)
	savedService := services.NewSavedRecipeService(savedReadRepo, savedWriteRepo, recipeReadRepo, kafkaWriter)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	logoutHandler := handlers.NewLogoutHandler()
	searchHandler := handlers.NewSearchHandler(searchService)
	persistRecipeHandler := handlers.NewPersistRecipeHandler(recipeService)
	getRecipeHandler := handlers.NewGetRecipeHandler(recipeService)
	saveRecipeHandler := handlers.NewSaveRecipeHandler(savedService, tokener)
	favoriteRecipeHandler := handlers.NewFavoriteRecipeHandler(savedService, tokener)
	listSavedHandler := handlers.NewListSavedRecipesHandler(savedService, tokener)
	listFavoritesHandler := handlers.NewListFavoriteRecipesHandler(savedService, tokener)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/register", registerHandler)
		r.Post("/login", loginHandler)

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokener))

			r.Get("/logout", logoutHandler)
			r.Post("/search", searchHandler)

			r.With(middlewares.TxMiddleware(db)).Post("/recipes", persistRecipeHandler)
			r.Get("/recipes/{recipeID}", getRecipeHandler)
			r.Post("/recipes/{recipeID}/save", saveRecipeHandler)
			r.Post("/recipes/{recipeID}/favorite", favoriteRecipeHandler)

			r.Get("/saved-recipes", listSavedHandler)
			r.Get("/saved-recipes/favorites", listFavoritesHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
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

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
