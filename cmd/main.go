package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-movie-favorites/docs"
	"github.com/sbilibin2017/gw-movie-favorites/internal/config"
	"github.com/sbilibin2017/gw-movie-favorites/internal/handlers"
	"github.com/sbilibin2017/gw-movie-favorites/internal/hasher"
	"github.com/sbilibin2017/gw-movie-favorites/internal/jwt"
	"github.com/sbilibin2017/gw-movie-favorites/internal/logger"
	"github.com/sbilibin2017/gw-movie-favorites/internal/middlewares"
	"github.com/sbilibin2017/gw-movie-favorites/internal/repositories"
	"github.com/sbilibin2017/gw-movie-favorites/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-movie-favorites API
// @version 1.0.0
// @description Registration, login and per-user TMDB favorites
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting gw-movie-favorites. Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, database, Redis, Kafka, the gRPC health service
// and the HTTP server, then blocks until a shutdown signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)
	warnInsecureDefaults(cfg)

	// Connect to PostgreSQL
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := repositories.RunMigrations(ctx, db.DB); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	// Connect to Redis
	var cache services.FavoriteCache
	if cfg.RedisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         cfg.RedisAddr(),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()
		cache = repositories.NewFavoriteCacheRepository(rdb, cfg.RedisExp)
	} else {
		logger.Log.Info("REDIS_HOST is empty, favorites cache disabled")
	}

	// Kafka producer
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := newKafkaWriter(cfg)
		defer w.Close()
		kafkaWriter = w
	} else {
		logger.Log.Info("KAFKA_BROKERS is empty, event publishing disabled")
	}

	docs.SwaggerInfo.Host = cfg.HTTPAddr()

	srv := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: newRouter(cfg, db, cache, kafkaWriter),
	}

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if cfg.GRPCHealthPort != "" {
		lis, err := net.Listen("tcp", net.JoinHostPort(cfg.AppHost, cfg.GRPCHealthPort))
		if err != nil {
			return fmt.Errorf("gRPC health listener failed: %w", err)
		}
		grpcServer, healthServer := newGRPCHealthServer()
		defer func() {
			healthServer.Shutdown()
			grpcServer.GracefulStop()
		}()

		go func() {
			logger.Log.Infof("gRPC health service listening on %s", lis.Addr())
			if err := grpcServer.Serve(lis); err != nil {
				errChan <- fmt.Errorf("gRPC health server failed: %w", err)
			}
		}()
	}

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.HTTPAddr())
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

// warnInsecureDefaults logs settings that are unsafe outside local development.
func warnInsecureDefaults(cfg *config.Config) {
	if cfg.UsesDefaultJWTSecret() {
		logger.Log.Warn("JWT_SECRET_KEY is not set, tokens are signed with the built-in default secret")
	}
}

// newRouter wires repositories, services and handlers into the HTTP routes.
// cache and kafkaWriter may be nil.
func newRouter(
	cfg *config.Config,
	db *sqlx.DB,
	cache services.FavoriteCache,
	kafkaWriter services.KafkaWriter,
) http.Handler {
	tokens := jwt.New(jwt.WithSecretKey(cfg.JWTSecretKey))
	passwords := hasher.NewBcrypt(cfg.BcryptCost)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	favoriteReadRepo := repositories.NewFavoriteReadRepository(db, middlewares.GetTxFromContext)
	favoriteWriteRepo := repositories.NewFavoriteWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, passwords, tokens, kafkaWriter)
	favoriteService := services.NewFavoriteService(favoriteReadRepo, favoriteWriteRepo, cache, kafkaWriter, middlewares.AfterCommit)

	txMiddleware := middlewares.TxMiddleware(db)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	// Public routes
	r.Post("/register", handlers.NewRegisterHandler(authService))
	r.Post("/login", handlers.NewLoginHandler(authService))
	r.Get("/health", handlers.NewHealthHandler(db))

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokens))
		r.Get("/login", handlers.NewGetMeHandler(authService))
		r.Get("/favorite", handlers.NewGetFavoritesHandler(favoriteService))
		r.With(txMiddleware).Post("/favorite", handlers.NewAddFavoriteHandler(favoriteService))
		r.With(txMiddleware).Delete("/favorite", handlers.NewRemoveFavoriteHandler(favoriteService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/swagger/doc.json", cfg.HTTPAddr())),
	))

	return r
}

func newKafkaWriter(cfg *config.Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: 5 * time.Second,
	}
}

// newGRPCHealthServer returns a gRPC server exposing the standard health
// service with the overall status set to SERVING.
func newGRPCHealthServer() (*grpc.Server, *health.Server) {
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	return grpcServer, healthServer
}
