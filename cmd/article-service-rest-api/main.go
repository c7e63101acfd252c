// cmd/article-service-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/MGTheTrain/article-service/internal/api/rest/v1"
	"github.com/MGTheTrain/article-service/internal/app"
	"github.com/MGTheTrain/article-service/internal/domain/access"
	"github.com/MGTheTrain/article-service/internal/domain/articles"
	"github.com/MGTheTrain/article-service/internal/infrastructure/connector"
	"github.com/MGTheTrain/article-service/internal/infrastructure/persistence"
	"github.com/MGTheTrain/article-service/internal/infrastructure/token"
	"github.com/MGTheTrain/article-service/internal/pkg/config"
	"github.com/MGTheTrain/article-service/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Warn("failed to close database: ", err)
		}
	}()

	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// openDatabase is swapped in tests to observe the connection
var openDatabase = persistence.NewDBConnection

// appDependencies holds all initialized application components
type appDependencies struct {
	db                *gorm.DB
	articleQuery      articles.ArticleQueryService
	articleManagement articles.ArticleManagementService
	tokenVerifier     access.TokenVerifier
	allowList         *access.AllowList
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (deps *appDependencies, err error) {
	db, err := openDatabase(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	defer func() {
		if err == nil {
			return
		}
		if closeErr := persistence.CloseDB(db); closeErr != nil {
			log.Warn("failed to close database: ", closeErr)
		}
	}()

	if err := persistence.Migrate(db); err != nil {
		return nil, err
	}
	log.Info("Database migrations completed successfully")

	articleRepo, err := persistence.NewGormArticleRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create article repository: %w", err)
	}

	imageConnector, err := connector.NewImageConnector(context.Background(), &cfg.BlobConnector, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create image connector: %w", err)
	}
	log.Info("Image connector ", cfg.BlobConnector.CloudProvider, " initialized successfully")

	imageCache, err := connector.NewImageCache(&cfg.Cache, &cfg.BlobConnector, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create image cache: %w", err)
	}

	articleManagement, err := app.NewArticleManagementService(articleRepo, imageConnector, imageCache, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create article management service: %w", err)
	}

	articleQuery, err := app.NewArticleQueryService(articleRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create article query service: %w", err)
	}

	jwtManager, err := token.NewJWTManager(&cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create token manager: %w", err)
	}

	allowList := access.NewAllowList(cfg.Auth.Admins)
	log.Info("Loaded ", allowList.Len(), " admin(s)")

	return &appDependencies{
		db:                db,
		articleQuery:      articleQuery,
		articleManagement: articleManagement,
		tokenVerifier:     jwtManager,
		allowList:         allowList,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	v1.SetupRoutes(r, deps.articleQuery, deps.articleManagement, deps.tokenVerifier, deps.allowList, log)

	if cfg.BlobConnector.CloudProvider == config.LocalCloudProvider {
		if err := serveLocalImages(r, &cfg.BlobConnector); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// serveLocalImages exposes the local connector root under the path of its public base URL
func serveLocalImages(r *gin.Engine, settings *config.BlobConnectorSettings) error {
	publicURL, err := url.Parse(settings.PublicBaseURL)
	if err != nil {
		return fmt.Errorf("invalid public base url: %w", err)
	}

	mountPath := publicURL.Path
	if mountPath == "" || mountPath == "/" {
		return fmt.Errorf("public base url %s needs a path to serve local images under", settings.PublicBaseURL)
	}

	r.Static(mountPath, settings.LocalRoot)
	return nil
}
