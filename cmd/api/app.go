package main

import (
	"net/http"
	"os"
	"time"

	"radarcontacts/internal/handlers"
	"radarcontacts/internal/middleware"
	"radarcontacts/internal/repositories"
	"radarcontacts/internal/services"
	"radarcontacts/internal/transformers"
	"radarcontacts/internal/validators"
	"radarcontacts/pkg/cache"
	"radarcontacts/pkg/config"
	"radarcontacts/pkg/database"
	"radarcontacts/pkg/logger"
	"radarcontacts/pkg/metrics"
	"radarcontacts/pkg/monday"
	"radarcontacts/pkg/propertyradar"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// App represents the application structure
type App struct {
	Config        *config.Config
	Router        *gin.Engine
	LookupHandler *handlers.LookupHandler
	UserHandler   *handlers.UserHandler
	RateLimiter   *middleware.RateLimiter
	Server        *http.Server
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) *App {
	app := &App{Config: cfg}

	// Initialize infrastructure
	app.initializeDatabase()
	app.initializeCache()
	app.initializeMetrics()
	app.initializeRateLimiter()

	// Initialize business logic
	app.initializeDependencies()

	// Initialize web layer
	app.initializeRouter()

	return app
}

// initialize the database connection
func (a *App) initializeDatabase() {
	if err := database.InitDB(a.Config.Database.URI, a.Config.Database.DBName); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize database: %v", err)
		os.Exit(1)
	}
}

// initialize the Redis cache
func (a *App) initializeCache() {
	if err := cache.InitRedis(a.Config.Redis.Host, a.Config.Redis.Port, a.Config.Redis.Password, a.Config.Redis.DB); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize Redis: %v", err)
		os.Exit(1)
	}
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// initialize the rate limiter
func (a *App) initializeRateLimiter() {
	a.RateLimiter = middleware.NewRateLimiter(rate.Limit(100/60.0), 10)
	go a.RateLimiter.Cleanup()
}

// initialize all dependencies
func (a *App) initializeDependencies() {
	// external clients
	radarClient := propertyradar.NewClient(a.Config.PropertyRadar.BaseURL, a.Config.PropertyRadar.Token)
	boardClient := monday.NewClient(a.Config.Monday.APIURL, a.Config.Monday.Token)

	// repositories
	lookupRepo := repositories.NewLookupRepository()
	lookupCache := repositories.NewLookupCache()
	userRepo := repositories.NewUserRepository()

	// transformers
	addrTrans := transformers.NewAddressTransformer()

	// validators
	lookupValidator := validators.NewLookupValidator()
	userValidator := validators.NewUserValidator()

	// services
	lookupDelay := time.Duration(a.Config.PropertyRadar.LookupDelayMS) * time.Millisecond
	lookupService := services.NewLookupService(radarClient, addrTrans, lookupRepo, lookupCache, lookupDelay)
	boardService := services.NewBoardService(boardClient, lookupService, a.Config.Monday.BoardID)
	userService := services.NewUserService(userRepo, a.Config.JWT.Secret)

	// handlers
	a.LookupHandler = handlers.NewLookupHandler(lookupService, boardService, lookupValidator)
	a.UserHandler = handlers.NewUserHandler(userService, userValidator)
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}

// cleanup operations
func (a *App) cleanup() {
	database.CloseDB()
	cache.CloseRedis()
}
