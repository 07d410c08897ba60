package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"property-api/internal/config"
	"property-api/internal/database"
	"property-api/internal/handlers"
	"property-api/internal/logger"
	"property-api/internal/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	configPath := getEnv("CONFIG_PATH", "config.yaml")
	appConfig, err := config.LoadConfig(configPath)
	if err != nil {
		log.Printf("Warning: Failed to load config from %s: %v. Using defaults.", configPath, err)
		appConfig = config.DefaultConfig()
	}

	if appConfig.Server.Mode != "" {
		gin.SetMode(appConfig.Server.Mode)
	}

	zapLogger, err := logger.New(appConfig.Logging.Level, appConfig.Logging.Format)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	// Initialize database
	dbCfg := appConfig.Database
	portStr := ""
	if dbCfg.Port > 0 {
		portStr = fmt.Sprintf("%d", dbCfg.Port)
	}

	db, err := database.NewGormDB(
		getEnvOrConfig(dbCfg.Host, "DB_HOST", "mysql"),
		getEnvOrConfig(portStr, "DB_PORT", "3306"),
		getEnvOrConfig(dbCfg.User, "DB_USER", "property_user"),
		getEnvOrConfig(dbCfg.Password, "DB_PASSWORD", "property_pass"),
		getEnvOrConfig(dbCfg.Database, "DB_NAME", "property_db"),
	)
	if err != nil {
		zapLogger.Fatal("failed to connect to MySQL", zap.Error(err))
	}
	defer db.Close()

	if err := db.InitSchema(); err != nil {
		zapLogger.Fatal("failed to initialize schema", zap.Error(err))
	}

	// Rate limiter for mutating routes
	rateLimiter := ratelimit.New(
		appConfig.RateLimit.RequestsPerMinute,
		appConfig.RateLimit.RequestsPerHour,
		appConfig.RateLimit.Enabled,
	)
	zapLogger.Info("rate limiter initialized",
		zap.Int("requests_per_minute", appConfig.RateLimit.RequestsPerMinute),
		zap.Int("requests_per_hour", appConfig.RateLimit.RequestsPerHour),
		zap.Bool("enabled", appConfig.RateLimit.Enabled),
	)

	// Setup Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	if appConfig.Logging.LogRequests {
		r.Use(logger.RequestLogger(zapLogger))
	}

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5176"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/health", healthCheck)

	propertyHandler := handlers.NewPropertyHandler(db, appConfig.Response.PerPage, zapLogger)
	roomHandler := handlers.NewRoomHandler(db, db, zapLogger)
	limited := ratelimit.Middleware(rateLimiter)

	api := r.Group("/api")
	{
		property := api.Group("/property")
		{
			property.POST("", limited, propertyHandler.Create)
			property.GET("", propertyHandler.List)
			property.GET("/:id", propertyHandler.Get)
			property.PUT("/:id", limited, propertyHandler.Update)
			property.DELETE("/:id", limited, propertyHandler.Delete)
		}

		room := api.Group("/room")
		{
			room.POST("", limited, roomHandler.Create)
			room.GET("/:property_id", roomHandler.List)
			room.PUT("/:id", limited, roomHandler.Update)
			room.DELETE("/:id", limited, roomHandler.Delete)
		}

		api.GET("/ratelimit/stats", func(c *gin.Context) {
			c.JSON(http.StatusOK, rateLimiter.GetStats())
		})
	}

	port := getEnv("PORT", fmt.Sprintf("%d", appConfig.Server.Port))
	zapLogger.Info("server starting", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		zapLogger.Fatal("failed to start server", zap.Error(err))
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now(),
	})
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvOrConfig returns config value if set, otherwise falls back to environment variable, then default
func getEnvOrConfig(configValue, envKey, defaultValue string) string {
	if configValue != "" {
		return configValue
	}
	return getEnv(envKey, defaultValue)
}
