package main

import (
	"fmt"
	"log"

	"github.com/muhryhan/be-aset-dlh/cmd"
	"github.com/muhryhan/be-aset-dlh/internal/config"
	"github.com/muhryhan/be-aset-dlh/internal/core/container"
	"github.com/muhryhan/be-aset-dlh/internal/core/logger"
	"github.com/muhryhan/be-aset-dlh/internal/core/routes"
	"github.com/muhryhan/be-aset-dlh/internal/database"
	"github.com/muhryhan/be-aset-dlh/internal/database/migration"
	"github.com/muhryhan/be-aset-dlh/internal/middleware"
	"github.com/muhryhan/be-aset-dlh/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// Set at build time: go build -ldflags "-X main.version=v1.2.3".
var version = "dev"

func main() {
	middleware.SetVersion(version)
	// Load .env file, but don't overwrite system environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, falling back to system environment variables.")
	}

	// Subcommands (migrate) short-circuit here.
	cmd.Execute()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	security.SetSecret(cfg.JWTSecret)

	zapLog := logger.NewLogger()
	defer zapLog.Sync()

	if err := migration.Migrate(cfg.DatabaseURL, fmt.Sprintf("file://%s", cfg.MigrationsDir), zapLog); err != nil {
		zapLog.Fatal("database migration failed: " + err.Error())
	}

	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		zapLog.Fatal("database connection failed: " + err.Error())
	}
	defer db.Close()
	zapLog.Info("Connected to the database successfully!")

	c, err := container.NewAppContainer(db, cfg, zapLog)
	if err != nil {
		zapLog.Fatal("container wiring failed: " + err.Error())
	}

	router := gin.Default()
	routes.Register(router, c, cfg, zapLog)

	if err := router.Run(cfg.AppHost); err != nil {
		zapLog.Fatal("server stopped: " + err.Error())
	}
}
