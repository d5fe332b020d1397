// Command migrate brings the database schema up to date and exits. The
// server migrates on startup as well; this command exists for
// deployments that run migrations as a separate step before rolling the
// server.
package main

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/lendtrack/backend/internal/db"
	"github.com/lendtrack/backend/internal/logger"
)

func main() {
	_ = godotenv.Load()

	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	config := db.NewConfig()
	database, err := db.Connect(config)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := database.Migrate(); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}
	log.Info("schema up to date",
		zap.String("driver", config.Driver),
		zap.Int("version", db.SchemaVersion))
}
