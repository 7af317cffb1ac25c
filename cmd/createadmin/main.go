// Command createadmin seeds an admin account so the first login is
// possible on a fresh database. Existing accounts with the same name
// are replaced.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"ampedent/internal/auth"
	"ampedent/internal/config"
	"ampedent/internal/database"
	"ampedent/internal/models"
)

func main() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	logger := zerolog.New(output).With().Timestamp().Logger()

	_ = godotenv.Load()

	name := flag.String("name", "admin", "account name")
	password := flag.String("password", "", "account password")
	role := flag.String("role", string(models.RoleAdmin), "account role (admin or superadmin)")
	flag.Parse()

	if *password == "" {
		logger.Fatal().Msg("-password is required")
	}
	if !models.Role(*role).Valid() {
		logger.Fatal().Str("role", *role).Msg("unknown role")
	}

	cfg, err := config.Load(os.Getenv("AMPEDENT_CONFIG_PATH"))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := database.NewDB(cfg.Database.Path, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("open db error")
	}
	defer db.Close()

	hash, err := auth.HashPassword(*password)
	if err != nil {
		logger.Fatal().Err(err).Msg("hash password error")
	}

	ctx := context.Background()
	if _, err := db.ExecContext(ctx,
		"INSERT OR REPLACE INTO users (name, password, role) VALUES (?, ?, ?)",
		*name, hash, *role,
	); err != nil {
		logger.Fatal().Err(err).Msg("create account error")
	}

	logger.Info().Str("name", *name).Str("role", *role).Msg("account created")
}
