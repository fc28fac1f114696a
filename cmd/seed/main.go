// Seeds the user table with a handful of demo accounts sharing one
// password. Existing emails are left untouched, so the command is safe to
// run repeatedly.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/harsha/nutrition-dashboard/internal/config"
	"github.com/harsha/nutrition-dashboard/internal/domain"
	"github.com/harsha/nutrition-dashboard/internal/logger"
	"github.com/harsha/nutrition-dashboard/internal/repository/sqlite"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const seedUserCount = 5

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)
	slog.SetDefault(log)

	db, err := sqlite.NewConnection(cfg.DatabasePath)
	if err != nil {
		log.Error("failed to open database", slog.String("path", cfg.DatabasePath), slog.Any("error", err))
		os.Exit(1)
	}

	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "password123"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cfg.BcryptCost)
	if err != nil {
		log.Error("failed to hash seed password", slog.Any("error", err))
		os.Exit(1)
	}

	inserted := 0
	err = db.Transaction(func(tx *gorm.DB) error {
		for i := 1; i <= seedUserCount; i++ {
			user := &domain.User{
				Email:        fmt.Sprintf("user%d@example.com", i),
				PasswordHash: string(hash),
			}

			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(user)
			if res.Error != nil {
				return res.Error
			}

			if res.RowsAffected > 0 {
				inserted++
				log.Info("inserted user", slog.String("email", user.Email))
			} else {
				log.Info("skipped existing user", slog.String("email", user.Email))
			}
		}
		return nil
	})
	if err != nil {
		log.Error("seeding failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("seeding completed", slog.Int("inserted", inserted))
}
