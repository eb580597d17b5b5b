package config

import (
	"fmt"
	"log"
	"os"

	"food-marketplace-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret []byte

// MediaBaseURL is the fallback base for resolving stored image paths
// when no request context is available.
var MediaBaseURL string

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads .env (if present) and populates the package-level settings.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}
	JWTSecret = []byte(getEnv("JWT_SECRET", "food_marketplace_super_secret_2024"))
	MediaBaseURL = getEnv("MEDIA_BASE_URL", "http://localhost:8080")
}

// InitDB opens the configured database and migrates the schema.
// DB_DRIVER=postgres selects the postgres driver (connection settings
// from the usual DB_* variables); anything else uses a local sqlite file.
func InitDB() {
	var (
		db  *gorm.DB
		err error
	)
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}

	if getEnv("DB_DRIVER", "sqlite") == "postgres" {
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_NAME", "food_marketplace"),
			getEnv("DB_PORT", "5432"),
		)
		db, err = gorm.Open(postgres.Open(dsn), cfg)
	} else {
		db, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "food_marketplace.db")), cfg)
	}
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	DB = db
}

// Migrate applies the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Location{},
		&models.Category{},
		&models.Restaurant{},
		&models.FoodItem{},
		&models.Order{},
		&models.OrderItem{},
	)
}
