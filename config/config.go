package config

import (
	"fmt"
	"log"
	"os"

	"github.com/SillyCatLover68/NourishNine-Web-App/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// GetEnv reads an environment variable with a fallback.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadEnv pulls .env into the process environment. Missing files are fine
// in deployed environments where variables come from the host.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded, using process environment")
	}
}

func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		GetEnv("DB_HOST", "localhost"),
		GetEnv("DB_USER", "postgres"),
		GetEnv("DB_PASSWORD", "password"),
		GetEnv("DB_NAME", "nourishnine"),
		GetEnv("DB_PORT", "5432"),
		GetEnv("DB_SSLMODE", "disable"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.NutrientLookup{},
		&models.Suggestion{},
		&models.FoodLogRecord{},
		&models.ProfileRecord{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
