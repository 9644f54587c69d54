package config

import (
	"log"
	"os"

	"homecook-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret signs auth tokens — populated by Load from env or fallback
var JWTSecret []byte

// Load reads .env (if present) and resolves settings that other packages
// consume. Must run before InitDB.
func Load() {
	_ = godotenv.Load()
	JWTSecret = []byte(getEnv("JWT_SECRET", "homecook_super_secret_2024"))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "homecook.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected and migrated")
}

// Migrate applies the schema for every model. Shared with tests that run on
// in-memory databases.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Chef{},
		&models.Menu{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusUpdate{},
	)
}
