package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/NourAlnujoom/Asfar-tourism-assistant/internal/models/db_models"
)

// InitDatabase opens the configured database and migrates the schema.
// SQLite is the default; DB_DRIVER=postgres switches to POSTGRES_URL.
func InitDatabase() *gorm.DB {
	var dialector gorm.Dialector
	switch os.Getenv("DB_DRIVER") {
	case "postgres":
		dialector = postgres.Open(os.Getenv("POSTGRES_URL"))
	default:
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "tourism_database.db"
		}
		dialector = sqlite.Open(path)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := db.AutoMigrate(&db_models.Site{}, &db_models.SensorReading{}); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return db
}

func CloseDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("Database connection closed successfully")
	}
}
