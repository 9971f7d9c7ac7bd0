package main

import (
	"log"
	"os"

	"lucidgpt-be/internal/model"
	"lucidgpt-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	models := []interface{}{
		&model.Client{},
		&model.Vehicle{},
		&model.Employee{},
		&model.ServiceHistory{},
		&model.Appointment{},
	}

	if os.Getenv("DROP_TABLES") == "true" {
		log.Println("Step 1: Dropping existing tables...")
		if err := db.Migrator().DropTable(
			&model.Appointment{},
			&model.ServiceHistory{},
			&model.Vehicle{},
			&model.Employee{},
			&model.Client{},
		); err != nil {
			log.Printf("Warn: Failed to drop tables: %v. Continuing...", err)
		}
	}

	log.Println("Step 2: Running AutoMigrate for 5 Tables...")
	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
