package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/logitrack-io/logitrack/config"
	"github.com/logitrack-io/logitrack/pkg/helpers"
)

// Seeds the demo account and its sample shipments. Safe to run more
// than once: the user is upserted and shipments conflict away on
// tracking_id.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	hash, err := helpers.HashPassword("demo123")
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, "demo@example.com", hash, "Demo User").Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=demo@example.com password=demo123\n", userID)

	type row struct {
		tracking, origin, destination, status string
		weight                                float64
		dimensions, description               string
		created                               string
	}
	shipments := []row{
		{"TRK001", "New York, NY", "Los Angeles, CA", "In Transit", 25.5, "12x10x8", "Electronics Package", "2024-01-15"},
		{"TRK002", "Chicago, IL", "Miami, FL", "Delivered", 15.2, "8x6x4", "Documents", "2024-01-10"},
		{"TRK003", "Seattle, WA", "Boston, MA", "Processing", 40.0, "20x15x10", "Furniture Parts", "2024-01-20"},
	}
	for _, s := range shipments {
		created, _ := time.Parse("2006-01-02", s.created)
		_, err := db.Exec(`
			INSERT INTO shipments (tracking_id, origin, destination, status, weight, dimensions, description, user_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
			ON CONFLICT (tracking_id) DO NOTHING
		`, s.tracking, s.origin, s.destination, s.status, s.weight, s.dimensions, s.description, userID, created)
		if err != nil {
			log.Fatalf("failed to seed shipment %s: %v", s.tracking, err)
		}
	}
	fmt.Printf("seeded %d demo shipments (existing tracking ids skipped)\n", len(shipments))
}
