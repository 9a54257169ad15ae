package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jsalcedo/boxtrack-be/internal/core/domain"
)

// seedProduct is one catalog entry to install
type seedProduct struct {
	Brand string
	Name  string
	Size  string
}

// Development catalog. Real deployments load products through the API.
var devProducts = []seedProduct{
	{"Acme", "Widget", "S"},
	{"Acme", "Widget", "M"},
	{"Acme", "Widget", "L"},
	{"Acme", "Sprocket", ""},
	{"Globex", "Gear Assembly", "Standard"},
	{"Globex", "Gear Assembly", "Heavy"},
	{"Initech", "Fastener Kit", "100pc"},
	{"Initech", "Fastener Kit", "500pc"},
	{"Umbrella", "Sealant Cartridge", "300ml"},
	{"Umbrella", "Sealant Cartridge", "600ml"},
}

// Seeder installs the reference data a fresh warehouse needs
type Seeder struct {
	db     *pgxpool.Pool
	logger *slog.Logger
	dryRun bool
}

func NewSeeder(db *pgxpool.Pool, logger *slog.Logger, dryRun bool) *Seeder {
	return &Seeder{db: db, logger: logger, dryRun: dryRun}
}

// SeedProducts inserts the development catalog, skipping rows that exist
func (s *Seeder) SeedProducts(ctx context.Context) (int, error) {
	if s.dryRun {
		return len(devProducts), nil
	}

	batch := &pgx.Batch{}
	for _, p := range devProducts {
		var size *string
		if p.Size != "" {
			v := p.Size
			size = &v
		}
		batch.Queue(`
			INSERT INTO products (id, brand, name, size, created_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (brand, name, COALESCE(size, '')) DO NOTHING`,
			uuid.New(), p.Brand, p.Name, size, time.Now().UTC(),
		)
	}

	inserted, err := s.sendBatch(ctx, batch, len(devProducts))
	if err != nil {
		return 0, fmt.Errorf("failed to seed products: %w", err)
	}

	s.logger.Info("products seeded", slog.Int("inserted", inserted))
	return inserted, nil
}

// SeedReceiving installs the reserved RECEIVING staging location
func (s *Seeder) SeedReceiving(ctx context.Context) error {
	if s.dryRun {
		return nil
	}

	_, err := s.db.Exec(ctx, `
		INSERT INTO locations (id, location_code, is_system_location, created_at)
		VALUES ($1, $2, TRUE, $3)
		ON CONFLICT (location_code) DO NOTHING`,
		uuid.New(), domain.ReceivingCode, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to seed receiving location: %w", err)
	}

	s.logger.Info("receiving location seeded")
	return nil
}

// SeedLocationGrid installs a zone/aisle/rack/shelf grid of storage bins
func (s *Seeder) SeedLocationGrid(ctx context.Context, zones, aisles, racks int, shelves string) (int, error) {
	shelfList := strings.Split(shelves, ",")
	total := zones * aisles * racks * len(shelfList)

	if s.dryRun {
		return total, nil
	}

	batch := &pgx.Batch{}
	for z := 1; z <= zones; z++ {
		zone := fmt.Sprintf("%c", 'A'+z-1)
		for a := 1; a <= aisles; a++ {
			for r := 1; r <= racks; r++ {
				for _, shelf := range shelfList {
					shelf = strings.TrimSpace(shelf)
					loc := domain.Location{
						ID:        uuid.New(),
						Zone:      zone,
						Aisle:     fmt.Sprintf("%02d", a),
						Rack:      fmt.Sprintf("%02d", r),
						Shelf:     shelf,
						CreatedAt: time.Now().UTC(),
					}
					loc.PrepareForStorage()
					batch.Queue(`
						INSERT INTO locations (id, zone, aisle, rack, shelf, location_code, is_system_location, created_at)
						VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7)
						ON CONFLICT (location_code) DO NOTHING`,
						loc.ID, loc.Zone, loc.Aisle, loc.Rack, loc.Shelf, loc.LocationCode, loc.CreatedAt,
					)
				}
			}
		}
	}

	inserted, err := s.sendBatch(ctx, batch, total)
	if err != nil {
		return 0, fmt.Errorf("failed to seed location grid: %w", err)
	}

	s.logger.Info("location grid seeded",
		slog.Int("inserted", inserted),
		slog.Int("grid_size", total))
	return inserted, nil
}

func (s *Seeder) sendBatch(ctx context.Context, batch *pgx.Batch, n int) (int, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	br := tx.SendBatch(ctx, batch)

	inserted := 0
	for i := 0; i < n; i++ {
		tag, err := br.Exec()
		if err != nil {
			br.Close()
			return 0, err
		}
		inserted += int(tag.RowsAffected())
	}

	if err := br.Close(); err != nil {
		return 0, fmt.Errorf("failed to close batch results: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return inserted, nil
}

func main() {
	var (
		zones    = flag.Int("zones", 2, "Number of warehouse zones (A, B, ...)")
		aisles   = flag.Int("aisles", 4, "Aisles per zone")
		racks    = flag.Int("racks", 6, "Racks per aisle")
		shelves  = flag.String("shelves", "A,B,C", "Comma-separated shelf levels per rack")
		logLevel = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		dryRun   = flag.Bool("dry-run", false, "Preview changes without modifying database")
	)
	flag.Parse()

	// Setup logging
	var slogLevel slog.Level
	switch *logLevel {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: slogLevel,
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, opts))
	slog.SetDefault(logger)

	// Database connection
	dbURL := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		getEnv("DB_USER", "boxtrack"),
		getEnv("DB_PASSWORD", "boxtrack_dev_2026"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "boxtrack"),
		getEnv("DB_SSL_MODE", "disable"),
	)

	ctx := context.Background()

	var db *pgxpool.Pool
	var err error

	if !*dryRun {
		db, err = pgxpool.New(ctx, dbURL)
		if err != nil {
			logger.Error("failed to connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer db.Close()
	}

	seeder := NewSeeder(db, logger, *dryRun)

	if err := seeder.SeedReceiving(ctx); err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	productCount, err := seeder.SeedProducts(ctx)
	if err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	locationCount, err := seeder.SeedLocationGrid(ctx, *zones, *aisles, *racks, *shelves)
	if err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Summary
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("SEED SUMMARY")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("Products inserted:  %d\n", productCount)
	fmt.Printf("Locations inserted: %d (+ RECEIVING)\n", locationCount)

	if *dryRun {
		fmt.Println("\n[DRY RUN] No changes were made to the database")
	}

	logger.Info("seed operation completed",
		slog.Int("products", productCount),
		slog.Int("locations", locationCount))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
