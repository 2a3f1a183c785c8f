package db

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	migrate "github.com/golang-migrate/migrate/v4"
	// The following blank imports register the postgres driver and file source for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/diewo77/profiles-app/internal/models"
)

// Models lists every record type in migration order; parents come before
// the tables whose foreign keys point at them.
func Models() []any {
	return []any{
		&models.UserProfile{},
		&models.ProfileFeedItem{},
		&models.Product{},
		&models.Invoice{},
		&models.InvoiceItem{},
	}
}

// ConnectAndMigrate opens the database named by dsn (SQLite for file/:memory:
// DSNs, Postgres otherwise), applies the schema, and optionally seeds
// development data when DB_SEED=1.
func ConnectAndMigrate(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database DSN is empty, check the environment configuration")
	}
	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		// Surface driver constraint failures as gorm sentinel errors so the
		// store layer can classify them.
		TranslateError: true,
	}

	var db *gorm.DB
	var err error
	if IsSQLite(dsn) {
		db, err = gorm.Open(sqlite.Open(SQLiteDSN(dsn)), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
	} else {
		normalized := NormalizeDSN(dsn)
		for i := 0; i < 10; i++ {
			db, err = gorm.Open(postgres.Open(normalized), cfg)
			if err == nil {
				break
			}
			fmt.Println("Retrying DB connection...", err)
			time.Sleep(2 * time.Second)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to connect database after retries: %w", err)
		}
	}

	// Basic connectivity test
	if pingErr := db.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}

	// Print masked DSN once for diagnostics (before migrations for visibility)
	masked := dsn
	if strings.Contains(masked, "password=") {
		re := regexp.MustCompile(`(password=)([^\s]+)`)
		masked = re.ReplaceAllString(masked, `${1}***`)
	}
	fmt.Println("[DB] Using DSN:", masked)

	// MIGRATIONS=1 runs the sql migrations via golang-migrate (postgres only);
	// the default is the AutoMigrate path, which also covers sqlite.
	if v := strings.ToLower(os.Getenv("MIGRATIONS")); v == "1" || v == "true" || v == "yes" {
		if IsSQLite(dsn) {
			return nil, errors.New("sql migrations require a postgres DSN")
		}
		if err := RunSQLMigrations(dsn); err != nil {
			return nil, fmt.Errorf("sql migrations failed: %w", err)
		}
	} else {
		for _, m := range Models() {
			if migErr := db.AutoMigrate(m); migErr != nil {
				return nil, fmt.Errorf("automigrate %T: %w", m, migErr)
			}
		}
	}

	// sanity check: ensure the core tables exist
	for _, table := range []string{"user_profiles", "products", "invoices"} {
		if !db.Migrator().HasTable(table) {
			return nil, errors.New("missing table after migration: " + table)
		}
	}

	// Seeding only when explicitly requested (e.g. development) via DB_SEED=1|true
	if v := strings.ToLower(os.Getenv("DB_SEED")); v == "1" || v == "true" || v == "yes" {
		seed(db)
	}
	return db, nil
}

// seed inserts a handful of development rows; safe to run repeatedly.
func seed(db *gorm.DB) {
	demo := models.UserProfile{Email: "demo@example.com", Name: "Demo"}
	_ = demo.SetPassword("demo1234")
	var existing models.UserProfile
	if err := db.Where("email = ?", demo.Email).First(&existing).Error; errors.Is(err, gorm.ErrRecordNotFound) {
		db.Create(&demo)
	}
	baseProducts := []models.Product{
		{Name: "Consulting hour", Price: 90, Quantity: 100},
		{Name: "Support plan", Price: 49.90, Quantity: 25},
	}
	for _, p := range baseProducts {
		var found models.Product
		if err := db.Where("name = ?", p.Name).First(&found).Error; errors.Is(err, gorm.ErrRecordNotFound) {
			db.Create(&p)
		}
	}
}

// RunSQLMigrations executes migrations in ./migrations using the
// golang-migrate file source. Postgres only.
func RunSQLMigrations(dsn string) error {
	m, err := migrate.New("file://migrations", ToURLDSN(NormalizeDSN(dsn)))
	if err != nil {
		return err
	}
	if err = m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
