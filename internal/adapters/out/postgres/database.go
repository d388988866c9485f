package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"warehouse/internal/adapters/out/postgres/containerrepo"
	"warehouse/internal/adapters/out/postgres/locationrepo"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const containerLocationFK = "fk_containers_location"

// ItemDTO is the row shape of the items catalog. The service only reads it
// to show item names next to container SKUs.
type ItemDTO struct {
	SKU  string `gorm:"column:sku;type:varchar(64);primaryKey"`
	Name string `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for catalog items.
func (ItemDTO) TableName() string {
	return "items"
}

// Options tunes the connection pool.
type Options struct {
	MaxOpenConns    int
	ConnMaxIdleTime time.Duration
}

// Open connects to Postgres through lib/pq and wraps the pool in GORM.
func Open(dsn string, opts Options) (*gorm.DB, error) {
	connector, err := pq.NewConnector(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	sqlDB := sql.OpenDB(connector)
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxOpenConns)
	}
	if opts.ConnMaxIdleTime > 0 {
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("open gorm: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the locations, items and containers tables and
// the container-to-location foreign key.
func Migrate(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)
	if err := tx.AutoMigrate(&locationrepo.LocationDTO{}, &ItemDTO{}, &containerrepo.ContainerDTO{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if tx.Migrator().HasConstraint(&containerrepo.ContainerDTO{}, containerLocationFK) {
		return nil
	}

	err := tx.Exec(fmt.Sprintf(
		"ALTER TABLE containers ADD CONSTRAINT %s FOREIGN KEY (location_id) REFERENCES locations(id)",
		containerLocationFK,
	)).Error
	if err != nil {
		return fmt.Errorf("add %s: %w", containerLocationFK, err)
	}
	return nil
}

// SeedLocations provisions the given location codes. Codes already present
// are kept with their identifiers.
func SeedLocations(ctx context.Context, db *gorm.DB, codes []kernel.Code) (int64, error) {
	inserted, err := locationrepo.Seed(ctx, db, codes)
	if err != nil {
		return 0, fmt.Errorf("seed locations: %w", err)
	}
	return inserted, nil
}
