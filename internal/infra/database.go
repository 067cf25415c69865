package infra

import (
	"fmt"
	"strings"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection, runs AutoMigrate to create or
// update all tables, then applies the idempotent SQL patches that AutoMigrate
// cannot express (the case-insensitive hub name index). Postgres backed by
// pgx is the production dialect; a "sqlite://" DSN opens a file database for
// local development without a server.
//
// TranslateError is enabled so unique violations surface as
// gorm.ErrDuplicatedKey; the hub resolver and the vehicle/contact
// reactivation paths rely on that to recover from creation races.
func NewDatabase(dsn string) (*gorm.DB, error) {
	dialector := postgres.Open(dsn)
	if path, ok := strings.CutPrefix(dsn, "sqlite://"); ok {
		dialector = sqlite.Open(path)
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations creates/updates the schema.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Hub{},
		&model.Employee{},
		&model.Attendance{},
		&model.ExtraHours{},
		&model.AsistenciasComment{},
		&model.LiquidacionRuta{},
		&model.LiquidacionEntry{},
		&model.FlotaVehiculo{},
		&model.FlotaIncidencia{},
		&model.KilosLitros{},
		&model.HubCompra{},
		&model.Contacto{},
		&model.RepartoCliente{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that GORM cannot express.
// Postgres-only: other dialects get by on the plain unique index, since the
// resolver enforces case-insensitive uniqueness before insert.
func applySchemaPatches(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	patches := []string{
		// Hub names are unique case-insensitively; the column's plain unique
		// index cannot catch "Caceres" vs "CACERES" racing past the resolver.
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_hubs_name_lower ON hubs (LOWER(name))`,
	}
	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("schema patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
