package database

import (
	"fmt"

	"clinic-booking/config"
	"clinic-booking/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewConnection opens the configured database and creates the schema if it
// does not exist yet. The default is a local sqlite file; postgres is used
// when DB_DRIVER=postgres.
func NewConnection(cfg config.DBConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port,
		)
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(cfg.Name)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&entity.Appointment{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	if cfg.Driver == "postgres" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database instance: %w", err)
		}
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
	}

	logrus.Infof("Successfully connected to %s database", driverName(cfg.Driver))

	return db, nil
}

func driverName(driver string) string {
	if driver == "postgres" {
		return "PostgreSQL"
	}
	return "SQLite"
}
