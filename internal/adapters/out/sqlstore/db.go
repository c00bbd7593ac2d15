package sqlstore

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"orderpanel/internal/adapters/out/sqlstore/catalogrepo"
	"orderpanel/internal/adapters/out/sqlstore/orderrepo"
	"orderpanel/internal/adapters/out/sqlstore/outboxrepo"
	"orderpanel/internal/core/domain/model/catalog"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Config describes the database connection.
type Config struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN renders the driver-specific connection string.
func (c Config) DSN() (string, error) {
	switch c.Driver {
	case DriverPostgres, "":
		sslMode := c.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.Name, sslMode), nil
	case DriverMySQL:
		// parseTime is required to scan DATETIME into time.Time.
		params := url.Values{}
		params.Set("parseTime", "true")
		params.Set("charset", "utf8mb4")
		params.Set("loc", "UTC")
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s",
			c.User, c.Password, c.Host, c.Port, c.Name, params.Encode()), nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", c.Driver)
	}
}

// Open connects with the configured driver and checks the connection.
func Open(ctx context.Context, cfg Config) (*gorm.DB, error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}

	var dialector gorm.Dialector
	if cfg.Driver == DriverMySQL {
		dialector = mysql.Open(dsn)
	} else {
		dialector = postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dialector.Name(), err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("ping %s: %w", dialector.Name(), err)
	}

	return db, nil
}

// Migrate creates or updates the orders, products and outbox_events tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&catalogrepo.ProductDTO{},
		&outboxrepo.EventDTO{},
	)
}

// SeedCatalog inserts items in one transaction. With onlyIfEmpty set it does
// nothing when the catalog already has rows. Returns the number inserted.
func SeedCatalog(ctx context.Context, db *gorm.DB, items []*catalog.Item, onlyIfEmpty bool) (int, error) {
	inserted := 0
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := catalogrepo.NewGormCatalogRepository(tx)
		if onlyIfEmpty {
			n, err := repo.Count(ctx)
			if err != nil {
				return err
			}
			if n > 0 {
				return nil
			}
		}
		for _, item := range items {
			if _, err := repo.Add(ctx, item); err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("seed catalog: %w", err)
	}
	return inserted, nil
}
