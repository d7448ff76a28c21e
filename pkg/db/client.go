package db

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/avictorio/fieldparts/pkg/config"
	"github.com/avictorio/fieldparts/pkg/db/models"
	"github.com/avictorio/fieldparts/pkg/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Client wraps the local snapshot database. The store is a per-device sqlite
// file holding the last successfully fetched wallet and catalog; it is a
// convenience copy, never a source of truth.
type Client struct {
	conn *gorm.DB
}

// New opens (and migrates) the snapshot database at the configured path.
func New(ctx context.Context, cfg config.CacheConfig, logg *logger.Logger) (*Client, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("cache path is required")
	}

	gormLogger := gormlogger.New(
		log.New(io.Discard, "", log.LstdFlags),
		gormlogger.Config{LogLevel: gormlogger.Silent},
	)

	conn, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening snapshot db: %w", err)
	}

	if err := conn.WithContext(ctx).AutoMigrate(
		&models.CachedPartRequest{},
		&models.CachedInventoryPart{},
		&models.SnapshotMeta{},
	); err != nil {
		return nil, fmt.Errorf("migrating snapshot db: %w", err)
	}

	if logg != nil {
		logg.Info(ctx, "snapshot database ready")
	}

	return &Client{conn: conn}, nil
}

// DB returns the underlying GORM connection.
func (c *Client) DB() *gorm.DB {
	return c.conn
}

// Ping verifies the datasource is reachable.
func (c *Client) Ping(ctx context.Context) error {
	sqlDB, err := c.conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close shuts down the pooled connections.
func (c *Client) Close() error {
	sqlDB, err := c.conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// WithTx executes fn inside a transaction, rolling back on error/panic.
func (c *Client) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	tx := c.conn.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}
