package commands

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/johnquangdev/event-planner/internal/infrastructure/database"
	"github.com/johnquangdev/event-planner/pkg/config"
)

// AppContext holds the dependencies shared by the commands
type AppContext struct {
	Cfg    *config.Config
	Logger *zap.Logger
	Out    io.Writer

	db *gorm.DB
}

// DB opens the database on first use
func (a *AppContext) DB() (*gorm.DB, error) {
	if a.db != nil {
		return a.db, nil
	}
	db, err := database.NewPostgresDB(a.Cfg, a.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	a.db = db
	return db, nil
}

// Close releases the database connection if one was opened
func (a *AppContext) Close() {
	if a.db == nil {
		return
	}
	if err := database.CloseDB(a.db, a.Logger); err != nil {
		a.Logger.Warn("cli.database.close_failed", zap.Error(err))
	}
	a.db = nil
}
