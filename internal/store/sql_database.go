package store

import (
	"database/sql"

	"github.com/junohealth/notecache/internal/logger"
	"github.com/junohealth/notecache/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
