// Package sqlite embeds the schema of the installation store.
package sqlite

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

//go:embed sql/*.sql
var SqlFiles embed.FS

// Migrate creates or updates the installation, bot and OAuth state tables.
func Migrate(db *sql.DB) error {
	migrator := sqlmigrator.New(db, darwin.SqliteDialect{})

	if err := migrator.Migrate(SqlFiles, "sql"); err != nil {
		return fmt.Errorf("failed to migrate installation store: %w", err)
	}
	return nil
}
