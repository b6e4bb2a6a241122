package pg

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"

	"github.com/orcahelper/orcahelper/internal/storage/pg/migrations"
)

// Migrate applies all pending schema migrations embedded in the binary.
func Migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
