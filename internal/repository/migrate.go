package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var migrationSteps = []struct {
	name string
	sql  string
}{
	{
		name: "create_table_documents",
		sql: `CREATE TABLE IF NOT EXISTS documents (
  id          BIGSERIAL   PRIMARY KEY,
  filename    TEXT        NOT NULL,
  content     TEXT        NOT NULL,
  uploaded_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		name: "create_index_documents_filename",
		sql:  `CREATE INDEX IF NOT EXISTS idx_documents_filename ON documents (filename);`,
	},
}

// Migrate creates the schema if it does not exist yet. It is idempotent and
// runs at startup, before the server accepts requests.
func Migrate(ctx context.Context, db *pgxpool.Pool, logger *zap.Logger) error {
	for _, step := range migrationSteps {
		if _, err := db.Exec(ctx, step.sql); err != nil {
			return fmt.Errorf("migration step %s: %w", step.name, err)
		}
		logger.Debug("Migration step applied", zap.String("step", step.name))
	}

	logger.Info("Database schema ready")
	return nil
}
