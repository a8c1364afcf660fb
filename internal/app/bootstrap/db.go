// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/rvetrivignesh/teamify/internal/app/system/indexes"
	"go.uber.org/zap"
)

// EnsureSchema creates the indexes every collection relies on. Index
// creation is idempotent, so restarting against an existing database is
// safe.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return indexes.EnsureAll(ctx, deps.TeamifyMongoDatabase)
}
