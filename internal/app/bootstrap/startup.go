// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/rvetrivignesh/teamify/internal/app/store/notifications"
	"github.com/rvetrivignesh/teamify/internal/app/system/outbox"
	"go.uber.org/zap"
)

// notifier is the process-wide notification outbox. Created in Startup,
// handed to the feature handlers in BuildHandler, stopped in Shutdown.
var notifier *outbox.Notifier

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	notifier = outbox.NewNotifier(
		notificationstore.New(deps.TeamifyMongoDatabase),
		logger,
		appCfg.NotifyRetryInterval,
	)
	notifier.Start()
	return nil
}
