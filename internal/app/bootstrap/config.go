// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// devTokenKey is the out-of-the-box signing key. Fine for local
// development, refused in prod.
const devTokenKey = "dev-only-change-me-please-0123456789ABCDEF"

// appConfigKeys defines the configuration keys for Teamify.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, token_key, etc.
//   - Environment variables: TEAMIFY_MONGO_URI, TEAMIFY_TOKEN_KEY, etc.
//   - Command-line flags: --mongo_uri, --token_key, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "teamify", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Bearer tokens
	{Name: "token_key", Default: devTokenKey, Desc: "JWT signing key (must be strong in production)"},
	{Name: "token_expiry", Default: "720h", Desc: "JWT lifetime (e.g., 720h, 24h)"},

	// CORS for the SPA frontend
	{Name: "cors_origins", Default: "http://localhost:5173", Desc: "Comma-separated list of allowed CORS origins"},

	// Notification outbox
	{Name: "notify_retry_interval", Default: "30s", Desc: "Retry interval for queued notifications"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, TEAMIFY_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "TEAMIFY", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		TokenKey:    appValues.String("token_key"),
		TokenExpiry: appValues.Duration("token_expiry", 720*time.Hour),

		CORSOrigins: splitOrigins(appValues.String("cors_origins")),

		NotifyRetryInterval: appValues.Duration("notify_retry_interval", 30*time.Second),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Teamify validates the MongoDB URI format to catch configuration
// errors early, and refuses to start in prod with the development
// token key.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if coreCfg.Env == "prod" && appCfg.TokenKey == devTokenKey {
		return fmt.Errorf("token_key must be set to a strong value in prod")
	}
	if appCfg.TokenExpiry <= 0 {
		return fmt.Errorf("token_expiry must be positive")
	}
	if appCfg.NotifyRetryInterval <= 0 {
		return fmt.Errorf("notify_retry_interval must be positive")
	}

	return nil
}

// splitOrigins parses the comma-separated cors_origins value.
func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
