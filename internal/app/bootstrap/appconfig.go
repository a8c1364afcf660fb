// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (HTTP/HTTPS
// ports, TLS, logging level and format, request body size limits);
// AppConfig is everything specific to Teamify. Values come from
// environment variables (TEAMIFY_*), configuration files, or
// command-line flags, loaded in LoadConfig.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Bearer token configuration
	TokenKey    string        // HS256 signing key (must be strong in production)
	TokenExpiry time.Duration // Token lifetime (e.g., 720h for 30 days)

	// CORS configuration for the SPA frontend
	CORSOrigins []string // Allowed origins (e.g., http://localhost:5173)

	// Notification outbox configuration
	NotifyRetryInterval time.Duration // How often queued notifications are retried
}
