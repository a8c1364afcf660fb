// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rvetrivignesh/teamify/internal/app/features/accounts"
	"github.com/rvetrivignesh/teamify/internal/app/features/apierrors"
	collaborationfeature "github.com/rvetrivignesh/teamify/internal/app/features/collaboration"
	healthfeature "github.com/rvetrivignesh/teamify/internal/app/features/health"
	notificationsfeature "github.com/rvetrivignesh/teamify/internal/app/features/notifications"
	profilefeature "github.com/rvetrivignesh/teamify/internal/app/features/profile"
	projectsfeature "github.com/rvetrivignesh/teamify/internal/app/features/projects"
	searchfeature "github.com/rvetrivignesh/teamify/internal/app/features/search"
	notificationstore "github.com/rvetrivignesh/teamify/internal/app/store/notifications"
	profilestore "github.com/rvetrivignesh/teamify/internal/app/store/profiles"
	projectstore "github.com/rvetrivignesh/teamify/internal/app/store/projects"
	requeststore "github.com/rvetrivignesh/teamify/internal/app/store/requests"
	userstore "github.com/rvetrivignesh/teamify/internal/app/store/users"
	"github.com/rvetrivignesh/teamify/internal/app/system/auth"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this
// WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and the Startup hook have completed. The layout:
//   - /health is public (load balancers and orchestrators)
//   - /api/auth is public (register and login issue the tokens)
//   - everything else under /api requires a bearer token
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.TeamifyMongoDatabase

	// Stores, one per collection.
	users := userstore.New(db)
	profiles := profilestore.New(db)
	projects := projectstore.New(db)
	requests := requeststore.New(db)
	notifications := notificationstore.New(db)

	// Bearer-token auth. The fetcher loads fresh user data on each
	// request so renames and deleted accounts take effect immediately.
	tokens := auth.NewTokenManager(appCfg.TokenKey, appCfg.TokenExpiry)
	authMW := auth.NewMiddleware(tokens, userstore.NewFetcher(db), logger)

	// Error logger for handlers.
	errLog := apierrors.NewErrorLogger(logger)

	r := chi.NewRouter()

	// The SPA frontend runs on a different origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   appCfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Health check endpoint for load balancers and orchestrators.
	healthHandler := healthfeature.NewHandler(deps.TeamifyMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Route("/api", func(api chi.Router) {
		// Registration and login are the only unauthenticated API routes.
		accountsHandler := accounts.NewHandler(users, tokens, errLog, logger)
		api.Mount("/auth", accounts.Routes(accountsHandler))

		// Everything else requires a valid bearer token.
		api.Group(func(priv chi.Router) {
			priv.Use(authMW.RequireSignedIn)

			projectsHandler := projectsfeature.NewHandler(projects, users, profiles, requests, notifier, errLog, logger)
			priv.Mount("/projects", projectsfeature.Routes(projectsHandler))

			collaborationHandler := collaborationfeature.NewHandler(requests, projects, users, notifier, errLog, logger)
			priv.Mount("/collaboration", collaborationfeature.Routes(collaborationHandler))

			notificationsHandler := notificationsfeature.NewHandler(notifications, errLog, logger)
			priv.Mount("/notifications", notificationsfeature.Routes(notificationsHandler))

			profileHandler := profilefeature.NewHandler(profiles, users, errLog, logger)
			priv.Mount("/profile", profilefeature.Routes(profileHandler))

			searchHandler := searchfeature.NewHandler(projects, users, errLog, logger)
			priv.Mount("/search", searchfeature.Routes(searchHandler))
		})
	})

	return r, nil
}
