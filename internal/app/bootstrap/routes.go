// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	authfeature "github.com/ngoworks/programhub/internal/app/features/auth"
	healthfeature "github.com/ngoworks/programhub/internal/app/features/health"
	programsfeature "github.com/ngoworks/programhub/internal/app/features/programs"
	volunteersfeature "github.com/ngoworks/programhub/internal/app/features/volunteers"
	accountstore "github.com/ngoworks/programhub/internal/app/store/accounts"
	recordstore "github.com/ngoworks/programhub/internal/app/store/records"
	volunteerstore "github.com/ngoworks/programhub/internal/app/store/volunteers"
	"github.com/ngoworks/programhub/internal/app/system/token"
	"github.com/ngoworks/programhub/internal/domain/catalog"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. The router mounts health, account and
// volunteer endpoints plus one record feature per catalog category; the
// same handler code serves every category, parameterized by its catalog
// entry.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	issuer, err := token.NewIssuer(appCfg.TokenSecret, appCfg.TokenTTL)
	if err != nil {
		logger.Error("token issuer init failed", zap.Error(err))
		return nil, err
	}

	db := deps.MongoDatabase

	r := chi.NewRouter()

	healthfeature.MountRoutes(r, healthfeature.NewHandler(deps.MongoClient, logger))
	authfeature.MountRoutes(r, authfeature.NewHandler(accountstore.New(db), issuer, logger))
	volunteersfeature.MountRoutes(r, volunteersfeature.NewHandler(volunteerstore.New(db, appCfg.VolunteerSource), logger))

	for _, cat := range catalog.All() {
		h := programsfeature.NewHandler(recordstore.New(db, cat), logger)
		r.Route(cat.Mount, func(r chi.Router) {
			programsfeature.MountRoutes(r, h)
		})
	}

	return r, nil
}
