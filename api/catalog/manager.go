package catalog

import (
	"atelier_server/api/middleware"
	"atelier_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type CatalogRoutesManager struct {
	logger         *gecho.Logger
	catalogService *services.CatalogService
	mw             *middleware.Middleware
}

func NewCatalogRoutesManager(
	logger *gecho.Logger,
	catalogService *services.CatalogService,
	mw *middleware.Middleware,
) *CatalogRoutesManager {
	return &CatalogRoutesManager{
		logger:         logger,
		catalogService: catalogService,
		mw:             mw,
	}
}

func (crm *CatalogRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/catalog", func(r chi.Router) {
		r.Use(crm.mw.UserAuthMiddleware)
		r.Get("/parts", crm.ListParts)
		r.Get("/parts/{id}/quality-tiers", crm.ListQualityTiers)
		r.Get("/models", crm.ListProductModels)
		r.Get("/brands", crm.ListBrands)
		r.Get("/device-types", crm.ListDeviceTypes)
	})
}
