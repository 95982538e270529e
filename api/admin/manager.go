package admin

import (
	"atelier_server/api/middleware"
	"atelier_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AdminRoutesManager struct {
	logger         *gecho.Logger
	catalogService *services.CatalogService
	mw             *middleware.Middleware
}

func NewAdminRoutesManager(
	logger *gecho.Logger,
	catalogService *services.CatalogService,
	mw *middleware.Middleware,
) *AdminRoutesManager {
	return &AdminRoutesManager{
		logger:         logger,
		catalogService: catalogService,
		mw:             mw,
	}
}

func (arm *AdminRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(arm.mw.UserAuthMiddleware)
		r.Use(arm.mw.AdminAuthMiddleware)

		// Mutating routes behind CSRF
		r.Group(func(r chi.Router) {
			r.Use(arm.mw.CSRFMiddleware())

			r.Post("/issues", arm.CreateIssue)
			r.Patch("/issues/{id}", arm.UpdateIssue)
			r.Delete("/issues/{id}", arm.DeactivateIssue)

			r.Post("/quality-tiers", arm.CreateQualityTier)
			r.Patch("/quality-tiers/{id}", arm.UpdateQualityTier)
			r.Delete("/quality-tiers/{id}", arm.DeleteQualityTier)

			r.Post("/parts", arm.CreatePart)
			r.Patch("/parts/{id}", arm.UpdatePart)

			r.Post("/service-pricing", arm.CreateServicePricing)
		})
	})
}
