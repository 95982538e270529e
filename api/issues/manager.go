package issues

import (
	"atelier_server/api/middleware"
	"atelier_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type IssueRoutesManager struct {
	logger         *gecho.Logger
	catalogService *services.CatalogService
	mw             *middleware.Middleware
}

func NewIssueRoutesManager(
	logger *gecho.Logger,
	catalogService *services.CatalogService,
	mw *middleware.Middleware,
) *IssueRoutesManager {
	return &IssueRoutesManager{
		logger:         logger,
		catalogService: catalogService,
		mw:             mw,
	}
}

func (irm *IssueRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/issues", func(r chi.Router) {
		r.Use(irm.mw.UserAuthMiddleware)
		r.Get("/", irm.ListIssues)
		r.Get("/{id}", irm.GetIssue)
		r.Get("/{id}/pricing-options", irm.GetPricingOptions)
	})
}
