package api

import (
	"atelier_server/api/admin"
	"atelier_server/api/auth"
	"atelier_server/api/catalog"
	"atelier_server/api/debug"
	"atelier_server/api/health"
	"atelier_server/api/issues"
	"atelier_server/api/middleware"
	"atelier_server/api/repairs"
	"atelier_server/services"
	"atelier_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	repairRoutes  *repairs.RepairRoutesManager
	issueRoutes   *issues.IssueRoutesManager
	catalogRoutes *catalog.CatalogRoutesManager
	healthRoutes  *health.HealthRoutesManager
	authRoutes    *auth.AuthRoutesManager
	adminRoutes   *admin.AdminRoutesManager
	debugRoutes   *debug.DebugRoutesManager
}

func NewRouterManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	mw *middleware.Middleware,
	sm *services.ServiceManager,
) *routerManager {
	return &routerManager{
		repairRoutes:  repairs.NewRepairRoutesManager(logger, sm.RepairService, mw),
		issueRoutes:   issues.NewIssueRoutesManager(logger, sm.CatalogService, mw),
		catalogRoutes: catalog.NewCatalogRoutesManager(logger, sm.CatalogService, mw),
		healthRoutes:  health.NewHealthRoutesManager(sm.HealthService),
		authRoutes:    auth.NewAuthRoutesManager(logger, sm.AuthService, sm.CacheService, cfg, mw),
		adminRoutes:   admin.NewAdminRoutesManager(logger, sm.CatalogService, mw),
		debugRoutes:   debug.NewDebugRoutesManager(sm.CacheService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.repairRoutes.RegisterRoutes(r)
	rm.issueRoutes.RegisterRoutes(r)
	rm.catalogRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
	rm.authRoutes.RegisterRoutes(r)
	rm.adminRoutes.RegisterRoutes(r)
	rm.debugRoutes.RegisterRoutes(r)
}
