package repairs

import (
	"atelier_server/api/middleware"
	"atelier_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type RepairRoutesManager struct {
	logger        *gecho.Logger
	repairService *services.RepairService
	mw            *middleware.Middleware
}

func NewRepairRoutesManager(
	logger *gecho.Logger,
	repairService *services.RepairService,
	mw *middleware.Middleware,
) *RepairRoutesManager {
	return &RepairRoutesManager{
		logger:        logger,
		repairService: repairService,
		mw:            mw,
	}
}

func (rrm *RepairRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/repairs", func(r chi.Router) {
		r.Use(rrm.mw.UserAuthMiddleware)
		r.Get("/", rrm.ListRepairs)
		r.Get("/uid/{uid}", rrm.GetRepairByUid)
		r.Get("/{id}", rrm.GetRepair)
		r.Get("/{id}/issues", rrm.GetRepairIssues)
		r.Get("/{id}/device-password", rrm.GetDevicePassword)

		r.Group(func(r chi.Router) {
			r.Use(rrm.mw.CSRFMiddleware())
			r.Post("/", rrm.CreateRepair)
			r.Patch("/{id}", rrm.UpdateRepair)
			r.Delete("/{id}", rrm.DeleteRepair)
		})
	})
}
