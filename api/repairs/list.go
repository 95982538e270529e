package repairs

import (
	"atelier_server/handling"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// ListRepairs handles GET /repairs with filtering, pagination, and sorting
func (rrm *RepairRoutesManager) ListRepairs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	opts, err := handling.ParseRepairListOptions(r)
	if err != nil {
		rrm.logger.Warn("Invalid query parameters", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("error.invalidQueryParameters"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	result, err := rrm.repairService.ListRepairs(ctx, opts)
	if err != nil {
		rrm.logger.Error("Failed to list repairs", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.repair.listFailed"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"repairs":    result.Data,
			"pagination": result.Pagination,
			"meta": map[string]any{
				"count": len(result.Data),
			},
		}),
		gecho.Send(),
	)
}
