package repairs

import (
	"atelier_server/lib"
	"errors"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (rrm *RepairRoutesManager) GetRepair(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.repair.invalidRepairId"),
			gecho.Send(),
		)
		return
	}

	repair, err := rrm.repairService.GetRepairByID(ctx, id)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.repair.notFound"),
				gecho.Send(),
			)
			return
		}

		rrm.logger.Error("Failed to fetch repair", gecho.Field("error", err), gecho.Field("repair_id", id))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.repair.fetchFailed"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(repair),
		gecho.Send(),
	)
}

func (rrm *RepairRoutesManager) GetRepairByUid(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	uid := chi.URLParam(r, "uid")
	if uid == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("error.repair.invalidRepairUid"),
			gecho.Send(),
		)
		return
	}

	repair, err := rrm.repairService.GetRepairByUid(ctx, uid)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.repair.notFound"),
				gecho.Send(),
			)
			return
		}

		rrm.logger.Error("Failed to fetch repair by uid", gecho.Field("error", err), gecho.Field("uid", uid))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.repair.fetchFailed"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(repair),
		gecho.Send(),
	)
}

// GetRepairIssues returns the repair's issue lines with resolved prices
func (rrm *RepairRoutesManager) GetRepairIssues(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.repair.invalidRepairId"),
			gecho.Send(),
		)
		return
	}

	lines, err := rrm.repairService.GetRepairIssues(ctx, id)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.repair.notFound"),
				gecho.Send(),
			)
			return
		}

		rrm.logger.Error("Failed to fetch repair issues", gecho.Field("error", err), gecho.Field("repair_id", id))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.repair.fetchFailed"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"issues": lines,
			"count":  len(lines),
		}),
		gecho.Send(),
	)
}
