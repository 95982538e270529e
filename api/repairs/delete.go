package repairs

import (
	"atelier_server/lib"
	"errors"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (rrm *RepairRoutesManager) DeleteRepair(w http.ResponseWriter, r *http.Request) {
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

	if err := rrm.repairService.DeleteRepair(ctx, id); err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.repair.notFound"),
				gecho.Send(),
			)
			return
		}

		rrm.logger.Error("Failed to delete repair", gecho.Field("error", err), gecho.Field("repair_id", id))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.repair.deleteFailed"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.repair.deleted"),
		gecho.Send(),
	)
}
