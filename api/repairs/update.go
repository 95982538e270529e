package repairs

import (
	"atelier_server/lib"
	"atelier_server/structs"
	"errors"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (rrm *RepairRoutesManager) UpdateRepair(w http.ResponseWriter, r *http.Request) {
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

	body, err := lib.ExtractAndValidateBody[structs.UpdateRepairRequest](r)
	if err != nil {
		rrm.logger.Warn("Failed to extract and validate request body", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("error.repair.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	repair, err := rrm.repairService.UpdateRepairFromRequest(ctx, id, body)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.repair.notFound"),
				gecho.Send(),
			)
			return
		}

		var validationErr *lib.ValidationError
		if errors.As(err, &validationErr) {
			gecho.BadRequest(w,
				gecho.WithMessage("error.repair.invalidIssues"),
				gecho.WithData(validationErr),
				gecho.Send(),
			)
			return
		}

		rrm.logger.Error("Failed to update repair", gecho.Field("error", err), gecho.Field("repair_id", id))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.repair.updateFailed"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.repair.updated"),
		gecho.WithData(repair),
		gecho.Send(),
	)
}
