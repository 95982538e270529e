package repairs

import (
	"atelier_server/lib"
	"errors"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// GetDevicePassword returns the device unlock code recorded at intake so a
// technician can open the device on the bench.
func (rrm *RepairRoutesManager) GetDevicePassword(w http.ResponseWriter, r *http.Request) {
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

	password, err := rrm.repairService.GetDevicePassword(ctx, id)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.repair.notFound"),
				gecho.Send(),
			)
			return
		}

		rrm.logger.Error("Failed to read device password", gecho.Field("error", err), gecho.Field("repair_id", id))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.repair.fetchFailed"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"device_password": password,
		}),
		gecho.Send(),
	)
}
