package repairs

import (
	"atelier_server/lib"
	"atelier_server/structs"
	"errors"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (rrm *RepairRoutesManager) CreateRepair(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := lib.ExtractAndValidateBody[structs.CreateRepairRequest](r)
	if err != nil {
		rrm.logger.Warn("Failed to extract and validate request body", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("error.repair.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	repair, err := rrm.repairService.CreateRepairFromRequest(ctx, body)
	if err != nil {
		var validationErr *lib.ValidationError
		if errors.As(err, &validationErr) {
			gecho.BadRequest(w,
				gecho.WithMessage("error.repair.invalidIssues"),
				gecho.WithData(validationErr),
				gecho.Send(),
			)
			return
		}

		rrm.logger.Error("Failed to create repair", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.repair.creationFailed"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.repair.created"),
		gecho.WithData(map[string]any{
			"repair":      repair,
			"uid":         repair.Uid,
			"price_cents": repair.PriceCents,
		}),
		gecho.Send(),
	)
}
