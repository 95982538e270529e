package admin

import (
	"atelier_server/lib"
	"atelier_server/structs"
	"errors"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type UpdatePartRequest struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,min=2,max=150"`
	Availability  *string `json:"availability,omitempty" validate:"omitempty,oneof=in_stock low_stock out_of_stock discontinued"`
	StockQuantity *int    `json:"stock_quantity,omitempty" validate:"omitempty,gte=0"`
}

func (arm *AdminRoutesManager) CreatePart(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.CreatePartRequest](r)
	if err != nil {
		arm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("error.parts.checkPartInformation"), gecho.WithData(err), gecho.Send())
		return
	}

	part, err := arm.catalogService.CreatePart(r.Context(), body)
	if err != nil {
		// Reference is unique across parts
		if lib.IsUniqueViolation(err) {
			gecho.Conflict(w, gecho.WithMessage("error.parts.referenceAlreadyExists"), gecho.Send())
			return
		}
		arm.logger.Error("Failed to create part", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("error.parts.creationFailed"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.parts.created"),
		gecho.WithData(part),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) UpdatePart(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("error.parts.invalidPartId"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[UpdatePartRequest](r)
	if err != nil {
		arm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("error.parts.checkPartInformation"), gecho.WithData(err), gecho.Send())
		return
	}

	updates := make(map[string]any)
	if body.Name != nil {
		updates["name"] = *body.Name
	}
	if body.Availability != nil {
		updates["availability"] = *body.Availability
	}
	if body.StockQuantity != nil {
		updates["stock_quantity"] = *body.StockQuantity
	}

	if len(updates) == 0 {
		gecho.BadRequest(w, gecho.WithMessage("error.parts.nothingToUpdate"), gecho.Send())
		return
	}

	part, err := arm.catalogService.UpdatePart(r.Context(), id, updates)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("error.parts.notFound"), gecho.Send())
			return
		}
		arm.logger.Error("Failed to update part", gecho.Field("error", err), gecho.Field("part_id", id))
		gecho.InternalServerError(w, gecho.WithMessage("error.parts.updateFailed"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.parts.updated"),
		gecho.WithData(part),
		gecho.Send(),
	)
}
