package admin

import (
	"atelier_server/lib"
	"atelier_server/structs/tables"
	"errors"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type UpdateQualityTierRequest struct {
	Tier          *string `json:"tier,omitempty" validate:"omitempty,oneof=standard premium original refurbished"`
	PriceCents    *int64  `json:"price_cents,omitempty" validate:"omitempty,gte=0"`
	SupplierCents *int64  `json:"supplier_cents,omitempty" validate:"omitempty,gte=0"`
	WarrantyDays  *int    `json:"warranty_days,omitempty" validate:"omitempty,gte=0"`
	DescriptionFr *string `json:"description_fr,omitempty" validate:"omitempty,max=1000"`
	DescriptionEn *string `json:"description_en,omitempty" validate:"omitempty,max=1000"`
	Availability  *string `json:"availability,omitempty" validate:"omitempty,oneof=in_stock low_stock out_of_stock discontinued"`
}

func (arm *AdminRoutesManager) CreateQualityTier(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[tables.PartQualityTier](r)
	if err != nil {
		arm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("error.qualityTiers.checkTierInformation"), gecho.WithData(err), gecho.Send())
		return
	}

	newTier, err := arm.catalogService.CreateQualityTier(r.Context(), body)
	if err != nil {
		// One row per (part, tier) pair
		if lib.IsUniqueViolation(err) {
			gecho.Conflict(w, gecho.WithMessage("error.qualityTiers.alreadyExists"), gecho.Send())
			return
		}
		arm.logger.Error("Failed to create quality tier", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("error.qualityTiers.creationFailed"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.qualityTiers.created"),
		gecho.WithData(newTier),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) UpdateQualityTier(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("error.qualityTiers.invalidTierId"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[UpdateQualityTierRequest](r)
	if err != nil {
		arm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("error.qualityTiers.checkTierInformation"), gecho.WithData(err), gecho.Send())
		return
	}

	updates := make(map[string]any)
	if body.Tier != nil {
		updates["tier"] = *body.Tier
	}
	if body.PriceCents != nil {
		updates["price_cents"] = *body.PriceCents
	}
	if body.SupplierCents != nil {
		updates["supplier_cents"] = *body.SupplierCents
	}
	if body.WarrantyDays != nil {
		updates["warranty_days"] = *body.WarrantyDays
	}
	if body.DescriptionFr != nil {
		updates["description_fr"] = *body.DescriptionFr
	}
	if body.DescriptionEn != nil {
		updates["description_en"] = *body.DescriptionEn
	}
	if body.Availability != nil {
		updates["availability"] = *body.Availability
	}

	if len(updates) == 0 {
		gecho.BadRequest(w, gecho.WithMessage("error.qualityTiers.nothingToUpdate"), gecho.Send())
		return
	}

	tier, err := arm.catalogService.UpdateQualityTier(r.Context(), id, updates)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("error.qualityTiers.notFound"), gecho.Send())
			return
		}
		if lib.IsUniqueViolation(err) {
			gecho.Conflict(w, gecho.WithMessage("error.qualityTiers.alreadyExists"), gecho.Send())
			return
		}
		arm.logger.Error("Failed to update quality tier", gecho.Field("error", err), gecho.Field("tier_id", id))
		gecho.InternalServerError(w, gecho.WithMessage("error.qualityTiers.updateFailed"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.qualityTiers.updated"),
		gecho.WithData(tier),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) DeleteQualityTier(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("error.qualityTiers.invalidTierId"), gecho.Send())
		return
	}

	if err := arm.catalogService.DeleteQualityTier(r.Context(), id); err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("error.qualityTiers.notFound"), gecho.Send())
			return
		}
		arm.logger.Error("Failed to delete quality tier", gecho.Field("error", err), gecho.Field("tier_id", id))
		gecho.InternalServerError(w, gecho.WithMessage("error.qualityTiers.deleteFailed"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.qualityTiers.deleted"),
		gecho.Send(),
	)
}
