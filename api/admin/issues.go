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

type UpdateIssueRequest struct {
	Name                   *string    `json:"name,omitempty" validate:"omitempty,min=2,max=150"`
	CategoryType           *string    `json:"category_type,omitempty" validate:"omitempty,oneof=part_based service_based"`
	Complexity             *string    `json:"complexity,omitempty" validate:"omitempty,oneof=low medium high critical"`
	DescriptionFr          *string    `json:"description_fr,omitempty" validate:"omitempty,max=1000"`
	DescriptionEn          *string    `json:"description_en,omitempty" validate:"omitempty,max=1000"`
	BasePriceCents         *int64     `json:"base_price_cents,omitempty" validate:"omitempty,gte=0"`
	AssociatedPartId       *uuid.UUID `json:"associated_part_id,omitempty"`
	EstimatedDurationHours *float64   `json:"estimated_duration_hours,omitempty" validate:"omitempty,gte=0"`
	WarrantyDays           *int       `json:"warranty_days,omitempty" validate:"omitempty,gte=0"`
	IsActive               *bool      `json:"is_active,omitempty"`

	// Replaces the full device type set when present
	DeviceTypeIds *[]uuid.UUID `json:"device_type_ids,omitempty"`
}

func (arm *AdminRoutesManager) CreateIssue(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[tables.Issue](r)
	if err != nil {
		arm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("error.issues.checkIssueInformation"), gecho.WithData(err), gecho.Send())
		return
	}

	newIssue, err := arm.catalogService.CreateIssue(r.Context(), body)
	if err != nil {
		if lib.IsUniqueViolation(err) {
			gecho.Conflict(w, gecho.WithMessage("error.issues.alreadyExists"), gecho.Send())
			return
		}
		arm.logger.Error("Failed to create issue", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("error.issues.creationFailed"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.issues.created"),
		gecho.WithData(newIssue),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) UpdateIssue(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("error.issues.invalidIssueId"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[UpdateIssueRequest](r)
	if err != nil {
		arm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("error.issues.checkIssueInformation"), gecho.WithData(err), gecho.Send())
		return
	}

	updates := make(map[string]any)
	if body.Name != nil {
		updates["name"] = *body.Name
	}
	if body.CategoryType != nil {
		updates["category_type"] = *body.CategoryType
	}
	if body.Complexity != nil {
		updates["complexity"] = *body.Complexity
	}
	if body.DescriptionFr != nil {
		updates["description_fr"] = *body.DescriptionFr
	}
	if body.DescriptionEn != nil {
		updates["description_en"] = *body.DescriptionEn
	}
	if body.BasePriceCents != nil {
		updates["base_price_cents"] = *body.BasePriceCents
	}
	if body.AssociatedPartId != nil {
		updates["associated_part_id"] = *body.AssociatedPartId
	}
	if body.EstimatedDurationHours != nil {
		updates["estimated_duration_hours"] = *body.EstimatedDurationHours
	}
	if body.WarrantyDays != nil {
		updates["warranty_days"] = *body.WarrantyDays
	}
	if body.IsActive != nil {
		updates["is_active"] = *body.IsActive
	}

	if len(updates) == 0 && body.DeviceTypeIds == nil {
		gecho.BadRequest(w, gecho.WithMessage("error.issues.nothingToUpdate"), gecho.Send())
		return
	}

	if body.DeviceTypeIds != nil {
		if err := arm.catalogService.SetIssueDeviceTypes(r.Context(), id, *body.DeviceTypeIds); err != nil {
			if errors.Is(err, lib.ErrNotFound) {
				gecho.NotFound(w, gecho.WithMessage("error.issues.notFound"), gecho.Send())
				return
			}
			arm.logger.Error("Failed to set issue device types", gecho.Field("error", err), gecho.Field("issue_id", id))
			gecho.InternalServerError(w, gecho.WithMessage("error.issues.updateFailed"), gecho.Send())
			return
		}
	}

	var issue *tables.Issue
	if len(updates) > 0 {
		issue, err = arm.catalogService.UpdateIssue(r.Context(), id, updates)
	} else {
		issue, err = arm.catalogService.GetIssueByID(r.Context(), id)
	}
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("error.issues.notFound"), gecho.Send())
			return
		}
		arm.logger.Error("Failed to update issue", gecho.Field("error", err), gecho.Field("issue_id", id))
		gecho.InternalServerError(w, gecho.WithMessage("error.issues.updateFailed"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.issues.updated"),
		gecho.WithData(issue),
		gecho.Send(),
	)
}

// DeactivateIssue soft-deletes an issue so existing repairs keep their lines
func (arm *AdminRoutesManager) DeactivateIssue(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("error.issues.invalidIssueId"), gecho.Send())
		return
	}

	if err := arm.catalogService.DeactivateIssue(r.Context(), id); err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("error.issues.notFound"), gecho.Send())
			return
		}
		arm.logger.Error("Failed to deactivate issue", gecho.Field("error", err), gecho.Field("issue_id", id))
		gecho.InternalServerError(w, gecho.WithMessage("error.issues.deactivationFailed"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.issues.deactivated"),
		gecho.Send(),
	)
}
