package catalog

import (
	"atelier_server/structs/tables"
	"net/http"
	"strconv"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ListParts handles GET /catalog/parts with an optional product model filter
func (crm *CatalogRoutesManager) ListParts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var productModelId *uuid.UUID
	if raw := r.URL.Query().Get("product_model_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			gecho.BadRequest(w,
				gecho.WithMessage("error.catalog.invalidProductModelId"),
				gecho.Send(),
			)
			return
		}
		productModelId = &id
	}

	parts, err := crm.catalogService.GetParts(ctx, productModelId)
	if err != nil {
		crm.logger.Error("Failed to list parts", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.catalog.partsListFailed"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"parts": parts,
			"count": len(parts),
		}),
		gecho.Send(),
	)
}

// ListQualityTiers handles GET /catalog/parts/{id}/quality-tiers
func (crm *CatalogRoutesManager) ListQualityTiers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	idStr := chi.URLParam(r, "id")
	partId, err := uuid.Parse(idStr)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.catalog.invalidPartId"),
			gecho.Send(),
		)
		return
	}

	var tiers []tables.PartQualityTier
	if inStock, _ := strconv.ParseBool(r.URL.Query().Get("in_stock")); inStock {
		tiers, err = crm.catalogService.GetInStockQualityTiersForPart(ctx, partId)
	} else {
		tiers, err = crm.catalogService.GetQualityTiersForPart(ctx, partId)
	}
	if err != nil {
		crm.logger.Error("Failed to list quality tiers", gecho.Field("error", err), gecho.Field("part_id", partId))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.catalog.qualityTiersListFailed"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"quality_tiers": tiers,
			"count":         len(tiers),
		}),
		gecho.Send(),
	)
}
