package catalog

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// ListProductModels handles GET /catalog/models with device type, series, and
// brand relations preloaded for display in the intake form
func (crm *CatalogRoutesManager) ListProductModels(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	models, err := crm.catalogService.GetProductModels(ctx)
	if err != nil {
		crm.logger.Error("Failed to list product models", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.catalog.modelsListFailed"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"models": models,
			"count":  len(models),
		}),
		gecho.Send(),
	)
}

func (crm *CatalogRoutesManager) ListBrands(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	brands, err := crm.catalogService.GetBrands(ctx)
	if err != nil {
		crm.logger.Error("Failed to list brands", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.catalog.brandsListFailed"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"brands": brands,
			"count":  len(brands),
		}),
		gecho.Send(),
	)
}

func (crm *CatalogRoutesManager) ListDeviceTypes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deviceTypes, err := crm.catalogService.GetDeviceTypes(ctx)
	if err != nil {
		crm.logger.Error("Failed to list device types", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.catalog.deviceTypesListFailed"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"device_types": deviceTypes,
			"count":        len(deviceTypes),
		}),
		gecho.Send(),
	)
}
