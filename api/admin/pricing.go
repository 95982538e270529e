package admin

import (
	"atelier_server/lib"
	"atelier_server/structs/tables"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (arm *AdminRoutesManager) CreateServicePricing(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[tables.ServicePricing](r)
	if err != nil {
		arm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("error.servicePricing.checkPricingInformation"), gecho.WithData(err), gecho.Send())
		return
	}

	newPricing, err := arm.catalogService.CreateServicePricing(r.Context(), body)
	if err != nil {
		if lib.IsUniqueViolation(err) {
			gecho.Conflict(w, gecho.WithMessage("error.servicePricing.alreadyExists"), gecho.Send())
			return
		}
		arm.logger.Error("Failed to create service pricing", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("error.servicePricing.creationFailed"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.servicePricing.created"),
		gecho.WithData(newPricing),
		gecho.Send(),
	)
}
