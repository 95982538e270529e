package issues

import (
	"atelier_server/lib"
	"errors"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// GetPricingOptions handles GET /issues/{id}/pricing-options and returns
// the selectable quality tiers or service prices for an issue
func (irm *IssueRoutesManager) GetPricingOptions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.issues.invalidIssueId"),
			gecho.Send(),
		)
		return
	}

	options, err := irm.catalogService.GetPricingOptions(ctx, id)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.issues.notFound"),
				gecho.Send(),
			)
			return
		}

		irm.logger.Error("Failed to fetch pricing options", gecho.Field("error", err), gecho.Field("issue_id", id))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.issues.pricingOptionsFailed"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(options),
		gecho.Send(),
	)
}
