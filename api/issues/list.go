package issues

import (
	"atelier_server/handling"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// ListIssues handles GET /issues with category, activity, and search filters
func (irm *IssueRoutesManager) ListIssues(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	opts, err := handling.ParseIssueListOptions(r)
	if err != nil {
		irm.logger.Warn("Invalid query parameters", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("error.invalidQueryParameters"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	issues, err := irm.catalogService.GetIssues(ctx, opts)
	if err != nil {
		irm.logger.Error("Failed to list issues", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.issues.listFailed"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"issues": issues,
			"count":  len(issues),
		}),
		gecho.Send(),
	)
}
