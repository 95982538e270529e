package issues

import (
	"atelier_server/lib"
	"errors"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (irm *IssueRoutesManager) GetIssue(w http.ResponseWriter, r *http.Request) {
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

	issue, err := irm.catalogService.GetIssueByID(ctx, id)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.issues.notFound"),
				gecho.Send(),
			)
			return
		}

		irm.logger.Error("Failed to fetch issue", gecho.Field("error", err), gecho.Field("issue_id", id))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.issues.fetchFailed"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(issue),
		gecho.Send(),
	)
}
