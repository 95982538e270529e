package auth

import (
	"atelier_server/api/middleware"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// HandleMe returns the currently authenticated user
func (arm *AuthRoutesManager) HandleMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("error.auth.notAuthenticated"), gecho.Send())
		return
	}

	user, err := arm.authService.GetUserByID(claims.Sub)
	if err != nil {
		arm.logger.Warn("Failed to load user for /auth/me", gecho.Field("error", err), gecho.Field("user_id", claims.Sub))
		gecho.Unauthorized(w, gecho.WithMessage("error.auth.notAuthenticated"), gecho.Send())
		return
	}

	user.PasswordHash = ""

	gecho.Success(w,
		gecho.WithData(user),
		gecho.Send(),
	)
}
