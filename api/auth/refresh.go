package auth

import (
	"atelier_server/lib"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// HandleRefresh exchanges a valid refresh token for a new token pair
func (arm *AuthRoutesManager) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	refreshToken, err := lib.GetCookieValue(lib.RefreshCookieName, r)
	if err != nil {
		arm.logger.Warn("No refresh token cookie present", gecho.Field("error", err))
		gecho.Unauthorized(w, gecho.WithMessage("error.auth.refreshTokenMissing"), gecho.Send())
		return
	}

	authResponse, err := arm.authService.RefreshAccessToken(refreshToken)
	if err != nil {
		arm.logger.Warn("Failed to refresh access token", gecho.Field("error", err))
		lib.ClearCookie(lib.AccessCookieName, w)
		lib.ClearCookie(lib.RefreshCookieName, w)
		gecho.Unauthorized(w, gecho.WithMessage("error.auth.refreshFailed"), gecho.Send())
		return
	}

	lib.SetCookie(lib.RefreshCookieName, authResponse.RefreshToken, arm.authService.GetRefreshTokenExpiration(), w)
	lib.SetCookie(lib.AccessCookieName, authResponse.AccessToken, arm.authService.GetAccessTokenExpiration(), w)

	gecho.Success(w,
		gecho.WithMessage("success.auth.tokenRefreshed"),
		gecho.WithData(authResponse.User),
		gecho.Send(),
	)
}
