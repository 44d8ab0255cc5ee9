package handler

import (
	"net/http"

	"github.com/goblog-dev/goblog/internal/api"
	"github.com/goblog-dev/goblog/internal/logger"
	"github.com/goblog-dev/goblog/internal/utils"
)

// Login verifies credentials and returns the user without the password
// field. Unknown email and wrong password are indistinguishable in the
// response. On success an HttpOnly session cookie is set; the body
// contract is unchanged for clients that ignore cookies.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body api.LoginRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	user, err := h.auth.Authenticate(body.Email, body.Password)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	token, err := h.jwt.NewToken(user)
	if err != nil {
		logger.Log.Error("failed to create session token", "user_id", user.Id, "error", err)
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Path:     "/",
		Name:     "accessToken",
		Value:    token,
		MaxAge:   int(h.cfg.JwtTTL().Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, user)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Path:     "/",
		Name:     "accessToken",
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	w.WriteHeader(http.StatusOK)
}
