package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/pemda-presensi/presensi-backend-go/internal/domain/auth"
	"github.com/pemda-presensi/presensi-backend-go/internal/handler/http/response"
	"github.com/pemda-presensi/presensi-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	TokenValidation(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.AuthService
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
	}
}

// Login implements AuthHandler. The refresh token travels in an HttpOnly
// cookie, never in the JSON body.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := a.authService.Login(r.Context(), req)
	if err != nil {
		slog.Error("Login error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(resp.RefreshToken, resp.RefreshExp))
	response.Success(w, resp)
}

// RefreshToken implements AuthHandler.
func (a *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil {
		response.Unauthorized(w, "Refresh token missing")
		return
	}

	resp, err := a.authService.Refresh(r.Context(), cookie.Value)
	if err != nil {
		slog.Error("RefreshToken error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Logout implements AuthHandler. The refresh token is revoked and its
// cookie cleared.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("refresh_token"); err == nil {
		if err := a.authService.Logout(r.Context(), cookie.Value); err != nil {
			response.HandleError(w, err)
			return
		}
	}

	expired := a.jwtService.RefreshTokenCookie("", 0)
	expired.MaxAge = -1
	http.SetCookie(w, expired)
	response.SuccessWithMessage(w, "Logged out", nil)
}

// TokenValidation implements AuthHandler. It sits behind the auth
// middleware, so reaching it means the token is valid; it echoes the
// claims back.
func (a *AuthHandlerImpl) TokenValidation(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, auth.ErrTokenExpired)
		return
	}

	response.Success(w, map[string]interface{}{
		"id_pegawai":   claims["id_pegawai"],
		"nip_pegawai":  claims["nip_pegawai"],
		"nama_pegawai": claims["nama_pegawai"],
	})
}
