// file: handler/auth_handler.go

package handler

import (
	"encoding/json"
	"isidro-api/common"
	"isidro-api/logger"
	"isidro-api/model"
	"isidro-api/service"
	"net/http"
)

const refreshCookieName = "refresh_token"

// AuthHandler implements the session flow: login, refresh, logout and token
// introspection. It is stateless per request; the session "state" lives
// entirely in the bearer tokens.
type AuthHandler struct {
	authService  *service.AuthService
	tokenService *service.TokenService
	secureCookie bool
}

func NewAuthHandler(authService *service.AuthService, tokenService *service.TokenService, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		tokenService: tokenService,
		secureCookie: secureCookie,
	}
}

// LoginResponse is the login success body. The refresh token travels only in
// the HTTP-only cookie, never in the body.
type LoginResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Message     string `json:"message"`
}

// TokenResponse is the refresh success body.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Message     string `json:"message"`
}

// TokenPayload is the verify-token success body.
type TokenPayload struct {
	UserID int `json:"user_id"`
}

// Login godoc
// @Summary      Log in with email and password
// @Description  Returns a 24h access token in the body and sets a 15-day refresh token in an HttpOnly cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body model.LoginRequest true "Login credentials"
// @Success      200  {object}  LoginResponse
// @Failure      401  {object}  common.AppError "Invalid email or password"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoginRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		// Same status and message whether the email is unknown or the
		// password is wrong.
		return common.NewAppError(http.StatusUnauthorized, "Invalid email or password", nil)
	}

	accessToken, err := h.tokenService.IssueAccess(user.ID)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not issue access token", err)
	}
	refreshToken, err := h.tokenService.IssueRefresh(user.ID)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not issue refresh token", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    refreshToken,
		Path:     "/",
		MaxAge:   int(service.RefreshTokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	logger.Log.WithField("user_id", user.ID).Info("User logged in")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(LoginResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		AccessToken: accessToken,
		TokenType:   "bearer",
		Message:     "Login successful",
	})
	return nil
}

// Refresh godoc
// @Summary      Mint a new access token from a refresh token
// @Description  Accepts the refresh token in the body or the refresh_token cookie. The refresh token is not rotated.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body model.RefreshRequest false "Refresh token"
// @Success      200  {object}  TokenResponse
// @Failure      401  {object}  common.AppError "Invalid or expired refresh token"
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RefreshRequest
	// Body is optional; the cookie is the fallback.
	_ = json.NewDecoder(r.Body).Decode(&req)

	refreshToken := req.RefreshToken
	if refreshToken == "" {
		if cookie, err := r.Cookie(refreshCookieName); err == nil {
			refreshToken = cookie.Value
		}
	}
	if refreshToken == "" {
		return common.NewAppError(http.StatusUnauthorized, "Invalid or expired refresh token", nil)
	}

	userID, err := h.tokenService.VerifyRefresh(refreshToken)
	if err != nil {
		return common.NewAppError(http.StatusUnauthorized, "Invalid or expired refresh token", nil)
	}

	accessToken, err := h.tokenService.IssueAccess(userID)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not issue access token", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		Message:     "Token refreshed successfully",
	})
	return nil
}

// Logout godoc
// @Summary      Log out
// @Description  Expires the refresh_token cookie. An already-issued refresh token stays valid until its natural expiry.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /auth/logout [get]
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) *common.AppError {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Logged out successfully"})
	return nil
}

// VerifyToken godoc
// @Summary      Verify an access token
// @Description  Returns the user id embedded in a valid access token. The failure reason is never surfaced.
// @Tags         auth
// @Produce      json
// @Param        token query string true "Access token"
// @Success      200  {object}  TokenPayload
// @Failure      401  {object}  common.AppError "Invalid or expired token"
// @Router       /auth/verify-token [get]
func (h *AuthHandler) VerifyToken(w http.ResponseWriter, r *http.Request) *common.AppError {
	token := r.URL.Query().Get("token")

	userID, err := h.tokenService.VerifyAccess(token)
	if err != nil {
		return common.NewAppError(http.StatusUnauthorized, "Invalid or expired token", nil)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(TokenPayload{UserID: userID})
	return nil
}
