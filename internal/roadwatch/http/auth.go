package http

import (
	"net/http"

	"github.com/roadwatch/roadwatch/internal/roadwatch/service"
	"github.com/roadwatch/roadwatch/pkg/httpx"
	"github.com/roadwatch/roadwatch/pkg/roadwatchsdk"
)

type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleLogin godoc
//
//	@Summary		Log in with email and password
//	@Description	Opens a session. Failed attempts count towards the lockout threshold.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		roadwatchsdk.LoginRequest		true	"Credentials"
//	@Success		200		{object}	roadwatchsdk.SessionResponse
//	@Failure		400		{object}	roadwatchsdk.ErrorResponse
//	@Failure		401		{object}	roadwatchsdk.ErrorResponse	"invalid_credentials"
//	@Failure		403		{object}	roadwatchsdk.ErrorResponse	"account_locked"
//	@Failure		429		{object}	roadwatchsdk.ErrorResponse
//	@Router			/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req roadwatchsdk.LoginRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		badRequest(w, "email and password are required")
		return
	}

	acc, sess, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err, "log in")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sessionResponse(acc, sess))
}

// HandleRegister godoc
//
//	@Summary		Register a local account
//	@Description	idRole is ignored; new accounts start as UTILISATEUR.
//	@Tags			Auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		roadwatchsdk.RegisterRequest	true	"Account"
//	@Success	201		{object}	roadwatchsdk.AccountInfo
//	@Failure	400		{object}	roadwatchsdk.ErrorResponse
//	@Failure	409		{object}	roadwatchsdk.ErrorResponse	"email or username taken"
//	@Router		/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req roadwatchsdk.RegisterRequest
	if !decode(w, r, &req) {
		return
	}

	// Self-registration always gets the default role; managers assign
	// roles through /api/utilisateurs.
	acc, err := h.AuthService.Register(r.Context(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, r, err, "register account")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, accountInfo(acc))
}

// HandleFirebaseLogin godoc
//
//	@Summary		Log in with an identity provider ID token
//	@Description	Creates the account on first use. A rejected token counts as a failed attempt for the email it names.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		roadwatchsdk.FirebaseRequest	true	"ID token"
//	@Success		200		{object}	roadwatchsdk.SessionResponse
//	@Failure		401		{object}	roadwatchsdk.ErrorResponse	"invalid_token"
//	@Failure		403		{object}	roadwatchsdk.ErrorResponse	"account_locked"
//	@Router			/auth/firebase-login [post].
func (h *AuthHandler) HandleFirebaseLogin(w http.ResponseWriter, r *http.Request) {
	var req roadwatchsdk.FirebaseRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Token == "" {
		badRequest(w, "token is required")
		return
	}

	acc, sess, err := h.AuthService.FederatedLogin(r.Context(), req.Token)
	if err != nil {
		writeError(w, r, err, "log in")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sessionResponse(acc, sess))
}

// HandleFirebaseRegister godoc
//
//	@Summary	Register an account from an identity provider ID token
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		roadwatchsdk.FirebaseRequest	true	"ID token"
//	@Success	201		{object}	roadwatchsdk.AccountInfo
//	@Failure	401		{object}	roadwatchsdk.ErrorResponse	"invalid_token"
//	@Failure	409		{object}	roadwatchsdk.ErrorResponse	"account already exists"
//	@Router		/auth/firebase-register [post].
func (h *AuthHandler) HandleFirebaseRegister(w http.ResponseWriter, r *http.Request) {
	var req roadwatchsdk.FirebaseRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Token == "" {
		badRequest(w, "token is required")
		return
	}

	acc, err := h.AuthService.FederatedRegister(r.Context(), req.Token)
	if err != nil {
		writeError(w, r, err, "register account")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, accountInfo(acc))
}

// HandleLogout godoc
//
//	@Summary	End the current session
//	@Tags		Auth
//	@Success	204
//	@Failure	401	{object}	roadwatchsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.AuthService.Logout(r.Context(), principal(r).Token); err != nil {
		writeError(w, r, err, "log out")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleLogoutAll godoc
//
//	@Summary	End every session of the current account
//	@Tags		Auth
//	@Produce	json
//	@Success	200	{object}	roadwatchsdk.LogoutAllResponse
//	@Failure	401	{object}	roadwatchsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/auth/logout-all [post].
func (h *AuthHandler) HandleLogoutAll(w http.ResponseWriter, r *http.Request) {
	n, err := h.AuthService.LogoutAll(r.Context(), principal(r).AccountID)
	if err != nil {
		writeError(w, r, err, "log out")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, roadwatchsdk.LogoutAllResponse{Revoked: n})
}

// HandleMe godoc
//
//	@Summary	Current account and role
//	@Tags		Auth
//	@Produce	json
//	@Success	200	{object}	roadwatchsdk.MeResponse
//	@Failure	401	{object}	roadwatchsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	acc, role, err := h.AuthService.Me(r.Context(), principal(r).AccountID)
	if err != nil {
		writeError(w, r, err, "load account")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, roadwatchsdk.MeResponse{
		Account: accountInfo(acc),
		Role:    roleInfo(role),
	})
}
