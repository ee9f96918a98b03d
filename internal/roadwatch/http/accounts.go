package http

import (
	"net/http"

	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
	"github.com/roadwatch/roadwatch/internal/roadwatch/service"
	"github.com/roadwatch/roadwatch/pkg/httpx"
	"github.com/roadwatch/roadwatch/pkg/roadwatchsdk"
)

type AccountsHandler struct {
	AccountService *service.AccountService
}

func (h *AccountsHandler) writeAccounts(w http.ResponseWriter, r *http.Request, accs []domain.Account, err error) {
	if err != nil {
		writeError(w, r, err, "list accounts")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSlice(accs, accountInfo))
}

// HandleList godoc
//
//	@Summary	List accounts
//	@Tags		Accounts
//	@Produce	json
//	@Success	200	{array}		roadwatchsdk.AccountInfo
//	@Failure	401	{object}	roadwatchsdk.ErrorResponse
//	@Failure	403	{object}	roadwatchsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/utilisateurs [get].
func (h *AccountsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	accs, err := h.AccountService.List(r.Context())
	h.writeAccounts(w, r, accs, err)
}

// HandleSearch godoc
//
//	@Summary	Search accounts by username or email
//	@Tags		Accounts
//	@Produce	json
//	@Param		q	query		string	false	"Substring to match"
//	@Success	200	{array}		roadwatchsdk.AccountInfo
//	@Security	BearerAuth
//	@Router		/api/utilisateurs/search [get].
func (h *AccountsHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	accs, err := h.AccountService.Search(r.Context(), r.URL.Query().Get("q"))
	h.writeAccounts(w, r, accs, err)
}

// HandleLocked godoc
//
//	@Summary	List locked accounts
//	@Tags		Accounts
//	@Produce	json
//	@Success	200	{array}	roadwatchsdk.AccountInfo
//	@Security	BearerAuth
//	@Router		/api/utilisateurs/bloques [get].
func (h *AccountsHandler) HandleLocked(w http.ResponseWriter, r *http.Request) {
	accs, err := h.AccountService.ListByLocked(r.Context(), true)
	h.writeAccounts(w, r, accs, err)
}

// HandleUnlocked godoc
//
//	@Summary	List accounts that are not locked
//	@Tags		Accounts
//	@Produce	json
//	@Success	200	{array}	roadwatchsdk.AccountInfo
//	@Security	BearerAuth
//	@Router		/api/utilisateurs/non-bloques [get].
func (h *AccountsHandler) HandleUnlocked(w http.ResponseWriter, r *http.Request) {
	accs, err := h.AccountService.ListByLocked(r.Context(), false)
	h.writeAccounts(w, r, accs, err)
}

// HandleByRole godoc
//
//	@Summary	List accounts holding a role
//	@Tags		Accounts
//	@Produce	json
//	@Param		roleId	path	string	true	"Role ID"
//	@Success	200		{array}	roadwatchsdk.AccountInfo
//	@Security	BearerAuth
//	@Router		/api/utilisateurs/role/{roleId} [get].
func (h *AccountsHandler) HandleByRole(w http.ResponseWriter, r *http.Request) {
	accs, err := h.AccountService.ListByRole(r.Context(), r.PathValue("roleId"))
	h.writeAccounts(w, r, accs, err)
}

// HandleUsernameExists godoc
//
//	@Summary	Check whether a username is taken
//	@Tags		Accounts
//	@Produce	json
//	@Param		username	path		string	true	"Username"
//	@Success	200			{object}	roadwatchsdk.ExistsResponse
//	@Security	BearerAuth
//	@Router		/api/utilisateurs/exists/nom/{username} [get].
func (h *AccountsHandler) HandleUsernameExists(w http.ResponseWriter, r *http.Request) {
	ok, err := h.AccountService.ExistsByUsername(r.Context(), r.PathValue("username"))
	if err != nil {
		writeError(w, r, err, "check username")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, roadwatchsdk.ExistsResponse{Exists: ok})
}

// HandleEmailExists godoc
//
//	@Summary	Check whether an email is registered
//	@Tags		Accounts
//	@Produce	json
//	@Param		email	path		string	true	"Email"
//	@Success	200		{object}	roadwatchsdk.ExistsResponse
//	@Security	BearerAuth
//	@Router		/api/utilisateurs/exists/email/{email} [get].
func (h *AccountsHandler) HandleEmailExists(w http.ResponseWriter, r *http.Request) {
	ok, err := h.AccountService.ExistsByEmail(r.Context(), r.PathValue("email"))
	if err != nil {
		writeError(w, r, err, "check email")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, roadwatchsdk.ExistsResponse{Exists: ok})
}

// HandleGet godoc
//
//	@Summary	Get an account
//	@Tags		Accounts
//	@Produce	json
//	@Param		id	path		string	true	"Account ID"
//	@Success	200	{object}	roadwatchsdk.AccountInfo
//	@Failure	404	{object}	roadwatchsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/utilisateurs/{id} [get].
func (h *AccountsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	acc, err := h.AccountService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err, "load account")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, accountInfo(acc))
}

// HandleCreate godoc
//
//	@Summary	Create an account
//	@Tags		Accounts
//	@Accept		json
//	@Produce	json
//	@Param		request	body		roadwatchsdk.RegisterRequest	true	"Account"
//	@Success	201		{object}	roadwatchsdk.AccountInfo
//	@Failure	400		{object}	roadwatchsdk.ErrorResponse
//	@Failure	409		{object}	roadwatchsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/utilisateurs [post].
func (h *AccountsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req roadwatchsdk.RegisterRequest
	if !decode(w, r, &req) {
		return
	}

	acc, err := h.AccountService.Create(r.Context(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		RoleID:   req.RoleID,
	})
	if err != nil {
		writeError(w, r, err, "create account")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, accountInfo(acc))
}

// HandleUpdate godoc
//
//	@Summary	Update an account
//	@Tags		Accounts
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string							true	"Account ID"
//	@Param		request	body		roadwatchsdk.AccountUpdateRequest	true	"Fields to change"
//	@Success	200		{object}	roadwatchsdk.AccountInfo
//	@Failure	400		{object}	roadwatchsdk.ErrorResponse
//	@Failure	404		{object}	roadwatchsdk.ErrorResponse
//	@Failure	409		{object}	roadwatchsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/utilisateurs/{id} [put].
func (h *AccountsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req roadwatchsdk.AccountUpdateRequest
	if !decode(w, r, &req) {
		return
	}

	acc, err := h.AccountService.Update(r.Context(), r.PathValue("id"), service.AccountUpdate{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		RoleID:   req.RoleID,
	})
	if err != nil {
		writeError(w, r, err, "update account")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, accountInfo(acc))
}

// HandleDelete godoc
//
//	@Summary	Delete an account
//	@Tags		Accounts
//	@Param		id	path	string	true	"Account ID"
//	@Success	204
//	@Failure	404	{object}	roadwatchsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/utilisateurs/{id} [delete].
func (h *AccountsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.AccountService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err, "delete account")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleUnlock godoc
//
//	@Summary		Reset failed attempts
//	@Description	Clears the failed-attempt counter and the lock, and ends every session of the account.
//	@Tags			Accounts
//	@Produce		json
//	@Param			id	path		string	true	"Account ID"
//	@Success		200	{object}	roadwatchsdk.AccountInfo
//	@Failure		404	{object}	roadwatchsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/utilisateurs/{id}/reinitialiser-tentatives [put].
func (h *AccountsHandler) HandleUnlock(w http.ResponseWriter, r *http.Request) {
	acc, err := h.AccountService.Unlock(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err, "unlock account")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, accountInfo(acc))
}

// HandleGetByUsername godoc
//
//	@Summary	Get an account by username
//	@Tags		Accounts
//	@Produce	json
//	@Param		username	path		string	true	"Username"
//	@Success	200			{object}	roadwatchsdk.AccountInfo
//	@Failure	404			{object}	roadwatchsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/utilisateurs/nom/{username} [get].
func (h *AccountsHandler) HandleGetByUsername(w http.ResponseWriter, r *http.Request) {
	acc, err := h.AccountService.GetByUsername(r.Context(), r.PathValue("username"))
	if err != nil {
		writeError(w, r, err, "load account")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, accountInfo(acc))
}

// HandleGetByEmail godoc
//
//	@Summary	Get an account by email
//	@Tags		Accounts
//	@Produce	json
//	@Param		email	path		string	true	"Email"
//	@Success	200		{object}	roadwatchsdk.AccountInfo
//	@Failure	404		{object}	roadwatchsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/utilisateurs/email/{email} [get].
func (h *AccountsHandler) HandleGetByEmail(w http.ResponseWriter, r *http.Request) {
	acc, err := h.AccountService.GetByEmail(r.Context(), r.PathValue("email"))
	if err != nil {
		writeError(w, r, err, "load account")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, accountInfo(acc))
}
