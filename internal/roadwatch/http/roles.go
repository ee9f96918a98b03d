package http

import (
	"net/http"

	"github.com/roadwatch/roadwatch/internal/roadwatch/service"
	"github.com/roadwatch/roadwatch/pkg/httpx"
	"github.com/roadwatch/roadwatch/pkg/roadwatchsdk"
)

type RolesHandler struct {
	RoleService *service.RoleService
}

// HandleList godoc
//
//	@Summary	List roles
//	@Tags		Roles
//	@Produce	json
//	@Success	200	{array}		roadwatchsdk.RoleInfo
//	@Failure	401	{object}	roadwatchsdk.ErrorResponse
//	@Failure	403	{object}	roadwatchsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/roles [get].
func (h *RolesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	roles, err := h.RoleService.List(r.Context())
	if err != nil {
		writeError(w, r, err, "list roles")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSlice(roles, roleInfo))
}

// HandleGet godoc
//
//	@Summary	Get a role
//	@Tags		Roles
//	@Produce	json
//	@Param		id	path		string	true	"Role ID"
//	@Success	200	{object}	roadwatchsdk.RoleInfo
//	@Failure	404	{object}	roadwatchsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/roles/{id} [get].
func (h *RolesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	role, err := h.RoleService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err, "load role")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, roleInfo(role))
}

// HandleCreate godoc
//
//	@Summary	Create a role
//	@Tags		Roles
//	@Accept		json
//	@Produce	json
//	@Param		request	body		roadwatchsdk.RoleRequest	true	"Role name"
//	@Success	201		{object}	roadwatchsdk.RoleInfo
//	@Failure	409		{object}	roadwatchsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/roles [post].
func (h *RolesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req roadwatchsdk.RoleRequest
	if !decode(w, r, &req) {
		return
	}
	role, err := h.RoleService.Create(r.Context(), req.Name)
	if err != nil {
		writeError(w, r, err, "create role")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, roleInfo(role))
}

// HandleRename godoc
//
//	@Summary	Rename a role
//	@Tags		Roles
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Role ID"
//	@Param		request	body		roadwatchsdk.RoleRequest	true	"New name"
//	@Success	200		{object}	roadwatchsdk.RoleInfo
//	@Failure	404		{object}	roadwatchsdk.ErrorResponse
//	@Failure	409		{object}	roadwatchsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/roles/{id} [put].
func (h *RolesHandler) HandleRename(w http.ResponseWriter, r *http.Request) {
	var req roadwatchsdk.RoleRequest
	if !decode(w, r, &req) {
		return
	}
	role, err := h.RoleService.Rename(r.Context(), r.PathValue("id"), req.Name)
	if err != nil {
		writeError(w, r, err, "rename role")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, roleInfo(role))
}

// HandleDelete godoc
//
//	@Summary		Delete a role
//	@Description	Fails with 409 while accounts still hold the role.
//	@Tags			Roles
//	@Param			id	path	string	true	"Role ID"
//	@Success		204
//	@Failure		404	{object}	roadwatchsdk.ErrorResponse
//	@Failure		409	{object}	roadwatchsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/roles/{id} [delete].
func (h *RolesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.RoleService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err, "delete role")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleGetByName godoc
//
//	@Summary	Get a role by name
//	@Tags		Roles
//	@Produce	json
//	@Param		name	path		string	true	"Role name"
//	@Success	200		{object}	roadwatchsdk.RoleInfo
//	@Failure	404		{object}	roadwatchsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/roles/nom/{name} [get].
func (h *RolesHandler) HandleGetByName(w http.ResponseWriter, r *http.Request) {
	role, err := h.RoleService.GetByName(r.Context(), r.PathValue("name"))
	if err != nil {
		writeError(w, r, err, "load role")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, roleInfo(role))
}
