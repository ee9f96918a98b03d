package http

import (
	"net/http"

	"github.com/roadwatch/roadwatch/internal/roadwatch/service"
	"github.com/roadwatch/roadwatch/pkg/httpx"
	"github.com/roadwatch/roadwatch/pkg/roadwatchsdk"
)

type CompaniesHandler struct {
	CompanyService *service.CompanyService
}

// HandleList godoc
//
//	@Summary	List companies
//	@Tags		Companies
//	@Produce	json
//	@Success	200	{array}	roadwatchsdk.CompanyInfo
//	@Router		/api/entreprises [get].
func (h *CompaniesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	companies, err := h.CompanyService.List(r.Context())
	if err != nil {
		writeError(w, r, err, "list companies")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSlice(companies, companyInfo))
}

// HandleGet godoc
//
//	@Summary	Get a company
//	@Tags		Companies
//	@Produce	json
//	@Param		id	path		string	true	"Company ID"
//	@Success	200	{object}	roadwatchsdk.CompanyInfo
//	@Failure	404	{object}	roadwatchsdk.ErrorResponse
//	@Router		/api/entreprises/{id} [get].
func (h *CompaniesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	c, err := h.CompanyService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err, "load company")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, companyInfo(c))
}

// HandleCreate godoc
//
//	@Summary	Create a company
//	@Tags		Companies
//	@Accept		json
//	@Produce	json
//	@Param		request	body		roadwatchsdk.CompanyRequest	true	"Company"
//	@Success	201		{object}	roadwatchsdk.CompanyInfo
//	@Failure	400		{object}	roadwatchsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/entreprises [post].
func (h *CompaniesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req roadwatchsdk.CompanyRequest
	if !decode(w, r, &req) {
		return
	}
	c, err := h.CompanyService.Create(r.Context(), req.Name)
	if err != nil {
		writeError(w, r, err, "create company")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, companyInfo(c))
}

// HandleUpdate godoc
//
//	@Summary	Rename a company
//	@Tags		Companies
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Company ID"
//	@Param		request	body		roadwatchsdk.CompanyRequest	true	"Company"
//	@Success	200		{object}	roadwatchsdk.CompanyInfo
//	@Failure	404		{object}	roadwatchsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/entreprises/{id} [put].
func (h *CompaniesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req roadwatchsdk.CompanyRequest
	if !decode(w, r, &req) {
		return
	}
	c, err := h.CompanyService.Update(r.Context(), r.PathValue("id"), req.Name)
	if err != nil {
		writeError(w, r, err, "update company")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, companyInfo(c))
}

// HandleDelete godoc
//
//	@Summary		Delete a company
//	@Description	Works assigned to the company keep existing without one.
//	@Tags			Companies
//	@Param			id	path	string	true	"Company ID"
//	@Success		204
//	@Failure		404	{object}	roadwatchsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/entreprises/{id} [delete].
func (h *CompaniesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.CompanyService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err, "delete company")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
