package http

import (
	"net/http"

	"github.com/roadwatch/roadwatch/internal/roadwatch/service"
	"github.com/roadwatch/roadwatch/pkg/httpx"
	"github.com/roadwatch/roadwatch/pkg/roadwatchsdk"
)

type ParamsHandler struct {
	ParamsService *service.ParamsService
}

// HandleList godoc
//
//	@Summary	List authentication parameters
//	@Tags		Parameters
//	@Produce	json
//	@Success	200	{array}	roadwatchsdk.AuthParameterInfo
//	@Security	BearerAuth
//	@Router		/api/parametres [get].
func (h *ParamsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	params, err := h.ParamsService.List(r.Context())
	if err != nil {
		writeError(w, r, err, "list parameters")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSlice(params, paramInfo))
}

// HandleSet godoc
//
//	@Summary		Set an authentication parameter
//	@Description	limite_tentatives and duree_session_minutes must be positive integers. Changes apply to the next login.
//	@Tags			Parameters
//	@Accept			json
//	@Produce		json
//	@Param			key		path		string								true	"Parameter key"
//	@Param			request	body		roadwatchsdk.AuthParameterRequest	true	"Value"
//	@Success		200		{object}	roadwatchsdk.AuthParameterInfo
//	@Failure		400		{object}	roadwatchsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/parametres/{key} [put].
func (h *ParamsHandler) HandleSet(w http.ResponseWriter, r *http.Request) {
	var req roadwatchsdk.AuthParameterRequest
	if !decode(w, r, &req) {
		return
	}
	p, err := h.ParamsService.Set(r.Context(), r.PathValue("key"), req.Value, req.Description)
	if err != nil {
		writeError(w, r, err, "set parameter")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, paramInfo(p))
}
