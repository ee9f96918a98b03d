package http

import (
	"net/http"

	"github.com/roadwatch/roadwatch/internal/roadwatch/service"
	"github.com/roadwatch/roadwatch/pkg/httpx"
	"github.com/roadwatch/roadwatch/pkg/roadwatchsdk"
)

type HistoryHandler struct {
	HistoryService *service.HistoryService
}

// HandleList godoc
//
//	@Summary	List work history entries
//	@Tags		History
//	@Produce	json
//	@Success	200	{array}	roadwatchsdk.WorkHistoryInfo
//	@Router		/api/historiques-travaux [get].
func (h *HistoryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	entries, err := h.HistoryService.List(r.Context())
	if err != nil {
		writeError(w, r, err, "list work history")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSlice(entries, historyInfo))
}

// HandleGet godoc
//
//	@Summary	Get a history entry
//	@Tags		History
//	@Produce	json
//	@Param		id	path		string	true	"Entry ID"
//	@Success	200	{object}	roadwatchsdk.WorkHistoryInfo
//	@Failure	404	{object}	roadwatchsdk.ErrorResponse
//	@Router		/api/historiques-travaux/{id} [get].
func (h *HistoryHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	entry, err := h.HistoryService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err, "load history entry")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, historyInfo(entry))
}

// HandleCreate godoc
//
//	@Summary	Append a history entry
//	@Tags		History
//	@Accept		json
//	@Produce	json
//	@Param		request	body		roadwatchsdk.WorkHistoryRequest	true	"Entry, idTravaux required"
//	@Success	201		{object}	roadwatchsdk.WorkHistoryInfo
//	@Failure	400		{object}	roadwatchsdk.ErrorResponse
//	@Failure	404		{object}	roadwatchsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/historiques-travaux [post].
func (h *HistoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req roadwatchsdk.WorkHistoryRequest
	if !decode(w, r, &req) {
		return
	}
	entry, err := h.HistoryService.Append(r.Context(), historyInput(req))
	if err != nil {
		writeError(w, r, err, "append work history")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, historyInfo(entry))
}

// HandleUpdate godoc
//
//	@Summary		Correct a history entry
//	@Description	Administrative correction. The entry's work cannot be changed.
//	@Tags			History
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Entry ID"
//	@Param			request	body		roadwatchsdk.WorkHistoryRequest	true	"Fields to change"
//	@Success		200		{object}	roadwatchsdk.WorkHistoryInfo
//	@Failure		400		{object}	roadwatchsdk.ErrorResponse
//	@Failure		404		{object}	roadwatchsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/historiques-travaux/{id} [put].
func (h *HistoryHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req roadwatchsdk.WorkHistoryRequest
	if !decode(w, r, &req) {
		return
	}
	entry, err := h.HistoryService.Correct(r.Context(), r.PathValue("id"), historyInput(req))
	if err != nil {
		writeError(w, r, err, "correct history entry")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, historyInfo(entry))
}

// HandleDelete godoc
//
//	@Summary	Delete a history entry
//	@Tags		History
//	@Param		id	path	string	true	"Entry ID"
//	@Success	204
//	@Failure	404	{object}	roadwatchsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/historiques-travaux/{id} [delete].
func (h *HistoryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.HistoryService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err, "delete history entry")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
