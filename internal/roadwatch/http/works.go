package http

import (
	"net/http"

	"github.com/roadwatch/roadwatch/internal/roadwatch/service"
	"github.com/roadwatch/roadwatch/pkg/httpx"
	"github.com/roadwatch/roadwatch/pkg/roadwatchsdk"
)

type WorksHandler struct {
	WorkService    *service.WorkService
	HistoryService *service.HistoryService
}

// HandleList godoc
//
//	@Summary	List works
//	@Tags		Works
//	@Produce	json
//	@Success	200	{array}	roadwatchsdk.WorkInfo
//	@Router		/api/travaux [get].
func (h *WorksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	works, err := h.WorkService.List(r.Context())
	if err != nil {
		writeError(w, r, err, "list works")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSlice(works, workInfo))
}

// HandleGet godoc
//
//	@Summary	Get a work
//	@Tags		Works
//	@Produce	json
//	@Param		id	path		string	true	"Work ID"
//	@Success	200	{object}	roadwatchsdk.WorkInfo
//	@Failure	404	{object}	roadwatchsdk.ErrorResponse
//	@Router		/api/travaux/{id} [get].
func (h *WorksHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	work, err := h.WorkService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err, "load work")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, workInfo(work))
}

func (h *WorksHandler) decodeWork(w http.ResponseWriter, r *http.Request) (service.WorkInput, bool) {
	var req roadwatchsdk.WorkRequest
	if !decode(w, r, &req) {
		return service.WorkInput{}, false
	}
	in, err := workInput(req)
	if err != nil {
		badRequest(w, "dates must use the YYYY-MM-DD format")
		return service.WorkInput{}, false
	}
	return in, true
}

// HandleCreate godoc
//
//	@Summary		Create a work
//	@Description	A report carries at most one work. The work is pushed to the document store after commit.
//	@Tags			Works
//	@Accept			json
//	@Produce		json
//	@Param			request	body		roadwatchsdk.WorkRequest	true	"Work"
//	@Success		201		{object}	roadwatchsdk.WorkInfo
//	@Failure		400		{object}	roadwatchsdk.ErrorResponse
//	@Failure		409		{object}	roadwatchsdk.ErrorResponse	"report already has a work"
//	@Security		BearerAuth
//	@Router			/api/travaux [post].
func (h *WorksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodeWork(w, r)
	if !ok {
		return
	}
	work, err := h.WorkService.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, err, "create work")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, workInfo(work))
}

// HandleUpdate godoc
//
//	@Summary	Update a work
//	@Tags		Works
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Work ID"
//	@Param		request	body		roadwatchsdk.WorkRequest	true	"Fields to change"
//	@Success	200		{object}	roadwatchsdk.WorkInfo
//	@Failure	400		{object}	roadwatchsdk.ErrorResponse
//	@Failure	404		{object}	roadwatchsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/travaux/{id} [put].
func (h *WorksHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodeWork(w, r)
	if !ok {
		return
	}
	work, err := h.WorkService.Update(r.Context(), r.PathValue("id"), in)
	if err != nil {
		writeError(w, r, err, "update work")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, workInfo(work))
}

// HandleDelete godoc
//
//	@Summary	Delete a work and its history
//	@Tags		Works
//	@Param		id	path	string	true	"Work ID"
//	@Success	204
//	@Failure	404	{object}	roadwatchsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/travaux/{id} [delete].
func (h *WorksHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.WorkService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err, "delete work")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleHistory godoc
//
//	@Summary	List the history of a work
//	@Tags		Works
//	@Produce	json
//	@Param		id	path		string	true	"Work ID"
//	@Success	200	{array}		roadwatchsdk.WorkHistoryInfo
//	@Failure	404	{object}	roadwatchsdk.ErrorResponse
//	@Router		/api/travaux/{id}/historique [get].
func (h *WorksHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.HistoryService.ListByWork(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err, "list work history")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSlice(entries, historyInfo))
}

// HandleAppendHistory godoc
//
//	@Summary		Append a history entry to a work
//	@Description	Records progress and a note. The work's own progress is not changed.
//	@Tags			Works
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Work ID"
//	@Param			request	body		roadwatchsdk.WorkHistoryRequest	true	"Entry"
//	@Success		201		{object}	roadwatchsdk.WorkHistoryInfo
//	@Failure		400		{object}	roadwatchsdk.ErrorResponse
//	@Failure		404		{object}	roadwatchsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/travaux/{id}/historique [post].
func (h *WorksHandler) HandleAppendHistory(w http.ResponseWriter, r *http.Request) {
	var req roadwatchsdk.WorkHistoryRequest
	if !decode(w, r, &req) {
		return
	}
	in := historyInput(req)
	in.WorkID = r.PathValue("id")

	entry, err := h.HistoryService.Append(r.Context(), in)
	if err != nil {
		writeError(w, r, err, "append work history")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, historyInfo(entry))
}
