package http

import (
	"net/http"

	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
	"github.com/roadwatch/roadwatch/internal/roadwatch/service"
	"github.com/roadwatch/roadwatch/pkg/httpx"
	"github.com/roadwatch/roadwatch/pkg/roadwatchsdk"
	"github.com/roadwatch/roadwatch/pkg/slogx"
	"github.com/shopspring/decimal"
)

type ReportsHandler struct {
	ReportService *service.ReportService
	Syncer        Syncer
}

func (h *ReportsHandler) writeReports(w http.ResponseWriter, r *http.Request, reports []domain.Report, err error) {
	if err != nil {
		writeError(w, r, err, "list reports")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSlice(reports, reportInfo))
}

// HandleList godoc
//
//	@Summary	List reports
//	@Tags		Reports
//	@Produce	json
//	@Success	200	{array}	roadwatchsdk.ReportInfo
//	@Router		/api/signalements [get].
func (h *ReportsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	reports, err := h.ReportService.List(r.Context())
	h.writeReports(w, r, reports, err)
}

// HandleGet godoc
//
//	@Summary	Get a report
//	@Tags		Reports
//	@Produce	json
//	@Param		id	path		string	true	"Report ID"
//	@Success	200	{object}	roadwatchsdk.ReportInfo
//	@Failure	404	{object}	roadwatchsdk.ErrorResponse
//	@Router		/api/signalements/{id} [get].
func (h *ReportsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	report, err := h.ReportService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err, "load report")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, reportInfo(report))
}

// HandleByUser godoc
//
//	@Summary	List the reports of one reporter
//	@Tags		Reports
//	@Produce	json
//	@Param		userId	path	string	true	"Reporter ID"
//	@Success	200		{array}	roadwatchsdk.ReportInfo
//	@Router		/api/signalements/user/{userId} [get].
func (h *ReportsHandler) HandleByUser(w http.ResponseWriter, r *http.Request) {
	reports, err := h.ReportService.ListByUser(r.Context(), r.PathValue("userId"))
	h.writeReports(w, r, reports, err)
}

// HandleByPlace godoc
//
//	@Summary	List the reports of one place
//	@Tags		Reports
//	@Produce	json
//	@Param		placeId	path	string	true	"Place ID"
//	@Success	200		{array}	roadwatchsdk.ReportInfo
//	@Router		/api/signalements/lieu/{placeId} [get].
func (h *ReportsHandler) HandleByPlace(w http.ResponseWriter, r *http.Request) {
	reports, err := h.ReportService.ListByPlace(r.Context(), r.PathValue("placeId"))
	h.writeReports(w, r, reports, err)
}

// HandleByStatus godoc
//
//	@Summary	List reports with a status
//	@Tags		Reports
//	@Produce	json
//	@Param		status	path		string	true	"nouveau, en cours or terminé"
//	@Success	200		{array}		roadwatchsdk.ReportInfo
//	@Failure	400		{object}	roadwatchsdk.ErrorResponse
//	@Router		/api/signalements/statut/{status} [get].
func (h *ReportsHandler) HandleByStatus(w http.ResponseWriter, r *http.Request) {
	reports, err := h.ReportService.ListByStatus(r.Context(), r.PathValue("status"))
	h.writeReports(w, r, reports, err)
}

// HandleByType godoc
//
//	@Summary	List reports of a problem type
//	@Tags		Reports
//	@Produce	json
//	@Param		type	path	string	true	"Problem type"
//	@Success	200		{array}	roadwatchsdk.ReportInfo
//	@Router		/api/signalements/type/{type} [get].
func (h *ReportsHandler) HandleByType(w http.ResponseWriter, r *http.Request) {
	reports, err := h.ReportService.ListByType(r.Context(), r.PathValue("type"))
	h.writeReports(w, r, reports, err)
}

// HandleInArea godoc
//
//	@Summary	List reports inside a bounding box
//	@Tags		Reports
//	@Produce	json
//	@Param		minLat	query		number	true	"South bound"
//	@Param		maxLat	query		number	true	"North bound"
//	@Param		minLng	query		number	true	"West bound"
//	@Param		maxLng	query		number	true	"East bound"
//	@Success	200		{array}		roadwatchsdk.ReportInfo
//	@Failure	400		{object}	roadwatchsdk.ErrorResponse
//	@Router		/api/signalements/zone [get].
func (h *ReportsHandler) HandleInArea(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var bounds [4]decimal.Decimal
	for i, name := range []string{"minLat", "maxLat", "minLng", "maxLng"} {
		d, err := decimal.NewFromString(q.Get(name))
		if err != nil {
			badRequest(w, name+" must be a number")
			return
		}
		bounds[i] = d
	}

	reports, err := h.ReportService.ListInArea(r.Context(), domain.Area{
		MinLat: bounds[0], MaxLat: bounds[1],
		MinLng: bounds[2], MaxLng: bounds[3],
	})
	h.writeReports(w, r, reports, err)
}

// HandleRecent godoc
//
//	@Summary	List reports of the last seven days
//	@Tags		Reports
//	@Produce	json
//	@Success	200	{array}	roadwatchsdk.ReportInfo
//	@Router		/api/signalements/recents [get].
func (h *ReportsHandler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	reports, err := h.ReportService.Recent(r.Context())
	h.writeReports(w, r, reports, err)
}

// HandleSearch godoc
//
//	@Summary	Search report descriptions
//	@Tags		Reports
//	@Produce	json
//	@Param		q	query	string	false	"Text to match, case-insensitive"
//	@Success	200	{array}	roadwatchsdk.ReportInfo
//	@Router		/api/signalements/search [get].
func (h *ReportsHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	reports, err := h.ReportService.Search(r.Context(), r.URL.Query().Get("q"))
	h.writeReports(w, r, reports, err)
}

// HandleStats godoc
//
//	@Summary	Count reports per status
//	@Tags		Reports
//	@Produce	json
//	@Success	200	{object}	map[string]int64	"status to count, plus total"
//	@Router		/api/signalements/stats [get].
func (h *ReportsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.ReportService.Stats(r.Context())
	if err != nil {
		writeError(w, r, err, "count reports")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, stats)
}

// HandleCreate godoc
//
//	@Summary		Create a report
//	@Description	Status defaults to nouveau and the date to now. The reporter defaults to the caller; only managers may set idUser or statut.
//	@Tags			Reports
//	@Accept			json
//	@Produce		json
//	@Param			request	body		roadwatchsdk.ReportRequest	true	"Report"
//	@Success		201		{object}	roadwatchsdk.ReportInfo
//	@Failure		400		{object}	roadwatchsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/signalements [post].
func (h *ReportsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req roadwatchsdk.ReportRequest
	if !decode(w, r, &req) {
		return
	}
	in := reportInput(req)

	// Citizens file reports as themselves with the initial status.
	caller := principal(r)
	if caller.Role != domain.RoleManager {
		in.UserID, in.Status = nil, nil
	}
	if in.UserID == nil || *in.UserID == "" {
		in.UserID = &caller.AccountID
	}

	report, err := h.ReportService.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, err, "create report")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, reportInfo(report))
}

// HandleUpdate godoc
//
//	@Summary		Update a report
//	@Description	Omitted fields are left alone. A status change moves the linked work's progress.
//	@Tags			Reports
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Report ID"
//	@Param			request	body		roadwatchsdk.ReportRequest	true	"Fields to change"
//	@Success		200		{object}	roadwatchsdk.ReportInfo
//	@Failure		400		{object}	roadwatchsdk.ErrorResponse
//	@Failure		404		{object}	roadwatchsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/signalements/{id} [put].
func (h *ReportsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req roadwatchsdk.ReportRequest
	if !decode(w, r, &req) {
		return
	}
	report, err := h.ReportService.Update(r.Context(), r.PathValue("id"), reportInput(req))
	if err != nil {
		writeError(w, r, err, "update report")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, reportInfo(report))
}

// HandleUpdateStatus godoc
//
//	@Summary		Change a report status
//	@Description	Sets the linked work's progress to 0, 50 or 100 and appends a history entry when it moves.
//	@Description	The reporter is notified once the change is committed.
//	@Tags			Reports
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Report ID"
//	@Param			request	body		roadwatchsdk.StatusRequest	true	"New status"
//	@Success		200		{object}	roadwatchsdk.StatusUpdateResponse
//	@Failure		400		{object}	roadwatchsdk.ErrorResponse
//	@Failure		404		{object}	roadwatchsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/signalements/{id}/statut [put].
func (h *ReportsHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req roadwatchsdk.StatusRequest
	if !decode(w, r, &req) {
		return
	}

	report, change, err := h.ReportService.UpdateStatus(r.Context(), r.PathValue("id"), req.Status)
	if err != nil {
		writeError(w, r, err, "update report status")
		return
	}

	res := roadwatchsdk.StatusUpdateResponse{Report: reportInfo(report)}
	if change.Changed {
		work, entry := workInfo(change.Work), historyInfo(change.Entry)
		res.Work, res.History = &work, &entry
	}
	httpx.WriteJSON(w, http.StatusOK, res)
}

// HandleDelete godoc
//
//	@Summary	Delete a report
//	@Tags		Reports
//	@Param		id	path	string	true	"Report ID"
//	@Success	204
//	@Failure	404	{object}	roadwatchsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/signalements/{id} [delete].
func (h *ReportsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.ReportService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err, "delete report")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleSync godoc
//
//	@Summary		Pull reports and works from the document store
//	@Description	Inserts documents not yet known locally. Per-document failures are counted, not fatal.
//	@Description	A collection that cannot be listed is reported in the error field with a 502.
//	@Tags			Reports
//	@Produce		json
//	@Success		200	{object}	roadwatchsdk.SyncResponse
//	@Failure		502	{object}	roadwatchsdk.SyncResponse
//	@Failure		503	{object}	roadwatchsdk.ErrorResponse	"sync is not configured"
//	@Security		BearerAuth
//	@Router			/api/signalements/sync [get].
func (h *ReportsHandler) HandleSync(w http.ResponseWriter, r *http.Request) {
	if h.Syncer == nil {
		httpx.WriteError(w, http.StatusServiceUnavailable, "sync_unavailable", "document store is not configured")
		return
	}

	res, err := h.Syncer.SyncIncoming(r.Context())
	out := roadwatchsdk.SyncResponse{
		Reports: roadwatchsdk.PullStats(res.Reports),
		Works:   roadwatchsdk.PullStats(res.Works),
	}
	if err != nil {
		slogx.FromContext(r.Context()).Error("sync pull failed", "error", err)
		out.Error = err.Error()
		httpx.WriteJSON(w, http.StatusBadGateway, out)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
