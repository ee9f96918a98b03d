package http

import (
	"net/http"

	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
	"github.com/roadwatch/roadwatch/internal/roadwatch/service"
	"github.com/roadwatch/roadwatch/pkg/httpx"
	"github.com/roadwatch/roadwatch/pkg/roadwatchsdk"
)

type PlacesHandler struct {
	PlaceService *service.PlaceService
}

func writePlaces(w http.ResponseWriter, r *http.Request, places []domain.Place, err error) {
	if err != nil {
		writeError(w, r, err, "list places")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSlice(places, placeInfo))
}

// HandleList godoc
//
//	@Summary	List places
//	@Tags		Places
//	@Produce	json
//	@Success	200	{array}	roadwatchsdk.PlaceInfo
//	@Router		/api/lieux [get].
func (h *PlacesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	places, err := h.PlaceService.List(r.Context())
	writePlaces(w, r, places, err)
}

// HandleByCity godoc
//
//	@Summary	List the places of a city
//	@Tags		Places
//	@Produce	json
//	@Param		city	path	string	true	"City"
//	@Success	200		{array}	roadwatchsdk.PlaceInfo
//	@Router		/api/lieux/ville/{city} [get].
func (h *PlacesHandler) HandleByCity(w http.ResponseWriter, r *http.Request) {
	places, err := h.PlaceService.ListByCity(r.Context(), r.PathValue("city"))
	writePlaces(w, r, places, err)
}

// HandleGet godoc
//
//	@Summary	Get a place
//	@Tags		Places
//	@Produce	json
//	@Param		id	path		string	true	"Place ID"
//	@Success	200	{object}	roadwatchsdk.PlaceInfo
//	@Failure	404	{object}	roadwatchsdk.ErrorResponse
//	@Router		/api/lieux/{id} [get].
func (h *PlacesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	p, err := h.PlaceService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err, "load place")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, placeInfo(p))
}

// HandleCreate godoc
//
//	@Summary	Create a place
//	@Tags		Places
//	@Accept		json
//	@Produce	json
//	@Param		request	body		roadwatchsdk.PlaceRequest	true	"Place"
//	@Success	201		{object}	roadwatchsdk.PlaceInfo
//	@Failure	400		{object}	roadwatchsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/lieux [post].
func (h *PlacesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req roadwatchsdk.PlaceRequest
	if !decode(w, r, &req) {
		return
	}
	p, err := h.PlaceService.Create(r.Context(), placeInput(req))
	if err != nil {
		writeError(w, r, err, "create place")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, placeInfo(p))
}

// HandleUpdate godoc
//
//	@Summary	Update a place
//	@Tags		Places
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Place ID"
//	@Param		request	body		roadwatchsdk.PlaceRequest	true	"Place"
//	@Success	200		{object}	roadwatchsdk.PlaceInfo
//	@Failure	400		{object}	roadwatchsdk.ErrorResponse
//	@Failure	404		{object}	roadwatchsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/lieux/{id} [put].
func (h *PlacesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req roadwatchsdk.PlaceRequest
	if !decode(w, r, &req) {
		return
	}
	p, err := h.PlaceService.Update(r.Context(), r.PathValue("id"), placeInput(req))
	if err != nil {
		writeError(w, r, err, "update place")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, placeInfo(p))
}

// HandleDelete godoc
//
//	@Summary		Delete a place
//	@Description	Reports at the place keep existing without one.
//	@Tags			Places
//	@Param			id	path	string	true	"Place ID"
//	@Success		204
//	@Failure		404	{object}	roadwatchsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/lieux/{id} [delete].
func (h *PlacesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.PlaceService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err, "delete place")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
