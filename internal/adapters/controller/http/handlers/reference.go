package handlers

import "net/http"

func (h *Handler) ListAreas(w http.ResponseWriter, r *http.Request) {
	areas, err := h.areaService.GetAll(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, areas)
}

func (h *Handler) ListSports(w http.ResponseWriter, r *http.Request) {
	sports, err := h.sportsService.GetAll(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, sports)
}

func (h *Handler) ListExtras(w http.ResponseWriter, r *http.Request) {
	extras, err := h.extraService.GetAll(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, extras)
}
