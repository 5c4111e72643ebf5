package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/wupitch/wupitch-server/internal/adapters/controller/http/middlewares"
	"github.com/wupitch/wupitch-server/internal/domain/dto"
	"github.com/wupitch/wupitch-server/internal/domain/utils/validator"
)

const maxImageSize = 10 << 20

func (h *Handler) ListClubs(w http.ResponseWriter, r *http.Request) {
	claims, ok := middlewares.ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	query := r.URL.Query()
	req := dto.ListClubsReq{
		Page:   intQuery(query.Get("page"), 0),
		Size:   intQuery(query.Get("size"), 10),
		SortBy: query.Get("sortBy"),
		IsAsc:  query.Get("isAsc") == "true",
	}
	if v := query.Get("areaId"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			areaID := uint(id)
			req.AreaID = &areaID
		}
	}
	if v := query.Get("sportsId"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			sportsID := uint(id)
			req.SportsID = &sportsID
		}
	}
	if v := query.Get("memberCount"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			req.MemberCount = &n
		}
	}
	req.Days = intListQuery(query.Get("days"))
	req.AgeList = intListQuery(query.Get("ageList"))

	res, err := h.clubService.List(r.Context(), claims, req)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, res)
}

func (h *Handler) CreateClub(w http.ResponseWriter, r *http.Request) {
	claims, ok := middlewares.ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req dto.CreateClubReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, fmt.Errorf("%w: invalid body", errBadRequest))
		return
	}
	if !validator.ClubTitle(req.Title) || !validator.ClubIntroduction(req.Introduction) {
		h.respondError(w, fmt.Errorf("%w: invalid title or introduction", errBadRequest))
		return
	}

	clubID, err := h.clubService.Create(r.Context(), claims, req)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.metrics.ClubsCreatedTotal.Inc()
	h.respond(w, http.StatusCreated, map[string]uint{"clubId": clubID})
}

func (h *Handler) GetClubDetail(w http.ResponseWriter, r *http.Request) {
	clubID, err := strconv.ParseUint(chi.URLParam(r, "clubId"), 10, 32)
	if err != nil {
		h.respondError(w, fmt.Errorf("%w: invalid club id", errBadRequest))
		return
	}

	res, err := h.clubService.GetDetail(r.Context(), uint(clubID))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, res)
}

func (h *Handler) UploadClubImage(w http.ResponseWriter, r *http.Request) {
	clubID, err := strconv.ParseUint(chi.URLParam(r, "clubId"), 10, 32)
	if err != nil {
		h.respondError(w, fmt.Errorf("%w: invalid club id", errBadRequest))
		return
	}

	if err = r.ParseMultipartForm(maxImageSize); err != nil {
		h.respondError(w, fmt.Errorf("%w: invalid multipart form", errBadRequest))
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		h.respondError(w, fmt.Errorf("%w: missing image file", errBadRequest))
		return
	}
	defer file.Close()

	imageURL, err := h.clubService.AttachImage(r.Context(), file, header.Filename, uint(clubID))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, map[string]string{"imageUrl": imageURL})
}

func (h *Handler) TogglePin(w http.ResponseWriter, r *http.Request) {
	claims, ok := middlewares.ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	clubID, err := strconv.ParseUint(chi.URLParam(r, "clubId"), 10, 32)
	if err != nil {
		h.respondError(w, fmt.Errorf("%w: invalid club id", errBadRequest))
		return
	}

	isPinUp, err := h.clubService.TogglePin(r.Context(), claims, uint(clubID))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, map[string]bool{"isPinUp": isPinUp})
}

func intQuery(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

// intListQuery parses a comma-separated list, skipping junk values.
func intListQuery(value string) []int {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	values := make([]int, 0, len(parts))
	for _, part := range parts {
		if n, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
			values = append(values, n)
		}
	}
	return values
}
