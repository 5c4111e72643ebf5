package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/wupitch/wupitch-server/internal/adapters/controller/http/middlewares"
	"github.com/wupitch/wupitch-server/internal/domain/dto"
	"github.com/wupitch/wupitch-server/internal/domain/utils/validator"
)

func (h *Handler) GetAuthAccount(w http.ResponseWriter, r *http.Request) {
	claims, ok := middlewares.ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	res, err := h.accountService.GetAuthAccount(r.Context(), claims)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, res)
}

func (h *Handler) CheckNickname(w http.ResponseWriter, r *http.Request) {
	nickname := r.URL.Query().Get("nickname")
	if !validator.Nickname(nickname) {
		h.respondError(w, fmt.Errorf("%w: invalid nickname", errBadRequest))
		return
	}

	if err := h.accountService.CheckNickname(r.Context(), nickname); err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, nil)
}

func (h *Handler) CompleteProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middlewares.ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req dto.AccountInformReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, fmt.Errorf("%w: invalid body", errBadRequest))
		return
	}
	if req.Nickname != "" && !validator.Nickname(req.Nickname) {
		h.respondError(w, fmt.Errorf("%w: invalid nickname", errBadRequest))
		return
	}

	if err := h.accountService.CompleteProfile(r.Context(), claims, req); err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, nil)
}
