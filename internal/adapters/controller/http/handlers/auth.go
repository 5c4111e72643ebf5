package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/wupitch/wupitch-server/internal/domain/dto"
	"github.com/wupitch/wupitch-server/internal/domain/utils/validator"
)

func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req dto.SignUpReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, fmt.Errorf("%w: invalid body", errBadRequest))
		return
	}
	if !validator.Email(req.Email) || !validator.Password(req.Password) {
		h.respondError(w, fmt.Errorf("%w: invalid email or password", errBadRequest))
		return
	}

	res, err := h.accountService.SignUp(r.Context(), req)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusCreated, res)
}

func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req dto.SignInReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, fmt.Errorf("%w: invalid body", errBadRequest))
		return
	}

	res, err := h.accountService.SignIn(r.Context(), req)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.metrics.SignInsTotal.Inc()
	h.respond(w, http.StatusOK, res)
}

func (h *Handler) KakaoSignIn(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		h.respondError(w, fmt.Errorf("%w: missing code", errBadRequest))
		return
	}

	res, err := h.kakaoService.SignIn(r.Context(), code)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.metrics.SignInsTotal.Inc()
	h.respond(w, http.StatusOK, res)
}
