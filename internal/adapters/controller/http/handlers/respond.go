package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wupitch/wupitch-server/internal/domain/common/errorz"
)

type apiResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (h *Handler) respond(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(apiResponse{Success: true, Data: data}); err != nil {
		h.logger.Errorf("failed to encode response: %v", err)
	}
}

// respondError maps domain errors onto HTTP statuses; anything unknown is a
// 500 and logged.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errorz.FailedToLogin):
		status = http.StatusUnauthorized
	case errors.Is(err, errorz.AccountNotValid):
		status = http.StatusForbidden
	case errors.Is(err, errorz.DuplicatedEmail), errors.Is(err, errorz.DuplicatedNickname):
		status = http.StatusConflict
	case errors.Is(err, errorz.AccountNotFound),
		errors.Is(err, errorz.AreaNotFound),
		errors.Is(err, errorz.SportsNotFound),
		errors.Is(err, errorz.ExtraNotFound),
		errors.Is(err, errorz.ClubNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errBadRequest):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		h.logger.Errorf("internal error: %v", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(apiResponse{Success: false, Error: err.Error()})
}

var errBadRequest = errors.New("bad request")
