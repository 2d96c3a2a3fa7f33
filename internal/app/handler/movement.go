package handler

import (
	"net/http"

	"meetpay/internal/app/logger"
	"meetpay/internal/app/storage"
)

type MovementHandler struct {
	movements storage.MovementRepository
}

func NewMovementHandler(movements storage.MovementRepository) *MovementHandler {
	return &MovementHandler{
		movements: movements,
	}
}

// List returns the caller's ledger entries, newest first.
func (h *MovementHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := logger.Get(ctx, "Handler.Movement.List")
	l.Debug().Send()

	u, err := ReadContextUser(ctx)
	if err != nil {
		l.Debug().Err(err).Msg("Unauthorized")
		WriteError(w, err, http.StatusUnauthorized)
		return
	}

	mm, err := h.movements.AllByUserID(ctx, u.ID)
	if err != nil {
		l.Error().Err(err).Send()
		WriteError(w, err, http.StatusInternalServerError)
		return
	}

	if len(mm) == 0 {
		WriteResponse(w, struct{}{}, http.StatusNoContent)
		return
	}

	WriteResponse(w, mm, http.StatusOK)
}
