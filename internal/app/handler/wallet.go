package handler

import (
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"meetpay/internal/app/apperr"
	"meetpay/internal/app/logger"
	"meetpay/internal/app/storage"
)

type WalletHandler struct {
	wallets storage.WalletRepository
}

func NewWalletHandler(wallets storage.WalletRepository) *WalletHandler {
	return &WalletHandler{
		wallets: wallets,
	}
}

// Balance returns the caller's balance and refund accumulators.
func (h *WalletHandler) Balance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := logger.Get(ctx, "Handler.Wallet.Balance")
	l.Debug().Send()

	u, err := ReadContextUser(ctx)
	if err != nil {
		l.Debug().Err(err).Msg("Unauthorized")
		WriteError(w, err, http.StatusUnauthorized)
		return
	}

	wallet, err := h.wallets.Read(ctx, u.ID)
	if err != nil {
		l.Error().Err(err).Send()
		WriteError(w, err, http.StatusInternalServerError)
		return
	}

	WriteResponse(w, wallet, http.StatusOK)
}

// Withdraw moves available balance to a destination account.
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := logger.Get(ctx, "Handler.Wallet.Withdraw")
	l.Debug().Send()

	u, err := ReadContextUser(ctx)
	if err != nil {
		l.Debug().Err(err).Msg("Unauthorized")
		WriteError(w, err, http.StatusUnauthorized)
		return
	}

	in := &struct {
		Account string          `json:"account"`
		Amount  decimal.Decimal `json:"sum"`
	}{}

	if err := readBody(r, in); err != nil {
		l.Debug().Err(err).Msg("Body read failed")
		WriteError(w, err, http.StatusBadRequest)
		return
	}

	m, err := h.wallets.Withdraw(ctx, u.ID, in.Account, in.Amount)
	if err != nil {
		if errors.Is(err, apperr.ErrInvalidInput) {
			l.Debug().Err(err).Str("account", in.Account).Msg("Validation error")
			WriteError(w, err, http.StatusUnprocessableEntity)
			return
		}

		if errors.Is(err, apperr.ErrInsufficientFunds) {
			l.Debug().Err(err).Msg("Insufficient funds")
			WriteError(w, err, http.StatusPaymentRequired)
			return
		}

		l.Error().Err(err).Msg("Internal error")
		WriteError(w, err, http.StatusInternalServerError)
		return
	}

	WriteResponse(w, m, http.StatusOK)
}
