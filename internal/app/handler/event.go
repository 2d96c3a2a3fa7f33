package handler

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"meetpay/internal/app/apperr"
	"meetpay/internal/app/logger"
	"meetpay/internal/app/model"
	"meetpay/internal/app/service/dedup"
	"meetpay/internal/app/service/settlement"
	"meetpay/internal/app/storage"
)

const eventSecretHeader = "X-Events-Secret"

type eventKind string

const (
	eventKindCreated eventKind = "created"
	eventKindUpdated eventKind = "updated"
)

// meetSnapshot is the document shape the change feed forwards; it mirrors the
// store's meet documents, not this service's tables.
type meetSnapshot struct {
	ID      uuid.UUID        `json:"id"`
	Service uuid.UUID        `json:"service"`
	Status  model.MeetStatus `json:"status"`
	Amount  decimal.Decimal  `json:"amount"`
	Author  struct {
		ID        uuid.UUID `json:"id"`
		FirstName string    `json:"firstName"`
		LastName  string    `json:"lastName"`
	} `json:"author"`
	Date               time.Time  `json:"date"`
	CreatedAt          time.Time  `json:"createdAt"`
	InitAt             *time.Time `json:"initAt"`
	CancellationAuthor *uuid.UUID `json:"cancellationAuthor"`
}

func (s *meetSnapshot) toModel() *model.Meet {
	m := &model.Meet{
		ID:              s.ID,
		CreatedAt:       s.CreatedAt,
		ServiceID:       s.Service,
		Status:          s.Status,
		Amount:          s.Amount,
		AuthorID:        s.Author.ID,
		AuthorFirstName: s.Author.FirstName,
		AuthorLastName:  s.Author.LastName,
		Date:            s.Date,
		InitAt:          s.InitAt,
	}
	if s.CancellationAuthor != nil {
		m.CancellationAuthor = uuid.NullUUID{UUID: *s.CancellationAuthor, Valid: true}
	}
	return m
}

type EventHandler struct {
	engine *settlement.Engine
	meets  storage.MeetRepository
	guard  dedup.Deduper
	secret string
}

func NewEventHandler(engine *settlement.Engine, meets storage.MeetRepository, guard dedup.Deduper, secret string) *EventHandler {
	return &EventHandler{
		engine: engine,
		meets:  meets,
		guard:  guard,
		secret: secret,
	}
}

// Meet consumes one change-feed event for a meet document. Delivery is
// at-least-once and unordered across meets; the redis guard drops duplicates
// of the same edge early, the engine's ledger protocol catches the rest.
func (h *EventHandler) Meet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := logger.Get(ctx, "Handler.Event.Meet")
	l.Debug().Send()

	if subtle.ConstantTimeCompare([]byte(r.Header.Get(eventSecretHeader)), []byte(h.secret)) != 1 {
		l.Debug().Msg("Bad events secret")
		WriteError(w, apperr.ErrUnauthorized, http.StatusUnauthorized)
		return
	}

	in := struct {
		Type   eventKind     `json:"type"`
		Before *meetSnapshot `json:"before"`
		After  *meetSnapshot `json:"after"`
	}{}

	if err := readBody(r, &in); err != nil {
		l.Debug().Err(err).Msg("Body read failed")
		WriteError(w, err, http.StatusBadRequest)
		return
	}

	if in.After == nil || !in.After.Status.Valid() {
		l.Debug().Msg("Malformed event")
		WriteError(w, apperr.ErrInvalidInput, http.StatusBadRequest)
		return
	}

	cur := in.After.toModel()
	key := eventKey(in.Type, in.Before, in.After)

	if !h.guard.FirstDelivery(ctx, key) {
		l.Debug().Str("meet_id", cur.ID.String()).Msg("Duplicate delivery, dropping")
		w.WriteHeader(http.StatusAccepted)
		return
	}

	if err := h.meets.Upsert(ctx, cur); err != nil {
		l.Error().Err(err).Msg("Meet mirror failed")
		h.guard.Release(ctx, key)
		WriteError(w, err, http.StatusInternalServerError)
		return
	}

	var err error
	switch in.Type {
	case eventKindCreated:
		err = h.engine.MeetCreated(ctx, cur)
	case eventKindUpdated:
		if in.Before == nil {
			l.Debug().Msg("Update without previous snapshot")
			WriteError(w, apperr.ErrInvalidInput, http.StatusBadRequest)
			return
		}
		err = h.engine.MeetUpdated(ctx, in.Before.toModel(), cur)
	default:
		WriteError(w, apperr.ErrInvalidInput, http.StatusBadRequest)
		return
	}

	if err != nil {
		// the feed retries the whole event on non-2xx; the key must not
		// survive a failure or the retry would be dropped as a duplicate
		l.Error().Err(err).Str("meet_id", cur.ID.String()).Msg("Settlement failed")
		h.guard.Release(ctx, key)
		WriteError(w, err, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func eventKey(kind eventKind, before, after *meetSnapshot) string {
	if kind == eventKindCreated || before == nil {
		return fmt.Sprintf("%s:%s", after.ID, kind)
	}

	key := fmt.Sprintf("%s:%s->%s", after.ID, before.Status, after.Status)
	if before.InitAt == nil && after.InitAt != nil {
		key += ":init"
	}
	return key
}
