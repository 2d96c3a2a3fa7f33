package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"meetpay/internal/app/model"
	notifymock "meetpay/internal/app/notify/mock"
	"meetpay/internal/app/service/dedup"
	"meetpay/internal/app/service/settlement"
	storagemock "meetpay/internal/app/storage/mock"
)

const testEventsSecret = "events-secret"

func newTestEventHandler(t *testing.T) (*EventHandler, *storagemock.MockMeetRepository, func()) {
	ctrl := gomock.NewController(t)

	db, _, err := sqlmock.New()
	require.NoError(t, err)

	engine := settlement.New(
		db,
		storagemock.NewMockUserRepository(ctrl),
		storagemock.NewMockSkillRepository(ctrl),
		storagemock.NewMockMovementRepository(ctrl),
		storagemock.NewMockWalletRepository(ctrl),
		storagemock.NewMockSettingsRepository(ctrl),
		notifymock.NewMockNotifier(ctrl),
	)

	meets := storagemock.NewMockMeetRepository(ctrl)

	// unreachable redis: the guard fails open and every event passes
	guard := dedup.New(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}), time.Minute)

	h := NewEventHandler(engine, meets, guard, testEventsSecret)

	closer := func() {
		ctrl.Finish()
		_ = db.Close()
	}
	return h, meets, closer
}

func meetEventBody(t *testing.T, kind string, before, after map[string]interface{}) *bytes.Reader {
	raw, err := json.Marshal(map[string]interface{}{
		"type":   kind,
		"before": before,
		"after":  after,
	})
	require.NoError(t, err)
	return bytes.NewReader(raw)
}

func snapshotDoc(status string) map[string]interface{} {
	return map[string]interface{}{
		"id":      "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		"service": "6ba7b811-9dad-11d1-80b4-00c04fd430c8",
		"status":  status,
		"amount":  100000,
		"author": map[string]interface{}{
			"id":        "6ba7b812-9dad-11d1-80b4-00c04fd430c8",
			"firstName": "Ana",
			"lastName":  "Torres",
		},
		"date":      time.Now().Format(time.RFC3339),
		"createdAt": time.Now().Format(time.RFC3339),
	}
}

func TestEventMeetBadSecret(t *testing.T) {
	h, _, done := newTestEventHandler(t)
	defer done()

	req := httptest.NewRequest(http.MethodPost, "/events/meet", meetEventBody(t, "updated", snapshotDoc("request"), snapshotDoc("aceptNotPayed")))
	req.Header.Set(eventSecretHeader, "wrong")
	res := httptest.NewRecorder()

	h.Meet(res, req)
	require.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestEventMeetMalformedBody(t *testing.T) {
	h, _, done := newTestEventHandler(t)
	defer done()

	req := httptest.NewRequest(http.MethodPost, "/events/meet", bytes.NewReader([]byte("{")))
	req.Header.Set(eventSecretHeader, testEventsSecret)
	res := httptest.NewRecorder()

	h.Meet(res, req)
	require.Equal(t, http.StatusBadRequest, res.Code)
}

func TestEventMeetUnknownStatus(t *testing.T) {
	h, _, done := newTestEventHandler(t)
	defer done()

	req := httptest.NewRequest(http.MethodPost, "/events/meet", meetEventBody(t, "updated", snapshotDoc("request"), snapshotDoc("paused")))
	req.Header.Set(eventSecretHeader, testEventsSecret)
	res := httptest.NewRecorder()

	h.Meet(res, req)
	require.Equal(t, http.StatusBadRequest, res.Code)
}

func TestEventMeetUpdateWithoutBefore(t *testing.T) {
	h, meets, done := newTestEventHandler(t)
	defer done()

	meets.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/events/meet", meetEventBody(t, "updated", nil, snapshotDoc("aceptPayed")))
	req.Header.Set(eventSecretHeader, testEventsSecret)
	res := httptest.NewRecorder()

	h.Meet(res, req)
	require.Equal(t, http.StatusBadRequest, res.Code)
}

func TestEventMeetNoOpUpdate(t *testing.T) {
	h, meets, done := newTestEventHandler(t)
	defer done()

	meets.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *model.Meet) error {
			require.Equal(t, uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"), m.ID)
			require.Equal(t, model.MeetStatusPaid, m.Status)
			require.True(t, m.Amount.Equal(decimal.NewFromInt(100000)))
			require.Equal(t, "Ana", m.AuthorFirstName)
			return nil
		})

	// same status on both sides: mirrored, settled as a no-op, acknowledged
	req := httptest.NewRequest(http.MethodPost, "/events/meet", meetEventBody(t, "updated", snapshotDoc("aceptPayed"), snapshotDoc("aceptPayed")))
	req.Header.Set(eventSecretHeader, testEventsSecret)
	res := httptest.NewRecorder()

	h.Meet(res, req)
	require.Equal(t, http.StatusAccepted, res.Code)
}

// memoryGuard behaves like the redis guard with a healthy backend: remembers
// keys, forgets released ones.
type memoryGuard struct {
	seen map[string]bool
}

func newMemoryGuard() *memoryGuard {
	return &memoryGuard{seen: make(map[string]bool)}
}

func (g *memoryGuard) FirstDelivery(_ context.Context, key string) bool {
	if g.seen[key] {
		return false
	}
	g.seen[key] = true
	return true
}

func (g *memoryGuard) Release(_ context.Context, key string) {
	delete(g.seen, key)
}

func TestEventMeetRetryAfterSettlementFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	settings := storagemock.NewMockSettingsRepository(ctrl)
	meets := storagemock.NewMockMeetRepository(ctrl)

	engine := settlement.New(
		db,
		storagemock.NewMockUserRepository(ctrl),
		storagemock.NewMockSkillRepository(ctrl),
		storagemock.NewMockMovementRepository(ctrl),
		storagemock.NewMockWalletRepository(ctrl),
		settings,
		notifymock.NewMockNotifier(ctrl),
	)

	guard := newMemoryGuard()
	h := NewEventHandler(engine, meets, guard, testEventsSecret)

	meets.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	settings.EXPECT().Commissions(gomock.Any()).Return(nil, errors.New("settings unavailable")).Times(2)

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/events/meet", meetEventBody(t, "updated", snapshotDoc("aceptNotPayed"), snapshotDoc("aceptPayed")))
		req.Header.Set(eventSecretHeader, testEventsSecret)
		res := httptest.NewRecorder()
		h.Meet(res, req)
		return res
	}

	// first delivery fails and must release its key for the feed's retry
	require.Equal(t, http.StatusInternalServerError, send().Code)
	require.Empty(t, guard.seen)

	// the retry is reprocessed, not dropped as a duplicate
	require.Equal(t, http.StatusInternalServerError, send().Code)
	require.Empty(t, guard.seen)
}

func TestEventKey(t *testing.T) {
	before := &meetSnapshot{ID: uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"), Status: model.MeetStatusAccepted}
	after := &meetSnapshot{ID: before.ID, Status: model.MeetStatusPaid}

	require.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8:aceptNotPayed->aceptPayed", eventKey(eventKindUpdated, before, after))
	require.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8:created", eventKey(eventKindCreated, nil, after))

	now := time.Now()
	after.InitAt = &now
	require.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8:aceptNotPayed->aceptPayed:init", eventKey(eventKindUpdated, before, after))
}
