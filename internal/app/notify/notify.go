//go:generate mockgen -source=./notify.go -destination=./mock/notify.go -package=notifymock
package notify

import (
	"context"

	"github.com/google/uuid"

	"meetpay/internal/app/logger"
	"meetpay/internal/app/model"
	"meetpay/internal/app/storage"
	"meetpay/pkg/push"
)

// Message is one push notification addressed to a user. When Persist is set a
// notification record is stored alongside the delivery.
type Message struct {
	ToUserID   uuid.UUID
	PushToken  string
	Title      string
	Body       string
	FromUserID uuid.NullUUID
	Persist    bool
}

type Notifier interface {
	// Send delivers the message. Callers on the settlement path must log and
	// swallow the returned error; delivery failures never affect settlement.
	Send(ctx context.Context, m *Message) error
}

// Notifier interface implementation
var _ Notifier = (*Service)(nil)

type Service struct {
	client        *push.Service
	notifications storage.NotificationRepository
}

func (s *Service) LoggerComponent() string {
	return "Notify.Service"
}

func NewService(client *push.Service, notifications storage.NotificationRepository) *Service {
	return &Service{
		client:        client,
		notifications: notifications,
	}
}

// Send method of Notifier implementation
func (s *Service) Send(ctx context.Context, m *Message) error {
	l := logger.Get(ctx, s).With().
		Str("to", m.ToUserID.String()).
		Str("title", m.Title).
		Logger()

	in := &push.SendRequest{
		Token: m.PushToken,
		Title: m.Title,
		Body:  m.Body,
	}
	out := &push.SendResponse{}

	if err := s.client.Send(ctx, in, out); err != nil {
		l.Error().Err(err).Msg("Push delivery failed")
		return err
	}

	if m.Persist {
		n := &model.Notification{
			Content: m.Body,
			To:      m.ToUserID,
			From:    m.FromUserID,
		}
		if err := s.notifications.Create(ctx, n); err != nil {
			l.Error().Err(err).Msg("Notification record failed")
			return err
		}
	}

	return nil
}
