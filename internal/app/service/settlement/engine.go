package settlement

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"meetpay/internal/app/logger"
	"meetpay/internal/app/model"
	"meetpay/internal/app/notify"
	"meetpay/internal/app/storage"
)

// Engine settles a meet's financial obligations on its status transitions.
// Each edge's ledger and wallet writes run inside one serializable database
// transaction; notifications go out after commit and their failures are
// logged, never propagated. The hosting change feed serializes events per
// meet; the engine does not.
type Engine struct {
	db        *sql.DB
	users     storage.UserRepository
	skills    storage.SkillRepository
	movements storage.MovementRepository
	wallets   storage.WalletRepository
	settings  storage.SettingsRepository
	notifier  notify.Notifier
	logger    logger.Logger
}

func (e *Engine) LoggerComponent() string {
	return "Settlement.Engine"
}

func New(
	db *sql.DB,
	users storage.UserRepository,
	skills storage.SkillRepository,
	movements storage.MovementRepository,
	wallets storage.WalletRepository,
	settings storage.SettingsRepository,
	notifier notify.Notifier,
) *Engine {
	e := &Engine{
		db:        db,
		users:     users,
		skills:    skills,
		movements: movements,
		wallets:   wallets,
		settings:  settings,
		notifier:  notifier,
	}
	e.logger = logger.Global().Component(e)

	return e
}

// MeetCreated notifies the supplier of a fresh request and keeps a
// notification record with the author as sender.
func (e *Engine) MeetCreated(ctx context.Context, m *model.Meet) error {
	l := e.logger.With().Str("meet_id", m.ID.String()).Logger()
	ctx = l.WithContext(ctx)

	supplier, err := e.resolveSupplier(ctx, m)
	if err != nil {
		return err
	}

	e.notify(ctx, &notify.Message{
		ToUserID:   supplier.ID,
		PushToken:  supplier.PushToken,
		Title:      "Tienes una nueva solicitud",
		Body:       fmt.Sprintf("%s ha solicitado una nueva reunión.", m.AuthorFirstName),
		FromUserID: uuid.NullUUID{UUID: m.AuthorID, Valid: true},
		Persist:    true,
	})

	return nil
}

// MeetUpdated observes one (previous, current) document pair from the change
// feed. Events that change neither the status nor the init timestamp are
// no-ops; everything else dispatches to exactly one edge handler, then the
// session-start edge is evaluated independently.
func (e *Engine) MeetUpdated(ctx context.Context, prev, cur *model.Meet) error {
	if prev == nil || cur == nil {
		return nil
	}

	l := e.logger.With().
		Str("meet_id", cur.ID.String()).
		Str("prev_status", string(prev.Status)).
		Str("status", string(cur.Status)).
		Logger()
	ctx = l.WithContext(ctx)

	statusChanged := prev.Status != cur.Status
	started := prev.InitAt == nil && cur.InitAt != nil

	if !statusChanged && !started {
		l.Debug().Msg("No settlement edge, skipping")
		return nil
	}

	cms, err := e.settings.Commissions(ctx)
	if err != nil {
		return fmt.Errorf("commission config: %w", err)
	}

	supplier, err := e.resolveSupplier(ctx, cur)
	if err != nil {
		return err
	}

	if statusChanged {
		switch cur.Status {
		case model.MeetStatusAccepted:
			err = e.onAccepted(ctx, cur, supplier)
		case model.MeetStatusPaid:
			err = e.onPaid(ctx, cur, cms, supplier)
		case model.MeetStatusComplete:
			err = e.onCompleted(ctx, cur, cms, supplier)
		case model.MeetStatusCancelled:
			err = e.onCancelled(ctx, cur, cms, supplier)
		}
		if err != nil {
			return err
		}
	}

	if started {
		if err := e.onStarted(ctx, cur, supplier); err != nil {
			return err
		}
	}

	return nil
}

// onAccepted notifies the client that the supplier took the request. No money
// moves yet.
func (e *Engine) onAccepted(ctx context.Context, m *model.Meet, supplier *model.User) error {
	author, err := e.users.Read(ctx, m.AuthorID)
	if err != nil {
		return fmt.Errorf("author lookup: %w", err)
	}

	e.notify(ctx, &notify.Message{
		ToUserID:  author.ID,
		PushToken: author.PushToken,
		Title:     "Solicitud de Meet Aceptada",
		Body:      fmt.Sprintf("%s ha aceptado tu solicitud.", supplier.FirstName),
	})

	return nil
}

// onPaid books the client's payment and the supplier's pending net in the
// ledger. The referral percentage is recorded on the pending entry only when
// the supplier actually has a promoter, so "no referral" stays distinguishable
// from a zero-percent referral.
func (e *Engine) onPaid(ctx context.Context, m *model.Meet, cms *model.Commissions, supplier *model.User) error {
	l := logger.Ctx(ctx)

	commission := Commission(m.Amount, cms.Basetime, cms.Wompi)

	var referralPct decimal.NullDecimal
	if supplier.PromoterID.Valid {
		commission = commission.Add(ReferralShare(m.Amount, cms.Referral))
		referralPct = decimal.NewNullDecimal(cms.Referral)
	}

	tx, err := e.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("tx begin: %w", err)
	}

	created, err := e.movements.TxCreate(ctx, tx, &model.Movement{
		MeetID:      uuid.NullUUID{UUID: m.ID, Valid: true},
		UserID:      m.AuthorID,
		Type:        model.MovementTypePayment,
		Titular:     supplier.FullName(),
		Total:       m.Amount,
		Description: "Pago por servicio",
	})
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("payment movement: %w", err)
	}
	if !created {
		// duplicate delivery of the same edge, first one already settled it
		l.Debug().Msg("Payment already booked, skipping")
		_ = tx.Rollback()
		return nil
	}

	if _, err := e.movements.TxCreate(ctx, tx, &model.Movement{
		MeetID:             uuid.NullUUID{UUID: m.ID, Valid: true},
		UserID:             supplier.ID,
		Type:               model.MovementTypePending,
		Titular:            m.AuthorFullName(),
		Subtotal:           decimal.NewNullDecimal(m.Amount),
		Total:              m.Amount.Sub(commission),
		ServiceCommission:  decimal.NewNullDecimal(commission),
		BasetimeCommission: decimal.NewNullDecimal(cms.Basetime),
		WompiCommission:    decimal.NewNullDecimal(cms.Wompi),
		ReferralCommission: referralPct,
		Description:        "Cobro por servicio",
	}); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("pending movement: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx commit: %w", err)
	}

	e.notify(ctx, &notify.Message{
		ToUserID:  supplier.ID,
		PushToken: supplier.PushToken,
		Title:     "Nuevo pago en reserva",
		Body:      fmt.Sprintf("%s ha reservado la sesión.", m.AuthorFirstName),
	})

	return nil
}

// onCompleted charges the supplier's pending entry, credits the supplier's
// net and pays the promoter's referral share. Percentages are read fresh for
// this edge; nothing reuses the values recorded at payment time. The pending
// amendment is the idempotency pivot: when it matches nothing and the entry is
// already charged the whole edge is a duplicate and no wallet is touched.
func (e *Engine) onCompleted(ctx context.Context, m *model.Meet, cms *model.Commissions, supplier *model.User) error {
	l := logger.Ctx(ctx)

	commission := Commission(m.Amount, cms.Basetime, cms.Wompi)

	var promoter *model.User
	var share decimal.Decimal
	if supplier.PromoterID.Valid {
		var err error
		promoter, err = e.users.Read(ctx, supplier.PromoterID.UUID)
		if err != nil {
			return fmt.Errorf("promoter lookup: %w", err)
		}
		share = ReferralShare(m.Amount, cms.Referral)
		commission = commission.Add(share)
	}

	total := m.Amount.Sub(commission)

	tx, err := e.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("tx begin: %w", err)
	}

	count, err := e.movements.TxAmend(ctx, tx, &model.MovementAmendment{
		MeetID:             m.ID,
		UserID:             supplier.ID,
		CurrentType:        model.MovementTypePending,
		Type:               model.MovementTypeCharged,
		Subtotal:           decimal.NewNullDecimal(m.Amount),
		Total:              total,
		ServiceCommission:  decimal.NewNullDecimal(commission),
		BasetimeCommission: decimal.NewNullDecimal(cms.Basetime),
		WompiCommission:    decimal.NewNullDecimal(cms.Wompi),
		Description:        "Cobro por servicio",
	})
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("charge amendment: %w", err)
	}
	if count == 0 {
		charged, err := e.movements.TxExists(ctx, tx, m.ID, supplier.ID, model.MovementTypeCharged)
		_ = tx.Rollback()
		if err != nil {
			return fmt.Errorf("charge check: %w", err)
		}
		if charged {
			l.Debug().Msg("Already charged, skipping")
			return nil
		}
		l.Error().Msg("Pending entry missing on completion")
		return fmt.Errorf("meet %s: no pending entry for supplier %s", m.ID, supplier.ID)
	}

	if promoter != nil {
		if _, err := e.movements.TxCreate(ctx, tx, &model.Movement{
			MeetID:      uuid.NullUUID{UUID: m.ID, Valid: true},
			UserID:      promoter.ID,
			Type:        model.MovementTypePaymentReferral,
			Titular:     promoter.FullName(),
			Total:       share,
			Description: "Pago de referido",
		}); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("referral movement: %w", err)
		}

		if err := e.wallets.TxIncrement(ctx, tx, promoter.ID, storage.WalletIncrement{Balance: share}); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("promoter wallet: %w", err)
		}
	}

	if err := e.wallets.TxIncrement(ctx, tx, supplier.ID, storage.WalletIncrement{Balance: total}); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("supplier wallet: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx commit: %w", err)
	}

	if promoter != nil {
		e.notify(ctx, &notify.Message{
			ToUserID:  promoter.ID,
			PushToken: promoter.PushToken,
			Title:     "¡Felicidades!",
			Body:      "Has recibido un pago por tu referido.",
		})
	}

	e.notify(ctx, &notify.Message{
		ToUserID:  supplier.ID,
		PushToken: supplier.PushToken,
		Title:     "¡Nueva calificación!",
		Body:      fmt.Sprintf("%s ha calificado la sesión.", m.AuthorFirstName),
	})

	return nil
}

// onCancelled refunds the client and converts the supplier's pending entry
// into a system payment record. The supplier keeps nothing. The refund entry
// is the idempotency pivot for the edge.
func (e *Engine) onCancelled(ctx context.Context, m *model.Meet, cms *model.Commissions, supplier *model.User) error {
	l := logger.Ctx(ctx)

	commission := Commission(m.Amount, cms.Basetime, cms.Wompi)

	tx, err := e.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("tx begin: %w", err)
	}

	created, err := e.movements.TxCreate(ctx, tx, &model.Movement{
		MeetID:      uuid.NullUUID{UUID: m.ID, Valid: true},
		UserID:      m.AuthorID,
		Type:        model.MovementTypeRefund,
		Titular:     "Sistema",
		Total:       m.Amount,
		Description: "Reembolso por cancelación",
	})
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("refund movement: %w", err)
	}
	if !created {
		l.Debug().Msg("Refund already booked, skipping")
		_ = tx.Rollback()
		return nil
	}

	if err := e.wallets.TxIncrement(ctx, tx, m.AuthorID, storage.WalletIncrement{Refund: m.Amount}); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("client wallet: %w", err)
	}

	titular := "Sistema"
	count, err := e.movements.TxAmend(ctx, tx, &model.MovementAmendment{
		MeetID:             m.ID,
		UserID:             supplier.ID,
		CurrentType:        model.MovementTypePending,
		Type:               model.MovementTypePayment,
		Titular:            &titular,
		Total:              m.Amount,
		ServiceCommission:  decimal.NewNullDecimal(commission),
		BasetimeCommission: decimal.NewNullDecimal(cms.Basetime),
		WompiCommission:    decimal.NewNullDecimal(cms.Wompi),
		Description:        "Reembolsado",
	})
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("cancel amendment: %w", err)
	}
	if count == 0 {
		// normal when the meet is cancelled before payment
		l.Debug().Msg("No pending entry to amend")
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx commit: %w", err)
	}

	return e.notifyCancellation(ctx, m, supplier)
}

// notifyCancellation classifies the cancellation by its author and notifies
// the non-cancelling party, or both when the system cancelled.
func (e *Engine) notifyCancellation(ctx context.Context, m *model.Meet, supplier *model.User) error {
	supplierCancelled := m.CancellationAuthor.Valid && m.CancellationAuthor.UUID == supplier.ID
	authorCancelled := m.CancellationAuthor.Valid && m.CancellationAuthor.UUID == m.AuthorID

	author, err := e.users.Read(ctx, m.AuthorID)
	if err != nil {
		return fmt.Errorf("author lookup: %w", err)
	}

	if supplierCancelled {
		e.notify(ctx, &notify.Message{
			ToUserID:  author.ID,
			PushToken: author.PushToken,
			Title:     "Tu sesión fue cancelada",
			Body:      fmt.Sprintf("%s ha cancelado la sesión. El dinero ha sido reembolsado.", supplier.FirstName),
		})
	}

	if authorCancelled {
		e.notify(ctx, &notify.Message{
			ToUserID:  supplier.ID,
			PushToken: supplier.PushToken,
			Title:     "Tu sesión fue cancelada",
			Body:      fmt.Sprintf("%s ha cancelado la sesión.", m.AuthorFirstName),
		})
	}

	if !supplierCancelled && !authorCancelled {
		e.notify(ctx, &notify.Message{
			ToUserID:  supplier.ID,
			PushToken: supplier.PushToken,
			Title:     "Tu sesión fue cancelada",
			Body:      "El sistema ha cancelado la sesión.",
		})

		e.notify(ctx, &notify.Message{
			ToUserID:  author.ID,
			PushToken: author.PushToken,
			Title:     "Tu sesión fue cancelada",
			Body:      "El sistema ha cancelado la sesión. El dinero ha sido reembolsado.",
		})
	}

	return nil
}

// onStarted fires once when init_at flips from null, telling both parties the
// session key was validated.
func (e *Engine) onStarted(ctx context.Context, m *model.Meet, supplier *model.User) error {
	author, err := e.users.Read(ctx, m.AuthorID)
	if err != nil {
		return fmt.Errorf("author lookup: %w", err)
	}

	e.notify(ctx, &notify.Message{
		ToUserID:  supplier.ID,
		PushToken: supplier.PushToken,
		Title:     "Tu sesión ha comenzado",
		Body:      fmt.Sprintf("Has validado la clave de %s.", m.AuthorFirstName),
	})

	e.notify(ctx, &notify.Message{
		ToUserID:  author.ID,
		PushToken: author.PushToken,
		Title:     "Tu sesión ha comenzado",
		Body:      fmt.Sprintf("%s ha validado tu clave.", supplier.FirstName),
	})

	return nil
}

func (e *Engine) resolveSupplier(ctx context.Context, m *model.Meet) (*model.User, error) {
	skill, err := e.skills.Read(ctx, m.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("skill lookup: %w", err)
	}

	supplier, err := e.users.Read(ctx, skill.UserID)
	if err != nil {
		return nil, fmt.Errorf("supplier lookup: %w", err)
	}

	return supplier, nil
}

// notify logs delivery failures and swallows them; a dead notifier never
// breaks settlement.
func (e *Engine) notify(ctx context.Context, m *notify.Message) {
	if err := e.notifier.Send(ctx, m); err != nil {
		l := logger.Ctx(ctx)
		l.Error().Err(err).Str("title", m.Title).Msg("Notification failed")
	}
}
