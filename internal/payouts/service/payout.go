package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rechargetravels/internal/payouts/repository"
	"rechargetravels/internal/payouts/schedule"
	"rechargetravels/pkg/clock"
	"rechargetravels/pkg/config"
	apperrors "rechargetravels/pkg/errors"
	"rechargetravels/pkg/kafka"
	"rechargetravels/pkg/model"
)

type PayoutService interface {
	List(ctx context.Context, ownerID string) ([]*model.PayoutSchedule, error)
	GetByID(ctx context.Context, id string) (*model.PayoutSchedule, error)
	Stats(ctx context.Context, ownerID string) (model.PayoutStats, error)
	CompleteInstallment(ctx context.Context, id, slot, transactionID string) error
	HandleBookingEvent(ctx context.Context, msg kafka.Message) error
}

type payoutService struct {
	repo repository.ScheduleRepository
	clk  clock.Clock
	cfg  *config.Config
}

func NewPayoutService(repo repository.ScheduleRepository, clk clock.Clock, cfg *config.Config) PayoutService {
	return &payoutService{
		repo: repo,
		clk:  clk,
		cfg:  cfg,
	}
}

func (s *payoutService) terms() schedule.Terms {
	return schedule.Terms{
		CommissionPercent: s.cfg.PayoutCommissionPercent,
		FirstDelay:        s.cfg.PayoutFirstDelay,
		SecondDelay:       s.cfg.PayoutSecondDelay,
	}
}

// List returns schedules with installment statuses derived against the
// current clock, so pending rows flip to processing as their dates
// pass without a background job.
func (s *payoutService) List(ctx context.Context, ownerID string) ([]*model.PayoutSchedule, error) {
	schedules, err := s.repo.FindAll(ctx, ownerID)
	if err != nil {
		s.cfg.Log.Error("Failed to list payout schedules", "error", err)
		return nil, apperrors.Internal("Failed to list payout schedules", err)
	}

	now := s.clk.Now()
	for _, sc := range schedules {
		sc.First.Status = schedule.DeriveStatus(sc.First, now)
		sc.Second.Status = schedule.DeriveStatus(sc.Second, now)
	}
	return schedules, nil
}

func (s *payoutService) GetByID(ctx context.Context, id string) (*model.PayoutSchedule, error) {
	sc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Payout schedule", id)
		}
		return nil, apperrors.Internal("Failed to load payout schedule", err)
	}

	now := s.clk.Now()
	sc.First.Status = schedule.DeriveStatus(sc.First, now)
	sc.Second.Status = schedule.DeriveStatus(sc.Second, now)
	return sc, nil
}

// Stats aggregates installment amounts per state plus calendar-month
// earnings from paid dates.
func (s *payoutService) Stats(ctx context.Context, ownerID string) (model.PayoutStats, error) {
	schedules, err := s.List(ctx, ownerID)
	if err != nil {
		return model.PayoutStats{}, err
	}

	now := s.clk.Now()
	thisMonthStart := clock.StartOfMonth(now)
	lastMonthStart := thisMonthStart.AddDate(0, -1, 0)

	var stats model.PayoutStats
	for _, sc := range schedules {
		for _, inst := range []model.Installment{sc.First, sc.Second} {
			switch inst.Status {
			case model.PayoutPending:
				stats.PendingPayouts += inst.Amount
			case model.PayoutProcessing:
				stats.ProcessingPayouts += inst.Amount
			case model.PayoutCompleted:
				stats.CompletedPayouts += inst.Amount
				stats.TotalEarnings += inst.Amount
				if inst.PaidDate != nil {
					if !inst.PaidDate.Before(thisMonthStart) {
						stats.ThisMonthEarnings += inst.Amount
					} else if !inst.PaidDate.Before(lastMonthStart) {
						stats.LastMonthEarnings += inst.Amount
					}
				}
			case model.PayoutWithheld:
				stats.WithheldPayouts += inst.Amount
			}
		}
	}
	return stats, nil
}

// CompleteInstallment records a transfer for the "first" or "second"
// slot.
func (s *payoutService) CompleteInstallment(ctx context.Context, id, slot, transactionID string) error {
	if slot != "first" && slot != "second" {
		return apperrors.InvalidInput(fmt.Sprintf("unknown installment slot: %s", slot))
	}
	if transactionID == "" {
		return apperrors.InvalidInput("Transaction ID cannot be empty")
	}

	sc, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	inst := sc.First
	if slot == "second" {
		inst = sc.Second
	}
	if inst.Status == model.PayoutCompleted {
		return apperrors.Conflict("Installment already completed")
	}

	paidAt := s.clk.Now().UTC()
	inst.Status = model.PayoutCompleted
	inst.PaidDate = &paidAt
	inst.TransactionID = transactionID

	if err := s.repo.UpdateInstallment(ctx, id, slot, inst); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFoundWithID("Payout schedule", id)
		}
		s.cfg.Log.Error("Failed to complete installment", "id", id, "slot", slot, "error", err)
		return apperrors.Internal("Failed to complete installment", err)
	}

	s.cfg.Log.Info("Installment completed", "id", id, "slot", slot, "transaction_id", transactionID)
	return nil
}

// HandleBookingEvent is the Kafka consumer entry point. A paid booking
// with owner metadata materializes a schedule; a deletion withholds
// whatever has not been released yet. Malformed payloads are permanent
// failures.
func (s *payoutService) HandleBookingEvent(ctx context.Context, msg kafka.Message) error {
	var event model.BookingEvent
	if err := msg.DecodeValue(&event); err != nil {
		return kafka.NewPermanentError("undecodable booking event", err)
	}
	if event.BookingID == "" {
		return kafka.NewPermanentError("booking event missing booking_id", nil)
	}

	switch msg.GetEventType() {
	case model.EventBookingDeleted:
		return s.withholdForBooking(ctx, event.BookingID)
	case model.EventBookingStatusChanged:
		if event.PaymentStatus != model.PaymentPaid {
			return nil
		}
		if event.Metadata == nil || event.Metadata.OwnerID == "" {
			return nil
		}
		return s.createSchedule(ctx, event)
	default:
		return nil
	}
}

func (s *payoutService) createSchedule(ctx context.Context, event model.BookingEvent) error {
	paidAt := event.OccurredAt
	if paidAt.IsZero() {
		paidAt = s.clk.Now().UTC()
	}

	sc := schedule.Build(event, s.terms(), paidAt)
	if err := s.repo.Create(ctx, sc); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			s.cfg.Log.Debug("Payout schedule already exists", "booking_id", event.BookingID)
			return nil
		}
		s.cfg.Log.Error("Failed to create payout schedule", "booking_id", event.BookingID, "error", err)
		return err
	}

	s.cfg.Log.Info("Payout schedule created",
		"booking_id", event.BookingID,
		"owner_id", sc.OwnerID,
		"owner_payout", sc.OwnerPayout,
		"first_due", sc.First.ScheduledDate.Format(time.RFC3339),
		"second_due", sc.Second.ScheduledDate.Format(time.RFC3339),
	)
	return nil
}

func (s *payoutService) withholdForBooking(ctx context.Context, bookingID string) error {
	if err := s.repo.WithholdByBookingID(ctx, bookingID, "booking deleted"); err != nil {
		s.cfg.Log.Error("Failed to withhold payouts", "booking_id", bookingID, "error", err)
		return err
	}
	s.cfg.Log.Info("Payouts withheld for deleted booking", "booking_id", bookingID)
	return nil
}
