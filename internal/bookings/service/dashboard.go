package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"rechargetravels/internal/bookings/enrich"
	bookingserrors "rechargetravels/internal/bookings/errors"
	"rechargetravels/internal/bookings/export"
	"rechargetravels/internal/bookings/filter"
	"rechargetravels/internal/bookings/repository"
	"rechargetravels/internal/bookings/stats"
	bookingvalidator "rechargetravels/internal/bookings/validator"
	"rechargetravels/pkg/clock"
	"rechargetravels/pkg/config"
	apperrors "rechargetravels/pkg/errors"
	"rechargetravels/pkg/kafka"
	"rechargetravels/pkg/model"
)

// EventPublisher decouples the service from the Kafka producer.
type EventPublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

// DashboardService drives the unified booking screen: it keeps an
// enriched snapshot of the bookings collection, refreshed on demand or
// by the polling loop, and serves filtered views and mutations off it.
type DashboardService interface {
	Refresh(ctx context.Context) error
	StartPolling(ctx context.Context)
	StopPolling()

	List(f filter.Filter) []*model.EnrichedBooking
	Stats() model.BookingStats
	GetByID(ctx context.Context, id string) (*model.EnrichedBooking, error)

	Create(ctx context.Context, booking *model.Booking) error
	Update(ctx context.Context, id string, updates *model.BookingUpdate) error
	UpdateStatus(ctx context.Context, id string, status string) error
	BulkUpdateStatus(ctx context.Context, ids []string, status string) error
	Delete(ctx context.Context, id string) error
	BulkDelete(ctx context.Context, ids []string) error

	ExportCSV(f filter.Filter) ([]byte, string, error)
}

type snapshot struct {
	enriched []*model.EnrichedBooking
	stats    model.BookingStats
	loadedAt time.Time
}

type dashboardService struct {
	repo      repository.BookingRepository
	enricher  *enrich.Enricher
	validator *bookingvalidator.BookingValidator
	publisher EventPublisher
	clk       clock.Clock
	cfg       *config.Config

	mu       sync.RWMutex
	snap     snapshot
	inFlight chan struct{}
	loadErr  error

	pollStop chan struct{}
	pollOnce sync.Once
}

func NewDashboardService(
	repo repository.BookingRepository,
	enricher *enrich.Enricher,
	validator *bookingvalidator.BookingValidator,
	publisher EventPublisher,
	clk clock.Clock,
	cfg *config.Config,
) DashboardService {
	return &dashboardService{
		repo:      repo,
		enricher:  enricher,
		validator: validator,
		publisher: publisher,
		clk:       clk,
		cfg:       cfg,
		pollStop:  make(chan struct{}),
	}
}

// Refresh runs the load-enrich-aggregate cycle. Concurrent callers
// collapse into one outstanding load: a manual refresh arriving while a
// poll tick is in flight waits for that load and shares its result.
func (s *dashboardService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.inFlight != nil {
		done := s.inFlight
		s.mu.Unlock()
		select {
		case <-done:
		case <-ctx.Done():
			return apperrors.Timeout("Refresh cancelled while waiting for in-flight load")
		}
		s.mu.RLock()
		defer s.mu.RUnlock()
		return s.loadErr
	}
	done := make(chan struct{})
	s.inFlight = done
	s.mu.Unlock()

	err := s.load(ctx)

	s.mu.Lock()
	s.loadErr = err
	s.inFlight = nil
	close(done)
	s.mu.Unlock()

	return err
}

func (s *dashboardService) load(ctx context.Context) error {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to load bookings", "error", err)
		return apperrors.Internal("Failed to load bookings", err)
	}

	enriched := s.enricher.Enrich(ctx, bookings)
	computed := stats.Compute(enriched, s.clk)

	s.mu.Lock()
	s.snap = snapshot{
		enriched: enriched,
		stats:    computed,
		loadedAt: s.clk.Now(),
	}
	s.mu.Unlock()

	s.cfg.Log.Debug("Booking snapshot refreshed",
		"count", len(enriched),
		"total_revenue", computed.TotalRevenue,
	)
	return nil
}

// StartPolling launches the auto-refresh loop. Ticks that land while a
// load is still running coalesce into it via the Refresh guard.
func (s *dashboardService) StartPolling(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.cfg.DashboardPollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-s.pollStop:
				return
			case <-ticker.C:
				if err := s.Refresh(ctx); err != nil {
					s.cfg.Log.Warn("Scheduled booking refresh failed", "error", err)
				}
			}
		}
	}()
}

func (s *dashboardService) StopPolling() {
	s.pollOnce.Do(func() { close(s.pollStop) })
}

// List applies the filter to the current snapshot. The result is
// always a subset of the snapshot in snapshot order.
func (s *dashboardService) List(f filter.Filter) []*model.EnrichedBooking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter.Apply(s.snap.enriched, f)
}

func (s *dashboardService) Stats() model.BookingStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.stats
}

func (s *dashboardService) GetByID(ctx context.Context, id string) (*model.EnrichedBooking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.translateRepoError(err, id)
	}

	enriched := s.enricher.Enrich(ctx, []*model.Booking{booking})
	return enriched[0], nil
}

func (s *dashboardService) Create(ctx context.Context, booking *model.Booking) error {
	if booking.Status == "" {
		booking.Status = model.StatusPending
	}
	if booking.PaymentStatus == "" {
		booking.PaymentStatus = model.PaymentPending
	}

	if err := s.validator.Validate(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to create booking", "error", err)
		return apperrors.Internal("Failed to create booking", err)
	}

	s.cfg.Log.Info("Booking created", "id", booking.ID, "type", booking.BookingType)
	return s.Refresh(ctx)
}

func (s *dashboardService) Update(ctx context.Context, id string, updates *model.BookingUpdate) error {
	if id == "" {
		return apperrors.InvalidInput("Booking ID cannot be empty")
	}

	if err := s.validator.ValidateUpdate(updates); err != nil {
		s.cfg.Log.Warn("Booking update validation failed", "id", id, "error", err)
		return apperrors.Validation("Invalid update input", map[string]any{"error": err.Error()})
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return s.translateRepoError(err, id)
	}

	set := bson.M{"updated_at": s.clk.Now().UTC().Truncate(time.Millisecond)}
	if updates.Status != "" {
		set["status"] = updates.Status
	}
	if updates.PaymentStatus != "" {
		set["payment_status"] = updates.PaymentStatus
	}
	if updates.TotalAmount != nil {
		set["total_amount"] = *updates.TotalAmount
	}
	if updates.CheckInDate != "" {
		set["check_in_date"] = updates.CheckInDate
	}
	if updates.CheckOutDate != "" {
		set["check_out_date"] = updates.CheckOutDate
	}

	if err := s.repo.ApplyUpdate(ctx, id, set); err != nil {
		return s.translateRepoError(err, id)
	}

	if updates.Status != "" && updates.Status != existing.Status {
		s.publishStatusChanged(ctx, existing, updates.Status)
	}

	s.cfg.Log.Info("Booking updated", "id", id)
	return s.Refresh(ctx)
}

// UpdateStatus moves a booking to the given status. Any status may
// move to any other; the original tooling never restricted
// transitions and that behavior is kept on purpose.
func (s *dashboardService) UpdateStatus(ctx context.Context, id string, status string) error {
	return s.Update(ctx, id, &model.BookingUpdate{Status: status})
}

// BulkUpdateStatus applies the status to every selected id with
// parallel independent writes. Per the admin contract the outcome is
// all-or-generic-failure: callers get a single error even when only
// some writes failed.
func (s *dashboardService) BulkUpdateStatus(ctx context.Context, ids []string, status string) error {
	if len(ids) == 0 {
		return apperrors.InvalidInput("No bookings selected")
	}
	if err := s.validator.ValidateUpdate(&model.BookingUpdate{Status: status}); err != nil {
		return apperrors.Validation("Invalid status", map[string]any{"error": err.Error()})
	}

	updatedAt := s.clk.Now().UTC().Truncate(time.Millisecond)

	var wg sync.WaitGroup
	errCh := make(chan error, len(ids))
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()

			existing, err := s.repo.FindByID(ctx, id)
			if err != nil {
				errCh <- fmt.Errorf("booking %s: %w", id, err)
				return
			}
			if err := s.repo.UpdateStatus(ctx, id, status, updatedAt); err != nil {
				errCh <- fmt.Errorf("booking %s: %w", id, err)
				return
			}
			if existing.Status != status {
				s.publishStatusChanged(ctx, existing, status)
			}
		}(id)
	}
	wg.Wait()
	close(errCh)

	var failed int
	for err := range errCh {
		failed++
		s.cfg.Log.Error("Bulk status update failed for booking", "error", err)
	}

	refreshErr := s.Refresh(ctx)

	if failed > 0 {
		return apperrors.Internal("Failed to perform bulk action", fmt.Errorf("%d of %d updates failed", failed, len(ids)))
	}
	s.cfg.Log.Info("Bulk status update completed", "count", len(ids), "status", status)
	return refreshErr
}

func (s *dashboardService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Booking ID cannot be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return s.translateRepoError(err, id)
	}

	s.publishDeleted(ctx, id)
	s.cfg.Log.Info("Booking deleted", "id", id)
	return s.Refresh(ctx)
}

func (s *dashboardService) BulkDelete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return apperrors.InvalidInput("No bookings selected")
	}

	var wg sync.WaitGroup
	errCh := make(chan error, len(ids))
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if err := s.repo.Delete(ctx, id); err != nil {
				errCh <- fmt.Errorf("booking %s: %w", id, err)
				return
			}
			s.publishDeleted(ctx, id)
		}(id)
	}
	wg.Wait()
	close(errCh)

	var failed int
	for err := range errCh {
		failed++
		s.cfg.Log.Error("Bulk delete failed for booking", "error", err)
	}

	refreshErr := s.Refresh(ctx)

	if failed > 0 {
		return apperrors.Internal("Failed to perform bulk action", fmt.Errorf("%d of %d deletes failed", failed, len(ids)))
	}
	s.cfg.Log.Info("Bulk delete completed", "count", len(ids))
	return refreshErr
}

// ExportCSV serializes the currently filtered snapshot.
func (s *dashboardService) ExportCSV(f filter.Filter) ([]byte, string, error) {
	filtered := s.List(f)
	body, err := export.CSV(filtered)
	if err != nil {
		return nil, "", apperrors.Internal("Failed to export bookings", err)
	}
	filename := fmt.Sprintf("bookings-%s.csv", s.clk.Now().Format("2006-01-02"))
	return body, filename, nil
}

// --- Helpers ---

func (s *dashboardService) translateRepoError(err error, id string) error {
	if errors.Is(err, bookingserrors.ErrNotFound) {
		return apperrors.NotFoundWithID("Booking", id)
	}
	if errors.Is(err, bookingserrors.ErrInvalidID) {
		return apperrors.InvalidInput("Invalid booking ID format")
	}
	return apperrors.Internal("Booking operation failed", err)
}

func (s *dashboardService) publishStatusChanged(ctx context.Context, before *model.Booking, newStatus string) {
	if s.publisher == nil {
		return
	}

	event := model.BookingEvent{
		BookingID:      before.ID,
		BookingType:    before.BookingType,
		Status:         newStatus,
		PreviousStatus: before.Status,
		PaymentStatus:  before.PaymentStatus,
		TotalAmount:    before.TotalAmount,
		CheckInDate:    before.CheckInDate,
		CheckOutDate:   before.CheckOutDate,
		Metadata:       before.Metadata,
		OccurredAt:     s.clk.Now().UTC(),
	}

	msg := kafka.NewMessage().
		WithKey(before.ID).
		WithValue(event).
		WithEventType(model.EventBookingStatusChanged).
		WithSource("bookings").
		Build()

	if err := s.publisher.Publish(ctx, msg); err != nil {
		s.cfg.Log.Error("Failed to publish booking status event", "booking_id", before.ID, "error", err)
	}
}

func (s *dashboardService) publishDeleted(ctx context.Context, id string) {
	if s.publisher == nil {
		return
	}

	msg := kafka.NewMessage().
		WithKey(id).
		WithValue(model.BookingEvent{
			BookingID:  id,
			OccurredAt: s.clk.Now().UTC(),
		}).
		WithEventType(model.EventBookingDeleted).
		WithSource("bookings").
		Build()

	if err := s.publisher.Publish(ctx, msg); err != nil {
		s.cfg.Log.Error("Failed to publish booking deleted event", "booking_id", id, "error", err)
	}
}
