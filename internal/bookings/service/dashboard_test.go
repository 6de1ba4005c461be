package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"rechargetravels/internal/bookings/enrich"
	bookingserrors "rechargetravels/internal/bookings/errors"
	"rechargetravels/internal/bookings/filter"
	bookingvalidator "rechargetravels/internal/bookings/validator"
	"rechargetravels/pkg/clock"
	"rechargetravels/pkg/config"
	apperrors "rechargetravels/pkg/errors"
	"rechargetravels/pkg/kafka"
	"rechargetravels/pkg/logger"
	"rechargetravels/pkg/model"
)

type mockRepo struct {
	CreateFunc       func(ctx context.Context, booking *model.Booking) error
	FindByIDFunc     func(ctx context.Context, id string) (*model.Booking, error)
	FindAllFunc      func(ctx context.Context) ([]*model.Booking, error)
	UpdateStatusFunc func(ctx context.Context, id string, status string, updatedAt time.Time) error
	ApplyUpdateFunc  func(ctx context.Context, id string, set bson.M) error
	DeleteFunc       func(ctx context.Context, id string) error
	CountFunc        func(ctx context.Context) (int64, error)
}

func (m *mockRepo) Create(ctx context.Context, booking *model.Booking) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, booking)
	}
	return nil
}

func (m *mockRepo) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, bookingserrors.ErrNotFound
}

func (m *mockRepo) FindAll(ctx context.Context) ([]*model.Booking, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id string, status string, updatedAt time.Time) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status, updatedAt)
	}
	return nil
}

func (m *mockRepo) ApplyUpdate(ctx context.Context, id string, set bson.M) error {
	if m.ApplyUpdateFunc != nil {
		return m.ApplyUpdateFunc(ctx, id, set)
	}
	return nil
}

func (m *mockRepo) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockRepo) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

type emptyLookup struct{}

func (emptyLookup) User(context.Context, string) (*model.UserSummary, error) {
	return nil, bookingserrors.ErrNotFound
}
func (emptyLookup) Driver(context.Context, string) (*model.DriverSummary, error) {
	return nil, bookingserrors.ErrNotFound
}
func (emptyLookup) Hotel(context.Context, string) (*model.HotelSummary, error) {
	return nil, bookingserrors.ErrNotFound
}
func (emptyLookup) Tour(context.Context, string) (*model.TourSummary, error) {
	return nil, bookingserrors.ErrNotFound
}

type mockPublisher struct {
	mu       sync.Mutex
	messages []kafka.Message
	err      error
}

func (m *mockPublisher) Publish(_ context.Context, msg kafka.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.messages = append(m.messages, msg)
	return nil
}

func (m *mockPublisher) published() []kafka.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]kafka.Message(nil), m.messages...)
}

func newTestService(repo *mockRepo, pub *mockPublisher, now time.Time) DashboardService {
	log := logger.New(logger.Config{Level: "error", Service: "dashboard-test"})
	cfg := &config.Config{
		Log:                   log,
		DashboardPollInterval: time.Hour,
	}
	var publisher EventPublisher
	if pub != nil {
		publisher = pub
	}
	return NewDashboardService(
		repo,
		enrich.NewEnricher(emptyLookup{}, log),
		bookingvalidator.NewBookingValidator(log),
		publisher,
		clock.Fixed(now),
		cfg,
	)
}

func storedBooking(id, status string, amount float64) *model.Booking {
	return &model.Booking{
		ID:            id,
		UserID:        "user-" + id,
		BookingType:   model.TypeHotel,
		Status:        status,
		PaymentStatus: model.PaymentPaid,
		TotalAmount:   amount,
		CreatedAt:     time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestRefreshPopulatesSnapshot(t *testing.T) {
	repo := &mockRepo{
		FindAllFunc: func(context.Context) ([]*model.Booking, error) {
			return []*model.Booking{
				storedBooking("bk-1", model.StatusPending, 100),
				storedBooking("bk-2", model.StatusConfirmed, 200),
			}, nil
		},
	}
	svc := newTestService(repo, nil, time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC))

	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	got := svc.List(filter.Filter{})
	if len(got) != 2 {
		t.Fatalf("List() returned %d records, want 2", len(got))
	}

	s := svc.Stats()
	if s.Total != 2 || s.Pending != 1 || s.Confirmed != 1 {
		t.Errorf("unexpected stats: %+v", s)
	}
	if s.TotalRevenue != 300 {
		t.Errorf("TotalRevenue = %v, want 300", s.TotalRevenue)
	}
}

func TestRefreshCoalescesConcurrentCalls(t *testing.T) {
	var loads atomic.Int64
	release := make(chan struct{})
	repo := &mockRepo{
		FindAllFunc: func(context.Context) ([]*model.Booking, error) {
			loads.Add(1)
			<-release
			return nil, nil
		},
	}
	svc := newTestService(repo, nil, time.Now())

	const waiters = 8
	started := make(chan struct{}, waiters)
	var wg sync.WaitGroup
	for i := 0; i < waiters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			started <- struct{}{}
			if err := svc.Refresh(context.Background()); err != nil {
				t.Errorf("Refresh() error = %v", err)
			}
		}()
	}

	for i := 0; i < waiters; i++ {
		<-started
	}
	// Give the goroutines time to either start the load or queue on it.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	// Callers arriving while a load is outstanding share it; at most a
	// couple of loads can run for the whole burst.
	if n := loads.Load(); n > 2 {
		t.Errorf("%d loads ran for %d concurrent refreshes, want coalescing", n, waiters)
	}
}

func TestRefreshSharesLoadFailureWithWaiters(t *testing.T) {
	repo := &mockRepo{
		FindAllFunc: func(context.Context) ([]*model.Booking, error) {
			time.Sleep(20 * time.Millisecond)
			return nil, errors.New("primary stepped down")
		},
	}
	svc := newTestService(repo, nil, time.Now())

	var wg sync.WaitGroup
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- svc.Refresh(context.Background())
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err == nil {
			t.Error("Refresh() returned nil, want shared load error")
		}
	}
}

func TestUpdateStatusPublishesEventAndReloads(t *testing.T) {
	var reloads atomic.Int64
	var appliedSet bson.M
	repo := &mockRepo{
		FindByIDFunc: func(_ context.Context, id string) (*model.Booking, error) {
			return storedBooking(id, model.StatusPending, 100), nil
		},
		ApplyUpdateFunc: func(_ context.Context, _ string, set bson.M) error {
			appliedSet = set
			return nil
		},
		FindAllFunc: func(context.Context) ([]*model.Booking, error) {
			reloads.Add(1)
			return nil, nil
		},
	}
	pub := &mockPublisher{}
	now := time.Date(2026, 7, 2, 9, 0, 0, 0, time.UTC)
	svc := newTestService(repo, pub, now)

	if err := svc.UpdateStatus(context.Background(), "bk-1", model.StatusConfirmed); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}

	if appliedSet["status"] != model.StatusConfirmed {
		t.Errorf("status written = %v, want confirmed", appliedSet["status"])
	}
	if _, ok := appliedSet["updated_at"]; !ok {
		t.Error("updated_at not written")
	}
	if reloads.Load() != 1 {
		t.Errorf("reloads = %d, want 1 after mutation", reloads.Load())
	}

	msgs := pub.published()
	if len(msgs) != 1 {
		t.Fatalf("published %d events, want 1", len(msgs))
	}
	if got := msgs[0].GetEventType(); got != model.EventBookingStatusChanged {
		t.Errorf("event type = %q, want %q", got, model.EventBookingStatusChanged)
	}

	var event model.BookingEvent
	if err := msgs[0].DecodeValue(&event); err != nil {
		t.Fatalf("failed to decode event: %v", err)
	}
	if event.BookingID != "bk-1" || event.Status != model.StatusConfirmed || event.PreviousStatus != model.StatusPending {
		t.Errorf("unexpected event payload: %+v", event)
	}
}

func TestUpdateStatusAllowsAnyTransition(t *testing.T) {
	// Completed back to pending is legal; the back office corrects
	// mistakes this way.
	repo := &mockRepo{
		FindByIDFunc: func(_ context.Context, id string) (*model.Booking, error) {
			return storedBooking(id, model.StatusCompleted, 100), nil
		},
	}
	svc := newTestService(repo, nil, time.Now())

	if err := svc.UpdateStatus(context.Background(), "bk-1", model.StatusPending); err != nil {
		t.Errorf("UpdateStatus() error = %v, want nil", err)
	}
}

func TestUpdateStatusUnknownBooking(t *testing.T) {
	svc := newTestService(&mockRepo{}, nil, time.Now())

	err := svc.UpdateStatus(context.Background(), "ghost", model.StatusConfirmed)
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeNotFound {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
}

func TestBulkUpdateStatusWritesEveryID(t *testing.T) {
	var mu sync.Mutex
	updated := map[string]string{}
	repo := &mockRepo{
		FindByIDFunc: func(_ context.Context, id string) (*model.Booking, error) {
			return storedBooking(id, model.StatusPending, 100), nil
		},
		UpdateStatusFunc: func(_ context.Context, id, status string, _ time.Time) error {
			mu.Lock()
			defer mu.Unlock()
			updated[id] = status
			return nil
		},
	}
	svc := newTestService(repo, &mockPublisher{}, time.Now())

	ids := []string{"bk-1", "bk-2", "bk-3"}
	if err := svc.BulkUpdateStatus(context.Background(), ids, model.StatusConfirmed); err != nil {
		t.Fatalf("BulkUpdateStatus() error = %v", err)
	}

	for _, id := range ids {
		if updated[id] != model.StatusConfirmed {
			t.Errorf("booking %s status = %q, want confirmed", id, updated[id])
		}
	}
}

func TestBulkUpdateStatusPartialFailureReturnsGenericError(t *testing.T) {
	repo := &mockRepo{
		FindByIDFunc: func(_ context.Context, id string) (*model.Booking, error) {
			return storedBooking(id, model.StatusPending, 100), nil
		},
		UpdateStatusFunc: func(_ context.Context, id, _ string, _ time.Time) error {
			if id == "bk-2" {
				return errors.New("write conflict")
			}
			return nil
		},
	}
	svc := newTestService(repo, nil, time.Now())

	err := svc.BulkUpdateStatus(context.Background(), []string{"bk-1", "bk-2", "bk-3"}, model.StatusCancelled)
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeInternal {
		t.Fatalf("error = %v, want generic INTERNAL_ERROR", err)
	}
}

func TestBulkUpdateStatusRejectsEmptySelection(t *testing.T) {
	svc := newTestService(&mockRepo{}, nil, time.Now())

	err := svc.BulkUpdateStatus(context.Background(), nil, model.StatusConfirmed)
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeInvalidInput {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}

func TestDeletePublishesEvent(t *testing.T) {
	deleted := ""
	repo := &mockRepo{
		DeleteFunc: func(_ context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	pub := &mockPublisher{}
	svc := newTestService(repo, pub, time.Now())

	if err := svc.Delete(context.Background(), "bk-9"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if deleted != "bk-9" {
		t.Errorf("deleted id = %q, want bk-9", deleted)
	}

	msgs := pub.published()
	if len(msgs) != 1 || msgs[0].GetEventType() != model.EventBookingDeleted {
		t.Errorf("expected one deleted event, got %v", msgs)
	}
}

func TestBulkDeleteRemovesSnapshotRecords(t *testing.T) {
	var mu sync.Mutex
	remaining := map[string]*model.Booking{
		"bk-1": storedBooking("bk-1", model.StatusPending, 100),
		"bk-2": storedBooking("bk-2", model.StatusPending, 100),
		"bk-3": storedBooking("bk-3", model.StatusPending, 100),
	}
	repo := &mockRepo{
		DeleteFunc: func(_ context.Context, id string) error {
			mu.Lock()
			defer mu.Unlock()
			delete(remaining, id)
			return nil
		},
		FindAllFunc: func(context.Context) ([]*model.Booking, error) {
			mu.Lock()
			defer mu.Unlock()
			var out []*model.Booking
			for _, b := range remaining {
				out = append(out, b)
			}
			return out, nil
		},
	}
	svc := newTestService(repo, &mockPublisher{}, time.Now())

	if err := svc.BulkDelete(context.Background(), []string{"bk-1", "bk-3"}); err != nil {
		t.Fatalf("BulkDelete() error = %v", err)
	}

	got := svc.List(filter.Filter{})
	if len(got) != 1 || got[0].ID != "bk-2" {
		t.Errorf("snapshot after bulk delete = %v, want only bk-2", got)
	}
}

func TestCreateValidatesAndDefaultsStatuses(t *testing.T) {
	var created *model.Booking
	repo := &mockRepo{
		CreateFunc: func(_ context.Context, b *model.Booking) error {
			created = b
			return nil
		},
	}
	svc := newTestService(repo, nil, time.Now())

	booking := &model.Booking{
		UserID:      "user-1",
		BookingType: model.TypeTour,
		TotalAmount: 250,
	}
	if err := svc.Create(context.Background(), booking); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if created.Status != model.StatusPending {
		t.Errorf("default status = %q, want pending", created.Status)
	}
	if created.PaymentStatus != model.PaymentPending {
		t.Errorf("default payment status = %q, want pending", created.PaymentStatus)
	}
}

func TestCreateRejectsInvalidBooking(t *testing.T) {
	svc := newTestService(&mockRepo{}, nil, time.Now())

	err := svc.Create(context.Background(), &model.Booking{
		UserID:      "user-1",
		BookingType: "cruise",
		TotalAmount: 10,
	})
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeValidation {
		t.Errorf("error = %v, want VALIDATION_ERROR", err)
	}
}

func TestExportCSVUsesFilteredSnapshot(t *testing.T) {
	repo := &mockRepo{
		FindAllFunc: func(context.Context) ([]*model.Booking, error) {
			return []*model.Booking{
				storedBooking("bk-1", model.StatusPending, 100),
				storedBooking("bk-2", model.StatusConfirmed, 200),
			}, nil
		},
	}
	now := time.Date(2026, 7, 3, 8, 0, 0, 0, time.UTC)
	svc := newTestService(repo, nil, now)

	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	body, filename, err := svc.ExportCSV(filter.Filter{Status: model.StatusConfirmed})
	if err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}
	if filename != "bookings-2026-07-03.csv" {
		t.Errorf("filename = %q, want bookings-2026-07-03.csv", filename)
	}

	content := string(body)
	if !strings.Contains(content, "bk-2") {
		t.Errorf("export missing filtered record: %s", content)
	}
	if strings.Contains(content, "bk-1") {
		t.Errorf("export includes record outside the filter: %s", content)
	}
}
