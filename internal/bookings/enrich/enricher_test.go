package enrich

import (
	"context"
	"errors"
	"testing"

	bookingserrors "rechargetravels/internal/bookings/errors"
	"rechargetravels/pkg/logger"
	"rechargetravels/pkg/model"
)

type mockLookup struct {
	UserFunc   func(ctx context.Context, id string) (*model.UserSummary, error)
	DriverFunc func(ctx context.Context, id string) (*model.DriverSummary, error)
	HotelFunc  func(ctx context.Context, id string) (*model.HotelSummary, error)
	TourFunc   func(ctx context.Context, id string) (*model.TourSummary, error)
}

func (m *mockLookup) User(ctx context.Context, id string) (*model.UserSummary, error) {
	if m.UserFunc != nil {
		return m.UserFunc(ctx, id)
	}
	return nil, bookingserrors.ErrNotFound
}

func (m *mockLookup) Driver(ctx context.Context, id string) (*model.DriverSummary, error) {
	if m.DriverFunc != nil {
		return m.DriverFunc(ctx, id)
	}
	return nil, bookingserrors.ErrNotFound
}

func (m *mockLookup) Hotel(ctx context.Context, id string) (*model.HotelSummary, error) {
	if m.HotelFunc != nil {
		return m.HotelFunc(ctx, id)
	}
	return nil, bookingserrors.ErrNotFound
}

func (m *mockLookup) Tour(ctx context.Context, id string) (*model.TourSummary, error) {
	if m.TourFunc != nil {
		return m.TourFunc(ctx, id)
	}
	return nil, bookingserrors.ErrNotFound
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Service: "enrich-test"})
}

func TestEnrichAttachesRelatedData(t *testing.T) {
	lookup := &mockLookup{
		UserFunc: func(_ context.Context, id string) (*model.UserSummary, error) {
			if id != "user-1" {
				t.Errorf("unexpected user id %q", id)
			}
			return &model.UserSummary{Email: "dana@example.com", FullName: "Dana"}, nil
		},
		HotelFunc: func(_ context.Context, id string) (*model.HotelSummary, error) {
			return &model.HotelSummary{Name: "Cedar Inn", Location: "Ifrane"}, nil
		},
	}
	e := NewEnricher(lookup, testLogger())

	bookings := []*model.Booking{
		{
			ID:          "bk-1",
			UserID:      "user-1",
			BookingType: model.TypeHotel,
			Metadata:    &model.BookingMetadata{HotelID: "hotel-1"},
		},
	}

	got := e.Enrich(context.Background(), bookings)

	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	if got[0].User == nil || got[0].User.Email != "dana@example.com" {
		t.Errorf("user not attached: %+v", got[0].User)
	}
	if got[0].Hotel == nil || got[0].Hotel.Name != "Cedar Inn" {
		t.Errorf("hotel not attached: %+v", got[0].Hotel)
	}
	if got[0].Driver != nil || got[0].Tour != nil {
		t.Errorf("unexpected relations attached: driver=%+v tour=%+v", got[0].Driver, got[0].Tour)
	}
}

func TestEnrichMissingForeignKeySkipsLookup(t *testing.T) {
	calls := 0
	lookup := &mockLookup{
		HotelFunc: func(_ context.Context, _ string) (*model.HotelSummary, error) {
			calls++
			return &model.HotelSummary{Name: "x"}, nil
		},
	}
	e := NewEnricher(lookup, testLogger())

	// No metadata at all: every relation key is absent.
	got := e.Enrich(context.Background(), []*model.Booking{{ID: "bk-2", BookingType: model.TypeHotel}})

	if calls != 0 {
		t.Errorf("hotel lookup called %d times for a booking without hotel_id", calls)
	}
	if got[0].Hotel != nil {
		t.Errorf("hotel = %+v, want nil", got[0].Hotel)
	}
}

func TestEnrichDanglingReferenceLeavesFieldNil(t *testing.T) {
	e := NewEnricher(&mockLookup{}, testLogger())

	bookings := []*model.Booking{
		{
			ID:       "bk-3",
			UserID:   "ghost",
			Metadata: &model.BookingMetadata{HotelID: "gone"},
		},
	}

	got := e.Enrich(context.Background(), bookings)

	if got[0].User != nil {
		t.Errorf("user = %+v, want nil for dangling reference", got[0].User)
	}
	if got[0].Hotel != nil {
		t.Errorf("hotel = %+v, want nil for dangling reference", got[0].Hotel)
	}
	if got[0].ID != "bk-3" {
		t.Errorf("base booking fields lost: id = %q", got[0].ID)
	}
}

func TestEnrichLookupErrorDoesNotFailBatch(t *testing.T) {
	lookup := &mockLookup{
		UserFunc: func(_ context.Context, _ string) (*model.UserSummary, error) {
			return nil, errors.New("connection reset")
		},
		TourFunc: func(_ context.Context, _ string) (*model.TourSummary, error) {
			return &model.TourSummary{Name: "Desert Loop", Duration: "3 days"}, nil
		},
	}
	e := NewEnricher(lookup, testLogger())

	bookings := []*model.Booking{
		{
			ID:       "bk-4",
			UserID:   "user-4",
			Metadata: &model.BookingMetadata{TourID: "tour-4"},
		},
	}

	got := e.Enrich(context.Background(), bookings)

	if got[0].User != nil {
		t.Errorf("user = %+v, want nil after lookup failure", got[0].User)
	}
	if got[0].Tour == nil || got[0].Tour.Name != "Desert Loop" {
		t.Errorf("tour lookup should survive sibling failure, got %+v", got[0].Tour)
	}
}

func TestEnrichManyRecordsMergeByIdentity(t *testing.T) {
	lookup := &mockLookup{
		UserFunc: func(_ context.Context, id string) (*model.UserSummary, error) {
			return &model.UserSummary{Email: id + "@example.com"}, nil
		},
	}
	e := NewEnricher(lookup, testLogger())

	var bookings []*model.Booking
	for i := 0; i < 50; i++ {
		bookings = append(bookings, &model.Booking{
			ID:     "bk-" + string(rune('a'+i%26)) + string(rune('0'+i%10)),
			UserID: "u" + string(rune('0'+i%10)),
		})
	}

	got := e.Enrich(context.Background(), bookings)

	for i, eb := range got {
		if eb.ID != bookings[i].ID {
			t.Fatalf("record %d out of order: %q vs %q", i, eb.ID, bookings[i].ID)
		}
		want := bookings[i].UserID + "@example.com"
		if eb.User == nil || eb.User.Email != want {
			t.Fatalf("record %d: user email = %v, want %q", i, eb.User, want)
		}
	}
}
