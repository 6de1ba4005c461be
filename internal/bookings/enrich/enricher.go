package enrich

import (
	"context"
	"errors"
	"sync"

	bookingserrors "rechargetravels/internal/bookings/errors"
	"rechargetravels/internal/bookings/repository"
	"rechargetravels/pkg/logger"
	"rechargetravels/pkg/model"
)

// step binds one foreign-key field to its lookup and attach logic. The
// whole descriptor table is processed uniformly; a missing or failing
// lookup leaves the target field nil and never fails the batch.
type step struct {
	name   string
	key    func(b *model.Booking) string
	attach func(ctx context.Context, lookup repository.RelatedLookup, id string, eb *model.EnrichedBooking) error
}

var steps = []step{
	{
		name: "user",
		key:  func(b *model.Booking) string { return b.UserID },
		attach: func(ctx context.Context, lookup repository.RelatedLookup, id string, eb *model.EnrichedBooking) error {
			user, err := lookup.User(ctx, id)
			if err != nil {
				return err
			}
			eb.User = user
			return nil
		},
	},
	{
		name: "driver",
		key: func(b *model.Booking) string {
			if b.Metadata == nil {
				return ""
			}
			return b.Metadata.DriverID
		},
		attach: func(ctx context.Context, lookup repository.RelatedLookup, id string, eb *model.EnrichedBooking) error {
			driver, err := lookup.Driver(ctx, id)
			if err != nil {
				return err
			}
			eb.Driver = driver
			return nil
		},
	},
	{
		name: "hotel",
		key: func(b *model.Booking) string {
			if b.Metadata == nil {
				return ""
			}
			return b.Metadata.HotelID
		},
		attach: func(ctx context.Context, lookup repository.RelatedLookup, id string, eb *model.EnrichedBooking) error {
			hotel, err := lookup.Hotel(ctx, id)
			if err != nil {
				return err
			}
			eb.Hotel = hotel
			return nil
		},
	},
	{
		name: "tour",
		key: func(b *model.Booking) string {
			if b.Metadata == nil {
				return ""
			}
			return b.Metadata.TourID
		},
		attach: func(ctx context.Context, lookup repository.RelatedLookup, id string, eb *model.EnrichedBooking) error {
			tour, err := lookup.Tour(ctx, id)
			if err != nil {
				return err
			}
			eb.Tour = tour
			return nil
		},
	},
}

type Enricher struct {
	lookup repository.RelatedLookup
	log    *logger.Logger
}

func NewEnricher(lookup repository.RelatedLookup, log *logger.Logger) *Enricher {
	return &Enricher{lookup: lookup, log: log}
}

// Enrich attaches related display data to each booking. All lookups
// are issued concurrently and awaited as a group; results merge by
// record identity so completion order does not matter.
func (e *Enricher) Enrich(ctx context.Context, bookings []*model.Booking) []*model.EnrichedBooking {
	enriched := make([]*model.EnrichedBooking, len(bookings))

	var wg sync.WaitGroup
	for i, booking := range bookings {
		enriched[i] = &model.EnrichedBooking{Booking: *booking}

		for _, s := range steps {
			id := s.key(booking)
			if id == "" {
				continue
			}

			wg.Add(1)
			go func(s step, id string, eb *model.EnrichedBooking) {
				defer wg.Done()
				if err := s.attach(ctx, e.lookup, id, eb); err != nil {
					if !errors.Is(err, bookingserrors.ErrNotFound) {
						e.log.Warn("Best-effort enrichment lookup failed",
							"relation", s.name,
							"related_id", id,
							"booking_id", eb.ID,
							"error", err,
						)
					}
				}
			}(s, id, enriched[i])
		}
	}
	wg.Wait()

	return enriched
}
