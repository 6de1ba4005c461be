package filter

import (
	"strings"
	"time"

	"rechargetravels/pkg/model"
)

// All disables the type or status predicate.
const All = "all"

// Filter is the predicate set selected in the dashboard toolbar. Zero
// values deactivate their predicate; active predicates AND together.
type Filter struct {
	Search string
	Type   string
	Status string
	From   *time.Time
	To     *time.Time
}

func (f Filter) IsZero() bool {
	return f.Search == "" &&
		(f.Type == "" || f.Type == All) &&
		(f.Status == "" || f.Status == All) &&
		f.From == nil && f.To == nil
}

// Apply returns the subset of bookings matching every active
// predicate. The result preserves input order and never contains a
// record absent from the input.
func Apply(bookings []*model.EnrichedBooking, f Filter) []*model.EnrichedBooking {
	if f.IsZero() {
		return bookings
	}

	term := strings.ToLower(strings.TrimSpace(f.Search))

	filtered := make([]*model.EnrichedBooking, 0, len(bookings))
	for _, b := range bookings {
		if term != "" && !matchesSearch(b, term) {
			continue
		}
		if f.Type != "" && f.Type != All && b.BookingType != f.Type {
			continue
		}
		if f.Status != "" && f.Status != All && b.Status != f.Status {
			continue
		}
		if f.From != nil && b.CreatedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && b.CreatedAt.After(*f.To) {
			continue
		}
		filtered = append(filtered, b)
	}
	return filtered
}

// matchesSearch is a case-insensitive substring OR across the id and
// related-entity display names.
func matchesSearch(b *model.EnrichedBooking, term string) bool {
	if strings.Contains(strings.ToLower(b.ID), term) {
		return true
	}
	if b.User != nil && strings.Contains(strings.ToLower(b.User.Email), term) {
		return true
	}
	if b.Driver != nil && strings.Contains(strings.ToLower(b.Driver.Name), term) {
		return true
	}
	if b.Hotel != nil && strings.Contains(strings.ToLower(b.Hotel.Name), term) {
		return true
	}
	if b.Tour != nil && strings.Contains(strings.ToLower(b.Tour.Name), term) {
		return true
	}
	return false
}
