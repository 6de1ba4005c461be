package stats

import (
	"rechargetravels/pkg/clock"
	"rechargetravels/pkg/model"
)

// Compute summarizes the enriched list for the dashboard header. Window
// boundaries come from the injected clock, so two calls at different
// times over the same data can legitimately disagree.
func Compute(bookings []*model.EnrichedBooking, clk clock.Clock) model.BookingStats {
	now := clk.Now()
	todayStart := clock.StartOfDay(now)
	weekStart := clock.StartOfWeek(now)
	monthStart := clock.StartOfMonth(now)

	s := model.BookingStats{Total: len(bookings)}

	for _, b := range bookings {
		switch b.Status {
		case model.StatusPending:
			s.Pending++
		case model.StatusConfirmed:
			s.Confirmed++
		case model.StatusCancelled:
			s.Cancelled++
		case model.StatusCompleted:
			s.Completed++
		}

		s.TotalRevenue += b.TotalAmount
		if !b.CreatedAt.Before(todayStart) {
			s.TodayRevenue += b.TotalAmount
		}
		if !b.CreatedAt.Before(weekStart) {
			s.WeekRevenue += b.TotalAmount
		}
		if !b.CreatedAt.Before(monthStart) {
			s.MonthRevenue += b.TotalAmount
		}
	}

	return s
}
