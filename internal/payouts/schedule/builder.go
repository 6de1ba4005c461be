package schedule

import (
	"time"

	"github.com/google/uuid"

	"rechargetravels/pkg/model"
)

const stayDateLayout = "2006-01-02"

// Terms carries the payout policy knobs from configuration.
type Terms struct {
	CommissionPercent int
	FirstDelay        time.Duration
	SecondDelay       time.Duration
}

// Build materializes the 50/50 payout plan for a paid booking. The
// commission comes off the top; the remainder splits evenly, with the
// first half released after FirstDelay and the second after
// SecondDelay (the verification window).
func Build(event model.BookingEvent, terms Terms, paidAt time.Time) *model.PayoutSchedule {
	commission := event.TotalAmount * float64(terms.CommissionPercent) / 100
	ownerPayout := event.TotalAmount - commission
	half := ownerPayout / 2

	s := &model.PayoutSchedule{
		ID:                 uuid.NewString(),
		BookingID:          event.BookingID,
		TotalBookingAmount: event.TotalAmount,
		CommissionRate:     terms.CommissionPercent,
		CommissionAmount:   commission,
		OwnerPayout:        ownerPayout,
		First: model.Installment{
			Amount:        half,
			Percentage:    50,
			ScheduledDate: paidAt.Add(terms.FirstDelay),
			Status:        model.PayoutPending,
		},
		Second: model.Installment{
			Amount:        half,
			Percentage:    50,
			ScheduledDate: paidAt.Add(terms.SecondDelay),
			Status:        model.PayoutPending,
		},
		CreatedAt: paidAt,
	}

	if event.Metadata != nil {
		s.OwnerID = event.Metadata.OwnerID
		s.VehicleID = event.Metadata.VehicleID
		s.VehicleName = event.Metadata.VehicleName
		s.CustomerName = event.Metadata.CustomerName
	}
	if start, err := time.Parse(stayDateLayout, event.CheckInDate); err == nil {
		s.BookingStart = start
	}
	if end, err := time.Parse(stayDateLayout, event.CheckOutDate); err == nil {
		s.BookingEnd = end
	}

	return s
}

// DeriveStatus moves a pending installment to processing once its
// scheduled date has passed. Completed, failed, and withheld states
// are terminal and come from the payment rail, not the clock.
func DeriveStatus(inst model.Installment, now time.Time) string {
	if inst.Status == model.PayoutPending && !now.Before(inst.ScheduledDate) {
		return model.PayoutProcessing
	}
	return inst.Status
}
