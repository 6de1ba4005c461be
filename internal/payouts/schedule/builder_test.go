package schedule

import (
	"testing"
	"time"

	"rechargetravels/pkg/model"
)

func defaultTerms() Terms {
	return Terms{
		CommissionPercent: 15,
		FirstDelay:        6 * time.Hour,
		SecondDelay:       72 * time.Hour,
	}
}

func paidEvent() model.BookingEvent {
	return model.BookingEvent{
		BookingID:     "bk-20",
		BookingType:   model.TypeTransport,
		PaymentStatus: model.PaymentPaid,
		TotalAmount:   1000,
		CheckInDate:   "2026-09-01",
		CheckOutDate:  "2026-09-04",
		Metadata: &model.BookingMetadata{
			OwnerID:      "owner-1",
			VehicleID:    "veh-1",
			VehicleName:  "Sprinter 17",
			CustomerName: "Alice",
		},
	}
}

func TestBuildSplitsPayoutEvenly(t *testing.T) {
	paidAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	s := Build(paidEvent(), defaultTerms(), paidAt)

	if s.CommissionAmount != 150 {
		t.Errorf("commission = %v, want 150", s.CommissionAmount)
	}
	if s.OwnerPayout != 850 {
		t.Errorf("owner payout = %v, want 850", s.OwnerPayout)
	}
	if s.First.Amount != 425 || s.Second.Amount != 425 {
		t.Errorf("installments = %v/%v, want 425 each", s.First.Amount, s.Second.Amount)
	}
	if s.First.Percentage != 50 || s.Second.Percentage != 50 {
		t.Errorf("percentages = %d/%d, want 50/50", s.First.Percentage, s.Second.Percentage)
	}
	if s.First.Amount+s.Second.Amount+s.CommissionAmount != s.TotalBookingAmount {
		t.Error("installments plus commission do not reconstruct the booking amount")
	}
}

func TestBuildSchedulesInstallmentDates(t *testing.T) {
	paidAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	s := Build(paidEvent(), defaultTerms(), paidAt)

	wantFirst := paidAt.Add(6 * time.Hour)
	wantSecond := paidAt.Add(72 * time.Hour)
	if !s.First.ScheduledDate.Equal(wantFirst) {
		t.Errorf("first scheduled = %v, want %v", s.First.ScheduledDate, wantFirst)
	}
	if !s.Second.ScheduledDate.Equal(wantSecond) {
		t.Errorf("second scheduled = %v, want %v", s.Second.ScheduledDate, wantSecond)
	}
	if s.First.Status != model.PayoutPending || s.Second.Status != model.PayoutPending {
		t.Errorf("installments start %s/%s, want pending", s.First.Status, s.Second.Status)
	}
}

func TestBuildCarriesBookingContext(t *testing.T) {
	s := Build(paidEvent(), defaultTerms(), time.Now())

	if s.BookingID != "bk-20" || s.OwnerID != "owner-1" || s.VehicleName != "Sprinter 17" {
		t.Errorf("booking context lost: %+v", s)
	}
	if s.BookingStart.IsZero() || s.BookingEnd.IsZero() {
		t.Error("stay dates not parsed")
	}
	if s.ID == "" {
		t.Error("schedule id not assigned")
	}
}

func TestBuildZeroCommission(t *testing.T) {
	terms := defaultTerms()
	terms.CommissionPercent = 0

	s := Build(paidEvent(), terms, time.Now())

	if s.CommissionAmount != 0 || s.OwnerPayout != 1000 {
		t.Errorf("commission = %v, payout = %v, want 0 and 1000", s.CommissionAmount, s.OwnerPayout)
	}
}

func TestDeriveStatus(t *testing.T) {
	scheduled := time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		inst model.Installment
		now  time.Time
		want string
	}{
		{
			name: "pending before scheduled date",
			inst: model.Installment{Status: model.PayoutPending, ScheduledDate: scheduled},
			now:  scheduled.Add(-time.Hour),
			want: model.PayoutPending,
		},
		{
			name: "pending at scheduled date becomes processing",
			inst: model.Installment{Status: model.PayoutPending, ScheduledDate: scheduled},
			now:  scheduled,
			want: model.PayoutProcessing,
		},
		{
			name: "completed stays completed",
			inst: model.Installment{Status: model.PayoutCompleted, ScheduledDate: scheduled},
			now:  scheduled.Add(time.Hour),
			want: model.PayoutCompleted,
		},
		{
			name: "withheld stays withheld",
			inst: model.Installment{Status: model.PayoutWithheld, ScheduledDate: scheduled},
			now:  scheduled.Add(time.Hour),
			want: model.PayoutWithheld,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveStatus(tt.inst, tt.now); got != tt.want {
				t.Errorf("DeriveStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}
