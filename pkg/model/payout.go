package model

import "time"

// Installment states for the 50/50 payout timeline.
const (
	PayoutPending    = "pending"
	PayoutProcessing = "processing"
	PayoutCompleted  = "completed"
	PayoutFailed     = "failed"
	PayoutWithheld   = "withheld"
)

// Installment is one half of an owner payout.
type Installment struct {
	Amount         float64    `json:"amount" bson:"amount"`
	Percentage     int        `json:"percentage" bson:"percentage"`
	ScheduledDate  time.Time  `json:"scheduled_date" bson:"scheduled_date"`
	Status         string     `json:"status" bson:"status" validate:"required,oneof=pending processing completed failed withheld"`
	PaidDate       *time.Time `json:"paid_date,omitempty" bson:"paid_date,omitempty"`
	TransactionID  string     `json:"transaction_id,omitempty" bson:"transaction_id,omitempty"`
	WithholdReason string     `json:"withhold_reason,omitempty" bson:"withhold_reason,omitempty"`
}

// PayoutSchedule is the materialized 50/50 payout plan for one paid
// vehicle booking.
type PayoutSchedule struct {
	ID                 string      `json:"id,omitempty" bson:"_id,omitempty"`
	BookingID          string      `json:"booking_id" bson:"booking_id" validate:"required"`
	OwnerID            string      `json:"owner_id" bson:"owner_id" validate:"required"`
	VehicleID          string      `json:"vehicle_id,omitempty" bson:"vehicle_id,omitempty"`
	VehicleName        string      `json:"vehicle_name,omitempty" bson:"vehicle_name,omitempty"`
	CustomerName       string      `json:"customer_name,omitempty" bson:"customer_name,omitempty"`
	BookingStart       time.Time   `json:"booking_start,omitempty" bson:"booking_start,omitempty"`
	BookingEnd         time.Time   `json:"booking_end,omitempty" bson:"booking_end,omitempty"`
	TotalBookingAmount float64     `json:"total_booking_amount" bson:"total_booking_amount" validate:"gte=0"`
	CommissionRate     int         `json:"commission_rate" bson:"commission_rate"`
	CommissionAmount   float64     `json:"commission_amount" bson:"commission_amount"`
	OwnerPayout        float64     `json:"owner_payout" bson:"owner_payout"`
	First              Installment `json:"first" bson:"first"`
	Second             Installment `json:"second" bson:"second"`
	CreatedAt          time.Time   `json:"created_at" bson:"created_at"`
}

// PayoutStats summarizes an owner's earnings for the payouts screen.
type PayoutStats struct {
	TotalEarnings     float64 `json:"total_earnings"`
	PendingPayouts    float64 `json:"pending_payouts"`
	ProcessingPayouts float64 `json:"processing_payouts"`
	CompletedPayouts  float64 `json:"completed_payouts"`
	WithheldPayouts   float64 `json:"withheld_payouts"`
	ThisMonthEarnings float64 `json:"this_month_earnings"`
	LastMonthEarnings float64 `json:"last_month_earnings"`
}
