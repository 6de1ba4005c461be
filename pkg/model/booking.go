package model

import "time"

// Booking lifecycle and payment states. Transitions are deliberately
// unrestricted: any status may move to any other, matching the admin
// tooling this backend serves.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"

	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
	PaymentFailed   = "failed"

	TypeTransport = "transport"
	TypeHotel     = "hotel"
	TypeTour      = "tour"
	TypePackage   = "package"
	TypeActivity  = "activity"
)

type BookingMetadata struct {
	DriverID string `json:"driver_id,omitempty" bson:"driver_id,omitempty"`
	HotelID  string `json:"hotel_id,omitempty" bson:"hotel_id,omitempty"`
	TourID   string `json:"tour_id,omitempty" bson:"tour_id,omitempty"`

	// Vehicle-rental bookings carry the rented vehicle and its owner so
	// the payouts service can materialize the 50/50 schedule.
	VehicleID    string `json:"vehicle_id,omitempty" bson:"vehicle_id,omitempty"`
	OwnerID      string `json:"owner_id,omitempty" bson:"owner_id,omitempty"`
	VehicleName  string `json:"vehicle_name,omitempty" bson:"vehicle_name,omitempty"`
	CustomerName string `json:"customer_name,omitempty" bson:"customer_name,omitempty"`
}

type Booking struct {
	ID            string           `json:"id,omitempty" bson:"_id,omitempty"`
	UserID        string           `json:"user_id" bson:"user_id" validate:"required"`
	BookingType   string           `json:"booking_type" bson:"booking_type" validate:"required,oneof=transport hotel tour package activity"`
	Status        string           `json:"status" bson:"status" validate:"required,oneof=pending confirmed cancelled completed"`
	PaymentStatus string           `json:"payment_status" bson:"payment_status" validate:"required,oneof=pending paid refunded failed"`
	PaymentMethod string           `json:"payment_method,omitempty" bson:"payment_method,omitempty"`
	TotalAmount   float64          `json:"total_amount" bson:"total_amount" validate:"gte=0"`
	CheckInDate   string           `json:"check_in_date,omitempty" bson:"check_in_date,omitempty"`
	CheckOutDate  string           `json:"check_out_date,omitempty" bson:"check_out_date,omitempty"`
	Metadata      *BookingMetadata `json:"metadata,omitempty" bson:"metadata,omitempty"`
	CreatedAt     time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at" bson:"updated_at"`
}

// UserSummary, DriverSummary, HotelSummary, and TourSummary carry the
// projected display fields the enrichment step attaches to a booking.
type UserSummary struct {
	Email    string `json:"email" bson:"email"`
	FullName string `json:"full_name,omitempty" bson:"full_name,omitempty"`
}

type DriverSummary struct {
	Name  string `json:"name" bson:"name"`
	Phone string `json:"phone" bson:"phone"`
}

type HotelSummary struct {
	Name     string `json:"name" bson:"name"`
	Location string `json:"location" bson:"location"`
}

type TourSummary struct {
	Name     string `json:"name" bson:"name"`
	Duration string `json:"duration" bson:"duration"`
}

// EnrichedBooking is a booking plus whatever related display data the
// best-effort lookups found. Absent relations stay nil.
type EnrichedBooking struct {
	Booking `bson:",inline"`

	User   *UserSummary   `json:"user,omitempty" bson:"user,omitempty"`
	Driver *DriverSummary `json:"driver,omitempty" bson:"driver,omitempty"`
	Hotel  *HotelSummary  `json:"hotel,omitempty" bson:"hotel,omitempty"`
	Tour   *TourSummary   `json:"tour,omitempty" bson:"tour,omitempty"`
}

// BookingStats is the dashboard summary block.
type BookingStats struct {
	Total        int     `json:"total"`
	Pending      int     `json:"pending"`
	Confirmed    int     `json:"confirmed"`
	Cancelled    int     `json:"cancelled"`
	Completed    int     `json:"completed"`
	TotalRevenue float64 `json:"total_revenue"`
	TodayRevenue float64 `json:"today_revenue"`
	WeekRevenue  float64 `json:"week_revenue"`
	MonthRevenue float64 `json:"month_revenue"`
}

// BookingUpdate is a partial update applied by the admin edit dialog.
type BookingUpdate struct {
	Status        string   `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed cancelled completed"`
	PaymentStatus string   `json:"payment_status,omitempty" validate:"omitempty,oneof=pending paid refunded failed"`
	TotalAmount   *float64 `json:"total_amount,omitempty" validate:"omitempty,gte=0"`
	CheckInDate   string   `json:"check_in_date,omitempty"`
	CheckOutDate  string   `json:"check_out_date,omitempty"`
}
