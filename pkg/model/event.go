package model

import "time"

// Event types published on the bookings topic.
const (
	EventBookingStatusChanged = "booking.status_changed"
	EventBookingDeleted       = "booking.deleted"
)

// Kafka topics carrying booking lifecycle events.
const (
	TopicBookingEvents    = "bookings.events"
	TopicBookingEventsDLQ = "bookings.events.dlq"
)

// BookingEvent is the payload published when an admin mutation lands.
type BookingEvent struct {
	BookingID      string           `json:"booking_id"`
	BookingType    string           `json:"booking_type,omitempty"`
	Status         string           `json:"status,omitempty"`
	PreviousStatus string           `json:"previous_status,omitempty"`
	PaymentStatus  string           `json:"payment_status,omitempty"`
	TotalAmount    float64          `json:"total_amount,omitempty"`
	CheckInDate    string           `json:"check_in_date,omitempty"`
	CheckOutDate   string           `json:"check_out_date,omitempty"`
	Metadata       *BookingMetadata `json:"metadata,omitempty"`
	OccurredAt     time.Time        `json:"occurred_at"`
}
