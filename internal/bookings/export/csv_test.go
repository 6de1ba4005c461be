package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"rechargetravels/pkg/model"
)

func TestCSVHeaderOnly(t *testing.T) {
	body, err := CSV(nil)
	if err != nil {
		t.Fatalf("CSV() error = %v", err)
	}

	records := parseCSV(t, body)
	if len(records) != 1 {
		t.Fatalf("got %d rows, want header only", len(records))
	}
	for i, col := range Header {
		if records[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], col)
		}
	}
}

func TestCSVRowsPreserveOrderAndValues(t *testing.T) {
	createdAt := time.Date(2026, 4, 2, 14, 30, 45, 0, time.UTC)

	bookings := []*model.EnrichedBooking{
		{
			Booking: model.Booking{
				ID:            "bk-010",
				BookingType:   model.TypeHotel,
				Status:        model.StatusConfirmed,
				PaymentStatus: model.PaymentPaid,
				TotalAmount:   149.5,
				CreatedAt:     createdAt,
			},
			User: &model.UserSummary{Email: "carol@example.com"},
		},
		{
			Booking: model.Booking{
				ID:            "bk-011",
				BookingType:   model.TypeTour,
				Status:        model.StatusPending,
				PaymentStatus: model.PaymentPending,
				TotalAmount:   300,
				CreatedAt:     createdAt,
			},
			// No user resolved: customer column stays empty.
		},
	}

	body, err := CSV(bookings)
	if err != nil {
		t.Fatalf("CSV() error = %v", err)
	}

	records := parseCSV(t, body)
	if len(records) != 3 {
		t.Fatalf("got %d rows, want 3", len(records))
	}

	first := records[1]
	if first[0] != "bk-010" || first[1] != "hotel" || first[2] != "confirmed" {
		t.Errorf("unexpected first row: %v", first)
	}
	if first[3] != "carol@example.com" {
		t.Errorf("customer = %q, want carol@example.com", first[3])
	}
	if first[4] != "149.5" {
		t.Errorf("amount = %q, want 149.5", first[4])
	}
	if first[5] != "paid" {
		t.Errorf("payment status = %q, want paid", first[5])
	}
	if first[6] != "2026-04-02 14:30" {
		t.Errorf("created date = %q, want 2026-04-02 14:30", first[6])
	}

	second := records[2]
	if second[0] != "bk-011" {
		t.Errorf("row order not preserved: second row id = %q", second[0])
	}
	if second[3] != "" {
		t.Errorf("customer without user = %q, want empty", second[3])
	}
}

func TestCSVEscapesEmbeddedCommas(t *testing.T) {
	bookings := []*model.EnrichedBooking{
		{
			Booking: model.Booking{
				ID:          "bk-012",
				BookingType: model.TypeTransport,
				Status:      model.StatusPending,
				CreatedAt:   time.Now(),
			},
			User: &model.UserSummary{Email: "weird,address@example.com"},
		},
	}

	body, err := CSV(bookings)
	if err != nil {
		t.Fatalf("CSV() error = %v", err)
	}

	records := parseCSV(t, body)
	if records[1][3] != "weird,address@example.com" {
		t.Errorf("customer = %q, comma not preserved through encoding", records[1][3])
	}
}

func parseCSV(t *testing.T, body []byte) [][]string {
	t.Helper()
	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse generated CSV: %v", err)
	}
	return records
}
