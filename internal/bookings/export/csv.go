package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"rechargetravels/pkg/model"
)

// Header matches the columns the admin UI always exported.
var Header = []string{"ID", "Type", "Status", "Customer", "Amount", "Payment Status", "Created Date"}

const createdDateLayout = "2006-01-02 15:04"

// CSV serializes the given bookings in order, one row per record.
func CSV(bookings []*model.EnrichedBooking) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, b := range bookings {
		customer := ""
		if b.User != nil {
			customer = b.User.Email
		}
		row := []string{
			b.ID,
			b.BookingType,
			b.Status,
			customer,
			strconv.FormatFloat(b.TotalAmount, 'f', -1, 64),
			b.PaymentStatus,
			b.CreatedAt.Format(createdDateLayout),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row for booking %s: %w", b.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}
