package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Session is a live cart: the line items being built up plus the order
// context around them. Order type and table binding stay consistent: a
// to-go session never carries a table.
type Session struct {
	ID          string     `json:"id"`
	Items       []LineItem `json:"items"`
	TableID     *int       `json:"tableId,omitempty"`
	TableNumber *int       `json:"tableNumber,omitempty"`
	OrderType   OrderType  `json:"orderType"`
	Coupon      *Coupon    `json:"coupon,omitempty"`
	Tip         TipSpec    `json:"tip"`
	CreatedAt   time.Time  `json:"createdAt"`
	// StartedAt is set once when a table is first bound and survives
	// re-binding; it drives the dine-in duration label.
	StartedAt *time.Time `json:"startedAt,omitempty"`
}

// ItemCount is the number of units across all lines, the figure shown
// on the table's order summary.
func (s *Session) ItemCount() int {
	count := 0
	for _, line := range s.Items {
		count += line.Quantity
	}
	return count
}

func (s *Session) Totals(now time.Time) Totals {
	return ComputeTotals(s.Items, s.Coupon, s.Tip, now)
}

// EncodeSnapshot serializes a session for handoff across navigation
// boundaries. The round-trip through DecodeSnapshot is lossless for
// every line item field.
func EncodeSnapshot(s *Session) ([]byte, error) {
	return json.Marshal(s)
}

func DecodeSnapshot(payload []byte) (*Session, error) {
	var s Session
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, fmt.Errorf("decode session snapshot: %w", err)
	}
	return &s, nil
}

// FormatDuration renders a table's active time as "{h}h {m}m", or just
// "{m}m" under an hour.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int(d.Minutes())
	if minutes >= 60 {
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}
