package domain

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// TaxRate applies to the post-discount subtotal. Tips are not taxed.
const TaxRate = 0.07

var (
	ErrCouponExpired      = errors.New("this coupon has expired")
	ErrMinimumOrderNotMet = errors.New("minimum order not met")
)

// TipSpec is either a percentage of the discounted subtotal or, when
// Custom is set, a literal amount with a display percentage derived
// from it.
type TipSpec struct {
	Percent int     `json:"percent"`
	Amount  float64 `json:"amount,omitempty"`
	Custom  bool    `json:"custom,omitempty"`
}

type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	Discount   float64 `json:"discount"`
	Tax        float64 `json:"tax"`
	Tip        float64 `json:"tip"`
	TipPercent int     `json:"tipPercent"`
	// Total is discounted subtotal plus tax; the amount charged at
	// checkout is Total + Tip.
	Total float64 `json:"total"`
	// CouponError reports why an attached coupon contributed no
	// discount, e.g. the cart shrank below its minimum.
	CouponError string `json:"couponError,omitempty"`
}

func (c Coupon) expiry() (time.Time, error) {
	return time.Parse("2006-01-02", c.ExpiryDate)
}

// ValidFor checks a coupon against a subtotal at a point in time. The
// expiry comparison is calendar-date based: the coupon's last day still
// counts.
func (c Coupon) ValidFor(subtotal float64, now time.Time) error {
	expiry, err := c.expiry()
	if err != nil {
		return fmt.Errorf("bad expiry date %q: %w", c.ExpiryDate, err)
	}
	nowDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if nowDate.After(expiry) {
		return ErrCouponExpired
	}
	if subtotal < c.MinimumOrderAmount {
		return fmt.Errorf("%w: this coupon requires a minimum order of $%.2f",
			ErrMinimumOrderNotMet, c.MinimumOrderAmount)
	}
	return nil
}

// DiscountFor computes the raw discount before the aggregator clamps it
// to the subtotal.
func (c Coupon) DiscountFor(subtotal float64) float64 {
	if c.DiscountType == DiscountPercentage {
		return subtotal * (c.DiscountValue / 100)
	}
	return c.DiscountValue
}

// ComputeTotals is the whole price breakdown as a pure projection of
// (cart, coupon, tip). Callers re-invoke it after every mutation; no
// field is incrementally maintained. A coupon that no longer qualifies
// for the current subtotal contributes nothing and is reported via
// CouponError.
func ComputeTotals(items []LineItem, coupon *Coupon, tip TipSpec, now time.Time) Totals {
	t := Totals{}
	for _, line := range items {
		t.Subtotal += line.LineTotal()
	}

	if coupon != nil {
		if err := coupon.ValidFor(t.Subtotal, now); err != nil {
			t.CouponError = err.Error()
		} else {
			t.Discount = coupon.DiscountFor(t.Subtotal)
			if t.Discount > t.Subtotal {
				t.Discount = t.Subtotal
			}
		}
	}

	discounted := t.Subtotal - t.Discount
	t.Tax = discounted * TaxRate
	t.Total = discounted + t.Tax

	if tip.Custom {
		t.Tip = tip.Amount
		if discounted > 0 {
			t.TipPercent = int(math.Round(tip.Amount / discounted * 100))
		}
	} else if tip.Percent > 0 {
		t.TipPercent = tip.Percent
		t.Tip = discounted * float64(tip.Percent) / 100
	}

	return t
}
