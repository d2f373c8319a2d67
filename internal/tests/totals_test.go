package tests

import (
	"testing"
	"time"

	"restaurant-pos/internal/domain"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)

func line(id string, price float64, qty int) domain.LineItem {
	return domain.LineItem{ItemID: id, Name: id, Price: price, Quantity: qty}
}

func percentCoupon(code string, value, minimum float64, expiry string) *domain.Coupon {
	return &domain.Coupon{
		Code: code, DiscountType: domain.DiscountPercentage,
		DiscountValue: value, MinimumOrderAmount: minimum,
		ExpiryDate: expiry, IsActive: true,
	}
}

func TestComputeTotals_PercentCouponAndTax(t *testing.T) {
	items := []domain.LineItem{line("pizza", 100, 1)}
	coupon := percentCoupon("WELCOME15", 15, 0, "2027-12-31")

	totals := domain.ComputeTotals(items, coupon, domain.TipSpec{Percent: 15}, testNow)

	assert.InDelta(t, 100.00, totals.Subtotal, 0.001)
	assert.InDelta(t, 15.00, totals.Discount, 0.001)
	assert.InDelta(t, 5.95, totals.Tax, 0.001)
	assert.InDelta(t, 90.95, totals.Total, 0.001)
	assert.InDelta(t, 12.75, totals.Tip, 0.001)
	assert.Equal(t, 15, totals.TipPercent)
	assert.Empty(t, totals.CouponError)
}

func TestComputeTotals_FixedCouponClamped(t *testing.T) {
	items := []domain.LineItem{line("soda", 3, 1)}
	coupon := &domain.Coupon{
		Code: "FLAT5", DiscountType: domain.DiscountFixed,
		DiscountValue: 5, ExpiryDate: "2027-12-31", IsActive: true,
	}

	totals := domain.ComputeTotals(items, coupon, domain.TipSpec{}, testNow)

	assert.InDelta(t, 3.00, totals.Discount, 0.001)
	assert.InDelta(t, 0.00, totals.Tax, 0.001)
	assert.InDelta(t, 0.00, totals.Total, 0.001)
}

func TestComputeTotals_StaleCouponReported(t *testing.T) {
	tests := []struct {
		name   string
		coupon *domain.Coupon
	}{
		{"expired_yesterday", percentCoupon("OLD10", 10, 0, "2026-08-28")},
		{"below_minimum", percentCoupon("SUMMER10", 10, 30, "2027-12-31")},
	}

	items := []domain.LineItem{line("fries", 4.99, 2)}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			totals := domain.ComputeTotals(items, testCase.coupon, domain.TipSpec{}, testNow)
			assert.NotEmpty(t, totals.CouponError)
			assert.InDelta(t, 0.00, totals.Discount, 0.001)
			assert.InDelta(t, totals.Subtotal+totals.Tax, totals.Total, 0.001)
		})
	}
}

func TestCoupon_ValidOnLastDay(t *testing.T) {
	coupon := percentCoupon("LASTDAY", 10, 0, "2026-08-29")
	assert.NoError(t, coupon.ValidFor(50, testNow))
}

func TestCoupon_MinimumOrderMessage(t *testing.T) {
	coupon := percentCoupon("SUMMER10", 10, 30, "2027-12-31")
	err := coupon.ValidFor(20, testNow)
	assert.ErrorIs(t, err, domain.ErrMinimumOrderNotMet)
	assert.Contains(t, err.Error(), "$30.00")
}

func TestComputeTotals_CustomTipBackderivesPercent(t *testing.T) {
	items := []domain.LineItem{line("pizza", 100, 1)}
	coupon := percentCoupon("WELCOME15", 15, 0, "2027-12-31")

	totals := domain.ComputeTotals(items, coupon, domain.TipSpec{Amount: 10, Custom: true}, testNow)

	assert.InDelta(t, 10.00, totals.Tip, 0.001)
	assert.Equal(t, 12, totals.TipPercent)
}

func TestComputeTotals_CustomTipOnEmptyCart(t *testing.T) {
	totals := domain.ComputeTotals(nil, nil, domain.TipSpec{Amount: 5, Custom: true}, testNow)
	assert.InDelta(t, 5.00, totals.Tip, 0.001)
	assert.Equal(t, 0, totals.TipPercent)
}

func TestLineItem_EffectiveUnitPrice(t *testing.T) {
	small := domain.Variation{ID: "v-small", Name: "Small", PriceAdjustment: -2}
	cheese := domain.Addon{ID: "a-cheese", Name: "Extra Cheese", Price: 1.5}

	l := domain.LineItem{
		ItemID: "pizza", Price: 12.99,
		SelectedVariation: &small,
		SelectedAddons:    []domain.Addon{cheese},
		Quantity:          3,
	}

	assert.InDelta(t, 12.49, l.EffectiveUnitPrice(), 0.001)
	assert.InDelta(t, 37.47, l.LineTotal(), 0.001)
}

func TestLineItem_NegativePricePassesThrough(t *testing.T) {
	deep := domain.Variation{ID: "v", PriceAdjustment: -10}
	l := domain.LineItem{ItemID: "x", Price: 4, SelectedVariation: &deep, Quantity: 1}
	assert.InDelta(t, -6.00, l.EffectiveUnitPrice(), 0.001)
}

func TestLineItem_MergeIdentity(t *testing.T) {
	v := &domain.Variation{ID: "v-large"}
	a := domain.Addon{ID: "a-olives"}
	b := domain.Addon{ID: "a-mushrooms"}

	tests := []struct {
		name  string
		left  domain.LineItem
		right domain.LineItem
		match bool
	}{
		{
			name:  "same_addons_any_order",
			left:  domain.LineItem{ItemID: "pizza", SelectedVariation: v, SelectedAddons: []domain.Addon{a, b}},
			right: domain.LineItem{ItemID: "pizza", SelectedVariation: v, SelectedAddons: []domain.Addon{b, a}},
			match: true,
		},
		{
			name:  "different_variation",
			left:  domain.LineItem{ItemID: "pizza", SelectedVariation: v},
			right: domain.LineItem{ItemID: "pizza"},
			match: false,
		},
		{
			name:  "different_addon_set",
			left:  domain.LineItem{ItemID: "pizza", SelectedAddons: []domain.Addon{a}},
			right: domain.LineItem{ItemID: "pizza", SelectedAddons: []domain.Addon{a, b}},
			match: false,
		},
		{
			name:  "plain_items",
			left:  domain.LineItem{ItemID: "soda"},
			right: domain.LineItem{ItemID: "soda"},
			match: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.match, domain.MatchesForMerge(testCase.left, testCase.right))
		})
	}
}

func TestNewLineItem_Validation(t *testing.T) {
	item := domain.MenuItem{
		ID: "pizza", Name: "Margherita", Price: 12.99,
		Variations: []domain.Variation{{ID: "v-small", PriceAdjustment: -2}},
		Addons:     []domain.Addon{{ID: "a-cheese", Price: 1.5}},
	}

	tests := []struct {
		name        string
		variationID string
		addonIDs    []string
		quantity    int
		expected    error
	}{
		{"zero_quantity", "", nil, 0, domain.ErrInvalidQuantity},
		{"negative_quantity", "", nil, -1, domain.ErrInvalidQuantity},
		{"foreign_variation", "v-xl", nil, 1, domain.ErrInvalidCustomization},
		{"foreign_addon", "", []string{"a-bacon"}, 1, domain.ErrInvalidCustomization},
		{"valid", "v-small", []string{"a-cheese"}, 2, nil},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := domain.NewLineItem(item, testCase.variationID, testCase.addonIDs, testCase.quantity)
			assert.ErrorIs(t, err, testCase.expected)
		})
	}
}

func TestNewLineItem_DeduplicatesAddons(t *testing.T) {
	item := domain.MenuItem{
		ID: "pizza", Price: 12.99,
		Addons: []domain.Addon{{ID: "a-cheese", Price: 1.5}},
	}
	l, err := domain.NewLineItem(item, "", []string{"a-cheese", "a-cheese"}, 1)
	assert.NoError(t, err)
	assert.Len(t, l.SelectedAddons, 1)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0m", domain.FormatDuration(30*time.Second))
	assert.Equal(t, "45m", domain.FormatDuration(45*time.Minute))
	assert.Equal(t, "1h 5m", domain.FormatDuration(65*time.Minute))
	assert.Equal(t, "2h 0m", domain.FormatDuration(2*time.Hour))
	assert.Equal(t, "0m", domain.FormatDuration(-time.Minute))
}

func TestSnapshotRoundTrip(t *testing.T) {
	tableID, tableNumber := 5, 5
	startedAt := testNow.Add(-20 * time.Minute)
	session := &domain.Session{
		ID: "s-1",
		Items: []domain.LineItem{
			{ItemID: "pizza", Name: "Margherita", Price: 12.99,
				SelectedVariation: &domain.Variation{ID: "v-large", PriceAdjustment: 3},
				SelectedAddons:    []domain.Addon{{ID: "a-cheese", Price: 1.5}},
				Quantity:          2},
		},
		TableID: &tableID, TableNumber: &tableNumber,
		OrderType: domain.OrderDineIn,
		Coupon:    percentCoupon("WELCOME15", 15, 0, "2027-12-31"),
		Tip:       domain.TipSpec{Percent: 18},
		CreatedAt: testNow, StartedAt: &startedAt,
	}

	payload, err := domain.EncodeSnapshot(session)
	assert.NoError(t, err)

	restored, err := domain.DecodeSnapshot(payload)
	assert.NoError(t, err)
	assert.Equal(t, session, restored)
}
