package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrInvalidQuantity      = errors.New("quantity must be at least 1")
	ErrInvalidCustomization = errors.New("selection does not belong to this menu item")
)

// LineItem is one customized, quantified cart entry. Catalog fields are
// copied by value so later menu edits never reprice an open cart.
type LineItem struct {
	ItemID            string     `json:"itemId"`
	Name              string     `json:"name"`
	Price             float64    `json:"price"`
	Image             string     `json:"image,omitempty"`
	Category          string     `json:"category,omitempty"`
	SelectedVariation *Variation `json:"selectedVariation,omitempty"`
	SelectedAddons    []Addon    `json:"selectedAddons,omitempty"`
	Quantity          int        `json:"quantity"`
}

// NewLineItem builds a cart line from a catalog item, rejecting
// quantities below 1 and selections that are not part of the item.
func NewLineItem(item MenuItem, variationID string, addonIDs []string, quantity int) (LineItem, error) {
	if quantity < 1 {
		return LineItem{}, ErrInvalidQuantity
	}

	line := LineItem{
		ItemID:   item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Image:    item.Image,
		Category: item.Category,
		Quantity: quantity,
	}

	if variationID != "" {
		found := false
		for _, v := range item.Variations {
			if v.ID == variationID {
				variation := v
				line.SelectedVariation = &variation
				found = true
				break
			}
		}
		if !found {
			return LineItem{}, ErrInvalidCustomization
		}
	}

	seen := map[string]bool{}
	for _, id := range addonIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		found := false
		for _, a := range item.Addons {
			if a.ID == id {
				line.SelectedAddons = append(line.SelectedAddons, a)
				found = true
				break
			}
		}
		if !found {
			return LineItem{}, ErrInvalidCustomization
		}
	}

	return line, nil
}

// EffectiveUnitPrice is base price plus variation adjustment plus addon
// prices. A combination that drives it negative is passed through as-is.
func (l LineItem) EffectiveUnitPrice() float64 {
	price := l.Price
	if l.SelectedVariation != nil {
		price += l.SelectedVariation.PriceAdjustment
	}
	for _, a := range l.SelectedAddons {
		price += a.Price
	}
	return price
}

func (l LineItem) LineTotal() float64 {
	return l.EffectiveUnitPrice() * float64(l.Quantity)
}

func (l LineItem) HasCustomizations() bool {
	return l.SelectedVariation != nil || len(l.SelectedAddons) > 0
}

func (l LineItem) addonIDs() []string {
	ids := make([]string, 0, len(l.SelectedAddons))
	for _, a := range l.SelectedAddons {
		ids = append(ids, a.ID)
	}
	sort.Strings(ids)
	return ids
}

// Key is the merge identity of a line: base item, variation and the
// addon set, order-independent. Also used as the line's REST path id.
func (l LineItem) Key() string {
	variationID := ""
	if l.SelectedVariation != nil {
		variationID = l.SelectedVariation.ID
	}
	return l.ItemID + ":" + variationID + ":" + strings.Join(l.addonIDs(), ",")
}

// MatchesForMerge reports whether two lines are the same order entry:
// same base item, same variation (or both none), identical addon sets.
func MatchesForMerge(a, b LineItem) bool {
	return a.Key() == b.Key()
}
