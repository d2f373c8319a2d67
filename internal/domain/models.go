package domain

import "time"

type Variation struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	PriceAdjustment float64 `json:"priceAdjustment"`
}

type Addon struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category,omitempty"`
}

type MenuItem struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Price       float64     `json:"price"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Category    string      `json:"category"`
	Variations  []Variation `json:"variations,omitempty"`
	Addons      []Addon     `json:"addons,omitempty"`
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Coupon is a seeded, read-only discount rule. ExpiryDate is a calendar
// date in 2006-01-02 form; the coupon stays valid through the end of
// that day.
type Coupon struct {
	ID                 string       `json:"id"`
	Code               string       `json:"code"`
	Description        string       `json:"description"`
	DiscountType       DiscountType `json:"discountType"`
	DiscountValue      float64      `json:"discountValue"`
	MinimumOrderAmount float64      `json:"minimumOrderAmount"`
	ExpiryDate         string       `json:"expiryDate"`
	IsActive           bool         `json:"isActive"`
}

type OrderType string

const (
	OrderDineIn OrderType = "dine-in"
	OrderToGo   OrderType = "to-go"
)

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableReserved  TableStatus = "reserved"
)

// OrderSummary is the projection of a live order carried on a table
// record: just enough for the floor view, never the line items.
type OrderSummary struct {
	ID    string `json:"id"`
	Items int    `json:"items"`
	Time  string `json:"time"`
}

type Table struct {
	ID     int           `json:"id"`
	Number int           `json:"number"`
	Seats  int           `json:"seats"`
	Status TableStatus   `json:"status"`
	Order  *OrderSummary `json:"order,omitempty"`
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderInKitchen OrderStatus = "in-kitchen"
	OrderCompleted OrderStatus = "completed"
)

type Order struct {
	ID              string      `json:"id"`
	Items           []LineItem  `json:"items"`
	TableID         *int        `json:"tableId,omitempty"`
	TableNumber     *int        `json:"tableNumber,omitempty"`
	OrderType       OrderType   `json:"orderType"`
	Status          OrderStatus `json:"status"`
	Totals          Totals      `json:"totals"`
	PaymentMethod   string      `json:"paymentMethod,omitempty"`
	PaymentRef      string      `json:"paymentRef,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
	SentToKitchenAt *time.Time  `json:"sentToKitchenAt,omitempty"`
}

// KitchenTicket is the message published when an order is sent to the
// kitchen. Delivery is at-least-once; consumers dedupe on OrderID.
type KitchenTicket struct {
	Type        string     `json:"type"`
	OrderID     string     `json:"order_id"`
	TableNumber *int       `json:"table_number,omitempty"`
	OrderType   OrderType  `json:"order_type"`
	Items       []LineItem `json:"items"`
	Timestamp   time.Time  `json:"timestamp"`
}
