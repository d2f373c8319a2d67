package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/skip2/go-qrcode"

	"restaurant-pos/internal/domain"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrEmptyCartCheckout = errors.New("order must contain at least one item")
	ErrInsufficientCash  = errors.New("cash amount must be equal to or greater than the total")
	ErrPaymentInFlight   = errors.New("a payment is already in progress for this order")
)

// OrderService finalizes carts into orders, simulates payment, and
// hands completed orders to the kitchen. Payment is a single in-flight
// idempotent request per session: the pay action is refused while one
// is outstanding.
type OrderService struct {
	orders    OrderRepository
	carts     CartServiceInterface
	cache     SessionCache
	publisher TicketPublisher

	// artificial processing time for the simulated payment gateway
	paymentDelay time.Duration

	// in-process marker fallback when no cache is configured
	localMarkers sync.Map
}

func NewOrderService(orders OrderRepository, carts CartServiceInterface, cache SessionCache, publisher TicketPublisher, paymentDelay time.Duration) *OrderService {
	return &OrderService{
		orders:       orders,
		carts:        carts,
		cache:        cache,
		publisher:    publisher,
		paymentDelay: paymentDelay,
	}
}

type CreateOrderInput struct {
	Items       []domain.LineItem `json:"items"`
	TableID     *int              `json:"tableId,omitempty"`
	TableNumber *int              `json:"tableNumber,omitempty"`
	OrderType   domain.OrderType  `json:"orderType"`
}

type OrderPatch struct {
	Status *domain.OrderStatus `json:"status,omitempty"`
}

type CheckoutInput struct {
	SessionID     string  `json:"sessionId"`
	PaymentMethod string  `json:"paymentMethod"`
	CashAmount    float64 `json:"cashAmount,omitempty"`
}

type CheckoutResult struct {
	Order  domain.Order `json:"order"`
	Change float64      `json:"change,omitempty"`
}

func (s *OrderService) List(orderType domain.OrderType, tableID *int) ([]domain.Order, error) {
	return s.orders.ListOrders(orderType, tableID)
}

func (s *OrderService) Get(id string) (domain.Order, error) {
	return s.orders.GetOrder(id)
}

// Create registers an externally submitted order, the POST /orders
// payload shape. Totals are derived from the items, never trusted from
// the caller.
func (s *OrderService) Create(in CreateOrderInput) (domain.Order, error) {
	if len(in.Items) == 0 {
		return domain.Order{}, ErrEmptyCartCheckout
	}
	if err := validateLines(in.Items); err != nil {
		return domain.Order{}, err
	}
	if in.OrderType == "" {
		in.OrderType = domain.OrderDineIn
	}

	now := time.Now()
	order := domain.Order{
		ID:          newOrderID(),
		Items:       in.Items,
		TableID:     in.TableID,
		TableNumber: in.TableNumber,
		OrderType:   in.OrderType,
		Status:      domain.OrderPending,
		Totals:      domain.ComputeTotals(in.Items, nil, domain.TipSpec{}, now),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.orders.CreateOrder(order); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

func (s *OrderService) Update(id string, patch OrderPatch) (domain.Order, error) {
	order, err := s.orders.GetOrder(id)
	if err != nil {
		return domain.Order{}, err
	}
	if patch.Status != nil {
		order.Status = *patch.Status
	}
	order.UpdatedAt = time.Now()
	if err := s.orders.UpdateOrder(order); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

func (s *OrderService) Delete(id string) error {
	return s.orders.DeleteOrder(id)
}

// Checkout turns a session into a completed, paid order. On success the
// session is destroyed and its table freed; on any failure the
// in-progress cart is left untouched.
func (s *OrderService) Checkout(ctx context.Context, in CheckoutInput) (CheckoutResult, error) {
	session, err := s.carts.Get(in.SessionID)
	if err != nil {
		return CheckoutResult{}, err
	}
	if len(session.Items) == 0 {
		return CheckoutResult{}, ErrEmptyCartCheckout
	}

	switch in.PaymentMethod {
	case "card", "cash", "mobile":
	default:
		return CheckoutResult{}, fmt.Errorf("unknown payment method %q", in.PaymentMethod)
	}

	now := time.Now()
	totals := session.Totals(now)
	charged := totals.Total + totals.Tip

	change := 0.0
	if in.PaymentMethod == "cash" {
		if in.CashAmount < charged {
			return CheckoutResult{}, fmt.Errorf("%w: due $%.2f, tendered $%.2f",
				ErrInsufficientCash, charged, in.CashAmount)
		}
		change = in.CashAmount - charged
	}

	markerKey := s.markerKey(in.SessionID)
	acquired, err := s.acquireMarker(ctx, markerKey)
	if err != nil {
		return CheckoutResult{}, err
	}
	if !acquired {
		return CheckoutResult{}, ErrPaymentInFlight
	}
	defer s.releaseMarker(ctx, markerKey)

	// Simulated gateway: fixed artificial delay, deterministic success.
	if s.paymentDelay > 0 {
		time.Sleep(s.paymentDelay)
	}

	order := domain.Order{
		ID:            newOrderID(),
		Items:         session.Items,
		TableID:       session.TableID,
		TableNumber:   session.TableNumber,
		OrderType:     session.OrderType,
		Status:        domain.OrderCompleted,
		Totals:        totals,
		PaymentMethod: in.PaymentMethod,
		PaymentRef:    uuid.NewString(),
		CreatedAt:     now,
		UpdatedAt:     time.Now(),
	}
	if err := s.orders.CreateOrder(order); err != nil {
		return CheckoutResult{}, err
	}

	if err := s.carts.Release(ctx, in.SessionID); err != nil {
		logrus.WithError(err).WithField("session", in.SessionID).Warn("failed to release session after checkout")
	}

	logrus.WithFields(logrus.Fields{
		"order":  order.ID,
		"method": in.PaymentMethod,
		"amount": fmt.Sprintf("%.2f", charged),
	}).Info("payment successful")

	return CheckoutResult{Order: order, Change: change}, nil
}

// SendToKitchen marks the order in-kitchen and publishes a ticket.
// Calling it again republishes; delivery is at-least-once and the
// kitchen side dedupes on order id.
func (s *OrderService) SendToKitchen(ctx context.Context, orderID string) (domain.Order, error) {
	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		return domain.Order{}, err
	}

	now := time.Now()
	order.Status = domain.OrderInKitchen
	order.SentToKitchenAt = &now
	order.UpdatedAt = now
	if err := s.orders.UpdateOrder(order); err != nil {
		return domain.Order{}, err
	}

	if s.publisher != nil {
		ticket := domain.KitchenTicket{
			Type:        "kitchen_ticket",
			OrderID:     order.ID,
			TableNumber: order.TableNumber,
			OrderType:   order.OrderType,
			Items:       order.Items,
			Timestamp:   now,
		}
		if err := s.publisher.PublishTicket(ctx, ticket); err != nil {
			return domain.Order{}, fmt.Errorf("failed to publish kitchen ticket: %w", err)
		}
	}

	logrus.WithField("order", order.ID).Info("order sent to kitchen")
	return order, nil
}

func (s *OrderService) ReceiptQR(orderID string) ([]byte, error) {
	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(fmt.Sprintf("http://localhost/receipt.html?order_id=%s", order.ID), qrcode.Medium, 256)
}

func newOrderID() string {
	return fmt.Sprintf("ORD-%d", time.Now().UnixMilli())
}

func (s *OrderService) markerKey(sessionID string) string {
	if s.cache != nil {
		return s.cache.PaymentMarkerKey(sessionID)
	}
	return "payment:" + sessionID
}

func (s *OrderService) acquireMarker(ctx context.Context, key string) (bool, error) {
	if s.cache != nil {
		return s.cache.AcquireMarker(ctx, key)
	}
	_, loaded := s.localMarkers.LoadOrStore(key, struct{}{})
	return !loaded, nil
}

func (s *OrderService) releaseMarker(ctx context.Context, key string) {
	if s.cache != nil {
		if err := s.cache.ReleaseMarker(ctx, key); err != nil {
			logrus.WithError(err).Warn("failed to release payment marker")
		}
		return
	}
	s.localMarkers.Delete(key)
}
