package service

import (
	"context"
	"time"

	"restaurant-pos/internal/domain"
)

type MenuRepository interface {
	ListItems() ([]domain.MenuItem, error)
	GetItem(id string) (domain.MenuItem, error)
	CreateItem(item domain.MenuItem) (domain.MenuItem, error)
	UpdateItem(item domain.MenuItem) (domain.MenuItem, error)
	DeleteItem(id string) error
}

type CouponRepository interface {
	ListActive() ([]domain.Coupon, error)
}

type TableRepository interface {
	ListTables(status domain.TableStatus) ([]domain.Table, error)
	GetTable(id int) (domain.Table, error)
	SaveTable(table domain.Table) error
}

type OrderRepository interface {
	ListOrders(orderType domain.OrderType, tableID *int) ([]domain.Order, error)
	GetOrder(id string) (domain.Order, error)
	CreateOrder(order domain.Order) error
	UpdateOrder(order domain.Order) error
	DeleteOrder(id string) error
}

// SessionCache holds cart snapshots and short-lived idempotency
// markers. All implementations are optional collaborators; services
// nil-guard them.
type SessionCache interface {
	SnapshotKey(sessionID string) string
	PaymentMarkerKey(orderKey string) string
	SetSnapshot(ctx context.Context, key string, payload []byte) error
	GetSnapshot(ctx context.Context, key string) ([]byte, error)
	AcquireMarker(ctx context.Context, key string) (bool, error)
	ReleaseMarker(ctx context.Context, key string) error
}

type TicketPublisher interface {
	PublishTicket(ctx context.Context, ticket domain.KitchenTicket) error
}

type MenuServiceInterface interface {
	List() ([]domain.MenuItem, error)
	Get(id string) (domain.MenuItem, error)
	Create(item domain.MenuItem) (domain.MenuItem, error)
	Update(item domain.MenuItem) (domain.MenuItem, error)
	Delete(id string) error
}

type CouponServiceInterface interface {
	List() ([]domain.Coupon, error)
	Validate(code string, subtotal float64, now time.Time) (domain.Coupon, error)
}

type CartServiceInterface interface {
	Create(ctx context.Context, orderType domain.OrderType, tableID *int) (*domain.Session, error)
	Get(sessionID string) (*domain.Session, error)
	AddItem(ctx context.Context, sessionID string, in AddItemInput) (*domain.Session, error)
	UpdateQuantity(ctx context.Context, sessionID, lineKey string, quantity int) (*domain.Session, error)
	RemoveItem(ctx context.Context, sessionID, lineKey string) (*domain.Session, error)
	ClearItems(ctx context.Context, sessionID string) (*domain.Session, error)
	ApplyCoupon(ctx context.Context, sessionID, code string, now time.Time) (*domain.Session, error)
	RemoveCoupon(ctx context.Context, sessionID string) (*domain.Session, error)
	SetTip(ctx context.Context, sessionID string, tip domain.TipSpec) (*domain.Session, error)
	SetOrderType(ctx context.Context, sessionID string, orderType domain.OrderType) (*domain.Session, error)
	BindTable(ctx context.Context, sessionID string, tableID int) (*domain.Session, error)
	Totals(sessionID string, now time.Time) (domain.Totals, error)
	Release(ctx context.Context, sessionID string) error
}

type TableServiceInterface interface {
	List(status domain.TableStatus) ([]domain.Table, error)
	Get(id int) (domain.Table, error)
	Reserve(id int, in ReservationInput) (domain.Table, error)
	Free(id int) (domain.Table, error)
	UpdateStatus(id int, status domain.TableStatus, orderID string) (domain.Table, error)
}

type OrderServiceInterface interface {
	List(orderType domain.OrderType, tableID *int) ([]domain.Order, error)
	Get(id string) (domain.Order, error)
	Create(in CreateOrderInput) (domain.Order, error)
	Update(id string, patch OrderPatch) (domain.Order, error)
	Delete(id string) error
	Checkout(ctx context.Context, in CheckoutInput) (CheckoutResult, error)
	SendToKitchen(ctx context.Context, orderID string) (domain.Order, error)
	ReceiptQR(orderID string) ([]byte, error)
}

var (
	_ MenuServiceInterface   = (*MenuService)(nil)
	_ CouponServiceInterface = (*CouponService)(nil)
	_ CartServiceInterface   = (*CartService)(nil)
	_ TableServiceInterface  = (*TableService)(nil)
	_ OrderServiceInterface  = (*OrderService)(nil)
)
