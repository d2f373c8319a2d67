package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"restaurant-pos/internal/domain"
	"restaurant-pos/internal/service"
)

type MenuServiceInterface struct {
	mock.Mock
}

func NewMenuServiceInterface(t testingT) *MenuServiceInterface {
	m := &MenuServiceInterface{}
	register(t, &m.Mock)
	return m
}

func (m *MenuServiceInterface) List() ([]domain.MenuItem, error) {
	args := m.Called()
	var items []domain.MenuItem
	if v := args.Get(0); v != nil {
		items = v.([]domain.MenuItem)
	}
	return items, args.Error(1)
}

func (m *MenuServiceInterface) Get(id string) (domain.MenuItem, error) {
	args := m.Called(id)
	var item domain.MenuItem
	if v := args.Get(0); v != nil {
		item = v.(domain.MenuItem)
	}
	return item, args.Error(1)
}

func (m *MenuServiceInterface) Create(item domain.MenuItem) (domain.MenuItem, error) {
	args := m.Called(item)
	var created domain.MenuItem
	if v := args.Get(0); v != nil {
		created = v.(domain.MenuItem)
	}
	return created, args.Error(1)
}

func (m *MenuServiceInterface) Update(item domain.MenuItem) (domain.MenuItem, error) {
	args := m.Called(item)
	var updated domain.MenuItem
	if v := args.Get(0); v != nil {
		updated = v.(domain.MenuItem)
	}
	return updated, args.Error(1)
}

func (m *MenuServiceInterface) Delete(id string) error {
	return m.Called(id).Error(0)
}

type CouponServiceInterface struct {
	mock.Mock
}

func NewCouponServiceInterface(t testingT) *CouponServiceInterface {
	m := &CouponServiceInterface{}
	register(t, &m.Mock)
	return m
}

func (m *CouponServiceInterface) List() ([]domain.Coupon, error) {
	args := m.Called()
	var coupons []domain.Coupon
	if v := args.Get(0); v != nil {
		coupons = v.([]domain.Coupon)
	}
	return coupons, args.Error(1)
}

func (m *CouponServiceInterface) Validate(code string, subtotal float64, now time.Time) (domain.Coupon, error) {
	args := m.Called(code, subtotal, now)
	var coupon domain.Coupon
	if v := args.Get(0); v != nil {
		coupon = v.(domain.Coupon)
	}
	return coupon, args.Error(1)
}

type CartServiceInterface struct {
	mock.Mock
}

func NewCartServiceInterface(t testingT) *CartServiceInterface {
	m := &CartServiceInterface{}
	register(t, &m.Mock)
	return m
}

func (m *CartServiceInterface) session(args mock.Arguments) (*domain.Session, error) {
	var session *domain.Session
	if v := args.Get(0); v != nil {
		session = v.(*domain.Session)
	}
	return session, args.Error(1)
}

func (m *CartServiceInterface) Create(ctx context.Context, orderType domain.OrderType, tableID *int) (*domain.Session, error) {
	return m.session(m.Called(ctx, orderType, tableID))
}

func (m *CartServiceInterface) Get(sessionID string) (*domain.Session, error) {
	return m.session(m.Called(sessionID))
}

func (m *CartServiceInterface) AddItem(ctx context.Context, sessionID string, in service.AddItemInput) (*domain.Session, error) {
	return m.session(m.Called(ctx, sessionID, in))
}

func (m *CartServiceInterface) UpdateQuantity(ctx context.Context, sessionID, lineKey string, quantity int) (*domain.Session, error) {
	return m.session(m.Called(ctx, sessionID, lineKey, quantity))
}

func (m *CartServiceInterface) RemoveItem(ctx context.Context, sessionID, lineKey string) (*domain.Session, error) {
	return m.session(m.Called(ctx, sessionID, lineKey))
}

func (m *CartServiceInterface) ClearItems(ctx context.Context, sessionID string) (*domain.Session, error) {
	return m.session(m.Called(ctx, sessionID))
}

func (m *CartServiceInterface) ApplyCoupon(ctx context.Context, sessionID, code string, now time.Time) (*domain.Session, error) {
	return m.session(m.Called(ctx, sessionID, code, now))
}

func (m *CartServiceInterface) RemoveCoupon(ctx context.Context, sessionID string) (*domain.Session, error) {
	return m.session(m.Called(ctx, sessionID))
}

func (m *CartServiceInterface) SetTip(ctx context.Context, sessionID string, tip domain.TipSpec) (*domain.Session, error) {
	return m.session(m.Called(ctx, sessionID, tip))
}

func (m *CartServiceInterface) SetOrderType(ctx context.Context, sessionID string, orderType domain.OrderType) (*domain.Session, error) {
	return m.session(m.Called(ctx, sessionID, orderType))
}

func (m *CartServiceInterface) BindTable(ctx context.Context, sessionID string, tableID int) (*domain.Session, error) {
	return m.session(m.Called(ctx, sessionID, tableID))
}

func (m *CartServiceInterface) Totals(sessionID string, now time.Time) (domain.Totals, error) {
	args := m.Called(sessionID, now)
	var totals domain.Totals
	if v := args.Get(0); v != nil {
		totals = v.(domain.Totals)
	}
	return totals, args.Error(1)
}

func (m *CartServiceInterface) Release(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

type TableServiceInterface struct {
	mock.Mock
}

func NewTableServiceInterface(t testingT) *TableServiceInterface {
	m := &TableServiceInterface{}
	register(t, &m.Mock)
	return m
}

func (m *TableServiceInterface) table(args mock.Arguments) (domain.Table, error) {
	var table domain.Table
	if v := args.Get(0); v != nil {
		table = v.(domain.Table)
	}
	return table, args.Error(1)
}

func (m *TableServiceInterface) List(status domain.TableStatus) ([]domain.Table, error) {
	args := m.Called(status)
	var tables []domain.Table
	if v := args.Get(0); v != nil {
		tables = v.([]domain.Table)
	}
	return tables, args.Error(1)
}

func (m *TableServiceInterface) Get(id int) (domain.Table, error) {
	return m.table(m.Called(id))
}

func (m *TableServiceInterface) Reserve(id int, in service.ReservationInput) (domain.Table, error) {
	return m.table(m.Called(id, in))
}

func (m *TableServiceInterface) Free(id int) (domain.Table, error) {
	return m.table(m.Called(id))
}

func (m *TableServiceInterface) UpdateStatus(id int, status domain.TableStatus, orderID string) (domain.Table, error) {
	return m.table(m.Called(id, status, orderID))
}

type OrderServiceInterface struct {
	mock.Mock
}

func NewOrderServiceInterface(t testingT) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	register(t, &m.Mock)
	return m
}

func (m *OrderServiceInterface) order(args mock.Arguments) (domain.Order, error) {
	var order domain.Order
	if v := args.Get(0); v != nil {
		order = v.(domain.Order)
	}
	return order, args.Error(1)
}

func (m *OrderServiceInterface) List(orderType domain.OrderType, tableID *int) ([]domain.Order, error) {
	args := m.Called(orderType, tableID)
	var orders []domain.Order
	if v := args.Get(0); v != nil {
		orders = v.([]domain.Order)
	}
	return orders, args.Error(1)
}

func (m *OrderServiceInterface) Get(id string) (domain.Order, error) {
	return m.order(m.Called(id))
}

func (m *OrderServiceInterface) Create(in service.CreateOrderInput) (domain.Order, error) {
	return m.order(m.Called(in))
}

func (m *OrderServiceInterface) Update(id string, patch service.OrderPatch) (domain.Order, error) {
	return m.order(m.Called(id, patch))
}

func (m *OrderServiceInterface) Delete(id string) error {
	return m.Called(id).Error(0)
}

func (m *OrderServiceInterface) Checkout(ctx context.Context, in service.CheckoutInput) (service.CheckoutResult, error) {
	args := m.Called(ctx, in)
	var result service.CheckoutResult
	if v := args.Get(0); v != nil {
		result = v.(service.CheckoutResult)
	}
	return result, args.Error(1)
}

func (m *OrderServiceInterface) SendToKitchen(ctx context.Context, orderID string) (domain.Order, error) {
	return m.order(m.Called(ctx, orderID))
}

func (m *OrderServiceInterface) ReceiptQR(orderID string) ([]byte, error) {
	args := m.Called(orderID)
	var png []byte
	if v := args.Get(0); v != nil {
		png = v.([]byte)
	}
	return png, args.Error(1)
}
