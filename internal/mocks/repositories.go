package mocks

import (
	"github.com/stretchr/testify/mock"

	"restaurant-pos/internal/domain"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

func register(t testingT, m *mock.Mock) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

type MenuRepository struct {
	mock.Mock
}

func NewMenuRepository(t testingT) *MenuRepository {
	m := &MenuRepository{}
	register(t, &m.Mock)
	return m
}

func (m *MenuRepository) ListItems() ([]domain.MenuItem, error) {
	args := m.Called()
	var items []domain.MenuItem
	if v := args.Get(0); v != nil {
		items = v.([]domain.MenuItem)
	}
	return items, args.Error(1)
}

func (m *MenuRepository) GetItem(id string) (domain.MenuItem, error) {
	args := m.Called(id)
	var item domain.MenuItem
	if v := args.Get(0); v != nil {
		item = v.(domain.MenuItem)
	}
	return item, args.Error(1)
}

func (m *MenuRepository) CreateItem(item domain.MenuItem) (domain.MenuItem, error) {
	args := m.Called(item)
	var created domain.MenuItem
	if v := args.Get(0); v != nil {
		created = v.(domain.MenuItem)
	}
	return created, args.Error(1)
}

func (m *MenuRepository) UpdateItem(item domain.MenuItem) (domain.MenuItem, error) {
	args := m.Called(item)
	var updated domain.MenuItem
	if v := args.Get(0); v != nil {
		updated = v.(domain.MenuItem)
	}
	return updated, args.Error(1)
}

func (m *MenuRepository) DeleteItem(id string) error {
	return m.Called(id).Error(0)
}

type CouponRepository struct {
	mock.Mock
}

func NewCouponRepository(t testingT) *CouponRepository {
	m := &CouponRepository{}
	register(t, &m.Mock)
	return m
}

func (m *CouponRepository) ListActive() ([]domain.Coupon, error) {
	args := m.Called()
	var coupons []domain.Coupon
	if v := args.Get(0); v != nil {
		coupons = v.([]domain.Coupon)
	}
	return coupons, args.Error(1)
}

type TableRepository struct {
	mock.Mock
}

func NewTableRepository(t testingT) *TableRepository {
	m := &TableRepository{}
	register(t, &m.Mock)
	return m
}

func (m *TableRepository) ListTables(status domain.TableStatus) ([]domain.Table, error) {
	args := m.Called(status)
	var tables []domain.Table
	if v := args.Get(0); v != nil {
		tables = v.([]domain.Table)
	}
	return tables, args.Error(1)
}

func (m *TableRepository) GetTable(id int) (domain.Table, error) {
	args := m.Called(id)
	var table domain.Table
	if v := args.Get(0); v != nil {
		table = v.(domain.Table)
	}
	return table, args.Error(1)
}

func (m *TableRepository) SaveTable(table domain.Table) error {
	return m.Called(table).Error(0)
}

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t testingT) *OrderRepository {
	m := &OrderRepository{}
	register(t, &m.Mock)
	return m
}

func (m *OrderRepository) ListOrders(orderType domain.OrderType, tableID *int) ([]domain.Order, error) {
	args := m.Called(orderType, tableID)
	var orders []domain.Order
	if v := args.Get(0); v != nil {
		orders = v.([]domain.Order)
	}
	return orders, args.Error(1)
}

func (m *OrderRepository) GetOrder(id string) (domain.Order, error) {
	args := m.Called(id)
	var order domain.Order
	if v := args.Get(0); v != nil {
		order = v.(domain.Order)
	}
	return order, args.Error(1)
}

func (m *OrderRepository) CreateOrder(order domain.Order) error {
	return m.Called(order).Error(0)
}

func (m *OrderRepository) UpdateOrder(order domain.Order) error {
	return m.Called(order).Error(0)
}

func (m *OrderRepository) DeleteOrder(id string) error {
	return m.Called(id).Error(0)
}
