package storage

import (
	"sort"
	"sync"

	"restaurant-pos/internal/domain"
	"restaurant-pos/internal/service"
)

// In-memory repositories are the default store. Each guards its own
// data; everything returned is a copy so callers never alias internal
// state.

type MemoryMenu struct {
	mu    sync.RWMutex
	items []domain.MenuItem
}

func NewMemoryMenu(items []domain.MenuItem) *MemoryMenu {
	return &MemoryMenu{items: append([]domain.MenuItem(nil), items...)}
}

func (m *MemoryMenu) ListItems() ([]domain.MenuItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.MenuItem(nil), m.items...), nil
}

func (m *MemoryMenu) GetItem(id string) (domain.MenuItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, item := range m.items {
		if item.ID == id {
			return item, nil
		}
	}
	return domain.MenuItem{}, service.ErrMenuItemNotFound
}

func (m *MemoryMenu) CreateItem(item domain.MenuItem) (domain.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, item)
	return item, nil
}

func (m *MemoryMenu) UpdateItem(item domain.MenuItem) (domain.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == item.ID {
			m.items[i] = item
			return item, nil
		}
	}
	return domain.MenuItem{}, service.ErrMenuItemNotFound
}

func (m *MemoryMenu) DeleteItem(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return service.ErrMenuItemNotFound
}

type MemoryCoupons struct {
	mu      sync.RWMutex
	coupons []domain.Coupon
}

func NewMemoryCoupons(coupons []domain.Coupon) *MemoryCoupons {
	return &MemoryCoupons{coupons: append([]domain.Coupon(nil), coupons...)}
}

func (m *MemoryCoupons) ListActive() ([]domain.Coupon, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	active := make([]domain.Coupon, 0, len(m.coupons))
	for _, c := range m.coupons {
		if c.IsActive {
			active = append(active, c)
		}
	}
	return active, nil
}

type MemoryTables struct {
	mu     sync.RWMutex
	tables []domain.Table
}

func NewMemoryTables(tables []domain.Table) *MemoryTables {
	copied := append([]domain.Table(nil), tables...)
	sort.Slice(copied, func(i, j int) bool { return copied[i].ID < copied[j].ID })
	return &MemoryTables{tables: copied}
}

func (m *MemoryTables) ListTables(status domain.TableStatus) ([]domain.Table, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	tables := make([]domain.Table, 0, len(m.tables))
	for _, t := range m.tables {
		if status == "" || t.Status == status {
			tables = append(tables, t)
		}
	}
	return tables, nil
}

func (m *MemoryTables) GetTable(id int) (domain.Table, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, t := range m.tables {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Table{}, service.ErrTableNotFound
}

func (m *MemoryTables) SaveTable(table domain.Table) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.tables {
		if m.tables[i].ID == table.ID {
			m.tables[i] = table
			return nil
		}
	}
	return service.ErrTableNotFound
}

type MemoryOrders struct {
	mu     sync.RWMutex
	orders []domain.Order
}

func NewMemoryOrders() *MemoryOrders {
	return &MemoryOrders{}
}

func (m *MemoryOrders) ListOrders(orderType domain.OrderType, tableID *int) ([]domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	orders := make([]domain.Order, 0, len(m.orders))
	for _, o := range m.orders {
		if orderType != "" && o.OrderType != orderType {
			continue
		}
		if tableID != nil && (o.TableID == nil || *o.TableID != *tableID) {
			continue
		}
		orders = append(orders, o)
	}
	// newest first
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (m *MemoryOrders) GetOrder(id string) (domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, o := range m.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.Order{}, service.ErrOrderNotFound
}

func (m *MemoryOrders) CreateOrder(order domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders = append(m.orders, order)
	return nil
}

func (m *MemoryOrders) UpdateOrder(order domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].ID == order.ID {
			m.orders[i] = order
			return nil
		}
	}
	return service.ErrOrderNotFound
}

func (m *MemoryOrders) DeleteOrder(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].ID == id {
			m.orders = append(m.orders[:i], m.orders[i+1:]...)
			return nil
		}
	}
	return service.ErrOrderNotFound
}

var (
	_ service.MenuRepository   = (*MemoryMenu)(nil)
	_ service.CouponRepository = (*MemoryCoupons)(nil)
	_ service.TableRepository  = (*MemoryTables)(nil)
	_ service.OrderRepository  = (*MemoryOrders)(nil)
)
