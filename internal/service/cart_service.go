package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"restaurant-pos/internal/domain"
)

var (
	ErrLineNotFound  = errors.New("line item not found in cart")
	ErrTableConflict = errors.New("table is already bound to another order")
)

// CartService owns cart session lifecycle and every cart mutation.
// Totals are never stored: they are recomputed from the session on each
// read via the pure projection in domain.
// Duration labels on occupied tables are refreshed on this interval
// while at least one table is bound.
const durationRefreshInterval = time.Minute

type CartService struct {
	store   *SessionStore
	menu    MenuRepository
	coupons CouponServiceInterface
	tables  TableRepository
	cache   SessionCache

	refreshMu      sync.Mutex
	refresherAlive bool
}

func NewCartService(store *SessionStore, menu MenuRepository, coupons CouponServiceInterface, tables TableRepository, cache SessionCache) *CartService {
	return &CartService{
		store:   store,
		menu:    menu,
		coupons: coupons,
		tables:  tables,
		cache:   cache,
	}
}

type AddItemInput struct {
	MenuItemID  string   `json:"menuItemId"`
	VariationID string   `json:"variationId,omitempty"`
	AddonIDs    []string `json:"addonIds,omitempty"`
	Quantity    int      `json:"quantity"`
}

func (s *CartService) Create(ctx context.Context, orderType domain.OrderType, tableID *int) (*domain.Session, error) {
	if orderType == "" {
		orderType = domain.OrderDineIn
	}

	if tableID != nil {
		// Selecting a table swaps in that table's own cart wholesale.
		if existing, ok := s.store.ByTable(*tableID); ok {
			return existing, nil
		}
	}

	session := &domain.Session{
		ID:        uuid.NewString(),
		OrderType: orderType,
		CreatedAt: time.Now(),
	}
	s.store.Put(session)

	if tableID != nil {
		return s.BindTable(ctx, session.ID, *tableID)
	}
	return session, nil
}

// Get resolves a session from the store, falling back to a cached
// snapshot so a cart survives process handoff across navigation
// boundaries.
func (s *CartService) Get(sessionID string) (*domain.Session, error) {
	if session, ok := s.store.Get(sessionID); ok {
		return session, nil
	}
	if s.cache == nil {
		return nil, ErrSessionNotFound
	}

	payload, err := s.cache.GetSnapshot(context.Background(), s.cache.SnapshotKey(sessionID))
	if err != nil || payload == nil {
		return nil, ErrSessionNotFound
	}
	session, err := restoreSnapshot(payload)
	if err != nil {
		logrus.WithError(err).WithField("session", sessionID).Warn("discarding bad cart snapshot")
		return nil, ErrSessionNotFound
	}
	s.store.Put(session)
	return session, nil
}

// restoreSnapshot decodes a snapshot and re-checks the line invariants.
func restoreSnapshot(payload []byte) (*domain.Session, error) {
	session, err := domain.DecodeSnapshot(payload)
	if err != nil {
		return nil, err
	}
	if err := validateLines(session.Items); err != nil {
		return nil, err
	}
	return session, nil
}

// validateLines re-checks the line invariants on externally supplied
// items, collecting every violation rather than stopping at the first.
func validateLines(items []domain.LineItem) error {
	var result *multierror.Error
	for _, line := range items {
		if line.ItemID == "" {
			result = multierror.Append(result, errors.New("line missing item id"))
		}
		if line.Quantity < 1 {
			result = multierror.Append(result, domain.ErrInvalidQuantity)
		}
	}
	return result.ErrorOrNil()
}

func (s *CartService) AddItem(ctx context.Context, sessionID string, in AddItemInput) (*domain.Session, error) {
	item, err := s.menu.GetItem(in.MenuItemID)
	if err != nil {
		return nil, err
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}
	line, err := domain.NewLineItem(item, in.VariationID, in.AddonIDs, in.Quantity)
	if err != nil {
		return nil, err
	}

	session, err := s.store.Update(sessionID, func(session *domain.Session) error {
		for i := range session.Items {
			if domain.MatchesForMerge(session.Items[i], line) {
				session.Items[i].Quantity += line.Quantity
				return nil
			}
		}
		session.Items = append(session.Items, line)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.afterMutation(ctx, session)
	return session, nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, lineKey string, quantity int) (*domain.Session, error) {
	if quantity <= 0 {
		return s.RemoveItem(ctx, sessionID, lineKey)
	}

	session, err := s.store.Update(sessionID, func(session *domain.Session) error {
		for i := range session.Items {
			if session.Items[i].Key() == lineKey {
				session.Items[i].Quantity = quantity
				return nil
			}
		}
		return ErrLineNotFound
	})
	if err != nil {
		return nil, err
	}
	s.afterMutation(ctx, session)
	return session, nil
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID, lineKey string) (*domain.Session, error) {
	session, err := s.store.Update(sessionID, func(session *domain.Session) error {
		for i := range session.Items {
			if session.Items[i].Key() == lineKey {
				session.Items = append(session.Items[:i], session.Items[i+1:]...)
				return nil
			}
		}
		return ErrLineNotFound
	})
	if err != nil {
		return nil, err
	}
	s.afterMutation(ctx, session)
	return session, nil
}

func (s *CartService) ClearItems(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := s.store.Update(sessionID, func(session *domain.Session) error {
		session.Items = nil
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.afterMutation(ctx, session)
	return session, nil
}

func (s *CartService) ApplyCoupon(ctx context.Context, sessionID, code string, now time.Time) (*domain.Session, error) {
	session, err := s.store.Update(sessionID, func(session *domain.Session) error {
		subtotal := domain.ComputeTotals(session.Items, nil, domain.TipSpec{}, now).Subtotal
		coupon, err := s.coupons.Validate(code, subtotal, now)
		if err != nil {
			return err
		}
		session.Coupon = &coupon
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.afterMutation(ctx, session)
	return session, nil
}

func (s *CartService) RemoveCoupon(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := s.store.Update(sessionID, func(session *domain.Session) error {
		session.Coupon = nil
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.afterMutation(ctx, session)
	return session, nil
}

func (s *CartService) SetTip(ctx context.Context, sessionID string, tip domain.TipSpec) (*domain.Session, error) {
	session, err := s.store.Update(sessionID, func(session *domain.Session) error {
		session.Tip = tip
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.afterMutation(ctx, session)
	return session, nil
}

// SetOrderType enforces order-type exclusivity: going to-go while a
// table is bound unbinds the table and drops its duration state. The
// table record itself stays until staff free it.
func (s *CartService) SetOrderType(ctx context.Context, sessionID string, orderType domain.OrderType) (*domain.Session, error) {
	if orderType != domain.OrderDineIn && orderType != domain.OrderToGo {
		return nil, errors.New("unknown order type")
	}

	session, err := s.store.Update(sessionID, func(session *domain.Session) error {
		session.OrderType = orderType
		if orderType == domain.OrderToGo {
			session.TableID = nil
			session.TableNumber = nil
			session.StartedAt = nil
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.afterMutation(ctx, session)
	return session, nil
}

// BindTable attaches the session to a table and forces dine-in. Binding
// the table it already holds is a no-op so the duration timer never
// resets.
func (s *CartService) BindTable(ctx context.Context, sessionID string, tableID int) (*domain.Session, error) {
	table, err := s.tables.GetTable(tableID)
	if err != nil {
		return nil, err
	}
	if other, ok := s.store.ByTable(tableID); ok && other.ID != sessionID {
		return nil, ErrTableConflict
	}

	session, err := s.store.Update(sessionID, func(session *domain.Session) error {
		if session.TableID != nil && *session.TableID == tableID {
			return nil
		}
		now := time.Now()
		session.TableID = &table.ID
		session.TableNumber = &table.Number
		session.OrderType = domain.OrderDineIn
		session.StartedAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}

	table.Status = domain.TableOccupied
	table.Order = summaryFor(session)
	if err := s.tables.SaveTable(table); err != nil {
		return nil, err
	}
	s.persistSnapshot(ctx, session)
	s.ensureRefresher()
	return session, nil
}

// RefreshDurations recomputes the duration label on every table with a
// bound session, working from binding copies taken under the store
// lock so it never reads live session state alongside cart mutations.
// It reports whether any binding remains; the refresher goroutine
// exits on false. The alive flag is cleared under refreshMu in the
// same step as the emptiness check, so a concurrent BindTable either
// sees a refresher that will keep ticking or one already marked dead.
func (s *CartService) RefreshDurations() bool {
	s.refreshMu.Lock()
	bindings := s.store.BoundTables()
	if len(bindings) == 0 {
		s.refresherAlive = false
		s.refreshMu.Unlock()
		return false
	}
	s.refreshMu.Unlock()

	for _, binding := range bindings {
		table, err := s.tables.GetTable(binding.TableID)
		if err != nil {
			continue
		}
		table.Order = binding.summary()
		if err := s.tables.SaveTable(table); err != nil {
			logrus.WithError(err).WithField("table", table.Number).Warn("failed to refresh duration label")
		}
	}
	return true
}

// ensureRefresher starts the duration ticker if it is not already
// running. The goroutine exits, and the ticker with it, as soon as no
// table is bound; the next bind starts a fresh one.
func (s *CartService) ensureRefresher() {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()
	if s.refresherAlive {
		return
	}
	s.refresherAlive = true

	go func() {
		ticker := time.NewTicker(durationRefreshInterval)
		defer ticker.Stop()
		for range ticker.C {
			if !s.RefreshDurations() {
				return
			}
		}
	}()
}

func (s *CartService) Totals(sessionID string, now time.Time) (domain.Totals, error) {
	session, err := s.Get(sessionID)
	if err != nil {
		return domain.Totals{}, err
	}
	return session.Totals(now), nil
}

// Release frees the bound table and destroys the session, the explicit
// table-release path.
func (s *CartService) Release(ctx context.Context, sessionID string) error {
	session, err := s.Get(sessionID)
	if err != nil {
		return err
	}
	if session.TableID != nil {
		table, err := s.tables.GetTable(*session.TableID)
		if err == nil {
			table.Status = domain.TableAvailable
			table.Order = nil
			if err := s.tables.SaveTable(table); err != nil {
				return err
			}
		}
	}
	s.store.Delete(sessionID)
	return nil
}

func summaryFor(session *domain.Session) *domain.OrderSummary {
	elapsed := time.Duration(0)
	if session.StartedAt != nil {
		elapsed = time.Since(*session.StartedAt)
	}
	return &domain.OrderSummary{
		ID:    session.ID,
		Items: session.ItemCount(),
		Time:  domain.FormatDuration(elapsed),
	}
}

// afterMutation propagates the new cart state to its collaborators: the
// bound table's order summary and the snapshot cache.
func (s *CartService) afterMutation(ctx context.Context, session *domain.Session) {
	if session.TableID != nil {
		if table, err := s.tables.GetTable(*session.TableID); err == nil {
			table.Order = summaryFor(session)
			if err := s.tables.SaveTable(table); err != nil {
				logrus.WithError(err).Warn("failed to update table summary")
			}
		}
	}
	s.persistSnapshot(ctx, session)
}

func (s *CartService) persistSnapshot(ctx context.Context, session *domain.Session) {
	if s.cache == nil {
		return
	}
	payload, err := domain.EncodeSnapshot(session)
	if err != nil {
		logrus.WithError(err).Warn("failed to encode cart snapshot")
		return
	}
	if err := s.cache.SetSnapshot(ctx, s.cache.SnapshotKey(session.ID), payload); err != nil {
		logrus.WithError(err).Warn("failed to cache cart snapshot")
	}
}
