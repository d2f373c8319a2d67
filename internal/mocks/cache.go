package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"restaurant-pos/internal/domain"
)

type SessionCache struct {
	mock.Mock
}

func NewSessionCache(t testingT) *SessionCache {
	m := &SessionCache{}
	register(t, &m.Mock)
	return m
}

func (m *SessionCache) SnapshotKey(sessionID string) string {
	return m.Called(sessionID).String(0)
}

func (m *SessionCache) PaymentMarkerKey(orderKey string) string {
	return m.Called(orderKey).String(0)
}

func (m *SessionCache) SetSnapshot(ctx context.Context, key string, payload []byte) error {
	return m.Called(ctx, key, payload).Error(0)
}

func (m *SessionCache) GetSnapshot(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	var payload []byte
	if v := args.Get(0); v != nil {
		payload = v.([]byte)
	}
	return payload, args.Error(1)
}

func (m *SessionCache) AcquireMarker(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *SessionCache) ReleaseMarker(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type TicketPublisher struct {
	mock.Mock
}

func NewTicketPublisher(t testingT) *TicketPublisher {
	m := &TicketPublisher{}
	register(t, &m.Mock)
	return m
}

func (m *TicketPublisher) PublishTicket(ctx context.Context, ticket domain.KitchenTicket) error {
	return m.Called(ctx, ticket).Error(0)
}
