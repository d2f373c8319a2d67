package tests

import (
	"context"
	"errors"
	"testing"

	"restaurant-pos/internal/domain"
	"restaurant-pos/internal/mocks"
	"restaurant-pos/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func checkoutSession(id string) *domain.Session {
	return &domain.Session{
		ID:        id,
		Items:     []domain.LineItem{line("m-1", 10, 1)},
		OrderType: domain.OrderToGo,
		CreatedAt: testNow,
	}
}

func TestOrderService_Checkout(t *testing.T) {
	repository := mocks.NewOrderRepository(t)
	carts := mocks.NewCartServiceInterface(t)
	svc := service.NewOrderService(repository, carts, nil, nil, 0)

	ctx := context.Background()

	tests := []struct {
		name           string
		input          service.CheckoutInput
		prepareMocks   func()
		expectedError  error
		expectedChange float64
	}{
		{
			name:  "success_card",
			input: service.CheckoutInput{SessionID: "s-1", PaymentMethod: "card"},
			prepareMocks: func() {
				carts.On("Get", "s-1").Return(checkoutSession("s-1"), nil).Once()
				repository.On("CreateOrder", mock.AnythingOfType("domain.Order")).Return(nil).Once()
				carts.On("Release", mock.Anything, "s-1").Return(nil).Once()
			},
		},
		{
			// subtotal 10.00, tax 0.70, due 10.70
			name:           "success_cash_with_change",
			input:          service.CheckoutInput{SessionID: "s-2", PaymentMethod: "cash", CashAmount: 20},
			expectedChange: 9.30,
			prepareMocks: func() {
				carts.On("Get", "s-2").Return(checkoutSession("s-2"), nil).Once()
				repository.On("CreateOrder", mock.AnythingOfType("domain.Order")).Return(nil).Once()
				carts.On("Release", mock.Anything, "s-2").Return(nil).Once()
			},
		},
		{
			name:  "insufficient_cash",
			input: service.CheckoutInput{SessionID: "s-3", PaymentMethod: "cash", CashAmount: 5},
			prepareMocks: func() {
				carts.On("Get", "s-3").Return(checkoutSession("s-3"), nil).Once()
			},
			expectedError: service.ErrInsufficientCash,
		},
		{
			name:  "empty_cart",
			input: service.CheckoutInput{SessionID: "s-4", PaymentMethod: "card"},
			prepareMocks: func() {
				carts.On("Get", "s-4").Return(&domain.Session{ID: "s-4"}, nil).Once()
			},
			expectedError: service.ErrEmptyCartCheckout,
		},
		{
			name:  "unknown_session",
			input: service.CheckoutInput{SessionID: "s-5", PaymentMethod: "card"},
			prepareMocks: func() {
				carts.On("Get", "s-5").Return(nil, service.ErrSessionNotFound).Once()
			},
			expectedError: service.ErrSessionNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			result, err := svc.Checkout(ctx, testCase.input)
			assert.ErrorIs(t, err, testCase.expectedError)
			if testCase.expectedError != nil {
				return
			}
			assert.Equal(t, domain.OrderCompleted, result.Order.Status)
			assert.NotEmpty(t, result.Order.PaymentRef)
			assert.Equal(t, testCase.input.PaymentMethod, result.Order.PaymentMethod)
			assert.InDelta(t, testCase.expectedChange, result.Change, 0.001)
		})
	}
}

func TestOrderService_Checkout_UnknownMethod(t *testing.T) {
	repository := mocks.NewOrderRepository(t)
	carts := mocks.NewCartServiceInterface(t)
	svc := service.NewOrderService(repository, carts, nil, nil, 0)

	carts.On("Get", "s-1").Return(checkoutSession("s-1"), nil).Once()

	_, err := svc.Checkout(context.Background(), service.CheckoutInput{SessionID: "s-1", PaymentMethod: "barter"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown payment method")
}

func TestOrderService_Checkout_PaymentInFlight(t *testing.T) {
	repository := mocks.NewOrderRepository(t)
	carts := mocks.NewCartServiceInterface(t)
	cache := mocks.NewSessionCache(t)
	svc := service.NewOrderService(repository, carts, cache, nil, 0)

	carts.On("Get", "s-1").Return(checkoutSession("s-1"), nil).Once()
	cache.On("PaymentMarkerKey", "s-1").Return("payment:inflight:s-1").Once()
	cache.On("AcquireMarker", mock.Anything, "payment:inflight:s-1").Return(false, nil).Once()

	_, err := svc.Checkout(context.Background(), service.CheckoutInput{SessionID: "s-1", PaymentMethod: "card"})
	assert.ErrorIs(t, err, service.ErrPaymentInFlight)
}

func TestOrderService_Create(t *testing.T) {
	repository := mocks.NewOrderRepository(t)
	svc := service.NewOrderService(repository, mocks.NewCartServiceInterface(t), nil, nil, 0)

	_, err := svc.Create(service.CreateOrderInput{})
	assert.ErrorIs(t, err, service.ErrEmptyCartCheckout)

	// submitted lines go through the same invariants as cart lines
	_, err = svc.Create(service.CreateOrderInput{
		Items: []domain.LineItem{{ItemID: "m-1", Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = svc.Create(service.CreateOrderInput{
		Items: []domain.LineItem{{Quantity: 1}},
	})
	assert.Error(t, err)

	var saved domain.Order
	repository.On("CreateOrder", mock.AnythingOfType("domain.Order")).Run(func(args mock.Arguments) {
		saved = args.Get(0).(domain.Order)
	}).Return(nil).Once()

	order, err := svc.Create(service.CreateOrderInput{
		Items: []domain.LineItem{line("m-1", 10, 2)},
	})
	assert.NoError(t, err)
	assert.Equal(t, domain.OrderPending, order.Status)
	assert.Equal(t, domain.OrderDineIn, order.OrderType)
	assert.Contains(t, order.ID, "ORD-")
	// totals are derived from the items, never taken from the caller
	assert.InDelta(t, 20.00, saved.Totals.Subtotal, 0.001)
	assert.InDelta(t, 21.40, saved.Totals.Total, 0.001)
}

func TestOrderService_SendToKitchen(t *testing.T) {
	repository := mocks.NewOrderRepository(t)
	publisher := mocks.NewTicketPublisher(t)
	svc := service.NewOrderService(repository, mocks.NewCartServiceInterface(t), nil, publisher, 0)

	pending := domain.Order{
		ID:        "ORD-1",
		Items:     []domain.LineItem{line("m-1", 10, 1)},
		OrderType: domain.OrderDineIn,
		Status:    domain.OrderPending,
	}

	repository.On("GetOrder", "ORD-1").Return(pending, nil).Once()
	repository.On("UpdateOrder", mock.AnythingOfType("domain.Order")).Return(nil).Once()

	var ticket domain.KitchenTicket
	publisher.On("PublishTicket", mock.Anything, mock.AnythingOfType("domain.KitchenTicket")).Run(func(args mock.Arguments) {
		ticket = args.Get(1).(domain.KitchenTicket)
	}).Return(nil).Once()

	order, err := svc.SendToKitchen(context.Background(), "ORD-1")
	assert.NoError(t, err)
	assert.Equal(t, domain.OrderInKitchen, order.Status)
	assert.NotNil(t, order.SentToKitchenAt)
	assert.Equal(t, "kitchen_ticket", ticket.Type)
	assert.Equal(t, "ORD-1", ticket.OrderID)
	assert.Len(t, ticket.Items, 1)
}

func TestOrderService_SendToKitchen_PublishFailure(t *testing.T) {
	repository := mocks.NewOrderRepository(t)
	publisher := mocks.NewTicketPublisher(t)
	svc := service.NewOrderService(repository, mocks.NewCartServiceInterface(t), nil, publisher, 0)

	repository.On("GetOrder", "ORD-1").Return(domain.Order{ID: "ORD-1"}, nil).Once()
	repository.On("UpdateOrder", mock.AnythingOfType("domain.Order")).Return(nil).Once()
	publisher.On("PublishTicket", mock.Anything, mock.AnythingOfType("domain.KitchenTicket")).
		Return(errors.New("broker down")).Once()

	_, err := svc.SendToKitchen(context.Background(), "ORD-1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "kitchen ticket")
}

func TestOrderService_SendToKitchen_NoPublisher(t *testing.T) {
	repository := mocks.NewOrderRepository(t)
	svc := service.NewOrderService(repository, mocks.NewCartServiceInterface(t), nil, nil, 0)

	repository.On("GetOrder", "ORD-1").Return(domain.Order{ID: "ORD-1"}, nil).Once()
	repository.On("UpdateOrder", mock.AnythingOfType("domain.Order")).Return(nil).Once()

	order, err := svc.SendToKitchen(context.Background(), "ORD-1")
	assert.NoError(t, err)
	assert.Equal(t, domain.OrderInKitchen, order.Status)
}

func TestOrderService_ReceiptQR(t *testing.T) {
	repository := mocks.NewOrderRepository(t)
	svc := service.NewOrderService(repository, mocks.NewCartServiceInterface(t), nil, nil, 0)

	repository.On("GetOrder", "ORD-1").Return(domain.Order{ID: "ORD-1"}, nil).Once()

	png, err := svc.ReceiptQR("ORD-1")
	assert.NoError(t, err)
	assert.NotEmpty(t, png)
	// PNG signature
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, png[:4])

	repository.On("GetOrder", "ORD-9").Return(domain.Order{}, service.ErrOrderNotFound).Once()
	_, err = svc.ReceiptQR("ORD-9")
	assert.ErrorIs(t, err, service.ErrOrderNotFound)
}
