package tests

import (
	"testing"

	"restaurant-pos/internal/domain"
	"restaurant-pos/internal/mocks"
	"restaurant-pos/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func availableTable(id, seats int) domain.Table {
	return domain.Table{ID: id, Number: id, Seats: seats, Status: domain.TableAvailable}
}

func TestTableService_Reserve(t *testing.T) {
	repository := mocks.NewTableRepository(t)
	svc := service.NewTableService(repository)

	tests := []struct {
		name          string
		input         service.ReservationInput
		prepareMocks  func()
		expectedError error
	}{
		{
			name:  "success",
			input: service.ReservationInput{Name: "Smith", Guests: 4, Time: "7:30 PM"},
			prepareMocks: func() {
				repository.On("GetTable", 3).Return(availableTable(3, 4), nil).Once()
				repository.On("SaveTable", mock.MatchedBy(func(table domain.Table) bool {
					return table.Status == domain.TableReserved && table.Order != nil
				})).Return(nil).Once()
			},
		},
		{
			name:  "defaults_party_of_two",
			input: service.ReservationInput{Name: "Lee", Time: "6:00 PM"},
			prepareMocks: func() {
				repository.On("GetTable", 3).Return(availableTable(3, 4), nil).Once()
				repository.On("SaveTable", mock.AnythingOfType("domain.Table")).Return(nil).Once()
			},
		},
		{
			name:  "not_available",
			input: service.ReservationInput{Name: "Smith", Guests: 2, Time: "7:30 PM"},
			prepareMocks: func() {
				occupied := availableTable(3, 4)
				occupied.Status = domain.TableOccupied
				repository.On("GetTable", 3).Return(occupied, nil).Once()
			},
			expectedError: service.ErrTableUnavailable,
		},
		{
			name:  "party_too_large",
			input: service.ReservationInput{Name: "Smith", Guests: 6, Time: "7:30 PM"},
			prepareMocks: func() {
				repository.On("GetTable", 3).Return(availableTable(3, 4), nil).Once()
			},
			expectedError: service.ErrPartyTooLarge,
		},
		{
			name:  "missing_name",
			input: service.ReservationInput{Guests: 2, Time: "7:30 PM"},
			prepareMocks: func() {
				repository.On("GetTable", 3).Return(availableTable(3, 4), nil).Once()
			},
			expectedError: nil,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			_, err := svc.Reserve(3, testCase.input)
			if testCase.name == "missing_name" {
				assert.Error(t, err)
				return
			}
			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}
}

func TestTableService_UpdateStatus(t *testing.T) {
	repository := mocks.NewTableRepository(t)
	svc := service.NewTableService(repository)

	tests := []struct {
		name          string
		from          domain.TableStatus
		to            domain.TableStatus
		expectedError error
	}{
		{"available_to_reserved", domain.TableAvailable, domain.TableReserved, nil},
		{"available_to_occupied", domain.TableAvailable, domain.TableOccupied, nil},
		{"reserved_to_occupied", domain.TableReserved, domain.TableOccupied, nil},
		{"occupied_to_available", domain.TableOccupied, domain.TableAvailable, nil},
		{"reserved_to_available", domain.TableReserved, domain.TableAvailable, nil},
		{"occupied_to_reserved", domain.TableOccupied, domain.TableReserved, service.ErrBadTableTransition},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			table := availableTable(3, 4)
			table.Status = testCase.from
			repository.On("GetTable", 3).Return(table, nil).Once()
			if testCase.expectedError == nil {
				repository.On("SaveTable", mock.AnythingOfType("domain.Table")).Return(nil).Once()
			}

			updated, err := svc.UpdateStatus(3, testCase.to, "")
			assert.ErrorIs(t, err, testCase.expectedError)
			if testCase.expectedError == nil {
				assert.Equal(t, testCase.to, updated.Status)
			}
		})
	}
}

func TestTableService_UpdateStatus_SameStatusNoop(t *testing.T) {
	repository := mocks.NewTableRepository(t)
	svc := service.NewTableService(repository)

	repository.On("GetTable", 3).Return(availableTable(3, 4), nil).Once()

	updated, err := svc.UpdateStatus(3, domain.TableAvailable, "")
	assert.NoError(t, err)
	assert.Equal(t, domain.TableAvailable, updated.Status)
	repository.AssertNotCalled(t, "SaveTable", mock.Anything)
}

func TestTableService_OccupyAttachesSummary(t *testing.T) {
	repository := mocks.NewTableRepository(t)
	svc := service.NewTableService(repository)

	repository.On("GetTable", 3).Return(availableTable(3, 4), nil).Once()

	var saved domain.Table
	repository.On("SaveTable", mock.AnythingOfType("domain.Table")).Run(func(args mock.Arguments) {
		saved = args.Get(0).(domain.Table)
	}).Return(nil).Once()

	_, err := svc.UpdateStatus(3, domain.TableOccupied, "ORD-123")
	assert.NoError(t, err)
	assert.NotNil(t, saved.Order)
	assert.Equal(t, "ORD-123", saved.Order.ID)
	assert.NotEmpty(t, saved.Order.Time)
}

func TestTableService_FreeClearsSummary(t *testing.T) {
	repository := mocks.NewTableRepository(t)
	svc := service.NewTableService(repository)

	occupied := availableTable(3, 4)
	occupied.Status = domain.TableOccupied
	occupied.Order = &domain.OrderSummary{ID: "ORD-123", Items: 2, Time: "12m"}
	repository.On("GetTable", 3).Return(occupied, nil).Once()

	var saved domain.Table
	repository.On("SaveTable", mock.AnythingOfType("domain.Table")).Run(func(args mock.Arguments) {
		saved = args.Get(0).(domain.Table)
	}).Return(nil).Once()

	updated, err := svc.Free(3)
	assert.NoError(t, err)
	assert.Equal(t, domain.TableAvailable, updated.Status)
	assert.Nil(t, saved.Order)
}
