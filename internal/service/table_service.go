package service

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"restaurant-pos/internal/domain"
)

var (
	ErrTableNotFound      = errors.New("table not found")
	ErrTableUnavailable   = errors.New("table is not available")
	ErrPartyTooLarge      = errors.New("party size exceeds table seats")
	ErrBadTableTransition = errors.New("illegal table status transition")
)

type TableService struct {
	tables TableRepository
}

func NewTableService(tables TableRepository) *TableService {
	return &TableService{tables: tables}
}

type ReservationInput struct {
	Name   string `json:"name"`
	Guests int    `json:"guests"`
	Time   string `json:"time"`
	Phone  string `json:"phone,omitempty"`
}

func (s *TableService) List(status domain.TableStatus) ([]domain.Table, error) {
	return s.tables.ListTables(status)
}

func (s *TableService) Get(id int) (domain.Table, error) {
	return s.tables.GetTable(id)
}

// Reserve moves an available table to reserved. The reservation needs a
// customer name and time label, and the party must fit the table.
func (s *TableService) Reserve(id int, in ReservationInput) (domain.Table, error) {
	table, err := s.tables.GetTable(id)
	if err != nil {
		return domain.Table{}, err
	}
	if table.Status != domain.TableAvailable {
		return domain.Table{}, ErrTableUnavailable
	}
	if in.Name == "" || in.Time == "" {
		return domain.Table{}, errors.New("reservation needs a customer name and a time")
	}
	if in.Guests < 1 {
		in.Guests = 2
	}
	if in.Guests > table.Seats {
		return domain.Table{}, fmt.Errorf("%w: table %d seats %d", ErrPartyTooLarge, table.Number, table.Seats)
	}

	table.Status = domain.TableReserved
	table.Order = &domain.OrderSummary{
		ID:   fmt.Sprintf("RSV-%03d", rand.Intn(1000)),
		Time: in.Time,
	}
	if err := s.tables.SaveTable(table); err != nil {
		return domain.Table{}, err
	}
	return table, nil
}

func (s *TableService) Free(id int) (domain.Table, error) {
	return s.UpdateStatus(id, domain.TableAvailable, "")
}

// UpdateStatus applies the table state machine: available→reserved,
// available|reserved→occupied, occupied|reserved→available. Occupying
// attaches an order summary; freeing clears it.
func (s *TableService) UpdateStatus(id int, status domain.TableStatus, orderID string) (domain.Table, error) {
	table, err := s.tables.GetTable(id)
	if err != nil {
		return domain.Table{}, err
	}
	if table.Status == status {
		return table, nil
	}
	if !transitionAllowed(table.Status, status) {
		return domain.Table{}, fmt.Errorf("%w: %s -> %s", ErrBadTableTransition, table.Status, status)
	}

	table.Status = status
	switch status {
	case domain.TableOccupied:
		if orderID == "" {
			orderID = fmt.Sprintf("ORD-%d", time.Now().UnixMilli())
		}
		table.Order = &domain.OrderSummary{
			ID:   orderID,
			Time: time.Now().Format("3:04 PM"),
		}
	case domain.TableAvailable:
		table.Order = nil
	}

	if err := s.tables.SaveTable(table); err != nil {
		return domain.Table{}, err
	}
	return table, nil
}

func transitionAllowed(from, to domain.TableStatus) bool {
	switch to {
	case domain.TableReserved:
		return from == domain.TableAvailable
	case domain.TableOccupied:
		return from == domain.TableAvailable || from == domain.TableReserved
	case domain.TableAvailable:
		return from == domain.TableOccupied || from == domain.TableReserved
	}
	return false
}
