package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq"

	"restaurant-pos/internal/domain"
	"restaurant-pos/internal/service"
)

// PostgresOrders is the durable order archive. It satisfies the same
// OrderRepository contract as the in-memory store; the full order is
// kept as a jsonb payload with the filterable columns broken out.
type PostgresOrders struct {
	db *sql.DB
}

func NewPostgresOrders(db *sql.DB) (*PostgresOrders, error) {
	s := &PostgresOrders{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PostgresOrders) ensureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			order_type TEXT NOT NULL,
			table_id INT,
			status TEXT NOT NULL,
			payload JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		"CREATE INDEX IF NOT EXISTS orders_table_id_idx ON orders (table_id)",
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

func (s *PostgresOrders) ListOrders(orderType domain.OrderType, tableID *int) ([]domain.Order, error) {
	query := "SELECT payload FROM orders WHERE ($1 = '' OR order_type = $1) AND ($2::int IS NULL OR table_id = $2) ORDER BY created_at DESC"

	var tableArg sql.NullInt64
	if tableID != nil {
		tableArg = sql.NullInt64{Int64: int64(*tableID), Valid: true}
	}

	rows, err := s.db.Query(query, string(orderType), tableArg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			continue
		}
		var order domain.Order
		if err := json.Unmarshal(payload, &order); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (s *PostgresOrders) GetOrder(id string) (domain.Order, error) {
	var payload []byte
	err := s.db.QueryRow("SELECT payload FROM orders WHERE id = $1", id).Scan(&payload)
	if err == sql.ErrNoRows {
		return domain.Order{}, service.ErrOrderNotFound
	}
	if err != nil {
		return domain.Order{}, err
	}

	var order domain.Order
	if err := json.Unmarshal(payload, &order); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

func (s *PostgresOrders) CreateOrder(order domain.Order) error {
	payload, err := json.Marshal(order)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO orders (id, order_type, table_id, status, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, order.ID, string(order.OrderType), tableIDArg(order), string(order.Status), payload, order.CreatedAt)
	return err
}

func (s *PostgresOrders) UpdateOrder(order domain.Order) error {
	payload, err := json.Marshal(order)
	if err != nil {
		return err
	}
	result, err := s.db.Exec(`
		UPDATE orders SET status = $1, payload = $2 WHERE id = $3
	`, string(order.Status), payload, order.ID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return service.ErrOrderNotFound
	}
	return nil
}

func (s *PostgresOrders) DeleteOrder(id string) error {
	result, err := s.db.Exec("DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return service.ErrOrderNotFound
	}
	return nil
}

func tableIDArg(order domain.Order) sql.NullInt64 {
	if order.TableID == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*order.TableID), Valid: true}
}

var _ service.OrderRepository = (*PostgresOrders)(nil)
