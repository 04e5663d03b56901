package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"nitrobrew/internal/domain"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// Create persists an order header plus its line items in one transaction.
// The header insert is an upsert keyed by order id that never touches the
// status columns, so a gateway notification that lands first cannot be
// clobbered by a slow checkout persist.
func (r *OrderRepo) Create(o domain.Order) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
	  INSERT INTO orders(id, user_id, user_email, total, status, fulfillment_status, payment_method, created_at)
	  VALUES(?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	  ON CONFLICT(id) DO UPDATE SET
	    user_id = excluded.user_id,
	    user_email = excluded.user_email,
	    total = excluded.total
	`, o.OrderID, o.UserID, o.UserEmail, o.TotalAmount, domain.StatusPending, domain.FulfillmentPending, o.PaymentMethod); err != nil {
		return err
	}

	for _, it := range o.Items {
		if _, err := tx.Exec(`
		  INSERT INTO order_items(order_id, product_id, name, price, qty, description, image)
		  VALUES(?, ?, ?, ?, ?, ?, ?)
		  ON CONFLICT(order_id, product_id) DO NOTHING
		`, o.OrderID, it.ProductID, it.Name, it.Price, it.Quantity, it.Description, it.Image); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *OrderRepo) Get(orderID string) (domain.Order, error) {
	var o domain.Order
	if err := r.db.Get(&o, `
		SELECT id, COALESCE(user_id,'') AS user_id, COALESCE(user_email,'') AS user_email,
		       total, status, fulfillment_status, payment_method, created_at
		FROM orders WHERE id = ?
	`, orderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, domain.ErrNotFound
		}
		return domain.Order{}, err
	}
	items, err := r.items(orderID)
	if err != nil {
		return domain.Order{}, err
	}
	o.Items = items
	return o, nil
}

func (r *OrderRepo) items(orderID string) ([]domain.OrderItem, error) {
	items := []domain.OrderItem{}
	err := r.db.Select(&items, `
		SELECT product_id, name, price, qty, COALESCE(description,'') AS description, COALESCE(image,'') AS image
		FROM order_items WHERE order_id = ?
		ORDER BY product_id
	`, orderID)
	return items, err
}

// ListAll returns every order with line items, newest first.
func (r *OrderRepo) ListAll() ([]domain.Order, error) {
	return r.list(`SELECT id, COALESCE(user_id,'') AS user_id, COALESCE(user_email,'') AS user_email,
		total, status, fulfillment_status, payment_method, created_at
		FROM orders ORDER BY datetime(created_at) DESC, id DESC`)
}

// ListByEmail returns orders owned by one identity, newest first.
func (r *OrderRepo) ListByEmail(email string) ([]domain.Order, error) {
	return r.list(`SELECT id, COALESCE(user_id,'') AS user_id, COALESCE(user_email,'') AS user_email,
		total, status, fulfillment_status, payment_method, created_at
		FROM orders WHERE user_email = ? ORDER BY datetime(created_at) DESC, id DESC`, email)
}

func (r *OrderRepo) list(query string, args ...any) ([]domain.Order, error) {
	orders := []domain.Order{}
	if err := r.db.Select(&orders, query, args...); err != nil {
		return nil, err
	}
	for i := range orders {
		items, err := r.items(orders[i].OrderID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

// TransitionStatus atomically moves an order from one payment status to
// another. Returns false with nil error when the order exists but is not in
// the expected source state (repeated terminal notifications are no-ops).
func (r *OrderRepo) TransitionStatus(orderID, from, to string) (bool, error) {
	res, err := r.db.Exec(`UPDATE orders SET status = ? WHERE id = ? AND status = ?`, to, orderID, from)
	if err != nil {
		return false, err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return true, nil
	}
	var exists int
	if err := r.db.Get(&exists, `SELECT COUNT(*) FROM orders WHERE id = ?`, orderID); err != nil {
		return false, err
	}
	if exists == 0 {
		return false, domain.ErrNotFound
	}
	return false, nil
}

// SetStatus sets the payment status unconditionally (staff action).
func (r *OrderRepo) SetStatus(orderID, status string) error {
	res, err := r.db.Exec(`UPDATE orders SET status = ? WHERE id = ?`, status, orderID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetFulfillment sets the kitchen/staff label.
func (r *OrderRepo) SetFulfillment(orderID, label string) error {
	res, err := r.db.Exec(`UPDATE orders SET fulfillment_status = ? WHERE id = ?`, label, orderID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
