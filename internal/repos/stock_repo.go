package repos

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"nitrobrew/internal/domain"
)

type StockRepo struct{ db *sqlx.DB }

func NewStockRepo(db *sqlx.DB) *StockRepo { return &StockRepo{db: db} }

func (r *StockRepo) List() ([]domain.StockItem, error) {
	items := []domain.StockItem{}
	err := r.db.Select(&items, `
		SELECT id, name, stock, image FROM stock
		ORDER BY datetime(created_at) DESC, id
	`)
	return items, err
}

func (r *StockRepo) Get(productID string) (domain.StockItem, error) {
	var it domain.StockItem
	err := r.db.Get(&it, `SELECT id, name, stock, image FROM stock WHERE id = ?`, productID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.StockItem{}, domain.ErrNotFound
	}
	return it, err
}

func (r *StockRepo) Create(it domain.StockItem) error {
	_, err := r.db.Exec(`
		INSERT INTO stock(id, name, stock, image) VALUES(?, ?, ?, ?)
	`, it.ProductID, it.Name, it.Stock, it.Image)
	if err != nil && strings.Contains(err.Error(), "UNIQUE") {
		return domain.ErrDuplicate
	}
	return err
}

// Update replaces name/quantity/image for an existing record.
func (r *StockRepo) Update(it domain.StockItem) error {
	res, err := r.db.Exec(`
		UPDATE stock SET name = ?, stock = ?, image = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, it.Name, it.Stock, it.Image, it.ProductID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *StockRepo) Delete(productID string) error {
	res, err := r.db.Exec(`DELETE FROM stock WHERE id = ?`, productID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Add atomically increases the quantity.
func (r *StockRepo) Add(productID string, amount int) error {
	res, err := r.db.Exec(`
		UPDATE stock SET stock = stock + ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, amount, productID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Subtract atomically decreases the quantity, clamping at zero.
func (r *StockRepo) Subtract(productID string, amount int) error {
	res, err := r.db.Exec(`
		UPDATE stock SET stock = MAX(stock - ?, 0), updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, amount, productID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *StockRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM stock`)
	return n, err
}

// InsertMany seeds a batch inside one transaction (starter-set initialize).
func (r *StockRepo) InsertMany(items []domain.StockItem) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	for _, it := range items {
		if _, err := tx.Exec(`INSERT INTO stock(id, name, stock, image) VALUES(?, ?, ?, ?)`,
			it.ProductID, it.Name, it.Stock, it.Image); err != nil {
			return err
		}
	}
	return tx.Commit()
}
