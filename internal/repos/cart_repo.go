package repos

import (
	"github.com/jmoiron/sqlx"

	"nitrobrew/internal/domain"
)

// CartRepo persists cart entries keyed by identity (a user email or a guest
// key). It is the storage side of the cart; quantity rules live in the service.
type CartRepo struct{ db *sqlx.DB }

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{db: db} }

// Load returns the full entry list for one identity.
func (r *CartRepo) Load(identity string) ([]domain.CartEntry, error) {
	entries := []domain.CartEntry{}
	err := r.db.Select(&entries, `
	  SELECT product_id, name, price, qty, COALESCE(description,'') AS description, COALESCE(image,'') AS image
	  FROM cart_items
	  WHERE identity = ?
	  ORDER BY created_at, product_id
	`, identity)
	return entries, err
}

// UpsertEntry inserts a snapshot entry or adds to the quantity of an existing one.
func (r *CartRepo) UpsertEntry(identity string, e domain.CartEntry) error {
	_, err := r.db.Exec(`
		INSERT INTO cart_items(identity,product_id,name,price,qty,description,image,created_at)
		VALUES(?,?,?,?,?,?,?,CURRENT_TIMESTAMP)
		ON CONFLICT(identity,product_id) DO UPDATE
		SET qty = cart_items.qty + excluded.qty, updated_at = CURRENT_TIMESTAMP
	`, identity, e.ProductID, e.Name, e.Price, e.Quantity, e.Description, e.Image)
	return err
}

// SetQuantity overwrites the quantity of an existing entry. Rows are kept
// qty >= 1; callers remove entries instead of setting zero.
func (r *CartRepo) SetQuantity(identity string, productID, qty int) error {
	res, err := r.db.Exec(`
		UPDATE cart_items SET qty = ?, updated_at = CURRENT_TIMESTAMP
		WHERE identity = ? AND product_id = ?
	`, qty, identity, productID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Remove deletes one entry; removing an absent entry is a no-op.
func (r *CartRepo) Remove(identity string, productID int) error {
	_, err := r.db.Exec(`DELETE FROM cart_items WHERE identity = ? AND product_id = ?`, identity, productID)
	return err
}

// Clear empties the cart for one identity.
func (r *CartRepo) Clear(identity string) error {
	_, err := r.db.Exec(`DELETE FROM cart_items WHERE identity = ?`, identity)
	return err
}
