package repos

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"nitrobrew/internal/domain"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,email,name,password_hash,role,points FROM users WHERE LOWER(email)=LOWER(?)`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,email,name,password_hash,role,points FROM users WHERE id=?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Create(u domain.User) error {
	_, err := r.DB.Exec(`
		INSERT INTO users(id,email,name,password_hash,role) VALUES(?,?,?,?,?)
	`, u.ID, u.Email, u.Name, u.Hash, u.Role)
	if err != nil && strings.Contains(err.Error(), "UNIQUE") {
		return domain.ErrDuplicate
	}
	return err
}

// UpdateName changes only the display name.
func (r *UserRepo) UpdateName(id, name string) error {
	res, err := r.DB.Exec(`UPDATE users SET name=?, updated_at=CURRENT_TIMESTAMP WHERE id=?`, name, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AddPoints atomically increments the points balance and returns the new total.
func (r *UserRepo) AddPoints(email string, delta int) (int, error) {
	res, err := r.DB.Exec(`UPDATE users SET points = points + ? WHERE LOWER(email)=LOWER(?)`, delta, email)
	if err != nil {
		return 0, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return 0, domain.ErrNotFound
	}
	var points int
	if err := r.DB.Get(&points, `SELECT points FROM users WHERE LOWER(email)=LOWER(?)`, email); err != nil {
		return 0, err
	}
	return points, nil
}

func (r *UserRepo) Points(email string) (int, error) {
	var points int
	err := r.DB.Get(&points, `SELECT points FROM users WHERE LOWER(email)=LOWER(?)`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrNotFound
	}
	return points, err
}
