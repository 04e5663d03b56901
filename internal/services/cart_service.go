package services

import (
	"fmt"

	"nitrobrew/internal/catalog"
	"nitrobrew/internal/domain"
	"nitrobrew/internal/repos"
)

type CartService struct {
	Carts *repos.CartRepo
}

func NewCartService(carts *repos.CartRepo) *CartService {
	return &CartService{Carts: carts}
}

// Add merges quantity into an existing entry or inserts a snapshot of the
// menu item (price/name/description/image frozen at add time).
func (s *CartService) Add(identity string, itemID, qty int) error {
	if qty < 1 {
		qty = 1
	}
	m, ok := catalog.Get(itemID)
	if !ok {
		return fmt.Errorf("%w: menu item %d", domain.ErrNotFound, itemID)
	}
	return s.Carts.UpsertEntry(identity, domain.CartEntry{
		ProductID:   m.ID,
		Name:        m.Name,
		Price:       m.Price,
		Quantity:    qty,
		Description: m.Description,
		Image:       "/" + m.Image,
	})
}

// UpdateQuantity sets an entry's quantity; zero or negative removes it.
func (s *CartService) UpdateQuantity(identity string, itemID, qty int) error {
	if qty <= 0 {
		return s.Carts.Remove(identity, itemID)
	}
	return s.Carts.SetQuantity(identity, itemID, qty)
}

func (s *CartService) Remove(identity string, itemID int) error {
	return s.Carts.Remove(identity, itemID)
}

func (s *CartService) Clear(identity string) error {
	return s.Carts.Clear(identity)
}

type CartView struct {
	Items       []domain.CartEntry `json:"items"`
	TotalAmount int64              `json:"totalAmount"`
	TotalItems  int                `json:"totalItems"`
}

func (s *CartService) View(identity string) (CartView, error) {
	entries, err := s.Carts.Load(identity)
	if err != nil {
		return CartView{}, err
	}
	cv := CartView{Items: entries}
	for _, e := range entries {
		cv.TotalAmount += e.Price * int64(e.Quantity)
		cv.TotalItems += e.Quantity
	}
	return cv, nil
}
