package services

import (
	"fmt"

	"nitrobrew/internal/domain"
	"nitrobrew/internal/repos"
)

type StockService struct {
	Stock *repos.StockRepo
}

func NewStockService(stock *repos.StockRepo) *StockService {
	return &StockService{Stock: stock}
}

// starterSet is the fixed seed used by the explicit initialize action.
var starterSet = []domain.StockItem{
	{ProductID: "INO001", Name: "Nitro Coffee Beans", Stock: 9, Image: "☕"},
	{ProductID: "INO002", Name: "Premium Black Tea", Stock: 25, Image: "🍵"},
	{ProductID: "INO003", Name: "Full Cream Honey Milk", Stock: 0, Image: "🥛"},
	{ProductID: "INO004", Name: "Nitro Tin Container", Stock: 4, Image: "🥫"},
	{ProductID: "INO005", Name: "Fresh Mint Leaves", Stock: 0, Image: "🌿"},
}

// List returns all items with the display status derived at read time.
func (s *StockService) List() ([]domain.StockItem, error) {
	items, err := s.Stock.List()
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Status = domain.StockStatus(items[i].Stock)
	}
	return items, nil
}

func (s *StockService) Create(id, name string, qty int, image string) (domain.StockItem, error) {
	if id == "" || name == "" {
		return domain.StockItem{}, fmt.Errorf("%w: id and name are required", domain.ErrValidation)
	}
	if qty < 0 {
		qty = 0
	}
	it := domain.StockItem{ProductID: id, Name: name, Stock: qty, Image: image}
	if err := s.Stock.Create(it); err != nil {
		return domain.StockItem{}, err
	}
	it.Status = domain.StockStatus(it.Stock)
	return it, nil
}

// Update is a full replace of name/quantity/image.
func (s *StockService) Update(id, name string, qty int, image string) (domain.StockItem, error) {
	if qty < 0 {
		return domain.StockItem{}, fmt.Errorf("%w: quantity must not be negative", domain.ErrValidation)
	}
	it := domain.StockItem{ProductID: id, Name: name, Stock: qty, Image: image}
	if err := s.Stock.Update(it); err != nil {
		return domain.StockItem{}, err
	}
	it.Status = domain.StockStatus(it.Stock)
	return it, nil
}

func (s *StockService) Delete(id string) error {
	return s.Stock.Delete(id)
}

// Adjust adds or subtracts quantity; subtraction clamps at zero.
func (s *StockService) Adjust(id, action string, amount int) (domain.StockItem, error) {
	if amount < 0 {
		return domain.StockItem{}, fmt.Errorf("%w: amount must not be negative", domain.ErrValidation)
	}
	switch action {
	case "add":
		if err := s.Stock.Add(id, amount); err != nil {
			return domain.StockItem{}, err
		}
	case "subtract":
		if err := s.Stock.Subtract(id, amount); err != nil {
			return domain.StockItem{}, err
		}
	default:
		return domain.StockItem{}, fmt.Errorf("%w: action must be add or subtract", domain.ErrValidation)
	}
	it, err := s.Stock.Get(id)
	if err != nil {
		return domain.StockItem{}, err
	}
	it.Status = domain.StockStatus(it.Stock)
	return it, nil
}

// InitializeDefaults seeds the starter set, but only into an empty store.
func (s *StockService) InitializeDefaults() (int, error) {
	n, err := s.Stock.Count()
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, domain.ErrAlreadyInitialized
	}
	if err := s.Stock.InsertMany(starterSet); err != nil {
		return 0, err
	}
	return len(starterSet), nil
}
