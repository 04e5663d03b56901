package handlers

import (
	"github.com/jmoiron/sqlx"

	"nitrobrew/internal/payment"
	"nitrobrew/internal/repos"
	"nitrobrew/internal/services"
)

type Deps struct {
	MenuHandler    *MenuHandler
	CartHandler    *CartHandler
	OrderHandler   *OrderHandler
	PaymentHandler *PaymentHandler
	StockHandler   *StockHandler
	AdminHandler   *AdminHandler
	ProfileHandler *ProfileHandler
}

func NewDeps(db *sqlx.DB, auth *services.AuthService, gw payment.Gateway) *Deps {
	cartRepo := repos.NewCartRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	stockRepo := repos.NewStockRepo(db)
	userRepo := repos.NewUserRepo(db)

	cartSvc := services.NewCartService(cartRepo)
	orderSvc := services.NewOrderService(orderRepo, userRepo, gw)
	stockSvc := services.NewStockService(stockRepo)
	reportSvc := services.NewReportService(orderRepo, stockRepo)

	return &Deps{
		MenuHandler:    &MenuHandler{},
		CartHandler:    &CartHandler{Cart: cartSvc},
		OrderHandler:   &OrderHandler{Order: orderSvc, Cart: cartSvc},
		PaymentHandler: &PaymentHandler{Order: orderSvc},
		StockHandler:   &StockHandler{Stock: stockSvc},
		AdminHandler:   &AdminHandler{Order: orderSvc, Report: reportSvc},
		ProfileHandler: &ProfileHandler{Auth: auth, Users: userRepo},
	}
}
