package services

import (
	"time"

	"nitrobrew/internal/domain"
	"nitrobrew/internal/repos"
)

// Dashboard is the staff landing view. Everything here is derived from the
// order and stock lists on each request; nothing is cached.
type Dashboard struct {
	TotalOrders      int     `json:"totalOrders"` // current calendar month
	TotalSales       int64   `json:"totalSales"`
	TodayOrders      int     `json:"todayOrders"`
	TodaySales       int64   `json:"todaySales"`
	BestSelling      string  `json:"bestSellingProduct"`
	BestSellingCount int     `json:"bestSellingCount"`
	MonthlyData      []int64 `json:"monthlyData"` // trailing 30 days of revenue, in thousands
	OutOfStock       []string `json:"outOfStock"`
}

type ReportService struct {
	Orders *repos.OrderRepo
	Stock  *repos.StockRepo
	Now    func() time.Time
}

func NewReportService(orders *repos.OrderRepo, stock *repos.StockRepo) *ReportService {
	return &ReportService{Orders: orders, Stock: stock, Now: time.Now}
}

func (s *ReportService) Dashboard() (Dashboard, error) {
	orders, err := s.Orders.ListAll()
	if err != nil {
		return Dashboard{}, err
	}
	stock, err := s.Stock.List()
	if err != nil {
		return Dashboard{}, err
	}
	return Aggregate(orders, stock, s.Now()), nil
}

// parseCreatedAt accepts both the SQLite CURRENT_TIMESTAMP layout and RFC3339.
func parseCreatedAt(s string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Aggregate folds the full order and stock lists into the dashboard view.
// now anchors "today" and "this month"; timestamps are compared in UTC since
// that is how rows are written.
func Aggregate(orders []domain.Order, stock []domain.StockItem, now time.Time) Dashboard {
	now = now.UTC()
	d := Dashboard{}

	perProduct := map[string]int{}
	var productOrder []string // insertion order decides ties
	perDay := map[string]int64{}

	for _, o := range orders {
		created, ok := parseCreatedAt(o.CreatedAt)
		if !ok {
			continue
		}
		if created.Year() == now.Year() && created.Month() == now.Month() {
			d.TotalOrders++
			d.TotalSales += o.TotalAmount
		}
		if sameDay(created, now) {
			d.TodayOrders++
			d.TodaySales += o.TotalAmount
		}
		perDay[created.Format("2006-01-02")] += o.TotalAmount
		for _, it := range o.Items {
			if _, seen := perProduct[it.Name]; !seen {
				productOrder = append(productOrder, it.Name)
			}
			perProduct[it.Name] += it.Quantity
		}
	}

	d.BestSelling = "No data"
	for _, name := range productOrder {
		if perProduct[name] > d.BestSellingCount {
			d.BestSelling = name
			d.BestSellingCount = perProduct[name]
		}
	}

	if len(orders) == 0 {
		d.MonthlyData = []int64{0}
	} else {
		d.MonthlyData = make([]int64, 0, 30)
		for i := 29; i >= 0; i-- {
			day := now.AddDate(0, 0, -i).Format("2006-01-02")
			d.MonthlyData = append(d.MonthlyData, perDay[day]/1000)
		}
	}

	for _, it := range stock {
		if it.Stock == 0 {
			d.OutOfStock = append(d.OutOfStock, it.Name)
		}
	}
	if len(d.OutOfStock) == 0 {
		d.OutOfStock = []string{"No items out of stock"}
	}

	return d
}
