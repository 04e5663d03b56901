package domain

// Payment lifecycle statuses for an order.
const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusCancelled = "cancelled"
	StatusDelivered = "delivered"
)

// Staff-facing fulfillment labels, tracked independently of payment state.
const (
	FulfillmentPending    = "pending"
	FulfillmentInProgress = "in progress"
	FulfillmentDone       = "done"
)

type MenuItem struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"` // IDR, smallest unit
	Type        string `json:"type"`  // coffee | tea | other
	Description string `json:"description"`
	Image       string `json:"image"`
}

type CartEntry struct {
	ProductID   int    `db:"product_id" json:"id"`
	Name        string `db:"name" json:"name"`
	Price       int64  `db:"price" json:"price"`
	Quantity    int    `db:"qty" json:"quantity"`
	Description string `db:"description" json:"description"`
	Image       string `db:"image" json:"image"`
}

type OrderItem struct {
	ProductID   int    `db:"product_id" json:"productId"`
	Name        string `db:"name" json:"name"`
	Price       int64  `db:"price" json:"price"`
	Quantity    int    `db:"qty" json:"quantity"`
	Description string `db:"description" json:"description,omitempty"`
	Image       string `db:"image" json:"image,omitempty"`
}

type Order struct {
	OrderID           string      `db:"id" json:"orderId"`
	UserID            string      `db:"user_id" json:"userId,omitempty"`
	UserEmail         string      `db:"user_email" json:"userEmail,omitempty"`
	Items             []OrderItem `db:"-" json:"items"`
	TotalAmount       int64       `db:"total" json:"totalAmount"`
	Status            string      `db:"status" json:"status"`
	FulfillmentStatus string      `db:"fulfillment_status" json:"fulfillmentStatus"`
	PaymentMethod     string      `db:"payment_method" json:"paymentMethod"`
	CreatedAt         string      `db:"created_at" json:"createdAt"`
}

// TotalItems is the summed quantity across line items (drives points credit).
func (o Order) TotalItems() int {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}

type StockItem struct {
	ProductID string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Stock     int    `db:"stock" json:"stock"`
	Image     string `db:"image" json:"image"`
	Status    string `db:"-" json:"status"` // derived at read time
}

// StockStatus derives the display status from a quantity.
func StockStatus(qty int) string {
	switch {
	case qty == 0:
		return "Out of Stock"
	case qty < 5:
		return "Low Stock"
	default:
		return "In Stock"
	}
}
