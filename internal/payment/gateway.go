package payment

// ItemDetail is the projection of an order line the gateway needs.
type ItemDetail struct {
	ID       string
	Name     string
	Price    int64
	Quantity int32
}

// TokenRequest carries everything required to open a gateway transaction.
type TokenRequest struct {
	OrderID       string
	GrossAmount   int64
	CustomerEmail string
	Items         []ItemDetail
}

// Gateway issues payment transaction tokens. The production implementation
// talks to Midtrans Snap; tests substitute a fake.
type Gateway interface {
	CreateTransactionToken(req TokenRequest) (string, error)
}
