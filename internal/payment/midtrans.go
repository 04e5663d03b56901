package payment

import (
	"fmt"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"nitrobrew/internal/domain"
)

// MidtransGateway wraps the Snap client. It only translates shapes; the
// order/payment semantics stay in the order service.
type MidtransGateway struct {
	client snap.Client
}

func NewMidtrans(serverKey, env string) *MidtransGateway {
	e := midtrans.Sandbox
	if env == "production" {
		e = midtrans.Production
	}
	g := &MidtransGateway{}
	g.client.New(serverKey, e)
	return g
}

func (g *MidtransGateway) CreateTransactionToken(req TokenRequest) (string, error) {
	items := make([]midtrans.ItemDetails, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, midtrans.ItemDetails{
			ID:    it.ID,
			Name:  it.Name,
			Price: it.Price,
			Qty:   it.Quantity,
		})
	}

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.OrderID,
			GrossAmt: req.GrossAmount,
		},
		Items: &items,
		CustomerDetail: &midtrans.CustomerDetails{
			Email: req.CustomerEmail,
		},
	}

	token, err := g.client.CreateTransactionToken(snapReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGateway, err)
	}
	return token, nil
}
