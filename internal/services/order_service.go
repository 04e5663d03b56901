package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"nitrobrew/internal/domain"
	"nitrobrew/internal/payment"
	"nitrobrew/internal/repos"
)

// GuestEmail is the placeholder sent to the gateway for anonymous checkouts.
const GuestEmail = "guest@nitrobrew.id"

const pointsPerItem = 10

type OrderService struct {
	Orders  *repos.OrderRepo
	Users   *repos.UserRepo
	Gateway payment.Gateway
	Now     func() time.Time
}

func NewOrderService(orders *repos.OrderRepo, users *repos.UserRepo, gw payment.Gateway) *OrderService {
	return &OrderService{Orders: orders, Users: users, Gateway: gw, Now: time.Now}
}

type CheckoutResult struct {
	Token     string `json:"token"`
	OrderID   string `json:"orderId"`
	UserEmail string `json:"userEmail"`
}

// Checkout requests a gateway token for the cart snapshot and records a
// pending order. The order is only persisted after the token is issued: a
// gateway failure leaves no local state behind.
func (s *OrderService) Checkout(sess Session, items []domain.OrderItem, totalAmount int64) (CheckoutResult, error) {
	if len(items) == 0 {
		return CheckoutResult{}, fmt.Errorf("%w: empty order", domain.ErrValidation)
	}
	var sum int64
	for _, it := range items {
		if it.Quantity < 1 || it.Price < 0 {
			return CheckoutResult{}, fmt.Errorf("%w: bad line item %d", domain.ErrValidation, it.ProductID)
		}
		sum += it.Price * int64(it.Quantity)
	}
	if sum != totalAmount {
		return CheckoutResult{}, fmt.Errorf("%w: total %d does not match items sum %d", domain.ErrValidation, totalAmount, sum)
	}

	orderID := "TX-" + strconv.FormatInt(s.Now().UnixMilli(), 10)
	email := sess.Email
	if email == "" {
		email = GuestEmail
	}

	details := make([]payment.ItemDetail, 0, len(items))
	for _, it := range items {
		details = append(details, payment.ItemDetail{
			ID:       strconv.Itoa(it.ProductID),
			Name:     it.Name,
			Price:    it.Price,
			Quantity: int32(it.Quantity),
		})
	}
	token, err := s.Gateway.CreateTransactionToken(payment.TokenRequest{
		OrderID:       orderID,
		GrossAmount:   totalAmount,
		CustomerEmail: email,
		Items:         details,
	})
	if err != nil {
		return CheckoutResult{}, err
	}

	order := domain.Order{
		OrderID:       orderID,
		UserID:        sess.UserID,
		UserEmail:     sess.Email, // empty for guests; the placeholder is gateway-only
		Items:         items,
		TotalAmount:   totalAmount,
		PaymentMethod: "Midtrans",
	}
	if err := s.Orders.Create(order); err != nil {
		// The gateway token stays valid with no matching local order; the
		// caller sees a generic failure and retries checkout.
		return CheckoutResult{}, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	return CheckoutResult{Token: token, OrderID: orderID, UserEmail: email}, nil
}

// HandleNotification applies a gateway callback to the order state machine:
//
//	capture|settlement + accept  => pending -> paid
//	cancel|deny|expire           => pending -> cancelled
//	pending                      => stays pending
//
// Repeating a terminal notification is a no-op. Unknown orders report not
// found without state change.
func (s *OrderService) HandleNotification(orderID, transactionStatus, fraudStatus string) error {
	switch transactionStatus {
	case "capture", "settlement":
		if fraudStatus != "accept" {
			_, err := s.Orders.Get(orderID)
			return err
		}
		changed, err := s.Orders.TransitionStatus(orderID, domain.StatusPending, domain.StatusPaid)
		if err != nil {
			return err
		}
		if changed {
			s.creditPoints(orderID)
		}
		return nil
	case "cancel", "deny", "expire":
		_, err := s.Orders.TransitionStatus(orderID, domain.StatusPending, domain.StatusCancelled)
		return err
	case "pending":
		_, err := s.Orders.Get(orderID)
		return err
	default:
		_, err := s.Orders.Get(orderID)
		return err
	}
}

// creditPoints awards the owner 10 points per purchased item. Runs only on
// the actual pending->paid edge, so a replayed notification cannot double
// credit. Guests have no ledger to credit.
func (s *OrderService) creditPoints(orderID string) {
	o, err := s.Orders.Get(orderID)
	if err != nil || o.UserEmail == "" {
		return
	}
	_, _ = s.Users.AddPoints(o.UserEmail, o.TotalItems()*pointsPerItem)
}

// SetStaffStatus applies a staff order action. The three kitchen labels go to
// the fulfillment dimension; "delivered" is the staff-only terminal payment
// transition.
func (s *OrderService) SetStaffStatus(orderID, label string) (domain.Order, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case domain.FulfillmentPending:
		if err := s.Orders.SetFulfillment(orderID, domain.FulfillmentPending); err != nil {
			return domain.Order{}, err
		}
	case domain.FulfillmentInProgress:
		if err := s.Orders.SetFulfillment(orderID, domain.FulfillmentInProgress); err != nil {
			return domain.Order{}, err
		}
	case domain.FulfillmentDone:
		if err := s.Orders.SetFulfillment(orderID, domain.FulfillmentDone); err != nil {
			return domain.Order{}, err
		}
	case domain.StatusDelivered:
		if err := s.Orders.SetStatus(orderID, domain.StatusDelivered); err != nil {
			return domain.Order{}, err
		}
	default:
		return domain.Order{}, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, label)
	}
	return s.Orders.Get(orderID)
}

// History lists orders owned by the session's identity, newest first.
func (s *OrderService) History(sess Session) ([]domain.Order, error) {
	if sess.Guest {
		return []domain.Order{}, nil
	}
	return s.Orders.ListByEmail(sess.Email)
}

func (s *OrderService) ListAll() ([]domain.Order, error) {
	return s.Orders.ListAll()
}
