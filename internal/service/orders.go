package service

import (
	"context"
	"errors"
	"log"
	"time"

	"foodexpress-storefront/internal/domain"
)

var (
	ErrEmptyCart            = errors.New("cannot place an order with an empty cart")
	ErrMissingDeliveryField = errors.New("all delivery fields are required")
)

// OrderService is the thin, server-delegated checkout flow. The server owns
// the order state machine; this side only places, lists and cancels.
type OrderService struct {
	api       OrderAPI
	cart      CartClearer
	publisher EventPublisher
	qrEncoder QRGenerator
}

func NewOrderService(api OrderAPI, cart CartClearer, publisher EventPublisher, qr QRGenerator) *OrderService {
	return &OrderService{
		api:       api,
		cart:      cart,
		publisher: publisher,
		qrEncoder: qr,
	}
}

// Place validates locally before any network call, posts the order, clears
// the cart on success and publishes an order_placed event. Backend failures
// carry the server's message verbatim.
func (s *OrderService) Place(ctx context.Context, details domain.DeliveryDetails, lines []domain.CartLine) (*domain.PlaceOrderResult, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	if details.Name == "" || details.Phone == "" || details.Street == "" ||
		details.City == "" || details.State == "" || details.PostalCode == "" {
		return nil, ErrMissingDeliveryField
	}

	items := make([]domain.OrderItemRequest, 0, len(lines))
	total := 0.0
	for _, line := range lines {
		items = append(items, domain.OrderItemRequest{
			MenuItemID: line.ItemID,
			Quantity:   line.Quantity,
		})
		total += line.Price * float64(line.Quantity)
	}

	result, err := s.api.PlaceOrder(ctx, details, items)
	if err != nil {
		return nil, err
	}

	if s.cart != nil {
		if err := s.cart.Clear(ctx); err != nil {
			log.Printf("[orders] failed to clear cart after checkout: %v", err)
		}
	}
	s.publish(ctx, domain.EventMessage{
		Type:       "order_placed",
		OrderID:    result.OrderID,
		CustomerID: result.CustomerID,
		Total:      total,
	})

	return result, nil
}

// Cancel posts the cancellation and then re-fetches the customer's orders so
// the returned projection is the server's, not an optimistic local flip. Only
// when the re-fetch itself fails does the optimistic projection stand in.
func (s *OrderService) Cancel(ctx context.Context, customerID string, orderID int) (*domain.Order, error) {
	if err := s.api.CancelOrder(ctx, orderID); err != nil {
		return nil, err
	}

	s.publish(ctx, domain.EventMessage{
		Type:       "order_cancelled",
		OrderID:    orderID,
		CustomerID: customerID,
	})

	orders, err := s.api.CustomerOrders(ctx, customerID)
	if err != nil {
		log.Printf("[orders] could not confirm cancellation of order %d: %v", orderID, err)
		return &domain.Order{OrderID: orderID, Status: domain.OrderStatusCancelled}, nil
	}
	for i := range orders {
		if orders[i].OrderID == orderID {
			return &orders[i], nil
		}
	}
	return &domain.Order{OrderID: orderID, Status: domain.OrderStatusCancelled}, nil
}

func (s *OrderService) Orders(ctx context.Context, customerID string) ([]domain.Order, error) {
	return s.api.CustomerOrders(ctx, customerID)
}

// ConfirmationQR renders the scannable pointer shown on the order
// confirmation page.
func (s *OrderService) ConfirmationQR(orderID int) ([]byte, error) {
	if s.qrEncoder == nil {
		return nil, errors.New("qr generation is not configured")
	}
	return s.qrEncoder.Generate(orderID)
}

func (s *OrderService) publish(ctx context.Context, msg domain.EventMessage) {
	if s.publisher == nil {
		return
	}
	msg.Timestamp = time.Now()
	if err := s.publisher.PublishEvent(ctx, msg); err != nil {
		log.Printf("[orders] failed to publish %s event: %v", msg.Type, err)
	}
}

var _ OrderServiceInterface = (*OrderService)(nil)
