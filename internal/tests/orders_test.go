package tests

import (
	"context"
	"foodexpress-storefront/internal/domain"
	"foodexpress-storefront/internal/mocks"
	"foodexpress-storefront/internal/service"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	testDelivery = domain.DeliveryDetails{
		Name: "Alice", Phone: "555-0101", Street: "1 Main St",
		City: "Springfield", State: "IL", PostalCode: "62701",
	}
	testLines = []domain.CartLine{
		{ItemID: 1, Name: "Pizza", Price: 5.00, Quantity: 2},
		{ItemID: 2, Name: "Pasta", Price: 7.50, Quantity: 1},
	}
)

func TestOrderService_PlaceValidation(t *testing.T) {
	tests := []struct {
		name    string
		details domain.DeliveryDetails
		lines   []domain.CartLine
		wantErr error
	}{
		{
			name:    "empty cart",
			details: testDelivery,
			lines:   []domain.CartLine{},
			wantErr: service.ErrEmptyCart,
		},
		{
			name:    "missing street",
			details: domain.DeliveryDetails{Name: "Alice", Phone: "555-0101", City: "Springfield", State: "IL", PostalCode: "62701"},
			lines:   testLines,
			wantErr: service.ErrMissingDeliveryField,
		},
		{
			name:    "missing postal code",
			details: domain.DeliveryDetails{Name: "Alice", Phone: "555-0101", Street: "1 Main St", City: "Springfield", State: "IL"},
			lines:   testLines,
			wantErr: service.ErrMissingDeliveryField,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			api := new(mocks.OrderAPI)
			svc := service.NewOrderService(api, nil, nil, nil)

			result, err := svc.Place(context.Background(), testCase.details, testCase.lines)

			assert.ErrorIs(t, err, testCase.wantErr)
			assert.Nil(t, result)
			// Local validation rejects before any network call.
			api.AssertNotCalled(t, "PlaceOrder", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestOrderService_Place(t *testing.T) {
	placed := &domain.PlaceOrderResult{
		OrderID:              55,
		CustomerID:           "42",
		CancellationDeadline: time.Now().Add(2 * time.Minute),
	}

	t.Run("success clears the cart and publishes the event", func(t *testing.T) {
		api := new(mocks.OrderAPI)
		cart := new(mocks.CartClearer)
		publisher := new(mocks.EventPublisher)
		wantItems := []domain.OrderItemRequest{
			{MenuItemID: 1, Quantity: 2},
			{MenuItemID: 2, Quantity: 1},
		}
		api.On("PlaceOrder", mock.Anything, testDelivery, wantItems).Return(placed, nil).Once()
		cart.On("Clear", mock.Anything).Return(nil).Once()
		publisher.On("PublishEvent", mock.Anything, mock.MatchedBy(func(msg domain.EventMessage) bool {
			return msg.Type == "order_placed" && msg.OrderID == 55 && msg.CustomerID == "42" && msg.Total == 17.50
		})).Return(nil).Once()
		svc := service.NewOrderService(api, cart, publisher, nil)

		result, err := svc.Place(context.Background(), testDelivery, testLines)

		assert.NoError(t, err)
		assert.Equal(t, placed, result)
		api.AssertExpectations(t)
		cart.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("backend failure leaves the cart alone", func(t *testing.T) {
		api := new(mocks.OrderAPI)
		cart := new(mocks.CartClearer)
		api.On("PlaceOrder", mock.Anything, testDelivery, mock.Anything).Return(nil, assert.AnError).Once()
		svc := service.NewOrderService(api, cart, nil, nil)

		result, err := svc.Place(context.Background(), testDelivery, testLines)

		assert.Error(t, err)
		assert.Nil(t, result)
		cart.AssertNotCalled(t, "Clear", mock.Anything)
	})

	t.Run("cart clear failure does not fail the placed order", func(t *testing.T) {
		api := new(mocks.OrderAPI)
		cart := new(mocks.CartClearer)
		api.On("PlaceOrder", mock.Anything, testDelivery, mock.Anything).Return(placed, nil).Once()
		cart.On("Clear", mock.Anything).Return(assert.AnError).Once()
		svc := service.NewOrderService(api, cart, nil, nil)

		result, err := svc.Place(context.Background(), testDelivery, testLines)

		assert.NoError(t, err)
		assert.Equal(t, placed, result)
	})
}

func TestOrderService_Cancel(t *testing.T) {
	serverOrder := domain.Order{
		OrderID: 55, Status: domain.OrderStatusCancelled,
		RestaurantName: "Mario's", TotalAmount: 17.50,
	}

	tests := []struct {
		name         string
		prepareMocks func(*mocks.OrderAPI)
		wantOrder    *domain.Order
		wantErr      bool
	}{
		{
			name: "returns the server's projection after cancelling",
			prepareMocks: func(api *mocks.OrderAPI) {
				api.On("CancelOrder", mock.Anything, 55).Return(nil).Once()
				api.On("CustomerOrders", mock.Anything, "42").Return([]domain.Order{serverOrder}, nil).Once()
			},
			wantOrder: &serverOrder,
		},
		{
			name: "re-fetch failure falls back to the local projection",
			prepareMocks: func(api *mocks.OrderAPI) {
				api.On("CancelOrder", mock.Anything, 55).Return(nil).Once()
				api.On("CustomerOrders", mock.Anything, "42").Return(nil, assert.AnError).Once()
			},
			wantOrder: &domain.Order{OrderID: 55, Status: domain.OrderStatusCancelled},
		},
		{
			name: "order missing from the re-fetch falls back too",
			prepareMocks: func(api *mocks.OrderAPI) {
				api.On("CancelOrder", mock.Anything, 55).Return(nil).Once()
				api.On("CustomerOrders", mock.Anything, "42").Return([]domain.Order{}, nil).Once()
			},
			wantOrder: &domain.Order{OrderID: 55, Status: domain.OrderStatusCancelled},
		},
		{
			name: "cancellation rejected by the server",
			prepareMocks: func(api *mocks.OrderAPI) {
				api.On("CancelOrder", mock.Anything, 55).Return(assert.AnError).Once()
			},
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			api := new(mocks.OrderAPI)
			testCase.prepareMocks(api)
			svc := service.NewOrderService(api, nil, nil, nil)

			order, err := svc.Cancel(context.Background(), "42", 55)

			if testCase.wantErr {
				assert.Error(t, err)
				assert.Nil(t, order)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testCase.wantOrder, order)
			}
			api.AssertExpectations(t)
		})
	}
}

func TestOrderService_ConfirmationQR(t *testing.T) {
	t.Run("delegates to the generator", func(t *testing.T) {
		qr := new(mocks.QRGenerator)
		qr.On("Generate", 55).Return([]byte("png-bytes"), nil).Once()
		svc := service.NewOrderService(new(mocks.OrderAPI), nil, nil, qr)

		png, err := svc.ConfirmationQR(55)

		assert.NoError(t, err)
		assert.Equal(t, []byte("png-bytes"), png)
		qr.AssertExpectations(t)
	})

	t.Run("errors when no generator is configured", func(t *testing.T) {
		svc := service.NewOrderService(new(mocks.OrderAPI), nil, nil, nil)

		_, err := svc.ConfirmationQR(55)

		assert.Error(t, err)
	})
}

func TestDefaultQRGenerator(t *testing.T) {
	gen := service.DefaultQRGenerator{BaseURL: "http://localhost:8080"}
	png, err := gen.Generate(123)

	assert.NoError(t, err)
	assert.NotEmpty(t, png)
}
