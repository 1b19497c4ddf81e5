package checkout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ozerastore/ozera-backend/internal/cart"
	"github.com/ozerastore/ozera-backend/internal/handoff"
	"github.com/ozerastore/ozera-backend/internal/notify"
	"github.com/ozerastore/ozera-backend/internal/order"
)

var (
	ErrMissingFields = errors.New("customer phone and delivery address are required")
	ErrEmptyCart     = errors.New("cart is empty")
)

// Result is returned on a successful checkout: the persisted order, its
// customer-facing reference and the WhatsApp handoff link the client
// redirects to.
type Result struct {
	Order       order.Order `json:"order"`
	OrderRef    string      `json:"orderRef"`
	WhatsAppURL string      `json:"whatsappUrl"`
}

// Service converts cart contents into a persisted order. On success the cart
// is cleared; on failure it is preserved so the customer can resubmit.
type Service struct {
	carts      *cart.Service
	orders     order.ServiceInterface
	publisher  notify.Publisher
	storePhone string
}

func NewService(carts *cart.Service, orders order.ServiceInterface, publisher notify.Publisher, storePhone string) *Service {
	return &Service{carts: carts, orders: orders, publisher: publisher, storePhone: storePhone}
}

// Submit validates the checkout form, snapshots the cart into an order and
// clears the cart. The payment method defaults to cash on delivery.
func (s *Service) Submit(cartID, customerPhone, deliveryAddress, paymentMethod string) (Result, error) {
	customerPhone = strings.TrimSpace(customerPhone)
	deliveryAddress = strings.TrimSpace(deliveryAddress)
	if customerPhone == "" || deliveryAddress == "" {
		return Result{}, ErrMissingFields
	}
	if paymentMethod == "" {
		paymentMethod = order.PaymentCOD
	}

	snapshot, err := s.carts.Get(cartID)
	if err != nil {
		return Result{}, err
	}
	if len(snapshot.Items) == 0 {
		return Result{}, ErrEmptyCart
	}

	items := make([]order.Item, 0, len(snapshot.Items))
	for _, line := range snapshot.Items {
		items = append(items, order.Item{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
			Image:     line.ImageURL,
		})
	}

	created, err := s.orders.Create(order.Order{
		Items:           items,
		TotalAmount:     snapshot.TotalPrice,
		Status:          order.StatusPending,
		CustomerPhone:   customerPhone,
		DeliveryAddress: deliveryAddress,
		PaymentMethod:   paymentMethod,
	})
	if err != nil {
		// cart stays intact; the customer resubmits manually
		return Result{}, err
	}

	if err := s.carts.Clear(cartID); err != nil {
		fmt.Printf("warning: could not clear cart %s after checkout: %v\n", cartID, err)
	}
	if err := s.publisher.Publish(notify.OrderCreatedQueue, created); err != nil {
		fmt.Printf("warning: could not publish order %s: %v\n", created.ID, err)
	}

	return Result{
		Order:       created,
		OrderRef:    created.ShortRef(),
		WhatsAppURL: handoff.Link(s.storePhone, created),
	}, nil
}
