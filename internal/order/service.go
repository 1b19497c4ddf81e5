package order

import (
	"errors"
	"time"
)

var (
	ErrEmptyOrder      = errors.New("order has no items")
	ErrUnknownStatus   = errors.New("unknown order status")
	ErrUnknownPayment  = errors.New("unknown payment method")
	ErrMissingCustomer = errors.New("customer phone and delivery address are required")
)

// ServiceInterface allows checkout and tests to depend on orders abstractly.
type ServiceInterface interface {
	Create(ord Order) (Order, error)
	List(status string) ([]Order, error)
	GetByID(id string) (Order, error)
	UpdateStatus(id, status string) (Order, error)
	UpdateDetails(id string, details DetailsUpdate) (Order, error)
	Delete(id string) error
}

// DetailsUpdate carries the admin-editable customer fields. Nil means "leave
// unchanged" so partial edits do not clobber the rest of the record.
type DetailsUpdate struct {
	CustomerPhone   *string `json:"customerPhone"`
	DeliveryAddress *string `json:"deliveryAddress"`
	PaymentMethod   *string `json:"paymentMethod"`
}

// Service provides business logic for orders.
type Service struct {
	repo Repository
}

var _ ServiceInterface = (*Service)(nil)

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

func (s *Service) Create(ord Order) (Order, error) {
	if len(ord.Items) == 0 {
		return Order{}, ErrEmptyOrder
	}
	if ord.CustomerPhone == "" || ord.DeliveryAddress == "" {
		return Order{}, ErrMissingCustomer
	}
	if ord.PaymentMethod == "" {
		ord.PaymentMethod = PaymentCOD
	}
	if !ValidPaymentMethod(ord.PaymentMethod) {
		return Order{}, ErrUnknownPayment
	}
	if ord.Status == "" {
		ord.Status = StatusPending
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if ord.CreatedAt == "" {
		ord.CreatedAt = now
	}
	ord.UpdatedAt = now
	return s.repo.Create(ord)
}

func (s *Service) List(status string) ([]Order, error) {
	if status != "" && !ValidStatus(status) {
		return nil, ErrUnknownStatus
	}
	return s.repo.List(status)
}

func (s *Service) GetByID(id string) (Order, error) {
	return s.repo.GetByID(id)
}

// UpdateStatus sets any of the five statuses from any other; there is no
// forward-only state machine here.
func (s *Service) UpdateStatus(id, status string) (Order, error) {
	if !ValidStatus(status) {
		return Order{}, ErrUnknownStatus
	}
	ord, err := s.repo.GetByID(id)
	if err != nil {
		return Order{}, err
	}
	ord.Status = status
	ord.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.repo.Update(ord)
}

func (s *Service) UpdateDetails(id string, details DetailsUpdate) (Order, error) {
	ord, err := s.repo.GetByID(id)
	if err != nil {
		return Order{}, err
	}
	if details.CustomerPhone != nil {
		ord.CustomerPhone = *details.CustomerPhone
	}
	if details.DeliveryAddress != nil {
		ord.DeliveryAddress = *details.DeliveryAddress
	}
	if details.PaymentMethod != nil {
		if !ValidPaymentMethod(*details.PaymentMethod) {
			return Order{}, ErrUnknownPayment
		}
		ord.PaymentMethod = *details.PaymentMethod
	}
	ord.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.repo.Update(ord)
}

func (s *Service) Delete(id string) error {
	return s.repo.Delete(id)
}
