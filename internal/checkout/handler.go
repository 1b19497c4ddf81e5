package checkout

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ozerastore/ozera-backend/internal/order"
)

// Handler exposes the public checkout endpoint. Error bodies carry the
// generic localized message the storefront shows; details stay in the logs.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/checkout", h.submit)
}

type checkoutRequest struct {
	CartID          string `json:"cartId"`
	CustomerPhone   string `json:"customerPhone"`
	DeliveryAddress string `json:"deliveryAddress"`
	PaymentMethod   string `json:"paymentMethod,omitempty"`
}

func (h *Handler) submit(c *fiber.Ctx) error {
	payload := new(checkoutRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	result, err := h.service.Submit(payload.CartID, payload.CustomerPhone, payload.DeliveryAddress, payload.PaymentMethod)
	if err != nil {
		switch err {
		case ErrMissingFields:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "رقم الهاتف والعنوان مطلوبان"})
		case ErrEmptyCart:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "السلة فارغة"})
		case order.ErrUnknownPayment:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "طريقة دفع غير معروفة"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "حدث خطأ في حفظ الطلب. يرجى المحاولة مجددًا."})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}
