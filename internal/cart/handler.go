package cart

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/ozerastore/ozera-backend/internal/product"
)

// Handler delegates cart operations to the cart service. Carts are public
// and addressed by an opaque client-generated cart ID.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/cart/:cartID", h.getCart)
	app.Post("/api/v1/cart/:cartID/items", h.addItem)
	app.Put("/api/v1/cart/:cartID/items/:productID<[0-9]+>", h.updateQuantity)
	app.Delete("/api/v1/cart/:cartID/items/:productID<[0-9]+>", h.removeItem)
	app.Delete("/api/v1/cart/:cartID", h.clearCart)
}

type addItemRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity,omitempty"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	cart, err := h.service.Get(c.Params("cartID"))
	if err != nil {
		return cartError(c, err)
	}
	return c.JSON(cart)
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	payload := new(addItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId"})
	}
	qty := payload.Quantity
	if qty == 0 {
		qty = 1
	}

	cart, err := h.service.AddItem(c.Params("cartID"), payload.ProductID, qty)
	if err != nil {
		return cartError(c, err)
	}
	return c.JSON(cart)
}

func (h *Handler) updateQuantity(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("productID"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId"})
	}
	payload := new(updateQuantityRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	cart, err := h.service.UpdateQuantity(c.Params("cartID"), productID, payload.Quantity)
	if err != nil {
		return cartError(c, err)
	}
	return c.JSON(cart)
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("productID"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId"})
	}

	cart, err := h.service.RemoveItem(c.Params("cartID"), productID)
	if err != nil {
		return cartError(c, err)
	}
	return c.JSON(cart)
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	if err := h.service.Clear(c.Params("cartID")); err != nil {
		return cartError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func cartError(c *fiber.Ctx, err error) error {
	switch err {
	case ErrInvalidCartID:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid cart id"})
	case product.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
