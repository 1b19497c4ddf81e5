package order

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/ozerastore/ozera-backend/internal/notify"
)

// Handler exposes the admin order-tracking surface. All routes are
// registered behind the JWT gate.
type Handler struct {
	service   ServiceInterface
	publisher notify.Publisher
}

func NewHandler(s ServiceInterface, publisher notify.Publisher) *Handler {
	return &Handler{service: s, publisher: publisher}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/admin/orders", h.listOrders)
	app.Get("/api/v1/admin/orders/export", h.exportOrders)
	app.Get("/api/v1/admin/orders/:id", h.getOrder)
	app.Patch("/api/v1/admin/orders/:id/status", h.updateStatus)
	app.Patch("/api/v1/admin/orders/:id", h.updateDetails)
	app.Delete("/api/v1/admin/orders/:id", h.deleteOrder)
}

func (h *Handler) listOrders(c *fiber.Ctx) error {
	status := c.Query("status")
	if status == "all" {
		status = ""
	}
	orders, err := h.service.List(status)
	if err != nil {
		if err == ErrUnknownStatus {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "unknown status"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(orders)
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	ord, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(ord)
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

func (h *Handler) updateStatus(c *fiber.Ctx) error {
	payload := new(statusUpdateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	ord, err := h.service.UpdateStatus(c.Params("id"), payload.Status)
	if err != nil {
		return orderError(c, err)
	}

	if err := h.publisher.Publish(notify.OrderStatusChangedQueue, ord); err != nil {
		fmt.Printf("warning: could not publish status change for order %s: %v\n", ord.ID, err)
	}
	return c.JSON(ord)
}

func (h *Handler) updateDetails(c *fiber.Ctx) error {
	payload := new(DetailsUpdate)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	ord, err := h.service.UpdateDetails(c.Params("id"), *payload)
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(ord)
}

// deleteOrder is a hard delete; the confirmation prompt lives in the admin
// UI, the API removes the row unconditionally.
func (h *Handler) deleteOrder(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return orderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func orderError(c *fiber.Ctx, err error) error {
	switch err {
	case ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
	case ErrUnknownStatus, ErrUnknownPayment:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
