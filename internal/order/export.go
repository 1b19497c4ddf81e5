package order

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tealeg/xlsx"
)

// exportOrders streams the current order listing as an .xlsx workbook, one
// row per order with a flattened item summary.
func (h *Handler) exportOrders(c *fiber.Ctx) error {
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

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	headers := []string{"Ref", "Status", "Total", "Phone", "Address", "Payment", "Items", "CreatedAt"}
	headerRow := sheet.AddRow()
	for _, hd := range headers {
		headerRow.AddCell().SetValue(hd)
	}

	for _, ord := range orders {
		row := sheet.AddRow()
		row.AddCell().SetValue(ord.ShortRef())
		row.AddCell().SetValue(ord.Status)
		row.AddCell().SetValue(ord.TotalAmount)
		row.AddCell().SetValue(ord.CustomerPhone)
		row.AddCell().SetValue(ord.DeliveryAddress)
		row.AddCell().SetValue(ord.PaymentMethod)

		items := make([]string, 0, len(ord.Items))
		for _, item := range ord.Items {
			items = append(items, fmt.Sprintf("%s x%d", item.Name, item.Quantity))
		}
		row.AddCell().SetValue(strings.Join(items, ", "))
		row.AddCell().SetValue(ord.CreatedAt)
	}

	c.Set("Content-Disposition", "attachment; filename=orders.xlsx")
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return file.Write(c.Response().BodyWriter())
}
