// Package handoff builds the WhatsApp order-confirmation deep link. The
// redirect is one-way and fire-and-forget: there is no delivery confirmation.
package handoff

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ozerastore/ozera-backend/internal/order"
)

// PaymentLabels maps payment method codes to the Arabic labels shown in the
// order summary.
var PaymentLabels = map[string]string{
	order.PaymentCOD:      "الدفع عند الاستلام",
	order.PaymentInstapay: "الدفع إنستا باي",
	order.PaymentWallet:   "المحافظ الإلكترونية",
}

// OrderMessage formats the human-readable summary sent to the store's
// WhatsApp number after checkout.
func OrderMessage(ord order.Order) string {
	var items strings.Builder
	for i, item := range ord.Items {
		if i > 0 {
			items.WriteString("\n\n")
		}
		fmt.Fprintf(&items, "• *%s*\n  الكمية: %d\n  السعر: %g ج.م", item.Name, item.Quantity, item.Price*float64(item.Quantity))
	}

	label, ok := PaymentLabels[ord.PaymentMethod]
	if !ok {
		label = PaymentLabels[order.PaymentCOD]
	}

	return strings.TrimSpace(fmt.Sprintf(`🛍️ *طلب جديد من OZERA*

📄 *تفاصيل الطلب*
رقم الطلب: *%s*

👤 *بيانات العميل*
• رقم الهاتف: %s
• العنوان: %s

📦 *المنتجات المطلوبة*
%s

💰 *الإجمالي:* *%g ج.م*

💳 *طريقة الدفع:* %s

━━━━━━━━━━━━━
تم استلام الطلب عبر *متجر OZERA*
نشكر ثقتك بنا ✨`,
		ord.ShortRef(), ord.CustomerPhone, ord.DeliveryAddress, items.String(), ord.TotalAmount, label))
}

// Link builds the wa.me deep link carrying the order summary. The store
// phone is normalized to digits only before use.
func Link(storePhone string, ord order.Order) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", digitsOnly(storePhone), url.QueryEscape(OrderMessage(ord)))
}

func digitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
