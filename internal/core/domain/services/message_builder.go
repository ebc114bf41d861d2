package services

import (
	"fmt"
	"sort"
	"strings"

	"foodibot/internal/core/domain/model/order"
)

// MessageBuilder renders the customer-facing notification texts. Every
// method is a pure formatter; channel targeting and delivery live in
// NotificationDispatcher.
//
// Chat texts use asterisk emphasis, email gets a plain-text body plus a
// styled HTML alternative, SMS stays short and unformatted.
type MessageBuilder struct{}

// NewMessageBuilder creates a new MessageBuilder instance.
func NewMessageBuilder() MessageBuilder {
	return MessageBuilder{}
}

// OrderConfirmationSMS renders the short confirmation text sent over SMS.
func (MessageBuilder) OrderConfirmationSMS(committed order.CommittedOrder) string {
	return fmt.Sprintf(`FoodiBot Order Confirmation

Order #%d
Status: %s
Total: Rs. %.2f
ETA: %s

Thank you for choosing FoodiBot!`,
		committed.ID(), committed.Status(), committed.Total(), committed.ETA())
}

// OrderConfirmationChat renders the confirmation text sent over chat,
// including an itemized list.
func (MessageBuilder) OrderConfirmationChat(committed order.CommittedOrder) string {
	return fmt.Sprintf(`🍕 *FoodiBot Order Confirmation*

*Order #%d*
Status: %s
Total: Rs. %.2f
ETA: %s

*Your Order:*
%s
Thank you for choosing FoodiBot! 🍕`,
		committed.ID(), committed.Status(), committed.Total(), committed.ETA(),
		itemLines(committed))
}

// OrderConfirmationEmailSubject renders the confirmation email subject.
func (MessageBuilder) OrderConfirmationEmailSubject(committed order.CommittedOrder) string {
	return fmt.Sprintf("Order Confirmation - #%d", committed.ID())
}

// OrderConfirmationEmailText renders the plain-text confirmation email body.
func (MessageBuilder) OrderConfirmationEmailText(committed order.CommittedOrder) string {
	return fmt.Sprintf(`FoodiBot Order Confirmation

Order #%d
Status: %s
Total: Rs.%.2f
ETA: %s

Your Order:
%s
Thank you for choosing FoodiBot! 🍕`,
		committed.ID(), committed.Status(), committed.Total(), committed.ETA(),
		itemLines(committed))
}

// OrderConfirmationEmailHTML renders the HTML confirmation email body with
// an itemized price table.
func (MessageBuilder) OrderConfirmationEmailHTML(committed order.CommittedOrder) string {
	var rows strings.Builder
	for _, name := range committed.ItemNames() {
		rows.WriteString(fmt.Sprintf(
			"<tr><td>%dx %s</td><td>Rs. %.2f</td></tr>",
			committed.Items()[name], order.DisplayName(name), committed.UnitPrices()[name]))
	}

	return fmt.Sprintf(`<html>
<head>
<style>
body { font-family: Arial, sans-serif; }
.header { background: linear-gradient(135deg, #ff6b6b, #ee5a24); color: white; padding: 20px; text-align: center; }
.content { padding: 20px; }
.order-table { width: 100%%; border-collapse: collapse; margin: 20px 0; }
.order-table th, .order-table td { border: 1px solid #ddd; padding: 12px; text-align: left; }
.order-table th { background-color: #f8f9fa; }
</style>
</head>
<body>
<div class="header"><h1>🍕 FoodiBot Order Confirmation</h1></div>
<div class="content">
<h2>Order #%d</h2>
<p><strong>Status:</strong> %s</p>
<p><strong>Total:</strong> Rs.%.2f</p>
<p><strong>ETA:</strong> %s</p>
<h3>Your Order:</h3>
<table class="order-table">
<tr><th>Item</th><th>Price</th></tr>
%s
</table>
<p>Thank you for choosing FoodiBot! 🍕</p>
</div>
</body>
</html>`,
		committed.ID(), committed.Status(), committed.Total(), committed.ETA(), rows.String())
}

// StatusUpdateSMS renders the short status update text sent over SMS.
func (MessageBuilder) StatusUpdateSMS(orderID int64, status order.Status, eta string) string {
	return fmt.Sprintf(`%s Order Update

Order #%d
Status: %s
ETA: %s`,
		status.DisplayLabel(), orderID, status.Display(), etaOrDefault(eta))
}

// StatusUpdateChat renders the status update text sent over chat.
func (MessageBuilder) StatusUpdateChat(orderID int64, status order.Status, eta string) string {
	return fmt.Sprintf(`%s *Order Update*

*Order #%d*
Status: %s
ETA: %s`,
		status.DisplayLabel(), orderID, status.Display(), etaOrDefault(eta))
}

// StatusUpdateEmailSubject renders the status update email subject.
func (MessageBuilder) StatusUpdateEmailSubject(orderID int64, status order.Status) string {
	return fmt.Sprintf("Order Update - #%d - %s", orderID, status.Display())
}

// StatusUpdateEmailText renders the plain-text status update email body.
func (MessageBuilder) StatusUpdateEmailText(orderID int64, status order.Status, eta string) string {
	return fmt.Sprintf(`Order Status Update

Order #%d
Status: %s
ETA: %s`,
		orderID, status.Display(), etaOrDefault(eta))
}

// StatusUpdateEmailHTML renders the HTML status update email body.
func (MessageBuilder) StatusUpdateEmailHTML(orderID int64, status order.Status, eta string) string {
	return fmt.Sprintf(`<html>
<head>
<style>
body { font-family: Arial, sans-serif; }
.header { background: linear-gradient(135deg, #ff6b6b, #ee5a24); color: white; padding: 20px; text-align: center; }
.content { padding: 20px; }
.status-badge { background: #28a745; color: white; padding: 8px 16px; border-radius: 20px; display: inline-block; }
</style>
</head>
<body>
<div class="header"><h1>%s Order Status Update</h1></div>
<div class="content">
<h2>Order #%d</h2>
<p><span class="status-badge">%s</span></p>
<p><strong>ETA:</strong> %s</p>
</div>
</body>
</html>`,
		status.DisplayLabel(), orderID, status.Display(), etaOrDefault(eta))
}

// DeliverySMS renders the short delivery notice sent over SMS.
func (MessageBuilder) DeliverySMS(orderID int64) string {
	return fmt.Sprintf(`📦 Your Order is Delivered!

Order #%d
Status: Delivered ✅

Your food has arrived! Enjoy your meal! 🍕`, orderID)
}

// DeliveryChat renders the delivery notice sent over chat.
func (MessageBuilder) DeliveryChat(orderID int64) string {
	return fmt.Sprintf(`📦 *Your Order is Delivered!*

*Order #%d*
Status: Delivered ✅

Your food has arrived! Enjoy your meal! 🍕`, orderID)
}

// DeliveryEmailSubject renders the delivery notice email subject.
func (MessageBuilder) DeliveryEmailSubject(orderID int64) string {
	return fmt.Sprintf("Your Order is Delivered! - #%d", orderID)
}

// DeliveryEmailText renders the plain-text delivery notice email body.
func (MessageBuilder) DeliveryEmailText(orderID int64) string {
	return fmt.Sprintf(`Your Order is Delivered!

Order #%d
Status: Delivered ✅

Your food has arrived! Enjoy your meal! 🍕`, orderID)
}

// DeliveryEmailHTML renders the HTML delivery notice email body.
func (MessageBuilder) DeliveryEmailHTML(orderID int64) string {
	return fmt.Sprintf(`<html>
<head>
<style>
body { font-family: Arial, sans-serif; }
.header { background: linear-gradient(135deg, #28a745, #20c997); color: white; padding: 20px; text-align: center; }
.content { padding: 20px; }
.delivery-badge { background: #28a745; color: white; padding: 8px 16px; border-radius: 20px; display: inline-block; }
</style>
</head>
<body>
<div class="header"><h1>📦 Your Order is Delivered!</h1></div>
<div class="content">
<h2>Order #%d</h2>
<p><span class="delivery-badge">Delivered ✅</span></p>
<p>Your food has arrived! Enjoy your meal! 🍕</p>
</div>
</body>
</html>`, orderID)
}

// itemLines renders one bulleted "• 2x Burger" line per item, sorted by
// item name for stable output.
func itemLines(committed order.CommittedOrder) string {
	names := committed.ItemNames()
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString(fmt.Sprintf("• %dx %s\n", committed.Items()[name], order.DisplayName(name)))
	}
	return b.String()
}

func etaOrDefault(eta string) string {
	if eta == "" {
		return "Calculating..."
	}
	return eta
}
