package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/bgcollection/storefront/internal/constants"
	"github.com/bgcollection/storefront/internal/models"
	"github.com/bgcollection/storefront/internal/relay"

	"github.com/shopspring/decimal"
)

var istLocation = time.FixedZone("IST", 5*3600+30*60)

const rupee = "₹"

func shippingMethodLabel(method string) string {
	if method == constants.ShippingMethodExpress {
		return "Express Delivery (1-2 business days)"
	}
	return "Standard Delivery (3-5 business days)"
}

func paymentMethodLabel(method string) string {
	switch method {
	case constants.PaymentMethodCard:
		return "Credit Card"
	case constants.PaymentMethodPaypal:
		return "PayPal"
	case constants.PaymentMethodApple:
		return "Apple Pay"
	default:
		return method
	}
}

func formatRupees(amount models.Money) string {
	return rupee + amount.String()
}

func cartLineVariant(line models.CartLine) string {
	parts := make([]string, 0, 2)
	if line.SelectedColor != "" {
		parts = append(parts, line.SelectedColor)
	}
	if line.SelectedSize != "" {
		parts = append(parts, line.SelectedSize)
	}
	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

// buildOrderMessage 生成订单通知正文
func buildOrderMessage(order *models.OrderSnapshot, taxRate decimal.Decimal) string {
	var b strings.Builder
	b.WriteString("🛍️ NEW ORDER RECEIVED - " + constants.SiteName + "\n\n")

	b.WriteString("📋 ORDER DETAILS:\n")
	fmt.Fprintf(&b, "Order ID: %s\n", order.OrderID)
	fmt.Fprintf(&b, "Date: %s\n", order.CreatedAt.In(istLocation).Format("2 January 2006"))
	fmt.Fprintf(&b, "Customer: %s\n", order.CustomerName)
	fmt.Fprintf(&b, "Email: %s\n", order.CustomerContact.Email)
	fmt.Fprintf(&b, "Phone: %s\n\n", order.CustomerContact.Phone)

	b.WriteString("📦 SHIPPING ADDRESS:\n")
	b.WriteString(order.ShippingAddress + "\n\n")

	b.WriteString("🚚 SHIPPING METHOD:\n")
	b.WriteString(shippingMethodLabel(order.ShippingMethod) + "\n\n")

	b.WriteString("💳 PAYMENT METHOD:\n")
	b.WriteString(paymentMethodLabel(order.PaymentMethod) + "\n\n")

	b.WriteString("🛒 ORDER ITEMS:\n")
	for _, line := range order.Lines {
		fmt.Fprintf(&b, "- %s%s x%d = %s\n", line.Name, cartLineVariant(line), line.Quantity, formatRupees(line.LineTotal()))
	}
	b.WriteString("\n")

	b.WriteString("💰 ORDER SUMMARY:\n")
	fmt.Fprintf(&b, "Subtotal: %s\n", formatRupees(order.Subtotal))
	if order.Discount.IsPositive() {
		fmt.Fprintf(&b, "Discount (%s): -%s\n", order.PromoCode, formatRupees(order.Discount))
	}
	if order.ShippingFee.IsZero() {
		b.WriteString("Shipping: Free\n")
	} else {
		fmt.Fprintf(&b, "Shipping: %s\n", formatRupees(order.ShippingFee))
	}
	fmt.Fprintf(&b, "GST (%s%%): %s\n", taxRate.Mul(hundred).String(), formatRupees(order.TaxAmount))
	fmt.Fprintf(&b, "Total: %s\n\n", formatRupees(order.Total))

	b.WriteString("---\n")
	b.WriteString("This order was placed through " + constants.SiteName + " website.")
	return b.String()
}

// buildOrderSubmission 订单通知表单
func buildOrderSubmission(order *models.OrderSnapshot, fromName string, taxRate decimal.Decimal) relay.Submission {
	if strings.TrimSpace(fromName) == "" {
		fromName = constants.SiteName + " Website"
	}
	return relay.Submission{
		Subject:  fmt.Sprintf("New Order #%s - %s", order.OrderID, constants.SiteName),
		FromName: fromName,
		Email:    order.CustomerContact.Email,
		ReplyTo:  order.CustomerContact.Email,
		Message:  buildOrderMessage(order, taxRate),
	}
}

// buildContactSubmission 联系表单通知
func buildContactSubmission(input ContactInput, submittedAt time.Time) relay.Submission {
	phone := input.Phone
	if phone == "" {
		phone = "-"
	}
	var b strings.Builder
	b.WriteString("📧 NEW CONTACT FORM SUBMISSION - " + constants.SiteName + "\n\n")
	b.WriteString("👤 CONTACT DETAILS:\n")
	fmt.Fprintf(&b, "Name: %s\n", input.Name)
	fmt.Fprintf(&b, "Email: %s\n", input.Email)
	fmt.Fprintf(&b, "Phone: %s\n", phone)
	fmt.Fprintf(&b, "Subject: %s\n\n", input.Subject)
	b.WriteString("📝 MESSAGE:\n")
	b.WriteString(input.Message + "\n\n")
	b.WriteString("🕒 SUBMITTED ON:\n")
	b.WriteString(submittedAt.In(istLocation).Format("2 January 2006, 03:04 PM") + "\n\n")
	b.WriteString("---\n")
	b.WriteString("This message was submitted through the " + constants.SiteName + " contact form.")

	return relay.Submission{
		Subject:  fmt.Sprintf("Contact Form: %s - %s", input.Subject, constants.SiteName),
		FromName: input.Name,
		Email:    input.Email,
		ReplyTo:  input.Email,
		Message:  b.String(),
	}
}

// buildReviewSubmission 评论通知
func buildReviewSubmission(productID, productName string, rating int, name, title, content string) relay.Submission {
	var b strings.Builder
	b.WriteString("⭐ NEW PRODUCT REVIEW - " + constants.SiteName + "\n\n")
	fmt.Fprintf(&b, "Product: %s (#%s)\n", productName, productID)
	fmt.Fprintf(&b, "Rating: %d/5\n", rating)
	fmt.Fprintf(&b, "Reviewer: %s\n", name)
	fmt.Fprintf(&b, "Title: %s\n\n", title)
	b.WriteString(content)
	return relay.Submission{
		Subject:  fmt.Sprintf("New Review: %s - %s", productName, constants.SiteName),
		FromName: name,
		Message:  b.String(),
	}
}

// buildNewsletterSubmission 订阅通知
func buildNewsletterSubmission(email string, subscribedAt time.Time) relay.Submission {
	return relay.Submission{
		Subject:  "New Newsletter Subscriber - " + constants.SiteName,
		FromName: constants.SiteName + " Website",
		Email:    email,
		ReplyTo:  email,
		Message: fmt.Sprintf("📬 NEW NEWSLETTER SUBSCRIBER - %s\n\nEmail: %s\nSubscribed on: %s",
			constants.SiteName, email, subscribedAt.In(istLocation).Format("2 January 2006, 03:04 PM")),
	}
}
