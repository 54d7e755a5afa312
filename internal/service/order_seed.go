package service

import (
	"time"

	"github.com/bgcollection/storefront/internal/constants"
	"github.com/bgcollection/storefront/internal/models"
)

type demoOrderSeed struct {
	id        string
	date      string
	status    string
	productID string
	name      string
	image     string
	price     int64
	address   string
	tracking  string
}

var demoOrderSeeds = []demoOrderSeed{
	{"ORD001", "2024-03-15", constants.OrderStatusDelivered, "1", "Leather Journal", "/images/leather-journal.jpg", 1499, "123 Main St, Mumbai, Maharashtra 400001", "TRK123456789"},
	{"ORD002", "2024-03-10", constants.OrderStatusShipped, "2", "Brass Bowl", "/images/brass-bowl.jpg", 2499, "456 Park Ave, Delhi, Delhi 110001", "TRK987654321"},
	{"ORD003", "2024-03-05", constants.OrderStatusProcessing, "3", "Minimal Clock", "/images/minimal-clock.jpg", 3499, "789 Lake View, Bangalore, Karnataka 560001", ""},
}

// demoOrders 首次访问订单页时写入的演示订单
func demoOrders(currency string) []models.OrderSnapshot {
	orders := make([]models.OrderSnapshot, 0, len(demoOrderSeeds))
	for _, seed := range demoOrderSeeds {
		createdAt, _ := time.ParseInLocation("2006-01-02", seed.date, istLocation)
		price := models.NewMoneyFromInt(seed.price)
		order := models.OrderSnapshot{
			OrderID:   seed.id,
			CreatedAt: createdAt,
			Status:    seed.status,
			Lines: []models.CartLine{{
				ProductID: seed.productID,
				Name:      seed.name,
				UnitPrice: price,
				Quantity:  1,
				ImageRef:  seed.image,
			}},
			Subtotal:        price,
			Total:           price,
			Currency:        currency,
			ShippingAddress: seed.address,
			ShippingMethod:  constants.ShippingMethodStandard,
			PaymentMethod:   constants.PaymentMethodCard,
		}
		if seed.tracking != "" {
			tracking := seed.tracking
			order.TrackingNumber = &tracking
		}
		orders = append(orders, order)
	}
	return orders
}
