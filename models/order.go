package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // placed, awaiting processing
	OrderStatusProcessing OrderStatus = "processing" // being prepared
	OrderStatusShipped    OrderStatus = "shipped"    // out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // customer received it
	OrderStatusCancelled  OrderStatus = "cancelled"  // cancelled before delivery
)

// ParseOrderStatus maps a raw string onto the status enum. Matching is
// case-sensitive: "Pending" is not a valid status.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return OrderStatus(s), true
	default:
		return "", false
	}
}

type Order struct {
	ID        string      `gorm:"primaryKey" json:"id"`
	UserID    string      `gorm:"not null;index" json:"user_id"`
	User      User        `gorm:"foreignKey:UserID" json:"user"`
	Products  []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"products"`
	Status    OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

// BeforeCreate assigns a fresh id when the checkout service inserts an order
// without one.
func (o *Order) BeforeCreate(_ *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// OrderItem is one line of an order: a product reference plus the quantity and
// the unit price captured at checkout time.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	OrderID   string  `gorm:"index" json:"-"`
	ProductID string  `gorm:"not null" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"`
}
