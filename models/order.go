package models

import (
	"time"

	"gorm.io/gorm"
)

// Order status constants
const (
	OrderStatusPlaced    = "Placed"
	OrderStatusCompleted = "Completed"
	OrderStatusCancelled = "Cancelled"
)

// Order is a café purchase. Payment is simulated; completing an order is
// what triggers point accrual and order-mission progress.
type Order struct {
	gorm.Model
	UserID        uint        `json:"user_id"`
	User          User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	OrderItems    []OrderItem `json:"order_items" gorm:"foreignKey:OrderID"`
	Subtotal      float64     `json:"subtotal"`
	Discount      float64     `json:"discount"`
	FinalTotal    float64     `json:"final_total"`
	VoucherCode   string      `json:"voucher_code"`
	Status        string      `json:"status" gorm:"default:'Placed'"`
	PaymentMethod string      `json:"payment_method"`
	PointsAwarded int         `json:"points_awarded"`
	CompletedAt   *time.Time  `json:"completed_at"`
}

// OrderItem is one line of an order
type OrderItem struct {
	gorm.Model
	OrderID    uint     `json:"order_id"`
	MenuItemID uint     `json:"menu_item_id"`
	MenuItem   MenuItem `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int      `json:"quantity"`
	Price      float64  `json:"price"`
	Total      float64  `json:"total"`
}
