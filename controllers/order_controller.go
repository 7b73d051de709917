package controllers

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/Govind-619/BrewPoints/config"
	"github.com/Govind-619/BrewPoints/loyalty"
	"github.com/Govind-619/BrewPoints/models"
	"github.com/Govind-619/BrewPoints/utils"
	"github.com/gin-gonic/gin"
)

// PlaceOrderRequest represents the checkout request body
type PlaceOrderRequest struct {
	Items []struct {
		MenuItemID uint `json:"menu_item_id" binding:"required"`
		Quantity   int  `json:"quantity" binding:"required"`
	} `json:"items" binding:"required"`
	VoucherCode   string `json:"voucher_code"`
	PaymentMethod string `json:"payment_method"`
}

// PlaceOrder creates and completes a café order. Payment is simulated, so
// the order completes immediately: the voucher (if any) is consumed, the
// points accrue under the user's tier, and order-type missions advance,
// all in one transaction.
func PlaceOrder(c *gin.Context) {
	utils.LogInfo("PlaceOrder called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	if len(req.Items) == 0 {
		utils.BadRequest(c, "Order must contain at least one item", nil)
		return
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = "card"
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.InternalServerError(c, "Failed to start transaction", nil)
		return
	}

	var orderItems []models.OrderItem
	var subtotal float64
	for _, item := range req.Items {
		if item.Quantity < 1 {
			tx.Rollback()
			utils.BadRequest(c, "Item quantity must be at least 1", nil)
			return
		}
		var menuItem models.MenuItem
		if err := tx.Where("id = ? AND is_active = ?", item.MenuItemID, true).First(&menuItem).Error; err != nil {
			tx.Rollback()
			utils.NotFound(c, fmt.Sprintf("Menu item %d not found", item.MenuItemID))
			return
		}
		lineTotal := menuItem.Price * float64(item.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			MenuItemID: menuItem.ID,
			Quantity:   item.Quantity,
			Price:      menuItem.Price,
			Total:      lineTotal,
		})
		subtotal += lineTotal
	}
	subtotal = math.Round(subtotal*100) / 100

	var discount float64
	if req.VoucherCode != "" {
		var err error
		discount, _, err = loyalty.ConsumeAtCheckout(tx, user.ID, req.VoucherCode, subtotal)
		if err != nil {
			tx.Rollback()
			if errors.Is(err, loyalty.ErrInvalidVoucher) {
				utils.BadRequest(c, "Invalid, used or expired voucher", nil)
				return
			}
			utils.LogError("Failed to apply voucher %s for user %d: %v", req.VoucherCode, user.ID, err)
			utils.InternalServerError(c, "Failed to apply voucher", nil)
			return
		}
	}

	finalTotal := math.Round((subtotal-discount)*100) / 100
	now := time.Now()

	order := models.Order{
		UserID:        user.ID,
		OrderItems:    orderItems,
		Subtotal:      subtotal,
		Discount:      discount,
		FinalTotal:    finalTotal,
		VoucherCode:   req.VoucherCode,
		Status:        models.OrderStatusCompleted,
		PaymentMethod: req.PaymentMethod,
		CompletedAt:   &now,
	}
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to create order for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to create order", nil)
		return
	}

	// Points accrue on the amount actually paid, under the current tier.
	awarded, newBalance, err := loyalty.AccrueForSpend(tx, user.ID, finalTotal, loyalty.Tier(user.Tier),
		fmt.Sprintf("Points for order #%d", order.ID))
	if err != nil {
		tx.Rollback()
		utils.LogError("Failed to accrue points for order %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to credit points", nil)
		return
	}
	if err := tx.Model(&order).Update("points_awarded", awarded).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to record awarded points on order %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to create order", nil)
		return
	}

	// A completed order counts toward every running order mission.
	var orderMissions []models.Mission
	if err := tx.Where("type = ? AND active = ? AND start_date <= ? AND end_date >= ?",
		models.MissionTypeOrder, true, now, now).Find(&orderMissions).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to load order missions: %v", err)
		utils.InternalServerError(c, "Failed to create order", nil)
		return
	}
	for _, mission := range orderMissions {
		if _, err := loyalty.IncrementProgress(tx, user.ID, mission.ID, 1); err != nil {
			tx.Rollback()
			utils.LogError("Failed to advance mission %d for user %d: %v", mission.ID, user.ID, err)
			utils.InternalServerError(c, "Failed to create order", nil)
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit order for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to create order", nil)
		return
	}

	utils.LogInfo("Order %d completed for user %d: paid %.2f, awarded %d points", order.ID, user.ID, finalTotal, awarded)
	utils.Created(c, "Order placed successfully", gin.H{
		"order_id":       order.ID,
		"subtotal":       fmt.Sprintf("%.2f", subtotal),
		"discount":       fmt.Sprintf("%.2f", discount),
		"final_total":    fmt.Sprintf("%.2f", finalTotal),
		"points_awarded": awarded,
		"new_balance":    newBalance,
	})
}

// ListOrders returns the user's orders, most recent first
func ListOrders(c *gin.Context) {
	utils.LogInfo("ListOrders called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	page, limit := utils.GetPaginationParams(c)
	offset := (page - 1) * limit

	var total int64
	if err := config.DB.Model(&models.Order{}).Where("user_id = ?", user.ID).Count(&total).Error; err != nil {
		utils.LogError("Failed to count orders for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to list orders", nil)
		return
	}

	var orders []models.Order
	if err := config.DB.Preload("OrderItems.MenuItem").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&orders).Error; err != nil {
		utils.LogError("Failed to list orders for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to list orders", nil)
		return
	}

	utils.SuccessWithPagination(c, "Orders retrieved successfully", orders, total, page, limit)
}

// GetOrder returns one of the user's orders by id
func GetOrder(c *gin.Context) {
	utils.LogInfo("GetOrder called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid order ID", nil)
		return
	}

	var order models.Order
	if err := config.DB.Preload("OrderItems.MenuItem").
		Where("id = ? AND user_id = ?", orderID, user.ID).
		First(&order).Error; err != nil {
		utils.NotFound(c, "Order not found")
		return
	}

	utils.Success(c, "Order retrieved successfully", order)
}
