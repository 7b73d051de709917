package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Govind-619/BrewPoints/config"
	"github.com/Govind-619/BrewPoints/models"
	"github.com/Govind-619/BrewPoints/utils"
	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
)

// DownloadReceipt generates and returns a PDF receipt for the order
func DownloadReceipt(c *gin.Context) {
	utils.LogInfo("DownloadReceipt called")

	userVal, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	user := userVal.(models.User)

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	var order models.Order
	if err := config.DB.Preload("OrderItems.MenuItem").Preload("User").
		Where("id = ? AND user_id = ?", orderID, user.ID).First(&order).Error; err != nil {
		utils.LogError("Order not found for receipt - Order ID: %d, User ID: %d", orderID, user.ID)
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Café info
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, "BrewPoints Cafe")
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(8)
	pdf.Cell(100, 8, "12 Roastery Lane, City, Country")
	pdf.Ln(8)
	pdf.Cell(100, 8, "Email: hello@brewpoints.cafe | Phone: +91-98765-43210")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(100, 10, fmt.Sprintf("Receipt - Order #%d", order.ID))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(100, 8, fmt.Sprintf("Customer: %s %s (%s)", user.FirstName, user.LastName, user.Email))
	pdf.Ln(6)
	pdf.Cell(100, 8, fmt.Sprintf("Date: %s", order.CreatedAt.Format("02 Jan 2006 15:04")))
	pdf.Ln(10)

	// Items table
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(80, 8, "Item", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 8, "Qty", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 8, "Price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, "Total", "1", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	for _, item := range order.OrderItems {
		pdf.CellFormat(80, 8, item.MenuItem.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, strconv.Itoa(item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", item.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", item.Total), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(140, 8, "Subtotal", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", order.Subtotal), "", 1, "R", false, 0, "")
	if order.Discount > 0 {
		pdf.CellFormat(140, 8, fmt.Sprintf("Voucher (%s)", order.VoucherCode), "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("-%.2f", order.Discount), "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(140, 8, "Total Paid", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", order.FinalTotal), "", 1, "R", false, 0, "")

	pdf.Ln(6)
	pdf.SetFont("Arial", "I", 11)
	pdf.Cell(100, 8, fmt.Sprintf("BrewPoints earned on this order: %d", order.PointsAwarded))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Failed to generate receipt PDF for order %d: %v", order.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate receipt"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%d.pdf", order.ID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
