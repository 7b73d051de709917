package controllers

import (
	"strconv"

	"github.com/Govind-619/BrewPoints/config"
	"github.com/Govind-619/BrewPoints/models"
	"github.com/Govind-619/BrewPoints/utils"
	"github.com/gin-gonic/gin"
)

// ListMenu returns active menu items, optionally filtered by category or
// search query
func ListMenu(c *gin.Context) {
	utils.LogInfo("ListMenu called")

	page, limit := utils.GetPaginationParams(c)
	offset := (page - 1) * limit

	query := config.DB.Model(&models.MenuItem{}).Where("is_active = ?", true)
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("name ILIKE ? OR description ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count menu items: %v", err)
		utils.InternalServerError(c, "Failed to list menu", nil)
		return
	}

	var items []models.MenuItem
	if err := query.Preload("Category").
		Order("is_featured DESC, name ASC").
		Limit(limit).Offset(offset).
		Find(&items).Error; err != nil {
		utils.LogError("Failed to list menu items: %v", err)
		utils.InternalServerError(c, "Failed to list menu", nil)
		return
	}

	utils.SuccessWithPagination(c, "Menu retrieved successfully", items, total, page, limit)
}

// GetMenuItem returns one active menu item by id
func GetMenuItem(c *gin.Context) {
	utils.LogInfo("GetMenuItem called")

	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid menu item ID", nil)
		return
	}

	var item models.MenuItem
	if err := config.DB.Preload("Category").
		Where("id = ? AND is_active = ?", itemID, true).
		First(&item).Error; err != nil {
		utils.NotFound(c, "Menu item not found")
		return
	}

	utils.Success(c, "Menu item retrieved successfully", item)
}

// ListCategories returns unblocked menu categories
func ListCategories(c *gin.Context) {
	utils.LogInfo("ListCategories called")

	var categories []models.Category
	if err := config.DB.Where("blocked = ?", false).Order("name ASC").Find(&categories).Error; err != nil {
		utils.LogError("Failed to list categories: %v", err)
		utils.InternalServerError(c, "Failed to list categories", nil)
		return
	}

	utils.Success(c, "Categories retrieved successfully", gin.H{"categories": categories})
}
