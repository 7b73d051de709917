package controllers

import (
	"errors"
	"strconv"

	"github.com/Govind-619/BrewPoints/config"
	"github.com/Govind-619/BrewPoints/models"
	"github.com/Govind-619/BrewPoints/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MenuItemRequest represents the create/update menu item request body
type MenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	CategoryID  uint    `json:"category_id" binding:"required"`
	ImageURL    string  `json:"image_url"`
	IsActive    *bool   `json:"is_active"`
	IsFeatured  *bool   `json:"is_featured"`
}

// CreateMenuItem adds a new item to the menu
func CreateMenuItem(c *gin.Context) {
	utils.LogInfo("CreateMenuItem called")

	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	if req.Price <= 0 {
		utils.BadRequest(c, "Price must be positive", nil)
		return
	}

	var category models.Category
	if err := config.DB.First(&category, req.CategoryID).Error; err != nil {
		utils.NotFound(c, "Category not found")
		return
	}

	item := models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
		IsActive:    true,
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		item.IsFeatured = *req.IsFeatured
	}

	if err := config.DB.Create(&item).Error; err != nil {
		utils.LogError("Failed to create menu item: %v", err)
		utils.InternalServerError(c, "Failed to create menu item", nil)
		return
	}

	utils.Created(c, "Menu item created successfully", item)
}

// UpdateMenuItem edits an existing menu item
func UpdateMenuItem(c *gin.Context) {
	utils.LogInfo("UpdateMenuItem called")

	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid menu item ID", nil)
		return
	}

	var item models.MenuItem
	if err := config.DB.First(&item, itemID).Error; err != nil {
		utils.NotFound(c, "Menu item not found")
		return
	}

	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price
	item.CategoryID = req.CategoryID
	item.ImageURL = req.ImageURL
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		item.IsFeatured = *req.IsFeatured
	}

	if err := config.DB.Save(&item).Error; err != nil {
		utils.LogError("Failed to update menu item %d: %v", itemID, err)
		utils.InternalServerError(c, "Failed to update menu item", nil)
		return
	}

	utils.Success(c, "Menu item updated successfully", item)
}

// DeleteMenuItem soft-deletes a menu item
func DeleteMenuItem(c *gin.Context) {
	utils.LogInfo("DeleteMenuItem called")

	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid menu item ID", nil)
		return
	}

	if err := config.DB.Delete(&models.MenuItem{}, itemID).Error; err != nil {
		utils.LogError("Failed to delete menu item %d: %v", itemID, err)
		utils.InternalServerError(c, "Failed to delete menu item", nil)
		return
	}

	utils.Success(c, "Menu item deleted successfully", nil)
}

// CreateCategory adds a menu category
func CreateCategory(c *gin.Context) {
	utils.LogInfo("CreateCategory called")

	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	category := models.Category{Name: req.Name, Description: req.Description}
	if err := config.DB.Create(&category).Error; err != nil {
		utils.LogError("Failed to create category: %v", err)
		utils.InternalServerError(c, "Failed to create category", nil)
		return
	}

	utils.Created(c, "Category created successfully", category)
}

// CreateDefaultCategory seeds a starter category on first boot
func CreateDefaultCategory() error {
	var category models.Category
	err := config.DB.First(&category).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	category = models.Category{
		Name:        "House Favourites",
		Description: "Signature drinks and pastries",
	}
	if err := config.DB.Create(&category).Error; err != nil {
		return err
	}
	utils.LogInfo("Seeded default menu category")
	return nil
}
