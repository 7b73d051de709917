package models

import "gorm.io/gorm"

// Category groups menu items (espresso, brews, pastries, ...)
type Category struct {
	gorm.Model
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Items       []MenuItem `json:"items,omitempty"`
	Blocked     bool       `json:"blocked" gorm:"default:false"`
}

// MenuItem is a purchasable café item
type MenuItem struct {
	gorm.Model
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	CategoryID  uint     `json:"category_id"`
	Category    Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	ImageURL    string   `json:"image_url"`
	IsActive    bool     `json:"is_active" gorm:"default:true"`
	IsFeatured  bool     `json:"is_featured" gorm:"default:false"`
}
