package controllers

import (
	"errors"
	"time"

	"github.com/Govind-619/BrewPoints/config"
	"github.com/Govind-619/BrewPoints/loyalty"
	"github.com/Govind-619/BrewPoints/models"
	"github.com/Govind-619/BrewPoints/utils"
	"github.com/gin-gonic/gin"
)

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	Username     string `json:"username" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Password     string `json:"password" binding:"required"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Phone        string `json:"phone"`
	ReferralCode string `json:"referral_code"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new user account. An optional referral code is
// consumed in the same transaction as the signup, crediting the referrer.
func Register(c *gin.Context) {
	utils.LogInfo("Register called")

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var validationErrs utils.FieldValidationErrors
	if err := utils.ValidateUsername(req.Username); err != nil {
		validationErrs = append(validationErrs, *err)
	}
	if err := utils.ValidateEmail(req.Email); err != nil {
		validationErrs = append(validationErrs, *err)
	}
	if err := utils.ValidatePassword(req.Password); err != nil {
		validationErrs = append(validationErrs, *err)
	}
	if len(validationErrs) > 0 {
		utils.ValidationError(c, "Validation failed", validationErrs)
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ? OR username = ?", req.Email, req.Username).First(&existing).Error; err == nil {
		utils.Conflict(c, "Email or username already registered", nil)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Failed to hash password: %v", err)
		utils.InternalServerError(c, "Failed to create user", nil)
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.InternalServerError(c, "Failed to start transaction", nil)
		return
	}

	user := models.User{
		Username:          req.Username,
		Email:             req.Email,
		Password:          hashed,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Phone:             req.Phone,
		Tier:              string(loyalty.TierBronze),
		TierLastUpdatedAt: time.Now(),
	}
	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to create user: %v", err)
		utils.InternalServerError(c, "Failed to create user", nil)
		return
	}

	if req.ReferralCode != "" {
		if _, err := loyalty.UseReferral(tx, req.ReferralCode, user.ID); err != nil {
			tx.Rollback()
			utils.LogError("Referral code rejected at signup: %v", err)
			switch {
			case errors.Is(err, loyalty.ErrReferralNotFound):
				utils.BadRequest(c, "Referral code not found", nil)
			case errors.Is(err, loyalty.ErrReferralAlreadyUsed):
				utils.BadRequest(c, "Referral code has already been used", nil)
			case errors.Is(err, loyalty.ErrSelfReferral):
				utils.BadRequest(c, "You cannot use your own referral code", nil)
			default:
				utils.InternalServerError(c, "Failed to apply referral code", nil)
			}
			return
		}
	}

	// Every new user gets a shareable invite code of their own.
	referral, err := loyalty.GenerateReferral(tx, user.ID, func() string {
		return utils.GenerateCode("", 8)
	})
	if err != nil {
		tx.Rollback()
		utils.LogError("Failed to generate referral code for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to create user", nil)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit registration: %v", err)
		utils.InternalServerError(c, "Failed to create user", nil)
		return
	}

	utils.LogInfo("User registered: %d", user.ID)
	utils.Created(c, "Registration successful", gin.H{
		"id":            user.ID,
		"username":      user.Username,
		"email":         user.Email,
		"tier":          user.Tier,
		"referral_code": referral.Code,
	})
}

// Login authenticates a user and returns a JWT
func Login(c *gin.Context) {
	utils.LogInfo("Login called")

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	if user.IsBlocked {
		utils.Forbidden(c, "Account is blocked")
		return
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to generate token for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	config.DB.Model(&user).Update("last_login_at", time.Now())

	utils.LogInfo("User %d logged in", user.ID)
	utils.Success(c, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"points":   user.Points,
			"tier":     user.Tier,
		},
	})
}
