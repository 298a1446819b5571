// controllers/auth.go
package controllers

import (
	"errors"
	"log"
	"net/http"

	"minimind-backend/models"
	"minimind-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserCredentials struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (api *API) Signup(c *gin.Context) {
	var input UserCredentials
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var existing models.User
	result := api.DB.Where("email = ?", input.Email).First(&existing)
	if result.Error == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Email already registered")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusBadRequest, result.Error.Error())
		return
	}

	user := models.User{
		Email:    input.Email,
		Password: input.Password, // Hashed in BeforeCreate hook
	}
	if err := api.DB.Create(&user).Error; err != nil {
		log.Printf("Signup failed for email %s: %v", input.Email, err)
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User created successfully",
		"user_id": user.ID,
	})
}

func (api *API) Login(c *gin.Context) {
	var input UserCredentials
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var user models.User
	if err := api.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		log.Printf("Login failed for email %s: %v", input.Email, err)
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	accessToken, err := utils.GenerateToken(user.ID.String(), user.Email)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	refreshToken, err := utils.GenerateRefreshToken(user.ID.String(), user.Email)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Login successful",
		"user":          user.Email,
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}
