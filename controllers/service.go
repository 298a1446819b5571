// controllers/service.go
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

// CreateServiceInput accepts both the storage column name and the
// dashboard's "coverImage" alias; the alias wins when both are present.
type CreateServiceInput struct {
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description"`
	Icon          string   `json:"icon"`
	Price         string   `json:"price"`
	Features      []string `json:"features" binding:"required"`
	CoverImage    string   `json:"coverImage"`
	CoverImageURL string   `json:"cover_image_url"`
}

type UpdateServiceInput struct {
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	Icon          *string  `json:"icon"`
	Price         *string  `json:"price"`
	Features      []string `json:"features"`
	CoverImage    *string  `json:"coverImage"`
	CoverImageURL *string  `json:"cover_image_url"`
}

func (api *API) GetServices(c *gin.Context) {
	var services []models.Service
	if err := api.DB.Order("id").Find(&services).Error; err != nil {
		log.Printf("Failed to get services: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, services)
}

func (api *API) CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	coverImage := input.CoverImageURL
	if input.CoverImage != "" {
		coverImage = input.CoverImage
	}

	service := models.Service{
		Title:         input.Title,
		Description:   input.Description,
		Icon:          input.Icon,
		Price:         input.Price,
		Features:      input.Features,
		CoverImageURL: coverImage,
	}
	if err := api.DB.Create(&service).Error; err != nil {
		log.Printf("Failed to create service: %v", err)
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, service)
}

func (api *API) UpdateService(c *gin.Context) {
	id := c.Param("id")

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Icon != nil {
		updates["icon"] = *input.Icon
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.Features != nil {
		updates["features"] = models.StringList(input.Features)
	}
	if input.CoverImage != nil {
		updates["cover_image_url"] = *input.CoverImage
	} else if input.CoverImageURL != nil {
		updates["cover_image_url"] = *input.CoverImageURL
	}

	if len(updates) > 0 {
		result := api.DB.Model(&models.Service{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			log.Printf("Failed to update service %s: %v", id, result.Error)
			utils.RespondWithError(c, http.StatusInternalServerError, result.Error.Error())
			return
		}
		if result.RowsAffected == 0 {
			utils.RespondWithError(c, http.StatusNotFound, "Service with id "+id+" not found.")
			return
		}
	}

	var service models.Service
	if err := api.DB.First(&service, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service with id "+id+" not found.")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, service)
}

func (api *API) DeleteService(c *gin.Context) {
	id := c.Param("id")

	result := api.DB.Where("id = ?", id).Delete(&models.Service{})
	if result.Error != nil {
		log.Printf("Failed to delete service %s: %v", id, result.Error)
		utils.RespondWithError(c, http.StatusInternalServerError, result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service with id "+id+" not found.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
