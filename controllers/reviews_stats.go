// controllers/reviews_stats.go
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

type ReviewsStatInput struct {
	SortOrder *int    `json:"order"`
	Number    *string `json:"number"`
	Label     *string `json:"label"`
}

func (api *API) GetReviewsStats(c *gin.Context) {
	var stats []models.ReviewsStat
	if err := api.DB.Order("sort_order").Find(&stats).Error; err != nil {
		log.Printf("Failed to get reviews stats: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (api *API) CreateReviewsStat(c *gin.Context) {
	var input struct {
		SortOrder int    `json:"order"`
		Number    string `json:"number" binding:"required"`
		Label     string `json:"label" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	stat := models.ReviewsStat{
		SortOrder: input.SortOrder,
		Number:    input.Number,
		Label:     input.Label,
	}
	if err := api.DB.Create(&stat).Error; err != nil {
		log.Printf("Failed to create reviews stat: %v", err)
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, stat)
}

func (api *API) UpdateReviewsStat(c *gin.Context) {
	id := c.Param("id")

	var input ReviewsStatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	if input.SortOrder != nil {
		updates["sort_order"] = *input.SortOrder
	}
	if input.Number != nil {
		updates["number"] = *input.Number
	}
	if input.Label != nil {
		updates["label"] = *input.Label
	}

	if len(updates) > 0 {
		result := api.DB.Model(&models.ReviewsStat{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			log.Printf("Failed to update reviews stat %s: %v", id, result.Error)
			utils.RespondWithError(c, http.StatusInternalServerError, result.Error.Error())
			return
		}
		if result.RowsAffected == 0 {
			utils.RespondWithError(c, http.StatusNotFound, "Reviews stat with id "+id+" not found.")
			return
		}
	}

	var stat models.ReviewsStat
	if err := api.DB.First(&stat, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Reviews stat with id "+id+" not found.")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, stat)
}

func (api *API) DeleteReviewsStat(c *gin.Context) {
	id := c.Param("id")

	result := api.DB.Where("id = ?", id).Delete(&models.ReviewsStat{})
	if result.Error != nil {
		log.Printf("Failed to delete reviews stat %s: %v", id, result.Error)
		utils.RespondWithError(c, http.StatusInternalServerError, result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Reviews stat with id "+id+" not found.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reviews stat deleted successfully"})
}
