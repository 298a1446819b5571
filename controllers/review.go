// controllers/review.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"minimind-backend/models"
	"minimind-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReviewInput struct {
	Name        string `json:"name" binding:"required"`
	Designation string `json:"designation" binding:"required"`
	Company     string `json:"company"`
	CompanyURL  string `json:"company_url"`
	Project     string `json:"project"`
	Rating      int    `json:"rating" binding:"required,min=1,max=5"`
	Review      string `json:"review" binding:"required"`
	ImageURL    string `json:"image_url"`
}

type UpdateReviewInput struct {
	Name        *string `json:"name"`
	Designation *string `json:"designation"`
	Company     *string `json:"company"`
	CompanyURL  *string `json:"company_url"`
	Project     *string `json:"project"`
	Rating      *int    `json:"rating"`
	Review      *string `json:"review"`
	ImageURL    *string `json:"image_url"`
	Approved    *bool   `json:"approved"`
}

// CreateReview is public; submissions start unapproved and stay invisible
// until an admin approves them.
func (api *API) CreateReview(c *gin.Context) {
	var input ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	review := models.Review{
		Name:        input.Name,
		Designation: input.Designation,
		Company:     input.Company,
		CompanyURL:  input.CompanyURL,
		Project:     input.Project,
		Rating:      input.Rating,
		Review:      input.Review,
		ImageURL:    input.ImageURL,
		Approved:    false,
		CreatedAt:   time.Now().UTC(),
	}
	if err := api.DB.Create(&review).Error; err != nil {
		log.Printf("Failed to create review: %v", err)
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, review)
}

func (api *API) GetPublicReviews(c *gin.Context) {
	var reviews []models.Review
	if err := api.DB.Where("approved = ?", true).Order("created_at desc").Find(&reviews).Error; err != nil {
		log.Printf("Failed to get public reviews: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (api *API) GetAllReviews(c *gin.Context) {
	var reviews []models.Review
	if err := api.DB.Order("created_at desc").Find(&reviews).Error; err != nil {
		log.Printf("Failed to get all reviews: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (api *API) UpdateReview(c *gin.Context) {
	id := c.Param("id")

	var input UpdateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Designation != nil {
		updates["designation"] = *input.Designation
	}
	if input.Company != nil {
		updates["company"] = *input.Company
	}
	if input.CompanyURL != nil {
		updates["company_url"] = *input.CompanyURL
	}
	if input.Project != nil {
		updates["project"] = *input.Project
	}
	if input.Rating != nil {
		updates["rating"] = *input.Rating
	}
	if input.Review != nil {
		updates["review"] = *input.Review
	}
	if input.ImageURL != nil {
		updates["image_url"] = *input.ImageURL
	}
	if input.Approved != nil {
		updates["approved"] = *input.Approved
	}

	if len(updates) > 0 {
		result := api.DB.Model(&models.Review{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			log.Printf("Failed to update review %s: %v", id, result.Error)
			utils.RespondWithError(c, http.StatusInternalServerError, result.Error.Error())
			return
		}
		if result.RowsAffected == 0 {
			utils.RespondWithError(c, http.StatusNotFound, "Review with id "+id+" not found.")
			return
		}
	}

	var review models.Review
	if err := api.DB.First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Review with id "+id+" not found.")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, review)
}

func (api *API) ApproveReview(c *gin.Context) {
	id := c.Param("id")

	result := api.DB.Model(&models.Review{}).Where("id = ?", id).Update("approved", true)
	if result.Error != nil {
		log.Printf("Failed to approve review %s: %v", id, result.Error)
		utils.RespondWithError(c, http.StatusInternalServerError, result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Review with id "+id+" not found.")
		return
	}

	var review models.Review
	if err := api.DB.First(&review, "id = ?", id).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, review)
}

func (api *API) DeleteReview(c *gin.Context) {
	id := c.Param("id")

	result := api.DB.Where("id = ?", id).Delete(&models.Review{})
	if result.Error != nil {
		log.Printf("Failed to delete review %s: %v", id, result.Error)
		utils.RespondWithError(c, http.StatusInternalServerError, result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Review with id "+id+" not found.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}
