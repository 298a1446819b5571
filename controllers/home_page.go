// controllers/home_page.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"minimind-backend/models"
	"minimind-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HomeContentInput struct {
	HeroTitle       string `json:"hero_title"`
	HeroSubtitle    string `json:"hero_subtitle"`
	HeroDescription string `json:"hero_description"`
	CtaTitle        string `json:"cta_title"`
	CtaSubtitle     string `json:"cta_subtitle"`
}

type HeroImageInput struct {
	ImageURL     string `json:"image_url"`
	DisplayOrder int    `json:"display_order"`
}

type HomeStatInput struct {
	Number       string `json:"number" binding:"required"`
	Label        string `json:"label" binding:"required"`
	IconName     string `json:"icon_name"`
	DisplayOrder int    `json:"display_order"`
}

type HomeServicePreviewInput struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
	DisplayOrder int    `json:"display_order"`
}

type FullHomePageInput struct {
	Content         HomeContentInput          `json:"content"`
	HeroImages      []HeroImageInput          `json:"hero_images"`
	Stats           []HomeStatInput           `json:"stats"`
	ServicesPreview []HomeServicePreviewInput `json:"services_preview"`
}

// GetHomePage assembles the aggregate from four independent reads. Any
// failing read fails the whole response.
func (api *API) GetHomePage(c *gin.Context) {
	var content models.HomeContent
	if err := api.DB.First(&content).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Failed to get home page data: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal Server Error: "+err.Error())
		return
	}

	var images []models.HeroImage
	if err := api.DB.Order("display_order").Find(&images).Error; err != nil {
		log.Printf("Failed to get home page data: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal Server Error: "+err.Error())
		return
	}

	var stats []models.HomeStat
	if err := api.DB.Order("display_order").Find(&stats).Error; err != nil {
		log.Printf("Failed to get home page data: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal Server Error: "+err.Error())
		return
	}

	var previews []models.HomeServicePreview
	if err := api.DB.Order("display_order").Find(&previews).Error; err != nil {
		log.Printf("Failed to get home page data: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal Server Error: "+err.Error())
		return
	}

	// The dashboard expects stat ids as strings.
	statsOut := make([]gin.H, 0, len(stats))
	for _, stat := range stats {
		statsOut = append(statsOut, gin.H{
			"id":            strconv.FormatUint(uint64(stat.ID), 10),
			"number":        stat.Number,
			"label":         stat.Label,
			"icon_name":     stat.IconName,
			"display_order": stat.DisplayOrder,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"content":          content,
		"hero_images":      images,
		"stats":            statsOut,
		"services_preview": previews,
	})
}

// UpdateHomePage rewrites the aggregate in sequence: upsert the content
// singleton, then for each child table delete everything and bulk-insert
// the replacement rows (insert skipped for an empty input list). The steps
// are not wrapped in a transaction; a failure partway leaves a mixed state
// the frontend tolerates.
func (api *API) UpdateHomePage(c *gin.Context) {
	var input FullHomePageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	content := models.HomeContent{
		ID:              1,
		HeroTitle:       input.Content.HeroTitle,
		HeroSubtitle:    input.Content.HeroSubtitle,
		HeroDescription: input.Content.HeroDescription,
		CtaTitle:        input.Content.CtaTitle,
		CtaSubtitle:     input.Content.CtaSubtitle,
	}
	if err := api.DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(&content).Error; err != nil {
		log.Printf("Failed to update home page: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if err := api.DB.Where("id <> ?", -1).Delete(&models.HeroImage{}).Error; err != nil {
		log.Printf("Failed to update home page: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if len(input.HeroImages) > 0 {
		images := make([]models.HeroImage, 0, len(input.HeroImages))
		for _, img := range input.HeroImages {
			images = append(images, models.HeroImage{ImageURL: img.ImageURL, DisplayOrder: img.DisplayOrder})
		}
		if err := api.DB.Create(&images).Error; err != nil {
			log.Printf("Failed to update home page: %v", err)
			utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
			return
		}
	}

	if err := api.DB.Where("id <> ?", -1).Delete(&models.HomeStat{}).Error; err != nil {
		log.Printf("Failed to update home page: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if len(input.Stats) > 0 {
		stats := make([]models.HomeStat, 0, len(input.Stats))
		for _, stat := range input.Stats {
			stats = append(stats, models.HomeStat{
				Number:       stat.Number,
				Label:        stat.Label,
				IconName:     stat.IconName,
				DisplayOrder: stat.DisplayOrder,
			})
		}
		if err := api.DB.Create(&stats).Error; err != nil {
			log.Printf("Failed to update home page: %v", err)
			utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
			return
		}
	}

	if err := api.DB.Where("id <> ?", -1).Delete(&models.HomeServicePreview{}).Error; err != nil {
		log.Printf("Failed to update home page: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if len(input.ServicesPreview) > 0 {
		previews := make([]models.HomeServicePreview, 0, len(input.ServicesPreview))
		for _, preview := range input.ServicesPreview {
			previews = append(previews, models.HomeServicePreview{
				Title:        preview.Title,
				Description:  preview.Description,
				ImageURL:     preview.ImageURL,
				DisplayOrder: preview.DisplayOrder,
			})
		}
		if err := api.DB.Create(&previews).Error; err != nil {
			log.Printf("Failed to update home page: %v", err)
			utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Home page updated successfully"})
}
