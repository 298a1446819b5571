// controllers/contact.go
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

type ContactInfoInput struct {
	Email         *string        `json:"email"`
	Phone         *string        `json:"phone"`
	Address       *string        `json:"address"`
	BusinessHours *string        `json:"business_hours"`
	SocialLinks   models.JSONMap `json:"socialLinks"`
}

func (api *API) GetContactInfo(c *gin.Context) {
	var info models.ContactInfo
	if err := api.DB.First(&info).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, models.ContactInfo{SocialLinks: models.JSONMap{}})
			return
		}
		log.Printf("Failed to get contact info: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if info.SocialLinks == nil {
		info.SocialLinks = models.JSONMap{}
	}
	c.JSON(http.StatusOK, info)
}

// UpdateContactInfo writes the singleton row: update id=1, insert when the
// row does not exist yet. Only the fields present in the request change.
func (api *API) UpdateContactInfo(c *gin.Context) {
	var input ContactInfoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != nil && *input.Phone != "" && !utils.ValidatePhone(*input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	updates := map[string]interface{}{}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Address != nil {
		updates["address"] = *input.Address
	}
	if input.BusinessHours != nil {
		updates["business_hours"] = *input.BusinessHours
	}
	if input.SocialLinks != nil {
		updates["social_links"] = input.SocialLinks
	}

	var result *gorm.DB
	if len(updates) > 0 {
		result = api.DB.Model(&models.ContactInfo{}).Where("id = ?", 1).Updates(updates)
	} else {
		result = api.DB.Model(&models.ContactInfo{}).Where("id = ?", 1).Update("id", 1)
	}
	if result.Error != nil {
		log.Printf("Failed to update contact info: %v", result.Error)
		utils.RespondWithError(c, http.StatusInternalServerError, result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		info := models.ContactInfo{ID: 1, SocialLinks: input.SocialLinks}
		if input.Email != nil {
			info.Email = *input.Email
		}
		if input.Phone != nil {
			info.Phone = *input.Phone
		}
		if input.Address != nil {
			info.Address = *input.Address
		}
		if input.BusinessHours != nil {
			info.BusinessHours = *input.BusinessHours
		}
		if err := api.DB.Create(&info).Error; err != nil {
			log.Printf("Failed to insert contact info: %v", err)
			utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, []models.ContactInfo{info})
		return
	}

	var info models.ContactInfo
	if err := api.DB.First(&info, 1).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, []models.ContactInfo{info})
}
