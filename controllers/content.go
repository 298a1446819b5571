// controllers/content.go
package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"minimind-backend/models"
	"minimind-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ContentInput struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value" binding:"required"`
}

// decodeContentValue turns the stored JSON text into the response object.
// Anything that does not decode to an object collapses to the safe default,
// and featuredServices is always forced to a list.
func decodeContentValue(raw string) map[string]interface{} {
	fallback := map[string]interface{}{"featuredServices": []interface{}{}}
	if raw == "" {
		return fallback
	}
	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return fallback
	}
	if _, ok := parsed["featuredServices"].([]interface{}); !ok {
		parsed["featuredServices"] = []interface{}{}
	}
	return parsed
}

// GetContent is public. A key that was never written is not an error: the
// frontend gets the default value and renders an empty section.
func (api *API) GetContent(c *gin.Context) {
	key := c.Param("key")

	var content models.Content
	if err := api.DB.Where("key = ?", key).First(&content).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"value": map[string]interface{}{"featuredServices": []interface{}{}}})
			return
		}
		log.Printf("Failed to get content for key '%s': %v", key, err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve content: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"key":   content.Key,
		"value": decodeContentValue(content.Value),
	})
}

// UpdateContent upserts by hand: update by key, insert when nothing matched.
func (api *API) UpdateContent(c *gin.Context) {
	key := c.Param("key")

	var input ContentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	content := models.Content{Key: key, Value: string(input.Value)}

	result := api.DB.Model(&models.Content{}).Where("key = ?", key).Update("value", content.Value)
	if result.Error != nil {
		log.Printf("Failed to update content for key '%s': %v", key, result.Error)
		utils.RespondWithError(c, http.StatusInternalServerError, result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		if err := api.DB.Create(&content).Error; err != nil {
			log.Printf("Failed to insert content for key '%s': %v", key, err)
			utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
			return
		}
	}

	c.JSON(http.StatusOK, []models.Content{content})
}
