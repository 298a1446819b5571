// controllers/upload.go
package controllers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"minimind-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadImage accepts either a multipart file or a pre-existing URL. The
// file wins when both are given. A bare URL is only acknowledged, never
// fetched or validated.
func (api *API) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		imageURL := c.PostForm("image_url")
		if imageURL == "" {
			utils.RespondWithError(c, http.StatusBadRequest, "No image file or URL provided.")
			return
		}
		log.Printf("Image URL received: %s", imageURL)
		c.JSON(http.StatusOK, gin.H{"message": "Image URL received", "url": imageURL})
		return
	}

	if err := os.MkdirAll(api.UploadDir, 0o755); err != nil {
		log.Printf("Image upload failed: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Image upload failed: "+err.Error())
		return
	}

	filename := uuid.New().String() + filepath.Ext(file.Filename)
	dst := filepath.Join(api.UploadDir, filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		log.Printf("Image upload failed: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Image upload failed: "+err.Error())
		return
	}

	publicURL := api.PublicBaseURL + "/uploads/" + filename
	log.Printf("Image uploaded to %s", publicURL)
	c.JSON(http.StatusOK, gin.H{"message": "Image uploaded successfully", "url": publicURL})
}
