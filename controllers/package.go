// controllers/package.go
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

type PackageInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       string   `json:"price" binding:"required"`
	Features    []string `json:"features" binding:"required"`
	IsPopular   bool     `json:"is_popular"`
}

type UpdatePackageInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *string  `json:"price"`
	Features    []string `json:"features"`
	IsPopular   *bool    `json:"is_popular"`
}

// Packages store the display name in the title column but the site speaks
// "name"; every response rebuilds the API shape.
func packageResponse(pkg models.Package) gin.H {
	return gin.H{
		"id":          pkg.ID,
		"name":        pkg.Title,
		"description": pkg.Description,
		"price":       pkg.Price,
		"features":    pkg.Features,
		"is_popular":  pkg.IsPopular,
	}
}

func (api *API) GetPackages(c *gin.Context) {
	var packages []models.Package
	if err := api.DB.Order("id").Find(&packages).Error; err != nil {
		log.Printf("Failed to get packages: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]gin.H, 0, len(packages))
	for _, pkg := range packages {
		out = append(out, packageResponse(pkg))
	}
	c.JSON(http.StatusOK, out)
}

func (api *API) CreatePackage(c *gin.Context) {
	var input PackageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	pkg := models.Package{
		Title:       input.Name,
		Description: input.Description,
		Price:       input.Price,
		Features:    input.Features,
		IsPopular:   input.IsPopular,
	}
	if err := api.DB.Create(&pkg).Error; err != nil {
		log.Printf("Failed to create package: %v", err)
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, packageResponse(pkg))
}

func (api *API) UpdatePackage(c *gin.Context) {
	id := c.Param("id")

	var input UpdatePackageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["title"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.Features != nil {
		updates["features"] = models.StringList(input.Features)
	}
	if input.IsPopular != nil {
		updates["is_popular"] = *input.IsPopular
	}

	if len(updates) > 0 {
		result := api.DB.Model(&models.Package{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			log.Printf("Failed to update package %s: %v", id, result.Error)
			utils.RespondWithError(c, http.StatusInternalServerError, result.Error.Error())
			return
		}
		if result.RowsAffected == 0 {
			utils.RespondWithError(c, http.StatusNotFound, "Package with id "+id+" not found.")
			return
		}
	}

	var pkg models.Package
	if err := api.DB.First(&pkg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Package with id "+id+" not found.")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, packageResponse(pkg))
}

func (api *API) DeletePackage(c *gin.Context) {
	id := c.Param("id")

	result := api.DB.Where("id = ?", id).Delete(&models.Package{})
	if result.Error != nil {
		log.Printf("Failed to delete package %s: %v", id, result.Error)
		utils.RespondWithError(c, http.StatusInternalServerError, result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Package with id "+id+" not found.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Package deleted successfully"})
}
