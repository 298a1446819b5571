// controllers/portfolio.go
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

type PortfolioCategoryInput struct {
	Name string `json:"name" binding:"required"`
}

type PortfolioProjectInput struct {
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description"`
	ImageURL      string   `json:"image_url" binding:"required"`
	ProjectImages []string `json:"project_images"`
	CategoryName  string   `json:"category_name" binding:"required"`
	AspectRatio   string   `json:"aspect_ratio"`
	URL           string   `json:"url"`
	GithubURL     string   `json:"github_url"`
	Technologies  []string `json:"technologies"`
}

func (api *API) GetPortfolioCategories(c *gin.Context) {
	var categories []models.PortfolioCategory
	if err := api.DB.Find(&categories).Error; err != nil {
		log.Printf("Failed to get portfolio categories: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (api *API) CreatePortfolioCategory(c *gin.Context) {
	var input PortfolioCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	category := models.PortfolioCategory{Name: input.Name}
	if err := api.DB.Create(&category).Error; err != nil {
		log.Printf("Failed to create portfolio category: %v", err)
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, category)
}

func (api *API) DeletePortfolioCategory(c *gin.Context) {
	id := c.Param("id")

	result := api.DB.Where("id = ?", id).Delete(&models.PortfolioCategory{})
	if result.Error != nil {
		log.Printf("Failed to delete portfolio category %s: %v", id, result.Error)
		utils.RespondWithError(c, http.StatusInternalServerError, result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Category with id "+id+" not found.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

// resolveCategory is find-or-create by name. Two concurrent calls with the
// same new name can both insert; duplicate categories are tolerated at this
// traffic level rather than constrained away.
func (api *API) resolveCategory(name string) (models.PortfolioCategory, error) {
	var category models.PortfolioCategory
	err := api.DB.Where("name = ?", name).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		category = models.PortfolioCategory{Name: name}
		err = api.DB.Create(&category).Error
	}
	return category, err
}

// The category join only survives reads, so responses re-attach the
// human-readable name after every write.
func projectResponse(project models.PortfolioProject, categoryName string) gin.H {
	return gin.H{
		"id":             project.ID,
		"title":          project.Title,
		"description":    project.Description,
		"image_url":      project.ImageURL,
		"project_images": project.ProjectImages,
		"category_name":  categoryName,
		"aspect_ratio":   project.AspectRatio,
		"url":            project.URL,
		"github_url":     project.GithubURL,
		"technologies":   project.Technologies,
	}
}

func (api *API) GetPortfolioProjects(c *gin.Context) {
	query := api.DB.Preload("Category").Order("updated_at desc")
	if categoryName := c.Query("category_name"); categoryName != "" {
		query = query.
			Joins("JOIN portfolio_categories ON portfolio_categories.id = portfolio_projects.category_id").
			Where("portfolio_categories.name = ?", categoryName)
	}

	var projects []models.PortfolioProject
	if err := query.Find(&projects).Error; err != nil {
		log.Printf("Failed to get portfolio projects: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]gin.H, 0, len(projects))
	for _, project := range projects {
		out = append(out, projectResponse(project, project.Category.Name))
	}
	c.JSON(http.StatusOK, out)
}

func (api *API) CreatePortfolioProject(c *gin.Context) {
	var input PortfolioProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	category, err := api.resolveCategory(input.CategoryName)
	if err != nil {
		log.Printf("Failed to create portfolio project: %v", err)
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	project := models.PortfolioProject{
		Title:         input.Title,
		Description:   input.Description,
		ImageURL:      input.ImageURL,
		ProjectImages: input.ProjectImages,
		CategoryID:    category.ID,
		AspectRatio:   input.AspectRatio,
		URL:           input.URL,
		GithubURL:     input.GithubURL,
		Technologies:  input.Technologies,
	}
	if err := api.DB.Create(&project).Error; err != nil {
		log.Printf("Failed to create portfolio project: %v", err)
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, projectResponse(project, input.CategoryName))
}

func (api *API) UpdatePortfolioProject(c *gin.Context) {
	id := c.Param("id")

	var input PortfolioProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	category, err := api.resolveCategory(input.CategoryName)
	if err != nil {
		log.Printf("Failed to update portfolio project %s: %v", id, err)
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	updates := map[string]interface{}{
		"title":          input.Title,
		"description":    input.Description,
		"image_url":      input.ImageURL,
		"project_images": models.StringList(input.ProjectImages),
		"category_id":    category.ID,
		"aspect_ratio":   input.AspectRatio,
		"url":            input.URL,
		"github_url":     input.GithubURL,
		"technologies":   models.StringList(input.Technologies),
	}

	result := api.DB.Model(&models.PortfolioProject{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		log.Printf("Failed to update portfolio project %s: %v", id, result.Error)
		utils.RespondWithError(c, http.StatusInternalServerError, result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Project with id "+id+" not found.")
		return
	}

	var project models.PortfolioProject
	if err := api.DB.First(&project, "id = ?", id).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, projectResponse(project, input.CategoryName))
}

func (api *API) DeletePortfolioProject(c *gin.Context) {
	id := c.Param("id")

	result := api.DB.Where("id = ?", id).Delete(&models.PortfolioProject{})
	if result.Error != nil {
		log.Printf("Failed to delete portfolio project %s: %v", id, result.Error)
		utils.RespondWithError(c, http.StatusInternalServerError, result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Project with id "+id+" not found.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
