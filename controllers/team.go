// controllers/team.go
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

type TeamMemberInput struct {
	Name        string   `json:"name" binding:"required"`
	Designation string   `json:"designation" binding:"required"`
	ImageURL    string   `json:"image_url" binding:"required"`
	Bio         string   `json:"bio"`
	Specialties []string `json:"specialties"`
	SocialURLA  string   `json:"social_url_a"`
	SocialURLB  string   `json:"social_url_b"`
	SocialURLC  string   `json:"social_url_c"`
}

type UpdateTeamMemberInput struct {
	Name        *string  `json:"name"`
	Designation *string  `json:"designation"`
	ImageURL    *string  `json:"image_url"`
	Bio         *string  `json:"bio"`
	Specialties []string `json:"specialties"`
	SocialURLA  *string  `json:"social_url_a"`
	SocialURLB  *string  `json:"social_url_b"`
	SocialURLC  *string  `json:"social_url_c"`
}

type TeamOrderInput struct {
	OrderedIDs []uint `json:"ordered_ids" binding:"required"`
}

func (api *API) GetTeamMembers(c *gin.Context) {
	var members []models.TeamMember
	if err := api.DB.Order("display_order").Find(&members).Error; err != nil {
		log.Printf("Failed to get team members: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, members)
}

// CreateTeamMember appends at the end of the display sequence: the new
// member gets max(display_order)+1. The read-then-write is not atomic, so
// two concurrent creates can land on the same slot; reorder fixes that.
func (api *API) CreateTeamMember(c *gin.Context) {
	var input TeamMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	maxOrder := 0
	var top models.TeamMember
	if err := api.DB.Order("display_order desc").First(&top).Error; err == nil {
		maxOrder = top.DisplayOrder
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Failed to create team member: %v", err)
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	member := models.TeamMember{
		Name:         input.Name,
		Designation:  input.Designation,
		ImageURL:     input.ImageURL,
		Bio:          input.Bio,
		Specialties:  input.Specialties,
		SocialURLA:   input.SocialURLA,
		SocialURLB:   input.SocialURLB,
		SocialURLC:   input.SocialURLC,
		DisplayOrder: maxOrder + 1,
	}
	if err := api.DB.Create(&member).Error; err != nil {
		log.Printf("Failed to create team member: %v", err)
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, member)
}

func (api *API) UpdateTeamMember(c *gin.Context) {
	id := c.Param("id")

	var input UpdateTeamMemberInput
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
	if input.ImageURL != nil {
		updates["image_url"] = *input.ImageURL
	}
	if input.Bio != nil {
		updates["bio"] = *input.Bio
	}
	if input.Specialties != nil {
		updates["specialties"] = models.StringList(input.Specialties)
	}
	if input.SocialURLA != nil {
		updates["social_url_a"] = *input.SocialURLA
	}
	if input.SocialURLB != nil {
		updates["social_url_b"] = *input.SocialURLB
	}
	if input.SocialURLC != nil {
		updates["social_url_c"] = *input.SocialURLC
	}

	if len(updates) > 0 {
		result := api.DB.Model(&models.TeamMember{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			log.Printf("Failed to update team member %s: %v", id, result.Error)
			utils.RespondWithError(c, http.StatusInternalServerError, result.Error.Error())
			return
		}
		if result.RowsAffected == 0 {
			utils.RespondWithError(c, http.StatusNotFound, "Team member with id "+id+" not found.")
			return
		}
	}

	var member models.TeamMember
	if err := api.DB.First(&member, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Team member with id "+id+" not found.")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, member)
}

func (api *API) DeleteTeamMember(c *gin.Context) {
	id := c.Param("id")

	result := api.DB.Where("id = ?", id).Delete(&models.TeamMember{})
	if result.Error != nil {
		log.Printf("Failed to delete team member %s: %v", id, result.Error)
		utils.RespondWithError(c, http.StatusInternalServerError, result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Team member with id "+id+" not found.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team member deleted successfully"})
}

// ReorderTeamMembers sets each member's display_order to its index in the
// supplied id list, one update per id. The loop is not transactional; a
// failure partway leaves a partially renumbered set. Re-running the same
// request converges to the same assignment.
func (api *API) ReorderTeamMembers(c *gin.Context) {
	var input TeamOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	for index, memberID := range input.OrderedIDs {
		if err := api.DB.Model(&models.TeamMember{}).Where("id = ?", memberID).
			Update("display_order", index).Error; err != nil {
			log.Printf("Failed to reorder team members: %v", err)
			utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team members reordered successfully"})
}
