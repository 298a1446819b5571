// controllers/message.go
package controllers

import (
	"log"
	"net/http"
	"time"

	"minimind-backend/models"
	"minimind-backend/utils"

	"github.com/gin-gonic/gin"
)

type MessageInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

type ReplyMessageInput struct {
	RecipientEmail string `json:"recipient_email" binding:"required,email"`
	Subject        string `json:"subject" binding:"required"`
	Body           string `json:"body" binding:"required"`
}

type SendReplyEmailInput struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Subject         string `json:"subject"`
	OriginalMessage string `json:"originalMessage" binding:"required"`
	ReplyBody       string `json:"replyBody" binding:"required"`
}

func (api *API) GetMessages(c *gin.Context) {
	var messages []models.Message
	if err := api.DB.Order("received_at desc").Find(&messages).Error; err != nil {
		log.Printf("Failed to get messages: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, messages)
}

// CreateMessage is the public contact form. The admin notification email is
// fire-and-forget; the form submission succeeds regardless.
func (api *API) CreateMessage(c *gin.Context) {
	var input MessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	message := models.Message{
		Name:       input.Name,
		Email:      input.Email,
		Subject:    input.Subject,
		Message:    input.Message,
		Read:       false,
		ReceivedAt: time.Now().UTC(),
	}
	if err := api.DB.Create(&message).Error; err != nil {
		log.Printf("Failed to create message: %v", err)
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	go api.Mailer.SendMessageNotification(message)

	c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully"})
}

func (api *API) MarkMessageRead(c *gin.Context) {
	id := c.Param("id")

	result := api.DB.Model(&models.Message{}).Where("id = ?", id).Update("read", true)
	if result.Error != nil {
		log.Printf("Failed to mark message %s as read: %v", id, result.Error)
		utils.RespondWithError(c, http.StatusInternalServerError, result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Message with id "+id+" not found.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message marked as read"})
}

func (api *API) DeleteMessage(c *gin.Context) {
	id := c.Param("id")

	result := api.DB.Where("id = ?", id).Delete(&models.Message{})
	if result.Error != nil {
		log.Printf("Failed to delete message %s: %v", id, result.Error)
		utils.RespondWithError(c, http.StatusInternalServerError, result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Message with id "+id+" not found.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
}

// ReplyToMessage sends a manual reply. Unlike the notification paths, the
// email IS the endpoint's effect, so a send failure fails the request.
func (api *API) ReplyToMessage(c *gin.Context) {
	var input ReplyMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := api.Mailer.SendReply(input.RecipientEmail, input.Subject, input.Body); err != nil {
		log.Printf("Failed to send reply to %s: %v", input.RecipientEmail, err)
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reply sent successfully"})
}

// SendReplyEmail is the dashboard's richer reply form: the backend formats
// the "Re:" subject and quotes the original message below the reply.
func (api *API) SendReplyEmail(c *gin.Context) {
	var input SendReplyEmailInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := api.Mailer.SendReplyEmail(input.Name, input.Email, input.Subject, input.OriginalMessage, input.ReplyBody); err != nil {
		log.Printf("Failed to send reply via backend endpoint: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reply sent successfully via backend."})
}
