package controllers

import (
	"net/http"
	"testing"

	"minimind-backend/models"

	"github.com/gin-gonic/gin"
)

func TestCreateMessageSucceedsWithoutEmailConfig(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	req := newJSONRequest(t, http.MethodPost, "/messages", map[string]interface{}{
		"name":    "Jane",
		"email":   "jane@example.com",
		"subject": "Hello",
		"message": "I need a website",
	})
	c, w := testContext(req)
	api.CreateMessage(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["message"] != "Message sent successfully" {
		t.Errorf("unexpected response %v", body)
	}

	var stored models.Message
	if err := api.DB.First(&stored).Error; err != nil {
		t.Fatalf("message not stored: %v", err)
	}
	if stored.Read {
		t.Error("expected new message to start unread")
	}
}

func TestMarkMessageRead(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	message := models.Message{Name: "Jane", Email: "jane@example.com", Message: "hi"}
	api.DB.Create(&message)

	req := newJSONRequest(t, http.MethodPut, "/messages/1/read", nil)
	c, w := testContext(req, gin.Param{Key: "id", Value: "1"})
	api.MarkMessageRead(c)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var stored models.Message
	api.DB.First(&stored, message.ID)
	if !stored.Read {
		t.Error("expected message marked read")
	}
}

func TestMarkMessageReadNotFound(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	req := newJSONRequest(t, http.MethodPut, "/messages/55/read", nil)
	c, w := testContext(req, gin.Param{Key: "id", Value: "55"})
	api.MarkMessageRead(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestReplyFailsWhenMailNotConfigured(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	req := newJSONRequest(t, http.MethodPost, "/messages/reply", map[string]interface{}{
		"recipient_email": "jane@example.com",
		"subject":         "Re: Hello",
		"body":            "Thanks for reaching out",
	})
	c, w := testContext(req)
	api.ReplyToMessage(c)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["detail"] == "" {
		t.Error("expected a detail message")
	}
}

func TestSendReplyEmailFailsWhenMailNotConfigured(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	req := newJSONRequest(t, http.MethodPost, "/send-reply-email", map[string]interface{}{
		"name":            "Jane",
		"email":           "jane@example.com",
		"originalMessage": "I need a website",
		"replyBody":       "Happy to help",
	})
	c, w := testContext(req)
	api.SendReplyEmail(c)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d: %s", w.Code, w.Body.String())
	}
}
