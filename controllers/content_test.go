package controllers

import (
	"net/http"
	"testing"

	"minimind-backend/models"

	"github.com/gin-gonic/gin"
)

func TestContentRoundTripInjectsFeaturedServices(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	put := newJSONRequest(t, http.MethodPut, "/content/about", map[string]interface{}{
		"key":   "about",
		"value": map[string]interface{}{"a": float64(1)},
	})
	c, w := testContext(put, gin.Param{Key: "key", Value: "about"})
	api.UpdateContent(c)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	get := newJSONRequest(t, http.MethodGet, "/content/about", nil)
	c, w = testContext(get, gin.Param{Key: "key", Value: "about"})
	api.GetContent(c)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	body := decodeBody(t, w)
	value, ok := body["value"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected value object, got %v", body["value"])
	}
	if value["a"] != float64(1) {
		t.Errorf("expected a == 1, got %v", value["a"])
	}
	if _, ok := value["featuredServices"].([]interface{}); !ok {
		t.Errorf("expected featuredServices list, got %v", value["featuredServices"])
	}
}

func TestGetContentUnknownKeyReturnsDefault(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	req := newJSONRequest(t, http.MethodGet, "/content/never-written", nil)
	c, w := testContext(req, gin.Param{Key: "key", Value: "never-written"})
	api.GetContent(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	value, ok := body["value"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected value object, got %v", body["value"])
	}
	list, ok := value["featuredServices"].([]interface{})
	if !ok || len(list) != 0 {
		t.Errorf("expected empty featuredServices, got %v", value["featuredServices"])
	}
}

func TestGetContentCorruptValueFallsBack(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	if err := api.DB.Create(&models.Content{Key: "broken", Value: "{not json"}).Error; err != nil {
		t.Fatalf("failed to seed content: %v", err)
	}

	req := newJSONRequest(t, http.MethodGet, "/content/broken", nil)
	c, w := testContext(req, gin.Param{Key: "key", Value: "broken"})
	api.GetContent(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	value := body["value"].(map[string]interface{})
	if _, ok := value["featuredServices"].([]interface{}); !ok {
		t.Errorf("expected fallback featuredServices list, got %v", value)
	}
	if len(value) != 1 {
		t.Errorf("expected only the fallback key, got %v", value)
	}
}

func TestUpdateContentInsertsWhenMissing(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	put := newJSONRequest(t, http.MethodPut, "/content/fresh", map[string]interface{}{
		"value": map[string]interface{}{"headline": "hi"},
	})
	c, w := testContext(put, gin.Param{Key: "key", Value: "fresh"})
	api.UpdateContent(c)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	api.DB.Model(&models.Content{}).Where("key = ?", "fresh").Count(&count)
	if count != 1 {
		t.Errorf("expected 1 content row, got %d", count)
	}
}
