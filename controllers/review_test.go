package controllers

import (
	"net/http"
	"testing"

	"minimind-backend/models"

	"github.com/gin-gonic/gin"
)

func seedReviews(t *testing.T, api *API) {
	t.Helper()
	reviews := []models.Review{
		{Name: "Ana", Designation: "CEO", Rating: 5, Review: "great", Approved: true},
		{Name: "Ben", Designation: "CTO", Rating: 4, Review: "good", Approved: false},
		{Name: "Cai", Designation: "PM", Rating: 5, Review: "superb", Approved: true},
	}
	for i := range reviews {
		if err := api.DB.Create(&reviews[i]).Error; err != nil {
			t.Fatalf("failed to seed review: %v", err)
		}
	}
}

func TestPublicReviewsOnlyApproved(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()
	seedReviews(t, api)

	req := newJSONRequest(t, http.MethodGet, "/reviews", nil)
	c, w := testContext(req)
	api.GetPublicReviews(c)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	reviews := decodeList(t, w)
	if len(reviews) != 2 {
		t.Fatalf("expected 2 approved reviews, got %d", len(reviews))
	}
	for _, review := range reviews {
		if review["approved"] != true {
			t.Errorf("public listing leaked unapproved review: %v", review)
		}
	}
}

func TestAdminReviewsUnfiltered(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()
	seedReviews(t, api)

	req := newJSONRequest(t, http.MethodGet, "/admin/reviews", nil)
	c, w := testContext(req)
	api.GetAllReviews(c)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	if reviews := decodeList(t, w); len(reviews) != 3 {
		t.Errorf("expected all 3 reviews, got %d", len(reviews))
	}
}

func TestCreateReviewStartsUnapproved(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	req := newJSONRequest(t, http.MethodPost, "/reviews", map[string]interface{}{
		"name":        "Dee",
		"designation": "Founder",
		"rating":      5,
		"review":      "Loved working with the team",
		"approved":    true, // must be ignored
	})
	c, w := testContext(req)
	api.CreateReview(c)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var review models.Review
	if err := api.DB.First(&review).Error; err != nil {
		t.Fatalf("review not found: %v", err)
	}
	if review.Approved {
		t.Error("expected new review to start unapproved")
	}
}

func TestApproveReview(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	review := models.Review{Name: "Ben", Designation: "CTO", Rating: 4, Review: "good"}
	api.DB.Create(&review)

	req := newJSONRequest(t, http.MethodPut, "/reviews/1/approve", nil)
	c, w := testContext(req, gin.Param{Key: "id", Value: "1"})
	api.ApproveReview(c)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["approved"] != true {
		t.Errorf("expected approved true, got %v", body["approved"])
	}
}

func TestApproveReviewNotFound(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	req := newJSONRequest(t, http.MethodPut, "/reviews/99/approve", nil)
	c, w := testContext(req, gin.Param{Key: "id", Value: "99"})
	api.ApproveReview(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestDeleteReviewNotFound(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	req := newJSONRequest(t, http.MethodDelete, "/reviews/99", nil)
	c, w := testContext(req, gin.Param{Key: "id", Value: "99"})
	api.DeleteReview(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}
