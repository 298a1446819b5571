package controllers

import (
	"net/http"
	"testing"

	"minimind-backend/models"

	"github.com/gin-gonic/gin"
)

func createMember(t *testing.T, api *API, name string) models.TeamMember {
	t.Helper()
	req := newJSONRequest(t, http.MethodPost, "/team-members", map[string]interface{}{
		"name":        name,
		"designation": "Designer",
		"image_url":   "https://example.com/" + name + ".png",
		"specialties": []string{"branding", "ui"},
	})
	c, w := testContext(req)
	api.CreateTeamMember(c)
	if w.Code != http.StatusOK {
		t.Fatalf("failed to create member %s: %d %s", name, w.Code, w.Body.String())
	}
	var member models.TeamMember
	if err := api.DB.Where("name = ?", name).First(&member).Error; err != nil {
		t.Fatalf("created member %s not found: %v", name, err)
	}
	return member
}

func TestCreateTeamMembersAssignsSequentialDisplayOrder(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	a := createMember(t, api, "alice")
	b := createMember(t, api, "bob")
	d := createMember(t, api, "dana")

	if a.DisplayOrder != 1 || b.DisplayOrder != 2 || d.DisplayOrder != 3 {
		t.Errorf("expected display orders 1,2,3 got %d,%d,%d",
			a.DisplayOrder, b.DisplayOrder, d.DisplayOrder)
	}
}

func TestReorderTeamMembersIsIdempotent(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	a := createMember(t, api, "alice")
	b := createMember(t, api, "bob")
	d := createMember(t, api, "dana")

	order := map[string]interface{}{"ordered_ids": []uint{d.ID, a.ID, b.ID}}

	for i := 0; i < 2; i++ {
		req := newJSONRequest(t, http.MethodPost, "/team-members/reorder", order)
		c, w := testContext(req)
		api.ReorderTeamMembers(c)
		if w.Code != http.StatusOK {
			t.Fatalf("reorder attempt %d failed: %d %s", i, w.Code, w.Body.String())
		}

		var members []models.TeamMember
		if err := api.DB.Order("display_order").Find(&members).Error; err != nil {
			t.Fatalf("failed to list members: %v", err)
		}
		got := []uint{members[0].ID, members[1].ID, members[2].ID}
		want := []uint{d.ID, a.ID, b.ID}
		for j := range want {
			if got[j] != want[j] {
				t.Errorf("attempt %d: position %d expected id %d, got %d", i, j, want[j], got[j])
			}
		}
	}
}

func TestUpdateTeamMemberNotFound(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	req := newJSONRequest(t, http.MethodPut, "/team-members/999", map[string]interface{}{
		"name": "ghost",
	})
	c, w := testContext(req, gin.Param{Key: "id", Value: "999"})
	api.UpdateTeamMember(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestDeleteTeamMemberNotFound(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	req := newJSONRequest(t, http.MethodDelete, "/team-members/999", nil)
	c, w := testContext(req, gin.Param{Key: "id", Value: "999"})
	api.DeleteTeamMember(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestTeamMemberSpecialtiesRoundTrip(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	createMember(t, api, "alice")

	req := newJSONRequest(t, http.MethodGet, "/team-members", nil)
	c, w := testContext(req)
	api.GetTeamMembers(c)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	members := decodeList(t, w)
	if len(members) != 1 {
		t.Fatalf("expected 1 member, got %d", len(members))
	}
	specialties, ok := members[0]["specialties"].([]interface{})
	if !ok || len(specialties) != 2 {
		t.Errorf("expected 2 specialties, got %v", members[0]["specialties"])
	}
}
