package controllers

import (
	"net/http"
	"testing"

	"minimind-backend/models"

	"github.com/gin-gonic/gin"
)

func TestPackageNameTitleRename(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	req := newJSONRequest(t, http.MethodPost, "/packages", map[string]interface{}{
		"name":     "Growth",
		"price":    "$999",
		"features": []string{"5 pages", "SEO"},
	})
	c, w := testContext(req)
	api.CreatePackage(c)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["name"] != "Growth" {
		t.Errorf("expected response name Growth, got %v", body["name"])
	}

	// Stored under the title column.
	var pkg models.Package
	if err := api.DB.First(&pkg).Error; err != nil {
		t.Fatalf("package not found: %v", err)
	}
	if pkg.Title != "Growth" {
		t.Errorf("expected stored title Growth, got %q", pkg.Title)
	}

	list := newJSONRequest(t, http.MethodGet, "/packages", nil)
	c, w = testContext(list)
	api.GetPackages(c)
	packages := decodeList(t, w)
	if len(packages) != 1 || packages[0]["name"] != "Growth" {
		t.Errorf("expected listing with name Growth, got %v", packages)
	}
}

func TestUpdatePackageRenamesName(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	pkg := models.Package{Title: "Starter", Price: "$499", Features: models.StringList{"1 page"}}
	api.DB.Create(&pkg)

	req := newJSONRequest(t, http.MethodPut, "/packages/1", map[string]interface{}{
		"name": "Starter Plus",
	})
	c, w := testContext(req, gin.Param{Key: "id", Value: "1"})
	api.UpdatePackage(c)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var updated models.Package
	api.DB.First(&updated, pkg.ID)
	if updated.Title != "Starter Plus" {
		t.Errorf("expected stored title Starter Plus, got %q", updated.Title)
	}
}

func TestUpdatePackageNotFound(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	req := newJSONRequest(t, http.MethodPut, "/packages/12", map[string]interface{}{
		"name": "Ghost",
	})
	c, w := testContext(req, gin.Param{Key: "id", Value: "12"})
	api.UpdatePackage(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}
