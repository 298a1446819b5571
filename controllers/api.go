// controllers/api.go
package controllers

import (
	"net/http"

	"minimind-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// API bundles the dependencies shared by all route handlers. Everything in
// here is constructed once at startup and read-only afterwards.
type API struct {
	DB            *gorm.DB
	Mailer        *services.Mailer
	Notifier      *services.Notifier
	UploadDir     string
	PublicBaseURL string
}

func NewAPI(db *gorm.DB, mailer *services.Mailer, notifier *services.Notifier, uploadDir, publicBaseURL string) *API {
	return &API{
		DB:            db,
		Mailer:        mailer,
		Notifier:      notifier,
		UploadDir:     uploadDir,
		PublicBaseURL: publicBaseURL,
	}
}

func (api *API) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"Hello": "Minimind API"})
}
