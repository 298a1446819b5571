package main

import (
	"fmt"
	"log"
	"os"

	"minimind-backend/config"
	"minimind-backend/controllers"
	"minimind-backend/models"
	"minimind-backend/routes"
	"minimind-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db := config.ConnectDB()

	db.AutoMigrate(
		&models.User{},
		&models.Content{},
		&models.ContactInfo{},
		&models.ReviewsStat{},
		&models.HomeContent{},
		&models.HeroImage{},
		&models.HomeStat{},
		&models.HomeServicePreview{},
		&models.Service{},
		&models.TeamMember{},
		&models.PortfolioCategory{},
		&models.PortfolioProject{},
		&models.Order{},
		&models.Package{},
		&models.Review{},
		&models.Message{},
	)

	mailer := services.NewMailer(services.MailerConfigFromEnv())
	notifier := services.NewNotifier()

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	api := controllers.NewAPI(db, mailer, notifier, uploadDir, os.Getenv("PUBLIC_BASE_URL"))

	if os.Getenv("DIGEST_ENABLED") != "false" {
		services.NewDigestService(db, mailer).StartScheduler()
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter(api)
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
