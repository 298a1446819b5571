package routes

import (
	"os"
	"strings"

	"minimind-backend/config"
	"minimind-backend/controllers"
	"minimind-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func allowedOrigins() []string {
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		parts := strings.Split(env, ",")
		origins := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
		return origins
	}
	return []string{
		"http://localhost:5174",
		"https://minimindcreatives.netlify.app",
	}
}

func SetupRouter(api *controllers.API) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	authRequired := utils.AuthMiddleware()

	r.GET("/", api.Root)
	r.POST("/signup", api.Signup)
	r.POST("/login", api.Login)

	r.Static("/uploads", api.UploadDir)

	// Content
	r.GET("/content/:key", api.GetContent)
	r.PUT("/content/:key", authRequired, api.UpdateContent)

	// Contact info
	r.GET("/contact-info", api.GetContactInfo)
	r.PUT("/contact-info", authRequired, api.UpdateContactInfo)

	// Reviews stats
	r.GET("/reviews-stats", api.GetReviewsStats)
	r.POST("/reviews-stats", authRequired, api.CreateReviewsStat)
	r.PUT("/reviews-stats/:id", authRequired, api.UpdateReviewsStat)
	r.DELETE("/reviews-stats/:id", authRequired, api.DeleteReviewsStat)

	// Home page aggregate
	r.GET("/home-page", api.GetHomePage)
	r.PUT("/home-page", authRequired, api.UpdateHomePage)

	// Services
	r.GET("/services", api.GetServices)
	r.POST("/services", authRequired, api.CreateService)
	r.PUT("/services/:id", authRequired, api.UpdateService)
	r.DELETE("/services/:id", authRequired, api.DeleteService)

	// Team members
	r.GET("/team-members", api.GetTeamMembers)
	r.POST("/team-members", authRequired, api.CreateTeamMember)
	r.POST("/team-members/reorder", authRequired, api.ReorderTeamMembers)
	r.PUT("/team-members/:id", authRequired, api.UpdateTeamMember)
	r.DELETE("/team-members/:id", authRequired, api.DeleteTeamMember)

	// Portfolio
	r.GET("/portfolio-categories", api.GetPortfolioCategories)
	r.POST("/portfolio-categories", authRequired, api.CreatePortfolioCategory)
	r.DELETE("/portfolio-categories/:id", authRequired, api.DeletePortfolioCategory)
	r.GET("/portfolio-projects", api.GetPortfolioProjects)
	r.POST("/portfolio-projects", authRequired, api.CreatePortfolioProject)
	r.PUT("/portfolio-projects/:id", authRequired, api.UpdatePortfolioProject)
	r.DELETE("/portfolio-projects/:id", authRequired, api.DeletePortfolioProject)

	// Orders
	r.POST("/orders", api.CreateOrder)
	r.GET("/orders", authRequired, api.GetOrders)
	r.GET("/orders/:order_id", authRequired, api.GetOrder)
	r.PUT("/orders/:order_id", authRequired, api.UpdateOrderStatus)
	r.DELETE("/orders/:order_id", authRequired, api.DeleteOrder)

	// Packages
	r.GET("/packages", api.GetPackages)
	r.POST("/packages", authRequired, api.CreatePackage)
	r.PUT("/packages/:id", authRequired, api.UpdatePackage)
	r.DELETE("/packages/:id", authRequired, api.DeletePackage)

	// Reviews
	r.POST("/reviews", api.CreateReview)
	r.GET("/reviews", api.GetPublicReviews)
	r.GET("/admin/reviews", authRequired, api.GetAllReviews)
	r.PUT("/reviews/:id", authRequired, api.UpdateReview)
	r.PUT("/reviews/:id/approve", authRequired, api.ApproveReview)
	r.DELETE("/reviews/:id", authRequired, api.DeleteReview)

	// Messages
	r.GET("/messages", authRequired, api.GetMessages)
	r.POST("/messages", api.CreateMessage)
	r.POST("/messages/reply", authRequired, api.ReplyToMessage)
	r.PUT("/messages/:id/read", authRequired, api.MarkMessageRead)
	r.DELETE("/messages/:id", authRequired, api.DeleteMessage)
	r.POST("/send-reply-email", authRequired, api.SendReplyEmail)

	// Image upload
	r.POST("/images/upload", authRequired, api.UploadImage)

	return r
}
