// controllers/order.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"minimind-backend/models"
	"minimind-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderInput struct {
	OrderID      string `json:"order_id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone"`
	Company      string `json:"company"`
	Message      string `json:"message"`
	Budget       string `json:"budget"`
	Timeline     string `json:"timeline"`
	PackageName  string `json:"package_name" binding:"required"`
	PackagePrice string `json:"package_price" binding:"required"`
	Status       string `json:"status"`
}

// CreateOrder is public: the checkout form posts here. The admin email and
// SMS alerts are fire-and-forget; the inserted row is always returned even
// when neither channel is configured.
func (api *API) CreateOrder(c *gin.Context) {
	var input OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	status := input.Status
	if status == "" {
		status = "pending"
	}

	order := models.Order{
		OrderID:      input.OrderID,
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Company:      input.Company,
		Message:      input.Message,
		Budget:       input.Budget,
		Timeline:     input.Timeline,
		PackageName:  input.PackageName,
		PackagePrice: input.PackagePrice,
		Status:       status,
		CreatedAt:    time.Now().UTC(),
	}
	if err := api.DB.Create(&order).Error; err != nil {
		log.Printf("Failed to create order: %v", err)
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	go api.Mailer.SendOrderNotification(order)
	if api.Notifier != nil {
		go api.Notifier.NotifyNewOrder(order)
	}

	c.JSON(http.StatusOK, order)
}

func (api *API) GetOrders(c *gin.Context) {
	var orders []models.Order
	if err := api.DB.Order("created_at desc").Find(&orders).Error; err != nil {
		log.Printf("Failed to get all orders: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (api *API) GetOrder(c *gin.Context) {
	orderID := c.Param("order_id")

	var order models.Order
	if err := api.DB.Where("order_id = ?", orderID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Order with id "+orderID+" not found.")
			return
		}
		log.Printf("Failed to get order %s: %v", orderID, err)
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus takes the new status as a query parameter, matching the
// dashboard's existing call shape.
func (api *API) UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("order_id")

	status := c.Query("status")
	if status == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "status query parameter is required")
		return
	}

	result := api.DB.Model(&models.Order{}).Where("order_id = ?", orderID).Update("status", status)
	if result.Error != nil {
		log.Printf("Failed to update order %s: %v", orderID, result.Error)
		utils.RespondWithError(c, http.StatusInternalServerError, result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Order with id "+orderID+" not found.")
		return
	}

	var order models.Order
	if err := api.DB.Where("order_id = ?", orderID).First(&order).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, order)
}

func (api *API) DeleteOrder(c *gin.Context) {
	orderID := c.Param("order_id")

	result := api.DB.Where("order_id = ?", orderID).Delete(&models.Order{})
	if result.Error != nil {
		log.Printf("Failed to delete order %s: %v", orderID, result.Error)
		utils.RespondWithError(c, http.StatusInternalServerError, result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Order with id "+orderID+" not found.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
