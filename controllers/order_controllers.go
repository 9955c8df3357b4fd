package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/food-order-app/models"
	"github.com/yeremiapane/food-order-app/services"
	"github.com/yeremiapane/food-order-app/utils"
)

type OrderController struct {
	DB     *gorm.DB
	Orders *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{
		DB:     db,
		Orders: services.NewOrderService(db),
	}
}

// CreateOrder -> buat order baru dari menu restoran, dengan estimasi waktu tunggu
func (oc *OrderController) CreateOrder(c *gin.Context) {
	actorID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var input services.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, waitEstimate, err := oc.Orders.CreateOrder(actorID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Order %d created for restaurant %d (total=%.2f, est=%dmin, wait=%dmin)",
		order.ID, order.RestaurantID, order.TotalAmount, order.EstimatedPreparationTime, waitEstimate)

	utils.RespondJSON(c, http.StatusCreated, "Order successfully placed", gin.H{
		"order":               order,
		"estimated_wait_time": waitEstimate,
	})
}

// GetUserOrders -> seluruh order milik customer yang sedang login
func (oc *OrderController) GetUserOrders(c *gin.Context) {
	actorID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var orders []models.Order
	if err := oc.DB.Preload("Items.Meal").Where("customer_id = ?", actorID).Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetUserOrderHistory -> hanya order yang sudah selesai
func (oc *OrderController) GetUserOrderHistory(c *gin.Context) {
	actorID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var orders []models.Order
	err := oc.DB.Preload("Items.Meal").
		Where("customer_id = ? AND status = ?", actorID, models.OrderStatusDelivered).
		Find(&orders).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order history", orders)
}

func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var order models.Order
	if err := oc.DB.Preload("Items").First(&order, id).Error; err != nil {
		respondServiceError(c, services.ErrOrderNotFound)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// UpdateOrderStatus -> transisi status divalidasi terhadap role actor dan
// delivery type order oleh state machine di services
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	actorID, role, ok := currentUser(c)
	if !ok {
		return
	}

	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.UpdateStatus(uint(id), actorID, role, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}

// DeleteOrder -> penghapusan tanpa cek status (administrative override)
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var order models.Order
	if err := oc.DB.First(&order, id).Error; err != nil {
		respondServiceError(c, services.ErrOrderNotFound)
		return
	}

	if err := oc.DB.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := oc.DB.Delete(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order deleted successfully", nil)
}
