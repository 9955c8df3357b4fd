package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/food-order-app/models"
	"github.com/yeremiapane/food-order-app/services"
	"github.com/yeremiapane/food-order-app/utils"
)

type RestaurantController struct {
	DB    *gorm.DB
	Stats *services.StatisticsService
}

func NewRestaurantController(db *gorm.DB) *RestaurantController {
	return &RestaurantController{
		DB:    db,
		Stats: services.NewStatisticsService(db),
	}
}

func (rc *RestaurantController) GetAllRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	if err := rc.DB.Preload("Menu").Find(&restaurants).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of restaurants", restaurants)
}

func (rc *RestaurantController) GetRestaurant(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var restaurant models.Restaurant
	if err := rc.DB.Preload("Menu").First(&restaurant, id).Error; err != nil {
		respondServiceError(c, services.ErrRestaurantNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Restaurant detail", restaurant)
}

func (rc *RestaurantController) GetRestaurantMenu(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var restaurant models.Restaurant
	if err := rc.DB.Preload("Menu.Meal").First(&restaurant, id).Error; err != nil {
		respondServiceError(c, services.ErrRestaurantNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Restaurant menu", restaurant.Menu)
}

// SearchRestaurants -> pencarian bebas pada nama, kota dan deskripsi
func (rc *RestaurantController) SearchRestaurants(c *gin.Context) {
	q := c.Query("q")

	query := rc.DB.Preload("Menu")
	if q != "" {
		like := "%" + q + "%"
		query = query.Where("name LIKE ? OR address_city LIKE ? OR description LIKE ?", like, like, like)
	}

	var restaurants []models.Restaurant
	if err := query.Find(&restaurants).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Search results", restaurants)
}

// SearchRestaurantsByDish -> restoran yang punya meal dengan nama tertentu di menunya
func (rc *RestaurantController) SearchRestaurantsByDish(c *gin.Context) {
	dishName := c.Query("dishName")
	if dishName == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("dish name parameter is required"))
		return
	}

	var mealIDs []uint
	if err := rc.DB.Model(&models.Meal{}).Where("name LIKE ?", "%"+dishName+"%").Pluck("id", &mealIDs).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if len(mealIDs) == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("no dishes found with this name"))
		return
	}

	var restaurantIDs []uint
	if err := rc.DB.Model(&models.MenuItem{}).Where("meal_id IN ?", mealIDs).Distinct().Pluck("restaurant_id", &restaurantIDs).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if len(restaurantIDs) == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("no restaurants found serving this dish"))
		return
	}

	var restaurants []models.Restaurant
	if err := rc.DB.Preload("Menu.Meal").Find(&restaurants, restaurantIDs).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurants serving this dish", restaurants)
}

// CreateRestaurant -> satu restoran per restaurateur
func (rc *RestaurantController) CreateRestaurant(c *gin.Context) {
	actorID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		Name        string         `json:"name" binding:"required"`
		Description string         `json:"description"`
		Phone       string         `json:"phone"`
		VatNumber   string         `json:"vat_number"`
		Address     models.Address `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var existing models.Restaurant
	if err := rc.DB.Where("owner_id = ?", actorID).First(&existing).Error; err == nil {
		utils.RespondError(c, http.StatusConflict, errors.New("restaurateur already owns a restaurant"))
		return
	}

	restaurant := models.Restaurant{
		OwnerID:     actorID,
		Name:        req.Name,
		Description: req.Description,
		Phone:       req.Phone,
		VatNumber:   req.VatNumber,
		Address:     req.Address,
	}

	if err := rc.DB.Create(&restaurant).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Restaurant %d created by user %d", restaurant.ID, actorID)
	utils.RespondJSON(c, http.StatusCreated, "Restaurant created", restaurant)
}

// findOwnedRestaurant memuat restoran dan memastikan actor adalah pemiliknya
func (rc *RestaurantController) findOwnedRestaurant(c *gin.Context, actorID uint) (*models.Restaurant, bool) {
	id, _ := strconv.Atoi(c.Param("id"))

	var restaurant models.Restaurant
	if err := rc.DB.First(&restaurant, id).Error; err != nil {
		respondServiceError(c, services.ErrRestaurantNotFound)
		return nil, false
	}

	if restaurant.OwnerID != actorID {
		respondServiceError(c, services.ErrForbidden)
		return nil, false
	}

	return &restaurant, true
}

func (rc *RestaurantController) UpdateRestaurant(c *gin.Context) {
	actorID, _, ok := currentUser(c)
	if !ok {
		return
	}

	restaurant, ok := rc.findOwnedRestaurant(c, actorID)
	if !ok {
		return
	}

	var req struct {
		Name        *string         `json:"name"`
		Description *string         `json:"description"`
		Phone       *string         `json:"phone"`
		VatNumber   *string         `json:"vat_number"`
		Address     *models.Address `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		restaurant.Name = *req.Name
	}
	if req.Description != nil {
		restaurant.Description = *req.Description
	}
	if req.Phone != nil {
		restaurant.Phone = *req.Phone
	}
	if req.VatNumber != nil {
		restaurant.VatNumber = *req.VatNumber
	}
	if req.Address != nil {
		restaurant.Address = *req.Address
	}

	if err := rc.DB.Save(restaurant).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant updated successfully", restaurant)
}

func (rc *RestaurantController) DeleteRestaurant(c *gin.Context) {
	actorID, _, ok := currentUser(c)
	if !ok {
		return
	}

	restaurant, ok := rc.findOwnedRestaurant(c, actorID)
	if !ok {
		return
	}

	if err := rc.DB.Where("restaurant_id = ?", restaurant.ID).Delete(&models.MenuItem{}).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := rc.DB.Delete(restaurant).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant deleted successfully", nil)
}

// UpsertMenuItem -> tambah atau perbarui satu entry menu restoran.
// Baca-ubah-tulis tanpa lock: edit menu berbarengan pada restoran yang sama
// berlaku last-write-wins.
func (rc *RestaurantController) UpsertMenuItem(c *gin.Context) {
	actorID, _, ok := currentUser(c)
	if !ok {
		return
	}

	restaurant, ok := rc.findOwnedRestaurant(c, actorID)
	if !ok {
		return
	}

	var req struct {
		MealID          uint    `json:"meal_id" binding:"required"`
		Price           float64 `json:"price" binding:"required"`
		PreparationTime int     `json:"preparation_time" binding:"required"`
		IsAvailable     *bool   `json:"is_available"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var meal models.Meal
	if err := rc.DB.First(&meal, req.MealID).Error; err != nil {
		respondServiceError(c, services.ErrMealNotFound)
		return
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	var item models.MenuItem
	err := rc.DB.Where("restaurant_id = ? AND meal_id = ?", restaurant.ID, req.MealID).First(&item).Error
	switch {
	case err == nil:
		item.Price = req.Price
		item.PreparationTime = req.PreparationTime
		item.IsAvailable = isAvailable
		err = rc.DB.Save(&item).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.MenuItem{
			RestaurantID:    restaurant.ID,
			MealID:          req.MealID,
			Price:           req.Price,
			PreparationTime: req.PreparationTime,
			IsAvailable:     isAvailable,
		}
		err = rc.DB.Create(&item).Error
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var menu []models.MenuItem
	if err := rc.DB.Where("restaurant_id = ?", restaurant.ID).Find(&menu).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu updated", menu)
}

func (rc *RestaurantController) DeleteMenuItem(c *gin.Context) {
	actorID, _, ok := currentUser(c)
	if !ok {
		return
	}

	restaurant, ok := rc.findOwnedRestaurant(c, actorID)
	if !ok {
		return
	}

	mealID, _ := strconv.Atoi(c.Param("meal_id"))

	result := rc.DB.Where("restaurant_id = ? AND meal_id = ?", restaurant.ID, mealID).Delete(&models.MenuItem{})
	if result.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("meal is not on this restaurant's menu"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Meal removed from the restaurant's menu", nil)
}

// GetStatistics -> rollup pendapatan/jumlah order/meal terlaris (hanya pemilik)
func (rc *RestaurantController) GetStatistics(c *gin.Context) {
	actorID, _, ok := currentUser(c)
	if !ok {
		return
	}

	id, _ := strconv.Atoi(c.Param("id"))

	stats, err := rc.Stats.RestaurantStatistics(uint(id), actorID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant statistics", stats)
}
