package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/food-order-app/models"
	"github.com/yeremiapane/food-order-app/utils"
)

type MealController struct {
	DB *gorm.DB
}

func NewMealController(db *gorm.DB) *MealController {
	return &MealController{DB: db}
}

// GetAllMeals -> seluruh katalog meal global
func (mc *MealController) GetAllMeals(c *gin.Context) {
	var meals []models.Meal
	if err := mc.DB.Find(&meals).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of meals", meals)
}

func (mc *MealController) GetMealByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var meal models.Meal
	if err := mc.DB.First(&meal, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("meal not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Meal detail", meal)
}

// SearchMeals -> cari berdasarkan nama dan/atau kategori
func (mc *MealController) SearchMeals(c *gin.Context) {
	name := c.Query("name")
	category := c.Query("category")

	query := mc.DB.Model(&models.Meal{})
	if name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}
	if category != "" {
		query = query.Where("category LIKE ?", "%"+category+"%")
	}

	var meals []models.Meal
	if err := query.Find(&meals).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if len(meals) == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("no meal found with this criteria"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Search results", meals)
}

// CreateMeal -> tambah meal ke katalog global (restaurateur)
func (mc *MealController) CreateMeal(c *gin.Context) {
	var req struct {
		Name        string  `json:"name" binding:"required"`
		Category    string  `json:"category"`
		Area        string  `json:"area"`
		Description string  `json:"description"`
		ImageUrl    *string `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	meal := models.Meal{
		Name:        req.Name,
		Category:    req.Category,
		Area:        req.Area,
		Description: req.Description,
		ImageUrl:    req.ImageUrl,
	}

	if err := mc.DB.Create(&meal).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Meal created", meal)
}

func (mc *MealController) UpdateMeal(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var meal models.Meal
	if err := mc.DB.First(&meal, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("meal not found"))
		return
	}

	var req struct {
		Name        *string `json:"name"`
		Category    *string `json:"category"`
		Area        *string `json:"area"`
		Description *string `json:"description"`
		ImageUrl    *string `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		meal.Name = *req.Name
	}
	if req.Category != nil {
		meal.Category = *req.Category
	}
	if req.Area != nil {
		meal.Area = *req.Area
	}
	if req.Description != nil {
		meal.Description = *req.Description
	}
	if req.ImageUrl != nil {
		meal.ImageUrl = req.ImageUrl
	}

	if err := mc.DB.Save(&meal).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Meal updated", meal)
}

func (mc *MealController) DeleteMeal(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	result := mc.DB.Delete(&models.Meal{}, id)
	if result.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("meal not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Meal deleted successfully", nil)
}
