package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/food-order-app/models"
)

func TestCreateRestaurantAndMenuUpsert(t *testing.T) {
	db, r := setupTestApp(t, "ctrl_restaurant")
	_, ownerToken := createUser(t, db, "owner@example.com", models.UserTypeRestaurateur)

	w := doJSON(r, http.MethodPost, "/restaurants", ownerToken, map[string]interface{}{
		"name":        "Da Mario",
		"description": "Cucina casalinga",
		"phone":       "0123456",
		"vat_number":  "IT0001",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	restaurantID := uint(decodeData(t, w)["id"].(float64))

	// Satu restaurateur hanya boleh punya satu restoran
	w = doJSON(r, http.MethodPost, "/restaurants", ownerToken, map[string]interface{}{"name": "Secondo"})
	assert.Equal(t, http.StatusConflict, w.Code)

	meal := models.Meal{Name: "Margherita", Category: "Pizza"}
	assert.NoError(t, db.Create(&meal).Error)

	menuURL := fmt.Sprintf("/restaurants/%d/menu", restaurantID)

	// Tambah entry baru
	w = doJSON(r, http.MethodPost, menuURL, ownerToken, map[string]interface{}{
		"meal_id":          meal.ID,
		"price":            10.0,
		"preparation_time": 15,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// Upsert pada meal yang sama memperbarui entry, tidak menduplikasi
	w = doJSON(r, http.MethodPost, menuURL, ownerToken, map[string]interface{}{
		"meal_id":          meal.ID,
		"price":            12.5,
		"preparation_time": 20,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var items []models.MenuItem
	assert.NoError(t, db.Where("restaurant_id = ?", restaurantID).Find(&items).Error)
	assert.Len(t, items, 1)
	assert.Equal(t, 12.5, items[0].Price)
	assert.Equal(t, 20, items[0].PreparationTime)

	// Meal yang tidak ada di katalog global ditolak
	w = doJSON(r, http.MethodPost, menuURL, ownerToken, map[string]interface{}{
		"meal_id":          9999,
		"price":            5.0,
		"preparation_time": 5,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMenuUpsertForbiddenForNonOwner(t *testing.T) {
	db, r := setupTestApp(t, "ctrl_menuforbidden")
	owner, _ := createUser(t, db, "owner@example.com", models.UserTypeRestaurateur)
	_, otherToken := createUser(t, db, "other@example.com", models.UserTypeRestaurateur)

	restaurant := models.Restaurant{OwnerID: owner.ID, Name: "Da Mario"}
	assert.NoError(t, db.Create(&restaurant).Error)
	meal := models.Meal{Name: "Margherita", Category: "Pizza"}
	assert.NoError(t, db.Create(&meal).Error)

	w := doJSON(r, http.MethodPost, fmt.Sprintf("/restaurants/%d/menu", restaurant.ID), otherToken, map[string]interface{}{
		"meal_id":          meal.ID,
		"price":            10.0,
		"preparation_time": 15,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestStatisticsEndpointOwnerOnly(t *testing.T) {
	db, r := setupTestApp(t, "ctrl_stats")
	owner, ownerToken := createUser(t, db, "owner@example.com", models.UserTypeRestaurateur)
	_, otherToken := createUser(t, db, "other@example.com", models.UserTypeRestaurateur)
	customer, _ := createUser(t, db, "cust@example.com", models.UserTypeCustomer)

	restaurant := models.Restaurant{OwnerID: owner.ID, Name: "Da Mario"}
	assert.NoError(t, db.Create(&restaurant).Error)
	meal := models.Meal{Name: "Margherita", Category: "Pizza"}
	assert.NoError(t, db.Create(&meal).Error)

	order := models.Order{
		CustomerID: customer.ID, RestaurantID: restaurant.ID,
		TotalAmount: 20.0, Status: models.OrderStatusDelivered,
		DeliveryType: models.DeliveryTypePickup, EstimatedPreparationTime: 30,
		Items: []models.OrderItem{{MealID: meal.ID, Quantity: 2, Price: 10.0, PreparationTime: 15}},
	}
	assert.NoError(t, db.Create(&order).Error)

	url := fmt.Sprintf("/restaurants/%d/statistics", restaurant.ID)

	w := doJSON(r, http.MethodGet, url, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodGet, url, ownerToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	assert.Equal(t, float64(1), data["total_orders"])
	assert.Equal(t, 20.0, data["total_revenue"])
	assert.Equal(t, 20.0, data["average_order_value"])
}

func TestPublicRestaurantListing(t *testing.T) {
	db, r := setupTestApp(t, "ctrl_public")
	owner, _ := createUser(t, db, "owner@example.com", models.UserTypeRestaurateur)

	restaurant := models.Restaurant{OwnerID: owner.ID, Name: "Da Mario", Address: models.Address{City: "Roma"}}
	assert.NoError(t, db.Create(&restaurant).Error)

	// Listing dan pencarian terbuka tanpa token
	w := doJSON(r, http.MethodGet, "/restaurants", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/restaurants/search?q=Roma", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.Restaurant `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
}

func TestSearchRestaurantsByDish(t *testing.T) {
	db, r := setupTestApp(t, "ctrl_dishsearch")
	owner, _ := createUser(t, db, "owner@example.com", models.UserTypeRestaurateur)

	restaurant := models.Restaurant{OwnerID: owner.ID, Name: "Da Mario"}
	assert.NoError(t, db.Create(&restaurant).Error)
	meal := models.Meal{Name: "Carbonara", Category: "Pasta"}
	assert.NoError(t, db.Create(&meal).Error)
	item := models.MenuItem{RestaurantID: restaurant.ID, MealID: meal.ID, Price: 9.0, PreparationTime: 10, IsAvailable: true}
	assert.NoError(t, db.Create(&item).Error)

	w := doJSON(r, http.MethodGet, "/restaurants/search/dish?dishName=Carbonara", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/restaurants/search/dish?dishName=Sushi", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodGet, "/restaurants/search/dish", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
