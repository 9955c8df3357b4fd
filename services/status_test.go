package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/yeremiapane/food-order-app/models"
	"github.com/yeremiapane/food-order-app/services"
)

func TestValidateTransitionTable(t *testing.T) {
	cases := []struct {
		name         string
		role         string
		current      string
		requested    string
		deliveryType string
		wantErr      bool
	}{
		{"restaurateur starts preparing", models.UserTypeRestaurateur, models.OrderStatusOrdered, models.OrderStatusPreparing, models.DeliveryTypeDelivery, false},
		{"restaurateur starts preparing pickup", models.UserTypeRestaurateur, models.OrderStatusOrdered, models.OrderStatusPreparing, models.DeliveryTypePickup, false},
		{"restaurateur sends out delivery", models.UserTypeRestaurateur, models.OrderStatusPreparing, models.OrderStatusDelivering, models.DeliveryTypeDelivery, false},
		{"delivering requires preparing first", models.UserTypeRestaurateur, models.OrderStatusOrdered, models.OrderStatusDelivering, models.DeliveryTypeDelivery, true},
		{"pickup orders never delivering", models.UserTypeRestaurateur, models.OrderStatusPreparing, models.OrderStatusDelivering, models.DeliveryTypePickup, true},
		{"customer confirms delivery", models.UserTypeCustomer, models.OrderStatusDelivering, models.OrderStatusDelivered, models.DeliveryTypeDelivery, false},
		{"customer collects pickup", models.UserTypeCustomer, models.OrderStatusPreparing, models.OrderStatusDelivered, models.DeliveryTypePickup, false},
		{"pickup not ready yet", models.UserTypeCustomer, models.OrderStatusOrdered, models.OrderStatusDelivered, models.DeliveryTypePickup, true},
		{"customer cannot start preparing", models.UserTypeCustomer, models.OrderStatusOrdered, models.OrderStatusPreparing, models.DeliveryTypeDelivery, true},
		{"restaurateur cannot mark delivered", models.UserTypeRestaurateur, models.OrderStatusDelivering, models.OrderStatusDelivered, models.DeliveryTypeDelivery, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := services.ValidateTransition(tc.role, tc.current, tc.requested, tc.deliveryType)
			if tc.wantErr {
				assert.ErrorIs(t, err, services.ErrInvalidTransition)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func seedOrder(t *testing.T, db *gorm.DB, customerID, restaurantID uint, status, deliveryType string) models.Order {
	order := models.Order{
		CustomerID:               customerID,
		RestaurantID:             restaurantID,
		TotalAmount:              20.0,
		Status:                   status,
		DeliveryType:             deliveryType,
		EstimatedPreparationTime: 30,
	}
	assert.NoError(t, db.Create(&order).Error)
	return order
}

func TestUpdateStatusByOwner(t *testing.T) {
	db := setupTestDB(t, "status_owner")
	restaurant, _ := seedRestaurant(t, db)
	customer := seedCustomer(t, db)
	svc := services.NewOrderService(db)

	order := seedOrder(t, db, customer.ID, restaurant.ID, models.OrderStatusOrdered, models.DeliveryTypeDelivery)

	updated, err := svc.UpdateStatus(order.ID, restaurant.OwnerID, models.UserTypeRestaurateur, models.OrderStatusPreparing)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusPreparing, updated.Status)

	var persisted models.Order
	assert.NoError(t, db.First(&persisted, order.ID).Error)
	assert.Equal(t, models.OrderStatusPreparing, persisted.Status)
}

func TestUpdateStatusForbiddenForNonOwner(t *testing.T) {
	db := setupTestDB(t, "status_nonowner")
	restaurant, _ := seedRestaurant(t, db)
	customer := seedCustomer(t, db)
	svc := services.NewOrderService(db)

	intruder := models.User{Name: "Luigi", Surname: "Verdi", Email: "luigi@example.com", Password: "x", UserType: models.UserTypeRestaurateur}
	assert.NoError(t, db.Create(&intruder).Error)

	order := seedOrder(t, db, customer.ID, restaurant.ID, models.OrderStatusOrdered, models.DeliveryTypeDelivery)

	_, err := svc.UpdateStatus(order.ID, intruder.ID, models.UserTypeRestaurateur, models.OrderStatusPreparing)
	assert.ErrorIs(t, err, services.ErrForbidden)

	// Kegagalan tidak boleh mengubah apapun
	var persisted models.Order
	assert.NoError(t, db.First(&persisted, order.ID).Error)
	assert.Equal(t, models.OrderStatusOrdered, persisted.Status)
}

func TestCustomerCannotCompleteOthersOrder(t *testing.T) {
	db := setupTestDB(t, "status_othercustomer")
	restaurant, _ := seedRestaurant(t, db)
	customer := seedCustomer(t, db)
	svc := services.NewOrderService(db)

	other := models.User{Name: "Carla", Surname: "Neri", Email: "carla@example.com", Password: "x", UserType: models.UserTypeCustomer}
	assert.NoError(t, db.Create(&other).Error)

	order := seedOrder(t, db, customer.ID, restaurant.ID, models.OrderStatusDelivering, models.DeliveryTypeDelivery)

	_, err := svc.UpdateStatus(order.ID, other.ID, models.UserTypeCustomer, models.OrderStatusDelivered)
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestPickupOrderNeverDelivering(t *testing.T) {
	db := setupTestDB(t, "status_pickup")
	restaurant, _ := seedRestaurant(t, db)
	customer := seedCustomer(t, db)
	svc := services.NewOrderService(db)

	order := seedOrder(t, db, customer.ID, restaurant.ID, models.OrderStatusPreparing, models.DeliveryTypePickup)

	returned, err := svc.UpdateStatus(order.ID, restaurant.OwnerID, models.UserTypeRestaurateur, models.OrderStatusDelivering)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)
	// Status lama dilaporkan kembali apa adanya
	assert.Equal(t, models.OrderStatusPreparing, returned.Status)
}

// Meminta status yang sudah berlaku adalah no-op yang sukses untuk order
// delivery; untuk pickup, 'delivered' kedua kalinya gagal karena order sudah
// tidak lagi preparing.
func TestReapplyingSameStatus(t *testing.T) {
	db := setupTestDB(t, "status_idempotent")
	restaurant, _ := seedRestaurant(t, db)
	customer := seedCustomer(t, db)
	svc := services.NewOrderService(db)

	delivery := seedOrder(t, db, customer.ID, restaurant.ID, models.OrderStatusDelivering, models.DeliveryTypeDelivery)

	first, err := svc.UpdateStatus(delivery.ID, customer.ID, models.UserTypeCustomer, models.OrderStatusDelivered)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, first.Status)

	second, err := svc.UpdateStatus(delivery.ID, customer.ID, models.UserTypeCustomer, models.OrderStatusDelivered)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, second.Status)

	pickup := seedOrder(t, db, customer.ID, restaurant.ID, models.OrderStatusPreparing, models.DeliveryTypePickup)

	_, err = svc.UpdateStatus(pickup.ID, customer.ID, models.UserTypeCustomer, models.OrderStatusDelivered)
	assert.NoError(t, err)

	_, err = svc.UpdateStatus(pickup.ID, customer.ID, models.UserTypeCustomer, models.OrderStatusDelivered)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	db := setupTestDB(t, "status_missing")
	restaurant, _ := seedRestaurant(t, db)
	svc := services.NewOrderService(db)

	_, err := svc.UpdateStatus(404, restaurant.OwnerID, models.UserTypeRestaurateur, models.OrderStatusPreparing)
	assert.ErrorIs(t, err, services.ErrOrderNotFound)
}
