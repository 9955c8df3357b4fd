package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yeremiapane/food-order-app/models"
)

type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

type OrderItemRequest struct {
	MealID   uint `json:"meal_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required"`
}

type CreateOrderInput struct {
	RestaurantID    uint               `json:"restaurant_id" binding:"required"`
	Items           []OrderItemRequest `json:"items" binding:"required"`
	DeliveryType    string             `json:"delivery_type" binding:"required"`
	DeliveryAddress *models.Address    `json:"delivery_address,omitempty"`
}

// ResolveItems mencocokkan setiap permintaan meal dengan entry menu restoran
// saat ini. Gagal pada pelanggaran pertama, tidak ada order parsial.
func (s *OrderService) ResolveItems(restaurantID uint, reqs []OrderItemRequest) ([]models.OrderItem, error) {
	var restaurant models.Restaurant
	if err := s.DB.Preload("Menu").First(&restaurant, restaurantID).Error; err != nil {
		return nil, ErrRestaurantNotFound
	}

	byMeal := make(map[uint]models.MenuItem, len(restaurant.Menu))
	for _, entry := range restaurant.Menu {
		byMeal[entry.MealID] = entry
	}

	items := make([]models.OrderItem, 0, len(reqs))
	for _, req := range reqs {
		if req.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
		}

		entry, ok := byMeal[req.MealID]
		if !ok || !entry.IsAvailable {
			return nil, ErrMealUnavailable
		}

		items = append(items, models.OrderItem{
			MealID:          req.MealID,
			Quantity:        req.Quantity,
			Price:           entry.Price,
			PreparationTime: entry.PreparationTime,
		})
	}

	return items, nil
}

// QueueWaitEstimate menjumlahkan sisa waktu persiapan semua order yang masih
// pending (ordered/preparing) di restoran. Model antrian dapur tunggal yang
// disederhanakan: estimasi batas atas, bukan garansi.
func (s *OrderService) QueueWaitEstimate(restaurantID uint, now time.Time) (int, error) {
	var pending []models.Order
	err := s.DB.
		Where("restaurant_id = ? AND status IN ?", restaurantID,
			[]string{models.OrderStatusOrdered, models.OrderStatusPreparing}).
		Find(&pending).Error
	if err != nil {
		return 0, err
	}

	queueTime := 0
	for _, order := range pending {
		elapsedMinutes := int(now.Sub(order.CreatedAt).Minutes())
		remaining := order.EstimatedPreparationTime - elapsedMinutes
		if remaining > 0 {
			queueTime += remaining
		}
	}

	return queueTime, nil
}

// CreateOrder membuat order baru: resolve item, hitung total + waktu
// persiapan, lalu simpan. Mengembalikan order dan estimasi tunggu total
// (antrian + waktu persiapan order ini) untuk ditampilkan ke customer.
func (s *OrderService) CreateOrder(customerID uint, input CreateOrderInput) (*models.Order, int, error) {
	if len(input.Items) == 0 {
		return nil, 0, fmt.Errorf("%w: order must contain at least one item", ErrValidation)
	}

	switch input.DeliveryType {
	case models.DeliveryTypePickup:
	case models.DeliveryTypeDelivery:
		if input.DeliveryAddress == nil {
			return nil, 0, fmt.Errorf("%w: delivery address is required for delivery orders", ErrValidation)
		}
	default:
		return nil, 0, fmt.Errorf("%w: delivery type must be 'pickup' or 'delivery'", ErrValidation)
	}

	items, err := s.ResolveItems(input.RestaurantID, input.Items)
	if err != nil {
		return nil, 0, err
	}

	totalAmount := 0.0
	prepTime := 0
	for _, item := range items {
		totalAmount += item.Price * float64(item.Quantity)
		prepTime += item.PreparationTime * item.Quantity
	}

	// Catatan: pembacaan pending orders tidak terisolasi dari pembuatan order
	// lain yang berbarengan; dua order pada saat yang sama bisa saling tidak
	// terhitung di estimasi antrian masing-masing.
	queueTime, err := s.QueueWaitEstimate(input.RestaurantID, time.Now())
	if err != nil {
		return nil, 0, err
	}

	order := models.Order{
		CustomerID:               customerID,
		RestaurantID:             input.RestaurantID,
		Items:                    items,
		TotalAmount:              totalAmount,
		Status:                   models.OrderStatusOrdered,
		DeliveryType:             input.DeliveryType,
		EstimatedPreparationTime: prepTime,
	}
	if input.DeliveryAddress != nil {
		order.DeliveryAddress = *input.DeliveryAddress
	}

	if err := s.DB.Create(&order).Error; err != nil {
		return nil, 0, err
	}

	return &order, queueTime + prepTime, nil
}
