package services

import (
	"sort"

	"gorm.io/gorm"

	"github.com/yeremiapane/food-order-app/models"
)

type StatisticsService struct {
	DB *gorm.DB
}

func NewStatisticsService(db *gorm.DB) *StatisticsService {
	return &StatisticsService{DB: db}
}

type OrdersByStatus struct {
	Ordered    int64 `json:"ordered"`
	Preparing  int64 `json:"preparing"`
	Delivering int64 `json:"delivering"`
	Delivered  int64 `json:"delivered"`
}

type PopularMeal struct {
	Meal       models.Meal `json:"meal"`
	OrderCount int         `json:"order_count"`
}

type RestaurantStatistics struct {
	TotalOrders       int64          `json:"total_orders"`
	TotalRevenue      float64        `json:"total_revenue"`
	AverageOrderValue float64        `json:"average_order_value"`
	OrdersByStatus    OrdersByStatus `json:"orders_by_status"`
	PopularMeals      []PopularMeal  `json:"popular_meals"`
}

// RestaurantStatistics menghitung rollup read-only atas seluruh riwayat order
// restoran. Hanya pemilik restoran yang boleh melihat.
func (s *StatisticsService) RestaurantStatistics(restaurantID, actorID uint) (*RestaurantStatistics, error) {
	var restaurant models.Restaurant
	if err := s.DB.First(&restaurant, restaurantID).Error; err != nil {
		return nil, ErrRestaurantNotFound
	}

	if restaurant.OwnerID != actorID {
		return nil, ErrForbidden
	}

	var orders []models.Order
	if err := s.DB.Preload("Items").Where("restaurant_id = ?", restaurantID).Find(&orders).Error; err != nil {
		return nil, err
	}

	stats := RestaurantStatistics{
		TotalOrders:  int64(len(orders)),
		PopularMeals: []PopularMeal{},
	}

	quantityByMeal := make(map[uint]int)
	var mealOrder []uint // urutan kemunculan pertama, untuk tie-break yang stabil

	for _, order := range orders {
		stats.TotalRevenue += order.TotalAmount

		switch order.Status {
		case models.OrderStatusOrdered:
			stats.OrdersByStatus.Ordered++
		case models.OrderStatusPreparing:
			stats.OrdersByStatus.Preparing++
		case models.OrderStatusDelivering:
			stats.OrdersByStatus.Delivering++
		case models.OrderStatusDelivered:
			stats.OrdersByStatus.Delivered++
		}

		for _, item := range order.Items {
			if _, seen := quantityByMeal[item.MealID]; !seen {
				mealOrder = append(mealOrder, item.MealID)
			}
			quantityByMeal[item.MealID] += item.Quantity
		}
	}

	if stats.TotalOrders > 0 {
		stats.AverageOrderValue = stats.TotalRevenue / float64(stats.TotalOrders)
	}

	sort.SliceStable(mealOrder, func(i, j int) bool {
		return quantityByMeal[mealOrder[i]] > quantityByMeal[mealOrder[j]]
	})
	if len(mealOrder) > 5 {
		mealOrder = mealOrder[:5]
	}

	if len(mealOrder) > 0 {
		var meals []models.Meal
		if err := s.DB.Find(&meals, mealOrder).Error; err != nil {
			return nil, err
		}
		mealByID := make(map[uint]models.Meal, len(meals))
		for _, meal := range meals {
			mealByID[meal.ID] = meal
		}
		for _, mealID := range mealOrder {
			stats.PopularMeals = append(stats.PopularMeals, PopularMeal{
				Meal:       mealByID[mealID],
				OrderCount: quantityByMeal[mealID],
			})
		}
	}

	return &stats, nil
}
