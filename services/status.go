package services

import (
	"fmt"

	"github.com/yeremiapane/food-order-app/models"
)

// ValidateTransition memeriksa tabel transisi status order:
//
//	delivery: ordered -> preparing -> delivering -> delivered
//	pickup:   ordered -> preparing -> delivered (tanpa delivering)
//
// Restaurateur menggerakkan order ke preparing/delivering, customer menandai
// delivered. Pemeriksaan kepemilikan dilakukan terpisah (lihat UpdateStatus).
func ValidateTransition(role, current, requested, deliveryType string) error {
	switch {
	case role == models.UserTypeRestaurateur && requested == models.OrderStatusPreparing:
		return nil

	case role == models.UserTypeRestaurateur && requested == models.OrderStatusDelivering:
		// Order pickup tidak pernah lewat status delivering
		if deliveryType == models.DeliveryTypePickup {
			return fmt.Errorf("%w: pickup orders are never out for delivery (order is %s)", ErrInvalidTransition, current)
		}
		if current != models.OrderStatusPreparing {
			return fmt.Errorf("%w: order must be preparing before delivering (order is %s)", ErrInvalidTransition, current)
		}
		return nil

	case role == models.UserTypeCustomer && requested == models.OrderStatusDelivered:
		if deliveryType == models.DeliveryTypePickup && current != models.OrderStatusPreparing {
			return fmt.Errorf("%w: pickup order must be preparing before it can be collected (order is %s)", ErrInvalidTransition, current)
		}
		return nil
	}

	return fmt.Errorf("%w (order is %s)", ErrInvalidTransition, current)
}

// UpdateStatus menerapkan transisi status atas nama actor. Pada kegagalan
// tidak ada mutasi apapun dan status lama ikut dilaporkan di pesan error.
func (s *OrderService) UpdateStatus(orderID, actorID uint, role, requested string) (*models.Order, error) {
	var order models.Order
	if err := s.DB.First(&order, orderID).Error; err != nil {
		return nil, ErrOrderNotFound
	}

	// Kepemilikan: restaurateur harus pemilik restoran order, customer harus
	// pemesan. Dibandingkan sebagai kesamaan identitas principal.
	switch role {
	case models.UserTypeRestaurateur:
		var restaurant models.Restaurant
		if err := s.DB.First(&restaurant, order.RestaurantID).Error; err != nil {
			return nil, ErrRestaurantNotFound
		}
		if restaurant.OwnerID != actorID {
			return &order, ErrForbidden
		}
	case models.UserTypeCustomer:
		if order.CustomerID != actorID {
			return &order, ErrForbidden
		}
	default:
		return &order, ErrForbidden
	}

	if err := ValidateTransition(role, order.Status, requested, order.DeliveryType); err != nil {
		return &order, err
	}

	// Update satu kolom saja; update berbarengan pada order yang sama berlaku
	// last-write-wins
	if err := s.DB.Model(&order).Update("status", requested).Error; err != nil {
		return &order, err
	}
	order.Status = requested

	return &order, nil
}
