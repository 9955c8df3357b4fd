package models

import "time"

const (
	OrderStatusOrdered    = "ordered"
	OrderStatusPreparing  = "preparing"
	OrderStatusDelivering = "delivering"
	OrderStatusDelivered  = "delivered"

	DeliveryTypePickup   = "pickup"
	DeliveryTypeDelivery = "delivery"
)

type Order struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	CustomerID   uint        `gorm:"not null;index" json:"customer_id"`
	Customer     User        `gorm:"foreignKey:CustomerID;references:ID" json:"-"`
	RestaurantID uint        `gorm:"not null;index" json:"restaurant_id"`
	Restaurant   Restaurant  `gorm:"foreignKey:RestaurantID;references:ID" json:"-"`
	Items        []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	TotalAmount  float64     `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Status       string      `gorm:"type:varchar(20);not null;default:'ordered'" json:"status"`
	DeliveryType string      `gorm:"type:varchar(10);not null" json:"delivery_type"`
	// DeliveryAddress hanya terisi untuk delivery_type = 'delivery'
	DeliveryAddress Address `gorm:"embedded;embeddedPrefix:delivery_" json:"delivery_address"`
	// EstimatedPreparationTime dalam menit, dihitung sekali saat order dibuat
	EstimatedPreparationTime int       `gorm:"not null" json:"estimated_preparation_time"`
	CreatedAt                time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt                time.Time `gorm:"not null" json:"updated_at"`
}
