package models

import "time"

// OrderItem menyimpan snapshot harga dan waktu persiapan dari menu saat order
// dibuat. Perubahan menu setelahnya tidak pernah mengubah order yang sudah ada.
type OrderItem struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	OrderID uint  `gorm:"not null" json:"order_id"`
	Order   Order `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MealID  uint  `gorm:"not null" json:"meal_id"`
	Meal    Meal  `gorm:"foreignKey:MealID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"meal,omitempty"`
	// Quantity minimal 1, divalidasi saat pembuatan order
	Quantity        int       `gorm:"not null;default:1" json:"quantity"`
	Price           float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	PreparationTime int       `gorm:"not null" json:"preparation_time"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}
