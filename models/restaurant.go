package models

import "time"

type Restaurant struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	OwnerID     uint       `gorm:"uniqueIndex;not null" json:"owner_id"`
	Owner       User       `gorm:"foreignKey:OwnerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Name        string     `gorm:"type:varchar(255);not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	Phone       string     `gorm:"type:varchar(30)" json:"phone"`
	VatNumber   string     `gorm:"type:varchar(30)" json:"vat_number"`
	Address     Address    `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	Menu        []MenuItem `gorm:"foreignKey:RestaurantID" json:"menu"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updated_at"`
}

// MenuItem adalah salinan harga milik restoran, terpisah dari katalog meal global.
// Maksimal satu entry per meal untuk tiap restoran.
type MenuItem struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	RestaurantID uint    `gorm:"not null;uniqueIndex:idx_restaurant_meal" json:"restaurant_id"`
	MealID       uint    `gorm:"not null;uniqueIndex:idx_restaurant_meal" json:"meal_id"`
	Meal         Meal    `gorm:"foreignKey:MealID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"meal,omitempty"`
	Price        float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	// PreparationTime dalam menit per satu porsi
	PreparationTime int       `gorm:"not null" json:"preparation_time"`
	IsAvailable     bool      `gorm:"not null;default:true" json:"is_available"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}
