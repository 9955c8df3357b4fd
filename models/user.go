package models

import "time"

const (
	UserTypeCustomer     = "customer"
	UserTypeRestaurateur = "restaurateur"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Surname   string    `gorm:"type:varchar(255);not null" json:"surname"`
	Email     string    `gorm:"type:varchar(255);unique;not null" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	UserType  string    `gorm:"type:varchar(20);not null" json:"user_type"`
	Address   Address   `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// Address dipakai ulang untuk user, restaurant dan alamat pengiriman order
type Address struct {
	Street  string `gorm:"type:varchar(255)" json:"street"`
	City    string `gorm:"type:varchar(100)" json:"city"`
	ZipCode string `gorm:"type:varchar(20)" json:"zip_code"`
}
