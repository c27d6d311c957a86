package models

import "time"

type Category struct {
	ID          uint   `gorm:"primaryKey"`
	Code        string `gorm:"size:20;uniqueIndex;not null"`
	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"size:255"`
	IsActive    bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Products []Product
}
