package models

import "time"

type OptionType string

const (
	OptionTypeSize  OptionType = "SIZE"
	OptionTypeSauce OptionType = "SAUCE"
	OptionTypeOther OptionType = "OTHER"
)

type ProductOption struct {
	ID          uint       `gorm:"primaryKey"`
	ProductID   uint       `gorm:"index;not null"`
	Name        string     `gorm:"size:150;not null"`
	Description string     `gorm:"size:255"`
	Price       int64      `gorm:"not null;default:0"` // additional price, minor units
	Type        OptionType `gorm:"size:10;not null;default:'OTHER'"`
	IsRequired  bool       `gorm:"not null;default:false"`
	IsAvailable bool       `gorm:"not null;default:true"`
	Order       int        `gorm:"column:sort_order;not null;default:0"` // display order within the product
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
