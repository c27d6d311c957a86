package models

import "time"

type Product struct {
	ID          uint   `gorm:"primaryKey"`
	Code        string `gorm:"size:50;uniqueIndex;not null"` // deterministic, derived from category + name
	Name        string `gorm:"size:150;not null"`
	Description string `gorm:"size:500"`
	Price       int64  `gorm:"not null"` // minor units (VND x100)
	CostPrice   int64  `gorm:"not null;default:0"`
	Quantity    int    `gorm:"not null;default:0"`
	PrepTime    int    `gorm:"not null;default:0"` // minutes
	Image       string `gorm:"size:255"`
	IsAvailable bool   `gorm:"not null;default:true"`
	CategoryID  uint   `gorm:"index;not null"`
	Category    *Category
	BranchID    uint `gorm:"index;not null"`
	Branch      *Branch
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Options []ProductOption
}
