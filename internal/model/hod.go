package model

import "time"

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// HOD is a Head of Department; schemes, staff, budget, KPIs and revenue roll up under it.
type HOD struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"size:255;not null"`
	Department string    `json:"department" gorm:"size:255"`
	CategoryID *uint     `json:"category_id"`
	Email      string    `json:"email" gorm:"size:255"`
	Phone      string    `json:"phone" gorm:"size:20"`
	Status     string    `json:"status" gorm:"size:20;default:active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Category *Category `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
}

func (HOD) TableName() string { return "hods" }

// Category classifies HODs, staff and schemes. It is soft-deleted through Status.
type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:255;uniqueIndex;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Status      string    `json:"status" gorm:"size:20;default:active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Category) TableName() string { return "categories" }
