package model

import "time"

const (
	RoleAdmin = "admin"
	RoleHOD   = "hod"
	RoleStaff = "staff"
)

type User struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	Username        string     `json:"username" gorm:"size:100;uniqueIndex;not null"`
	Email           string     `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Password        string     `json:"-" gorm:"size:255;not null"`
	Name            string     `json:"name" gorm:"size:255"`
	Role            string     `json:"role" gorm:"size:20;not null"`
	HODID           *uint      `json:"hod_id" gorm:"column:hod_id"`
	StaffID         *uint      `json:"staff_id"`
	Status          string     `json:"status" gorm:"size:20;default:active"`
	PasswordChanged bool       `json:"password_changed" gorm:"default:false"`
	LastLogin       *time.Time `json:"last_login"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	HOD   *HOD   `json:"-" gorm:"foreignKey:HODID;constraint:OnDelete:SET NULL"`
	Staff *Staff `json:"-" gorm:"foreignKey:StaffID;constraint:OnDelete:SET NULL"`
}

type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    *uint     `json:"user_id" gorm:"index"`
	Type      string    `json:"type" gorm:"size:20;not null"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	Read      bool      `json:"read" gorm:"default:false;index"`
	CreatedAt time.Time `json:"created_at"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

type Message struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     *uint     `json:"user_id" gorm:"index"`
	FromUserID *uint     `json:"from_user_id"`
	Subject    string    `json:"subject" gorm:"size:255;not null"`
	Message    string    `json:"message" gorm:"type:text;not null"`
	Read       bool      `json:"read" gorm:"default:false;index"`
	CreatedAt  time.Time `json:"created_at"`

	User     *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	FromUser *User `json:"-" gorm:"foreignKey:FromUserID;constraint:OnDelete:SET NULL"`
}
