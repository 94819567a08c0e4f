package model

import (
	"time"

	"gorm.io/datatypes"
)

type Staff struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"size:255;not null"`
	EmployeeID  string          `json:"employee_id" gorm:"size:50"`
	Designation string          `json:"designation" gorm:"size:255"`
	Department  string          `json:"department" gorm:"size:255"`
	CategoryID  *uint           `json:"category_id"`
	HODID       *uint           `json:"hod_id" gorm:"column:hod_id"`
	Email       string          `json:"email" gorm:"size:255"`
	Phone       string          `json:"phone" gorm:"size:20"`
	JoiningDate *datatypes.Date `json:"joining_date"`
	Status      string          `json:"status" gorm:"size:20;default:active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	HOD *HOD `json:"-" gorm:"foreignKey:HODID;constraint:OnDelete:CASCADE"`
}

func (Staff) TableName() string { return "staff" }

const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceHalfDay = "half_day"
	AttendanceLeave   = "leave"
	AttendanceLate    = "late"
)

// Attendance is one staff member's record for one day. HODID is denormalized from Staff.
type Attendance struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	StaffID   uint           `json:"staff_id" gorm:"not null;index"`
	HODID     *uint          `json:"hod_id" gorm:"column:hod_id;index"`
	Date      datatypes.Date `json:"date" gorm:"not null;index"`
	Status    string         `json:"status" gorm:"size:20;default:present"`
	CheckIn   string         `json:"check_in" gorm:"size:8"`
	CheckOut  string         `json:"check_out" gorm:"size:8"`
	Remarks   string         `json:"remarks" gorm:"type:text"`
	CreatedAt time.Time      `json:"created_at"`

	Staff *Staff `json:"-" gorm:"foreignKey:StaffID;constraint:OnDelete:CASCADE"`
}

func (Attendance) TableName() string { return "attendance" }
