package repository

import (
	"hod-management-backend/internal/model"

	"gorm.io/gorm"
)

type AttendanceRepository interface {
	GetAll() ([]model.AttendanceListItem, error)
	GetByRange(start, end string) ([]model.AttendanceListItem, error)
	GetByHOD(hodID uint) ([]model.AttendanceListItem, error)
	GetForMonth(hodID *uint, month, year int) ([]model.Attendance, error)
	SummaryByHOD() ([]model.AttendanceHODSummary, error)
	Create(attendance *model.Attendance) error
	Update(attendance *model.Attendance) error
	Delete(id uint) error
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db}
}

func (r *attendanceRepository) list() *gorm.DB {
	return r.db.Table("attendance a").
		Select("a.*, s.name AS staff_name, s.employee_id, h.name AS hod_name").
		Joins("LEFT JOIN staff s ON a.staff_id = s.id").
		Joins("LEFT JOIN hods h ON a.hod_id = h.id")
}

func (r *attendanceRepository) GetAll() ([]model.AttendanceListItem, error) {
	rows := []model.AttendanceListItem{}
	err := r.list().Order("a.date DESC").Order("a.id").Scan(&rows).Error
	return rows, err
}

func (r *attendanceRepository) GetByRange(start, end string) ([]model.AttendanceListItem, error) {
	rows := []model.AttendanceListItem{}
	err := r.list().
		Where("a.date BETWEEN ? AND ?", start, end).
		Order("a.date DESC").Order("a.id").
		Scan(&rows).Error
	return rows, err
}

func (r *attendanceRepository) GetByHOD(hodID uint) ([]model.AttendanceListItem, error) {
	rows := []model.AttendanceListItem{}
	err := r.list().
		Where("a.hod_id = ?", hodID).
		Order("a.date DESC").Order("a.id").
		Scan(&rows).Error
	return rows, err
}

// GetForMonth returns the raw records of one calendar month for the monthly register.
func (r *attendanceRepository) GetForMonth(hodID *uint, month, year int) ([]model.Attendance, error) {
	rows := []model.Attendance{}
	query := r.db.Where("MONTH(date) = ? AND YEAR(date) = ?", month, year)
	if hodID != nil {
		query = query.Where("hod_id = ?", *hodID)
	}
	err := query.Order("date").Order("id").Find(&rows).Error
	return rows, err
}

func (r *attendanceRepository) SummaryByHOD() ([]model.AttendanceHODSummary, error) {
	rows := []model.AttendanceHODSummary{}
	err := r.db.Table("hods h").
		Select("h.id AS hod_id, h.name AS hod_name, h.department, " +
			"COUNT(CASE WHEN a.status = 'present' THEN 1 END) AS present_count, " +
			"COUNT(CASE WHEN a.status = 'absent' THEN 1 END) AS absent_count, " +
			"COUNT(CASE WHEN a.status = 'half_day' THEN 1 END) AS half_day_count, " +
			"COUNT(CASE WHEN a.status = 'leave' THEN 1 END) AS leave_count, " +
			"COUNT(a.id) AS total_records").
		Joins("LEFT JOIN attendance a ON h.id = a.hod_id").
		Group("h.id, h.name, h.department").
		Order("h.name").Order("h.id").
		Scan(&rows).Error
	return rows, err
}

func (r *attendanceRepository) Create(attendance *model.Attendance) error {
	return r.db.Create(attendance).Error
}

func (r *attendanceRepository) Update(attendance *model.Attendance) error {
	return r.db.Model(&model.Attendance{ID: attendance.ID}).
		Select("staff_id", "hod_id", "date", "status", "check_in", "check_out", "remarks").
		Updates(attendance).Error
}

func (r *attendanceRepository) Delete(id uint) error {
	return r.db.Delete(&model.Attendance{}, id).Error
}
