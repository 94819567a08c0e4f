package repository

import (
	"time"

	"hod-management-backend/internal/model"
	"hod-management-backend/internal/report"

	"gorm.io/gorm"
)

// categoryExpr resolves the HOD's category: the Category entity first, the
// free-text department as a fallback for rows never linked to one.
const categoryExpr = "COALESCE(c.name, NULLIF(h.department, ''), 'Uncategorized')"

// schemeCategoryExpr does the same for schemes, falling back to scheme_category.
const schemeCategoryExpr = "COALESCE(c.name, NULLIF(s.scheme_category, ''), 'Uncategorized')"

// DashboardRepository runs the dashboard rollups. Every method restricts to
// the selected HOD in SQL; nothing is filtered after the fact.
type DashboardRepository interface {
	CountActiveHODs(p report.Params) (int64, error)
	CountActiveSchemes(p report.Params) (int64, error)
	CountActiveStaff(p report.Params) (int64, error)
	BudgetTotals(p report.Params) (report.BudgetTotals, error)
	DistrictsCovered(p report.Params) (int64, error)
	ActiveDistricts() (int64, error)
	Beneficiaries(p report.Params) (int64, error)
	CountSchemes(p report.Params) (int64, error)
	AttendanceTotals(p report.Params) (report.AttendanceTotals, error)
	ActiveNodalOfficers(p report.Params) (int64, error)

	SchemesByCategory(p report.Params) ([]report.CategorySchemes, error)
	HODsByDepartment(p report.Params) ([]report.DepartmentHODs, error)
	BudgetByHOD(p report.Params) ([]report.HODBudget, error)
	SchemesByHOD(p report.Params) ([]report.HODSchemes, error)
	AttendanceByHOD(p report.Params) ([]report.HODAttendance, error)
	RevenueByHOD(p report.Params) ([]report.HODRevenue, error)
	RevenueByDepartment(p report.Params) ([]report.DepartmentRevenue, error)
	KPISummary(p report.Params) ([]report.KPIProgress, error)
}

type dashboardRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db, now: time.Now}
}

// schemeYear keeps only the calendar year: a scheme's start date places it in a
// year, not on a reporting day.
func schemeYear(p report.Params) report.Params {
	return report.Params{Year: p.Year, HODID: p.HODID}
}

func (r *dashboardRepository) count(table string, active string, hodCol string, p report.Params) (int64, error) {
	var c report.Clause
	c.And("status = ?", active)
	c.Merge(report.HODFilter(hodCol, p))

	var n int64
	err := r.db.Table(table).Scopes(where(c)).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountActiveHODs(p report.Params) (int64, error) {
	return r.count("hods", model.StatusActive, "id", p)
}

func (r *dashboardRepository) CountActiveSchemes(p report.Params) (int64, error) {
	return r.count("schemes", model.SchemeActive, "hod_id", p)
}

func (r *dashboardRepository) CountActiveStaff(p report.Params) (int64, error) {
	return r.count("staff", model.StatusActive, "hod_id", p)
}

func (r *dashboardRepository) BudgetTotals(p report.Params) (report.BudgetTotals, error) {
	var c report.Clause
	c.Merge(report.HODFilter("hod_id", p))
	c.Merge(report.FinancialYearFilter("financial_year", p))

	var totals report.BudgetTotals
	err := r.db.Table("budget").
		Select("COALESCE(SUM(allocated_amount), 0) AS allocated, COALESCE(SUM(utilized_amount), 0) AS utilized").
		Scopes(where(c)).
		Scan(&totals).Error
	return totals, err
}

// DistrictsCovered counts active districts that have at least one budget row.
func (r *dashboardRepository) DistrictsCovered(p report.Params) (int64, error) {
	var c report.Clause
	c.And("d.status = ?", 1)
	c.Merge(report.HODFilter("b.hod_id", p))

	var n int64
	err := r.db.Table("districts d").
		Select("COUNT(DISTINCT d.id)").
		Joins("INNER JOIN budget b ON d.id = b.district_id").
		Scopes(where(c)).
		Scan(&n).Error
	return n, err
}

func (r *dashboardRepository) ActiveDistricts() (int64, error) {
	var n int64
	err := r.db.Model(&model.District{}).Where("status = ?", 1).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) Beneficiaries(p report.Params) (int64, error) {
	var n int64
	err := r.db.Table("schemes").
		Select("COALESCE(SUM(scheme_benefits_person), 0)").
		Scopes(where(report.HODFilter("hod_id", p))).
		Scan(&n).Error
	return n, err
}

func (r *dashboardRepository) CountSchemes(p report.Params) (int64, error) {
	var n int64
	err := r.db.Table("schemes").Scopes(where(report.HODFilter("hod_id", p))).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) AttendanceTotals(p report.Params) (report.AttendanceTotals, error) {
	var c report.Clause
	c.Merge(report.HODFilter("a.hod_id", p))
	c.Merge(report.TimeFilter("a.date", p, report.WindowLast30Days, r.now()))

	var totals report.AttendanceTotals
	err := r.db.Table("attendance a").
		Select("COUNT(CASE WHEN a.status = 'present' THEN 1 END) AS present, COUNT(*) AS total").
		Scopes(where(c)).
		Scan(&totals).Error
	return totals, err
}

func (r *dashboardRepository) ActiveNodalOfficers(p report.Params) (int64, error) {
	return r.count("nodal_officers", model.StatusActive, "hod_id", p)
}

func (r *dashboardRepository) SchemesByCategory(p report.Params) ([]report.CategorySchemes, error) {
	var c report.Clause
	c.Merge(report.HODFilter("s.hod_id", p))
	c.Merge(report.TimeFilter("s.start_date", schemeYear(p), report.WindowNone, r.now()))

	rows := []report.CategorySchemes{}
	err := r.db.Table("schemes s").
		Select(schemeCategoryExpr + " AS category, COUNT(*) AS count, COALESCE(SUM(s.total_budget), 0) AS budget").
		Joins("LEFT JOIN categories c ON s.category_id = c.id").
		Scopes(where(c)).
		Group(schemeCategoryExpr).
		Order("category").
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepository) HODsByDepartment(p report.Params) ([]report.DepartmentHODs, error) {
	var c report.Clause
	c.And("h.status = ?", model.StatusActive)
	c.Merge(report.HODFilter("h.id", p))

	rows := []report.DepartmentHODs{}
	err := r.db.Table("hods h").
		Select(categoryExpr + " AS category, COUNT(h.id) AS count, " +
			"GROUP_CONCAT(h.name ORDER BY h.name SEPARATOR ', ') AS hod_names").
		Joins("LEFT JOIN categories c ON h.category_id = c.id").
		Scopes(where(c)).
		Group(categoryExpr).
		Order("count DESC").Order("category").
		Scan(&rows).Error
	return rows, err
}

// The per-HOD rollups below put the period filter in the LEFT JOIN so a HOD
// with no matching rows still reports zeros. Join values bind before WHERE values.

func (r *dashboardRepository) BudgetByHOD(p report.Params) ([]report.HODBudget, error) {
	join := report.FinancialYearFilter("b.financial_year", p)

	rows := []report.HODBudget{}
	err := r.db.Table("hods h").
		Select("h.id AS hod_id, h.name AS hod_name, h.department, " +
			"COALESCE(SUM(b.allocated_amount), 0) AS allocated, " +
			"COALESCE(SUM(b.utilized_amount), 0) AS utilized").
		Joins("LEFT JOIN budget b ON "+join.On("b.hod_id = h.id"), join.Args()...).
		Scopes(where(report.HODFilter("h.id", p))).
		Group("h.id, h.name, h.department").
		Order("h.name").Order("h.id").
		Scan(&rows).Error
	return report.WithUtilization(rows), err
}

func (r *dashboardRepository) SchemesByHOD(p report.Params) ([]report.HODSchemes, error) {
	join := report.TimeFilter("s.start_date", schemeYear(p), report.WindowNone, r.now())

	rows := []report.HODSchemes{}
	err := r.db.Table("hods h").
		Select("h.id AS hod_id, h.name AS hod_name, h.department, " +
			"COUNT(s.id) AS scheme_count, COALESCE(SUM(s.total_budget), 0) AS total_budget").
		Joins("LEFT JOIN schemes s ON "+join.On("s.hod_id = h.id"), join.Args()...).
		Scopes(where(report.HODFilter("h.id", p))).
		Group("h.id, h.name, h.department").
		Order("h.name").Order("h.id").
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepository) AttendanceByHOD(p report.Params) ([]report.HODAttendance, error) {
	join := report.TimeFilter("a.date", p, report.WindowLast30Days, r.now())

	rows := []report.HODAttendance{}
	err := r.db.Table("hods h").
		Select("h.id AS hod_id, h.name AS hod_name, h.department, " +
			"COUNT(CASE WHEN a.status = 'present' THEN 1 END) AS present, " +
			"COUNT(CASE WHEN a.status = 'absent' THEN 1 END) AS absent, " +
			"COUNT(CASE WHEN a.status = 'half_day' THEN 1 END) AS half_day, " +
			"COUNT(CASE WHEN a.status = 'late' THEN 1 END) AS late, " +
			"COUNT(CASE WHEN a.status = 'leave' THEN 1 END) AS on_leave").
		Joins("LEFT JOIN attendance a ON "+join.On("a.hod_id = h.id"), join.Args()...).
		Scopes(where(report.HODFilter("h.id", p))).
		Group("h.id, h.name, h.department").
		Order("h.name").Order("h.id").
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepository) RevenueByHOD(p report.Params) ([]report.HODRevenue, error) {
	join := report.TimeFilter("r.date", p, report.WindowNone, r.now())

	rows := []report.HODRevenue{}
	err := r.db.Table("hods h").
		Select("h.id AS hod_id, h.name AS hod_name, h.department, COALESCE(SUM(r.amount), 0) AS total_revenue").
		Joins("LEFT JOIN revenue r ON "+join.On("r.hod_id = h.id"), join.Args()...).
		Scopes(where(report.HODFilter("h.id", p))).
		Group("h.id, h.name, h.department").
		Order("h.name").Order("h.id").
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepository) RevenueByDepartment(p report.Params) ([]report.DepartmentRevenue, error) {
	join := report.TimeFilter("r.date", p, report.WindowNone, r.now())

	rows := []report.DepartmentRevenue{}
	err := r.db.Table("hods h").
		Select(categoryExpr + " AS department, COALESCE(SUM(r.amount), 0) AS total_revenue, " +
			"COUNT(DISTINCT h.id) AS hod_count").
		Joins("LEFT JOIN categories c ON h.category_id = c.id").
		Joins("LEFT JOIN revenue r ON "+join.On("r.hod_id = h.id"), join.Args()...).
		Scopes(where(report.HODFilter("h.id", p))).
		Group(categoryExpr).
		Order("total_revenue DESC").Order("department").
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepository) KPISummary(p report.Params) ([]report.KPIProgress, error) {
	rows := []report.KPIProgress{}
	err := r.db.Table("kpis k").
		Select("h.name AS hod_name, k.kpi_name, k.target_value, k.achieved_value, k.unit, k.status").
		Joins("JOIN hods h ON k.hod_id = h.id").
		Scopes(where(report.HODFilter("h.id", p))).
		Order("h.name").Order("k.kpi_name").Order("k.id").
		Scan(&rows).Error
	return rows, err
}
