package usecase

import (
	"hod-management-backend/config"
	"hod-management-backend/internal/report"
	"hod-management-backend/internal/repository"

	"github.com/pkg/errors"
)

// estimatedBeneficiariesPerScheme is used when the beneficiary column cannot be summed.
const estimatedBeneficiariesPerScheme = 500000

// Fallbacks are the figures reported when a dashboard number cannot be computed.
type Fallbacks struct {
	AttendanceRate    int
	Districts         int64
	Beneficiaries     int64
	NodalOfficers     int64
	HODNodalOfficers  int64
	BudgetUtilization int
}

func FallbacksFromConfig(cfg *config.Config) Fallbacks {
	return Fallbacks{
		AttendanceRate:    cfg.FallbackAttendanceRate,
		Districts:         cfg.FallbackDistricts,
		Beneficiaries:     cfg.FallbackBeneficiaries,
		NodalOfficers:     cfg.FallbackNodalOfficers,
		HODNodalOfficers:  cfg.FallbackHODNodalOfficers,
		BudgetUtilization: cfg.FallbackBudgetUtilization,
	}
}

// DashboardUsecase assembles the dashboard figures. Every method returns a
// usable payload together with the first error it hit, so callers can log the
// error and still answer.
type DashboardUsecase struct {
	repo     repository.DashboardRepository
	fallback Fallbacks
}

func NewDashboardUsecase(repo repository.DashboardRepository, fallback Fallbacks) *DashboardUsecase {
	return &DashboardUsecase{repo: repo, fallback: fallback}
}

func (u *DashboardUsecase) Stats(p report.Params) (report.Stats, error) {
	var s report.Stats
	var err error

	if s.TotalHODs, err = u.repo.CountActiveHODs(p); err != nil {
		return report.Stats{}, errors.Wrap(err, "count hods")
	}
	if s.TotalSchemes, err = u.repo.CountActiveSchemes(p); err != nil {
		return report.Stats{}, errors.Wrap(err, "count schemes")
	}
	if s.TotalStaff, err = u.repo.CountActiveStaff(p); err != nil {
		return report.Stats{}, errors.Wrap(err, "count staff")
	}
	budget, err := u.repo.BudgetTotals(p)
	if err != nil {
		return report.Stats{}, errors.Wrap(err, "budget totals")
	}
	s.TotalBudget = budget.Allocated
	s.UtilizedBudget = budget.Utilized
	return s, nil
}

func (u *DashboardUsecase) errorQuickStats() report.QuickStats {
	return report.QuickStats{
		BudgetUtilization: u.fallback.BudgetUtilization,
		DistrictsCovered:  u.fallback.Districts,
		Beneficiaries:     u.fallback.Beneficiaries,
		AttendanceRate:    u.fallback.AttendanceRate,
		NodalOfficers:     u.fallback.NodalOfficers,
	}
}

// QuickStats computes the top cards. Only the budget totals are required;
// each other figure falls back on its own when its query fails.
func (u *DashboardUsecase) QuickStats(p report.Params) (report.QuickStats, error) {
	budget, err := u.repo.BudgetTotals(p)
	if err != nil {
		return u.errorQuickStats(), errors.Wrap(err, "budget totals")
	}

	q := report.QuickStats{
		BudgetUtilization: report.Utilization(budget.Allocated, budget.Utilized),
		TotalBudget:       budget.Allocated,
		UtilizedBudget:    budget.Utilized,
		RemainingBudget:   budget.Allocated - budget.Utilized,
	}
	q.DistrictsCovered = u.districts(p)
	q.Beneficiaries = u.beneficiaries(p)

	if att, err := u.repo.AttendanceTotals(p); err != nil {
		q.AttendanceRate = u.fallback.AttendanceRate
	} else {
		q.AttendanceRate = report.AttendanceRate(att.Present, att.Total, u.fallback.AttendanceRate)
	}

	if n, err := u.repo.ActiveNodalOfficers(p); err != nil {
		q.NodalOfficers = u.fallback.NodalOfficers
		if p.HODID != nil {
			q.NodalOfficers = u.fallback.HODNodalOfficers
		}
	} else {
		q.NodalOfficers = n
	}
	return q, nil
}

// districts counts districts with budget rows; without a HOD and without any
// budget rows it reports every active district instead.
func (u *DashboardUsecase) districts(p report.Params) int64 {
	n, err := u.repo.DistrictsCovered(p)
	if err == nil && (n > 0 || p.HODID != nil) {
		return n
	}
	all, err := u.repo.ActiveDistricts()
	if err != nil {
		return u.fallback.Districts
	}
	return all
}

func (u *DashboardUsecase) beneficiaries(p report.Params) int64 {
	n, err := u.repo.Beneficiaries(p)
	if err == nil {
		return n
	}
	schemes, err := u.repo.CountSchemes(p)
	if err != nil {
		return u.fallback.Beneficiaries
	}
	return schemes * estimatedBeneficiariesPerScheme
}

func (u *DashboardUsecase) SchemesByCategory(p report.Params) ([]report.CategorySchemes, error) {
	rows, err := u.repo.SchemesByCategory(p)
	if err != nil {
		return []report.CategorySchemes{}, errors.Wrap(err, "schemes by category")
	}
	return rows, nil
}

func (u *DashboardUsecase) HODsByDepartment(p report.Params) ([]report.DepartmentHODs, error) {
	rows, err := u.repo.HODsByDepartment(p)
	if err != nil {
		return []report.DepartmentHODs{}, errors.Wrap(err, "hods by department")
	}
	return rows, nil
}

func (u *DashboardUsecase) BudgetByHOD(p report.Params) ([]report.HODBudget, error) {
	rows, err := u.repo.BudgetByHOD(p)
	if err != nil {
		return []report.HODBudget{}, errors.Wrap(err, "budget by hod")
	}
	return rows, nil
}

func (u *DashboardUsecase) SchemesByHOD(p report.Params) ([]report.HODSchemes, error) {
	rows, err := u.repo.SchemesByHOD(p)
	if err != nil {
		return []report.HODSchemes{}, errors.Wrap(err, "schemes by hod")
	}
	return rows, nil
}

func (u *DashboardUsecase) AttendanceByHOD(p report.Params) ([]report.HODAttendance, error) {
	rows, err := u.repo.AttendanceByHOD(p)
	if err != nil {
		return []report.HODAttendance{}, errors.Wrap(err, "attendance by hod")
	}
	return rows, nil
}

func (u *DashboardUsecase) RevenueByHOD(p report.Params) ([]report.HODRevenue, error) {
	rows, err := u.repo.RevenueByHOD(p)
	if err != nil {
		return []report.HODRevenue{}, errors.Wrap(err, "revenue by hod")
	}
	return rows, nil
}

func (u *DashboardUsecase) RevenueByDepartment(p report.Params) ([]report.DepartmentRevenue, error) {
	rows, err := u.repo.RevenueByDepartment(p)
	if err != nil {
		return []report.DepartmentRevenue{}, errors.Wrap(err, "revenue by department")
	}
	return rows, nil
}

func (u *DashboardUsecase) KPISummary(p report.Params) ([]report.KPIProgress, error) {
	rows, err := u.repo.KPISummary(p)
	if err != nil {
		return []report.KPIProgress{}, errors.Wrap(err, "kpi summary")
	}
	return rows, nil
}

type Formatted struct {
	TotalBudget     string `json:"totalBudget"`
	UtilizedBudget  string `json:"utilizedBudget"`
	RemainingBudget string `json:"remainingBudget"`
	Beneficiaries   string `json:"beneficiaries"`
}

type Charts struct {
	Budget     report.Series `json:"budget"`
	Attendance report.Series `json:"attendance"`
	Revenue    report.Series `json:"revenue"`
	Schemes    report.Series `json:"schemes"`
}

type Overview struct {
	Stats      report.Stats      `json:"stats"`
	QuickStats report.QuickStats `json:"quickStats"`
	Formatted  Formatted         `json:"formatted"`
	Charts     Charts            `json:"charts"`
}

// Overview bundles the cards and chart series of one dashboard view. Sections
// that fail are reported with their defaults; the first error is returned.
func (u *DashboardUsecase) Overview(p report.Params) (Overview, error) {
	var first error
	keep := func(err error) {
		if first == nil && err != nil {
			first = err
		}
	}

	stats, err := u.Stats(p)
	keep(err)
	quick, err := u.QuickStats(p)
	keep(err)
	budget, err := u.BudgetByHOD(p)
	keep(err)
	attendance, err := u.AttendanceByHOD(p)
	keep(err)
	revenue, err := u.RevenueByDepartment(p)
	keep(err)
	schemes, err := u.SchemesByCategory(p)
	keep(err)

	return Overview{
		Stats:      stats,
		QuickStats: quick,
		Formatted: Formatted{
			TotalBudget:     report.FormatCurrency(quick.TotalBudget),
			UtilizedBudget:  report.FormatCurrency(quick.UtilizedBudget),
			RemainingBudget: report.FormatCurrency(quick.RemainingBudget),
			Beneficiaries:   report.FormatBeneficiaries(quick.Beneficiaries),
		},
		Charts: Charts{
			Budget:     report.BudgetBars(budget),
			Attendance: report.AttendancePie(attendance),
			Revenue:    report.RevenueDoughnut(revenue),
			Schemes:    report.SchemesPie(schemes),
		},
	}, first
}
