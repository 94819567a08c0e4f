package usecase

import (
	"errors"
	"testing"

	"hod-management-backend/internal/report"
)

var errDown = errors.New("connection refused")

type fakeDashboardRepo struct {
	fail map[string]bool

	hods, schemes, staff int64
	budget               report.BudgetTotals
	districts            int64
	allDistricts         int64
	beneficiaries        int64
	schemeCount          int64
	attendance           report.AttendanceTotals
	nodal                int64
	byCategory           []report.CategorySchemes
	budgetByHOD          []report.HODBudget
}

func (f *fakeDashboardRepo) err(name string) error {
	if f.fail[name] {
		return errDown
	}
	return nil
}

func (f *fakeDashboardRepo) CountActiveHODs(report.Params) (int64, error) {
	return f.hods, f.err("hods")
}
func (f *fakeDashboardRepo) CountActiveSchemes(report.Params) (int64, error) {
	return f.schemes, f.err("schemes")
}
func (f *fakeDashboardRepo) CountActiveStaff(report.Params) (int64, error) {
	return f.staff, f.err("staff")
}
func (f *fakeDashboardRepo) BudgetTotals(report.Params) (report.BudgetTotals, error) {
	return f.budget, f.err("budget")
}
func (f *fakeDashboardRepo) DistrictsCovered(report.Params) (int64, error) {
	return f.districts, f.err("districts")
}
func (f *fakeDashboardRepo) ActiveDistricts() (int64, error) {
	return f.allDistricts, f.err("allDistricts")
}
func (f *fakeDashboardRepo) Beneficiaries(report.Params) (int64, error) {
	return f.beneficiaries, f.err("beneficiaries")
}
func (f *fakeDashboardRepo) CountSchemes(report.Params) (int64, error) {
	return f.schemeCount, f.err("schemeCount")
}
func (f *fakeDashboardRepo) AttendanceTotals(report.Params) (report.AttendanceTotals, error) {
	return f.attendance, f.err("attendance")
}
func (f *fakeDashboardRepo) ActiveNodalOfficers(report.Params) (int64, error) {
	return f.nodal, f.err("nodal")
}
func (f *fakeDashboardRepo) SchemesByCategory(report.Params) ([]report.CategorySchemes, error) {
	return f.byCategory, f.err("byCategory")
}
func (f *fakeDashboardRepo) HODsByDepartment(report.Params) ([]report.DepartmentHODs, error) {
	return nil, f.err("byDepartment")
}
func (f *fakeDashboardRepo) BudgetByHOD(report.Params) ([]report.HODBudget, error) {
	return f.budgetByHOD, f.err("budgetByHOD")
}
func (f *fakeDashboardRepo) SchemesByHOD(report.Params) ([]report.HODSchemes, error) {
	return []report.HODSchemes{}, f.err("schemesByHOD")
}
func (f *fakeDashboardRepo) AttendanceByHOD(report.Params) ([]report.HODAttendance, error) {
	return []report.HODAttendance{}, f.err("attendanceByHOD")
}
func (f *fakeDashboardRepo) RevenueByHOD(report.Params) ([]report.HODRevenue, error) {
	return []report.HODRevenue{}, f.err("revenueByHOD")
}
func (f *fakeDashboardRepo) RevenueByDepartment(report.Params) ([]report.DepartmentRevenue, error) {
	return []report.DepartmentRevenue{}, f.err("revenueByDepartment")
}
func (f *fakeDashboardRepo) KPISummary(report.Params) ([]report.KPIProgress, error) {
	return []report.KPIProgress{}, f.err("kpis")
}

var testFallbacks = Fallbacks{
	AttendanceRate:   95,
	Districts:        33,
	Beneficiaries:    2500000,
	NodalOfficers:    12,
	HODNodalOfficers: 1,
}

func hodParams(id uint) report.Params {
	return report.Params{HODID: &id}
}

func TestStatsSoftFailure(t *testing.T) {
	repo := &fakeDashboardRepo{hods: 4, schemes: 9, fail: map[string]bool{"staff": true}}
	u := NewDashboardUsecase(repo, testFallbacks)

	stats, err := u.Stats(report.Params{})
	if !errors.Is(err, errDown) {
		t.Fatalf("err = %v", err)
	}
	if stats != (report.Stats{}) {
		t.Fatalf("stats = %+v, want zero payload", stats)
	}
}

func TestQuickStatsBudgetFailureUsesDefaults(t *testing.T) {
	repo := &fakeDashboardRepo{fail: map[string]bool{"budget": true}}
	u := NewDashboardUsecase(repo, testFallbacks)

	q, err := u.QuickStats(report.Params{})
	if err == nil {
		t.Fatal("expected error")
	}
	want := report.QuickStats{DistrictsCovered: 33, Beneficiaries: 2500000, AttendanceRate: 95, NodalOfficers: 12}
	if q != want {
		t.Fatalf("quick stats = %+v, want %+v", q, want)
	}
}

func TestQuickStatsReportsRealZeros(t *testing.T) {
	repo := &fakeDashboardRepo{}
	u := NewDashboardUsecase(repo, testFallbacks)

	q, err := u.QuickStats(hodParams(5))
	if err != nil {
		t.Fatalf("QuickStats: %v", err)
	}
	if q.DistrictsCovered != 0 || q.Beneficiaries != 0 || q.NodalOfficers != 0 {
		t.Fatalf("zeros replaced by placeholders: %+v", q)
	}
	// No attendance rows at all is the one documented fallback.
	if q.AttendanceRate != 95 {
		t.Fatalf("attendance rate = %d, want 95", q.AttendanceRate)
	}
}

func TestQuickStatsComputedFigures(t *testing.T) {
	repo := &fakeDashboardRepo{
		budget:        report.BudgetTotals{Allocated: 3000000, Utilized: 2000000},
		allDistricts:  33,
		beneficiaries: 120000,
		attendance:    report.AttendanceTotals{Present: 45, Total: 50},
		nodal:         6,
	}
	u := NewDashboardUsecase(repo, testFallbacks)

	q, err := u.QuickStats(report.Params{})
	if err != nil {
		t.Fatalf("QuickStats: %v", err)
	}
	want := report.QuickStats{
		BudgetUtilization: 67,
		TotalBudget:       3000000,
		UtilizedBudget:    2000000,
		RemainingBudget:   1000000,
		DistrictsCovered:  33,
		Beneficiaries:     120000,
		AttendanceRate:    90,
		NodalOfficers:     6,
	}
	if q != want {
		t.Fatalf("quick stats = %+v, want %+v", q, want)
	}
}

func TestQuickStatsPerFigureFallbacks(t *testing.T) {
	repo := &fakeDashboardRepo{
		schemeCount: 3,
		fail: map[string]bool{
			"districts":     true,
			"allDistricts":  true,
			"beneficiaries": true,
			"attendance":    true,
			"nodal":         true,
		},
	}
	u := NewDashboardUsecase(repo, testFallbacks)

	q, err := u.QuickStats(hodParams(2))
	if err != nil {
		t.Fatalf("QuickStats: %v", err)
	}
	if q.DistrictsCovered != 33 {
		t.Errorf("districts = %d", q.DistrictsCovered)
	}
	if q.Beneficiaries != 1500000 {
		t.Errorf("beneficiaries = %d, want 3 schemes * 500000", q.Beneficiaries)
	}
	if q.AttendanceRate != 95 {
		t.Errorf("attendance = %d", q.AttendanceRate)
	}
	if q.NodalOfficers != 1 {
		t.Errorf("nodal officers = %d, want the per-HOD fallback", q.NodalOfficers)
	}
}

func TestListRollupsSoftFailToEmpty(t *testing.T) {
	repo := &fakeDashboardRepo{fail: map[string]bool{"byCategory": true, "byDepartment": true}}
	u := NewDashboardUsecase(repo, testFallbacks)

	cats, err := u.SchemesByCategory(report.Params{})
	if err == nil || cats == nil || len(cats) != 0 {
		t.Fatalf("schemes by category = %v, %v", cats, err)
	}
	deps, err := u.HODsByDepartment(report.Params{})
	if err == nil || deps == nil || len(deps) != 0 {
		t.Fatalf("hods by department = %v, %v", deps, err)
	}
}

func TestOverviewFormatsAndCharts(t *testing.T) {
	repo := &fakeDashboardRepo{
		budget:       report.BudgetTotals{Allocated: 150000000, Utilized: 2500000},
		allDistricts: 10,
		budgetByHOD: []report.HODBudget{
			{HODID: 1, HODName: "Agriculture", Allocated: 150000000, Utilized: 2500000},
		},
		byCategory: []report.CategorySchemes{{Category: "Health", Count: 4}},
		fail:       map[string]bool{"attendanceByHOD": true},
	}
	u := NewDashboardUsecase(repo, testFallbacks)

	ov, err := u.Overview(report.Params{})
	if !errors.Is(err, errDown) {
		t.Fatalf("err = %v, want the attendance failure", err)
	}
	if ov.Formatted.TotalBudget != "₹15.00 Cr" || ov.Formatted.UtilizedBudget != "₹25.00 L" {
		t.Fatalf("formatted = %+v", ov.Formatted)
	}
	if got := ov.Charts.Budget.Datasets[0].Data[0]; got != 15 {
		t.Fatalf("budget bar = %v, want 15 Cr", got)
	}
	if len(ov.Charts.Schemes.Labels) != 1 || ov.Charts.Schemes.Labels[0] != "Health" {
		t.Fatalf("schemes chart = %+v", ov.Charts.Schemes)
	}
	if ov.Charts.Attendance.Datasets[0].Data[0] != 0 {
		t.Fatalf("attendance chart = %+v", ov.Charts.Attendance)
	}
}
