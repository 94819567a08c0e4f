package report

// Stats is the headline count/total card set.
type Stats struct {
	TotalHODs      int64   `json:"totalHods"`
	TotalSchemes   int64   `json:"totalSchemes"`
	TotalStaff     int64   `json:"totalStaff"`
	TotalBudget    float64 `json:"totalBudget"`
	UtilizedBudget float64 `json:"utilizedBudget"`
}

type QuickStats struct {
	BudgetUtilization int     `json:"budgetUtilization"`
	TotalBudget       float64 `json:"totalBudget"`
	UtilizedBudget    float64 `json:"utilizedBudget"`
	RemainingBudget   float64 `json:"remainingBudget"`
	DistrictsCovered  int64   `json:"districtsCovered"`
	Beneficiaries     int64   `json:"beneficiaries"`
	AttendanceRate    int     `json:"attendanceRate"`
	NodalOfficers     int64   `json:"nodalOfficers"`
}

// BudgetTotals is the allocated/utilized sum over a set of budget rows.
type BudgetTotals struct {
	Allocated float64 `gorm:"column:allocated"`
	Utilized  float64 `gorm:"column:utilized"`
}

type AttendanceTotals struct {
	Present int64 `gorm:"column:present"`
	Total   int64 `gorm:"column:total"`
}

type CategorySchemes struct {
	Category string  `json:"category" gorm:"column:category"`
	Count    int64   `json:"count" gorm:"column:count"`
	Budget   float64 `json:"budget" gorm:"column:budget"`
}

type DepartmentHODs struct {
	Category string `json:"category" gorm:"column:category"`
	Count    int64  `json:"count" gorm:"column:count"`
	HODNames string `json:"hod_names" gorm:"column:hod_names"`
}

type HODBudget struct {
	HODID       uint    `json:"hod_id" gorm:"column:hod_id"`
	HODName     string  `json:"hod_name" gorm:"column:hod_name"`
	Department  string  `json:"department" gorm:"column:department"`
	Allocated   float64 `json:"allocated" gorm:"column:allocated"`
	Utilized    float64 `json:"utilized" gorm:"column:utilized"`
	Utilization int     `json:"utilization" gorm:"-"`
}

type HODSchemes struct {
	HODID       uint    `json:"hod_id" gorm:"column:hod_id"`
	HODName     string  `json:"hod_name" gorm:"column:hod_name"`
	Department  string  `json:"department" gorm:"column:department"`
	SchemeCount int64   `json:"scheme_count" gorm:"column:scheme_count"`
	TotalBudget float64 `json:"total_budget" gorm:"column:total_budget"`
}

type HODAttendance struct {
	HODID      uint   `json:"hod_id" gorm:"column:hod_id"`
	HODName    string `json:"hod_name" gorm:"column:hod_name"`
	Department string `json:"department" gorm:"column:department"`
	Present    int64  `json:"present" gorm:"column:present"`
	Absent     int64  `json:"absent" gorm:"column:absent"`
	HalfDay    int64  `json:"half_day" gorm:"column:half_day"`
	Late       int64  `json:"late" gorm:"column:late"`
	OnLeave    int64  `json:"on_leave" gorm:"column:on_leave"`
}

type HODRevenue struct {
	HODID        uint    `json:"hod_id" gorm:"column:hod_id"`
	HODName      string  `json:"hod_name" gorm:"column:hod_name"`
	Department   string  `json:"department" gorm:"column:department"`
	TotalRevenue float64 `json:"total_revenue" gorm:"column:total_revenue"`
}

type DepartmentRevenue struct {
	Department   string  `json:"department" gorm:"column:department"`
	TotalRevenue float64 `json:"total_revenue" gorm:"column:total_revenue"`
	HODCount     int64   `json:"hod_count" gorm:"column:hod_count"`
}

type KPIProgress struct {
	HODName       string  `json:"hod_name" gorm:"column:hod_name"`
	KPIName       string  `json:"kpi_name" gorm:"column:kpi_name"`
	TargetValue   float64 `json:"target_value" gorm:"column:target_value"`
	AchievedValue float64 `json:"achieved_value" gorm:"column:achieved_value"`
	Unit          string  `json:"unit" gorm:"column:unit"`
	Status        string  `json:"status" gorm:"column:status"`
}

// WithUtilization fills the derived utilization percentage of each row.
func WithUtilization(rows []HODBudget) []HODBudget {
	for i := range rows {
		rows[i].Utilization = Utilization(rows[i].Allocated, rows[i].Utilized)
	}
	return rows
}
