package model

// Row shapes for list/detail queries that join display names onto an entity.
// Joined columns are pointers because the referenced row may be missing.

type HODListItem struct {
	HOD
	CategoryName *string `json:"category_name" gorm:"column:category_name"`
}

type HODDetails struct {
	HOD
	Schemes []Scheme `json:"schemes" gorm:"-"`
	Staff   []Staff  `json:"staff" gorm:"-"`
	Budget  []Budget `json:"budget" gorm:"-"`
	KPIs    []KPI    `json:"kpis" gorm:"-"`
}

type SchemeListItem struct {
	Scheme
	HODName         *string `json:"hod_name" gorm:"column:hod_name"`
	Department      *string `json:"department" gorm:"column:department"`
	CategoryName    *string `json:"category_name" gorm:"column:category_name"`
	BudgetAllocated float64 `json:"budget_allocated" gorm:"column:budget_allocated"`
	BudgetUtilized  float64 `json:"budget_utilized" gorm:"column:budget_utilized"`
}

type SchemeDetails struct {
	Scheme
	HODName           *string                  `json:"hod_name" gorm:"column:hod_name"`
	Department        *string                  `json:"department" gorm:"column:department"`
	BudgetAllocations []SchemeBudgetAllocation `json:"budget_allocations" gorm:"-"`
}

type AllocationListItem struct {
	SchemeBudgetAllocation
	SchemeName     *string `json:"scheme_name" gorm:"column:scheme_name"`
	SchemeCategory *string `json:"scheme_category" gorm:"column:scheme_category"`
}

type StaffListItem struct {
	Staff
	HODName *string `json:"hod_name" gorm:"column:hod_name"`
}

type BudgetListItem struct {
	Budget
	HODName      *string `json:"hod_name" gorm:"column:hod_name"`
	SchemeName   *string `json:"scheme_name" gorm:"column:scheme_name"`
	StateName    *string `json:"state_name" gorm:"column:state_name"`
	DistrictName *string `json:"district_name" gorm:"column:district_name"`
	MandalName   *string `json:"mandal_name" gorm:"column:mandal_name"`
}

type BudgetYearSummary struct {
	FinancialYear  string  `json:"financial_year" gorm:"column:financial_year"`
	TotalAllocated float64 `json:"total_allocated" gorm:"column:total_allocated"`
	TotalUtilized  float64 `json:"total_utilized" gorm:"column:total_utilized"`
	Remaining      float64 `json:"remaining" gorm:"column:remaining"`
}

type AttendanceListItem struct {
	Attendance
	StaffName  *string `json:"staff_name" gorm:"column:staff_name"`
	EmployeeID *string `json:"employee_id" gorm:"column:employee_id"`
	HODName    *string `json:"hod_name" gorm:"column:hod_name"`
}

type AttendanceHODSummary struct {
	HODID        uint   `json:"hod_id" gorm:"column:hod_id"`
	HODName      string `json:"hod_name" gorm:"column:hod_name"`
	Department   string `json:"department" gorm:"column:department"`
	PresentCount int64  `json:"present_count" gorm:"column:present_count"`
	AbsentCount  int64  `json:"absent_count" gorm:"column:absent_count"`
	HalfDayCount int64  `json:"half_day_count" gorm:"column:half_day_count"`
	LeaveCount   int64  `json:"leave_count" gorm:"column:leave_count"`
	TotalRecords int64  `json:"total_records" gorm:"column:total_records"`
}

type RevenueListItem struct {
	Revenue
	HODName    *string `json:"hod_name" gorm:"column:hod_name"`
	SchemeName *string `json:"scheme_name" gorm:"column:scheme_name"`
}

type RevenueHODSummary struct {
	HODID            uint    `json:"hod_id" gorm:"column:hod_id"`
	HODName          string  `json:"hod_name" gorm:"column:hod_name"`
	Department       string  `json:"department" gorm:"column:department"`
	TotalRevenue     float64 `json:"total_revenue" gorm:"column:total_revenue"`
	TransactionCount int64   `json:"transaction_count" gorm:"column:transaction_count"`
}

type KPIListItem struct {
	KPI
	HODName    *string `json:"hod_name" gorm:"column:hod_name"`
	Department *string `json:"department" gorm:"column:department"`
}

type NodalOfficerListItem struct {
	NodalOfficer
	SchemeName *string `json:"scheme_name" gorm:"column:scheme_name"`
}

type Village struct {
	Name string `json:"name" gorm:"column:village"`
}

type SearchResult struct {
	Type string `json:"type"`
	Name string `json:"name"`
	Path string `json:"path"`
	ID   uint   `json:"id"`
}

// UserProfile is the user as returned by login and /auth/me. It never carries the hash.
type UserProfile struct {
	ID              uint    `json:"id" gorm:"column:id"`
	Username        string  `json:"username" gorm:"column:username"`
	Email           string  `json:"email" gorm:"column:email"`
	Role            string  `json:"role" gorm:"column:role"`
	Name            string  `json:"name" gorm:"column:name"`
	HODID           *uint   `json:"hod_id" gorm:"column:hod_id"`
	StaffID         *uint   `json:"staff_id" gorm:"column:staff_id"`
	Department      *string `json:"department" gorm:"column:department"`
	PasswordChanged bool    `json:"password_changed" gorm:"column:password_changed"`
}

type UserListItem struct {
	ID        uint    `json:"id" gorm:"column:id"`
	Username  string  `json:"username" gorm:"column:username"`
	Email     string  `json:"email" gorm:"column:email"`
	Role      string  `json:"role" gorm:"column:role"`
	Name      string  `json:"name" gorm:"column:name"`
	Status    string  `json:"status" gorm:"column:status"`
	HODName   *string `json:"hod_name" gorm:"column:hod_name"`
	StaffName *string `json:"staff_name" gorm:"column:staff_name"`
}

type MessageListItem struct {
	Message
	FromName *string `json:"from_name" gorm:"column:from_name"`
}
