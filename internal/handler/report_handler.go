package handler

import (
	"fmt"
	"strconv"
	"time"

	"hod-management-backend/internal/helper"
	"hod-management-backend/internal/middleware"
	"hod-management-backend/internal/model"
	"hod-management-backend/internal/report"
	"hod-management-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// Daily register codes.
const (
	codePresent  = "P"
	codeAbsent   = "A"
	codeHalfDay  = "HD"
	codeLeave    = "L"
	codeLate     = "LT"
	codeMissing  = "-"
	codeUpcoming = ""
)

var statusCodes = map[string]string{
	model.AttendancePresent: codePresent,
	model.AttendanceAbsent:  codeAbsent,
	model.AttendanceHalfDay: codeHalfDay,
	model.AttendanceLeave:   codeLeave,
	model.AttendanceLate:    codeLate,
}

type ReportHandler struct {
	staffRepo      repository.StaffRepository
	attendanceRepo repository.AttendanceRepository
	now            func() time.Time
}

func NewReportHandler(staffRepo repository.StaffRepository, attendanceRepo repository.AttendanceRepository) *ReportHandler {
	return &ReportHandler{
		staffRepo:      staffRepo,
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

type monthlyStats struct {
	Present        int `json:"present"`
	Absent         int `json:"absent"`
	HalfDay        int `json:"half_day"`
	Leave          int `json:"leave"`
	Late           int `json:"late"`
	Missing        int `json:"missing"`
	AttendanceRate int `json:"attendance_rate"`
}

type monthlyRow struct {
	StaffID     uint              `json:"staff_id"`
	EmployeeID  string            `json:"employee_id"`
	Name        string            `json:"name"`
	Designation string            `json:"designation"`
	Daily       map[string]string `json:"daily"`
	Stats       monthlyStats      `json:"stats"`
}

// GetMonthlyRegister builds the staff attendance register of one month: a
// status code per staff member per day plus monthly counters. Past days
// without a record are marked "-"; days still ahead are left blank.
func (h *ReportHandler) GetMonthlyRegister(c *fiber.Ctx) error {
	now := h.now()
	month, err := strconv.Atoi(c.Query("month", strconv.Itoa(int(now.Month()))))
	if err != nil || month < 1 || month > 12 {
		return helper.BadRequest(c, "month must be between 1 and 12")
	}
	year, err := strconv.Atoi(c.Query("year", strconv.Itoa(now.Year())))
	if err != nil || year < 1900 {
		return helper.BadRequest(c, "year is invalid")
	}

	var hodID *uint
	if raw := c.Query("hod_id"); raw != "" && raw != report.AllSentinel {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return helper.InvalidID(c)
		}
		v := uint(id)
		hodID = &v
	}
	if s := middleware.Session(c); s.IsHOD() {
		hodID = s.HODID
	}

	staff, err := h.staffRepo.GetActiveByHOD(hodID)
	if err != nil {
		return helper.ServerError(c, err)
	}
	records, err := h.attendanceRepo.GetForMonth(hodID, month, year)
	if err != nil {
		return helper.ServerError(c, err)
	}

	// byStaff[staffID][day] = status
	byStaff := make(map[uint]map[int]string)
	for _, r := range records {
		if _, ok := byStaff[r.StaffID]; !ok {
			byStaff[r.StaffID] = make(map[int]string)
		}
		byStaff[r.StaffID][time.Time(r.Date).Day()] = r.Status
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, now.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	rows := make([]monthlyRow, 0, len(staff))
	for _, s := range staff {
		row := monthlyRow{
			StaffID:     s.ID,
			EmployeeID:  s.EmployeeID,
			Name:        s.Name,
			Designation: s.Designation,
			Daily:       make(map[string]string, daysInMonth),
		}
		days := byStaff[s.ID]

		for d := 1; d <= daysInMonth; d++ {
			key := fmt.Sprintf("%02d", d)
			status, recorded := days[d]
			if !recorded {
				if first.AddDate(0, 0, d-1).Before(today) {
					row.Daily[key] = codeMissing
					row.Stats.Missing++
				} else {
					row.Daily[key] = codeUpcoming
				}
				continue
			}

			code, known := statusCodes[status]
			if !known {
				code = status
			}
			row.Daily[key] = code

			switch status {
			case model.AttendancePresent:
				row.Stats.Present++
			case model.AttendanceAbsent:
				row.Stats.Absent++
			case model.AttendanceHalfDay:
				row.Stats.HalfDay++
			case model.AttendanceLeave:
				row.Stats.Leave++
			case model.AttendanceLate:
				row.Stats.Late++
			}
		}

		recorded := int64(len(days))
		row.Stats.AttendanceRate = report.AttendanceRate(int64(row.Stats.Present+row.Stats.Late), recorded, 0)
		rows = append(rows, row)
	}

	return c.JSON(fiber.Map{
		"month":      first.Format("January 2006"),
		"days_count": daysInMonth,
		"data":       rows,
	})
}
