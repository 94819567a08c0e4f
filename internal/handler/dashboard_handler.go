package handler

import (
	"log"
	"strconv"
	"strings"

	"hod-management-backend/internal/middleware"
	"hod-management-backend/internal/report"
	"hod-management-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	usecase *usecase.DashboardUsecase
}

func NewDashboardHandler(uc *usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// dashboardParams reads year, month, date and hod_id. A hod_id that is not a
// positive number selects HOD 0, which matches no rows. A HOD session always
// sees its own HOD regardless of the query.
func dashboardParams(c *fiber.Ctx) report.Params {
	p := report.Params{
		Year:  strings.TrimSpace(c.Query("year")),
		Month: strings.TrimSpace(c.Query("month")),
		Date:  strings.TrimSpace(c.Query("date")),
	}
	if raw := c.Query("hod_id"); raw != "" && raw != report.AllSentinel {
		var v uint
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			v = uint(id)
		}
		p.HODID = &v
	}
	if s := middleware.Session(c); s.IsHOD() {
		v := *s.HODID
		p.HODID = &v
	}
	return p
}

// respond writes the payload even when err is set; the dashboard degrades to
// defaults instead of failing.
func respond[T any](c *fiber.Ctx, name string, fn func(report.Params) (T, error)) error {
	out, err := fn(dashboardParams(c))
	if err != nil {
		log.Printf("Dashboard %s error: %v", name, err)
	}
	return c.JSON(out)
}

func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	return respond(c, "stats", h.usecase.Stats)
}

func (h *DashboardHandler) QuickStats(c *fiber.Ctx) error {
	return respond(c, "quick stats", h.usecase.QuickStats)
}

func (h *DashboardHandler) SchemesByCategory(c *fiber.Ctx) error {
	return respond(c, "schemes by category", h.usecase.SchemesByCategory)
}

func (h *DashboardHandler) HODsByDepartment(c *fiber.Ctx) error {
	return respond(c, "hods by department", h.usecase.HODsByDepartment)
}

func (h *DashboardHandler) BudgetByHOD(c *fiber.Ctx) error {
	return respond(c, "budget by hod", h.usecase.BudgetByHOD)
}

func (h *DashboardHandler) SchemesByHOD(c *fiber.Ctx) error {
	return respond(c, "schemes by hod", h.usecase.SchemesByHOD)
}

func (h *DashboardHandler) AttendanceByHOD(c *fiber.Ctx) error {
	return respond(c, "attendance by hod", h.usecase.AttendanceByHOD)
}

func (h *DashboardHandler) RevenueByHOD(c *fiber.Ctx) error {
	return respond(c, "revenue by hod", h.usecase.RevenueByHOD)
}

func (h *DashboardHandler) RevenueByDepartment(c *fiber.Ctx) error {
	return respond(c, "revenue by department", h.usecase.RevenueByDepartment)
}

func (h *DashboardHandler) KPISummary(c *fiber.Ctx) error {
	return respond(c, "kpi summary", h.usecase.KPISummary)
}

func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	return respond(c, "overview", h.usecase.Overview)
}
