package handler

import (
	"time"

	"hod-management-backend/internal/dto"
	"hod-management-backend/internal/helper"
	"hod-management-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

func dayString(d datatypes.Date) string {
	return time.Time(d).Format("2006-01-02")
}

type AttendanceHandler struct {
	repo repository.AttendanceRepository
}

func NewAttendanceHandler(repo repository.AttendanceRepository) *AttendanceHandler {
	return &AttendanceHandler{repo: repo}
}

func (h *AttendanceHandler) GetAll(c *fiber.Ctx) error {
	records, err := h.repo.GetAll()
	if err != nil {
		return helper.ServerError(c, err)
	}
	return c.JSON(records)
}

// GetByRange lists records between start_date and end_date inclusive.
func (h *AttendanceHandler) GetByRange(c *fiber.Ctx) error {
	start, err := dto.ParseDate(c.Query("start_date"))
	if err != nil || start == nil {
		return helper.BadRequest(c, "start_date is required (YYYY-MM-DD)")
	}
	end, err := dto.ParseDate(c.Query("end_date"))
	if err != nil || end == nil {
		return helper.BadRequest(c, "end_date is required (YYYY-MM-DD)")
	}

	records, err := h.repo.GetByRange(dayString(*start), dayString(*end))
	if err != nil {
		return helper.ServerError(c, err)
	}
	return c.JSON(records)
}

func (h *AttendanceHandler) GetByHOD(c *fiber.Ctx) error {
	hodID, ok := helper.ParamID(c, "hodId")
	if !ok {
		return helper.InvalidID(c)
	}
	records, err := h.repo.GetByHOD(hodID)
	if err != nil {
		return helper.ServerError(c, err)
	}
	return c.JSON(records)
}

func (h *AttendanceHandler) SummaryByHOD(c *fiber.Ctx) error {
	rows, err := h.repo.SummaryByHOD()
	if err != nil {
		return helper.ServerError(c, err)
	}
	return c.JSON(rows)
}

func (h *AttendanceHandler) Create(c *fiber.Ctx) error {
	var req dto.AttendanceRequest
	if ok, err := helper.Bind(c, &req); !ok {
		return err
	}
	record, err := req.ToModel()
	if err != nil {
		return helper.BadRequest(c, err.Error())
	}

	if err := h.repo.Create(&record); err != nil {
		return helper.ServerError(c, err)
	}
	return helper.Created(c, record.ID, "Attendance recorded successfully")
}

func (h *AttendanceHandler) Update(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.InvalidID(c)
	}
	var req dto.AttendanceRequest
	if ok, err := helper.Bind(c, &req); !ok {
		return err
	}
	record, err := req.ToModel()
	if err != nil {
		return helper.BadRequest(c, err.Error())
	}

	record.ID = id
	if err := h.repo.Update(&record); err != nil {
		return helper.ServerError(c, err)
	}
	return helper.Done(c, id, "Attendance updated successfully")
}

func (h *AttendanceHandler) Delete(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.InvalidID(c)
	}
	if err := h.repo.Delete(id); err != nil {
		return helper.ServerError(c, err)
	}
	return helper.Done(c, id, "Attendance deleted successfully")
}
