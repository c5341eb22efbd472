package handler

import (
	"log"

	"staffing/internal/config"
	"staffing/internal/delivery/http/middleware"
	"staffing/internal/domain/staffing"
	"staffing/internal/export"
	"staffing/internal/pkg/response"
	"staffing/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// StaffingHandler serves the month-scoped flow graph and the CSV report
// built from it.
type StaffingHandler struct {
	uc        usecase.StaffingUsecase
	exportCfg config.ExportConfig
	logger    *log.Logger
}

func NewStaffingHandler(uc usecase.StaffingUsecase, exportCfg config.ExportConfig, logger *log.Logger) *StaffingHandler {
	return &StaffingHandler{uc: uc, exportCfg: exportCfg, logger: logger}
}

func (h *StaffingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/staffing/flow", h.Flow)
	r.Get("/reports/monthly", h.MonthlyReport)
	r.Post("/reports/export", h.ExportReport)
}

func (h *StaffingHandler) Flow(c fiber.Ctx) error {
	month, err := monthQuery(c)
	if err != nil {
		return err
	}

	g, err := h.uc.FlowGraph(c.Context(), month)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, g)
}

func (h *StaffingHandler) MonthlyReport(c fiber.Ctx) error {
	month, err := monthQuery(c)
	if err != nil {
		return err
	}

	g, err := h.uc.FlowGraph(c.Context(), month)
	if err != nil {
		return mapUsecaseError(err)
	}

	body, err := export.BuildMonthlyReport(g, month)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.ReportFileName(month)+`"`)
	return c.Status(fiber.StatusOK).Send(body)
}

func (h *StaffingHandler) ExportReport(c fiber.Ctx) error {
	month, err := monthQuery(c)
	if err != nil {
		return err
	}

	g, err := h.uc.FlowGraph(c.Context(), month)
	if err != nil {
		return mapUsecaseError(err)
	}

	body, err := export.BuildMonthlyReport(g, month)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	fileName := export.ReportFileName(month)
	if err := export.Upload(c.Context(), h.exportCfg, fileName, body); err != nil {
		h.logger.Printf("report export failed | month=%s file=%s err=%v", month, fileName, err)
		return middleware.NewAppError(fiber.StatusBadGateway, "Report upload failed", nil, err)
	}

	h.logger.Printf("report exported | month=%s file=%s bytes=%d", month, fileName, len(body))
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"file":  fileName,
		"bytes": len(body),
	})
}

func monthQuery(c fiber.Ctx) (staffing.Month, error) {
	month, err := staffing.ParseMonth(c.Query("month"))
	if err != nil {
		return staffing.Month{}, middleware.NewAppError(fiber.StatusBadRequest, "Invalid month, expected YYYY-MM", nil, err)
	}
	return month, nil
}
