package handler

import (
	"strconv"
	"time"

	"staffing/internal/delivery/http/middleware"
	"staffing/internal/domain/staffing"
	"staffing/internal/pkg/response"
	"staffing/internal/repository"
	"staffing/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SettingsHandler struct {
	uc usecase.SettingsUsecase
}

type thresholdsPayload struct {
	Novice float64 `json:"novice"`
	Junior float64 `json:"junior"`
	Middle float64 `json:"middle"`
	Senior float64 `json:"senior"`
	Expert float64 `json:"expert"`
}

type holidayPayload struct {
	Day      string `json:"day"`
	Location string `json:"location"`
}

type auditEntryResponse struct {
	ID       int64     `json:"id"`
	Actor    string    `json:"actor"`
	Action   string    `json:"action"`
	Entity   string    `json:"entity"`
	EntityID string    `json:"entity_id"`
	At       time.Time `json:"at"`
}

func NewSettingsHandler(uc usecase.SettingsUsecase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

func (h *SettingsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	settings := r.Group("/settings")
	settings.Get("/thresholds", h.Thresholds)
	settings.Put("/thresholds", h.PutThresholds)
	settings.Get("/holidays", h.Holidays)
	settings.Post("/holidays", h.AddHoliday)
	settings.Delete("/holidays", h.RemoveHoliday)

	r.Get("/audit", h.AuditLog)
}

func (h *SettingsHandler) Thresholds(c fiber.Ctx) error {
	th, err := h.uc.Thresholds(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, thresholdsPayload{
		Novice: th.Novice,
		Junior: th.Junior,
		Middle: th.Middle,
		Senior: th.Senior,
		Expert: th.Expert,
	})
}

func (h *SettingsHandler) PutThresholds(c fiber.Ctx) error {
	var req thresholdsPayload
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	th := staffing.Thresholds{
		Novice: req.Novice,
		Junior: req.Junior,
		Middle: req.Middle,
		Senior: req.Senior,
		Expert: req.Expert,
	}
	if err := h.uc.PutThresholds(c.Context(), actorFrom(c), th); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *SettingsHandler) Holidays(c fiber.Ctx) error {
	items, err := h.uc.Holidays(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]holidayPayload, 0, len(items))
	for _, it := range items {
		res = append(res, holidayPayload{Day: it.Day, Location: it.Location})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *SettingsHandler) AddHoliday(c fiber.Ctx) error {
	var req holidayPayload
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.AddHoliday(c.Context(), actorFrom(c), staffing.Holiday{Day: req.Day, Location: req.Location}); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Holiday added successfully", nil)
}

func (h *SettingsHandler) RemoveHoliday(c fiber.Ctx) error {
	var req holidayPayload
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.RemoveHoliday(c.Context(), actorFrom(c), staffing.Holiday{Day: req.Day, Location: req.Location}); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *SettingsHandler) AuditLog(c fiber.Ctx) error {
	limit := parseQueryInt(c, "limit", 100)
	offset := parseQueryInt(c, "offset", 0)

	entries, err := h.uc.AuditLog(c.Context(), limit, offset)
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]auditEntryResponse, 0, len(entries))
	for _, e := range entries {
		res = append(res, toAuditEntryResponse(e))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func toAuditEntryResponse(e repository.AuditEntry) auditEntryResponse {
	return auditEntryResponse{
		ID:       e.ID,
		Actor:    e.Actor,
		Action:   e.Action,
		Entity:   e.Entity,
		EntityID: e.EntityID,
		At:       e.At,
	}
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) int {
	s := c.Query(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}
