package handler

import (
	"time"

	"staffing/internal/delivery/http/middleware"
	"staffing/internal/domain/staffing"
	"staffing/internal/pkg/response"
	"staffing/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ResourceHandler struct {
	uc       usecase.ResourceUsecase
	staffing usecase.StaffingUsecase
}

type resourceResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Location string    `json:"location"`
}

type resourceRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Location string `json:"location"`
}

type manualSkillRequest struct {
	Level      int        `json:"level"`
	AcquiredAt *time.Time `json:"acquired_at"`
	ExpiresAt  *time.Time `json:"expires_at"`
}

func NewResourceHandler(uc usecase.ResourceUsecase, staffingUC usecase.StaffingUsecase) *ResourceHandler {
	return &ResourceHandler{uc: uc, staffing: staffingUC}
}

func (h *ResourceHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/resources")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Get("/:id", h.Get)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)

	grp.Put("/:id/skills/:skill_id", h.AssignSkill)
	grp.Delete("/:id/skills/:skill_id", h.RemoveSkill)
	grp.Get("/:id/computed-skills", h.ComputedSkills)
}

func (h *ResourceHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]resourceResponse, 0, len(items))
	for _, it := range items {
		res = append(res, toResourceResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *ResourceHandler) Get(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	res, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toResourceResponse(res))
}

func (h *ResourceHandler) Create(c fiber.Ctx) error {
	var req resourceRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), actorFrom(c), usecase.ResourceInput{
		Name:     req.Name,
		Email:    req.Email,
		Location: req.Location,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Resource created successfully", toResourceResponse(created))
}

func (h *ResourceHandler) Update(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req resourceRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.Update(c.Context(), actorFrom(c), id, usecase.ResourceInput{
		Name:     req.Name,
		Email:    req.Email,
		Location: req.Location,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toResourceResponse(updated))
}

func (h *ResourceHandler) Delete(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), actorFrom(c), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *ResourceHandler) AssignSkill(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	skillID, err := uuidParam(c, "skill_id")
	if err != nil {
		return err
	}

	var req manualSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.AssignSkill(c.Context(), actorFrom(c), id, skillID, usecase.ManualSkillInput{
		Level:      req.Level,
		AcquiredAt: req.AcquiredAt,
		ExpiresAt:  req.ExpiresAt,
	}); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *ResourceHandler) RemoveSkill(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	skillID, err := uuidParam(c, "skill_id")
	if err != nil {
		return err
	}

	if err := h.uc.RemoveSkill(c.Context(), actorFrom(c), id, skillID); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *ResourceHandler) ComputedSkills(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	items, err := h.staffing.ComputedSkills(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func toResourceResponse(r staffing.Resource) resourceResponse {
	return resourceResponse{ID: r.ID, Name: r.Name, Email: r.Email, Location: r.Location}
}
