package handler

import (
	"staffing/internal/delivery/http/middleware"
	"staffing/internal/domain/staffing"
	"staffing/internal/pkg/response"
	"staffing/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

type skillResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	IsCertification bool      `json:"is_certification"`
}

type skillRequest struct {
	Name            string `json:"name"`
	IsCertification bool   `json:"is_certification"`
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/skills")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]skillResponse, 0, len(items))
	for _, it := range items {
		res = append(res, toSkillResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *SkillHandler) Create(c fiber.Ctx) error {
	var req skillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), actorFrom(c), usecase.SkillInput{
		Name:            req.Name,
		IsCertification: req.IsCertification,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Skill created successfully", toSkillResponse(created))
}

func (h *SkillHandler) Update(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req skillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.Update(c.Context(), actorFrom(c), id, usecase.SkillInput{
		Name:            req.Name,
		IsCertification: req.IsCertification,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toSkillResponse(updated))
}

func (h *SkillHandler) Delete(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), actorFrom(c), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func toSkillResponse(s staffing.Skill) skillResponse {
	return skillResponse{ID: s.ID, Name: s.Name, IsCertification: s.IsCertification}
}
