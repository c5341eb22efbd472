package handler

import (
	"staffing/internal/delivery/http/middleware"
	"staffing/internal/domain/staffing"
	"staffing/internal/pkg/response"
	"staffing/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ProjectHandler struct {
	uc usecase.ProjectUsecase
}

type projectResponse struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	ClientID   uuid.UUID  `json:"client_id"`
	ContractID *uuid.UUID `json:"contract_id,omitempty"`
}

type projectRequest struct {
	Name       string     `json:"name"`
	ClientID   uuid.UUID  `json:"client_id"`
	ContractID *uuid.UUID `json:"contract_id"`
}

func NewProjectHandler(uc usecase.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

func (h *ProjectHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/projects")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Get("/:id", h.Get)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)

	grp.Put("/:id/skills/:skill_id", h.RequireSkill)
	grp.Delete("/:id/skills/:skill_id", h.DropSkill)
}

func (h *ProjectHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]projectResponse, 0, len(items))
	for _, it := range items {
		res = append(res, toProjectResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *ProjectHandler) Get(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	p, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toProjectResponse(p))
}

func (h *ProjectHandler) Create(c fiber.Ctx) error {
	var req projectRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), actorFrom(c), usecase.ProjectInput{
		Name:       req.Name,
		ClientID:   req.ClientID,
		ContractID: req.ContractID,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Project created successfully", toProjectResponse(created))
}

func (h *ProjectHandler) Update(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req projectRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.Update(c.Context(), actorFrom(c), id, usecase.ProjectInput{
		Name:       req.Name,
		ClientID:   req.ClientID,
		ContractID: req.ContractID,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toProjectResponse(updated))
}

func (h *ProjectHandler) Delete(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), actorFrom(c), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *ProjectHandler) RequireSkill(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	skillID, err := uuidParam(c, "skill_id")
	if err != nil {
		return err
	}

	if err := h.uc.RequireSkill(c.Context(), actorFrom(c), id, skillID); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *ProjectHandler) DropSkill(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	skillID, err := uuidParam(c, "skill_id")
	if err != nil {
		return err
	}

	if err := h.uc.DropSkill(c.Context(), actorFrom(c), id, skillID); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func toProjectResponse(p staffing.Project) projectResponse {
	return projectResponse{ID: p.ID, Name: p.Name, ClientID: p.ClientID, ContractID: p.ContractID}
}
