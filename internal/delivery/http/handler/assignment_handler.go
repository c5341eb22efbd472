package handler

import (
	"staffing/internal/delivery/http/middleware"
	"staffing/internal/pkg/response"
	"staffing/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AssignmentHandler struct {
	uc usecase.AssignmentUsecase
}

type assignmentResponse struct {
	ID         uuid.UUID `json:"id"`
	ResourceID uuid.UUID `json:"resource_id"`
	ProjectID  uuid.UUID `json:"project_id"`
}

type createAssignmentRequest struct {
	ResourceID uuid.UUID `json:"resource_id"`
	ProjectID  uuid.UUID `json:"project_id"`
}

type allocationRequest struct {
	Percentage int `json:"percentage"`
}

type allocationRangeRequest struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Percentage int    `json:"percentage"`
}

func NewAssignmentHandler(uc usecase.AssignmentUsecase) *AssignmentHandler {
	return &AssignmentHandler{uc: uc}
}

func (h *AssignmentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/assignments")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Delete("/:id", h.Delete)

	grp.Get("/:id/allocations", h.Allocations)
	grp.Put("/:id/allocations/:day", h.SetAllocation)
	grp.Post("/:id/allocations", h.SetAllocationRange)
}

func (h *AssignmentHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]assignmentResponse, 0, len(items))
	for _, it := range items {
		res = append(res, assignmentResponse{ID: it.ID, ResourceID: it.ResourceID, ProjectID: it.ProjectID})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *AssignmentHandler) Create(c fiber.Ctx) error {
	var req createAssignmentRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), actorFrom(c), req.ResourceID, req.ProjectID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Assignment created successfully", assignmentResponse{
		ID:         created.ID,
		ResourceID: created.ResourceID,
		ProjectID:  created.ProjectID,
	})
}

func (h *AssignmentHandler) Delete(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), actorFrom(c), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *AssignmentHandler) Allocations(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	byDay, err := h.uc.Allocations(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, byDay)
}

func (h *AssignmentHandler) SetAllocation(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req allocationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.SetAllocation(c.Context(), actorFrom(c), id, c.Params("day"), req.Percentage); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

// SetAllocationRange bulk-fills a date range; weekend days inside the range
// are skipped, the response reports how many days were actually written.
func (h *AssignmentHandler) SetAllocationRange(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req allocationRangeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	count, err := h.uc.SetAllocationRange(c.Context(), actorFrom(c), id, usecase.AllocationRangeInput{
		From:       req.From,
		To:         req.To,
		Percentage: req.Percentage,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"days_written": count})
}
