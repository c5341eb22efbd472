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

type LeaveHandler struct {
	uc usecase.LeaveUsecase
}

type leaveResponse struct {
	ID         uuid.UUID `json:"id"`
	ResourceID uuid.UUID `json:"resource_id"`
	StartDay   string    `json:"start_day"`
	EndDay     string    `json:"end_day"`
	Kind       string    `json:"kind"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type createLeaveRequest struct {
	ResourceID uuid.UUID `json:"resource_id"`
	StartDay   string    `json:"start_day"`
	EndDay     string    `json:"end_day"`
	Kind       string    `json:"kind"`
}

func NewLeaveHandler(uc usecase.LeaveUsecase) *LeaveHandler {
	return &LeaveHandler{uc: uc}
}

func (h *LeaveHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/leave-requests")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Post("/:id/approve", h.Approve)
	grp.Post("/:id/reject", h.Reject)
	grp.Delete("/:id", h.Delete)
}

func (h *LeaveHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]leaveResponse, 0, len(items))
	for _, it := range items {
		res = append(res, toLeaveResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *LeaveHandler) Create(c fiber.Ctx) error {
	var req createLeaveRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), actorFrom(c), usecase.LeaveInput{
		ResourceID: req.ResourceID,
		StartDay:   req.StartDay,
		EndDay:     req.EndDay,
		Kind:       req.Kind,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Leave request created successfully", toLeaveResponse(created))
}

func (h *LeaveHandler) Approve(c fiber.Ctx) error {
	return h.decide(c, true)
}

func (h *LeaveHandler) Reject(c fiber.Ctx) error {
	return h.decide(c, false)
}

func (h *LeaveHandler) decide(c fiber.Ctx, approve bool) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	decided, err := h.uc.Decide(c.Context(), actorFrom(c), id, approve)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toLeaveResponse(decided))
}

func (h *LeaveHandler) Delete(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), actorFrom(c), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func toLeaveResponse(l staffing.LeaveRequest) leaveResponse {
	return leaveResponse{
		ID:         l.ID,
		ResourceID: l.ResourceID,
		StartDay:   l.StartDay,
		EndDay:     l.EndDay,
		Kind:       l.Kind,
		Status:     string(l.Status),
		CreatedAt:  l.CreatedAt,
	}
}
