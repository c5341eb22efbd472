package handler

import (
	"staffing/internal/delivery/http/middleware"
	"staffing/internal/pkg/response"
	"staffing/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// ClientHandler serves both clients and their contracts; the two live in one
// handler because a contract never exists without its client.
type ClientHandler struct {
	uc usecase.ClientUsecase
}

type clientResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type clientRequest struct {
	Name string `json:"name"`
}

type contractResponse struct {
	ID       uuid.UUID `json:"id"`
	ClientID uuid.UUID `json:"client_id"`
	Name     string    `json:"name"`
}

type contractRequest struct {
	ClientID uuid.UUID `json:"client_id"`
	Name     string    `json:"name"`
}

func NewClientHandler(uc usecase.ClientUsecase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

func (h *ClientHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	clients := r.Group("/clients")
	clients.Get("/", h.ListClients)
	clients.Post("/", h.CreateClient)
	clients.Put("/:id", h.UpdateClient)
	clients.Delete("/:id", h.DeleteClient)

	contracts := r.Group("/contracts")
	contracts.Get("/", h.ListContracts)
	contracts.Post("/", h.CreateContract)
	contracts.Put("/:id", h.UpdateContract)
	contracts.Delete("/:id", h.DeleteContract)
}

func (h *ClientHandler) ListClients(c fiber.Ctx) error {
	items, err := h.uc.ListClients(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]clientResponse, 0, len(items))
	for _, it := range items {
		res = append(res, clientResponse{ID: it.ID, Name: it.Name})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *ClientHandler) CreateClient(c fiber.Ctx) error {
	var req clientRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.CreateClient(c.Context(), actorFrom(c), req.Name)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Client created successfully", clientResponse{ID: created.ID, Name: created.Name})
}

func (h *ClientHandler) UpdateClient(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req clientRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.UpdateClient(c.Context(), actorFrom(c), id, req.Name)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, clientResponse{ID: updated.ID, Name: updated.Name})
}

func (h *ClientHandler) DeleteClient(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteClient(c.Context(), actorFrom(c), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *ClientHandler) ListContracts(c fiber.Ctx) error {
	items, err := h.uc.ListContracts(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]contractResponse, 0, len(items))
	for _, it := range items {
		res = append(res, contractResponse{ID: it.ID, ClientID: it.ClientID, Name: it.Name})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *ClientHandler) CreateContract(c fiber.Ctx) error {
	var req contractRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.CreateContract(c.Context(), actorFrom(c), req.ClientID, req.Name)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Contract created successfully", contractResponse{ID: created.ID, ClientID: created.ClientID, Name: created.Name})
}

func (h *ClientHandler) UpdateContract(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req contractRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.UpdateContract(c.Context(), actorFrom(c), id, req.ClientID, req.Name)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, contractResponse{ID: updated.ID, ClientID: updated.ClientID, Name: updated.Name})
}

func (h *ClientHandler) DeleteContract(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteContract(c.Context(), actorFrom(c), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
