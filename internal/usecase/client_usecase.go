package usecase

import (
	"context"
	"strings"

	"staffing/internal/domain/staffing"
	"staffing/internal/repository"

	"github.com/google/uuid"
)

type ClientUsecase interface {
	ListClients(ctx context.Context) ([]staffing.Client, error)
	CreateClient(ctx context.Context, actor, name string) (staffing.Client, error)
	UpdateClient(ctx context.Context, actor string, id uuid.UUID, name string) (staffing.Client, error)
	DeleteClient(ctx context.Context, actor string, id uuid.UUID) error

	ListContracts(ctx context.Context) ([]staffing.Contract, error)
	CreateContract(ctx context.Context, actor string, clientID uuid.UUID, name string) (staffing.Contract, error)
	UpdateContract(ctx context.Context, actor string, id, clientID uuid.UUID, name string) (staffing.Contract, error)
	DeleteContract(ctx context.Context, actor string, id uuid.UUID) error
}

type Directory struct {
	clients   repository.ClientRepository
	contracts repository.ContractRepository
	rec       Recorder
}

func NewClientUsecase(clients repository.ClientRepository, contracts repository.ContractRepository, rec Recorder) *Directory {
	return &Directory{clients: clients, contracts: contracts, rec: rec}
}

func (u *Directory) ListClients(ctx context.Context) ([]staffing.Client, error) {
	out, err := u.clients.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Directory) CreateClient(ctx context.Context, actor, name string) (staffing.Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return staffing.Client{}, ErrInvalidInput
	}

	c := staffing.Client{ID: uuid.New(), Name: name}
	if err := u.clients.Create(ctx, c); err != nil {
		return staffing.Client{}, ErrInternal
	}

	u.rec.recordChange(ctx, actor, "create", "client", c.ID.String())
	return c, nil
}

func (u *Directory) UpdateClient(ctx context.Context, actor string, id uuid.UUID, name string) (staffing.Client, error) {
	name = strings.TrimSpace(name)
	if id == uuid.Nil || name == "" {
		return staffing.Client{}, ErrInvalidInput
	}

	c := staffing.Client{ID: id, Name: name}
	if err := u.clients.Update(ctx, c); err != nil {
		if err == repository.ErrNotFound {
			return staffing.Client{}, ErrNotFound
		}
		return staffing.Client{}, ErrInternal
	}

	u.rec.recordChange(ctx, actor, "update", "client", id.String())
	return c, nil
}

func (u *Directory) DeleteClient(ctx context.Context, actor string, id uuid.UUID) error {
	if err := u.clients.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return ErrNotFound
		}
		return ErrInternal
	}

	u.rec.recordChange(ctx, actor, "delete", "client", id.String())
	return nil
}

func (u *Directory) ListContracts(ctx context.Context) ([]staffing.Contract, error) {
	out, err := u.contracts.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Directory) CreateContract(ctx context.Context, actor string, clientID uuid.UUID, name string) (staffing.Contract, error) {
	name = strings.TrimSpace(name)
	if clientID == uuid.Nil || name == "" {
		return staffing.Contract{}, ErrInvalidInput
	}

	c := staffing.Contract{ID: uuid.New(), ClientID: clientID, Name: name}
	if err := u.contracts.Create(ctx, c); err != nil {
		return staffing.Contract{}, ErrInternal
	}

	u.rec.recordChange(ctx, actor, "create", "contract", c.ID.String())
	return c, nil
}

func (u *Directory) UpdateContract(ctx context.Context, actor string, id, clientID uuid.UUID, name string) (staffing.Contract, error) {
	name = strings.TrimSpace(name)
	if id == uuid.Nil || clientID == uuid.Nil || name == "" {
		return staffing.Contract{}, ErrInvalidInput
	}

	c := staffing.Contract{ID: id, ClientID: clientID, Name: name}
	if err := u.contracts.Update(ctx, c); err != nil {
		if err == repository.ErrNotFound {
			return staffing.Contract{}, ErrNotFound
		}
		return staffing.Contract{}, ErrInternal
	}

	u.rec.recordChange(ctx, actor, "update", "contract", id.String())
	return c, nil
}

func (u *Directory) DeleteContract(ctx context.Context, actor string, id uuid.UUID) error {
	if err := u.contracts.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return ErrNotFound
		}
		return ErrInternal
	}

	u.rec.recordChange(ctx, actor, "delete", "contract", id.String())
	return nil
}
