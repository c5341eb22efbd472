package staffing

import (
	"time"

	"github.com/google/uuid"
)

type Resource struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Location string
}

type Client struct {
	ID   uuid.UUID
	Name string
}

type Contract struct {
	ID       uuid.UUID
	ClientID uuid.UUID
	Name     string
}

type Project struct {
	ID         uuid.UUID
	Name       string
	ClientID   uuid.UUID
	ContractID *uuid.UUID
}

// ProjectContract links a project to a contract when the project row itself
// carries no contract id. A direct Project.ContractID always wins over a link.
type ProjectContract struct {
	ProjectID  uuid.UUID
	ContractID uuid.UUID
}

type Skill struct {
	ID              uuid.UUID
	Name            string
	IsCertification bool
}

// ResourceSkill is a manually asserted skill level, unique per (resource, skill).
type ResourceSkill struct {
	ResourceID uuid.UUID
	SkillID    uuid.UUID
	Level      Level
	AcquiredAt *time.Time
	ExpiresAt  *time.Time
}

// ProjectSkill asserts that a project exercises a skill. Pure lookup row, no level.
type ProjectSkill struct {
	ProjectID uuid.UUID
	SkillID   uuid.UUID
}

type Assignment struct {
	ID         uuid.UUID
	ResourceID uuid.UUID
	ProjectID  uuid.UUID
}

// AllocationSet maps assignment id -> day ("2006-01-02") -> percentage of the
// working day spent on that assignment (0-100).
type AllocationSet map[uuid.UUID]map[string]int

// Holiday blocks a calendar day. An empty Location applies company-wide,
// otherwise only to resources at that location.
type Holiday struct {
	Day      string
	Location string
}

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "PENDING"
	LeaveApproved LeaveStatus = "APPROVED"
	LeaveRejected LeaveStatus = "REJECTED"
)

type LeaveRequest struct {
	ID         uuid.UUID
	ResourceID uuid.UUID
	StartDay   string
	EndDay     string
	Kind       string
	Status     LeaveStatus
	CreatedAt  time.Time
}
