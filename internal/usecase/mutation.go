package usecase

import (
	"context"
	"log"
	"time"

	"staffing/internal/repository"
)

// Cache is the slice of the redis wrapper the usecases need. A nil Cache is
// a no-op, mirroring the bypass behavior of the underlying client.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// Notifier pushes change events to connected dashboards.
type Notifier interface {
	StaffingUpdated(scope string)
}

const (
	cacheKeySkillsPrefix = "staffing:skills:"
	cacheKeyFlowPrefix   = "staffing:flow:"
)

// Recorder bundles the cross-cutting write plumbing: audit trail, derived
// cache invalidation, and websocket notification. Every write usecase embeds
// one and calls recordChange after a successful mutation.
type Recorder struct {
	audit    repository.AuditRepository
	cache    Cache
	notifier Notifier
	logger   *log.Logger
}

func NewRecorder(audit repository.AuditRepository, cache Cache, notifier Notifier, logger *log.Logger) Recorder {
	return Recorder{audit: audit, cache: cache, notifier: notifier, logger: logger}
}

func (r Recorder) recordChange(ctx context.Context, actor, action, entity, entityID string) {
	if r.audit != nil {
		if err := r.audit.Append(ctx, repository.AuditEntry{
			Actor:    actor,
			Action:   action,
			Entity:   entity,
			EntityID: entityID,
		}); err != nil && r.logger != nil {
			r.logger.Printf("audit append failed | entity=%s action=%s err=%v", entity, action, err)
		}
	}

	// Any staffing write can change derived skills and flow graphs, so both
	// caches go at once.
	if r.cache != nil {
		_ = r.cache.DeleteByPattern(ctx, cacheKeySkillsPrefix+"*")
		_ = r.cache.DeleteByPattern(ctx, cacheKeyFlowPrefix+"*")
	}

	if r.notifier != nil {
		r.notifier.StaffingUpdated(entity)
	}
}
