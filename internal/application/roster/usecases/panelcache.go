package usecases

import (
	"context"

	"github.com/faena-hq/faena/internal/application/roster/dto"
	"github.com/faena-hq/faena/internal/domain/organization"
	"github.com/faena-hq/faena/internal/domain/roster"
)

// PanelCache is an advisory cache for project panels. A miss (or any cache
// failure) just means the panel is rebuilt from the database; implementations
// must never fail the request.
type PanelCache interface {
	Get(ctx context.Context, projectID uint) (*dto.ProjectPanelDTO, bool)
	Set(ctx context.Context, projectID uint, panel *dto.ProjectPanelDTO)
	Invalidate(ctx context.Context, projectID uint)
}

// noopPanelCache is used when no cache backend is configured.
type noopPanelCache struct{}

func (noopPanelCache) Get(ctx context.Context, projectID uint) (*dto.ProjectPanelDTO, bool) {
	return nil, false
}
func (noopPanelCache) Set(ctx context.Context, projectID uint, panel *dto.ProjectPanelDTO) {}
func (noopPanelCache) Invalidate(ctx context.Context, projectID uint)                      {}

// NoopPanelCache returns a cache that never hits.
func NoopPanelCache() PanelCache {
	return noopPanelCache{}
}

// invalidateCyclePanel drops the cached panel of the project owning the
// cycle's contract. Resolution failures only cost cache freshness, so they
// are swallowed.
func invalidateCyclePanel(ctx context.Context, contractRepo organization.ContractRepository, cache PanelCache, cycle *roster.Cycle) {
	contract, err := contractRepo.GetByID(ctx, cycle.ContractID())
	if err != nil {
		return
	}
	cache.Invalidate(ctx, contract.ProjectID())
}
