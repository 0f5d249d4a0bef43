package usecase

import (
	"context"
	"errors"

	"seatwatch-srv/internal/operation"
	"seatwatch-srv/internal/operation/repository"
	pkgErrors "seatwatch-srv/pkg/errors"
	pkgRedis "seatwatch-srv/pkg/redis"
)

func (uc implUsecase) ListByRoute(ctx context.Context, routeID int) (operation.CatalogOutput, error) {
	now := uc.clock()

	// A recent snapshot short-circuits the provider call. The watcher
	// polls many alerts on the same route inside one sweep and must not
	// multiply upstream traffic.
	snap, snapErr := uc.snaps.Get(ctx, routeID)
	haveSnap := snapErr == nil
	if haveSnap && now.Sub(snap.FetchedAt) < uc.freshFor {
		return operation.CatalogOutput{
			Operations: snap.Operations,
			FetchedAt:  snap.FetchedAt,
		}, nil
	}
	if snapErr != nil && !pkgRedis.IsNil(snapErr) {
		uc.l.Warnf(ctx, "internal.operation.usecase.ListByRoute.snapshot: %v", snapErr)
	}

	ops, err := uc.upstream.FetchByRoute(ctx, routeID)
	if err != nil {
		if errors.Is(err, operation.ErrRouteNotFound) {
			return operation.CatalogOutput{}, err
		}
		if haveSnap {
			uc.l.Warnf(ctx, "internal.operation.usecase.ListByRoute.upstream: %v, serving stale snapshot", err)
			return operation.CatalogOutput{
				Operations: snap.Operations,
				FetchedAt:  snap.FetchedAt,
				Stale:      true,
			}, nil
		}
		uc.l.Errorf(ctx, "internal.operation.usecase.ListByRoute.upstream: %v", err)
		if pkgErrors.IsTransient(err) {
			return operation.CatalogOutput{}, operation.ErrCatalogUnavailable
		}
		return operation.CatalogOutput{}, err
	}

	if err := uc.snaps.Set(ctx, routeID, repository.Snapshot{Operations: ops, FetchedAt: now}); err != nil {
		// Snapshot write failures degrade freshness tracking only.
		uc.l.Warnf(ctx, "internal.operation.usecase.ListByRoute.snapshotSet: %v", err)
	}

	return operation.CatalogOutput{Operations: ops, FetchedAt: now}, nil
}
