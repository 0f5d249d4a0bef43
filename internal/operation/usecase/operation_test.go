package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"seatwatch-srv/internal/model"
	"seatwatch-srv/internal/operation"
	"seatwatch-srv/internal/operation/repository"
	pkgErrors "seatwatch-srv/pkg/errors"
	"seatwatch-srv/pkg/log"
	pkgRedis "seatwatch-srv/pkg/redis"
)

type fakeUpstream struct {
	ops     model.OperationMap
	err     error
	fetches int
}

func (f *fakeUpstream) FetchByRoute(context.Context, int) (model.OperationMap, error) {
	f.fetches++
	if f.err != nil {
		return nil, f.err
	}
	return f.ops, nil
}

type fakeSnapshotStore struct {
	snaps map[int]repository.Snapshot
	sets  int
}

func (f *fakeSnapshotStore) Get(_ context.Context, routeID int) (repository.Snapshot, error) {
	snap, ok := f.snaps[routeID]
	if !ok {
		return repository.Snapshot{}, pkgRedis.ErrNil
	}
	return snap, nil
}

func (f *fakeSnapshotStore) Set(_ context.Context, routeID int, snap repository.Snapshot) error {
	if f.snaps == nil {
		f.snaps = make(map[int]repository.Snapshot)
	}
	f.snaps[routeID] = snap
	f.sets++
	return nil
}

func sampleOps() model.OperationMap {
	return model.OperationMap{
		"2026-09-01": {
			{RouteID: 46251, Date: "2026-09-01", DepartureTime: "08:00:00", AvailableSeats: 4},
		},
	}
}

func newTestUsecase(up *fakeUpstream, snaps *fakeSnapshotStore, now time.Time) implUsecase {
	return implUsecase{
		l:        log.NewNoop(),
		upstream: up,
		snaps:    snaps,
		freshFor: 2 * time.Minute,
		clock:    func() time.Time { return now },
	}
}

func TestListByRouteFetchesAndSnapshots(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	up := &fakeUpstream{ops: sampleOps()}
	snaps := &fakeSnapshotStore{}
	uc := newTestUsecase(up, snaps, now)

	out, err := uc.ListByRoute(context.Background(), 46251)
	if err != nil {
		t.Fatalf("ListByRoute() error = %v", err)
	}
	if out.Stale {
		t.Fatal("Stale = true on live fetch")
	}
	if snaps.sets != 1 {
		t.Fatalf("snapshot sets = %d, want 1", snaps.sets)
	}
	if seats, ok := out.SeatCount("46251_2026-09-01_0"); !ok || seats != 4 {
		t.Fatalf("SeatCount = %d,%v, want 4,true", seats, ok)
	}
}

func TestListByRouteFreshSnapshotShortCircuits(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	up := &fakeUpstream{ops: sampleOps()}
	snaps := &fakeSnapshotStore{snaps: map[int]repository.Snapshot{
		46251: {Operations: sampleOps(), FetchedAt: now.Add(-30 * time.Second)},
	}}
	uc := newTestUsecase(up, snaps, now)

	out, err := uc.ListByRoute(context.Background(), 46251)
	if err != nil {
		t.Fatalf("ListByRoute() error = %v", err)
	}
	if up.fetches != 0 {
		t.Fatalf("upstream fetches = %d, want 0 inside fresh window", up.fetches)
	}
	if out.Stale {
		t.Fatal("Stale = true for a fresh snapshot")
	}
}

func TestListByRouteServesStaleOnOutage(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	up := &fakeUpstream{err: pkgErrors.NewTransientError("test", errors.New("connection refused"))}
	snaps := &fakeSnapshotStore{snaps: map[int]repository.Snapshot{
		46251: {Operations: sampleOps(), FetchedAt: now.Add(-time.Hour)},
	}}
	uc := newTestUsecase(up, snaps, now)

	out, err := uc.ListByRoute(context.Background(), 46251)
	if err != nil {
		t.Fatalf("ListByRoute() error = %v, want stale snapshot", err)
	}
	if !out.Stale {
		t.Fatal("Stale = false for a snapshot served during an outage")
	}
	if len(out.Operations) == 0 {
		t.Fatal("empty operations served from snapshot")
	}
}

func TestListByRouteNoSnapshotNoFabrication(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	up := &fakeUpstream{err: pkgErrors.NewTransientError("test", errors.New("connection refused"))}
	uc := newTestUsecase(up, &fakeSnapshotStore{}, now)

	_, err := uc.ListByRoute(context.Background(), 46251)
	if !errors.Is(err, operation.ErrCatalogUnavailable) {
		t.Fatalf("ListByRoute() error = %v, want ErrCatalogUnavailable", err)
	}
}

func TestListByRouteUnknownRoutePropagates(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	up := &fakeUpstream{err: operation.ErrRouteNotFound}
	uc := newTestUsecase(up, &fakeSnapshotStore{}, now)

	_, err := uc.ListByRoute(context.Background(), 99999)
	if !errors.Is(err, operation.ErrRouteNotFound) {
		t.Fatalf("ListByRoute() error = %v, want ErrRouteNotFound", err)
	}
}
