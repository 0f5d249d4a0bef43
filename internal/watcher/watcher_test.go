package watcher

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"seatwatch-srv/internal/alert/repository"
	"seatwatch-srv/internal/dispatcher"
	"seatwatch-srv/internal/model"
	"seatwatch-srv/internal/operation"
	userRepository "seatwatch-srv/internal/user/repository"
	"seatwatch-srv/pkg/log"
	"seatwatch-srv/pkg/paginator"
)

var (
	errTransient = errors.New("transient failure")
	errPermanent = errors.New("permanent failure")
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type fakeAlertRepo struct {
	alerts   []model.Alert
	notified map[string]int
}

func (r *fakeAlertRepo) Create(context.Context, repository.CreateOption) (model.Alert, error) {
	return model.Alert{}, nil
}

func (r *fakeAlertRepo) GetByID(context.Context, string) (model.Alert, error) {
	return model.Alert{}, nil
}

func (r *fakeAlertRepo) ListByUser(context.Context, string) ([]model.Alert, error) {
	return nil, nil
}

func (r *fakeAlertRepo) ListActive(_ context.Context, opt repository.ListActiveOption) ([]model.Alert, paginator.Paginator, error) {
	var eligible []model.Alert
	for _, a := range r.alerts {
		if a.IsActive && !a.Expired(opt.Now) {
			eligible = append(eligible, a)
		}
	}
	return eligible, paginator.Paginator{
		Total:       int64(len(eligible)),
		Count:       int64(len(eligible)),
		PerPage:     opt.Paginate.Limit,
		CurrentPage: opt.Paginate.Page,
	}, nil
}

func (r *fakeAlertRepo) SetActive(context.Context, string, bool) error { return nil }

func (r *fakeAlertRepo) MarkNotified(_ context.Context, id string, _ time.Time) error {
	if r.notified == nil {
		r.notified = make(map[string]int)
	}
	r.notified[id]++
	return nil
}

func (r *fakeAlertRepo) Delete(context.Context, string) error { return nil }

func (r *fakeAlertRepo) DeactivateExpired(context.Context, time.Time) (int64, error) {
	return 0, nil
}

type fakeUserRepo struct{}

func (fakeUserRepo) Create(context.Context, userRepository.CreateOption) (model.User, error) {
	return model.User{}, nil
}

func (fakeUserRepo) GetByID(_ context.Context, id string) (model.User, error) {
	return model.User{ID: id, Name: "tester", Email: "t@example.com", PushToken: "ExponentPushToken[x]"}, nil
}

func (fakeUserRepo) GetByKakaoID(context.Context, int64) (model.User, error) {
	return model.User{}, nil
}

func (fakeUserRepo) UpdateProfile(context.Context, string, userRepository.UpdateProfileOption) error {
	return nil
}

func (fakeUserRepo) UpdatePushToken(context.Context, string, string) error { return nil }

type fakeCatalog struct {
	mu      sync.Mutex
	fetches map[int]int
	ops     map[int]model.OperationMap
}

func (c *fakeCatalog) ListByRoute(_ context.Context, routeID int) (operation.CatalogOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fetches == nil {
		c.fetches = make(map[int]int)
	}
	c.fetches[routeID]++
	ops, ok := c.ops[routeID]
	if !ok {
		return operation.CatalogOutput{}, operation.ErrRouteNotFound
	}
	return operation.CatalogOutput{Operations: ops, FetchedAt: time.Now()}, nil
}

type fakeDispatcher struct {
	mu    sync.Mutex
	calls []dispatcher.Input
}

func (d *fakeDispatcher) Dispatch(_ context.Context, input dispatcher.Input) dispatcher.Output {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, input)
	out := make(dispatcher.Output)
	for _, ch := range input.Channels {
		out[ch] = dispatcher.ChannelResult{Delivered: true}
	}
	return out
}

func (d *fakeDispatcher) ListFailures(context.Context, string) ([]dispatcher.Failure, error) {
	return nil, nil
}

func routeOps(routeID, seats int) model.OperationMap {
	return model.OperationMap{
		"2026-09-01": {
			{RouteID: routeID, Date: "2026-09-01", DepartureTime: "08:00:00", AvailableSeats: seats},
		},
	}
}

func TestSweepBatchesByRouteAndNotifies(t *testing.T) {
	created := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	mk := func(id, route string, target int) model.Alert {
		return model.Alert{
			ID: id, UserID: "u-" + id, RouteID: route,
			ScheduleID: route + "_2026-09-01_0", TargetSeats: target,
			PushNotification: true, IsActive: true, CreatedAt: created,
		}
	}

	alerts := &fakeAlertRepo{alerts: []model.Alert{
		mk("a1", "46251", 2),
		mk("a2", "46251", 9), // same route, higher target: no crossing
		mk("a3", "46252", 1),
	}}
	catalog := &fakeCatalog{ops: map[int]model.OperationMap{
		46251: routeOps(46251, 3),
		46252: routeOps(46252, 1),
	}}
	disp := &fakeDispatcher{}

	w := New(log.NewNoop(), Config{Workers: 2}, alerts, fakeUserRepo{}, catalog, disp)
	w.clock = &fakeClock{now: created.Add(time.Minute)}

	w.Sweep(context.Background())

	// One catalog fetch per route even with two alerts on 46251.
	if catalog.fetches[46251] != 1 || catalog.fetches[46252] != 1 {
		t.Fatalf("fetches = %v, want one per route", catalog.fetches)
	}
	if len(disp.calls) != 2 {
		t.Fatalf("dispatch calls = %d, want 2", len(disp.calls))
	}
	if alerts.notified["a1"] != 1 || alerts.notified["a3"] != 1 {
		t.Fatalf("notified = %v, want a1 and a3 once each", alerts.notified)
	}
	if alerts.notified["a2"] != 0 {
		t.Fatalf("a2 notified %d times, want 0", alerts.notified["a2"])
	}
}

func TestSweepSkipsUnknownScheduleAndRouteErrors(t *testing.T) {
	created := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	alerts := &fakeAlertRepo{alerts: []model.Alert{
		{
			ID: "a1", UserID: "u1", RouteID: "99999",
			ScheduleID: "99999_2026-09-01_0", TargetSeats: 1,
			PushNotification: true, IsActive: true, CreatedAt: created,
		},
		{
			ID: "a2", UserID: "u2", RouteID: "46251",
			ScheduleID: "46251_2026-09-02_7", TargetSeats: 1,
			PushNotification: true, IsActive: true, CreatedAt: created,
		},
	}}
	catalog := &fakeCatalog{ops: map[int]model.OperationMap{
		46251: routeOps(46251, 5),
	}}
	disp := &fakeDispatcher{}

	w := New(log.NewNoop(), Config{}, alerts, fakeUserRepo{}, catalog, disp)
	w.clock = &fakeClock{now: created.Add(time.Minute)}

	w.Sweep(context.Background())

	// Route 99999 is unknown and a2's schedule is not in the catalog:
	// nothing dispatches, nothing panics, the sweep completes.
	if len(disp.calls) != 0 {
		t.Fatalf("dispatch calls = %d, want 0", len(disp.calls))
	}
	if len(alerts.notified) != 0 {
		t.Fatalf("notified = %v, want none", alerts.notified)
	}
}

func TestSweepNoDuplicateAcrossSweeps(t *testing.T) {
	created := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	alerts := &fakeAlertRepo{alerts: []model.Alert{
		{
			ID: "a1", UserID: "u1", RouteID: "46251",
			ScheduleID: "46251_2026-09-01_0", TargetSeats: 2,
			PushNotification: true, IsActive: true, CreatedAt: created,
		},
	}}
	catalog := &fakeCatalog{ops: map[int]model.OperationMap{
		46251: routeOps(46251, 4),
	}}
	disp := &fakeDispatcher{}

	w := New(log.NewNoop(), Config{}, alerts, fakeUserRepo{}, catalog, disp)
	w.clock = &fakeClock{now: created.Add(time.Minute)}

	for i := 0; i < 3; i++ {
		w.Sweep(context.Background())
	}

	if len(disp.calls) != 1 {
		t.Fatalf("dispatch calls over 3 sweeps = %d, want 1", len(disp.calls))
	}
	if alerts.notified["a1"] != 1 {
		t.Fatalf("a1 notified %d times, want 1", alerts.notified["a1"])
	}
}
