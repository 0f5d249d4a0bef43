package watcher

import (
	"context"
	"strconv"
	"sync"
	"time"

	"seatwatch-srv/internal/alert/repository"
	"seatwatch-srv/internal/dispatcher"
	"seatwatch-srv/internal/model"
	"seatwatch-srv/internal/operation"
	"seatwatch-srv/pkg/paginator"
)

// Run sweeps until ctx is cancelled. It is meant to be the main loop of
// the watcher process; only one instance should run against a store.
func (w *Watcher) Run(ctx context.Context) error {
	w.l.Infof(ctx, "watcher started, interval=%s workers=%d", w.cfg.Interval, w.cfg.Workers)

	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()
	housekeep := time.NewTicker(w.cfg.HousekeepEvery)
	defer housekeep.Stop()

	w.Sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			w.l.Infof(ctx, "watcher stopping: %v", ctx.Err())
			return ctx.Err()
		case <-housekeep.C:
			w.housekeep(ctx)
		case <-ticker.C:
			w.Sweep(ctx)
		}
	}
}

// Sweep evaluates every active alert once. Alerts on the same route
// share one catalog fetch; routes are evaluated concurrently with a
// bounded worker pool. One alert failing never stops the sweep.
func (w *Watcher) Sweep(ctx context.Context) {
	now := w.clock.Now()
	seen := make(map[string]struct{})

	byRoute := make(map[string][]model.Alert)
	query := paginator.PaginateQuery{Page: 1}
	for {
		alerts, page, err := w.alerts.ListActive(ctx, repository.ListActiveOption{
			Now:      now,
			Paginate: query,
		})
		if err != nil {
			w.l.Errorf(ctx, "internal.watcher.Sweep.ListActive: %v", err)
			return
		}
		for _, a := range alerts {
			seen[a.ID] = struct{}{}
			byRoute[a.RouteID] = append(byRoute[a.RouteID], a)
		}
		if !page.HasNextPage() {
			break
		}
		query.Page++
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, w.cfg.Workers)
	for routeID, alerts := range byRoute {
		wg.Add(1)
		sem <- struct{}{}
		go func(routeID string, alerts []model.Alert) {
			defer wg.Done()
			defer func() { <-sem }()
			w.sweepRoute(ctx, routeID, alerts, now)
		}(routeID, alerts)
	}
	wg.Wait()

	w.engine.Prune(seen)
}

// sweepRoute fetches the route's catalog once and runs every alert on
// it through the engine.
func (w *Watcher) sweepRoute(ctx context.Context, routeID string, alerts []model.Alert, now time.Time) {
	route, err := strconv.Atoi(routeID)
	if err != nil {
		w.l.Warnf(ctx, "internal.watcher.sweepRoute: malformed route id %q", routeID)
		return
	}

	catalog, err := w.catalog.ListByRoute(ctx, route)
	if err != nil {
		// No data at all for this route this sweep. States hold; the
		// next sweep retries.
		w.l.Warnf(ctx, "internal.watcher.sweepRoute.catalog route=%d: %v", route, err)
		return
	}

	for _, a := range alerts {
		w.evaluate(ctx, a, catalog, now)
	}
}

func (w *Watcher) evaluate(ctx context.Context, a model.Alert, catalog operation.CatalogOutput, now time.Time) {
	seats, ok := catalog.SeatCount(a.ScheduleID)
	if !ok {
		// The schedule fell out of the catalog (departed or cancelled).
		// Leave the alert alone; expiry will collect it.
		return
	}

	obs := w.engine.Observe(a, seats, now)
	switch obs.Action {
	case ActionExpire, ActionNone:
		return
	case ActionNotify:
	}

	u, err := w.users.GetByID(ctx, a.UserID)
	if err != nil {
		w.l.Errorf(ctx, "internal.watcher.evaluate.GetByID alert=%s: %v", a.ID, err)
		return
	}

	dispatchCtx, cancel := context.WithTimeout(ctx, w.cfg.DispatchWait)
	defer cancel()

	out := w.disp.Dispatch(dispatchCtx, dispatcher.Input{
		Alert:    a,
		User:     u,
		Channels: obs.Channels,
		Seats:    seats,
	})

	settled, delivered := w.engine.Settle(a, out)
	if settled && delivered {
		if err := w.alerts.MarkNotified(ctx, a.ID, w.clock.Now()); err != nil {
			w.l.Errorf(ctx, "internal.watcher.evaluate.MarkNotified alert=%s: %v", a.ID, err)
		}
		w.l.Infof(ctx, "alert %s notified, schedule=%s seats=%d", a.ID, a.ScheduleID, seats)
	}
}

func (w *Watcher) housekeep(ctx context.Context) {
	n, err := w.alerts.DeactivateExpired(ctx, w.clock.Now())
	if err != nil {
		w.l.Errorf(ctx, "internal.watcher.housekeep.DeactivateExpired: %v", err)
		return
	}
	if n > 0 {
		w.l.Infof(ctx, "deactivated %d expired alerts", n)
	}
}
