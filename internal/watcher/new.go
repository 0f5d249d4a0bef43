package watcher

import (
	"time"

	alertRepo "seatwatch-srv/internal/alert/repository"
	"seatwatch-srv/internal/dispatcher"
	"seatwatch-srv/internal/operation"
	userRepo "seatwatch-srv/internal/user/repository"
	"seatwatch-srv/pkg/log"
)

// Config tunes the sweep loop.
type Config struct {
	// Interval is the pause between sweeps.
	Interval time.Duration
	// HousekeepEvery is how often expired alerts are deactivated in
	// the store.
	HousekeepEvery time.Duration
	// Workers bounds concurrent route evaluations inside a sweep.
	Workers int
	// DispatchWait caps how long one alert's dispatch may take.
	DispatchWait time.Duration
}

func (c *Config) adjust() {
	if c.Interval <= 0 {
		c.Interval = 30 * time.Second
	}
	if c.HousekeepEvery <= 0 {
		c.HousekeepEvery = 5 * time.Minute
	}
	if c.Workers <= 0 {
		c.Workers = 8
	}
	if c.DispatchWait <= 0 {
		c.DispatchWait = 15 * time.Second
	}
}

// Watcher polls the catalog for every active alert and hands crossings
// to the dispatcher.
type Watcher struct {
	l       log.Logger
	cfg     Config
	engine  *Engine
	alerts  alertRepo.Repository
	users   userRepo.Repository
	catalog operation.UseCase
	disp    dispatcher.Dispatcher
	clock   Clock
}

func New(l log.Logger, cfg Config, alerts alertRepo.Repository, users userRepo.Repository,
	catalog operation.UseCase, disp dispatcher.Dispatcher) *Watcher {
	cfg.adjust()
	return &Watcher{
		l:       l,
		cfg:     cfg,
		engine:  NewEngine(),
		alerts:  alerts,
		users:   users,
		catalog: catalog,
		disp:    disp,
		clock:   RealClock{},
	}
}
