package watcher

import (
	"sync"
	"time"

	"seatwatch-srv/internal/dispatcher"
	"seatwatch-srv/internal/model"
)

// Action is what a seat observation asks the sweep to do for one alert.
type Action int

const (
	// ActionNone means no transition happened.
	ActionNone Action = iota
	// ActionNotify means the alert owes a notification on the returned channels.
	ActionNotify
	// ActionExpire means the alert passed its lifetime and left the watch set.
	ActionExpire
)

// Observation is the engine's decision for one alert and seat count.
type Observation struct {
	Action Action
	// Channels lists the channels still owed a notification. Set only
	// for ActionNotify.
	Channels []dispatcher.Channel
}

type alertState struct {
	state model.WatchState
	// delivered holds channels settled in the current episode, so a
	// redelivery attempt can never duplicate them.
	delivered map[dispatcher.Channel]bool
}

// Engine is the pure per-alert state machine. An episode opens when the
// seat count reaches the target and closes when it falls back below;
// each channel is notified at most once per episode.
type Engine struct {
	mu     sync.Mutex
	states map[string]*alertState
}

func NewEngine() *Engine {
	return &Engine{states: make(map[string]*alertState)}
}

// Observe evaluates one alert against the seat count seen at now.
func (e *Engine) Observe(a model.Alert, seats int, now time.Time) Observation {
	e.mu.Lock()
	defer e.mu.Unlock()

	if a.Expired(now) {
		delete(e.states, a.ID)
		return Observation{Action: ActionExpire}
	}
	if !a.IsActive {
		delete(e.states, a.ID)
		return Observation{Action: ActionNone}
	}

	st, ok := e.states[a.ID]
	if !ok {
		st = &alertState{state: model.WatchDormant}
		e.states[a.ID] = st
	}

	crossed := seats >= a.TargetSeats

	switch st.state {
	case model.WatchDormant:
		if crossed {
			st.state = model.WatchArmedPending
			st.delivered = make(map[dispatcher.Channel]bool)
			return Observation{Action: ActionNotify, Channels: pendingChannels(a, st)}
		}
	case model.WatchArmedPending:
		if !crossed {
			// Seats fell back before delivery finished: the episode is
			// over and nothing more is owed for it.
			st.state = model.WatchDormant
			st.delivered = nil
			return Observation{Action: ActionNone}
		}
		return Observation{Action: ActionNotify, Channels: pendingChannels(a, st)}
	case model.WatchNotified:
		if !crossed {
			// Re-arm: the next crossing is a new episode.
			st.state = model.WatchDormant
			st.delivered = nil
		}
	}
	return Observation{Action: ActionNone}
}

// Settle records a dispatch outcome. It reports whether every enabled
// channel is now settled and whether at least one actually delivered.
func (e *Engine) Settle(a model.Alert, out dispatcher.Output) (settled, delivered bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	st, ok := e.states[a.ID]
	if !ok || st.state != model.WatchArmedPending {
		return false, false
	}

	for ch, res := range out {
		if res.Delivered || res.Permanent {
			st.delivered[ch] = true
		}
		if res.Delivered {
			delivered = true
		}
	}

	if len(pendingChannels(a, st)) == 0 {
		st.state = model.WatchNotified
		return true, delivered
	}
	return false, delivered
}

// State returns the tracked state of an alert, defaulting to dormant.
func (e *Engine) State(alertID string) model.WatchState {
	e.mu.Lock()
	defer e.mu.Unlock()

	if st, ok := e.states[alertID]; ok {
		return st.state
	}
	return model.WatchDormant
}

// Prune drops state for alerts no longer in the watch set, so deleted
// alerts do not leak entries.
func (e *Engine) Prune(seen map[string]struct{}) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for id := range e.states {
		if _, ok := seen[id]; !ok {
			delete(e.states, id)
		}
	}
}

func pendingChannels(a model.Alert, st *alertState) []dispatcher.Channel {
	var pending []dispatcher.Channel
	for _, ch := range dispatcher.EnabledChannels(a) {
		if !st.delivered[ch] {
			pending = append(pending, ch)
		}
	}
	return pending
}
