package watcher

import (
	"testing"
	"time"

	"seatwatch-srv/internal/dispatcher"
	"seatwatch-srv/internal/model"
)

func testAlert(target int) model.Alert {
	return model.Alert{
		ID:               "alert-1",
		UserID:           "user-1",
		RouteID:          "46251",
		ScheduleID:       "46251_2026-09-01_0",
		TargetSeats:      target,
		PushNotification: true,
		IsActive:         true,
		CreatedAt:        time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}
}

func deliverAll(out dispatcher.Output, channels []dispatcher.Channel) dispatcher.Output {
	if out == nil {
		out = make(dispatcher.Output)
	}
	for _, ch := range channels {
		out[ch] = dispatcher.ChannelResult{Delivered: true}
	}
	return out
}

func TestEngineEpisodeDedup(t *testing.T) {
	// Target 2 over the sequence 0,1,2,3,1,2,0: the threshold is
	// crossed twice, so exactly two notifications are owed, at the
	// third and sixth observations.
	e := NewEngine()
	a := testAlert(2)
	now := a.CreatedAt.Add(time.Minute)

	seats := []int{0, 1, 2, 3, 1, 2, 0}
	wantNotify := map[int]bool{2: true, 5: true}

	for i, s := range seats {
		obs := e.Observe(a, s, now)
		if got := obs.Action == ActionNotify; got != wantNotify[i] {
			t.Fatalf("observation %d (seats=%d): notify = %v, want %v", i, s, got, wantNotify[i])
		}
		if obs.Action == ActionNotify {
			e.Settle(a, deliverAll(nil, obs.Channels))
		}
	}
}

func TestEngineSteadyAboveTargetNotifiesOnce(t *testing.T) {
	e := NewEngine()
	a := testAlert(3)
	now := a.CreatedAt.Add(time.Minute)

	obs := e.Observe(a, 5, now)
	if obs.Action != ActionNotify {
		t.Fatalf("first crossing: action = %v, want notify", obs.Action)
	}
	e.Settle(a, deliverAll(nil, obs.Channels))

	for i := 0; i < 5; i++ {
		if obs := e.Observe(a, 5, now); obs.Action != ActionNone {
			t.Fatalf("repeat observation %d: action = %v, want none", i, obs.Action)
		}
	}
}

func TestEngineInactiveNeverNotifies(t *testing.T) {
	e := NewEngine()
	a := testAlert(1)
	a.IsActive = false
	now := a.CreatedAt.Add(time.Minute)

	if obs := e.Observe(a, 10, now); obs.Action != ActionNone {
		t.Fatalf("inactive alert: action = %v, want none", obs.Action)
	}
}

func TestEngineExpiry(t *testing.T) {
	e := NewEngine()
	a := testAlert(1)

	past := a.CreatedAt.Add(model.AlertLifetime + time.Second)
	if obs := e.Observe(a, 10, past); obs.Action != ActionExpire {
		t.Fatalf("expired alert: action = %v, want expire", obs.Action)
	}
	if st := e.State(a.ID); st != model.WatchDormant {
		t.Fatalf("expired alert state = %v, want dropped (dormant)", st)
	}
}

func TestEngineFailedDispatchStaysArmed(t *testing.T) {
	e := NewEngine()
	a := testAlert(2)
	a.EmailNotification = true
	now := a.CreatedAt.Add(time.Minute)

	obs := e.Observe(a, 3, now)
	if obs.Action != ActionNotify || len(obs.Channels) != 2 {
		t.Fatalf("first crossing: action = %v channels = %v", obs.Action, obs.Channels)
	}

	// Push lands, email fails transiently: not settled, still armed.
	settled, delivered := e.Settle(a, dispatcher.Output{
		dispatcher.ChannelPush:  {Delivered: true},
		dispatcher.ChannelEmail: {Err: errTransient},
	})
	if settled {
		t.Fatal("settled = true with an unsettled channel")
	}
	if !delivered {
		t.Fatal("delivered = false after push landed")
	}
	if st := e.State(a.ID); st != model.WatchArmedPending {
		t.Fatalf("state = %v, want armed_pending", st)
	}

	// Next sweep only owes the email channel.
	obs = e.Observe(a, 3, now.Add(30*time.Second))
	if obs.Action != ActionNotify {
		t.Fatalf("retry observation: action = %v, want notify", obs.Action)
	}
	if len(obs.Channels) != 1 || obs.Channels[0] != dispatcher.ChannelEmail {
		t.Fatalf("retry channels = %v, want [email]", obs.Channels)
	}

	settled, _ = e.Settle(a, dispatcher.Output{
		dispatcher.ChannelEmail: {Delivered: true},
	})
	if !settled {
		t.Fatal("settled = false after last channel delivered")
	}
	if st := e.State(a.ID); st != model.WatchNotified {
		t.Fatalf("state = %v, want notified", st)
	}
}

func TestEnginePermanentFailureSettlesChannel(t *testing.T) {
	e := NewEngine()
	a := testAlert(1)
	a.EmailNotification = true
	now := a.CreatedAt.Add(time.Minute)

	obs := e.Observe(a, 2, now)
	settled, delivered := e.Settle(a, dispatcher.Output{
		dispatcher.ChannelPush:  {Permanent: true, Err: errPermanent},
		dispatcher.ChannelEmail: {Delivered: true},
	})
	_ = obs
	if !settled {
		t.Fatal("settled = false: permanent failures settle a channel")
	}
	if !delivered {
		t.Fatal("delivered = false after email landed")
	}
	if st := e.State(a.ID); st != model.WatchNotified {
		t.Fatalf("state = %v, want notified", st)
	}
}

func TestEngineRearmAfterDip(t *testing.T) {
	e := NewEngine()
	a := testAlert(2)
	now := a.CreatedAt.Add(time.Minute)

	obs := e.Observe(a, 2, now)
	e.Settle(a, deliverAll(nil, obs.Channels))

	// Dip below target re-arms silently.
	if obs := e.Observe(a, 1, now); obs.Action != ActionNone {
		t.Fatalf("dip: action = %v, want none", obs.Action)
	}
	if st := e.State(a.ID); st != model.WatchDormant {
		t.Fatalf("state after dip = %v, want dormant", st)
	}

	if obs := e.Observe(a, 4, now); obs.Action != ActionNotify {
		t.Fatalf("second crossing: action = %v, want notify", obs.Action)
	}
}

func TestEnginePrune(t *testing.T) {
	e := NewEngine()
	a := testAlert(1)
	now := a.CreatedAt.Add(time.Minute)

	obs := e.Observe(a, 5, now)
	e.Settle(a, deliverAll(nil, obs.Channels))
	if st := e.State(a.ID); st != model.WatchNotified {
		t.Fatalf("state = %v, want notified", st)
	}

	e.Prune(map[string]struct{}{})
	if st := e.State(a.ID); st != model.WatchDormant {
		t.Fatalf("state after prune = %v, want dropped (dormant)", st)
	}
}
