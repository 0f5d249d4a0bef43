package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"seatwatch-srv/internal/dispatcher"
	"seatwatch-srv/internal/dispatcher/repository"
	"seatwatch-srv/internal/model"
	pkgErrors "seatwatch-srv/pkg/errors"
	"seatwatch-srv/pkg/log"
	"seatwatch-srv/pkg/push"
)

type fakePush struct {
	errs  []error // consumed per attempt; nil means success
	calls int
}

func (f *fakePush) Send(context.Context, push.Message) error {
	f.calls++
	if len(f.errs) == 0 {
		return nil
	}
	err := f.errs[0]
	f.errs = f.errs[1:]
	return err
}

type fakeMail struct {
	errs  []error
	calls int
}

func (f *fakeMail) Send(context.Context, string, string, string) error {
	f.calls++
	if len(f.errs) == 0 {
		return nil
	}
	err := f.errs[0]
	f.errs = f.errs[1:]
	return err
}

type fakeFailureStore struct {
	records []repository.FailureRecord
}

func (f *fakeFailureStore) Record(_ context.Context, _ string, rec repository.FailureRecord) error {
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeFailureStore) List(context.Context, string) ([]repository.FailureRecord, error) {
	return f.records, nil
}

func newTestDispatcher(p *fakePush, m *fakeMail, s *fakeFailureStore) implDispatcher {
	return implDispatcher{
		l:        log.NewNoop(),
		push:     p,
		mail:     m,
		failures: s,
		sleep:    func(time.Duration) {},
	}
}

func testInput(channels ...dispatcher.Channel) dispatcher.Input {
	return dispatcher.Input{
		Alert: model.Alert{
			ID:         "a1",
			ScheduleID: "46251_2026-09-01_0",
		},
		User: model.User{
			ID:        "u1",
			Name:      "tester",
			Email:     "t@example.com",
			PushToken: "ExponentPushToken[x]",
		},
		Channels: channels,
		Seats:    3,
	}
}

func transient() error {
	return pkgErrors.NewTransientError("test", errors.New("upstream 503"))
}

func TestDispatchRetriesTransientThenDelivers(t *testing.T) {
	p := &fakePush{errs: []error{transient(), transient(), nil}}
	d := newTestDispatcher(p, &fakeMail{}, &fakeFailureStore{})

	out := d.Dispatch(context.Background(), testInput(dispatcher.ChannelPush))

	if p.calls != 3 {
		t.Fatalf("push attempts = %d, want 3", p.calls)
	}
	res := out[dispatcher.ChannelPush]
	if !res.Delivered || res.Permanent {
		t.Fatalf("result = %+v, want delivered", res)
	}
}

func TestDispatchExhaustedRetriesStayUnsettled(t *testing.T) {
	p := &fakePush{errs: []error{transient(), transient(), transient()}}
	store := &fakeFailureStore{}
	d := newTestDispatcher(p, &fakeMail{}, store)

	out := d.Dispatch(context.Background(), testInput(dispatcher.ChannelPush))

	if p.calls != 3 {
		t.Fatalf("push attempts = %d, want 3", p.calls)
	}
	res := out[dispatcher.ChannelPush]
	if res.Delivered || res.Permanent {
		t.Fatalf("result = %+v, want unsettled transient failure", res)
	}
	if len(store.records) != 0 {
		t.Fatalf("failure records = %d, want 0 for transient exhaustion", len(store.records))
	}
	if out.AllSettled() {
		t.Fatal("AllSettled = true, want false")
	}
}

func TestDispatchPermanentFailureNoRetry(t *testing.T) {
	p := &fakePush{errs: []error{push.ErrDeviceNotRegistered}}
	store := &fakeFailureStore{}
	d := newTestDispatcher(p, &fakeMail{}, store)

	out := d.Dispatch(context.Background(), testInput(dispatcher.ChannelPush))

	if p.calls != 1 {
		t.Fatalf("push attempts = %d, want 1 (no retry on permanent)", p.calls)
	}
	res := out[dispatcher.ChannelPush]
	if res.Delivered || !res.Permanent {
		t.Fatalf("result = %+v, want permanent failure", res)
	}
	if len(store.records) != 1 {
		t.Fatalf("failure records = %d, want 1", len(store.records))
	}
	if store.records[0].Channel != string(dispatcher.ChannelPush) {
		t.Fatalf("recorded channel = %q, want push", store.records[0].Channel)
	}
	if !out.AllSettled() {
		t.Fatal("AllSettled = false, want true (permanent settles)")
	}
}

func TestDispatchChannelsIndependent(t *testing.T) {
	p := &fakePush{errs: []error{push.ErrDeviceNotRegistered}}
	m := &fakeMail{}
	d := newTestDispatcher(p, m, &fakeFailureStore{})

	out := d.Dispatch(context.Background(), testInput(dispatcher.ChannelPush, dispatcher.ChannelEmail))

	if !out[dispatcher.ChannelEmail].Delivered {
		t.Fatal("email not delivered despite push failing")
	}
	if out[dispatcher.ChannelPush].Delivered {
		t.Fatal("push delivered, want permanent failure")
	}
	if !out.AnyDelivered() {
		t.Fatal("AnyDelivered = false, want true")
	}
}

func TestDispatchOnlyRequestedChannels(t *testing.T) {
	p := &fakePush{}
	m := &fakeMail{}
	d := newTestDispatcher(p, m, &fakeFailureStore{})

	out := d.Dispatch(context.Background(), testInput(dispatcher.ChannelEmail))

	if p.calls != 0 {
		t.Fatalf("push attempts = %d, want 0", p.calls)
	}
	if m.calls != 1 {
		t.Fatalf("mail attempts = %d, want 1", m.calls)
	}
	if _, ok := out[dispatcher.ChannelPush]; ok {
		t.Fatal("push present in output, want absent")
	}
}

func TestBackoffCapped(t *testing.T) {
	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{1, 500 * time.Millisecond},
		{2, time.Second},
		{3, 2 * time.Second},
		{5, 5 * time.Second},
	}
	for _, tt := range tests {
		if got := backoff(tt.attempt); got != tt.want {
			t.Errorf("backoff(%d) = %s, want %s", tt.attempt, got, tt.want)
		}
	}
}
