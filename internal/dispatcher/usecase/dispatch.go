package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"seatwatch-srv/internal/dispatcher"
	"seatwatch-srv/internal/dispatcher/repository"
	pkgErrors "seatwatch-srv/pkg/errors"
	"seatwatch-srv/pkg/push"
)

func (d implDispatcher) Dispatch(ctx context.Context, input dispatcher.Input) dispatcher.Output {
	out := make(dispatcher.Output)

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	attempt := func(ch dispatcher.Channel, send func() error) {
		defer wg.Done()
		res := d.attemptChannel(ctx, send)
		if !res.Delivered && res.Permanent {
			d.recordFailure(ctx, input, ch, res.Err)
		}
		mu.Lock()
		out[ch] = res
		mu.Unlock()
	}

	for _, ch := range input.Channels {
		switch ch {
		case dispatcher.ChannelPush:
			wg.Add(1)
			go attempt(dispatcher.ChannelPush, func() error {
				return d.push.Send(ctx, push.Message{
					To:    input.User.PushToken,
					Title: pushTitle,
					Body:  seatBody(input.Seats),
					Data: map[string]any{
						"alertId":    input.Alert.ID,
						"scheduleId": input.Alert.ScheduleID,
						"seats":      input.Seats,
					},
				})
			})
		case dispatcher.ChannelEmail:
			wg.Add(1)
			go attempt(dispatcher.ChannelEmail, func() error {
				return d.mail.Send(ctx, input.User.Email, emailSubject, emailBody(input))
			})
		}
	}
	wg.Wait()

	return out
}

// attemptChannel runs one channel's bounded retry chain. Only transient
// errors are retried; anything else settles the channel immediately.
func (d implDispatcher) attemptChannel(ctx context.Context, send func() error) dispatcher.ChannelResult {
	var err error
	for i := 0; i < maxAttempts; i++ {
		if i > 0 {
			d.sleep(backoff(i))
		}
		if err = send(); err == nil {
			return dispatcher.ChannelResult{Delivered: true}
		}
		if !pkgErrors.IsTransient(err) {
			return dispatcher.ChannelResult{Permanent: true, Err: err}
		}
		if ctx.Err() != nil {
			break
		}
	}
	// Exhausted transient retries. Not settled: the watcher keeps the
	// alert armed and the next sweep tries again.
	return dispatcher.ChannelResult{Err: err}
}

func backoff(attempt int) time.Duration {
	d := baseBackoff << (attempt - 1)
	if d > maxBackoff {
		return maxBackoff
	}
	return d
}

func (d implDispatcher) recordFailure(ctx context.Context, input dispatcher.Input, ch dispatcher.Channel, cause error) {
	reason := "delivery failed"
	if cause != nil {
		reason = cause.Error()
	}
	rec := repository.FailureRecord{
		AlertID:    input.Alert.ID,
		ScheduleID: input.Alert.ScheduleID,
		Channel:    string(ch),
		Reason:     reason,
		OccurredAt: time.Now().UTC(),
	}
	if err := d.failures.Record(ctx, input.User.ID, rec); err != nil {
		d.l.Errorf(ctx, "internal.dispatcher.usecase.recordFailure: %v", err)
	}
}

func (d implDispatcher) ListFailures(ctx context.Context, userID string) ([]dispatcher.Failure, error) {
	records, err := d.failures.List(ctx, userID)
	if err != nil {
		d.l.Errorf(ctx, "internal.dispatcher.usecase.ListFailures: %v", err)
		return nil, err
	}

	failures := make([]dispatcher.Failure, 0, len(records))
	for _, rec := range records {
		failures = append(failures, dispatcher.Failure{
			AlertID:    rec.AlertID,
			ScheduleID: rec.ScheduleID,
			Channel:    dispatcher.Channel(rec.Channel),
			Reason:     rec.Reason,
			OccurredAt: rec.OccurredAt,
		})
	}
	return failures, nil
}

const (
	pushTitle    = "버스 빈자리 알림"
	emailSubject = "[좌석 알림] 버스 빈자리가 생겼습니다"
)

func seatBody(seats int) string {
	return fmt.Sprintf("예약하신 일정에 빈자리 %d석이 생겼습니다. 지금 예매하세요!", seats)
}

func emailBody(input dispatcher.Input) string {
	return fmt.Sprintf(
		"<p>%s님, 안녕하세요.</p><p>예약하신 일정(%s)에 빈자리 %d석이 생겼습니다.</p><p>좌석이 빠르게 마감될 수 있으니 서둘러 예매해주세요.</p>",
		input.User.Name, input.Alert.ScheduleID, input.Seats)
}
