package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"seatwatch-srv/internal/dispatcher/repository"
	pkgRedis "seatwatch-srv/pkg/redis"
)

func failureKey(userID string) string {
	return fmt.Sprintf("dispatch:failed:%s", userID)
}

func (s implFailureStore) Record(ctx context.Context, userID string, rec repository.FailureRecord) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		s.l.Errorf(ctx, "internal.dispatcher.repository.redis.Record.Marshal: %v", err)
		return err
	}

	key := failureKey(userID)
	if err := s.redis.LPush(ctx, key, raw); err != nil {
		s.l.Errorf(ctx, "internal.dispatcher.repository.redis.Record.LPush: %v", err)
		return err
	}
	if err := s.redis.LTrim(ctx, key, 0, maxKept-1); err != nil {
		s.l.Warnf(ctx, "internal.dispatcher.repository.redis.Record.LTrim: %v", err)
	}
	return nil
}

func (s implFailureStore) List(ctx context.Context, userID string) ([]repository.FailureRecord, error) {
	raws, err := s.redis.LRange(ctx, failureKey(userID), 0, maxKept-1)
	if err != nil {
		if pkgRedis.IsNil(err) {
			return nil, nil
		}
		s.l.Errorf(ctx, "internal.dispatcher.repository.redis.List.LRange: %v", err)
		return nil, err
	}

	records := make([]repository.FailureRecord, 0, len(raws))
	for _, raw := range raws {
		var rec repository.FailureRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			s.l.Warnf(ctx, "internal.dispatcher.repository.redis.List.Unmarshal: %v, skipping entry", err)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}
