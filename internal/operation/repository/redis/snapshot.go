package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"seatwatch-srv/internal/operation/repository"
	pkgRedis "seatwatch-srv/pkg/redis"
)

func snapshotKey(routeID int) string {
	return fmt.Sprintf("catalog:snapshot:%d", routeID)
}

func (s implSnapshotStore) Get(ctx context.Context, routeID int) (repository.Snapshot, error) {
	raw, err := s.redis.Get(ctx, snapshotKey(routeID))
	if err != nil {
		if !pkgRedis.IsNil(err) {
			s.l.Errorf(ctx, "internal.operation.repository.redis.Get: %v", err)
		}
		return repository.Snapshot{}, err
	}

	var snap repository.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		s.l.Errorf(ctx, "internal.operation.repository.redis.Get.Unmarshal: %v", err)
		return repository.Snapshot{}, err
	}
	return snap, nil
}

func (s implSnapshotStore) Set(ctx context.Context, routeID int, snap repository.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		s.l.Errorf(ctx, "internal.operation.repository.redis.Set.Marshal: %v", err)
		return err
	}
	if err := s.redis.Set(ctx, snapshotKey(routeID), raw, s.ttl); err != nil {
		s.l.Errorf(ctx, "internal.operation.repository.redis.Set: %v", err)
		return err
	}
	return nil
}
