package trip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	tripKeyPrefix = "tripgen:trip:"
	// tripIndexKey is a sorted set of trip ids scored by creation time (ms).
	tripIndexKey = "tripgen:trips"
)

// RedisStore keeps each trip as a JSON string plus an ordered index.
type RedisStore struct {
	redis *redis.Client
}

func NewRedisStore(redis *redis.Client) *RedisStore {
	return &RedisStore{redis: redis}
}

func tripKey(id string) string { return tripKeyPrefix + id }

func (s *RedisStore) Insert(ctx context.Context, t *Trip) error {
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshal trip: %w", err)
	}
	_, err = s.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, tripKey(t.ID), data, 0)
		pipe.ZAdd(ctx, tripIndexKey, redis.Z{Score: float64(t.CreatedAt.UnixMilli()), Member: t.ID})
		return nil
	})
	return err
}

func (s *RedisStore) List(ctx context.Context) ([]Trip, error) {
	ids, err := s.redis.ZRange(ctx, tripIndexKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]Trip, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = tripKey(id)
	}
	vals, err := s.redis.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			// index entry without a document; a concurrent delete is in flight
			continue
		}
		var t Trip
		if err := json.Unmarshal([]byte(raw), &t); err != nil {
			return nil, fmt.Errorf("decode trip %s: %w", ids[i], err)
		}
		normalize(&t)
		out = append(out, t)
	}
	return out, nil
}

// Delete reads and removes the document and its index entry in one MULTI/EXEC.
func (s *RedisStore) Delete(ctx context.Context, id string) (*Trip, error) {
	var get *redis.StringCmd
	_, err := s.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		get = pipe.Get(ctx, tripKey(id))
		pipe.Del(ctx, tripKey(id))
		pipe.ZRem(ctx, tripIndexKey, id)
		return nil
	})
	raw, getErr := get.Result()
	if errors.Is(getErr, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if getErr != nil {
		return nil, getErr
	}
	var t Trip
	if err := json.Unmarshal([]byte(raw), &t); err != nil {
		return nil, fmt.Errorf("decode trip %s: %w", id, err)
	}
	normalize(&t)
	return &t, nil
}
