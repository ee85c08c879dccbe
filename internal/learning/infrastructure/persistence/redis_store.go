package persistence

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/felixgeelhaar/paretofocus/internal/learning/domain"
)

// DefaultRedisPrefix namespaces every key the store writes.
const DefaultRedisPrefix = "focus:feedback"

// RedisStore implements domain.Store with one hash per tally:
// {prefix}:{scope}:{id} -> {yes, no}
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Redis-backed store. An empty prefix uses DefaultRedisPrefix.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) namespaceKey(key domain.Key) string {
	return fmt.Sprintf("%s:%s:%s", s.prefix, key.Scope, key.ID)
}

func (s *RedisStore) Get(ctx context.Context, key domain.Key) (domain.Counts, error) {
	vals, err := s.client.HMGet(ctx, s.namespaceKey(key), "yes", "no").Result()
	if errors.Is(err, redis.Nil) {
		return domain.Counts{}, nil
	}
	if err != nil {
		return domain.Counts{}, err
	}

	yes, err := hashInt(vals[0])
	if err != nil {
		return domain.Counts{}, fmt.Errorf("corrupt yes count at %s: %w", key, err)
	}
	no, err := hashInt(vals[1])
	if err != nil {
		return domain.Counts{}, fmt.Errorf("corrupt no count at %s: %w", key, err)
	}
	return domain.Counts{Yes: yes, No: no}, nil
}

func (s *RedisStore) Put(ctx context.Context, key domain.Key, counts domain.Counts) error {
	return s.client.HSet(ctx, s.namespaceKey(key), "yes", counts.Yes, "no", counts.No).Err()
}

func (s *RedisStore) Delete(ctx context.Context, key domain.Key) error {
	return s.client.Del(ctx, s.namespaceKey(key)).Err()
}

// hashInt decodes one HMGET field; a missing field is zero.
func hashInt(v any) (int, error) {
	switch x := v.(type) {
	case nil:
		return 0, nil
	case string:
		return strconv.Atoi(x)
	default:
		return 0, fmt.Errorf("unexpected type %T", v)
	}
}
