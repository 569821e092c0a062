package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix = "mathsheet:worksheet:"
	redisIndexKey  = "mathsheet:worksheets"
	defaultTTL     = 7 * 24 * time.Hour
)

// RedisConf locates the Redis server backing a RedisStore.
type RedisConf struct {
	Addr     string
	Password string
	DB       int
	// TTL is the lifetime of a stored worksheet. Zero means defaultTTL.
	TTL time.Duration
}

// RedisStore keeps worksheets as JSON values with a TTL, and their IDs in a
// list ordered newest first.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ WorksheetStore = (*RedisStore)(nil)

// NewRedisStore connects to Redis and checks the connection.
func NewRedisStore(ctx context.Context, conf RedisConf) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     conf.Addr,
		Password: conf.Password,
		DB:       conf.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", conf.Addr, err)
	}
	ttl := conf.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	log.Printf("[INFO] redis store connected (%s, db %d)", conf.Addr, conf.DB)
	return &RedisStore{client: client, ttl: ttl}, nil
}

// Close releases the connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) Save(ctx context.Context, w *Worksheet) error {
	w.ID = generateID()
	w.CreatedAt = time.Now()

	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("encode worksheet: %w", err)
	}
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, redisKeyPrefix+w.ID, data, s.ttl)
		pipe.LPush(ctx, redisIndexKey, w.ID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis save %s: %w", w.ID, err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Worksheet, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", id, err)
	}

	var w Worksheet
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decode worksheet %s: %w", id, err)
	}
	return &w, nil
}

// List reads the index and drops IDs whose worksheet has expired.
func (s *RedisStore) List(ctx context.Context) ([]*Worksheet, error) {
	ids, err := s.client.LRange(ctx, redisIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis list: %w", err)
	}
	if len(ids) == 0 {
		return []*Worksheet{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = redisKeyPrefix + id
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("redis mget: %w", err)
	}

	list := make([]*Worksheet, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Expired: prune it from the index.
			if err := s.client.LRem(ctx, redisIndexKey, 0, ids[i]).Err(); err != nil {
				log.Printf("[ERROR] prune expired worksheet %s: %v", ids[i], err)
			}
			continue
		}
		var w Worksheet
		if err := json.Unmarshal([]byte(raw), &w); err != nil {
			return nil, fmt.Errorf("decode worksheet %s: %w", ids[i], err)
		}
		list = append(list, &w)
	}
	sortNewestFirst(list)
	return list, nil
}
