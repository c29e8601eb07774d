package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	domain "github.com/papaslocas/sales-api/internal/entity"
	"github.com/papaslocas/sales-api/internal/usecase"
)

// RedisReservationStore keeps reservations as JSON under
// reserva:<codigo>, expiring after the configured TTL. Reservations
// never need the relational schema: they are looked up by code only
// and age out on their own.
type RedisReservationStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisReservationStore(rdb *redis.Client, ttl time.Duration) *RedisReservationStore {
	return &RedisReservationStore{rdb: rdb, ttl: ttl}
}

// Save claims the code with SetNX so a duplicate code can never
// replace somebody else's booking; the caller regenerates on
// ErrCodeTaken.
func (s *RedisReservationStore) Save(ctx context.Context, r *domain.Reservation) error {
	body, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal reserva: %w", err)
	}
	ok, err := s.rdb.SetNX(ctx, key(r.Code), body, s.ttl).Result()
	if err != nil {
		return fmt.Errorf("guardar reserva %s: %w", r.Code, err)
	}
	if !ok {
		return usecase.ErrCodeTaken
	}
	return nil
}

func (s *RedisReservationStore) Get(ctx context.Context, code string) (*domain.Reservation, error) {
	val, err := s.rdb.Get(ctx, key(code)).Bytes()
	if err == redis.Nil {
		return nil, usecase.ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("leer reserva %s: %w", code, err)
	}
	var r domain.Reservation
	if err := json.Unmarshal(val, &r); err != nil {
		return nil, fmt.Errorf("unmarshal reserva %s: %w", code, err)
	}
	return &r, nil
}

func key(code string) string { return "reserva:" + code }

var _ usecase.ReservationStore = (*RedisReservationStore)(nil)
