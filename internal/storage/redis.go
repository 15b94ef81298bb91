package storage

import (
	"context"
	"encoding/json"
	"log"

	"foodexpress-storefront/internal/domain"

	"github.com/redis/go-redis/v9"
)

// The five persisted keys. Nothing else is ever written to the store.
const (
	keyToken  = "token"
	keyRole   = "role"
	keyUserID = "userId"
	keyName   = "name"
	keyCart   = "cart"

	sessionChannel = "session-changed"
)

// RedisStore persists the storefront's client state: the four session fields
// and the serialized cart. Session writes are all-or-nothing and announced on
// a pub/sub channel so other storefront instances can rehydrate.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(name string) string {
	return s.prefix + ":" + name
}

func (s *RedisStore) SaveSession(ctx context.Context, token, role, userID, name string) error {
	if err := s.client.MSet(ctx,
		s.key(keyToken), token,
		s.key(keyRole), role,
		s.key(keyUserID), userID,
		s.key(keyName), name,
	).Err(); err != nil {
		return err
	}
	return s.client.Publish(ctx, s.key(sessionChannel), token).Err()
}

// LoadSession returns empty strings for absent fields.
func (s *RedisStore) LoadSession(ctx context.Context) (token, role, userID, name string, err error) {
	vals, err := s.client.MGet(ctx,
		s.key(keyToken), s.key(keyRole), s.key(keyUserID), s.key(keyName),
	).Result()
	if err != nil {
		return "", "", "", "", err
	}
	fields := make([]string, 4)
	for i, v := range vals {
		if str, ok := v.(string); ok {
			fields[i] = str
		}
	}
	return fields[0], fields[1], fields[2], fields[3], nil
}

func (s *RedisStore) ClearSession(ctx context.Context) error {
	if err := s.client.Del(ctx,
		s.key(keyToken), s.key(keyRole), s.key(keyUserID), s.key(keyName),
	).Err(); err != nil {
		return err
	}
	return s.client.Publish(ctx, s.key(sessionChannel), "").Err()
}

// Token reads the bearer token fresh from the store, so a login or logout
// between two requests is honored immediately.
func (s *RedisStore) Token(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, s.key(keyToken)).Result()
	if err == redis.Nil {
		return "", nil
	}
	return token, err
}

func (s *RedisStore) SaveCart(ctx context.Context, lines []domain.CartLine) error {
	payload, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(keyCart), payload, 0).Err()
}

// LoadCart falls back to an empty cart when nothing is stored or the stored
// payload does not parse.
func (s *RedisStore) LoadCart(ctx context.Context) ([]domain.CartLine, error) {
	payload, err := s.client.Get(ctx, s.key(keyCart)).Result()
	if err == redis.Nil {
		return []domain.CartLine{}, nil
	}
	if err != nil {
		return nil, err
	}

	var lines []domain.CartLine
	if err := json.Unmarshal([]byte(payload), &lines); err != nil {
		log.Printf("[storage] discarding malformed stored cart: %v", err)
		return []domain.CartLine{}, nil
	}
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return lines, nil
}

// WatchSession delivers the token value announced by every session write,
// including this instance's own. Callers compare against the token they hold
// and rehydrate on mismatch. The channel closes when ctx is done.
func (s *RedisStore) WatchSession(ctx context.Context) <-chan string {
	sub := s.client.Subscribe(ctx, s.key(sessionChannel))
	out := make(chan string, 1)

	go func() {
		defer close(out)
		defer sub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-sub.Channel():
				if !ok {
					return
				}
				out <- msg.Payload
			}
		}
	}()

	return out
}
