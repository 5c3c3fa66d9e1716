package admin

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// SessionTTL is fixed at login time. No sliding expiry: activity does not
// refresh the window.
const SessionTTL = 24 * time.Hour

const sessionKeyPrefix = "admin_session:"

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrRateLimited     = errors.New("too many login attempts")
)

// SessionStore holds issued admin tokens until their TTL runs out.
type SessionStore interface {
	Create(ctx context.Context, token string, ttl time.Duration) error
	Exists(ctx context.Context, token string) (bool, error)
	Delete(ctx context.Context, token string) error
}

// PasswordVerifier checks a candidate admin password. The settings service
// implements this against the stored hash.
type PasswordVerifier interface {
	Verify(ctx context.Context, candidate string) (bool, error)
}

// Gate decides whether a request may perform admin actions. Logins are
// rate-limited and, on success, issue an opaque token whose lifetime lives
// entirely server-side.
type Gate struct {
	store    SessionStore
	verifier PasswordVerifier
	limiter  *rate.Limiter
}

func NewGate(store SessionStore, verifier PasswordVerifier) *Gate {
	return &Gate{
		store:    store,
		verifier: verifier,
		limiter:  rate.NewLimiter(rate.Every(2*time.Second), 5),
	}
}

// Login verifies the shared admin password and mints a session token valid
// for SessionTTL. A wrong password and a throttled attempt both come back as
// errors the controller maps to generic responses.
func (g *Gate) Login(ctx context.Context, password string) (string, error) {
	if !g.limiter.Allow() {
		return "", ErrRateLimited
	}

	ok, err := g.verifier.Verify(ctx, password)
	if err != nil {
		return "", fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return "", ErrInvalidPassword
	}

	token := GenerateSessionToken()
	if err := g.store.Create(ctx, token, SessionTTL); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return token, nil
}

// Check reports whether the token names a live session. Expiry is lazy: the
// store drops the key when the TTL passes, there is no timer here.
func (g *Gate) Check(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	ok, err := g.store.Exists(ctx, token)
	if err != nil {
		return false
	}
	return ok
}

// Logout discards the session immediately.
func (g *Gate) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return g.store.Delete(ctx, token)
}

// GenerateSessionToken creates a random opaque session token.
func GenerateSessionToken() string {
	b := make([]byte, 32)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// RedisSessionStore keeps sessions in Redis, one key per token, with the TTL
// enforcing the 24h window.
type RedisSessionStore struct {
	rdb *redis.Client
}

func NewRedisSessionStore(rdb *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb}
}

func (s *RedisSessionStore) Create(ctx context.Context, token string, ttl time.Duration) error {
	return s.rdb.Set(ctx, sessionKeyPrefix+token, time.Now().Unix(), ttl).Err()
}

func (s *RedisSessionStore) Exists(ctx context.Context, token string) (bool, error) {
	n, err := s.rdb.Exists(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, sessionKeyPrefix+token).Err()
}
