package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"muza-life.backend/internal/domain/entities"
	domainerrors "muza-life.backend/internal/domain/errors"
)

const (
	verifyKeyPrefix = "verify:"
	orderKeyPrefix  = "order:"

	// keys outlive the code window so a late redeem can be told apart
	// from a code that never existed
	expiredRetention = time.Hour
)

// consumeScript checks and deletes the ledger entry in one atomic step.
// Exactly one of N concurrent redeems with the right code gets the payload;
// a wrong code leaves the entry in place for another attempt.
const consumeScript = `
local raw = redis.call('GET', KEYS[1])
if not raw then
  return 'missing'
end
local entry = cjson.decode(raw)
if tonumber(ARGV[2]) > tonumber(entry.expires_at) then
  redis.call('DEL', KEYS[1])
  return 'expired'
end
if entry.code ~= ARGV[1] then
  return 'mismatch'
end
redis.call('DEL', KEYS[1])
return raw
`

type ledgerEntry struct {
	Code      string                `json:"code"`
	ExpiresAt int64                 `json:"expires_at"`
	Intent    *entities.OrderIntent `json:"intent"`
}

// RedisVerificationLedger implements VerificationLedger on Redis
type RedisVerificationLedger struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisVerificationLedger creates a new Redis-backed verification ledger
func NewRedisVerificationLedger(client *redis.Client) *RedisVerificationLedger {
	return &RedisVerificationLedger{client: client, now: time.Now}
}

// Issue stores the code and intent under the claimant email, replacing any
// prior entry so a resend invalidates the old code
func (l *RedisVerificationLedger) Issue(ctx context.Context, email, code string, intent *entities.OrderIntent, ttl time.Duration) error {
	entry := ledgerEntry{
		Code:      code,
		ExpiresAt: l.now().Add(ttl).Unix(),
		Intent:    intent,
	}
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger entry: %w", err)
	}
	return l.client.Set(ctx, verifyKeyPrefix+email, payload, ttl+expiredRetention).Err()
}

// Consume atomically checks the code and deletes the entry on match
func (l *RedisVerificationLedger) Consume(ctx context.Context, email, code string) (*entities.OrderIntent, error) {
	result, err := l.client.Eval(ctx, consumeScript, []string{verifyKeyPrefix + email},
		code, l.now().Unix()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainerrors.ErrCodeNotFound
		}
		return nil, err
	}

	raw, ok := result.(string)
	if !ok {
		return nil, fmt.Errorf("unexpected consume script result type %T", result)
	}
	switch raw {
	case "missing":
		return nil, domainerrors.ErrCodeNotFound
	case "expired":
		return nil, domainerrors.ErrCodeExpired
	case "mismatch":
		return nil, domainerrors.ErrCodeMismatch
	}

	var entry ledgerEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ledger entry: %w", err)
	}
	return entry.Intent, nil
}

// RedisAuthorizedOrderStore implements AuthorizedOrderStore on Redis
type RedisAuthorizedOrderStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisAuthorizedOrderStore creates a new Redis-backed authorized order store
func NewRedisAuthorizedOrderStore(client *redis.Client, ttl time.Duration) *RedisAuthorizedOrderStore {
	return &RedisAuthorizedOrderStore{client: client, ttl: ttl}
}

// Put stores a verified order until the gateway settles it
func (s *RedisAuthorizedOrderStore) Put(ctx context.Context, order *entities.AuthorizedOrder) error {
	payload, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to marshal authorized order: %w", err)
	}
	return s.client.Set(ctx, orderKeyPrefix+order.Intent.OrderID, payload, s.ttl).Err()
}

// Take atomically removes and returns the order. The GETDEL makes settlement
// idempotent: a replayed webhook finds nothing and changes nothing.
func (s *RedisAuthorizedOrderStore) Take(ctx context.Context, orderID string) (*entities.AuthorizedOrder, error) {
	raw, err := s.client.GetDel(ctx, orderKeyPrefix+orderID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	var order entities.AuthorizedOrder
	if err := json.Unmarshal([]byte(raw), &order); err != nil {
		return nil, fmt.Errorf("failed to unmarshal authorized order: %w", err)
	}
	return &order, nil
}
