package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ViewStateStore persists per-session view state machines in Redis. State is
// plain JSON: unlike sessions it carries no secrets worth encrypting.
type ViewStateStore struct {
	ttl time.Duration
}

var (
	setViewValue = Set
	getViewValue = Get
	delViewValue = Del
)

// ErrViewStateNotFound is returned when no state exists for the session.
var ErrViewStateNotFound = errors.New("view state not found")

// NewViewStateStore creates a view state store with the given TTL
func NewViewStateStore(ttl time.Duration) *ViewStateStore {
	return &ViewStateStore{ttl: ttl}
}

// Save stores the state value for a session key
func (s *ViewStateStore) Save(ctx context.Context, sessionKey string, state interface{}) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return setViewValue(ctx, "view:"+sessionKey, string(data), s.ttl)
}

// Load reads the state value for a session key into dst
func (s *ViewStateStore) Load(ctx context.Context, sessionKey string, dst interface{}) error {
	data, err := getViewValue(ctx, "view:"+sessionKey)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return ErrViewStateNotFound
		}
		return err
	}
	return json.Unmarshal([]byte(data), dst)
}

// Delete removes the state for a session key
func (s *ViewStateStore) Delete(ctx context.Context, sessionKey string) error {
	return delViewValue(ctx, "view:"+sessionKey)
}
