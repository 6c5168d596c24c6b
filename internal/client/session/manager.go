package session

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/Venkatesh1410/smartbill/internal/client/storage"
	"github.com/Venkatesh1410/smartbill/internal/logging"
)

// DefaultCheckInterval is how often the background watcher re-evaluates
// expiry while a session is held.
const DefaultCheckInterval = 60 * time.Second

// Manager holds the session lifecycle: Init reads the store once at startup,
// Login/Logout write through to it, and Current answers every auth-state
// question from the in-memory mirror. The embedded exp claim of the token is
// the only source of truth for expiry; the separate tokenExpirationTime key
// is written for compatibility with the legacy storage layout but never read
// for decisions.
type Manager struct {
	store storage.Repository
	log   logging.Logger
	now   func() time.Time

	mu    sync.RWMutex
	token string
}

func NewManager(store storage.Repository, log logging.Logger) *Manager {
	return &Manager{store: store, log: log, now: time.Now}
}

// Init loads the persisted token into the in-memory mirror. Call once at
// application start, before any Current.
func (m *Manager) Init(ctx context.Context) error {
	token, err := m.store.Get(ctx, storage.KeyToken)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
	return nil
}

// Current is the single read path for auth state. It decodes the held token
// and evaluates expiry; expired is true when no usable session exists, and
// session is nil only for a missing or undecodable token.
func (m *Manager) Current(ctx context.Context) (*Session, bool) {
	m.mu.RLock()
	token := m.token
	m.mu.RUnlock()

	if token == "" {
		return nil, true
	}
	s := Decode(token)
	if s == nil {
		return nil, true
	}
	return s, s.Expired(m.now())
}

// Login persists the token and its expiry marker atomically and updates the
// mirror. A zero expiresAt is derived from the token's own exp claim.
func (m *Manager) Login(ctx context.Context, token string, expiresAt int64) error {
	if expiresAt == 0 {
		if s := Decode(token); s != nil && !s.ExpiresAt.IsZero() {
			expiresAt = s.ExpiresAt.Unix()
		}
	}
	err := m.store.SetMany(ctx, map[string]string{
		storage.KeyToken:               token,
		storage.KeyTokenExpirationTime: strconv.FormatInt(expiresAt, 10),
	})
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.token = token
	m.mu.Unlock()

	if s := Decode(token); s != nil {
		m.log.Info(ctx, "session opened", "subject", s.Subject, "role", s.Role, "expires_at", s.ExpiresAt)
	}
	return nil
}

// Logout clears the persisted token and the mirror. Safe to call when no
// session is held.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.Delete(ctx, storage.KeyToken, storage.KeyTokenExpirationTime); err != nil {
		return err
	}
	m.mu.Lock()
	m.token = ""
	m.mu.Unlock()
	m.log.Info(ctx, "session closed")
	return nil
}

// BearerToken implements api.TokenSource.
func (m *Manager) BearerToken(ctx context.Context) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// Watch re-checks expiry every interval until ctx is cancelled. On the
// transition from held to expired it logs the session out and invokes
// onExpired once. Start exactly one watcher at application scope.
func (m *Manager) Watch(ctx context.Context, interval time.Duration, onExpired func()) {
	if interval <= 0 {
		interval = DefaultCheckInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if m.expireIfNeeded(ctx) && onExpired != nil {
				onExpired()
			}
		case <-ctx.Done():
			return
		}
	}
}

// expireIfNeeded performs one watcher tick: if a token is held but its
// session is expired, log out and report the transition.
func (m *Manager) expireIfNeeded(ctx context.Context) bool {
	m.mu.RLock()
	token := m.token
	m.mu.RUnlock()
	if token == "" {
		return false
	}

	s := Decode(token)
	if s != nil && !s.Expired(m.now()) {
		return false
	}

	m.log.Warn(ctx, "session expired, forcing logout")
	if err := m.Logout(ctx); err != nil {
		m.log.Error(ctx, "logout after expiry failed", "error", err)
	}
	return true
}
