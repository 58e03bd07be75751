// internal/store/memory.go
//
// In-memory implementation of the session Store interface.
// Assist sessions are ephemeral solver state (candidate pool + filter +
// stats); they live for the length of a puzzle and need no durability, so a
// map behind an RWMutex is the only backend.
//
// Characteristics:
//   - Stores *Session objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.
//   - Errors are returned for missing session IDs on Get().

package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"github.com/wardle/solver/internal/game"
	"github.com/wardle/solver/internal/simulation"
)

// ErrNotFound is returned when a session ID is unknown.
var ErrNotFound = errors.New("session not found")

// Session is one user-facing assist session: the owned solver Game plus the
// rounds applied so far, for transcript display.
//
// The store hands out the live pointer, so concurrent requests for the same
// ID share one Session. The embedded mutex serializes them: hold it across
// any Game access or History append. The Game itself is not safe for
// concurrent use (ApplyFeedback rewrites the pool in place).
type Session struct {
	sync.Mutex

	ID        string
	Game      *game.Game
	History   []simulation.Round
	CreatedAt time.Time
}

// NewSession wraps a fresh Game with a random identifier.
func NewSession(g *game.Game) *Session {
	return &Session{ID: randomID(), Game: g, CreatedAt: time.Now().UTC()}
}

// Store defines the persistence interface for assist sessions.
// Implementations may be backed by memory (this package), Redis, SQL, etc.
type Store interface {
	// Save persists or updates a session.
	Save(ctx context.Context, s *Session) error

	// Get retrieves a session by ID.
	// Returns ErrNotFound if the session does not exist.
	Get(ctx context.Context, id string) (*Session, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex        // guards sessions map
	sessions map[string]*Session // keyed by Session.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*Session)}
}

// Save adds or updates the session in the map.
func (m *memory) Save(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

// Get looks up a session by ID.
func (m *memory) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
