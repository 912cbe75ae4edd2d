package service

import (
	"context"
	"sync"
	"time"

	"github.com/amterp/swatch/internal/catalog"
	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/id"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/util"
)

// Snapshot is the session as seen by clients at one revision.
type Snapshot struct {
	SessionID       string               `json:"session_id"`
	Revision        uint64               `json:"revision"`
	UpdatedAtMillis int64                `json:"updated_at_millis"`
	State           model.SelectionState `json:"state"`
	Defaults        model.WallAssignment `json:"defaults"`
	model.Session
}

// SessionSubscriber receives a snapshot after every session change.
type SessionSubscriber interface {
	OnSessionChange(snap Snapshot)
}

// SessionService owns the one shared painting session behind the web UI
// and the interactive CLI. Safe for concurrent use.
type SessionService struct {
	catalog *catalog.Catalog
	id      string

	mu        sync.RWMutex
	session   model.Session
	revision  uint64
	updatedAt int64
	delay     time.Duration

	subMu       sync.RWMutex
	subscribers []SessionSubscriber
}

// NewSessionService creates a session over c whose room starts at defaults.
func NewSessionService(c *catalog.Catalog, defaults model.WallAssignment) *SessionService {
	return &SessionService{
		catalog:   c,
		id:        id.Generate(),
		session:   model.NewSession(defaults),
		updatedAt: util.NowMillis(),
	}
}

// Subscribe adds a subscriber to receive session changes.
func (s *SessionService) Subscribe(sub SessionSubscriber) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subscribers = append(s.subscribers, sub)
}

// Unsubscribe removes a subscriber.
func (s *SessionService) Unsubscribe(sub SessionSubscriber) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for i, existing := range s.subscribers {
		if existing == sub {
			s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
			return
		}
	}
}

// SetSearchDelay sets the pause applied before a search resolves.
func (s *SessionService) SetSearchDelay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d < 0 {
		d = 0
	}
	s.delay = d
}

// SearchDelay returns the current search delay.
func (s *SessionService) SearchDelay() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.delay
}

// Snapshot returns the current session.
func (s *SessionService) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Search waits out the search delay, then replaces the results with the
// lookup for code. If ctx ends during the wait the session is left as it was.
func (s *SessionService) Search(ctx context.Context, code string) (Snapshot, error) {
	if err := waitDelay(ctx, s.SearchDelay()); err != nil {
		return Snapshot{}, err
	}
	result := s.catalog.Search(code)
	return s.update(func(sess model.Session) (model.Session, error) {
		return sess.WithSearch(code, result), nil
	})
}

// SelectColor selects a color from the current results. Selecting a color
// the last search didn't return is a NotFoundError.
func (s *SessionService) SelectColor(code string) (Snapshot, error) {
	return s.update(func(sess model.Session) (model.Session, error) {
		c, ok := sess.ResultByCode(code)
		if !ok {
			return sess, swerr.NotInResults(code)
		}
		return sess.SelectColor(c), nil
	})
}

// SelectWall highlights a wall by name, painting it if a color is selected.
func (s *SessionService) SelectWall(wall string) (Snapshot, error) {
	slot, err := model.ParseWallSlot(wall)
	if err != nil {
		return Snapshot{}, err
	}
	return s.update(func(sess model.Session) (model.Session, error) {
		return sess.SelectWall(slot), nil
	})
}

// ClearWall drops the wall highlight.
func (s *SessionService) ClearWall() Snapshot {
	snap, _ := s.update(func(sess model.Session) (model.Session, error) {
		return sess.ClearWall(), nil
	})
	return snap
}

// Apply paints hex onto the named wall directly.
func (s *SessionService) Apply(wall, hex string) (Snapshot, error) {
	slot, err := model.ParseWallSlot(wall)
	if err != nil {
		return Snapshot{}, err
	}
	return s.update(func(sess model.Session) (model.Session, error) {
		return sess.Apply(slot, hex), nil
	})
}

// Reset restores the default room and clears results, selection and highlight.
func (s *SessionService) Reset() Snapshot {
	snap, _ := s.update(func(sess model.Session) (model.Session, error) {
		return sess.Reset(), nil
	})
	return snap
}

// SetDefaults changes the room that Reset restores. The current room is kept.
func (s *SessionService) SetDefaults(defaults model.WallAssignment) Snapshot {
	snap, _ := s.update(func(sess model.Session) (model.Session, error) {
		return sess.WithDefaults(defaults), nil
	})
	return snap
}

// update applies fn under the lock, bumps the revision and notifies
// subscribers once the lock is released. On error nothing changes.
func (s *SessionService) update(fn func(model.Session) (model.Session, error)) (Snapshot, error) {
	s.mu.Lock()
	next, err := fn(s.session)
	if err != nil {
		s.mu.Unlock()
		return Snapshot{}, err
	}
	s.session = next
	s.revision++
	s.updatedAt = util.NowMillis()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return snap, nil
}

func (s *SessionService) snapshotLocked() Snapshot {
	return Snapshot{
		SessionID:       s.id,
		Revision:        s.revision,
		UpdatedAtMillis: s.updatedAt,
		State:           s.session.State(),
		Defaults:        s.session.Defaults(),
		Session:         s.session,
	}
}

func (s *SessionService) notify(snap Snapshot) {
	s.subMu.RLock()
	subs := make([]SessionSubscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	s.subMu.RUnlock()

	for _, sub := range subs {
		sub.OnSessionChange(snap)
	}
}
